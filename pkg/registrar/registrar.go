// pkg/registrar/registrar.go
package registrar

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/arc-language/libload/pkg/platform"
)

// Mechanism applies one directory to the dynamic loader's search
// configuration.
type Mechanism interface {
	// Name identifies the mechanism for logging and the CLI
	Name() string

	// Register makes dir visible to the dynamic loader. A failure means
	// the installation is broken; callers should not attempt a fallback.
	Register(dir string) error
}

// Config controls registrar behavior
type Config struct {
	// PathVar is the environment variable consulted by the loader when the
	// env-path mechanism is active. Defaults to PATH.
	PathVar string
	Debug   bool
	Logger  *log.Logger
}

// Registrar registers search directories through a platform mechanism.
// Registration mutates process-wide loader configuration and persists for
// the process lifetime. Registering a directory twice appends a redundant
// entry, which the loader tolerates.
type Registrar struct {
	mech       Mechanism
	logger     *log.Logger
	registered []string
}

// New creates a Registrar for the detected platform
func New(p *platform.Platform, cfg *Config) *Registrar {
	if cfg == nil {
		cfg = &Config{}
	}

	var mech Mechanism
	switch p.Mechanism {
	case platform.MechanismDLLDirectory:
		mech = newDLLDirectoryMechanism()
	case platform.MechanismEnvPath:
		pathVar := cfg.PathVar
		if pathVar == "" {
			pathVar = DefaultPathVar
		}
		mech = newEnvPathMechanism(pathVar)
	default:
		mech = noopMechanism{}
	}

	return NewWithMechanism(mech, cfg)
}

// NewWithMechanism creates a Registrar with an explicit mechanism
func NewWithMechanism(mech Mechanism, cfg *Config) *Registrar {
	if cfg == nil {
		cfg = &Config{}
	}

	logger := cfg.Logger
	if logger == nil {
		if cfg.Debug {
			logger = log.New(os.Stdout, "[LIBLOAD] ", log.LstdFlags)
		} else {
			logger = log.New(io.Discard, "", 0)
		}
	}

	return &Registrar{
		mech:   mech,
		logger: logger,
	}
}

// Register makes each directory visible to the dynamic loader. Directories
// are applied in order and the first failure aborts and propagates.
func (r *Registrar) Register(dirs ...string) error {
	for _, dir := range dirs {
		r.logger.Printf("Registering %s via %s", dir, r.mech.Name())
		if err := r.mech.Register(dir); err != nil {
			return fmt.Errorf("registering %s: %w", dir, err)
		}
		r.registered = append(r.registered, dir)
	}
	return nil
}

// Registered returns the directories registered so far, in order,
// duplicates included.
func (r *Registrar) Registered() []string {
	out := make([]string, len(r.registered))
	copy(out, r.registered)
	return out
}

// MechanismName returns the name of the active mechanism
func (r *Registrar) MechanismName() string {
	return r.mech.Name()
}

// noopMechanism serves platforms whose loader finds co-located libraries
// through embedded relative search paths. It performs no mutation at all.
type noopMechanism struct{}

func (noopMechanism) Name() string          { return string(platform.MechanismNone) }
func (noopMechanism) Register(string) error { return nil }
