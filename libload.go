// libload.go

// Package libload makes shared libraries bundled inside installed packages
// discoverable by the dynamic loader before the package's native extension
// is loaded.
//
// Most platforms resolve a co-installed library through relative search
// paths embedded in the extension itself and need nothing from this
// package. Windows does not, so the package directory (and any configured
// subdirectories) must be registered with the loader first. A Preparer
// performs that registration once, during a defined initialization phase,
// through whichever mechanism the platform provides.
package libload

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/arc-language/libload/pkg/core"
	"github.com/arc-language/libload/pkg/loader"
	"github.com/arc-language/libload/pkg/platform"
	"github.com/arc-language/libload/pkg/registrar"
)

// Re-export platform types for convenience
type (
	Platform  = platform.Platform
	Mechanism = platform.Mechanism
	Config    = core.Config
	Library   = loader.Library
)

// Re-export mechanism constants
const (
	MechanismNone         = platform.MechanismNone
	MechanismDLLDirectory = platform.MechanismDLLDirectory
	MechanismEnvPath      = platform.MechanismEnvPath
)

// DefaultConfig returns a configuration with sensible defaults
func DefaultConfig() *core.Config {
	return core.DefaultConfig()
}

// Preparer registers bundled shared-library directories so a subsequent
// native extension load can resolve its dependencies. The registration is
// process-wide and persists for the process lifetime.
type Preparer struct {
	platform  *platform.Platform
	registrar *registrar.Registrar
	config    *core.Config
}

// NewPreparer detects the platform once and selects the registration
// mechanism. A Mechanism set in the config overrides detection.
func NewPreparer(cfg *core.Config) (*Preparer, error) {
	if cfg == nil {
		cfg = core.DefaultConfig()
	}

	p := platform.Detect()
	if cfg.Mechanism != "" {
		m := platform.Mechanism(cfg.Mechanism)
		if !m.Valid() {
			return nil, &Error{Op: "configure", Err: fmt.Errorf("%w: %q", ErrUnknownMechanism, cfg.Mechanism)}
		}
		p.Mechanism = m
	}

	reg := registrar.New(p, &registrar.Config{
		PathVar: cfg.PathVar,
		Debug:   cfg.Debug,
	})

	return &Preparer{
		platform:  p,
		registrar: reg,
		config:    cfg,
	}, nil
}

// Platform returns the detected platform
func (p *Preparer) Platform() *platform.Platform {
	return p.platform
}

// Registered returns the directories registered so far, in order
func (p *Preparer) Registered() []string {
	return p.registrar.Registered()
}

// SearchDirs returns the directories to register for pkgDir: the package
// directory itself, then each configured subdirectory.
func (p *Preparer) SearchDirs(pkgDir string) []string {
	dirs := []string{pkgDir}
	for _, sub := range p.config.Subdirs {
		dirs = append(dirs, filepath.Join(pkgDir, sub))
	}
	return dirs
}

// Prepare makes the shared libraries installed in pkgDir and its
// configured subdirectories discoverable by the dynamic loader. Call it
// before loading the package's native extension. Calling it twice appends
// redundant entries, which the loader tolerates.
//
// On platforms that need no registration this is a no-op. A missing
// directory means a broken installation and fails without fallback.
func (p *Preparer) Prepare(pkgDir string) error {
	if !p.platform.RequiresRegistration() {
		return nil
	}

	dirs := p.SearchDirs(pkgDir)
	for _, dir := range dirs {
		if _, err := os.Stat(dir); err != nil {
			return &Error{Op: "prepare", Path: dir, Err: err}
		}
	}

	if err := p.registrar.Register(dirs...); err != nil {
		return &Error{Op: "prepare", Path: pkgDir, Err: err}
	}
	return nil
}

// Load prepares pkgDir and opens the native extension library name
func (p *Preparer) Load(pkgDir, name string) (*loader.Library, error) {
	if err := p.Prepare(pkgDir); err != nil {
		return nil, err
	}

	path, err := loader.Find(p.SearchDirs(pkgDir), name)
	if err != nil {
		return nil, &Error{Op: "load", Path: pkgDir, Err: err}
	}

	return loader.Open(path)
}
