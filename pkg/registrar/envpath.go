// pkg/registrar/envpath.go
package registrar

import (
	"os"
	"strings"

	"github.com/arc-language/libload/pkg/platform"
)

// DefaultPathVar is the search-path variable the Cygwin and MSYS loaders
// consult.
const DefaultPathVar = "PATH"

// envPathMechanism appends directories to a search-path environment
// variable. The emulation layer splits the value on POSIX colons regardless
// of the native list separator.
type envPathMechanism struct {
	pathVar string
	getenv  func(string) string
	setenv  func(string, string) error
}

func newEnvPathMechanism(pathVar string) *envPathMechanism {
	return &envPathMechanism{
		pathVar: pathVar,
		getenv:  os.Getenv,
		setenv:  os.Setenv,
	}
}

func (m *envPathMechanism) Name() string {
	return string(platform.MechanismEnvPath)
}

// Register appends dir to the variable, preserving existing entries so
// earlier resolutions keep winning.
func (m *envPathMechanism) Register(dir string) error {
	return m.setenv(m.pathVar, AppendPath(m.getenv(m.pathVar), dir))
}

// AppendPath returns existing with dirs appended, colon separated. The
// existing value comes first with its ordering intact; an empty existing
// value produces no leading separator.
func AppendPath(existing string, dirs ...string) string {
	parts := make([]string, 0, len(dirs)+1)
	if existing != "" {
		parts = append(parts, existing)
	}
	parts = append(parts, dirs...)
	return strings.Join(parts, ":")
}
