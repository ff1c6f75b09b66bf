// pkg/platform/detect.go
package platform

import (
	"fmt"
	"os"
	"runtime"
	"strings"
)

// Mechanism identifies how additional shared-library search directories are
// made visible to the dynamic loader.
type Mechanism string

const (
	// MechanismNone means the loader already resolves co-located libraries
	// through embedded relative search paths; no registration is needed.
	MechanismNone Mechanism = "none"

	// MechanismDLLDirectory means directories are registered through the
	// loader's directory-registration API.
	MechanismDLLDirectory Mechanism = "dll-directory"

	// MechanismEnvPath means directories are appended to the search-path
	// environment variable the loader consults.
	MechanismEnvPath Mechanism = "env-path"
)

// Valid reports whether m is a known mechanism
func (m Mechanism) Valid() bool {
	switch m {
	case MechanismNone, MechanismDLLDirectory, MechanismEnvPath:
		return true
	}
	return false
}

// Platform represents the detected system platform
type Platform struct {
	OS        string    // linux, darwin, windows
	Arch      string    // amd64, arm64, 386, arm
	Mechanism Mechanism // How search directories are registered
}

// Detect detects the current platform and its registration mechanism.
// The result is process-wide; resolve it once during initialization.
func Detect() *Platform {
	return detect(runtime.GOOS, runtime.GOARCH, os.Getenv)
}

func detect(goos, goarch string, getenv func(string) string) *Platform {
	p := &Platform{
		OS:        goos,
		Arch:      goarch,
		Mechanism: MechanismNone,
	}

	// Windows is the only platform whose loader cannot find libraries
	// installed next to the module that needs them.
	if goos == "windows" {
		if isPosixEmulation(getenv) {
			p.Mechanism = MechanismEnvPath
		} else {
			p.Mechanism = MechanismDLLDirectory
		}
	}

	return p
}

// isPosixEmulation reports whether the process runs under a Cygwin or MSYS
// layer. The emulation loader consults PATH instead of the directory
// registration API, and lacks directory-scoped auto-discovery.
func isPosixEmulation(getenv func(string) string) bool {
	if strings.Contains(strings.ToLower(getenv("OSTYPE")), "cygwin") {
		return true
	}
	if getenv("MSYSTEM") != "" {
		return true
	}
	return false
}

// RequiresRegistration reports whether explicit search-path registration is
// needed before a bundled shared library can be resolved.
func (p *Platform) RequiresRegistration() bool {
	return p.Mechanism != MechanismNone
}

// String returns a string representation of the platform
func (p *Platform) String() string {
	return fmt.Sprintf("%s/%s (mechanism: %s)", p.OS, p.Arch, p.Mechanism)
}
