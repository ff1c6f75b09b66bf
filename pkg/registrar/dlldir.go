// pkg/registrar/dlldir.go
package registrar

import "github.com/arc-language/libload/pkg/platform"

// dllDirectoryMechanism registers directories through the loader's
// directory-registration API. addDir is the platform syscall, swappable in
// tests.
type dllDirectoryMechanism struct {
	addDir func(string) error
}

func newDLLDirectoryMechanism() *dllDirectoryMechanism {
	return &dllDirectoryMechanism{addDir: addDLLDirectory}
}

func (m *dllDirectoryMechanism) Name() string {
	return string(platform.MechanismDLLDirectory)
}

func (m *dllDirectoryMechanism) Register(dir string) error {
	return m.addDir(dir)
}
