//go:build windows

// pkg/registrar/dlldir_windows.go
package registrar

import "golang.org/x/sys/windows"

// addDLLDirectory adds dir to the process DLL search path. The directory
// stays registered for the process lifetime; the returned cookie is
// discarded since nothing ever removes an entry.
func addDLLDirectory(dir string) error {
	p, err := windows.UTF16PtrFromString(dir)
	if err != nil {
		return err
	}
	_, err = windows.AddDllDirectory(p)
	return err
}
