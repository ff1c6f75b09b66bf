//go:build windows

// pkg/loader/open_windows.go
package loader

import (
	"fmt"

	"golang.org/x/sys/windows"
)

// Open loads the shared library at path into the process
func Open(path string) (*Library, error) {
	handle, err := windows.LoadLibrary(path)
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", path, err)
	}

	return &Library{
		Name:   baseName(path),
		Path:   path,
		handle: uintptr(handle),
	}, nil
}

// Lookup resolves an exported symbol
func (l *Library) Lookup(symbol string) (uintptr, error) {
	addr, err := windows.GetProcAddress(windows.Handle(l.handle), symbol)
	if err != nil {
		return 0, fmt.Errorf("resolving %s in %s: %w", symbol, l.Path, err)
	}
	return addr, nil
}

// Close releases the library from the process
func (l *Library) Close() error {
	return windows.FreeLibrary(windows.Handle(l.handle))
}
