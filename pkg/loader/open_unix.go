//go:build !windows

// pkg/loader/open_unix.go
package loader

import (
	"fmt"

	"github.com/ebitengine/purego"
)

// Open loads the shared library at path into the process
func Open(path string) (*Library, error) {
	handle, err := purego.Dlopen(path, purego.RTLD_NOW|purego.RTLD_GLOBAL)
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", path, err)
	}

	return &Library{
		Name:   baseName(path),
		Path:   path,
		handle: handle,
	}, nil
}

// Lookup resolves an exported symbol
func (l *Library) Lookup(symbol string) (uintptr, error) {
	addr, err := purego.Dlsym(l.handle, symbol)
	if err != nil {
		return 0, fmt.Errorf("resolving %s in %s: %w", symbol, l.Path, err)
	}
	return addr, nil
}

// Close releases the library from the process
func (l *Library) Close() error {
	return purego.Dlclose(l.handle)
}
