// pkg/loader/library.go

// Package loader finds and opens native extension libraries once their
// search directories have been registered.
package loader

// Library is an open handle to a loaded shared library
type Library struct {
	Name   string // Library name (e.g. "examplelib")
	Path   string // Resolved path of the loaded file
	handle uintptr
}

// Handle returns the raw loader handle
func (l *Library) Handle() uintptr {
	return l.handle
}
