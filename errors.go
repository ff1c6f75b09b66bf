// errors.go
package libload

import (
	"errors"
	"fmt"

	"github.com/arc-language/libload/pkg/fixture"
	"github.com/arc-language/libload/pkg/loader"
)

var (
	// ErrLibraryNotFound indicates the shared library was not found in any
	// registered search directory
	ErrLibraryNotFound = loader.ErrNotFound

	// ErrHashMismatch indicates a fixture library failed integrity
	// verification
	ErrHashMismatch = fixture.ErrHashMismatch

	// ErrInvalidFixture indicates a fixture directory or archive is
	// malformed
	ErrInvalidFixture = fixture.ErrInvalidFixture

	// ErrUnknownMechanism indicates a configured mechanism name is not
	// recognized
	ErrUnknownMechanism = errors.New("unknown mechanism")
)

// Error wraps an error with additional context
type Error struct {
	Op   string // Operation that failed
	Path string // Directory or package path if applicable
	Err  error  // Underlying error
}

func (e *Error) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}
