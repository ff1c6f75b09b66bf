// pkg/fixture/hash.go
package fixture

import (
	"crypto/sha256"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"zombiezen.com/go/nix/nixbase32"
)

var (
	// ErrHashMismatch indicates a library's contents do not match the
	// manifest
	ErrHashMismatch = errors.New("hash mismatch")

	// ErrInvalidFixture indicates the fixture directory or archive is
	// malformed
	ErrInvalidFixture = errors.New("invalid fixture")
)

// ComputeHash returns the sha256 of the file at path, nix base32 encoded
func ComputeHash(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	h := sha256.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", err
	}

	return nixbase32.EncodeToString(h.Sum(nil)), nil
}

// Verify checks every library listed in the manifest against its recorded
// hash. A mismatch means the installation is corrupt.
func (m *Manifest) Verify(base string) error {
	for _, lib := range m.Libraries {
		got, err := ComputeHash(filepath.Join(base, lib.Path))
		if err != nil {
			return fmt.Errorf("hashing %s: %w", lib.Path, err)
		}
		if got != lib.Hash {
			return fmt.Errorf("%s: %w (got %s, want %s)", lib.Path, ErrHashMismatch, got, lib.Hash)
		}
	}
	return nil
}

// UpdateHashes recomputes the hash of every listed library from the files
// in base
func (m *Manifest) UpdateHashes(base string) error {
	for i, lib := range m.Libraries {
		hash, err := ComputeHash(filepath.Join(base, lib.Path))
		if err != nil {
			return fmt.Errorf("hashing %s: %w", lib.Path, err)
		}
		m.Libraries[i].Hash = hash
	}
	return nil
}
