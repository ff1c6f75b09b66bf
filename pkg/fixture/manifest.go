// pkg/fixture/manifest.go

// Package fixture builds, unpacks, and verifies fixture packages: package
// directories that install one or more shared libraries next to a native
// extension, used to exercise search-path registration.
package fixture

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// ManifestName is the manifest file carried at the root of every fixture
// package
const ManifestName = "fixture.toml"

// LibraryFile describes one shared library installed by a fixture
type LibraryFile struct {
	Path string `toml:"path"` // Relative to the package directory
	Hash string `toml:"hash"` // sha256 of the contents, nix base32
}

// Manifest describes a fixture package
type Manifest struct {
	Name      string        `toml:"name"`
	Version   string        `toml:"version"`
	Extension string        `toml:"extension"` // Native extension library name
	Subdirs   []string      `toml:"subdirs"`   // Library subdirectories (e.g. "sub")
	Libraries []LibraryFile `toml:"libraries"`
}

// LoadManifest reads and parses fixture.toml from dir
func LoadManifest(dir string) (*Manifest, error) {
	path := filepath.Join(dir, ManifestName)

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: no %s in %s", ErrInvalidFixture, ManifestName, dir)
		}
		return nil, fmt.Errorf("reading manifest: %w", err)
	}

	var m Manifest
	if err := toml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parsing manifest: %w", err)
	}

	if m.Name == "" {
		return nil, fmt.Errorf("%w: manifest has no name", ErrInvalidFixture)
	}

	return &m, nil
}

// SaveManifest writes m to fixture.toml in dir
func SaveManifest(dir string, m *Manifest) error {
	data, err := toml.Marshal(m)
	if err != nil {
		return fmt.Errorf("marshaling manifest: %w", err)
	}

	path := filepath.Join(dir, ManifestName)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing manifest: %w", err)
	}

	return nil
}

// SearchDirs returns the directories the dynamic loader must consult for
// this fixture: the base directory first, then each named subdirectory.
func (m *Manifest) SearchDirs(base string) []string {
	dirs := []string{base}
	for _, sub := range m.Subdirs {
		dirs = append(dirs, filepath.Join(base, sub))
	}
	return dirs
}
