// pkg/fixture/fixture_test.go
package fixture

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

// newFixtureDir builds a fixture directory with a library in the base
// directory and one in a "sub" subdirectory, hashes recorded.
func newFixtureDir(t *testing.T) (string, *Manifest) {
	t.Helper()
	dir := t.TempDir()

	if err := os.WriteFile(filepath.Join(dir, "libexamplelib.so"), []byte("base library"), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.MkdirAll(filepath.Join(dir, "sub"), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "sub", "libdeplib.so"), []byte("sub library"), 0755); err != nil {
		t.Fatal(err)
	}

	m := &Manifest{
		Name:      "sharedlib-in-package",
		Version:   "1.0.0",
		Extension: "examplelib",
		Subdirs:   []string{"sub"},
		Libraries: []LibraryFile{
			{Path: "libexamplelib.so"},
			{Path: filepath.Join("sub", "libdeplib.so")},
		},
	}
	if err := m.UpdateHashes(dir); err != nil {
		t.Fatalf("UpdateHashes: %v", err)
	}
	if err := SaveManifest(dir, m); err != nil {
		t.Fatalf("SaveManifest: %v", err)
	}

	return dir, m
}

func TestManifestRoundtrip(t *testing.T) {
	dir, m := newFixtureDir(t)

	got, err := LoadManifest(dir)
	if err != nil {
		t.Fatalf("LoadManifest: %v", err)
	}
	if got.Name != m.Name || got.Version != m.Version || got.Extension != m.Extension {
		t.Errorf("manifest fields = %+v, want %+v", got, m)
	}
	if len(got.Libraries) != 2 {
		t.Fatalf("libraries = %v, want 2", got.Libraries)
	}
}

func TestLoadManifestMissing(t *testing.T) {
	_, err := LoadManifest(t.TempDir())
	if !errors.Is(err, ErrInvalidFixture) {
		t.Errorf("LoadManifest error = %v, want ErrInvalidFixture", err)
	}
}

func TestSearchDirs(t *testing.T) {
	m := &Manifest{Subdirs: []string{"sub"}}
	dirs := m.SearchDirs("/pkg")
	if len(dirs) != 2 || dirs[0] != "/pkg" || dirs[1] != filepath.Join("/pkg", "sub") {
		t.Errorf("SearchDirs = %v, want base then sub", dirs)
	}
}

func TestVerify(t *testing.T) {
	dir, m := newFixtureDir(t)

	if err := m.Verify(dir); err != nil {
		t.Fatalf("Verify on intact fixture: %v", err)
	}

	// Corrupt one library
	if err := os.WriteFile(filepath.Join(dir, "libexamplelib.so"), []byte("tampered"), 0755); err != nil {
		t.Fatal(err)
	}
	if err := m.Verify(dir); !errors.Is(err, ErrHashMismatch) {
		t.Errorf("Verify on corrupt fixture = %v, want ErrHashMismatch", err)
	}
}

func TestComputeHashStable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lib.so")
	if err := os.WriteFile(path, []byte("contents"), 0644); err != nil {
		t.Fatal(err)
	}

	first, err := ComputeHash(path)
	if err != nil {
		t.Fatal(err)
	}
	second, err := ComputeHash(path)
	if err != nil {
		t.Fatal(err)
	}
	if first != second || first == "" {
		t.Errorf("hashes differ: %q vs %q", first, second)
	}
}

func TestPackUnpackRoundtrip(t *testing.T) {
	dir, m := newFixtureDir(t)
	archive := filepath.Join(t.TempDir(), "fixture.tar.xz")

	if err := Pack(dir, archive); err != nil {
		t.Fatalf("Pack: %v", err)
	}

	dest := filepath.Join(t.TempDir(), "installed")
	if err := Unpack(archive, dest); err != nil {
		t.Fatalf("Unpack: %v", err)
	}

	got, err := LoadManifest(dest)
	if err != nil {
		t.Fatalf("LoadManifest after unpack: %v", err)
	}
	if err := got.Verify(dest); err != nil {
		t.Errorf("Verify after unpack: %v", err)
	}
	if got.Extension != m.Extension {
		t.Errorf("extension = %q, want %q", got.Extension, m.Extension)
	}
}

func TestPackRequiresManifest(t *testing.T) {
	err := Pack(t.TempDir(), filepath.Join(t.TempDir(), "out.tar.xz"))
	if !errors.Is(err, ErrInvalidFixture) {
		t.Errorf("Pack error = %v, want ErrInvalidFixture", err)
	}
}
