// libload_test.go
package libload

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/arc-language/libload/pkg/core"
	"github.com/arc-language/libload/pkg/loader"
)

const testPathVar = "LIBLOAD_TEST_PATH"

// envPreparer forces the env-path mechanism onto a private variable so the
// full Prepare path runs on any host platform.
func envPreparer(t *testing.T, subdirs ...string) *Preparer {
	t.Helper()
	t.Setenv(testPathVar, "")

	p, err := NewPreparer(&core.Config{
		Mechanism: string(MechanismEnvPath),
		PathVar:   testPathVar,
		Subdirs:   subdirs,
	})
	if err != nil {
		t.Fatalf("NewPreparer: %v", err)
	}
	return p
}

func TestPrepareRegistersBaseDir(t *testing.T) {
	p := envPreparer(t)
	pkgDir := t.TempDir()

	t.Setenv(testPathVar, "/existing")
	if err := p.Prepare(pkgDir); err != nil {
		t.Fatalf("Prepare: %v", err)
	}

	want := "/existing:" + pkgDir
	if got := os.Getenv(testPathVar); got != want {
		t.Errorf("%s = %q, want %q", testPathVar, got, want)
	}
	if reg := p.Registered(); len(reg) != 1 || reg[0] != pkgDir {
		t.Errorf("Registered = %v, want [%s]", reg, pkgDir)
	}
}

func TestPrepareRegistersSubdir(t *testing.T) {
	p := envPreparer(t, "sub")
	pkgDir := t.TempDir()
	sub := filepath.Join(pkgDir, "sub")
	if err := os.MkdirAll(sub, 0755); err != nil {
		t.Fatal(err)
	}

	if err := p.Prepare(pkgDir); err != nil {
		t.Fatalf("Prepare: %v", err)
	}

	got := os.Getenv(testPathVar)
	if got != pkgDir+":"+sub {
		t.Errorf("%s = %q, want base then subdir", testPathVar, got)
	}
}

func TestPrepareTwiceAppendsRedundantEntries(t *testing.T) {
	p := envPreparer(t)
	pkgDir := t.TempDir()

	for i := 0; i < 2; i++ {
		if err := p.Prepare(pkgDir); err != nil {
			t.Fatalf("Prepare #%d: %v", i+1, err)
		}
	}

	if got := os.Getenv(testPathVar); got != pkgDir+":"+pkgDir {
		t.Errorf("%s = %q, want duplicate entries tolerated", testPathVar, got)
	}
}

func TestPrepareMissingDirFails(t *testing.T) {
	p := envPreparer(t)
	missing := filepath.Join(t.TempDir(), "absent")

	err := p.Prepare(missing)
	if err == nil {
		t.Fatal("Prepare of missing directory should fail")
	}
	if !strings.Contains(err.Error(), missing) {
		t.Errorf("error %q should name the missing directory", err)
	}
}

func TestPrepareMissingSubdirFails(t *testing.T) {
	p := envPreparer(t, "sub")
	pkgDir := t.TempDir() // no sub/ created

	if err := p.Prepare(pkgDir); err == nil {
		t.Fatal("Prepare with missing subdirectory should fail")
	}
	if got := os.Getenv(testPathVar); got != "" {
		t.Errorf("%s = %q, nothing should be registered on failure", testPathVar, got)
	}
}

func TestPrepareNoopWithoutRegistration(t *testing.T) {
	t.Setenv(testPathVar, "/existing")

	p, err := NewPreparer(&core.Config{
		Mechanism: string(MechanismNone),
		PathVar:   testPathVar,
	})
	if err != nil {
		t.Fatalf("NewPreparer: %v", err)
	}

	if err := p.Prepare(t.TempDir()); err != nil {
		t.Fatalf("Prepare: %v", err)
	}
	if got := os.Getenv(testPathVar); got != "/existing" {
		t.Errorf("%s = %q, no mutation expected", testPathVar, got)
	}
	if len(p.Registered()) != 0 {
		t.Errorf("Registered = %v, want none", p.Registered())
	}
}

func TestNewPreparerRejectsUnknownMechanism(t *testing.T) {
	_, err := NewPreparer(&core.Config{Mechanism: "rpath"})
	if !errors.Is(err, ErrUnknownMechanism) {
		t.Errorf("NewPreparer error = %v, want ErrUnknownMechanism", err)
	}
}

// End-to-end shape of the "nt" scenario: after Prepare(P), a library
// placed in P is resolvable through the registered search directories.
func TestPrepareThenFind(t *testing.T) {
	p := envPreparer(t)
	pkgDir := t.TempDir()

	libPath := filepath.Join(pkgDir, "libexamplelib"+loader.Extension())
	if err := os.WriteFile(libPath, []byte("fake"), 0755); err != nil {
		t.Fatal(err)
	}

	if err := p.Prepare(pkgDir); err != nil {
		t.Fatalf("Prepare: %v", err)
	}

	got, err := loader.Find(p.Registered(), "examplelib")
	if err != nil {
		t.Fatalf("Find after Prepare: %v", err)
	}
	if got != libPath {
		t.Errorf("Find = %q, want %q", got, libPath)
	}
}

func TestLoadNotFound(t *testing.T) {
	p := envPreparer(t)

	_, err := p.Load(t.TempDir(), "missing")
	if !errors.Is(err, ErrLibraryNotFound) {
		t.Errorf("Load error = %v, want ErrLibraryNotFound", err)
	}
}
