// pkg/loader/find.go
package loader

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
)

// ErrNotFound indicates the shared library was not found in any search
// directory
var ErrNotFound = errors.New("shared library not found")

// Find searches dirs in order for the shared library name and returns the
// path of the first match. Versioned files (e.g. libexample.so.3) match
// when the plain name is absent.
func Find(dirs []string, name string) (string, error) {
	for _, dir := range dirs {
		for _, filename := range candidates(runtime.GOOS, name) {
			fullPath := filepath.Join(dir, filename)
			if fileExists(fullPath) {
				return fullPath, nil
			}

			// Try versioned: lib{name}{ext}.* (e.g. libssl.so.3)
			matches, _ := filepath.Glob(filepath.Join(dir, filename+".*"))
			if len(matches) > 0 {
				return matches[0], nil
			}
		}
	}

	return "", fmt.Errorf("%w: %s in %v", ErrNotFound, name, dirs)
}

// List returns the paths of all shared libraries found in dirs, in
// directory order, duplicates removed.
func List(dirs []string) []string {
	var libs []string
	seen := make(map[string]bool)

	for _, dir := range dirs {
		entries, err := os.ReadDir(dir)
		if err != nil {
			continue
		}

		for _, entry := range entries {
			if entry.IsDir() {
				continue
			}

			name := entry.Name()
			if !hasSharedExtension(name) {
				continue
			}

			fullPath := filepath.Join(dir, name)
			if seen[fullPath] {
				continue
			}
			seen[fullPath] = true
			libs = append(libs, fullPath)
		}
	}

	return libs
}

// hasSharedExtension reports whether name looks like a shared library on
// any platform, versioned suffixes included.
func hasSharedExtension(name string) bool {
	for _, ext := range []string{ExtLinux, ExtDarwin, ExtWindows} {
		if strings.HasSuffix(name, ext) || strings.Contains(name, ext+".") {
			return true
		}
	}
	return false
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
