// pkg/loader/naming.go
package loader

import (
	"path/filepath"
	"runtime"
	"strings"
)

// Platform-specific shared library extensions
const (
	ExtWindows = ".dll"
	ExtDarwin  = ".dylib"
	ExtLinux   = ".so"
)

// Extension returns the shared-library extension for the current platform
func Extension() string {
	return extensionFor(runtime.GOOS)
}

func extensionFor(goos string) string {
	switch goos {
	case "windows":
		return ExtWindows
	case "darwin":
		return ExtDarwin
	default:
		return ExtLinux
	}
}

// candidates returns the file names a library called name may carry, in
// preference order. MinGW-built DLLs keep the lib prefix, so both forms are
// tried on Windows.
func candidates(goos, name string) []string {
	ext := extensionFor(goos)
	if goos == "windows" {
		return []string{"lib" + name + ext, name + ext}
	}
	return []string{"lib" + name + ext}
}

// baseName extracts the library name from a file path, stripping the lib
// prefix, the extension, and any trailing version (libssl.so.3 -> ssl).
func baseName(path string) string {
	name := filepath.Base(path)
	name = strings.TrimPrefix(name, "lib")
	if i := strings.Index(name, "."); i >= 0 {
		name = name[:i]
	}
	return name
}
