// internal/cli/check.go
package cli

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/arc-language/libload/pkg/fixture"
	"github.com/arc-language/libload/pkg/loader"
)

var checkExtension string

var checkCmd = &cobra.Command{
	Use:   "check [package-dir]",
	Short: "Check a package directory's bundled shared libraries",
	Long: `List the shared libraries installed in a package directory and verify
that its native extension would resolve after search-path registration.

When the directory carries a fixture manifest, its subdirectories, extension
name, and content hashes are used; otherwise only the directory itself is
inspected.

Examples:
  libload check ./mypkg
  libload check ./mypkg --extension examplelib`,
	Args: cobra.ExactArgs(1),
	RunE: runCheck,
}

func init() {
	checkCmd.Flags().StringVar(&checkExtension, "extension", "", "native extension library name to resolve")
}

func runCheck(cmd *cobra.Command, args []string) error {
	pkgDir := args[0]

	dirs := []string{pkgDir}
	extension := checkExtension

	manifest, err := fixture.LoadManifest(pkgDir)
	if err == nil {
		dirs = manifest.SearchDirs(pkgDir)
		if extension == "" {
			extension = manifest.Extension
		}

		fmt.Printf("Fixture: %s %s\n", manifest.Name, manifest.Version)
		if err := manifest.Verify(pkgDir); err != nil {
			return fmt.Errorf("verifying fixture: %w", err)
		}
		fmt.Printf("Integrity: ok (%d libraries)\n", len(manifest.Libraries))
	}

	fmt.Printf("Search directories:\n")
	for _, dir := range dirs {
		fmt.Printf("  %s\n", dir)
	}

	libs := loader.List(dirs)
	fmt.Printf("\nShared libraries:\n")
	if len(libs) == 0 {
		fmt.Printf("  (none)\n")
	}
	for _, lib := range libs {
		rel, err := filepath.Rel(pkgDir, lib)
		if err != nil {
			rel = lib
		}
		fmt.Printf("  %s\n", rel)
	}

	if extension != "" {
		path, err := loader.Find(dirs, extension)
		if err != nil {
			return fmt.Errorf("extension %q not resolvable: %w", extension, err)
		}
		fmt.Printf("\nExtension %q resolves to %s\n", extension, path)
	}

	return nil
}
