// internal/cli/run.go
package cli

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/arc-language/libload/pkg/platform"
	"github.com/arc-language/libload/pkg/registrar"
)

var runCmd = &cobra.Command{
	Use:   "run [package-dir] -- [command] [args...]",
	Short: "Run a command with the loader search path prepared",
	Long: `Run a command with the package's shared-library directories appended to
the search-path environment variable.

Directories registered through the registration API are not inherited by
child processes, so the environment-variable form is always used here.

Examples:
  libload run ./mypkg -- python -c "import mypkg"
  libload run ./mypkg --mechanism env-path -- ./harness`,
	Args: cobra.MinimumNArgs(2),
	RunE: runRun,
}

func runRun(cmd *cobra.Command, args []string) error {
	pkgDir, err := filepath.Abs(args[0])
	if err != nil {
		return fmt.Errorf("resolving package dir: %w", err)
	}

	dirs := []string{pkgDir}
	for _, sub := range config.Subdirs {
		dirs = append(dirs, filepath.Join(pkgDir, sub))
	}
	for _, dir := range dirs {
		if _, err := os.Stat(dir); err != nil {
			return fmt.Errorf("search directory: %w", err)
		}
	}

	plat := platform.Detect()

	// Cygwin and MSYS loaders split PATH on colons; the native list
	// separator applies everywhere else.
	var value string
	if plat.Mechanism == platform.MechanismEnvPath {
		value = registrar.AppendPath(os.Getenv(config.PathVar), dirs...)
	} else {
		sep := string(filepath.ListSeparator)
		parts := dirs
		if existing := os.Getenv(config.PathVar); existing != "" {
			parts = append([]string{existing}, dirs...)
		}
		value = strings.Join(parts, sep)
	}

	if config.Debug {
		fmt.Printf("%s=%s\n", config.PathVar, value)
	}

	child := exec.Command(args[1], args[2:]...)
	child.Env = append(os.Environ(), config.PathVar+"="+value)
	child.Stdin = os.Stdin
	child.Stdout = os.Stdout
	child.Stderr = os.Stderr

	return child.Run()
}
