// internal/cli/root.go
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/arc-language/libload/pkg/core"
)

var (
	cfgFile   string
	mechanism string
	debug     bool
	config    *core.Config
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "libload",
	Short: "Bundled shared library loader",
	Long: `libload - Bundled shared library loader

Registers dynamic-loader search paths for packages that install shared
libraries alongside a native extension, then loads the extension once its
dependencies are resolvable. Platforms whose loader honors embedded
relative search paths need no registration and are left untouched.`,
	Version: "0.1.0",
}

// Execute executes the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.config/libload/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&mechanism, "mechanism", "", "registration mechanism override (none, dll-directory, env-path)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")

	// Add commands
	rootCmd.AddCommand(infoCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(fixtureCmd)
	rootCmd.AddCommand(versionCmd)
}

func initConfig() {
	var err error
	config, err = core.LoadConfig(cfgFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		config = core.DefaultConfig()
	}

	// Override config with flags
	if mechanism != "" {
		config.Mechanism = mechanism
	}
	if debug {
		config.Debug = true
	}
}
