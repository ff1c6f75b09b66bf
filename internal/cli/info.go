// internal/cli/info.go
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arc-language/libload/pkg/platform"
)

var infoCmd = &cobra.Command{
	Use:   "info",
	Short: "Show platform and registration mechanism",
	Long:  `Display the detected platform and how shared-library search paths are registered on it.`,
	RunE:  runInfo,
}

func runInfo(cmd *cobra.Command, args []string) error {
	plat := platform.Detect()

	effective := plat.Mechanism
	if config.Mechanism != "" {
		m := platform.Mechanism(config.Mechanism)
		if !m.Valid() {
			return fmt.Errorf("unknown mechanism %q", config.Mechanism)
		}
		effective = m
	}

	fmt.Printf("Platform: %s/%s\n", plat.OS, plat.Arch)
	fmt.Printf("Detected mechanism: %s\n", plat.Mechanism)
	if effective != plat.Mechanism {
		fmt.Printf("Configured mechanism: %s\n", effective)
	}
	fmt.Printf("Requires registration: %v\n", effective != platform.MechanismNone)
	if effective == platform.MechanismEnvPath {
		fmt.Printf("Search-path variable: %s\n", config.PathVar)
	}
	if len(config.Subdirs) > 0 {
		fmt.Printf("Package subdirectories: %v\n", config.Subdirs)
	}

	return nil
}
