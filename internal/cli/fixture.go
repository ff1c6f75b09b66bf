// internal/cli/fixture.go
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arc-language/libload/pkg/fixture"
)

var fixtureCmd = &cobra.Command{
	Use:   "fixture",
	Short: "Manage fixture packages",
	Long:  `Pack, unpack, and verify fixture packages that bundle shared libraries.`,
}

var fixturePackCmd = &cobra.Command{
	Use:   "pack [dir] [archive]",
	Short: "Archive a fixture directory into a tar.xz",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		dir, archive := args[0], args[1]

		// Refresh hashes so the archive always carries current contents
		manifest, err := fixture.LoadManifest(dir)
		if err != nil {
			return err
		}
		if err := manifest.UpdateHashes(dir); err != nil {
			return err
		}
		if err := fixture.SaveManifest(dir, manifest); err != nil {
			return err
		}

		if err := fixture.Pack(dir, archive); err != nil {
			return err
		}
		fmt.Printf("Packed %s -> %s\n", dir, archive)
		return nil
	},
}

var fixtureUnpackCmd = &cobra.Command{
	Use:   "unpack [archive] [dest]",
	Short: "Extract a fixture archive",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		archive, dest := args[0], args[1]
		if err := fixture.Unpack(archive, dest); err != nil {
			return err
		}
		fmt.Printf("Unpacked %s -> %s\n", archive, dest)
		return nil
	},
}

var fixtureVerifyCmd = &cobra.Command{
	Use:   "verify [dir]",
	Short: "Verify a fixture directory against its manifest",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dir := args[0]
		manifest, err := fixture.LoadManifest(dir)
		if err != nil {
			return err
		}
		if err := manifest.Verify(dir); err != nil {
			return err
		}
		fmt.Printf("%s: %d libraries ok\n", manifest.Name, len(manifest.Libraries))
		return nil
	},
}

func init() {
	fixtureCmd.AddCommand(fixturePackCmd)
	fixtureCmd.AddCommand(fixtureUnpackCmd)
	fixtureCmd.AddCommand(fixtureVerifyCmd)
}
