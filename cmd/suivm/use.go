package main

import (
	"github.com/spf13/cobra"
)

var useCmd = &cobra.Command{
	Use:   "use <version>",
	Short: "Switch the active Sui version",
	Long: `Point the 'current' symlink at an installed version. The version
must already be installed with 'suivm install'.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		version := args[0]
		mgr, _ := newManager()

		if err := mgr.Activate(version); err != nil {
			fail(err)
		}
		printInfof("Now using %s\n", version)
	},
}
