package main

import (
	"github.com/spf13/cobra"
)

var installCmd = &cobra.Command{
	Use:   "install <version>",
	Short: "Install a Sui version",
	Long: `Download and install a version from the release catalog into
~/.suivm/versions/<version>. Installing does not activate; run
'suivm use <version>' afterwards.

Examples:
  suivm install testnet-v1.55.0
  suivm install mainnet-v1.54.2`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		version := args[0]
		mgr, _ := newManager()

		printInfof("Installing %s...\n", version)
		if err := mgr.Install(cmd.Context(), version); err != nil {
			fail(err)
		}
	},
}
