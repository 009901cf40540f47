package main

import (
	"github.com/spf13/cobra"
)

var uninstallCmd = &cobra.Command{
	Use:   "uninstall <version>",
	Short: "Remove an installed Sui version",
	Long: `Delete ~/.suivm/versions/<version>. The active version cannot be
removed; switch away with 'suivm use' first.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		version := args[0]
		mgr, _ := newManager()

		if err := mgr.Uninstall(version); err != nil {
			fail(err)
		}
		printInfof("Uninstalled %s\n", version)
	},
}
