package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/suivm/suivm/internal/catalog"
	"github.com/suivm/suivm/internal/install"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List available Sui versions",
	Long: `List every version in the remote release catalog. Installed versions
are marked with [*] and the active version carries a (default) suffix.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		mgr, _ := newManager()

		releases, err := catalog.New().FetchReleases(cmd.Context())
		if err != nil {
			fail(err)
		}

		installed, err := mgr.ListInstalled()
		if err != nil {
			fail(err)
		}
		installedSet := make(map[string]bool, len(installed))
		for _, v := range installed {
			installedSet[v] = true
		}

		active, err := mgr.ActiveVersion()
		if err != nil && !errors.Is(err, install.ErrNoActiveVersion) {
			fail(err)
		}

		for _, release := range releases {
			marker := "[ ]"
			if installedSet[release.Tag] {
				marker = "[*]"
			}
			suffix := ""
			if release.Tag == active {
				suffix = " (default)"
			}
			fmt.Printf("%s %s%s\n", marker, release.Tag, suffix)
		}
	},
}
