package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/suivm/suivm/internal/shell"
)

var configCmd = &cobra.Command{
	Use:   "config [bash|zsh|fish]",
	Short: "Print the shell snippet that puts suivm on your PATH",
	Long: `Print the PATH-export statement for a shell, along with the rc file
to add it to. Defaults to bash when no shell is given.

Examples:
  suivm config
  suivm config fish`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		name := string(shell.Bash)
		if len(args) == 1 {
			name = args[0]
		}

		kind, err := shell.Parse(name)
		if err != nil {
			fail(err)
		}

		_, cfg := newManager()
		snippet, err := shell.Snippet(kind, cfg.BaseDir)
		if err != nil {
			fail(err)
		}
		rcFile, err := shell.RCFile(kind)
		if err != nil {
			fail(err)
		}

		fmt.Println(snippet)
		printInfof("\nAdd this line to %s, then restart your shell or source the file.\n", rcFile)
	},
}
