package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/suivm/suivm/internal/log"
	"github.com/suivm/suivm/internal/platform"
)

// Version is the current version of suivm
var Version = "0.3.0"

var (
	verboseFlag bool
	quietFlag   bool
)

var rootCmd = &cobra.Command{
	Use:   "suivm",
	Short: "Sui version manager",
	Long: `suivm installs and manages versions of the Sui toolchain.

Versions live side by side under ~/.suivm/versions and a single
'current' symlink selects the active one. Switch versions with
'suivm use' and put ~/.suivm/current/bin on your PATH once.`,
	Version: Version,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		log.SetDefault(log.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: determineLogLevel(),
		})))

		if host := platform.Host(); !host.Supported() {
			log.Default().Warn("platform has no official prebuilt binaries",
				"platform", host.String())
		}
	},
}

// determineLogLevel maps verbosity flags to a slog level. Quiet wins over
// verbose when both are set.
func determineLogLevel() slog.Level {
	switch {
	case quietFlag:
		return slog.LevelError
	case verboseFlag:
		return slog.LevelDebug
	default:
		return slog.LevelWarn
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().BoolVarP(&quietFlag, "quiet", "q", false, "Only print errors")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(installCmd)
	rootCmd.AddCommand(uninstallCmd)
	rootCmd.AddCommand(useCmd)
	rootCmd.AddCommand(configCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(ExitUsage)
	}
}
