package main

import (
	"fmt"
	"os"

	"github.com/suivm/suivm/internal/config"
	"github.com/suivm/suivm/internal/errmsg"
	"github.com/suivm/suivm/internal/install"
)

// printInfo prints an informational message unless quiet mode is enabled
func printInfo(a ...interface{}) {
	if !quietFlag {
		fmt.Println(a...)
	}
}

// printInfof prints a formatted informational message unless quiet mode is enabled
func printInfof(format string, a ...interface{}) {
	if !quietFlag {
		fmt.Printf(format, a...)
	}
}

// printError prints an error to stderr with causes and suggestions.
func printError(err error) {
	errmsg.Fprint(os.Stderr, err)
}

// fail reports err and exits with its mapped code.
func fail(err error) {
	printError(err)
	exitWithCode(exitCodeFor(err))
}

// newManager resolves the default config and builds a Manager on it.
func newManager() (*install.Manager, *config.Config) {
	cfg, err := config.Default()
	if err != nil {
		fail(err)
	}
	if err := cfg.EnsureDirectories(); err != nil {
		fail(err)
	}
	return install.New(cfg), cfg
}
