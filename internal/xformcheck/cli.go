// Package xformcheck implements the headless command-line checks for
// transform scripts: method equivalence, timing and snapshots.
package xformcheck

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/Faultbox/twinview/internal/logger"
)

// RootCommand creates the root cobra command with all subcommands registered.
func RootCommand() *cobra.Command {
	var debug bool

	root := &cobra.Command{
		Use:          "xformcheck",
		Short:        "Check transform scripts without opening a window",
		Long:         `xformcheck builds transform scripts with both the library and the manual method, compares the matrices, times the builds and renders side-by-side snapshots.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level := "warn"
			if debug {
				level = "debug"
			}
			return logger.InitWithOptions(logger.Options{Level: level, Console: os.Stderr})
		},
	}

	root.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")

	root.AddCommand(verifyCommand())
	root.AddCommand(benchCommand())
	root.AddCommand(snapshotCommand())

	return root
}
