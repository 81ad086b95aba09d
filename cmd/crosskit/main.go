package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/crosskit-dev/crosskit/internal/errors"
	"github.com/crosskit-dev/crosskit/internal/logger"
)

// Version information set at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	var debug bool

	rootCmd := &cobra.Command{
		Use:   "crosskit",
		Short: "Cross-platform UI components you copy into your project",
		Long: `crosskit distributes cross-platform UI primitives as source code.

Components are copied into your project as files you own and can
modify freely. Import paths inside the copied sources are rewritten
to match your project's configured aliases.

Examples:
  crosskit add dialog
  crosskit add button alert-dialog --overwrite
  crosskit list`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logger.Init(debug)
		},
	}

	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Enable debug output")

	rootCmd.AddCommand(
		addCmd(),
		listCmd(),
		versionCmd(),
	)

	// Single exit point: every command reports failures as error
	// values, and only this dispatcher decides the process exit code.
	if err := rootCmd.Execute(); err != nil {
		errors.PrintError(err)
		os.Exit(1)
	}
}
