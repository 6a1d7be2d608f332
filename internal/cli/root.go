package cli

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "hustle-tracker",
	Short: "Track personal and side-hustle income and expenses",
	Long: `hustle-tracker records income and expense transactions against
a personal source and any number of side hustles, and serves totals,
monthly series and category breakdowns over a REST API.`,
	SilenceUsage: true,
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
