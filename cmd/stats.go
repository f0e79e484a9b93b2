package cmd

import (
	"github.com/spf13/cobra"

	"github.com/gitcrew/gitcrew/core"
	"github.com/gitcrew/gitcrew/internal/contract"
)

// statsCmd prints the weekly aggregate table.
var statsCmd = &cobra.Command{
	Use:   "stats [paths...]",
	Short: "Print per-week contributor statistics.",
	Long: `Extract commit history and print the weekly aggregate table.

Each row covers one Monday-aligned week: commit-weighted mean author
tenure, commit count, newcomers, leavers and active contributors.

Examples:
  # Table on stdout
  gitcrew stats ~/src/project

  # Machine-readable exports
  gitcrew stats ~/src/project --output json
  gitcrew stats ~/src/project --output csv --output-file weekly.csv
  gitcrew stats ~/src/project --output parquet --output-file weekly.parquet`,
	Args:    cobra.ArbitraryArgs,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteStats(rootCtx, cfg, gitClient); err != nil {
			contract.LogFatal("Cannot compute stats", err)
		}
	},
}
