package cmd

import (
	"github.com/spf13/cobra"

	"github.com/gitcrew/gitcrew/core"
	"github.com/gitcrew/gitcrew/internal/contract"
)

// chartCmd renders the weekly contributor chart.
var chartCmd = &cobra.Command{
	Use:   "chart [paths...]",
	Short: "Render contributor activity as an interactive HTML chart.",
	Long: `Extract commit history and chart per-week contributor statistics.

The chart overlays mean author tenure (raw and smoothed), commit volume,
newcomer and leaver counts, and the active contributor estimate.

Examples:
  # Chart the repository in the current directory
  gitcrew chart

  # Chart every repository under ~/src for the last two years
  gitcrew chart ~/src --start "2 years ago" --output-file team.html

  # Chart a fixed window with a custom title
  gitcrew chart ~/src/project -f 2020-01-01 -u 2023-12-31 -t "Project team"`,
	Args:    cobra.ArbitraryArgs,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteChart(rootCtx, cfg, gitClient); err != nil {
			contract.LogFatal("Cannot render chart", err)
		}
	},
}
