package cmd

import (
	"github.com/spf13/cobra"

	"github.com/gitcrew/gitcrew/core"
	"github.com/gitcrew/gitcrew/internal/contract"
)

// networkCmd renders the collaboration graph.
var networkCmd = &cobra.Command{
	Use:   "network [paths...]",
	Short: "Chart who has worked with whom.",
	Long: `Build the contributor collaboration network and render it as an
interactive force-layout graph.

Two authors are linked when they have touched at least one file in
common; link strength is the number of shared files.

Examples:
  # Collaboration graph for one repository
  gitcrew network ~/src/project --output-file network.html

  # Across all repositories of a team, last year only
  gitcrew network ~/src --start "1 year ago"`,
	Args:    cobra.ArbitraryArgs,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteNetwork(rootCtx, cfg, gitClient); err != nil {
			contract.LogFatal("Cannot render network", err)
		}
	},
}
