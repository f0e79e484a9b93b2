package cmd

import (
	"github.com/spf13/cobra"

	"github.com/gitcrew/gitcrew/internal/mcp"
)

// mcpCmd represents the mcp command.
var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start the gitcrew MCP server",
	Long: `Launch an MCP server that lets AI agents query weekly contributor
statistics and author tenure windows via standard tools. The protocol runs
on stdio, so all diagnostics go to stderr.`,
	PreRunE: sharedSetupWrapper,
	RunE: func(_ *cobra.Command, _ []string) error {
		return mcp.StartMCPServer(rootCtx, cfg, gitClient)
	},
}
