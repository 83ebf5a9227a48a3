package cmd

import (
	"github.com/huangsam/pickscore/internal/mcp"
	"github.com/spf13/cobra"
)

// mcpCmd represents the mcp command.
var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start the pickscore MCP server",
	Long: `Launch an MCP server on stdio that lets AI agents score picks and read
leaderboards through standard tools:

  score_pick        - score one pick against one result
  get_leaderboard   - rank users within an optional scope
  get_pick_history  - list one user's scored picks

The --data flag sets the default dataset; each tool call may override it.`,
	// Headers are suppressed per call since stdio carries the protocol.
	PreRunE: sharedSetupWrapper,
	RunE: func(_ *cobra.Command, _ []string) error {
		return mcp.StartMCPServer(rootCtx, cfg)
	},
}
