package cmd

import (
	"github.com/huangsam/pickscore/core"
	"github.com/huangsam/pickscore/internal/contract"
	"github.com/spf13/cobra"
)

// historyCmd lists one user's scored picks.
var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List a user's picks with status and points",
	Long: `Show every pick a user made, newest bout first.

Each row shows the matchup, the pick, the official result, and a status:
- correct   - the pick earned at least 1 point
- incorrect - the pick earned nothing
- pending   - the bout has no result yet
- void      - the bout ended in a draw or no contest

Examples:
  # Pick history for a user
  pickscore history --data picks.json --user u1

  # Export for a spreadsheet
  pickscore history --data picks.json --user u1 --output csv --output-file u1.csv`,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteHistory(rootCtx, cfg, storeManager); err != nil {
			contract.LogFatal("Cannot build pick history", err)
		}
	},
}
