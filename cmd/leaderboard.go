package cmd

import (
	"github.com/huangsam/pickscore/core"
	"github.com/huangsam/pickscore/internal/contract"
	"github.com/spf13/cobra"
)

// leaderboardCmd ranks users by their pick scores.
var leaderboardCmd = &cobra.Command{
	Use:   "leaderboard",
	Short: "Rank users by the points their picks earned",
	Long: `Score every pick in the dataset and rank users within a scope.

Each pick earns up to 3 points:
- 1 point for the right fighter
- 1 more for the right method
- 1 more for the right round on a KO/TKO or submission

Draws and no contests are void and count for nobody. Picks on bouts without
a result are pending: they count toward picks made but not toward accuracy.

Scope filters narrow the leaderboard to a tab (main card, prelims), a
victory method, a finishing round, a weight class, a year, an event or
title fights. When a snapshot backend is configured each run is recorded.

Examples:
  # Global leaderboard
  pickscore leaderboard --data picks.json

  # Main card accuracy leaders for 2024, showing your own row
  pickscore leaderboard --data picks.json --category main-card --year 2024 \
    --metric accuracy --user u1 --limit 10

  # Who called the knockouts?
  pickscore leaderboard --data picks.json --method KO/TKO --output csv`,
	PreRunE: trackedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteLeaderboard(rootCtx, cfg, storeManager); err != nil {
			contract.LogFatal("Cannot build leaderboard", err)
		}
	},
}
