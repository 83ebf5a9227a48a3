package cmd

import (
	"fmt"

	"github.com/huangsam/pickscore/core"
	"github.com/huangsam/pickscore/internal/contract"
	"github.com/huangsam/pickscore/schema"
	"github.com/spf13/cobra"
)

// scoreCmd scores a single pick given on the command line.
var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Score one pick against one result",
	Long: `Score a single pick without a dataset and explain the points.

The breakdown shows which parts of the pick matched: fighter, method and
round. A round on a decision pick or result is ignored.

Examples:
  # Perfect call: 3 points
  pickscore score --fighter red --method KO/TKO --round 2 \
    --winner red --result-method KO/TKO --result-round 2

  # Right fighter, wrong method: 1 point
  pickscore score --fighter blue --method SUB --round 1 \
    --winner blue --result-method DEC`,
	PreRunE: sharedSetupWrapper,
	Run: func(cmd *cobra.Command, _ []string) {
		pick, result, err := readScoreFlags(cmd)
		if err != nil {
			contract.LogFatal("Invalid score input", err)
		}
		if err := core.ExecuteScore(rootCtx, cfg, pick, result); err != nil {
			contract.LogFatal("Cannot score pick", err)
		}
	},
}

// readScoreFlags builds the pick and result from the score flags.
func readScoreFlags(cmd *cobra.Command) (schema.Prediction, schema.Result, error) {
	flags := cmd.Flags()
	fighter, _ := flags.GetString("fighter")
	method, _ := flags.GetString("method")
	round, _ := flags.GetInt("round")
	winner, _ := flags.GetString("winner")
	resultMethod, _ := flags.GetString("result-method")
	resultRound, _ := flags.GetInt("result-round")

	pick, err := schema.ParsePrediction(fighter, method, round)
	if err != nil {
		return schema.Prediction{}, schema.Result{}, fmt.Errorf("pick: %w", err)
	}
	result, err := schema.ParseResult(winner, resultMethod, resultRound)
	if err != nil {
		return schema.Prediction{}, schema.Result{}, fmt.Errorf("result: %w", err)
	}
	return pick, result, nil
}
