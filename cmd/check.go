package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/huangsam/pickscore/core"
	"github.com/huangsam/pickscore/internal/contract"
	"github.com/spf13/cobra"
)

// checkCmd gates a dataset on integrity problems.
var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Scan a dataset for integrity problems (for CI/CD gating)",
	Long: `Check a dataset before it is scored.

Reports:
- Picks from unknown users or on unknown bouts
- Picks without a user id
- More than one pick by the same user on the same bout
- Rounds beyond the number of rounds scheduled for the bout
- Invalid picks, results and card positions
- Users, events or bouts listed more than once

Exits with a non-zero status when any problem is found.

Examples:
  # Gate a nightly export
  pickscore check --data picks.json

  # Machine-readable report
  pickscore check --data picks.json --output json`,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		err := core.ExecuteCheck(rootCtx, cfg, storeManager)
		if errors.Is(err, core.ErrIntegrityProblems) {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		if err != nil {
			contract.LogFatal("Cannot check dataset", err)
		}
	},
}
