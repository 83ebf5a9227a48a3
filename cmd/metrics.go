package cmd

import (
	"github.com/huangsam/pickscore/internal/contract"
	"github.com/huangsam/pickscore/internal/outwriter"
	"github.com/spf13/cobra"
)

// metricsCmd displays the point table and ranking metrics.
var metricsCmd = &cobra.Command{
	Use:   "metrics",
	Short: "Display the point table and ranking metric definitions",
	Long: `Show how picks earn points and how each ranking metric orders users.

No dataset is read - this is purely informational.

Examples:
  # Show the point table
  pickscore metrics

  # As JSON for a front end
  pickscore metrics --output json`,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := outwriter.NewOutWriter().WriteMetrics(cfg); err != nil {
			contract.LogFatal("Cannot display metrics", err)
		}
	},
}
