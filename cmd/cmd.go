// Package cmd defines the command-line interface for pickscore.
package cmd

import (
	"strings"

	"github.com/huangsam/pickscore/internal/contract"
	"github.com/huangsam/pickscore/schema"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// methodChoices lists the accepted victory methods for flag help.
var methodChoices = strings.Join(schema.VictoryMethodNames(), " or ")

func init() {
	// Call initConfig on Cobra's initialization
	cobra.OnInitialize(initConfig)

	// Add primary subcommands to the root command
	rootCmd.AddCommand(leaderboardCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(scoreCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(metricsCmd)
	rootCmd.AddCommand(snapshotCmd)
	rootCmd.AddCommand(mcpCmd)
	rootCmd.AddCommand(versionCmd)

	// Add the snapshot subcommands to the parent snapshot command
	snapshotCmd.AddCommand(snapshotStatusCmd)
	snapshotCmd.AddCommand(snapshotClearCmd)
	snapshotCmd.AddCommand(snapshotExportCmd)
	snapshotCmd.AddCommand(snapshotMigrateCmd)

	// Bind all persistent flags of rootCmd to Viper
	rootCmd.PersistentFlags().StringP("data", "d", "", "Path to a JSON or YAML dataset of users, bouts, results and picks")
	rootCmd.PersistentFlags().StringP("user", "u", "", "User id to highlight in the leaderboard or list in history")
	rootCmd.PersistentFlags().IntP("limit", "l", contract.DefaultResultLimit, "Number of standings to display")
	rootCmd.PersistentFlags().String("metric", string(schema.TotalPointsMetric), "Ranking metric: total_points or accuracy or picks_correct or perfect_picks or picks_total")
	rootCmd.PersistentFlags().String("output", string(schema.TextOut), "Output format: text or csv or json or parquet")
	rootCmd.PersistentFlags().String("output-file", "", "Optional path to write output to")
	rootCmd.PersistentFlags().Int("precision", contract.DefaultPrecision, "Decimal precision for numeric columns")
	rootCmd.PersistentFlags().Int("width", 0, "Terminal width override (0 = auto-detect)")
	rootCmd.PersistentFlags().String("store-backend", string(schema.SQLiteBackend), "Snapshot backend: sqlite or mysql or postgresql or none")
	rootCmd.PersistentFlags().String("store-db-connect", "", "Database connection string for mysql/postgresql (e.g., user:pass@tcp(host:port)/dbname?parseTime=true)")
	rootCmd.PersistentFlags().String("color", "yes", "Enable colored labels in output (yes/no/true/false/1/0)")
	rootCmd.PersistentFlags().String("emoji", "no", "Enable emojis in headers and medals (yes/no/true/false/1/0)")
	rootCmd.PersistentFlags().String("config", "", "Path to config file")
	if err := viper.BindPFlags(rootCmd.PersistentFlags()); err != nil {
		contract.LogFatal("Error binding root flags", err)
	}

	// Bind all flags of leaderboardCmd to Viper
	leaderboardCmd.Flags().String("category", string(schema.GlobalCategory), "Leaderboard tab: global or main-events or main-card or prelims or early-prelims")
	leaderboardCmd.Flags().String("method", "", "Only bouts won by this method: "+methodChoices)
	leaderboardCmd.Flags().Int("round", 0, "Only bouts that ended in this round (1-5)")
	leaderboardCmd.Flags().String("weight-class", "", "Only bouts in this weight class")
	leaderboardCmd.Flags().Int("year", 0, "Only events held in this year")
	leaderboardCmd.Flags().Int64("event", 0, "Only bouts on this event id")
	leaderboardCmd.Flags().Bool("title-only", false, "Only title fights")
	if err := viper.BindPFlags(leaderboardCmd.Flags()); err != nil {
		contract.LogFatal("Error binding leaderboard flags", err)
	}

	// Flags of scoreCmd are read directly since they describe a single pick
	scoreCmd.Flags().String("fighter", "", "Picked corner: red or blue")
	scoreCmd.Flags().String("method", "", "Picked method: "+methodChoices)
	scoreCmd.Flags().Int("round", 0, "Picked round (1-5), ignored for decisions")
	scoreCmd.Flags().String("winner", "", "Official winner: red or blue or draw or nc")
	scoreCmd.Flags().String("result-method", "", "Official method: "+methodChoices)
	scoreCmd.Flags().Int("result-round", 0, "Official round (1-5), ignored for decisions")
	_ = scoreCmd.MarkFlagRequired("fighter")
	_ = scoreCmd.MarkFlagRequired("method")
	_ = scoreCmd.MarkFlagRequired("winner")

	// Bind all flags of snapshotMigrateCmd to Viper
	snapshotMigrateCmd.Flags().Int("target-version", -1, "Target migration version (-1 means latest, 0 means rollback to initial state)")
	if err := viper.BindPFlags(snapshotMigrateCmd.Flags()); err != nil {
		contract.LogFatal("Error binding snapshot migrate flags", err)
	}
}
