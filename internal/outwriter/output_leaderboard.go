package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"time"

	"github.com/huangsam/pickscore/internal/contract"
	"github.com/huangsam/pickscore/internal/parquet"
	"github.com/huangsam/pickscore/schema"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

// leaderboardFixedWidth is the room taken by every column except the name.
const leaderboardFixedWidth = 70

// PrintLeaderboard outputs ranked standings, dispatching based on the output format configured.
func PrintLeaderboard(result schema.LeaderboardResult, cfg *contract.Config, duration time.Duration) error {
	fmtFloat, fmtPercent := createFormatters(cfg.Precision)

	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSONLeaderboard(w, result)
		}, "Wrote JSON")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			csvWriter := csv.NewWriter(w)
			defer csvWriter.Flush()
			return writeCSVLeaderboard(csvWriter, result, fmtFloat)
		}, "Wrote CSV")
	case schema.ParquetOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return parquet.WriteRows(w, parquet.ConvertStandings(result))
		}, "Wrote Parquet")
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeLeaderboardTable(w, result, cfg, fmtPercent, duration)
		}, "Wrote table")
	}
}

// writeLeaderboardTable generates and writes the human-readable table.
func writeLeaderboardTable(w io.Writer, result schema.LeaderboardResult, cfg *contract.Config, fmtPercent func(float64) string, duration time.Duration) error {
	table := tablewriter.NewWriter(w)
	table.Header([]string{"Rank", "User", "Points", "Picks", "Correct", "Pending", "Perfect", "Accuracy"})
	table.Configure(func(cfg *tablewriter.Config) {
		cfg.Row.Alignment.Global = tw.AlignRight
	})

	nameWidth := getMaxNameWidth(cfg, leaderboardFixedWidth)
	var data [][]string
	for _, s := range result.Standings {
		name := contract.TruncateText(s.User.DisplayNameOrID(), nameWidth)
		if cfg.UserID != "" && s.User.ID == cfg.UserID {
			name += " (you)"
		}
		data = append(data, standingRow(s, name, cfg, fmtPercent))
	}

	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	if result.You != nil && !containsUser(result.Standings, result.You.User.ID) {
		you := result.You
		if _, err := fmt.Fprintf(w, "You: %s %s with %s points (%s accuracy)\n",
			contract.GetRankLabel(you.Rank), you.User.DisplayNameOrID(),
			schema.FormatThousands(you.TotalPoints), fmtPercent(you.Accuracy)); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintf(w, "Showing %d of %d users (scope: %s, metric: %s)\n",
		len(result.Standings), result.Total, result.Scope.Label(), result.Metric); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Leaderboard computed in %v. Snapshot backend: %s\n", duration, cfg.SnapshotBackend); err != nil {
		return err
	}
	return nil
}

// standingRow renders one standing as table cells.
func standingRow(s schema.Standing, name string, cfg *contract.Config, fmtPercent func(float64) string) []string {
	return []string{
		rankLabel(s.Rank, cfg),
		name,
		schema.FormatThousands(s.TotalPoints),
		schema.FormatThousands(s.PicksTotal),
		schema.FormatThousands(s.PicksCorrect),
		schema.FormatThousands(s.PicksPending),
		schema.FormatThousands(s.PerfectPicks),
		fmtPercent(s.Accuracy),
	}
}

func containsUser(standings []schema.Standing, userID string) bool {
	for _, s := range standings {
		if s.User.ID == userID {
			return true
		}
	}
	return false
}
