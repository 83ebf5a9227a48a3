package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/huangsam/pickscore/internal/contract"
	"github.com/huangsam/pickscore/internal/parquet"
	"github.com/huangsam/pickscore/schema"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

// historyFixedWidth is the room taken by every column except the matchup.
const historyFixedWidth = 85

// PrintHistory outputs a user's pick history, dispatching based on the output format configured.
func PrintHistory(result schema.HistoryResult, cfg *contract.Config) error {
	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, result)
		}, "Wrote JSON")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			csvWriter := csv.NewWriter(w)
			defer csvWriter.Flush()
			return writeCSVHistory(csvWriter, result)
		}, "Wrote CSV")
	case schema.ParquetOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return parquet.WriteRows(w, parquet.ConvertHistory(result))
		}, "Wrote Parquet")
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeHistoryTable(w, result, cfg)
		}, "Wrote table")
	}
}

// writeHistoryTable generates and writes the human-readable table.
func writeHistoryTable(w io.Writer, result schema.HistoryResult, cfg *contract.Config) error {
	table := tablewriter.NewWriter(w)
	table.Header([]string{"Date", "Event", "Matchup", "Pick", "Result", "Status", "Points"})
	table.Configure(func(cfg *tablewriter.Config) {
		cfg.Row.Alignment.Global = tw.AlignLeft
	})

	matchupWidth := getMaxNameWidth(cfg, historyFixedWidth)
	var data [][]string
	for _, r := range result.Rows {
		data = append(data, []string{
			formatDate(r),
			contract.TruncateText(r.EventName, 24),
			contract.TruncateText(r.Matchup, matchupWidth),
			schema.Prediction{Fighter: r.Fighter, Method: r.Method, Round: r.Round}.String(),
			resultText(r.Result),
			statusLabel(r.Status, r.Points, cfg),
			pointsText(r),
		})
	}

	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	counts := make(map[schema.PickStatus]int)
	for _, r := range result.Rows {
		counts[r.Status]++
	}
	_, err := fmt.Fprintf(w, "%s: %s points from %d picks (%d correct, %d incorrect, %d pending, %d void)\n",
		result.User.DisplayNameOrID(), schema.FormatThousands(result.Points), len(result.Rows),
		counts[schema.CorrectStatus], counts[schema.IncorrectStatus],
		counts[schema.PendingStatus], counts[schema.VoidStatus])
	return err
}

func formatDate(r schema.HistoryRow) string {
	if r.Date.IsZero() {
		return "-"
	}
	return r.Date.Format("2006-01-02")
}

func resultText(r *schema.Result) string {
	if r == nil {
		return "-"
	}
	return r.String()
}

// pointsText shows a "+N" badge for scored picks and a dash otherwise.
func pointsText(r schema.HistoryRow) string {
	switch r.Status {
	case schema.CorrectStatus, schema.IncorrectStatus:
		return fmt.Sprintf("+%d", r.Points)
	default:
		return "-"
	}
}
