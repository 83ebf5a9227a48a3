package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/huangsam/pickscore/internal/contract"
	"github.com/huangsam/pickscore/schema"
)

// PrintScoreReport outputs the result of scoring a single pick.
func PrintScoreReport(report schema.ScoreReport, cfg *contract.Config) error {
	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, report)
		}, "Wrote JSON")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			csvWriter := csv.NewWriter(w)
			defer csvWriter.Flush()
			return writeCSVScore(csvWriter, report)
		}, "Wrote CSV")
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeScoreText(w, report, cfg)
		}, "Wrote text")
	}
}

// writeScoreText prints the breakdown as a short checklist.
func writeScoreText(w io.Writer, report schema.ScoreReport, cfg *contract.Config) error {
	if _, err := fmt.Fprintf(w, "Pick:   %s\n", report.Pick); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Result: %s\n", report.Result); err != nil {
		return err
	}
	if report.Breakdown != nil {
		checks := []struct {
			name string
			ok   bool
		}{
			{"Fighter", report.Breakdown.FighterCorrect},
			{"Method", report.Breakdown.MethodCorrect},
			{"Round", report.Breakdown.RoundCorrect},
		}
		for _, c := range checks {
			if _, err := fmt.Fprintf(w, "  %-8s %s\n", c.name, checkMark(c.ok, cfg.UseEmojis)); err != nil {
				return err
			}
		}
	}
	_, err := fmt.Fprintf(w, "Status: %s  Points: %d/%d\n", statusLabel(report.Status, report.Points, cfg), report.Points, schema.MaxPoints)
	return err
}

func checkMark(ok, emoji bool) string {
	switch {
	case ok && emoji:
		return "✅"
	case emoji:
		return "❌"
	case ok:
		return "yes"
	default:
		return "no"
	}
}

// writeCSVScore writes the report as a single CSV record.
func writeCSVScore(w *csv.Writer, report schema.ScoreReport) error {
	header := []string{"pick", "result", "status", "points", "fighter_correct", "method_correct", "round_correct"}
	if err := w.Write(header); err != nil {
		return err
	}
	var b schema.Breakdown
	if report.Breakdown != nil {
		b = *report.Breakdown
	}
	return w.Write([]string{
		report.Pick.String(),
		report.Result.String(),
		string(report.Status),
		strconv.Itoa(report.Points),
		strconv.FormatBool(b.FighterCorrect),
		strconv.FormatBool(b.MethodCorrect),
		strconv.FormatBool(b.RoundCorrect),
	})
}
