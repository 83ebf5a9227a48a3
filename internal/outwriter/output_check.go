package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/huangsam/pickscore/internal/contract"
	"github.com/huangsam/pickscore/schema"

	"github.com/olekukonko/tablewriter"
)

// PrintIssues outputs dataset integrity problems found by the check command.
func PrintIssues(issues []schema.Issue, cfg *contract.Config) error {
	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			if issues == nil {
				issues = []schema.Issue{}
			}
			return writeJSON(w, issues)
		}, "Wrote JSON")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			csvWriter := csv.NewWriter(w)
			defer csvWriter.Flush()
			return writeCSVIssues(csvWriter, issues)
		}, "Wrote CSV")
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeIssuesTable(w, issues, cfg)
		}, "Wrote table")
	}
}

func writeIssuesTable(w io.Writer, issues []schema.Issue, cfg *contract.Config) error {
	if len(issues) == 0 {
		mark := ""
		if cfg.UseEmojis {
			mark = "✅ "
		}
		_, err := fmt.Fprintf(w, "%sNo integrity problems found\n", mark)
		return err
	}

	table := tablewriter.NewWriter(w)
	table.Header([]string{"Kind", "Pick", "Bout", "User", "Message"})
	var data [][]string
	for _, is := range issues {
		data = append(data, []string{
			string(is.Kind),
			textOrDash(is.PickID),
			idText(is.BoutID),
			is.UserID,
			contract.TruncateText(is.Message, getMaxNameWidth(cfg, 50)),
		})
	}
	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "%d problem(s) found\n", len(issues))
	return err
}

func textOrDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

func idText(id int64) string {
	if id == 0 {
		return "-"
	}
	return strconv.FormatInt(id, 10)
}

func writeCSVIssues(w *csv.Writer, issues []schema.Issue) error {
	if err := w.Write([]string{"kind", "pick_id", "bout_id", "user_id", "message"}); err != nil {
		return err
	}
	for _, is := range issues {
		rec := []string{
			string(is.Kind),
			is.PickID,
			strconv.FormatInt(is.BoutID, 10),
			is.UserID,
			is.Message,
		}
		if err := w.Write(rec); err != nil {
			return err
		}
	}
	return nil
}
