package outwriter

import (
	"encoding/csv"
	"strconv"

	"github.com/huangsam/pickscore/internal/contract"
	"github.com/huangsam/pickscore/schema"
)

// writeCSVHistory writes a user's scored picks in CSV format.
func writeCSVHistory(w *csv.Writer, result schema.HistoryResult) error {
	header := []string{
		"bout_id",
		"event_name",
		"date",
		"matchup",
		"weight_class",
		"card_position",
		"picked_corner",
		"picked_method",
		"picked_round",
		"result",
		"status",
		"points",
	}
	if err := w.Write(header); err != nil {
		return err
	}
	for _, r := range result.Rows {
		date := ""
		if !r.Date.IsZero() {
			date = r.Date.Format(contract.DateTimeFormat)
		}
		outcome := ""
		if r.Result != nil {
			outcome = r.Result.String()
		}
		rec := []string{
			strconv.FormatInt(r.BoutID, 10),
			r.EventName,
			date,
			r.Matchup,
			r.WeightClass,
			string(r.Position),
			string(r.Fighter),
			string(r.Method),
			strconv.Itoa(int(r.Round)),
			outcome,
			string(r.Status),
			strconv.Itoa(r.Points),
		}
		if err := w.Write(rec); err != nil {
			return err
		}
	}
	return nil
}
