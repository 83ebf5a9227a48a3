package outwriter

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/huangsam/pickscore/schema"
)

// writeJSONLeaderboard writes the full leaderboard result in JSON format.
func writeJSONLeaderboard(w io.Writer, result schema.LeaderboardResult) error {
	type JSONStanding struct {
		schema.Standing
		Medal string `json:"medal,omitempty"`
	}
	type JSONLeaderboard struct {
		Scope     string           `json:"scope"`
		Metric    string           `json:"metric"`
		Total     int              `json:"total_users"`
		Standings []JSONStanding   `json:"standings"`
		You       *schema.Standing `json:"you,omitempty"`
	}

	out := JSONLeaderboard{
		Scope:     result.Scope.Label(),
		Metric:    string(result.Metric),
		Total:     result.Total,
		Standings: make([]JSONStanding, len(result.Standings)),
		You:       result.You,
	}
	for i, s := range result.Standings {
		out.Standings[i] = JSONStanding{Standing: s, Medal: schema.MedalLabel(s.Rank)}
	}
	return writeJSON(w, out)
}

// writeCSVLeaderboard writes the standings in CSV format.
func writeCSVLeaderboard(w *csv.Writer, result schema.LeaderboardResult, fmtFloat func(float64) string) error {
	header := []string{
		"rank",
		"user_id",
		"username",
		"total_points",
		"picks_total",
		"picks_correct",
		"picks_pending",
		"perfect_picks",
		"accuracy",
		"medal",
		"metric",
		"scope",
	}
	if err := w.Write(header); err != nil {
		return err
	}
	for _, s := range result.Standings {
		rec := []string{
			strconv.Itoa(s.Rank),
			s.User.ID,
			s.User.DisplayNameOrID(),
			strconv.Itoa(s.TotalPoints),
			strconv.Itoa(s.PicksTotal),
			strconv.Itoa(s.PicksCorrect),
			strconv.Itoa(s.PicksPending),
			strconv.Itoa(s.PerfectPicks),
			fmtFloat(s.Accuracy),
			schema.MedalLabel(s.Rank),
			string(result.Metric),
			result.Scope.Label(),
		}
		if err := w.Write(rec); err != nil {
			return err
		}
	}
	return nil
}
