package algo

import (
	"cmp"
	"slices"

	"github.com/huangsam/pickscore/schema"
)

// metricValue returns the primary sort key of a standing.
func metricValue(s schema.Standing, metric schema.RankMetric) float64 {
	switch metric {
	case schema.AccuracyMetric:
		return s.Accuracy
	case schema.PicksCorrectMetric:
		return float64(s.PicksCorrect)
	case schema.PerfectPicksMetric:
		return float64(s.PerfectPicks)
	case schema.PicksTotalMetric:
		return float64(s.PicksTotal)
	default:
		return float64(s.TotalPoints)
	}
}

// compareStandings orders a before b when it ranks higher.
func compareStandings(a, b schema.Standing, metric schema.RankMetric) int {
	if c := cmp.Compare(metricValue(b, metric), metricValue(a, metric)); c != 0 {
		return c
	}
	switch metric {
	case schema.AccuracyMetric:
		if c := cmp.Compare(b.PicksCorrect, a.PicksCorrect); c != 0 {
			return c
		}
	case schema.PerfectPicksMetric:
		if c := cmp.Compare(b.TotalPoints, a.TotalPoints); c != 0 {
			return c
		}
	}
	return cmp.Compare(a.User.ID, b.User.ID)
}

// RankStandings sorts standings by the metric in descending order, assigns
// 1-based ranks and returns the top 'limit' rows. A limit of zero or less
// returns every row. The input slice is not modified.
func RankStandings(standings []schema.Standing, metric schema.RankMetric, limit int) []schema.Standing {
	ranked := slices.Clone(standings)
	slices.SortStableFunc(ranked, func(a, b schema.Standing) int {
		return compareStandings(a, b, metric)
	})
	for i := range ranked {
		ranked[i].Rank = i + 1
	}
	if limit > 0 && len(ranked) > limit {
		return ranked[:limit]
	}
	return ranked
}

// FindStanding returns the ranked row for a user, if present.
func FindStanding(ranked []schema.Standing, userID string) (schema.Standing, bool) {
	for _, s := range ranked {
		if s.User.ID == userID {
			return s, true
		}
	}
	return schema.Standing{}, false
}
