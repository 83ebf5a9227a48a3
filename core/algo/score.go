// Package algo has the pick scoring rule and the standings ranker.
package algo

import "github.com/huangsam/pickscore/schema"

// Score compares a prediction against an official result.
//
// The winner must match to earn anything. A decision pick then earns one
// extra point for the method. A finish pick earns one extra point for the
// method and one more when the method and round both match.
//
// Score never fails. A result without a winning corner earns zero points;
// callers that care about draws check Result.Decided first.
func Score(pick schema.Prediction, result schema.Result) schema.ScoredPick {
	fighterCorrect := result.Decided() && string(pick.Fighter) == string(result.Winner)
	methodCorrect := pick.Method == result.Method
	roundCorrect := pick.Method != schema.Decision &&
		pick.Round != 0 &&
		pick.Round == result.Round

	scored := schema.ScoredPick{
		Breakdown: schema.Breakdown{
			FighterCorrect: fighterCorrect,
			MethodCorrect:  methodCorrect,
			RoundCorrect:   roundCorrect,
		},
	}

	switch {
	case !fighterCorrect:
		scored.Points = schema.NoPoints
	case pick.Method == schema.Decision:
		if methodCorrect {
			scored.Points = schema.MethodPoints
		} else {
			scored.Points = schema.FighterPoints
		}
	case methodCorrect && roundCorrect:
		scored.Points = schema.MaxPoints
	case methodCorrect:
		scored.Points = schema.MethodPoints
	default:
		scored.Points = schema.FighterPoints
	}
	return scored
}

// Status classifies an entry from its result and score.
func Status(e schema.PickEntry) schema.PickStatus {
	switch {
	case e.Result == nil:
		return schema.PendingStatus
	case !e.Result.Decided():
		return schema.VoidStatus
	}
	var points int
	if e.Scored != nil {
		points = e.Scored.Points
	} else {
		points = Score(e.Pick, *e.Result).Points
	}
	if points > 0 {
		return schema.CorrectStatus
	}
	return schema.IncorrectStatus
}

// ScoreEntries recomputes Scored for every entry in place. Entries without a
// decided result have Scored cleared so stale scores never survive a result
// being withdrawn.
func ScoreEntries(entries []schema.PickEntry) {
	for i := range entries {
		r := entries[i].Result
		if r == nil || !r.Decided() {
			entries[i].Scored = nil
			continue
		}
		scored := Score(entries[i].Pick, *r)
		entries[i].Scored = &scored
	}
}
