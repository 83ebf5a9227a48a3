// Package agg groups scored picks into per-user standings.
package agg

import (
	"strings"

	"github.com/huangsam/pickscore/core/algo"
	"github.com/huangsam/pickscore/schema"
)

// tally accumulates one user's counts before accuracy is derived.
type tally struct {
	user    schema.UserRef
	points  int
	total   int
	correct int
	pending int
	perfect int
}

func (t *tally) add(e schema.PickEntry) {
	t.total++
	if e.Result == nil {
		t.pending++
		return
	}
	points := entryPoints(e)
	t.points += points
	if points > 0 {
		t.correct++
	}
	if points == schema.MaxPoints {
		t.perfect++
	}
}

func (t *tally) standing() schema.Standing {
	s := schema.Standing{
		User:         t.user,
		TotalPoints:  t.points,
		PicksTotal:   t.total,
		PicksCorrect: t.correct,
		PicksPending: t.pending,
		PerfectPicks: t.perfect,
	}
	if decided := t.total - t.pending; decided > 0 {
		s.Accuracy = float64(t.correct) / float64(decided)
	}
	return s
}

// entryPoints prefers the stored score and falls back to scoring the entry.
func entryPoints(e schema.PickEntry) int {
	if e.Scored != nil {
		return e.Scored.Points
	}
	return algo.Score(e.Pick, *e.Result).Points
}

// Aggregate builds one standing per user from the entries inside scope.
//
// Entries with a blank user id and entries with a draw or no contest result
// are dropped. Users appear in the order they are first seen; ranking is
// left to algo.RankStandings.
func Aggregate(entries []schema.PickEntry, scope schema.Scope) []schema.Standing {
	tallies := make(map[string]*tally)
	var order []string

	for _, e := range entries {
		id := strings.TrimSpace(e.User.ID)
		if id == "" {
			continue
		}
		if !scope.Matches(e) {
			continue
		}
		if e.Result != nil && !e.Result.Decided() {
			continue
		}
		t, ok := tallies[id]
		if !ok {
			t = &tally{user: e.User}
			t.user.ID = id
			tallies[id] = t
			order = append(order, id)
		}
		t.add(e)
	}

	standings := make([]schema.Standing, 0, len(order))
	for _, id := range order {
		standings = append(standings, tallies[id].standing())
	}
	return standings
}

// UserEntries returns the entries that belong to a user, in input order.
func UserEntries(entries []schema.PickEntry, userID string) []schema.PickEntry {
	var out []schema.PickEntry
	for _, e := range entries {
		if e.User.ID == userID {
			out = append(out, e)
		}
	}
	return out
}
