package agg

import (
	"testing"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/huangsam/pickscore/core/algo"
	"github.com/huangsam/pickscore/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	koR2  = &schema.Result{Winner: schema.RedWins, Method: schema.KnockOut, Round: 2}
	decB  = &schema.Result{Winner: schema.BlueWins, Method: schema.Decision}
	drawR = &schema.Result{Winner: schema.Draw}
)

func entry(userID, name string, boutID int64, pos schema.CardPosition, p schema.Prediction, r *schema.Result) schema.PickEntry {
	return schema.PickEntry{
		User: schema.UserRef{ID: userID, DisplayName: name},
		Bout: schema.BoutMeta{
			BoutID:   boutID,
			EventID:  1,
			Position: pos,
			Date:     time.Date(2024, 3, 9, 0, 0, 0, 0, time.UTC),
		},
		Pick:   p,
		Result: r,
	}
}

func TestAggregate(t *testing.T) {
	perfect := schema.Prediction{Fighter: schema.RedCorner, Method: schema.KnockOut, Round: 2}
	decPick := schema.Prediction{Fighter: schema.BlueCorner, Method: schema.Decision}
	wrong := schema.Prediction{Fighter: schema.BlueCorner, Method: schema.KnockOut, Round: 2}

	entries := []schema.PickEntry{
		entry("u2", "Bea", 1, schema.MainEvent, wrong, koR2),
		entry("u1", "Al", 1, schema.MainEvent, perfect, koR2),
		entry("u1", "Al (renamed)", 2, schema.Prelims, decPick, decB),
		entry("u1", "Al", 3, schema.MainCard, perfect, nil),
		entry("u1", "Al", 4, schema.MainCard, perfect, drawR),
		entry("", "ghost", 1, schema.MainEvent, perfect, koR2),
		entry("   ", "blank", 1, schema.MainEvent, perfect, koR2),
	}

	got := Aggregate(entries, schema.Scope{})
	want := []schema.Standing{
		{
			User:         schema.UserRef{ID: "u2", DisplayName: "Bea"},
			PicksTotal:   1,
			PicksCorrect: 0,
			Accuracy:     0,
		},
		{
			User:         schema.UserRef{ID: "u1", DisplayName: "Al"},
			TotalPoints:  5,
			PicksTotal:   3,
			PicksCorrect: 2,
			PicksPending: 1,
			PerfectPicks: 1,
			Accuracy:     1,
		},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Aggregate mismatch (-want +got):\n%s", diff)
	}
}

func TestAggregateScopeIsolation(t *testing.T) {
	perfect := schema.Prediction{Fighter: schema.RedCorner, Method: schema.KnockOut, Round: 2}
	entries := []schema.PickEntry{
		entry("u1", "Al", 1, schema.MainEvent, perfect, koR2),
		entry("u1", "Al", 2, schema.Prelims, perfect, koR2),
		entry("u2", "Bea", 3, schema.EarlyPrelims, perfect, koR2),
		entry("u2", "Bea", 4, schema.Prelims, perfect, nil),
	}

	t.Run("prelims only", func(t *testing.T) {
		got := Aggregate(entries, schema.Scope{Category: schema.PrelimsCategory})
		require.Len(t, got, 2)
		assert.Equal(t, 3, got[0].TotalPoints)
		assert.Equal(t, 1, got[1].PicksPending)
		assert.Zero(t, got[1].TotalPoints)
	})

	t.Run("method scope excludes pending", func(t *testing.T) {
		got := Aggregate(entries, schema.Scope{Method: schema.KnockOut})
		require.Len(t, got, 2)
		assert.Equal(t, 2, got[0].PicksTotal)
		assert.Equal(t, 1, got[1].PicksTotal)
		assert.Zero(t, got[1].PicksPending)
	})

	t.Run("empty scope result", func(t *testing.T) {
		got := Aggregate(entries, schema.Scope{Method: schema.Submission})
		assert.Empty(t, got)
	})
}

func TestAggregateAllPending(t *testing.T) {
	p := schema.Prediction{Fighter: schema.RedCorner, Method: schema.Decision}
	got := Aggregate([]schema.PickEntry{
		entry("u1", "Al", 1, schema.MainEvent, p, nil),
		entry("u1", "Al", 2, schema.MainEvent, p, nil),
	}, schema.Scope{})
	require.Len(t, got, 1)
	assert.Equal(t, 2, got[0].PicksTotal)
	assert.Equal(t, 2, got[0].PicksPending)
	assert.Zero(t, got[0].Accuracy)
}

func TestAggregateEmpty(t *testing.T) {
	assert.Empty(t, Aggregate(nil, schema.Scope{}))
}

// TestAggregateProperties checks totals and ratio bounds over seeded random data.
func TestAggregateProperties(t *testing.T) {
	faker := gofakeit.New(uint64(20240309))
	corners := []string{string(schema.RedCorner), string(schema.BlueCorner)}
	outcomes := []string{string(schema.RedWins), string(schema.BlueWins), string(schema.Draw), string(schema.NoContest)}
	methods := []string{string(schema.Decision), string(schema.KnockOut), string(schema.Submission)}
	positions := []string{
		string(schema.MainEvent), string(schema.CoMainEvent), string(schema.MainCard),
		string(schema.Prelims), string(schema.EarlyPrelims),
	}
	users := []string{"u1", "u2", "u3", "u4", "u5", ""}

	entries := make([]schema.PickEntry, 0, 400)
	for i := range 400 {
		p, err := schema.NewPrediction(
			schema.Corner(faker.RandomString(corners)),
			schema.VictoryMethod(faker.RandomString(methods)),
			schema.Round(faker.Number(0, 5)),
		)
		require.NoError(t, err)

		var res *schema.Result
		if faker.Number(0, 4) > 0 {
			r, err := schema.NewResult(
				schema.Outcome(faker.RandomString(outcomes)),
				schema.VictoryMethod(faker.RandomString(methods)),
				schema.Round(faker.Number(1, 5)),
			)
			require.NoError(t, err)
			res = &r
		}
		e := entry(faker.RandomString(users), faker.Username(), int64(i),
			schema.CardPosition(faker.RandomString(positions)), p, res)
		entries = append(entries, e)
	}

	scopes := []schema.Scope{
		{},
		{Category: schema.MainCardCategory},
		{Category: schema.PrelimsCategory, Method: schema.KnockOut},
		{Round: 3},
	}
	for _, scope := range scopes {
		t.Run(scope.Label(), func(t *testing.T) {
			standings := Aggregate(entries, scope)

			for _, s := range standings {
				want := 0
				for _, e := range entries {
					if e.User.ID != s.User.ID || !scope.Matches(e) || e.Result == nil || !e.Result.Decided() {
						continue
					}
					want += algo.Score(e.Pick, *e.Result).Points
				}
				assert.Equal(t, want, s.TotalPoints, "user %s", s.User.ID)
				assert.GreaterOrEqual(t, s.Accuracy, 0.0)
				assert.LessOrEqual(t, s.Accuracy, 1.0)
				assert.LessOrEqual(t, s.PerfectPicks, s.PicksCorrect)
				assert.LessOrEqual(t, s.PicksCorrect+s.PicksPending, s.PicksTotal)
				assert.NotEmpty(t, s.User.ID)
			}

			ranked := algo.RankStandings(standings, schema.TotalPointsMetric, 0)
			opt := cmpopts.SortSlices(func(a, b schema.Standing) bool { return a.User.ID < b.User.ID })
			ignoreRank := cmpopts.IgnoreFields(schema.Standing{}, "Rank")
			if diff := cmp.Diff(standings, ranked, opt, ignoreRank); diff != "" {
				t.Errorf("ranking changed aggregate values (-agg +ranked):\n%s", diff)
			}
		})
	}
}

func TestUserEntries(t *testing.T) {
	p := schema.Prediction{Fighter: schema.RedCorner, Method: schema.Decision}
	entries := []schema.PickEntry{
		entry("u1", "Al", 1, schema.MainEvent, p, nil),
		entry("u2", "Bea", 1, schema.MainEvent, p, nil),
		entry("u1", "Al", 2, schema.MainEvent, p, nil),
		entry("", "", 3, schema.MainEvent, p, nil),
	}
	got := UserEntries(entries, "u1")
	require.Len(t, got, 2)
	assert.Equal(t, int64(2), got[1].Bout.BoutID)
}

func TestAggregateTrimsUserID(t *testing.T) {
	p := schema.Prediction{Fighter: schema.RedCorner, Method: schema.Decision}
	entries := []schema.PickEntry{
		entry(" u1 ", "Al", 1, schema.MainEvent, p, nil),
		entry("u1", "Al", 2, schema.MainEvent, p, nil),
	}
	got := Aggregate(entries, schema.Scope{})
	require.Len(t, got, 1)
	assert.Equal(t, "u1", got[0].User.ID)
	assert.Equal(t, 2, got[0].PicksTotal)
}
