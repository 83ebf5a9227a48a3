package feed

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/huangsam/pickscore/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetectFormat(t *testing.T) {
	tests := []struct {
		path    string
		want    Format
		wantErr bool
	}{
		{"picks.json", JSONFormat, false},
		{"picks.JSON", JSONFormat, false},
		{"picks.yaml", YAMLFormat, false},
		{"picks.yml", YAMLFormat, false},
		{"picks.csv", "", true},
		{"picks", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			got, err := DetectFormat(tt.path)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrUnsupportedFormat)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFileSourceLoadJSON(t *testing.T) {
	entries, err := NewFileSource("testdata/sample.json").Load(context.Background())
	require.NoError(t, err)
	require.Len(t, entries, 14)

	first := entries[0]
	assert.Equal(t, schema.UserRef{ID: "u1", DisplayName: "Alice", AvatarRef: "/avatars/u1.png"}, first.User)
	assert.Equal(t, int64(1), first.Bout.BoutID)
	assert.Equal(t, "UFC 300", first.Bout.EventName)
	assert.Equal(t, "Alex Pereira", first.Bout.RedFighter)
	assert.Equal(t, schema.MainEvent, first.Bout.Position)
	assert.True(t, first.Bout.TitleFight)
	assert.Equal(t, time.Date(2024, 4, 13, 0, 0, 0, 0, time.UTC), first.Bout.Date)
	assert.Equal(t, schema.Prediction{Fighter: schema.RedCorner, Method: schema.KnockOut, Round: 1}, first.Pick)
	require.NotNil(t, first.Result)
	assert.Equal(t, schema.Result{Winner: schema.RedWins, Method: schema.KnockOut, Round: 1}, *first.Result)
	assert.Equal(t, time.Date(2024, 4, 10, 12, 0, 0, 0, time.UTC), first.CreatedAt)

	// Decision alias normalized, top-level result applied, pending bout left nil.
	assert.Equal(t, schema.Decision, entries[1].Result.Method)
	assert.Nil(t, entries[4].Result)
	require.NotNil(t, entries[5].Result)
	assert.Equal(t, schema.Result{Winner: schema.BlueWins, Method: schema.KnockOut, Round: 3}, *entries[5].Result)

	// Draw result is kept and unknown user gets a blank identity.
	assert.Equal(t, schema.Draw, entries[3].Result.Winner)
	assert.Empty(t, entries[13].User.ID)
}

func TestFileSourceLoadYAML(t *testing.T) {
	entries, err := NewFileSource("testdata/sample.yaml").Load(context.Background())
	require.NoError(t, err)
	require.Len(t, entries, 4)
	assert.Equal(t, "Bruno", entries[2].User.DisplayName)
	assert.Equal(t, schema.CoMainEvent, entries[3].Bout.Position)
	require.NotNil(t, entries[3].Result)
	assert.Equal(t, schema.RedWins, entries[3].Result.Winner)
}

func TestFileSourceErrors(t *testing.T) {
	ctx := context.Background()

	t.Run("missing file", func(t *testing.T) {
		_, err := NewFileSource(filepath.Join(t.TempDir(), "nope.json")).Load(ctx)
		assert.Error(t, err)
	})

	t.Run("unsupported extension", func(t *testing.T) {
		_, err := NewFileSource("picks.txt").Load(ctx)
		assert.ErrorIs(t, err, ErrUnsupportedFormat)
	})

	t.Run("canceled context", func(t *testing.T) {
		cctx, cancel := context.WithCancel(ctx)
		cancel()
		_, err := NewFileSource("testdata/sample.json").Load(cctx)
		assert.ErrorIs(t, err, context.Canceled)
	})

	t.Run("unknown field", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "bad.json")
		require.NoError(t, os.WriteFile(path, []byte(`{"userz": []}`), 0o644))
		_, err := NewFileSource(path).Load(ctx)
		assert.Error(t, err)
	})
}

func TestDatasetEntriesErrors(t *testing.T) {
	round := func(n int) *int { return &n }
	base := func() *Dataset {
		return &Dataset{
			Users: []UserRecord{{ID: "u1", Name: "Al"}},
			Bouts: []BoutRecord{{ID: 1, EventID: 1, CardPosition: "main-card"}},
			Picks: []PickRecord{{UserID: "u1", BoutID: 1, PickedCorner: "red", PickedMethod: "KO/TKO", PickedRound: round(2)}},
		}
	}

	_, err := base().Entries()
	require.NoError(t, err)

	tests := []struct {
		name   string
		mutate func(*Dataset)
		is     error
	}{
		{"unknown bout", func(d *Dataset) { d.Picks[0].BoutID = 9 }, nil},
		{"bad corner", func(d *Dataset) { d.Picks[0].PickedCorner = "green" }, schema.ErrIncompletePick},
		{"bad method", func(d *Dataset) { d.Picks[0].PickedMethod = "DQ" }, schema.ErrIncompletePick},
		{"round too high", func(d *Dataset) { d.Picks[0].PickedRound = round(6) }, schema.ErrInvalidRound},
		{"negative round", func(d *Dataset) { d.Picks[0].PickedRound = round(-1) }, schema.ErrInvalidRound},
		{"bad card position", func(d *Dataset) { d.Bouts[0].CardPosition = "undercard" }, nil},
		{"result for unknown bout", func(d *Dataset) {
			d.Results = []ResultRecord{{BoutID: 7, Winner: "red", Method: "DEC"}}
		}, nil},
		{"result without method", func(d *Dataset) {
			d.Results = []ResultRecord{{BoutID: 1, Winner: "red"}}
		}, schema.ErrInvalidResult},
		{"result bad winner", func(d *Dataset) {
			d.Bouts[0].Result = &ResultRecord{Winner: "purple", Method: "DEC"}
		}, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := base()
			tt.mutate(d)
			_, err := d.Entries()
			require.Error(t, err)
			if tt.is != nil {
				assert.ErrorIs(t, err, tt.is)
			}
		})
	}
}

func TestDatasetEntriesDecisionRoundCleared(t *testing.T) {
	three := 3
	d := &Dataset{
		Bouts: []BoutRecord{{ID: 1}},
		Picks: []PickRecord{{UserID: "u1", BoutID: 1, PickedCorner: "blue", PickedMethod: "DEC", PickedRound: &three}},
	}
	entries, err := d.Entries()
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, schema.Round(0), entries[0].Pick.Round)
	assert.Nil(t, entries[0].Result)
}

func TestDatasetPaddedUserIDs(t *testing.T) {
	one := 1
	d := &Dataset{
		Users: []UserRecord{{ID: "u1", Name: "Alice"}, {ID: " u2", Name: "Bruno"}},
		Bouts: []BoutRecord{{ID: 1, Result: &ResultRecord{Winner: "red", Method: "KO/TKO", Round: &one}}},
		Picks: []PickRecord{
			{ID: "p1", UserID: "u1 ", BoutID: 1, PickedCorner: "red", PickedMethod: "KO/TKO", PickedRound: &one},
			{ID: "p2", UserID: "u2", BoutID: 1, PickedCorner: "blue", PickedMethod: "DEC"},
		},
	}
	assert.Empty(t, d.Check())

	entries, err := d.Entries()
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, schema.UserRef{ID: "u1", DisplayName: "Alice"}, entries[0].User)
	assert.Equal(t, schema.UserRef{ID: "u2", DisplayName: "Bruno"}, entries[1].User)
}

func TestDecodeUnsupported(t *testing.T) {
	_, err := Decode([]byte("{}"), Format("toml"))
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestParseDate(t *testing.T) {
	assert.True(t, parseDate("").IsZero())
	assert.True(t, parseDate("not a date").IsZero())
	assert.Equal(t, 2024, parseDate("2024-04-13").Year())
	assert.Equal(t, 22, parseDate("2023-09-16T22:00:00Z").Hour())
	assert.Equal(t, 5, parseDate("2023-09-16T05:30:00").Hour())
}
