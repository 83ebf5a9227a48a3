package parquet

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/huangsam/pickscore/schema"
	"github.com/parquet-go/parquet-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSnapshotRunStructTags(t *testing.T) {
	s := parquet.SchemaOf(new(SnapshotRun))
	require.NotNil(t, s)

	for _, colName := range []string{
		"run_id", "start_time", "end_time", "run_duration_ms", "metric",
		"scope_label", "total_users", "total_picks", "config_params",
	} {
		_, ok := s.Lookup(colName)
		require.True(t, ok, "Column %s should exist in schema", colName)
	}
}

func TestSnapshotStandingStructTags(t *testing.T) {
	s := parquet.SchemaOf(new(SnapshotStanding))
	for _, colName := range []string{
		"run_id", "user_id", "display_name", "rank", "total_points", "picks_total",
		"picks_correct", "picks_pending", "perfect_picks", "accuracy", "recorded_at",
	} {
		_, ok := s.Lookup(colName)
		require.True(t, ok, "Column %s should exist in schema", colName)
	}
}

func TestWriteSnapshotParquetRoundTrip(t *testing.T) {
	tmpDir := t.TempDir()
	start := time.Date(2024, 4, 13, 22, 0, 0, 0, time.UTC)
	end := start.Add(2 * time.Second)
	dur := int32(2000)
	params := `{"limit":25}`

	runs := ConvertSnapshotRunRecords([]schema.SnapshotRunRecord{
		{RunID: 1, StartTime: start, EndTime: &end, RunDurationMs: &dur, Metric: "total_points", ScopeLabel: "global", TotalUsers: 3, TotalPicks: 12, ConfigParams: &params},
		{RunID: 2, StartTime: start, Metric: "accuracy", ScopeLabel: "prelims"},
	})
	runsPath := filepath.Join(tmpDir, "runs.parquet")
	require.NoError(t, WriteSnapshotRunsParquet(runs, runsPath))

	got, err := parquet.ReadFile[SnapshotRun](runsPath)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, int64(1), got[0].RunID)
	require.NotNil(t, got[0].RunDurationMs)
	assert.Equal(t, int32(2000), *got[0].RunDurationMs)
	assert.Nil(t, got[1].EndTime)
	assert.Nil(t, got[1].ConfigParams)
	assert.Equal(t, "prelims", got[1].ScopeLabel)

	standings := ConvertSnapshotStandingRecords([]schema.SnapshotStandingRecord{
		{RunID: 1, UserID: "u1", DisplayName: "Alice", Rank: 1, TotalPoints: 10, Accuracy: 1, RecordedAt: end},
	})
	standingsPath := filepath.Join(tmpDir, "standings.parquet")
	require.NoError(t, WriteSnapshotStandingsParquet(standings, standingsPath))
	gotStandings, err := parquet.ReadFile[SnapshotStanding](standingsPath)
	require.NoError(t, err)
	require.Len(t, gotStandings, 1)
	assert.Equal(t, "Alice", gotStandings[0].DisplayName)
	assert.True(t, end.Equal(gotStandings[0].RecordedAt))
}

func TestWriteRowsLeaderboardAndHistory(t *testing.T) {
	lb := schema.LeaderboardResult{
		Scope:  schema.Scope{Category: schema.PrelimsCategory},
		Metric: schema.AccuracyMetric,
		Standings: []schema.Standing{
			{Rank: 1, User: schema.UserRef{ID: "u2"}, TotalPoints: 4, PicksTotal: 2, PicksCorrect: 2, Accuracy: 1},
		},
	}
	rows := ConvertStandings(lb)
	require.Len(t, rows, 1)
	assert.Equal(t, "u2", rows[0].DisplayName)
	assert.Equal(t, "prelims", rows[0].Scope)

	var buf bytes.Buffer
	require.NoError(t, WriteRows(&buf, rows))
	read, err := parquet.Read[LeaderboardRow](bytes.NewReader(buf.Bytes()), int64(buf.Len()))
	require.NoError(t, err)
	assert.Equal(t, rows, read)

	hist := ConvertHistory(schema.HistoryResult{Rows: []schema.HistoryRow{
		{BoutID: 1, Fighter: schema.RedCorner, Method: schema.KnockOut, Round: 1,
			Result: &schema.Result{Winner: schema.RedWins, Method: schema.KnockOut, Round: 1}, Status: schema.CorrectStatus, Points: 3},
		{BoutID: 2, Fighter: schema.BlueCorner, Method: schema.Decision, Status: schema.PendingStatus},
	}})
	require.Len(t, hist, 2)
	require.NotNil(t, hist[0].Result)
	assert.Equal(t, "red KO/TKO R1", *hist[0].Result)
	assert.Nil(t, hist[1].Result)
}

func TestWriteSnapshotRunsParquetBadPath(t *testing.T) {
	err := WriteSnapshotRunsParquet(nil, filepath.Join(t.TempDir(), "missing", "runs.parquet"))
	assert.Error(t, err)
	_, statErr := os.Stat(filepath.Join(t.TempDir(), "missing"))
	assert.True(t, os.IsNotExist(statErr))
}
