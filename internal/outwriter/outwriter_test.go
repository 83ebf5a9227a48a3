package outwriter

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/huangsam/pickscore/internal/contract"
	"github.com/huangsam/pickscore/schema"
	"github.com/parquet-go/parquet-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pq "github.com/huangsam/pickscore/internal/parquet"
)

func testLeaderboard() schema.LeaderboardResult {
	you := schema.Standing{Rank: 7, User: schema.UserRef{ID: "u7", DisplayName: "Gus"}, TotalPoints: 1200, PicksTotal: 900, PicksCorrect: 450, Accuracy: 0.5}
	return schema.LeaderboardResult{
		Scope:  schema.Scope{Category: schema.MainCardCategory},
		Metric: schema.TotalPointsMetric,
		Standings: []schema.Standing{
			{Rank: 1, User: schema.UserRef{ID: "u1", DisplayName: "Alice"}, TotalPoints: 12345, PicksTotal: 5000, PicksCorrect: 4000, PicksPending: 10, PerfectPicks: 900, Accuracy: 0.8016},
			{Rank: 2, User: schema.UserRef{ID: "u2"}, TotalPoints: 5, PicksTotal: 4, PicksCorrect: 3, PerfectPicks: 1, Accuracy: 0.75},
		},
		You:   &you,
		Total: 9,
	}
}

func textConfig() *contract.Config {
	return &contract.Config{Output: schema.TextOut, Precision: 1, Width: 120, SnapshotBackend: schema.NoneBackend}
}

func TestWriteLeaderboardTable(t *testing.T) {
	var buf bytes.Buffer
	_, fmtPercent := createFormatters(1)
	cfg := textConfig()
	cfg.UserID = "u7"
	require.NoError(t, writeLeaderboardTable(&buf, testLeaderboard(), cfg, fmtPercent, time.Second))

	out := buf.String()
	assert.Contains(t, out, "Alice")
	assert.Contains(t, out, "12,345")
	assert.Contains(t, out, "80.2%")
	assert.Contains(t, out, "#1")
	assert.Contains(t, out, "u2", "blank names fall back to the id")
	assert.Contains(t, out, "You: #7 Gus with 1,200 points (50.0% accuracy)")
	assert.Contains(t, out, "Showing 2 of 9 users (scope: main-card, metric: total_points)")
}

func TestWriteLeaderboardTableYouInside(t *testing.T) {
	lb := testLeaderboard()
	lb.You = &lb.Standings[0]
	var buf bytes.Buffer
	_, fmtPercent := createFormatters(0)
	cfg := textConfig()
	cfg.UserID = "u1"
	require.NoError(t, writeLeaderboardTable(&buf, lb, cfg, fmtPercent, 0))
	assert.Contains(t, buf.String(), "Alice (you)")
	assert.NotContains(t, buf.String(), "You: ")
}

func TestWriteJSONLeaderboard(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, writeJSONLeaderboard(&buf, testLeaderboard()))

	var got map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, "main-card", got["scope"])
	assert.Equal(t, float64(9), got["total_users"])
	standings := got["standings"].([]any)
	require.Len(t, standings, 2)
	first := standings[0].(map[string]any)
	assert.Equal(t, "Gold", first["medal"])
	assert.Equal(t, float64(12345), first["total_points"])
	assert.NotNil(t, got["you"])
}

func TestWriteCSVLeaderboard(t *testing.T) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	fmtFloat, _ := createFormatters(2)
	require.NoError(t, writeCSVLeaderboard(w, testLeaderboard(), fmtFloat))
	w.Flush()

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, "rank", records[0][0])
	assert.Equal(t, []string{"1", "u1", "Alice", "12345", "5000", "4000", "10", "900", "0.80", "Gold", "total_points", "main-card"}, records[1])
	assert.Equal(t, "u2", records[2][2])
	assert.Equal(t, "Silver", records[2][9])
}

func TestPrintLeaderboardParquet(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lb.parquet")
	cfg := &contract.Config{Output: schema.ParquetOut, OutputFile: path}
	require.NoError(t, PrintLeaderboard(testLeaderboard(), cfg, 0))

	rows, err := parquet.ReadFile[pq.LeaderboardRow](path)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "Alice", rows[0].DisplayName)
	assert.Equal(t, int32(12345), rows[0].TotalPoints)
}

func TestPrintLeaderboardToFile(t *testing.T) {
	for _, mode := range []schema.OutputMode{schema.TextOut, schema.CSVOut, schema.JSONOut} {
		t.Run(string(mode), func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "out")
			cfg := textConfig()
			cfg.Output = mode
			cfg.OutputFile = path
			require.NoError(t, PrintLeaderboard(testLeaderboard(), cfg, 0))
			data, err := os.ReadFile(path)
			require.NoError(t, err)
			assert.Contains(t, string(data), "Alice")
		})
	}
}

func TestRankLabelColorsOff(t *testing.T) {
	cfg := &contract.Config{}
	assert.Equal(t, "#3", rankLabel(3, cfg))
	assert.Equal(t, "PENDING", statusLabel(schema.PendingStatus, 0, cfg))
}

func TestGetMaxNameWidth(t *testing.T) {
	assert.Equal(t, 12, getMaxNameWidth(&contract.Config{Width: 40}, 70))
	assert.Equal(t, 30, getMaxNameWidth(&contract.Config{Width: 100}, 70))
	assert.Equal(t, 40, getMaxNameWidth(&contract.Config{Width: 500}, 70))
}

func TestCreateFormatters(t *testing.T) {
	fmtFloat, fmtPercent := createFormatters(2)
	assert.Equal(t, "0.33", fmtFloat(1.0/3))
	assert.Equal(t, "33.33%", fmtPercent(1.0/3))
	_, p0 := createFormatters(0)
	assert.Equal(t, "100%", p0(1))
}

func TestOutWriterDelegates(t *testing.T) {
	ow := NewOutWriter()
	dir := t.TempDir()
	cfg := &contract.Config{Output: schema.JSONOut}

	cfg.OutputFile = filepath.Join(dir, "metrics.json")
	require.NoError(t, ow.WriteMetrics(cfg))
	data, err := os.ReadFile(cfg.OutputFile)
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(data), `"rules"`))

	cfg.OutputFile = filepath.Join(dir, "issues.json")
	require.NoError(t, ow.WriteIssues(nil, cfg))
	data, err = os.ReadFile(cfg.OutputFile)
	require.NoError(t, err)
	assert.JSONEq(t, "[]", string(data))
}
