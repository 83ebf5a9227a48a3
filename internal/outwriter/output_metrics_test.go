package outwriter

import (
	"bytes"
	"encoding/csv"
	"testing"

	"github.com/huangsam/pickscore/internal/contract"
	"github.com/huangsam/pickscore/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildMetricsRenderModel(t *testing.T) {
	model := buildMetricsRenderModel()
	require.Len(t, model.Rules, 6)
	for _, metric := range schema.AllRankMetrics {
		assert.Contains(t, model.Metrics, string(metric))
	}
	maxPoints := 0
	for _, r := range model.Rules {
		maxPoints = max(maxPoints, r.Points)
	}
	assert.Equal(t, schema.MaxPoints, maxPoints)
}

func TestPrintMetricsText(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, printMetricsText(&buf, buildMetricsRenderModel(), &contract.Config{UseEmojis: true}))
	out := buf.String()
	assert.Contains(t, out, "🥊 Pick Scoring")
	assert.Contains(t, out, "fighter + method + round")
	assert.Contains(t, out, "ties: picks_correct descending")
	assert.Contains(t, out, "user id ascending")
}

func TestWriteCSVMetrics(t *testing.T) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	require.NoError(t, writeCSVMetrics(w, buildMetricsRenderModel()))
	w.Flush()
	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	assert.Len(t, records, 7)
	assert.Equal(t, []string{"pick", "match", "points"}, records[0])
}

func TestUnderline(t *testing.T) {
	assert.Equal(t, "=====", underline("🥊 abc"))
}
