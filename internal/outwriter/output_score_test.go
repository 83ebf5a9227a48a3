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

func TestWriteScoreText(t *testing.T) {
	report := schema.ScoreReport{
		Pick:      schema.Prediction{Fighter: schema.RedCorner, Method: schema.KnockOut, Round: 2},
		Result:    schema.Result{Winner: schema.RedWins, Method: schema.KnockOut, Round: 3},
		Status:    schema.CorrectStatus,
		Points:    2,
		Breakdown: &schema.Breakdown{FighterCorrect: true, MethodCorrect: true},
	}

	var buf bytes.Buffer
	require.NoError(t, writeScoreText(&buf, report, &contract.Config{}))
	out := buf.String()
	assert.Contains(t, out, "Pick:   red KO/TKO R2")
	assert.Contains(t, out, "Result: red KO/TKO R3")
	assert.Contains(t, out, "Round    no")
	assert.Contains(t, out, "Points: 2/3")

	buf.Reset()
	require.NoError(t, writeScoreText(&buf, report, &contract.Config{UseEmojis: true}))
	assert.Contains(t, buf.String(), "✅")
	assert.Contains(t, buf.String(), "❌")
}

func TestWriteScoreVoid(t *testing.T) {
	report := schema.ScoreReport{
		Pick:   schema.Prediction{Fighter: schema.BlueCorner, Method: schema.Decision},
		Result: schema.Result{Winner: schema.NoContest},
		Status: schema.VoidStatus,
	}

	var buf bytes.Buffer
	require.NoError(t, writeScoreText(&buf, report, &contract.Config{}))
	assert.NotContains(t, buf.String(), "Fighter")
	assert.Contains(t, buf.String(), "VOID")

	buf.Reset()
	w := csv.NewWriter(&buf)
	require.NoError(t, writeCSVScore(w, report))
	w.Flush()
	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	assert.Equal(t, []string{"blue DEC", "nc", "void", "0", "false", "false", "false"}, records[1])
}
