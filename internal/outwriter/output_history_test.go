package outwriter

import (
	"bytes"
	"encoding/csv"
	"testing"
	"time"

	"github.com/huangsam/pickscore/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testHistory() schema.HistoryResult {
	ko := schema.Result{Winner: schema.RedWins, Method: schema.KnockOut, Round: 1}
	draw := schema.Result{Winner: schema.Draw}
	return schema.HistoryResult{
		User:   schema.UserRef{ID: "u1", DisplayName: "Alice"},
		Points: 3,
		Rows: []schema.HistoryRow{
			{BoutID: 1, EventName: "UFC 300", Matchup: "Alex Pereira vs Jamahal Hill", Date: time.Date(2024, 4, 13, 0, 0, 0, 0, time.UTC),
				Fighter: schema.RedCorner, Method: schema.KnockOut, Round: 1, Result: &ko, Status: schema.CorrectStatus, Points: 3},
			{BoutID: 4, EventName: "UFC 300", Fighter: schema.BlueCorner, Method: schema.Decision, Result: &draw, Status: schema.VoidStatus},
			{BoutID: 5, EventName: "UFC 301", Fighter: schema.BlueCorner, Method: schema.Submission, Round: 2, Status: schema.PendingStatus},
		},
	}
}

func TestWriteHistoryTable(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, writeHistoryTable(&buf, testHistory(), textConfig()))

	out := buf.String()
	assert.Contains(t, out, "2024-04-13")
	assert.Contains(t, out, "red KO/TKO R1")
	assert.Contains(t, out, "+3")
	assert.Contains(t, out, "VOID")
	assert.Contains(t, out, "Alice: 3 points from 3 picks (1 correct, 0 incorrect, 1 pending, 1 void)")
}

func TestWriteCSVHistory(t *testing.T) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	require.NoError(t, writeCSVHistory(w, testHistory()))
	w.Flush()

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 4)
	assert.Equal(t, "bout_id", records[0][0])
	assert.Equal(t, "red KO/TKO R1", records[1][9])
	assert.Equal(t, "draw", records[2][9])
	assert.Equal(t, "", records[3][9])
	assert.Equal(t, "pending", records[3][10])
	assert.Equal(t, "", records[2][2], "zero dates stay blank")
}

func TestPointsText(t *testing.T) {
	assert.Equal(t, "+0", pointsText(schema.HistoryRow{Status: schema.IncorrectStatus}))
	assert.Equal(t, "+2", pointsText(schema.HistoryRow{Status: schema.CorrectStatus, Points: 2}))
	assert.Equal(t, "-", pointsText(schema.HistoryRow{Status: schema.PendingStatus}))
}
