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

func TestWriteIssuesTable(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, writeIssuesTable(&buf, nil, &contract.Config{}))
	assert.Equal(t, "No integrity problems found\n", buf.String())

	issues := []schema.Issue{
		{Kind: schema.DuplicatePickIssue, PickID: "p12", BoutID: 3, UserID: "u1", Message: "user u1 picked bout 3 twice"},
		{Kind: schema.UnknownEventIssue, BoutID: 9, Message: "bout 9 references unknown event 77"},
	}
	buf.Reset()
	require.NoError(t, writeIssuesTable(&buf, issues, &contract.Config{Width: 120}))
	out := buf.String()
	assert.Contains(t, out, "duplicate_pick")
	assert.Contains(t, out, "unknown event 77")
	assert.Contains(t, out, "2 problem(s) found")

	buf.Reset()
	w := csv.NewWriter(&buf)
	require.NoError(t, writeCSVIssues(w, issues))
	w.Flush()
	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, "p12", records[1][1])
	assert.Empty(t, records[2][1])
	assert.Equal(t, "9", records[2][2])
}
