package store

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/huangsam/pickscore/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExecuteSnapshotExport(t *testing.T) {
	s, err := NewSnapshotStore(schema.SQLiteBackend, ":memory:")
	require.NoError(t, err)
	defer func() { _ = s.Close() }()

	runID, err := s.BeginRun(time.Now(), schema.TotalPointsMetric, schema.Scope{}, nil)
	require.NoError(t, err)
	for _, st := range sampleStandings() {
		require.NoError(t, s.RecordStanding(runID, st))
	}
	require.NoError(t, s.EndRun(runID, time.Now(), 3, 12))

	mgr := &MockStoreManager{}
	mgr.On("GetSnapshotStore").Return(s)

	out := filepath.Join(t.TempDir(), "export")
	require.NoError(t, ExecuteSnapshotExport(mgr, out))

	for _, suffix := range []string{".runs.parquet", ".standings.parquet"} {
		info, err := os.Stat(out + suffix)
		require.NoError(t, err)
		assert.Greater(t, info.Size(), int64(0))
	}
	mgr.AssertExpectations(t)
}

func TestExecuteSnapshotExportErrors(t *testing.T) {
	t.Run("missing output file", func(t *testing.T) {
		assert.Error(t, ExecuteSnapshotExport(&MockStoreManager{}, ""))
	})

	t.Run("no store", func(t *testing.T) {
		mgr := &MockStoreManager{}
		mgr.On("GetSnapshotStore").Return(nil)
		assert.Error(t, ExecuteSnapshotExport(mgr, "out"))
	})

	t.Run("no runs", func(t *testing.T) {
		snap := &MockSnapshotStore{}
		snap.On("GetStatus").Return(schema.SnapshotStatus{Backend: "sqlite", Connected: true}, nil)
		mgr := &MockStoreManager{}
		mgr.On("GetSnapshotStore").Return(snap)
		err := ExecuteSnapshotExport(mgr, "out")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "no snapshot data")
	})

	t.Run("status failure", func(t *testing.T) {
		snap := &MockSnapshotStore{}
		snap.On("GetStatus").Return(schema.SnapshotStatus{}, errors.New("boom"))
		mgr := &MockStoreManager{}
		mgr.On("GetSnapshotStore").Return(snap)
		assert.ErrorContains(t, ExecuteSnapshotExport(mgr, "out"), "boom")
	})
}
