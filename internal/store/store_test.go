package store

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/huangsam/pickscore/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateTableName(t *testing.T) {
	tests := []struct {
		name  string
		valid bool
	}{
		{"pickscore_snapshot_runs", true},
		{"_t1", true},
		{"1table", false},
		{"runs; DROP TABLE x", false},
		{"", false},
		{"a-b", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateTableName(tt.name)
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestQuoteTableName(t *testing.T) {
	assert.Equal(t, "`runs`", quoteTableName("runs", schema.MySQLBackend))
	assert.Equal(t, `"runs"`, quoteTableName("runs", schema.PostgreSQLBackend))
	assert.Equal(t, `"runs"`, quoteTableName("runs", schema.SQLiteBackend))
}

func TestClearSnapshots(t *testing.T) {
	t.Run("sqlite removes file", func(t *testing.T) {
		dbPath := filepath.Join(t.TempDir(), "snap.db")
		s, err := NewSnapshotStore(schema.SQLiteBackend, dbPath)
		require.NoError(t, err)
		_, err = s.BeginRun(time.Now(), schema.TotalPointsMetric, schema.Scope{}, nil)
		require.NoError(t, err)
		require.NoError(t, s.Close())

		require.NoError(t, ClearSnapshots(schema.SQLiteBackend, dbPath, ""))
		_, err = os.Stat(dbPath)
		assert.True(t, os.IsNotExist(err))
	})

	t.Run("sqlite missing file is fine", func(t *testing.T) {
		assert.NoError(t, ClearSnapshots(schema.SQLiteBackend, filepath.Join(t.TempDir(), "none.db"), ""))
	})

	t.Run("sqlite requires path", func(t *testing.T) {
		assert.Error(t, ClearSnapshots(schema.SQLiteBackend, "", ""))
	})

	t.Run("none backend", func(t *testing.T) {
		assert.NoError(t, ClearSnapshots(schema.NoneBackend, "", ""))
	})

	t.Run("unsupported backend", func(t *testing.T) {
		assert.Error(t, ClearSnapshots(schema.DatabaseBackend("oracle"), "", ""))
	})
}

func TestManagerGetSnapshotStore(t *testing.T) {
	mgr := &Manager{}
	assert.Nil(t, mgr.GetSnapshotStore())

	mock := &MockSnapshotStore{}
	mgr.snapshots = mock
	assert.Equal(t, mock, mgr.GetSnapshotStore())
}
