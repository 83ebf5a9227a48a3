// Package contract provides interfaces and shared utilities for the pickscore internal architecture.
package contract

import (
	"context"
	"time"

	"github.com/huangsam/pickscore/schema"
)

// DataSource yields every known pick joined with its bout, user and result.
// It stands in for the remote picks API so scoring can be tested without network access.
type DataSource interface {
	Load(ctx context.Context) ([]schema.PickEntry, error)
}

// StoreManager defines the interface for managing persistence stores.
// This allows the persistence layer to be mocked for testing.
type StoreManager interface {
	GetSnapshotStore() SnapshotStore
}

// SnapshotStore defines the interface for recording leaderboard computations.
type SnapshotStore interface {
	// BeginRun creates a new snapshot run and returns its unique ID
	BeginRun(startTime time.Time, metric schema.RankMetric, scope schema.Scope, configParams map[string]any) (int64, error)

	// RecordStanding stores one ranked row of a run
	RecordStanding(runID int64, standing schema.Standing) error

	// EndRun updates the run with completion data
	EndRun(runID int64, endTime time.Time, totalUsers, totalPicks int) error

	// GetStatus returns status information about the snapshot store
	GetStatus() (schema.SnapshotStatus, error)

	// GetAllRuns returns every recorded run, oldest first
	GetAllRuns() ([]schema.SnapshotRunRecord, error)

	// GetAllStandings returns every recorded standing ordered by run and rank
	GetAllStandings() ([]schema.SnapshotStandingRecord, error)

	// Close closes the underlying connection
	Close() error
}
