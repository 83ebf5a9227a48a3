package schema

import "time"

// SnapshotRunRecord represents a row from the pickscore_snapshot_runs table.
type SnapshotRunRecord struct {
	RunID         int64
	StartTime     time.Time
	EndTime       *time.Time
	RunDurationMs *int32
	Metric        string
	ScopeLabel    string
	TotalUsers    int32
	TotalPicks    int32
	ConfigParams  *string
}

// SnapshotStandingRecord represents a row from the pickscore_snapshot_standings table.
type SnapshotStandingRecord struct {
	RunID        int64
	UserID       string
	DisplayName  string
	Rank         int32
	TotalPoints  int32
	PicksTotal   int32
	PicksCorrect int32
	PicksPending int32
	PerfectPicks int32
	Accuracy     float64
	RecordedAt   time.Time
}

// SnapshotStatus represents the status of the snapshot store.
type SnapshotStatus struct {
	Backend        string           `json:"backend"`
	Connected      bool             `json:"connected"`
	TotalRuns      int              `json:"total_runs"`
	LastRunID      int64            `json:"last_run_id"`
	LastRunTime    time.Time        `json:"last_run_time"`
	OldestRunTime  time.Time        `json:"oldest_run_time"`
	TotalStandings int              `json:"total_standings"`
	SizeBytes      int64            `json:"size_bytes"`
	TableSizes     map[string]int64 `json:"table_sizes"`
}

// MigrationStatus reports the schema version of a snapshot database.
type MigrationStatus struct {
	Backend string `json:"backend"`
	Version uint   `json:"version"`
	Dirty   bool   `json:"dirty"`
}
