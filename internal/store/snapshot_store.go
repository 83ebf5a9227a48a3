package store

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"io/fs"
	"path"
	"slices"
	"strings"
	"time"

	"github.com/go-sql-driver/mysql" // MySQL driver
	"github.com/huangsam/pickscore/internal/contract"
	"github.com/huangsam/pickscore/schema"
	_ "github.com/jackc/pgx/v5/stdlib" // PostgreSQL driver
	_ "modernc.org/sqlite"             // SQLite driver
)

// Table names for snapshot tracking.
const (
	runsTable      = "pickscore_snapshot_runs"
	standingsTable = "pickscore_snapshot_standings"
)

// SnapshotStoreImpl implements the SnapshotStore interface.
type SnapshotStoreImpl struct {
	db         *sql.DB
	backend    schema.DatabaseBackend
	driverName string
	connStr    string
}

var _ contract.SnapshotStore = &SnapshotStoreImpl{} // Compile-time check

// NewSnapshotStore creates a new SnapshotStore with the specified backend.
func NewSnapshotStore(backend schema.DatabaseBackend, connStr string) (contract.SnapshotStore, error) {
	if backend == schema.NoneBackend {
		// No-op store for disabled tracking
		return &SnapshotStoreImpl{backend: backend}, nil
	}

	db, driverName, err := openDB(backend, connStr)
	if err != nil {
		return nil, err
	}

	if err := db.Ping(); err != nil {
		_ = db.Close()
		var connDetail string
		switch backend {
		case schema.MySQLBackend:
			connDetail = "Check that MySQL is running and the connection string is correct. Ensure user/password are valid."
		case schema.PostgreSQLBackend:
			connDetail = "Check that PostgreSQL is running and the connection string is correct. Ensure user/password are valid."
		default:
			connDetail = "Verify the database file is accessible."
		}
		return nil, fmt.Errorf("failed to connect to %s database: %w. %s", backend, err, connDetail)
	}

	if err := createSnapshotTables(db, backend); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to create snapshot tables: %w", err)
	}

	return &SnapshotStoreImpl{
		db:         db,
		backend:    backend,
		driverName: driverName,
		connStr:    connStr,
	}, nil
}

// openDB opens a handle for the backend without verifying the connection.
func openDB(backend schema.DatabaseBackend, connStr string) (*sql.DB, string, error) {
	driverName, err := driverFor(backend)
	if err != nil {
		return nil, "", err
	}

	switch backend {
	case schema.SQLiteBackend:
		dbPath := connStr
		if dbPath == "" {
			dbPath = GetSnapshotDBFilePath()
		}
		db, err := sql.Open(driverName, dbPath)
		if err != nil {
			return nil, "", fmt.Errorf("failed to open SQLite database at %q: %w. Check that the directory is writable", dbPath, err)
		}
		// Limit SQLite to a single open connection to avoid "database is locked" errors
		db.SetMaxOpenConns(1)
		return db, driverName, nil

	case schema.MySQLBackend:
		db, err := sql.Open(driverName, connStr)
		if err != nil {
			return nil, "", fmt.Errorf("failed to open MySQL database: %w. Check connection string format: user:password@tcp(host:port)/dbname", err)
		}
		return db, driverName, nil

	default: // PostgreSQL
		db, err := sql.Open(driverName, connStr)
		if err != nil {
			return nil, "", fmt.Errorf("failed to open PostgreSQL database: %w. Check connection string format: host=... dbname=... user=...", err)
		}
		return db, driverName, nil
	}
}

// createSnapshotTables applies every embedded up migration for the backend.
// Each statement is idempotent, so this is safe alongside golang-migrate.
func createSnapshotTables(db *sql.DB, backend schema.DatabaseBackend) error {
	dir := path.Join("migrations", string(backend))
	names, err := fs.Glob(migrationsFS, dir+"/*.up.sql")
	if err != nil {
		return err
	}
	slices.Sort(names)

	for _, name := range names {
		query, err := fs.ReadFile(migrationsFS, name)
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", name, err)
		}
		if _, err := db.Exec(string(query)); err != nil {
			return fmt.Errorf("failed to apply %s: %w", path.Base(name), err)
		}
	}
	return nil
}

// disabled reports whether calls should be no-ops.
func (ss *SnapshotStoreImpl) disabled() bool {
	return ss.backend == schema.NoneBackend || ss.db == nil
}

// placeholders returns n bind parameters starting at 1 for the backend.
func (ss *SnapshotStoreImpl) placeholders(n int) string {
	marks := make([]string, n)
	for i := range marks {
		if ss.backend == schema.PostgreSQLBackend {
			marks[i] = fmt.Sprintf("$%d", i+1)
		} else {
			marks[i] = "?"
		}
	}
	return strings.Join(marks, ", ")
}

// BeginRun creates a new snapshot run and returns its unique ID.
func (ss *SnapshotStoreImpl) BeginRun(startTime time.Time, metric schema.RankMetric, scope schema.Scope, configParams map[string]any) (int64, error) {
	if ss.disabled() {
		return 0, nil
	}

	configJSON, err := json.Marshal(configParams)
	if err != nil {
		return 0, fmt.Errorf("failed to marshal config params: %w", err)
	}

	quoted := quoteTableName(runsTable, ss.backend)
	args := []any{formatTime(startTime, ss.backend), string(metric), scope.Label(), string(configJSON)}

	var runID int64
	switch ss.backend {
	case schema.PostgreSQLBackend:
		query := fmt.Sprintf(`INSERT INTO %s (start_time, metric, scope_label, config_params) VALUES ($1, $2, $3, $4) RETURNING run_id`, quoted)
		err = ss.db.QueryRow(query, args...).Scan(&runID)
	default: // SQLite and MySQL
		query := fmt.Sprintf(`INSERT INTO %s (start_time, metric, scope_label, config_params) VALUES (?, ?, ?, ?)`, quoted)
		var result sql.Result
		result, err = ss.db.Exec(query, args...)
		if err == nil {
			runID, err = result.LastInsertId()
		}
	}
	if err != nil {
		return 0, fmt.Errorf("failed to insert snapshot run: %w", err)
	}

	return runID, nil
}

// RecordStanding stores one ranked row of a run.
func (ss *SnapshotStoreImpl) RecordStanding(runID int64, standing schema.Standing) error {
	if ss.disabled() {
		return nil
	}

	query := fmt.Sprintf(`
		INSERT INTO %s (run_id, user_id, display_name, user_rank, total_points, picks_total,
		                picks_correct, picks_pending, perfect_picks, accuracy, recorded_at)
		VALUES (%s)
	`, quoteTableName(standingsTable, ss.backend), ss.placeholders(11))
	args := []any{
		runID, standing.User.ID, standing.User.DisplayNameOrID(), standing.Rank, standing.TotalPoints,
		standing.PicksTotal, standing.PicksCorrect, standing.PicksPending, standing.PerfectPicks,
		standing.Accuracy, formatTime(time.Now().UTC(), ss.backend),
	}

	if _, err := ss.db.Exec(query, args...); err != nil {
		return fmt.Errorf("failed to insert standing for user %s: %w", standing.User.ID, err)
	}
	return nil
}

// EndRun updates the snapshot run with completion data.
func (ss *SnapshotStoreImpl) EndRun(runID int64, endTime time.Time, totalUsers, totalPicks int) error {
	if ss.disabled() {
		return nil
	}

	quoted := quoteTableName(runsTable, ss.backend)
	query := fmt.Sprintf(`SELECT start_time FROM %s WHERE run_id = %s`, quoted, ss.placeholders(1))
	row := ss.db.QueryRow(query, runID)

	startTime, err := scanTime(row, ss.backend)
	if err != nil {
		return fmt.Errorf("failed to get start_time for run %d: %w", runID, err)
	}

	durationMs := endTime.Sub(startTime).Milliseconds()

	var updateQuery string
	switch ss.backend {
	case schema.PostgreSQLBackend:
		updateQuery = fmt.Sprintf(`UPDATE %s SET end_time = $1, run_duration_ms = $2, total_users = $3, total_picks = $4 WHERE run_id = $5`, quoted)
	default: // SQLite and MySQL
		updateQuery = fmt.Sprintf(`UPDATE %s SET end_time = ?, run_duration_ms = ?, total_users = ?, total_picks = ? WHERE run_id = ?`, quoted)
	}

	if _, err := ss.db.Exec(updateQuery, formatTime(endTime, ss.backend), durationMs, totalUsers, totalPicks, runID); err != nil {
		return fmt.Errorf("failed to update snapshot run: %w", err)
	}
	return nil
}

// GetStatus returns status information about the snapshot store.
func (ss *SnapshotStoreImpl) GetStatus() (schema.SnapshotStatus, error) {
	status := schema.SnapshotStatus{
		Backend:    string(ss.backend),
		Connected:  ss.db != nil,
		TableSizes: make(map[string]int64),
	}
	if ss.disabled() {
		return status, nil
	}

	quotedRuns := quoteTableName(runsTable, ss.backend)
	if err := ss.db.QueryRow(fmt.Sprintf("SELECT COUNT(*) FROM %s", quotedRuns)).Scan(&status.TotalRuns); err != nil {
		return status, fmt.Errorf("failed to get total runs: %w", err)
	}

	if status.TotalRuns > 0 {
		row := ss.db.QueryRow(fmt.Sprintf("SELECT run_id FROM %s ORDER BY run_id DESC LIMIT 1", quotedRuns))
		if err := row.Scan(&status.LastRunID); err != nil {
			return status, fmt.Errorf("failed to get last run id: %w", err)
		}

		lastTime, err := scanTime(ss.db.QueryRow(fmt.Sprintf("SELECT start_time FROM %s ORDER BY run_id DESC LIMIT 1", quotedRuns)), ss.backend)
		if err != nil {
			return status, fmt.Errorf("failed to get last run time: %w", err)
		}
		status.LastRunTime = lastTime

		oldestTime, err := scanTime(ss.db.QueryRow(fmt.Sprintf("SELECT start_time FROM %s ORDER BY run_id ASC LIMIT 1", quotedRuns)), ss.backend)
		if err != nil {
			return status, fmt.Errorf("failed to get oldest run time: %w", err)
		}
		status.OldestRunTime = oldestTime
	}

	for _, table := range []string{runsTable, standingsTable} {
		var count int64
		query := fmt.Sprintf("SELECT COUNT(*) FROM %s", quoteTableName(table, ss.backend))
		if err := ss.db.QueryRow(query).Scan(&count); err != nil {
			return status, fmt.Errorf("failed to get count for table %s: %w", table, err)
		}
		status.TableSizes[table] = count
	}
	status.TotalStandings = int(status.TableSizes[standingsTable])
	status.SizeBytes = ss.sizeBytes(status.TotalStandings)

	return status, nil
}

// sizeBytes estimates the storage used by snapshot data.
func (ss *SnapshotStoreImpl) sizeBytes(rows int) int64 {
	// Fallback rough estimate when the backend cannot report a size
	estimate := int64(rows) * 200

	var size int64
	switch ss.backend {
	case schema.SQLiteBackend:
		row := ss.db.QueryRow("SELECT page_count * page_size FROM pragma_page_count(), pragma_page_size()")
		if err := row.Scan(&size); err != nil {
			return 0
		}
		return size

	case schema.MySQLBackend:
		cfg, err := mysql.ParseDSN(ss.connStr)
		if err != nil || cfg.DBName == "" {
			return estimate
		}
		query := "SELECT COALESCE(SUM(data_length + index_length), 0) FROM information_schema.tables WHERE table_schema = ? AND table_name IN (?, ?)"
		if err := ss.db.QueryRow(query, cfg.DBName, runsTable, standingsTable).Scan(&size); err != nil {
			return estimate
		}
		return size

	case schema.PostgreSQLBackend:
		query := "SELECT pg_total_relation_size($1) + pg_total_relation_size($2)"
		if err := ss.db.QueryRow(query, runsTable, standingsTable).Scan(&size); err != nil {
			return estimate
		}
		return size

	default:
		return estimate
	}
}

// GetAllRuns retrieves every snapshot run, oldest first.
func (ss *SnapshotStoreImpl) GetAllRuns() ([]schema.SnapshotRunRecord, error) {
	if ss.disabled() {
		return nil, nil
	}

	query := fmt.Sprintf(`SELECT run_id, start_time, end_time, run_duration_ms, metric, scope_label,
		COALESCE(total_users, 0), COALESCE(total_picks, 0), config_params
		FROM %s ORDER BY run_id`, quoteTableName(runsTable, ss.backend))

	rows, err := ss.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to query snapshot runs: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var results []schema.SnapshotRunRecord
	for rows.Next() {
		var record schema.SnapshotRunRecord

		switch ss.backend {
		case schema.SQLiteBackend:
			var startTimeStr string
			var endTimeStr *string
			if err := rows.Scan(&record.RunID, &startTimeStr, &endTimeStr, &record.RunDurationMs, &record.Metric,
				&record.ScopeLabel, &record.TotalUsers, &record.TotalPicks, &record.ConfigParams); err != nil {
				return nil, fmt.Errorf("failed to scan snapshot run: %w", err)
			}
			startTime, err := time.Parse(time.RFC3339Nano, startTimeStr)
			if err != nil {
				return nil, fmt.Errorf("failed to parse start_time: %w", err)
			}
			record.StartTime = startTime
			if endTimeStr != nil {
				endTime, err := time.Parse(time.RFC3339Nano, *endTimeStr)
				if err != nil {
					return nil, fmt.Errorf("failed to parse end_time: %w", err)
				}
				record.EndTime = &endTime
			}
		default: // MySQL and PostgreSQL
			if err := rows.Scan(&record.RunID, &record.StartTime, &record.EndTime, &record.RunDurationMs, &record.Metric,
				&record.ScopeLabel, &record.TotalUsers, &record.TotalPicks, &record.ConfigParams); err != nil {
				return nil, fmt.Errorf("failed to scan snapshot run: %w", err)
			}
		}

		results = append(results, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating snapshot runs: %w", err)
	}

	return results, nil
}

// GetAllStandings retrieves every recorded standing ordered by run and rank.
func (ss *SnapshotStoreImpl) GetAllStandings() ([]schema.SnapshotStandingRecord, error) {
	if ss.disabled() {
		return nil, nil
	}

	query := fmt.Sprintf(`SELECT run_id, user_id, display_name, user_rank, total_points, picks_total,
		picks_correct, picks_pending, perfect_picks, accuracy, recorded_at
		FROM %s ORDER BY run_id, user_rank, user_id`, quoteTableName(standingsTable, ss.backend))

	rows, err := ss.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to query snapshot standings: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var results []schema.SnapshotStandingRecord
	for rows.Next() {
		var record schema.SnapshotStandingRecord
		dest := []any{
			&record.RunID, &record.UserID, &record.DisplayName, &record.Rank, &record.TotalPoints,
			&record.PicksTotal, &record.PicksCorrect, &record.PicksPending, &record.PerfectPicks, &record.Accuracy,
		}

		switch ss.backend {
		case schema.SQLiteBackend:
			var recordedAtStr string
			if err := rows.Scan(append(dest, &recordedAtStr)...); err != nil {
				return nil, fmt.Errorf("failed to scan snapshot standing: %w", err)
			}
			recordedAt, err := time.Parse(time.RFC3339Nano, recordedAtStr)
			if err != nil {
				return nil, fmt.Errorf("failed to parse recorded_at: %w", err)
			}
			record.RecordedAt = recordedAt
		default: // MySQL and PostgreSQL
			if err := rows.Scan(append(dest, &record.RecordedAt)...); err != nil {
				return nil, fmt.Errorf("failed to scan snapshot standing: %w", err)
			}
		}

		results = append(results, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating snapshot standings: %w", err)
	}

	return results, nil
}

// Close closes the underlying connection.
func (ss *SnapshotStoreImpl) Close() error {
	if ss.db != nil {
		return ss.db.Close()
	}
	return nil
}

// formatTime converts a time.Time to the appropriate format for the backend.
func formatTime(t time.Time, backend schema.DatabaseBackend) any {
	switch backend {
	case schema.SQLiteBackend:
		return t.Format(time.RFC3339Nano)
	default:
		return t
	}
}

// scanTime reads a single timestamp column stored in the backend's format.
func scanTime(row *sql.Row, backend schema.DatabaseBackend) (time.Time, error) {
	if backend == schema.SQLiteBackend {
		var s string
		if err := row.Scan(&s); err != nil {
			return time.Time{}, err
		}
		return time.Parse(time.RFC3339Nano, s)
	}
	var t time.Time
	err := row.Scan(&t)
	return t, err
}
