// Package parquet provides data structures and functions for exporting pickscore
// snapshot and leaderboard data to Parquet files using github.com/parquet-go/parquet-go.
package parquet

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/huangsam/pickscore/schema"
	"github.com/parquet-go/parquet-go"
)

// SnapshotRun represents a single leaderboard computation with metadata.
// This struct maps to the pickscore_snapshot_runs database table.
type SnapshotRun struct {
	// RunID is the unique identifier for this run
	RunID int64 `parquet:"run_id,snappy"`

	// StartTime is when the computation began
	StartTime time.Time `parquet:"start_time,snappy"`

	// EndTime is when the computation completed (nullable)
	EndTime *time.Time `parquet:"end_time,optional,snappy"`

	// RunDurationMs is the duration of the run in milliseconds (nullable)
	RunDurationMs *int32 `parquet:"run_duration_ms,optional,snappy"`

	// Metric is the ranking metric used
	Metric string `parquet:"metric,snappy,dict"`

	// ScopeLabel describes the filters applied to the picks
	ScopeLabel string `parquet:"scope_label,snappy,dict"`

	TotalUsers int32 `parquet:"total_users,snappy"`
	TotalPicks int32 `parquet:"total_picks,snappy"`

	// ConfigParams contains the JSON-encoded configuration parameters (nullable)
	ConfigParams *string `parquet:"config_params,optional,snappy"`
}

// SnapshotStanding represents one ranked row of a run.
// This struct maps to the pickscore_snapshot_standings database table.
type SnapshotStanding struct {
	RunID        int64     `parquet:"run_id,snappy"`
	UserID       string    `parquet:"user_id,snappy"`
	DisplayName  string    `parquet:"display_name,snappy"`
	Rank         int32     `parquet:"rank,snappy"`
	TotalPoints  int32     `parquet:"total_points,snappy"`
	PicksTotal   int32     `parquet:"picks_total,snappy"`
	PicksCorrect int32     `parquet:"picks_correct,snappy"`
	PicksPending int32     `parquet:"picks_pending,snappy"`
	PerfectPicks int32     `parquet:"perfect_picks,snappy"`
	Accuracy     float64   `parquet:"accuracy,snappy"`
	RecordedAt   time.Time `parquet:"recorded_at,snappy"`
}

// LeaderboardRow is a ranked standing written by the leaderboard command.
type LeaderboardRow struct {
	Rank         int32   `parquet:"rank,snappy"`
	UserID       string  `parquet:"user_id,snappy"`
	DisplayName  string  `parquet:"display_name,snappy"`
	TotalPoints  int32   `parquet:"total_points,snappy"`
	PicksTotal   int32   `parquet:"picks_total,snappy"`
	PicksCorrect int32   `parquet:"picks_correct,snappy"`
	PicksPending int32   `parquet:"picks_pending,snappy"`
	PerfectPicks int32   `parquet:"perfect_picks,snappy"`
	Accuracy     float64 `parquet:"accuracy,snappy"`
	Metric       string  `parquet:"metric,snappy,dict"`
	Scope        string  `parquet:"scope,snappy,dict"`
}

// HistoryRow is one scored pick written by the history command.
type HistoryRow struct {
	BoutID      int64     `parquet:"bout_id,snappy"`
	EventName   string    `parquet:"event_name,snappy,dict"`
	Date        time.Time `parquet:"date,snappy"`
	WeightClass string    `parquet:"weight_class,snappy,dict"`
	Position    string    `parquet:"card_position,snappy,dict"`
	Fighter     string    `parquet:"fighter,snappy"`
	Method      string    `parquet:"method,snappy,dict"`
	Round       int32     `parquet:"round,snappy"`
	Result      *string   `parquet:"result,optional,snappy"`
	Status      string    `parquet:"status,snappy,dict"`
	Points      int32     `parquet:"points,snappy"`
}

// WriteRows writes rows to w using the schema inferred from T's struct tags.
func WriteRows[T any](w io.Writer, rows []T) error {
	writer := parquet.NewGenericWriter[T](w)
	if _, err := writer.Write(rows); err != nil {
		_ = writer.Close()
		return fmt.Errorf("failed to write data to parquet file: %w", err)
	}
	if err := writer.Close(); err != nil {
		return fmt.Errorf("failed to finalize parquet file: %w", err)
	}
	return nil
}

// writeFile creates outputPath and writes rows into it.
func writeFile[T any](rows []T, outputPath string) error {
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	if err := WriteRows(file, rows); err != nil {
		_ = file.Close()
		return err
	}
	return file.Close()
}

// WriteSnapshotRunsParquet writes a slice of SnapshotRun structs to a Parquet file.
func WriteSnapshotRunsParquet(data []SnapshotRun, outputPath string) error {
	return writeFile(data, outputPath)
}

// WriteSnapshotStandingsParquet writes a slice of SnapshotStanding structs to a Parquet file.
func WriteSnapshotStandingsParquet(data []SnapshotStanding, outputPath string) error {
	return writeFile(data, outputPath)
}

// ConvertSnapshotRunRecords converts schema.SnapshotRunRecord to SnapshotRun for Parquet export.
func ConvertSnapshotRunRecords(records []schema.SnapshotRunRecord) []SnapshotRun {
	result := make([]SnapshotRun, len(records))
	for i, record := range records {
		result[i] = SnapshotRun{
			RunID:         record.RunID,
			StartTime:     record.StartTime,
			EndTime:       record.EndTime,
			RunDurationMs: record.RunDurationMs,
			Metric:        record.Metric,
			ScopeLabel:    record.ScopeLabel,
			TotalUsers:    record.TotalUsers,
			TotalPicks:    record.TotalPicks,
			ConfigParams:  record.ConfigParams,
		}
	}
	return result
}

// ConvertSnapshotStandingRecords converts schema.SnapshotStandingRecord to SnapshotStanding for Parquet export.
func ConvertSnapshotStandingRecords(records []schema.SnapshotStandingRecord) []SnapshotStanding {
	result := make([]SnapshotStanding, len(records))
	for i, record := range records {
		result[i] = SnapshotStanding(record)
	}
	return result
}

// ConvertStandings converts a leaderboard result to LeaderboardRow values.
func ConvertStandings(lb schema.LeaderboardResult) []LeaderboardRow {
	result := make([]LeaderboardRow, len(lb.Standings))
	for i, s := range lb.Standings {
		result[i] = LeaderboardRow{
			Rank:         int32(s.Rank),
			UserID:       s.User.ID,
			DisplayName:  s.User.DisplayNameOrID(),
			TotalPoints:  int32(s.TotalPoints),
			PicksTotal:   int32(s.PicksTotal),
			PicksCorrect: int32(s.PicksCorrect),
			PicksPending: int32(s.PicksPending),
			PerfectPicks: int32(s.PerfectPicks),
			Accuracy:     s.Accuracy,
			Metric:       string(lb.Metric),
			Scope:        lb.Scope.Label(),
		}
	}
	return result
}

// ConvertHistory converts a pick history to HistoryRow values.
func ConvertHistory(h schema.HistoryResult) []HistoryRow {
	result := make([]HistoryRow, len(h.Rows))
	for i, r := range h.Rows {
		row := HistoryRow{
			BoutID:      r.BoutID,
			EventName:   r.EventName,
			Date:        r.Date,
			WeightClass: r.WeightClass,
			Position:    string(r.Position),
			Fighter:     string(r.Fighter),
			Method:      string(r.Method),
			Round:       int32(r.Round),
			Status:      string(r.Status),
			Points:      int32(r.Points),
		}
		if r.Result != nil {
			label := r.Result.String()
			row.Result = &label
		}
		result[i] = row
	}
	return result
}
