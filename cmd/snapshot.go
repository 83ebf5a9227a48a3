package cmd

import (
	"fmt"
	"strings"

	"github.com/huangsam/pickscore/internal/contract"
	"github.com/huangsam/pickscore/internal/store"
	"github.com/huangsam/pickscore/schema"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// snapshotBackend reads and validates the snapshot backend settings.
func snapshotBackend() (schema.DatabaseBackend, string, error) {
	if err := loadConfigFile(); err != nil {
		return "", "", err
	}

	backend := schema.DatabaseBackend(strings.ToLower(viper.GetString("store-backend")))
	if backend == "" {
		backend = schema.SQLiteBackend
	}
	if _, ok := schema.ValidDatabaseBackends[backend]; !ok {
		return "", "", fmt.Errorf("invalid store backend '%s'. must be sqlite, mysql, postgresql, none", backend)
	}
	connStr := viper.GetString("store-db-connect")

	// Basic validation for database backends
	if err := contract.ValidateDatabaseConnectionString(backend, connStr); err != nil {
		return "", "", err
	}
	return backend, connStr, nil
}

// snapshotSetup loads minimal configuration needed for snapshot operations.
// This is used by commands that need the store without reading a dataset.
func snapshotSetup() error {
	backend, connStr, err := snapshotBackend()
	if err != nil {
		return err
	}

	if err := store.InitStores(backend, connStr); err != nil {
		return fmt.Errorf("failed to initialize snapshots: %w", err)
	}

	cfg.SnapshotBackend = backend
	cfg.SnapshotDBConnect = connStr
	cfg.OutputFile = viper.GetString("output-file")
	return nil
}

// snapshotSetupWrapper wraps snapshotSetup to provide PreRunE for snapshot commands.
func snapshotSetupWrapper(_ *cobra.Command, _ []string) error {
	return snapshotSetup()
}

// snapshotMigrateSetup loads minimal configuration needed for migrate operations.
// It does NOT initialize stores or create tables, allowing migrations to run
// on a fresh database.
func snapshotMigrateSetup() error {
	backend, connStr, err := snapshotBackend()
	if err != nil {
		return err
	}

	// For SQLite backend with empty connection string, use default path
	if backend == schema.SQLiteBackend && connStr == "" {
		connStr = store.GetSnapshotDBFilePath()
	}

	cfg.SnapshotBackend = backend
	cfg.SnapshotDBConnect = connStr
	return nil
}

// snapshotMigrateSetupWrapper wraps snapshotMigrateSetup to provide PreRunE for migrate command.
func snapshotMigrateSetupWrapper(_ *cobra.Command, _ []string) error {
	return snapshotMigrateSetup()
}

// snapshotCmd focused on leaderboard snapshot management.
//
// Note: Snapshot subcommands use minimal initialization (snapshotSetup) instead of
// the full sharedSetup. This avoids dataset validation for simple store operations.
var snapshotCmd = &cobra.Command{
	Use:   "snapshot",
	Short: "Manage recorded leaderboard snapshots and exports",
	Long: `Manage the leaderboard runs recorded by the leaderboard command.

Each run stores:
- Run metadata (timestamp, metric, scope, configuration, duration)
- Every ranked standing (rank, points, picks, accuracy)

This makes it possible to compare standings across events and export
them for BI tools.

Supported backends: SQLite (default), MySQL, PostgreSQL, or None (disabled)

Subcommands:
  status  - Show snapshot statistics
  export  - Export data to Parquet for analytics
  clear   - Remove all snapshot data
  migrate - Run database schema migrations

Examples:
  # Check snapshot status
  pickscore snapshot status

  # Export for analysis in pandas/DuckDB
  pickscore snapshot export --output-file standings`,
}

// snapshotClearCmd clears the snapshot data.
var snapshotClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove all recorded leaderboard snapshots",
	Long: `Delete all stored runs and standings.

WARNING: This action cannot be undone. Consider exporting data first.

Examples:
  # Export before clearing
  pickscore snapshot export --output-file backup
  pickscore snapshot clear`,
	PreRunE: snapshotMigrateSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		// The migrate setup resolves the SQLite file path into the connection string
		if err := store.ClearSnapshots(cfg.SnapshotBackend, cfg.SnapshotDBConnect, cfg.SnapshotDBConnect); err != nil {
			contract.LogFatal("Failed to clear snapshot data", err)
		}
		fmt.Println("Snapshot data cleared successfully.")
	},
}

// snapshotStatusCmd shows snapshot status.
var snapshotStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Display snapshot statistics and connection details",
	Long: `Show detailed information about recorded leaderboard snapshots.

Displays:
- Backend type and connection status
- Total number of runs stored
- Last and oldest run timestamps
- Total standings recorded across all runs
- Database table sizes

Examples:
  # Check snapshot status
  pickscore snapshot status`,
	PreRunE: snapshotSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		snapshots := store.Stores.GetSnapshotStore()
		if snapshots == nil {
			contract.LogFatal("Failed to get snapshot status", fmt.Errorf("snapshot store not initialized"))
		}
		status, err := snapshots.GetStatus()
		if err != nil {
			contract.LogFatal("Failed to get snapshot status", err)
		}
		store.PrintSnapshotStatus(status)

		if cfg.SnapshotBackend == schema.NoneBackend {
			return
		}
		migration, err := store.GetMigrationStatus(cfg.SnapshotBackend, cfg.SnapshotDBConnect)
		if err != nil {
			contract.LogWarn("Failed to get migration status", err)
			return
		}
		store.PrintMigrationStatus(migration)
	},
}

// snapshotExportCmd exports snapshot data to Parquet files.
var snapshotExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export recorded snapshots to Parquet for BI tools and analytics",
	Long: `Export all stored snapshot data to Parquet format.

Exports two datasets:
- <output-file>.runs.parquet      - metadata about each leaderboard run
- <output-file>.standings.parquet - every ranked standing per run

Requires: --output-file parameter

Examples:
  # Export all data
  pickscore snapshot export --output-file pickscore

  # Use with DuckDB for analysis
  duckdb -c "SELECT * FROM read_parquet('pickscore.standings.parquet') LIMIT 10"`,
	PreRunE: snapshotSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := store.ExecuteSnapshotExport(store.Stores, cfg.OutputFile); err != nil {
			contract.LogFatal("Failed to export snapshot data", err)
		}
	},
}

// snapshotMigrateCmd runs database migrations for the snapshot store.
var snapshotMigrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Run database schema migrations (upgrades/downgrades)",
	Long: `Manage database schema versions for the snapshot store.

By default, migrates to the latest version. Use --target-version for specific versions.

Examples:
  # Migrate to latest version (default)
  pickscore snapshot migrate

  # Migrate to specific version
  pickscore snapshot migrate --target-version 1

  # Rollback to initial state
  pickscore snapshot migrate --target-version 0`,
	PreRunE: snapshotMigrateSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		targetVersion := viper.GetInt("target-version")
		if err := store.MigrateSnapshots(cfg.SnapshotBackend, cfg.SnapshotDBConnect, targetVersion); err != nil {
			contract.LogFatal("Failed to run migrations", err)
		}
	},
}
