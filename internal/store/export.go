package store

import (
	"errors"
	"fmt"

	"github.com/huangsam/pickscore/internal/contract"
	"github.com/huangsam/pickscore/internal/parquet"
)

// ExecuteSnapshotExport writes every stored run and standing to Parquet files
// named after outputFile.
func ExecuteSnapshotExport(mgr contract.StoreManager, outputFile string) error {
	if outputFile == "" {
		return errors.New("--output-file is required for export command")
	}

	store := mgr.GetSnapshotStore()
	if store == nil {
		return errors.New("snapshot store is not initialized")
	}

	status, err := store.GetStatus()
	if err != nil {
		return fmt.Errorf("failed to get snapshot status: %w", err)
	}
	if status.TotalRuns == 0 {
		return errors.New("no snapshot data found to export")
	}

	fmt.Printf("Exporting data from %s backend...\n", status.Backend)
	fmt.Printf("Total snapshot runs: %d\n", status.TotalRuns)
	fmt.Printf("Total standings: %d\n", status.TotalStandings)

	runs, err := store.GetAllRuns()
	if err != nil {
		return fmt.Errorf("failed to retrieve snapshot runs: %w", err)
	}
	standings, err := store.GetAllStandings()
	if err != nil {
		return fmt.Errorf("failed to retrieve snapshot standings: %w", err)
	}

	runsFile := outputFile + ".runs.parquet"
	if err := parquet.WriteSnapshotRunsParquet(parquet.ConvertSnapshotRunRecords(runs), runsFile); err != nil {
		return fmt.Errorf("failed to write snapshot runs: %w", err)
	}
	fmt.Printf("Exported %d snapshot runs to: %s\n", len(runs), runsFile)

	standingsFile := outputFile + ".standings.parquet"
	if err := parquet.WriteSnapshotStandingsParquet(parquet.ConvertSnapshotStandingRecords(standings), standingsFile); err != nil {
		return fmt.Errorf("failed to write snapshot standings: %w", err)
	}
	fmt.Printf("Exported %d standings to: %s\n", len(standings), standingsFile)

	return nil
}
