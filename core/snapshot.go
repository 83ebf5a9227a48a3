package core

import (
	"time"

	"github.com/huangsam/pickscore/internal/contract"
	"github.com/huangsam/pickscore/schema"
)

// recordSnapshot stores a ranked leaderboard as one run. Store failures are
// reported as warnings so a broken database never blocks the leaderboard.
func recordSnapshot(cfg *contract.Config, mgr contract.StoreManager, start time.Time, ranked []schema.Standing) {
	if mgr == nil {
		return
	}
	snapshots := mgr.GetSnapshotStore()
	if snapshots == nil {
		return
	}

	runID, err := snapshots.BeginRun(start, cfg.Metric, cfg.Scope, cfg.SnapshotParams())
	if err != nil {
		contract.LogWarn("Snapshot tracking initialization failed", err)
		return
	}
	if runID <= 0 {
		return
	}

	totalPicks := 0
	for _, s := range ranked {
		totalPicks += s.PicksTotal
		if err := snapshots.RecordStanding(runID, s); err != nil {
			contract.LogWarn("Failed to record standing", err)
		}
	}

	if err := snapshots.EndRun(runID, time.Now(), len(ranked), totalPicks); err != nil {
		contract.LogWarn("Failed to finalize snapshot tracking", err)
	}
}
