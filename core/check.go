package core

import (
	"context"
	"errors"
	"fmt"

	"github.com/huangsam/pickscore/internal/contract"
	"github.com/huangsam/pickscore/internal/feed"
	"github.com/huangsam/pickscore/internal/outwriter"
)

// ErrIntegrityProblems is returned by ExecuteCheck when the dataset has problems.
// The CLI turns it into a non-zero exit for CI gating.
var ErrIntegrityProblems = errors.New("dataset integrity check failed")

// ExecuteCheck scans the dataset for integrity problems and prints them.
func ExecuteCheck(ctx context.Context, cfg *contract.Config, _ contract.StoreManager) error {
	if cfg.DataPath == "" {
		return ErrNoDataPath
	}
	ds, err := feed.NewFileSource(cfg.DataPath).Dataset(ctx)
	if err != nil {
		return err
	}

	issues := ds.Check()
	if err := outwriter.NewOutWriter().WriteIssues(issues, cfg); err != nil {
		return err
	}
	if len(issues) > 0 {
		return fmt.Errorf("%w: %d problem(s)", ErrIntegrityProblems, len(issues))
	}
	return nil
}
