// Package outwriter has output and writer logic.
package outwriter

import (
	"time"

	"github.com/huangsam/pickscore/internal/contract"
	"github.com/huangsam/pickscore/schema"
)

// OutWriter provides a unified interface for all output operations.
// It encapsulates the various output formats and provides a clean API for the core logic.
type OutWriter struct{}

// NewOutWriter creates a new instance of the output writer.
func NewOutWriter() *OutWriter {
	return &OutWriter{}
}

// WriteLeaderboard prints ranked standings using the configured output format.
func (ow *OutWriter) WriteLeaderboard(result schema.LeaderboardResult, cfg *contract.Config, duration time.Duration) error {
	return PrintLeaderboard(result, cfg, duration)
}

// WriteHistory prints a user's scored picks using the configured output format.
func (ow *OutWriter) WriteHistory(result schema.HistoryResult, cfg *contract.Config) error {
	return PrintHistory(result, cfg)
}

// WriteScore prints the breakdown of a single scored pick.
func (ow *OutWriter) WriteScore(report schema.ScoreReport, cfg *contract.Config) error {
	return PrintScoreReport(report, cfg)
}

// WriteIssues prints dataset integrity problems.
func (ow *OutWriter) WriteIssues(issues []schema.Issue, cfg *contract.Config) error {
	return PrintIssues(issues, cfg)
}

// WriteMetrics prints the point table and ranking metric definitions.
func (ow *OutWriter) WriteMetrics(cfg *contract.Config) error {
	return PrintMetricsDefinitions(cfg)
}
