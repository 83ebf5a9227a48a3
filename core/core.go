// Package core has core logic for scoring picks and ranking users.
package core

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"os"
	"slices"
	"strings"
	"time"

	"github.com/huangsam/pickscore/core/agg"
	"github.com/huangsam/pickscore/core/algo"
	"github.com/huangsam/pickscore/internal/contract"
	"github.com/huangsam/pickscore/internal/feed"
	"github.com/huangsam/pickscore/internal/outwriter"
	"github.com/huangsam/pickscore/schema"
)

// Errors returned before any data is read.
var (
	ErrNoDataPath = errors.New("--data is required")
	ErrNoUser     = errors.New("--user is required")
)

// ExecutorFunc defines the function signature for executing commands that read a dataset.
type ExecutorFunc func(ctx context.Context, cfg *contract.Config, mgr contract.StoreManager) error

// ExecuteLeaderboard ranks every user in scope and prints the standings.
// When a snapshot store is configured the full ranking is recorded as a run.
func ExecuteLeaderboard(ctx context.Context, cfg *contract.Config, mgr contract.StoreManager) error {
	start := time.Now()
	if cfg.DataPath == "" {
		return ErrNoDataPath
	}
	if !shouldSuppressHeader(ctx) && cfg.Output == schema.TextOut {
		contract.LogLeaderboardHeader(os.Stdout, cfg)
	}

	entries, err := feed.NewFileSource(cfg.DataPath).Load(ctx)
	if err != nil {
		return err
	}
	board := computeLeaderboard(entries, cfg)
	recordSnapshot(cfg, mgr, start, board.ranked)

	return outwriter.NewOutWriter().WriteLeaderboard(board.result, cfg, time.Since(start))
}

// ExecuteHistory prints one user's scored picks, newest bout first.
func ExecuteHistory(ctx context.Context, cfg *contract.Config, _ contract.StoreManager) error {
	if cfg.DataPath == "" {
		return ErrNoDataPath
	}
	if !shouldSuppressHeader(ctx) && cfg.Output == schema.TextOut {
		contract.LogHistoryHeader(os.Stdout, cfg)
	}
	result, err := GetHistoryResults(ctx, cfg, feed.NewFileSource(cfg.DataPath))
	if err != nil {
		return err
	}
	return outwriter.NewOutWriter().WriteHistory(result, cfg)
}

// ExecuteScore scores a single pick against a result and prints the breakdown.
// It needs no dataset.
func ExecuteScore(_ context.Context, cfg *contract.Config, pick schema.Prediction, result schema.Result) error {
	return outwriter.NewOutWriter().WriteScore(ScorePick(pick, result), cfg)
}

// ScorePick builds the report for one pick. A draw or no contest is void and
// carries no breakdown.
func ScorePick(pick schema.Prediction, result schema.Result) schema.ScoreReport {
	entry := schema.PickEntry{Pick: pick, Result: &result}
	report := schema.ScoreReport{
		Pick:   pick,
		Result: result,
		Status: algo.Status(entry),
	}
	if result.Decided() {
		scored := algo.Score(pick, result)
		report.Points = scored.Points
		report.Breakdown = &scored.Breakdown
	}
	return report
}

// GetLeaderboardResults loads the source and returns the ranked standings for cfg.
func GetLeaderboardResults(ctx context.Context, cfg *contract.Config, src contract.DataSource) (schema.LeaderboardResult, error) {
	entries, err := src.Load(ctx)
	if err != nil {
		return schema.LeaderboardResult{}, err
	}
	return computeLeaderboard(entries, cfg).result, nil
}

// GetHistoryResults loads the source and returns the scored picks of cfg.UserID.
// A user without picks yields an empty history rather than an error.
func GetHistoryResults(ctx context.Context, cfg *contract.Config, src contract.DataSource) (schema.HistoryResult, error) {
	if cfg.UserID == "" {
		return schema.HistoryResult{}, ErrNoUser
	}
	entries, err := src.Load(ctx)
	if err != nil {
		return schema.HistoryResult{}, err
	}
	return buildHistory(entries, cfg.UserID), nil
}

// leaderboard pairs the displayed result with the full ranking.
type leaderboard struct {
	result schema.LeaderboardResult
	ranked []schema.Standing
}

func computeLeaderboard(entries []schema.PickEntry, cfg *contract.Config) leaderboard {
	algo.ScoreEntries(entries)
	ranked := algo.RankStandings(agg.Aggregate(entries, cfg.Scope), cfg.Metric, 0)

	shown := ranked
	if cfg.ResultLimit > 0 && len(shown) > cfg.ResultLimit {
		shown = ranked[:cfg.ResultLimit]
	}
	result := schema.LeaderboardResult{
		Scope:     cfg.Scope,
		Metric:    cfg.Metric,
		Standings: shown,
		Total:     len(ranked),
	}
	if cfg.UserID != "" {
		if you, ok := algo.FindStanding(ranked, cfg.UserID); ok {
			result.You = &you
		}
	}
	return leaderboard{result: result, ranked: ranked}
}

func buildHistory(entries []schema.PickEntry, userID string) schema.HistoryResult {
	mine := agg.UserEntries(entries, userID)
	algo.ScoreEntries(mine)

	history := schema.HistoryResult{User: schema.UserRef{ID: userID}, Rows: []schema.HistoryRow{}}
	for _, e := range mine {
		if e.User.DisplayName != "" {
			history.User = e.User
		}
		row := schema.HistoryRow{
			BoutID:      e.Bout.BoutID,
			EventName:   e.Bout.EventName,
			Matchup:     matchup(e.Bout),
			Date:        e.Bout.Date,
			WeightClass: e.Bout.WeightClass,
			Position:    e.Bout.Position,
			Fighter:     e.Pick.Fighter,
			Method:      e.Pick.Method,
			Round:       e.Pick.Round,
			Result:      e.Result,
			Status:      algo.Status(e),
		}
		if e.Scored != nil {
			row.Points = e.Scored.Points
			breakdown := e.Scored.Breakdown
			row.Breakdown = &breakdown
			history.Points += row.Points
		}
		history.Rows = append(history.Rows, row)
	}

	slices.SortStableFunc(history.Rows, func(a, b schema.HistoryRow) int {
		if c := b.Date.Compare(a.Date); c != 0 {
			return c
		}
		return cmp.Compare(b.BoutID, a.BoutID)
	})
	return history
}

func matchup(b schema.BoutMeta) string {
	red, blue := strings.TrimSpace(b.RedFighter), strings.TrimSpace(b.BlueFighter)
	if red == "" && blue == "" {
		return ""
	}
	return fmt.Sprintf("%s vs %s", red, blue)
}
