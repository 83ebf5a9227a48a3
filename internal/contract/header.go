package contract

import (
	"fmt"
	"io"
	"path/filepath"
)

// LogLeaderboardHeader prints a concise, 2-line header before a leaderboard table.
func LogLeaderboardHeader(w io.Writer, cfg *Config) {
	dataName := filepath.Base(cfg.DataPath)
	if cfg.DataPath == "" || dataName == "." {
		dataName = "none"
	}
	icon, scope := "", ""
	if cfg.UseEmojis {
		icon, scope = "🥊 ", "🏷️  "
	}

	// Line 1: The dataset and ranking metric
	_, _ = fmt.Fprintf(w, "%sData: %s (Metric: %s)\n", icon, dataName, cfg.Metric)

	// Line 2: The scope filters applied
	_, _ = fmt.Fprintf(w, "%sScope: %s\n", scope, cfg.Scope.Label())
}

// LogHistoryHeader prints a one-line header before a user's pick history.
func LogHistoryHeader(w io.Writer, cfg *Config) {
	icon := ""
	if cfg.UseEmojis {
		icon = "📋 "
	}
	_, _ = fmt.Fprintf(w, "%sHistory: %s (Data: %s)\n", icon, cfg.UserID, filepath.Base(cfg.DataPath))
}
