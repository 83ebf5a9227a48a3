package contract

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"github.com/huangsam/pickscore/schema"
)

// Color variables for console output.
var (
	GoldColor   = color.New(color.FgYellow, color.Bold) // GoldColor marks first place.
	SilverColor = color.New(color.FgWhite, color.Bold)  // SilverColor marks second place.
	BronzeColor = color.New(color.FgRed)                // BronzeColor marks third place.

	CorrectColor   = color.New(color.FgGreen)             // CorrectColor marks a pick that earned points.
	PerfectColor   = color.New(color.FgGreen, color.Bold) // PerfectColor marks a pick that earned every point.
	IncorrectColor = color.New(color.FgRed)               // IncorrectColor marks a pick that earned nothing.
	PendingColor   = color.New(color.FgCyan)              // PendingColor marks a pick without a result.
	VoidColor      = color.New(color.FgHiBlack)           // VoidColor marks a draw or no contest.
)

// GetRankLabel returns the rank as plain text, e.g. "#1".
func GetRankLabel(rank int) string {
	return fmt.Sprintf("#%d", rank)
}

// GetColorRankLabel colors podium ranks for console output (table).
func GetColorRankLabel(rank int, useEmojis bool) string {
	text := GetRankLabel(rank)
	if useEmojis {
		switch rank {
		case 1:
			text = "🥇 " + text
		case 2:
			text = "🥈 " + text
		case 3:
			text = "🥉 " + text
		}
	}
	switch rank {
	case 1:
		return GoldColor.Sprint(text)
	case 2:
		return SilverColor.Sprint(text)
	case 3:
		return BronzeColor.Sprint(text)
	default:
		return text
	}
}

// GetColorStatusLabel returns a colored pick status for console output (table).
func GetColorStatusLabel(status schema.PickStatus, points int) string {
	text := strings.ToUpper(string(status))
	switch status {
	case schema.CorrectStatus:
		if points == schema.MaxPoints {
			return PerfectColor.Sprint(text)
		}
		return CorrectColor.Sprint(text)
	case schema.IncorrectStatus:
		return IncorrectColor.Sprint(text)
	case schema.PendingStatus:
		return PendingColor.Sprint(text)
	default:
		return VoidColor.Sprint(text)
	}
}

// SelectOutputFile returns the appropriate file handle for output, based on the provided
// file path. It falls back to os.Stdout when no path is given.
func SelectOutputFile(filePath string) (*os.File, error) {
	if filePath == "" {
		return os.Stdout, nil
	}
	return os.Create(filePath)
}

// LogFatal logs an error and exits the program.
func LogFatal(msg string, err error) {
	_, _ = fmt.Fprintf(os.Stderr, "Fatal %s: %v\n", msg, err)
	os.Exit(1)
}

// LogWarn logs a warning message to stderr.
func LogWarn(msg string, err error) {
	_, _ = fmt.Fprintf(os.Stderr, "Warn %s: %v\n", msg, err)
}

// GetSnapshotDBFilePath returns the path to the SQLite DB file for snapshot storage.
func GetSnapshotDBFilePath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ".pickscore_snapshots.db"
	}
	return filepath.Join(homeDir, ".pickscore_snapshots.db")
}

// TruncateText truncates text to a maximum width with an ellipsis suffix.
// Requires maxWidth > 3 so there is room for the ellipsis and at least one character.
func TruncateText(text string, maxWidth int) string {
	runes := []rune(text)
	if len(runes) > maxWidth && maxWidth > 3 {
		return string(runes[:maxWidth-3]) + "..."
	}
	return text
}

// ParseBoolString parses a string value into a boolean.
// Accepts "yes", "no", "true", "false", "1", "0" (case-insensitive).
// Returns an error for invalid values.
func ParseBoolString(s string) (bool, error) {
	switch strings.ToLower(s) {
	case "yes", "true", "1":
		return true, nil
	case "no", "false", "0":
		return false, nil
	default:
		return false, fmt.Errorf("invalid boolean string: %s (expected yes/no/true/false/1/0)", s)
	}
}
