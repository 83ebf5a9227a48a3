package outwriter

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/huangsam/pickscore/internal/contract"
	"github.com/huangsam/pickscore/schema"
	"golang.org/x/term"
)

// writeWithFile handles the common pattern of opening a file, writing to it, and cleaning up.
// It accepts a writer function that takes an io.Writer and returns an error.
func writeWithFile(outputFile string, writer func(io.Writer) error, successMsg string) error {
	file, err := contract.SelectOutputFile(outputFile)
	if err != nil {
		return err
	}
	// Only close if it's not stdout
	if file != os.Stdout {
		defer func() { _ = file.Close() }()
	}

	if err := writer(file); err != nil {
		return err
	}

	if file != os.Stdout {
		fmt.Fprintf(os.Stderr, "💾 %s to %s\n", successMsg, outputFile)
	}
	return nil
}

// writeJSON is a generic JSON encoder that handles indentation consistently.
func writeJSON(w io.Writer, data any) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(data); err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}
	return nil
}

// createFormatters returns a float formatter for the configured precision and
// a percent formatter for ratios in [0,1].
func createFormatters(precision int) (fmtFloat func(float64) string, fmtPercent func(float64) string) {
	fmtFloat = func(v float64) string {
		return fmt.Sprintf("%.*f", precision, v)
	}
	fmtPercent = func(v float64) string {
		return fmtFloat(v*100) + "%"
	}
	return fmtFloat, fmtPercent
}

// rankLabel renders a rank for the table, colored and decorated when enabled.
func rankLabel(rank int, cfg *contract.Config) string {
	if cfg.UseColors {
		return contract.GetColorRankLabel(rank, cfg.UseEmojis)
	}
	return contract.GetRankLabel(rank)
}

// statusLabel renders a pick status for the table.
func statusLabel(status schema.PickStatus, points int, cfg *contract.Config) string {
	if cfg.UseColors {
		return contract.GetColorStatusLabel(status, points)
	}
	return strings.ToUpper(string(status))
}

// getMaxNameWidth calculates the maximum width for the name column in table output
// based on terminal width and the fixed columns that share the row.
func getMaxNameWidth(cfg *contract.Config, fixedWidth int) int {
	var termWidth int

	// Check for absolute width override from flag/env
	if cfg.Width > 0 {
		termWidth = cfg.Width
	}

	if termWidth == 0 { // Not set by override
		detectedWidth, _, err := term.GetSize(int(os.Stdout.Fd()))
		if err != nil || detectedWidth <= 0 {
			// Conservative default for narrow terminals and CI
			termWidth = 80
		} else {
			termWidth = detectedWidth
		}
	}

	available := termWidth - fixedWidth
	if available < 12 {
		return 12
	}
	if available > 40 {
		return 40
	}
	return available
}
