package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/huangsam/pickscore/internal/contract"
	"github.com/huangsam/pickscore/schema"
)

// PrintMetricsDefinitions displays the point table and the ranking metrics.
// This is a static display that does not require a dataset.
func PrintMetricsDefinitions(cfg *contract.Config) error {
	renderModel := buildMetricsRenderModel()

	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSONMetrics(w, renderModel)
		}, "Wrote JSON")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			writer := csv.NewWriter(w)
			defer writer.Flush()
			return writeCSVMetrics(writer, renderModel)
		}, "Wrote CSV")
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return printMetricsText(w, renderModel, cfg)
		}, "Wrote text")
	}
}

// printMetricsText displays metrics in human-readable text format.
func printMetricsText(w io.Writer, renderModel *schema.MetricsRenderModel, cfg *contract.Config) error {
	title := renderModel.Title
	if cfg.UseEmojis {
		title = "🥊 " + title
	}
	if _, err := fmt.Fprintf(w, "%s\n%s\n\n%s\n\n", title, underline(title), renderModel.Description); err != nil {
		return err
	}

	for _, rule := range renderModel.Rules {
		if _, err := fmt.Fprintf(w, "  %-16s %-32s %d\n", rule.Pick, rule.Match, rule.Points); err != nil {
			return err
		}
	}

	if _, err := fmt.Fprintf(w, "\nRanking metrics\n"); err != nil {
		return err
	}
	for _, metric := range schema.AllRankMetrics {
		name := string(metric)
		if _, err := fmt.Fprintf(w, "  %-14s %s\n", name, renderModel.Metrics[name]); err != nil {
			return err
		}
		if tb, ok := renderModel.TieBreaks[name]; ok {
			if _, err := fmt.Fprintf(w, "  %-14s ties: %s\n", "", tb); err != nil {
				return err
			}
		}
	}
	_, err := fmt.Fprintf(w, "\nRemaining ties are broken by user id ascending.\n")
	return err
}

func underline(s string) string {
	b := make([]byte, len([]rune(s)))
	for i := range b {
		b[i] = '='
	}
	return string(b)
}

// buildMetricsRenderModel constructs the complete render model with all processed data.
func buildMetricsRenderModel() *schema.MetricsRenderModel {
	return &schema.MetricsRenderModel{
		Title:       "Pick Scoring",
		Description: "Points are only awarded when the picked fighter wins. Draws and no contests are void.",
		Rules: []schema.PointRule{
			{Pick: "any", Match: "wrong fighter", Points: schema.NoPoints},
			{Pick: string(schema.Decision), Match: "fighter", Points: schema.FighterPoints},
			{Pick: string(schema.Decision), Match: "fighter + method", Points: schema.MethodPoints},
			{Pick: "KO/TKO or SUB", Match: "fighter", Points: schema.FighterPoints},
			{Pick: "KO/TKO or SUB", Match: "fighter + method", Points: schema.MethodPoints},
			{Pick: "KO/TKO or SUB", Match: "fighter + method + round", Points: schema.MaxPoints},
		},
		Metrics: map[string]string{
			string(schema.TotalPointsMetric):  "sum of points across scored picks",
			string(schema.AccuracyMetric):     "correct picks / decided picks",
			string(schema.PicksCorrectMetric): "picks that earned at least one point",
			string(schema.PerfectPicksMetric): "picks that earned every point",
			string(schema.PicksTotalMetric):   "picks in scope, pending included",
		},
		TieBreaks: map[string]string{
			string(schema.AccuracyMetric):     "picks_correct descending",
			string(schema.PerfectPicksMetric): "total_points descending",
		},
	}
}
