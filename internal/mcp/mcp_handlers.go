package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/huangsam/pickscore/core"
	"github.com/huangsam/pickscore/internal/contract"
	"github.com/huangsam/pickscore/schema"
	"github.com/mark3labs/mcp-go/mcp"
)

// toolHandler holds common dependencies for MCP tool handlers.
type toolHandler struct {
	baseCfg *contract.Config
	source  contract.DataSource
}

func (h *toolHandler) handleScorePick(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	pick, err := schema.ParsePrediction(
		request.GetString("fighter", ""),
		request.GetString("method", ""),
		request.GetInt("round", 0),
	)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid pick: %v", err)), nil
	}
	result, err := schema.ParseResult(
		request.GetString("winner", ""),
		request.GetString("result_method", ""),
		request.GetInt("result_round", 0),
	)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid result: %v", err)), nil
	}

	jsonData, _ := json.MarshalIndent(core.ScorePick(pick, result), "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleGetLeaderboard(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg := h.baseCfg.Clone()
	if err := applyDataPath(cfg, request.GetString("data_path", "")); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if u := request.GetString("user_id", ""); u != "" {
		cfg.UserID = u
	}
	overrides := contract.LeaderboardOverrides{
		Metric:      request.GetString("metric", ""),
		Category:    request.GetString("category", ""),
		Method:      request.GetString("method", ""),
		Round:       request.GetInt("round", 0),
		WeightClass: request.GetString("weight_class", ""),
		Year:        request.GetInt("year", 0),
		Event:       int64(request.GetInt("event", 0)),
		TitleOnly:   request.GetBool("title_only", false),
		Limit:       request.GetInt("limit", 0),
	}
	if err := contract.RevalidateLeaderboard(cfg, overrides); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid leaderboard parameters: %v", err)), nil
	}

	result, err := core.GetLeaderboardResults(core.WithSuppressHeader(ctx), cfg, h.sourceFor(cfg))
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("leaderboard failed: %v", err)), nil
	}

	jsonData, _ := json.MarshalIndent(result, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleGetPickHistory(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg := h.baseCfg.Clone()
	cfg.UserID = request.GetString("user_id", "")
	if err := applyDataPath(cfg, request.GetString("data_path", "")); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result, err := core.GetHistoryResults(core.WithSuppressHeader(ctx), cfg, h.sourceFor(cfg))
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("history failed: %v", err)), nil
	}

	jsonData, _ := json.MarshalIndent(result, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}

// applyDataPath overrides the dataset path and checks that one is set.
func applyDataPath(cfg *contract.Config, path string) error {
	if path != "" {
		abs, err := filepath.Abs(path)
		if err != nil {
			return fmt.Errorf("invalid data_path %q: %w", path, err)
		}
		cfg.DataPath = abs
	}
	if cfg.DataPath == "" {
		return errors.New("data_path is required when no dataset is configured")
	}
	return nil
}
