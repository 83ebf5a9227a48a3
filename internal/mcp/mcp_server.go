// Package mcp provides the Model Context Protocol (MCP) server implementation.
package mcp

import (
	"context"

	"github.com/huangsam/pickscore/internal/contract"
	"github.com/huangsam/pickscore/internal/feed"
	"github.com/huangsam/pickscore/schema"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// NewMCPServer initializes and configures the pickscore MCP server without starting it.
// A nil src reads the dataset named by the data_path argument or the base config.
func NewMCPServer(baseCfg *contract.Config, src contract.DataSource) *server.MCPServer {
	s := server.NewMCPServer(
		"Pickscore Server",
		"1.0.0",
		server.WithLogging(),
	)

	h := &toolHandler{
		baseCfg: baseCfg,
		source:  src,
	}

	methods := schema.VictoryMethodNames()

	// --- 1. Tool: score_pick ---
	s.AddTool(mcp.NewTool("score_pick",
		mcp.WithDescription("Score a single fight pick against an official result (0 to 3 points)."),
		mcp.WithString("fighter", mcp.Description("Picked corner."), mcp.Required(), mcp.Enum("red", "blue")),
		mcp.WithString("method", mcp.Description("Picked method."), mcp.Required(), mcp.Enum(methods...)),
		mcp.WithNumber("round", mcp.Description("Picked round (1-5). Ignored for decisions.")),
		mcp.WithString("winner", mcp.Description("Official winner."), mcp.Required(), mcp.Enum("red", "blue", "draw", "nc")),
		mcp.WithString("result_method", mcp.Description("Official method. Required unless the winner is draw or nc."), mcp.Enum(methods...)),
		mcp.WithNumber("result_round", mcp.Description("Official round (1-5). Ignored for decisions.")),
	), h.handleScorePick)

	// --- 2. Tool: get_leaderboard ---
	s.AddTool(mcp.NewTool("get_leaderboard",
		mcp.WithDescription("Rank users by their pick scores within an optional scope."),
		mcp.WithString("data_path", mcp.Description("Path to a JSON or YAML dataset (defaults to the configured dataset).")),
		mcp.WithString("metric", mcp.Description("Ranking metric. Defaults to 'total_points'."),
			mcp.Enum("total_points", "accuracy", "picks_correct", "perfect_picks", "picks_total")),
		mcp.WithString("category", mcp.Description("Leaderboard tab. Defaults to 'global'."),
			mcp.Enum("global", "main-events", "main-card", "prelims", "early-prelims")),
		mcp.WithString("method", mcp.Description("Only bouts won by this method."), mcp.Enum(methods...)),
		mcp.WithNumber("round", mcp.Description("Only bouts that ended in this round.")),
		mcp.WithString("weight_class", mcp.Description("Only bouts in this weight class.")),
		mcp.WithNumber("year", mcp.Description("Only events held in this year.")),
		mcp.WithNumber("event", mcp.Description("Only bouts on this event id.")),
		mcp.WithBoolean("title_only", mcp.Description("Only title fights.")),
		mcp.WithString("user_id", mcp.Description("Also return this user's row when outside the limit.")),
		mcp.WithNumber("limit", mcp.Description("Limit the number of rows returned.")),
	), h.handleGetLeaderboard)

	// --- 3. Tool: get_pick_history ---
	s.AddTool(mcp.NewTool("get_pick_history",
		mcp.WithDescription("List one user's scored picks, newest bout first."),
		mcp.WithString("user_id", mcp.Description("The user to list picks for."), mcp.Required()),
		mcp.WithString("data_path", mcp.Description("Path to a JSON or YAML dataset (defaults to the configured dataset).")),
	), h.handleGetPickHistory)

	return s
}

// StartMCPServer starts the pickscore MCP server on stdio.
func StartMCPServer(_ context.Context, baseCfg *contract.Config) error {
	s := NewMCPServer(baseCfg, nil)
	return server.ServeStdio(s)
}

// sourceFor returns the fixed source when set, or a file source for cfg.
func (h *toolHandler) sourceFor(cfg *contract.Config) contract.DataSource {
	if h.source != nil {
		return h.source
	}
	return feed.NewFileSource(cfg.DataPath)
}
