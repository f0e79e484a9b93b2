// Package mcp provides the Model Context Protocol (MCP) server implementation.
package mcp

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/gitcrew/gitcrew/internal/contract"
)

// NewMCPServer initializes and configures the gitcrew MCP server without
// starting it. This is exposed for unit testing.
func NewMCPServer(baseCfg *contract.Config, client contract.GitClient) *server.MCPServer {
	s := server.NewMCPServer(
		"Gitcrew Contributor Analytics Server",
		"1.0.0",
		server.WithLogging(),
	)

	h := &toolHandler{
		baseCfg: baseCfg,
		client:  client,
	}

	// --- 1. Tool: get_weekly_stats ---
	s.AddTool(mcp.NewTool("get_weekly_stats",
		mcp.WithDescription("Aggregate git history into per-week contributor statistics: mean author age, commit counts, newcomers, leavers and active contributors."),
		mcp.WithString("paths", mcp.Description("Comma-separated repository or directory paths (defaults to the server's configured paths).")),
		mcp.WithString("start", mcp.Description("Start date (YYYY-MM-DD, RFC3339 or e.g. '2 years ago').")),
		mcp.WithString("end", mcp.Description("End date (YYYY-MM-DD, RFC3339 or e.g. '1 month ago').")),
	), h.handleGetWeeklyStats)

	// --- 2. Tool: get_author_spans ---
	s.AddTool(mcp.NewTool("get_author_spans",
		mcp.WithDescription("Compute each author's tenure window: the week of their first and last commit."),
		mcp.WithString("paths", mcp.Description("Comma-separated repository or directory paths.")),
		mcp.WithString("start", mcp.Description("Start date bound.")),
		mcp.WithString("end", mcp.Description("End date bound.")),
	), h.handleGetAuthorSpans)

	return s
}

// StartMCPServer starts the gitcrew MCP server on stdio.
func StartMCPServer(_ context.Context, baseCfg *contract.Config, client contract.GitClient) error {
	s := NewMCPServer(baseCfg, client)
	return server.ServeStdio(s)
}
