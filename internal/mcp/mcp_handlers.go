package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/gitcrew/gitcrew/core"
	"github.com/gitcrew/gitcrew/internal/contract"
)

// toolHandler holds common dependencies for MCP tool handlers.
type toolHandler struct {
	baseCfg *contract.Config
	client  contract.GitClient
}

// configForRequest clones the base config and applies per-request overrides.
func (h *toolHandler) configForRequest(request mcp.CallToolRequest) (*contract.Config, error) {
	cfg := h.baseCfg.Clone()

	if p := request.GetString("paths", ""); p != "" {
		var paths []string
		for _, part := range strings.Split(p, ",") {
			if part = strings.TrimSpace(part); part != "" {
				paths = append(paths, part)
			}
		}
		cfg.Paths = paths
	}
	if len(cfg.Paths) == 0 {
		return nil, fmt.Errorf("no repository paths configured or supplied")
	}

	now := time.Now().UTC()
	if s := request.GetString("start", ""); s != "" {
		start, err := contract.ParseDateArg(s, now)
		if err != nil {
			return nil, fmt.Errorf("invalid start date: %w", err)
		}
		cfg.StartDate = start
		cfg.StartStr = s
	}
	if e := request.GetString("end", ""); e != "" {
		end, err := contract.ParseDateArg(e, now)
		if err != nil {
			return nil, fmt.Errorf("invalid end date: %w", err)
		}
		cfg.EndDate = end
		cfg.EndStr = e
	}

	return cfg, nil
}

func (h *toolHandler) handleGetWeeklyStats(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg, err := h.configForRequest(request)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid parameters: %v", err)), nil
	}

	stats, err := core.GetWeeklyStats(ctx, cfg, h.client)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("aggregation failed: %v", err)), nil
	}

	jsonData, _ := json.MarshalIndent(stats, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleGetAuthorSpans(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg, err := h.configForRequest(request)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid parameters: %v", err)), nil
	}

	spans, err := core.GetAuthorSpans(ctx, cfg, h.client)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("aggregation failed: %v", err)), nil
	}

	jsonData, _ := json.MarshalIndent(spans, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}
