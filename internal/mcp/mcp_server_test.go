package mcp_test

import (
	"context"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gitcrew/gitcrew/internal/contract"
	mcp_internal "github.com/gitcrew/gitcrew/internal/mcp"
)

func TestMCPServerHandlers_ValidationErrors(t *testing.T) {
	baseCfg := &contract.Config{Workers: 1}
	client := &contract.MockGitClient{}
	s := mcp_internal.NewMCPServer(baseCfg, client)

	ctx := context.Background()

	t.Run("get_weekly_stats without paths", func(t *testing.T) {
		tool := s.GetTool("get_weekly_stats")
		require.NotNil(t, tool, "Tool get_weekly_stats should exist")

		req := mcp.CallToolRequest{
			Params: mcp.CallToolParams{
				Name:      "get_weekly_stats",
				Arguments: map[string]any{},
			},
		}

		res, err := tool.Handler(ctx, req)
		require.NoError(t, err, "The MCP handler should not return a raw error for tool logic failures")
		assert.True(t, res.IsError, "The response should indicate an error state")
		assert.Contains(t, res.Content[0].(mcp.TextContent).Text, "no repository paths")
	})

	t.Run("get_weekly_stats invalid start date", func(t *testing.T) {
		tool := s.GetTool("get_weekly_stats")
		require.NotNil(t, tool)

		req := mcp.CallToolRequest{
			Params: mcp.CallToolParams{
				Name: "get_weekly_stats",
				Arguments: map[string]any{
					"paths": "/tmp/repo",
					"start": "not-a-date",
				},
			},
		}

		res, err := tool.Handler(ctx, req)
		require.NoError(t, err)
		assert.True(t, res.IsError)
		assert.Contains(t, res.Content[0].(mcp.TextContent).Text, "invalid start date")
	})

	t.Run("get_author_spans without paths", func(t *testing.T) {
		tool := s.GetTool("get_author_spans")
		require.NotNil(t, tool, "Tool get_author_spans should exist")

		req := mcp.CallToolRequest{
			Params: mcp.CallToolParams{
				Name:      "get_author_spans",
				Arguments: map[string]any{},
			},
		}

		res, err := tool.Handler(ctx, req)
		require.NoError(t, err)
		assert.True(t, res.IsError)
	})
}
