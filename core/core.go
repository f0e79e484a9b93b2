// Package core has the extraction pipeline and the entry points behind
// each command: resolve repositories, collect history in parallel, then
// aggregate or graph the merged table.
package core

import (
	"context"
	"errors"
	"time"

	"github.com/gitcrew/gitcrew/core/collab"
	"github.com/gitcrew/gitcrew/core/locate"
	"github.com/gitcrew/gitcrew/core/weekly"
	"github.com/gitcrew/gitcrew/internal/contract"
	"github.com/gitcrew/gitcrew/internal/outwriter"
	"github.com/gitcrew/gitcrew/internal/plot"
	"github.com/gitcrew/gitcrew/schema"
)

// runPipeline performs the shared resolve-collect steps and returns the
// merged commit table. The run banner is suppressed for embedded callers
// like the MCP server.
func runPipeline(ctx context.Context, cfg *contract.Config, client contract.GitClient, banner bool) ([]schema.CommitRecord, error) {
	repos, err := locate.Resolve(cfg.Paths)
	if err != nil {
		return nil, err
	}
	if len(repos) == 0 {
		return nil, errors.New("no repositories found under the given paths")
	}

	if banner {
		contract.LogRunHeader(cfg, len(repos))
	}

	table, err := Collect(ctx, cfg, client, repos, time.Now().UTC())
	if err != nil {
		return nil, err
	}
	if len(table) == 0 {
		return nil, errors.New("no commits found in the selected date range")
	}
	return table, nil
}

// ExecuteChart runs the pipeline and writes the weekly contributor chart
// as a self-contained HTML file. Entry point for the 'chart' command.
func ExecuteChart(ctx context.Context, cfg *contract.Config, client contract.GitClient) error {
	table, err := runPipeline(ctx, cfg, client, true)
	if err != nil {
		return err
	}
	stats := weekly.Aggregate(table)
	return plot.RenderWeekly(cfg, stats)
}

// ExecuteStats runs the pipeline and prints the weekly aggregate table in
// the configured output format. Entry point for the 'stats' command.
func ExecuteStats(ctx context.Context, cfg *contract.Config, client contract.GitClient) error {
	start := time.Now()
	table, err := runPipeline(ctx, cfg, client, true)
	if err != nil {
		return err
	}
	stats := weekly.Aggregate(table)
	duration := time.Since(start)
	return outwriter.PrintWeeklyStats(stats, cfg, duration)
}

// ExecuteNetwork runs the pipeline, builds the author collaboration graph
// and writes it as an interactive HTML chart. Entry point for the
// 'network' command.
func ExecuteNetwork(ctx context.Context, cfg *contract.Config, client contract.GitClient) error {
	table, err := runPipeline(ctx, cfg, client, true)
	if err != nil {
		return err
	}
	graph := collab.BuildGraph(table)
	return plot.RenderNetwork(cfg, graph)
}

// GetWeeklyStats runs the pipeline and returns the aggregate table without
// printing anything. Used by embedded callers such as the MCP server.
func GetWeeklyStats(ctx context.Context, cfg *contract.Config, client contract.GitClient) ([]schema.WeeklyStat, error) {
	table, err := runPipeline(ctx, cfg, client, false)
	if err != nil {
		return nil, err
	}
	return weekly.Aggregate(table), nil
}

// GetAuthorSpans runs the pipeline and returns each author's tenure window.
func GetAuthorSpans(ctx context.Context, cfg *contract.Config, client contract.GitClient) ([]schema.AuthorSpan, error) {
	table, err := runPipeline(ctx, cfg, client, false)
	if err != nil {
		return nil, err
	}
	return weekly.AuthorSpans(table), nil
}
