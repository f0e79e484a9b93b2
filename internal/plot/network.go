package plot

import (
	"fmt"
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/gitcrew/gitcrew/internal/contract"
	"github.com/gitcrew/gitcrew/schema"
)

const (
	minNodeSize = 10
	maxNodeSize = 40

	forceRepulsion = 400
	forceGravity   = 0.1
)

// RenderNetwork writes the collaboration graph chart to cfg.OutputFile.
func RenderNetwork(cfg *contract.Config, graph *schema.CollabGraph) error {
	f, err := contract.SelectOutputFile(chartFile(cfg))
	if err != nil {
		return fmt.Errorf("cannot create chart file: %w", err)
	}
	defer f.Close() //nolint:errcheck // read-only close

	return WriteNetwork(f, cfg, graph)
}

// WriteNetwork renders a force-layout graph of authors to a writer. Node
// size scales with degree so well-connected contributors stand out.
func WriteNetwork(w io.Writer, cfg *contract.Config, graph *schema.CollabGraph) error {
	maxDegree := 0
	for _, n := range graph.Nodes {
		if n.Degree > maxDegree {
			maxDegree = n.Degree
		}
	}

	nodes := make([]opts.GraphNode, len(graph.Nodes))
	for i, n := range graph.Nodes {
		nodes[i] = opts.GraphNode{
			Name:       n.Author,
			Value:      float32(n.Degree),
			SymbolSize: nodeSize(n.Degree, maxDegree),
		}
	}

	links := make([]opts.GraphLink, len(graph.Edges))
	for i, e := range graph.Edges {
		links[i] = opts.GraphLink{
			Source: e.Source,
			Target: e.Target,
			Value:  float32(e.Weight),
		}
	}

	title := cfg.Title
	if title == "" {
		title = "Contributor collaboration network"
	}

	g := charts.NewGraph()
	g.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: title,
			Width:     chartWidth,
			Height:    chartHeight,
		}),
		charts.WithTitleOpts(opts.Title{Title: title}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
	)
	g.AddSeries("collaboration", nodes, links,
		charts.WithGraphChartOpts(opts.GraphChart{
			Layout: "force",
			Force:  &opts.GraphForce{Repulsion: forceRepulsion, Gravity: forceGravity},
			Roam:   opts.Bool(true),
		}),
		charts.WithLabelOpts(opts.Label{Show: opts.Bool(true), Position: "right"}),
	)

	return g.Render(w)
}

// nodeSize maps a node's degree onto the symbol size range.
func nodeSize(degree, maxDegree int) float32 {
	if maxDegree == 0 {
		return minNodeSize
	}
	scale := float32(degree) / float32(maxDegree)
	return minNodeSize + scale*(maxNodeSize-minNodeSize)
}
