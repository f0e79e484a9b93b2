// Package plot renders the aggregated results as self-contained
// interactive HTML charts.
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
	chartWidth  = "100%"
	chartHeight = "700px"

	ageColor    = "#5470c6"
	commitColor = "#91cc75"
	activeColor = "#ee6666"
	inColor     = "#73c0de"
	outColor    = "#fac858"
)

// RenderWeekly writes the weekly contributor chart to cfg.OutputFile.
func RenderWeekly(cfg *contract.Config, stats []schema.WeeklyStat) error {
	f, err := contract.SelectOutputFile(chartFile(cfg))
	if err != nil {
		return fmt.Errorf("cannot create chart file: %w", err)
	}
	defer f.Close() //nolint:errcheck // read-only close

	return WriteWeekly(f, cfg, stats)
}

// WriteWeekly renders the weekly chart to an arbitrary writer. Split from
// RenderWeekly so tests can render into a buffer.
//
// The chart overlays five series on two value axes: raw mean author age
// (scatter) and its smoothed line on the left axis, smoothed commit count
// and active contributors on the right axis, and newcomer/leaver bars on
// the right axis as well.
func WriteWeekly(w io.Writer, cfg *contract.Config, stats []schema.WeeklyStat) error {
	weeks := make([]string, len(stats))
	rawAge := make([]opts.ScatterData, len(stats))
	smoothAge := make([]opts.LineData, len(stats))
	smoothCommits := make([]opts.LineData, len(stats))
	active := make([]opts.LineData, len(stats))
	newcomers := make([]opts.BarData, len(stats))
	leaving := make([]opts.BarData, len(stats))

	for i, s := range stats {
		weeks[i] = s.Week.Format(contract.DateOnlyFormat)
		rawAge[i] = opts.ScatterData{Value: s.CommitAuthorAge, SymbolSize: 5}
		smoothAge[i] = opts.LineData{Value: gapValue(s.CommitAuthorAgeSmooth)}
		smoothCommits[i] = opts.LineData{Value: gapValue(s.CommitCountSmooth)}
		active[i] = opts.LineData{Value: s.ActiveCount}
		newcomers[i] = opts.BarData{Value: s.NewcomersCount}
		leaving[i] = opts.BarData{Value: -s.LeavingCount}
	}

	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: chartTitle(cfg),
			Width:     chartWidth,
			Height:    chartHeight,
		}),
		charts.WithTitleOpts(opts.Title{Title: chartTitle(cfg)}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "axis"}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true), Top: "30"}),
		charts.WithDataZoomOpts(opts.DataZoom{Type: "slider"}),
		charts.WithXAxisOpts(opts.XAxis{Name: "Week"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "Author age (years)"}),
	)
	line.ExtendYAxis(opts.YAxis{Name: "Contributors / commits"})
	line.SetXAxis(weeks)

	line.AddSeries("Mean author age (smoothed)", smoothAge,
		charts.WithLineChartOpts(opts.LineChart{Smooth: opts.Bool(true)}),
		charts.WithItemStyleOpts(opts.ItemStyle{Color: ageColor}),
	)
	line.AddSeries("Commits per week (smoothed)", smoothCommits,
		charts.WithLineChartOpts(opts.LineChart{Smooth: opts.Bool(true), YAxisIndex: 1}),
		charts.WithItemStyleOpts(opts.ItemStyle{Color: commitColor}),
	)
	line.AddSeries("Active contributors", active,
		charts.WithLineChartOpts(opts.LineChart{YAxisIndex: 1}),
		charts.WithItemStyleOpts(opts.ItemStyle{Color: activeColor}),
	)

	scatter := charts.NewScatter()
	scatter.AddSeries("Mean author age (raw)", rawAge,
		charts.WithItemStyleOpts(opts.ItemStyle{Color: ageColor, Opacity: opts.Float(0.35)}),
	)

	bar := charts.NewBar()
	bar.AddSeries("Newcomers", newcomers,
		charts.WithBarChartOpts(opts.BarChart{YAxisIndex: 1, Stack: "flow"}),
		charts.WithItemStyleOpts(opts.ItemStyle{Color: inColor}),
	)
	bar.AddSeries("Leavers", leaving,
		charts.WithBarChartOpts(opts.BarChart{YAxisIndex: 1, Stack: "flow"}),
		charts.WithItemStyleOpts(opts.ItemStyle{Color: outColor}),
	)

	line.Overlap(scatter)
	line.Overlap(bar)

	return line.Render(w)
}

// chartFile falls back to the default file name when no output file was
// configured; charts cannot go to stdout.
func chartFile(cfg *contract.Config) string {
	if cfg.OutputFile != "" {
		return cfg.OutputFile
	}
	return contract.DefaultChartFile
}

func chartTitle(cfg *contract.Config) string {
	if cfg.Title != "" {
		return cfg.Title
	}
	return "Contributor activity by week"
}

// gapValue maps absent smoothed values to the echarts empty-point marker
// so the series shows a gap instead of a fabricated zero.
func gapValue(v *float64) any {
	if v == nil {
		return "-"
	}
	return *v
}
