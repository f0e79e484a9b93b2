package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
	"golang.org/x/term"

	"github.com/gitcrew/gitcrew/internal/contract"
	"github.com/gitcrew/gitcrew/internal/parquet"
	"github.com/gitcrew/gitcrew/schema"
)

// Terminals narrower than this drop the smoothed columns from the table.
const wideTableMinWidth = 100

// PrintWeeklyStats outputs the weekly aggregate table, dispatching based on
// the output format configured.
func PrintWeeklyStats(stats []schema.WeeklyStat, cfg *contract.Config, duration time.Duration) error {
	fmtFloat := createFloatFormatter(cfg.Precision)

	switch cfg.Output {
	case schema.JSONOut:
		if err := printWeeklyJSON(stats, cfg); err != nil {
			return fmt.Errorf("error writing JSON output: %w", err)
		}
	case schema.CSVOut:
		if err := printWeeklyCSV(stats, cfg, fmtFloat); err != nil {
			return fmt.Errorf("error writing CSV output: %w", err)
		}
	case schema.ParquetOut:
		if err := printWeeklyParquet(stats, cfg); err != nil {
			return fmt.Errorf("error writing Parquet output: %w", err)
		}
	default:
		// Default to human-readable table
		if err := printWeeklyTable(stats, cfg, fmtFloat, duration); err != nil {
			return fmt.Errorf("error writing table output: %w", err)
		}
	}
	return nil
}

func printWeeklyJSON(stats []schema.WeeklyStat, cfg *contract.Config) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		return writeJSON(w, stats)
	}, "Wrote JSON weekly stats")
}

func printWeeklyCSV(stats []schema.WeeklyStat, cfg *contract.Config, fmtFloat func(float64) string) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		header := []string{
			"week",
			"commit_author_age",
			"commit_count",
			"newcomers_count",
			"leaving_count",
			"active_count",
			"commit_author_age_smooth",
			"commit_count_smooth",
		}
		return writeCSVWithHeader(w, header, func(cw *csv.Writer) error {
			for _, s := range stats {
				row := []string{
					s.Week.Format(contract.DateOnlyFormat),
					fmtFloat(s.CommitAuthorAge),
					strconv.Itoa(s.CommitCount),
					strconv.Itoa(s.NewcomersCount),
					strconv.Itoa(s.LeavingCount),
					strconv.Itoa(s.ActiveCount),
					fmtOptional(s.CommitAuthorAgeSmooth, fmtFloat),
					fmtOptional(s.CommitCountSmooth, fmtFloat),
				}
				if err := cw.Write(row); err != nil {
					return err
				}
			}
			return nil
		})
	}, "Wrote CSV weekly stats")
}

// printWeeklyParquet requires an explicit output file: Parquet is a binary
// format and never goes to stdout.
func printWeeklyParquet(stats []schema.WeeklyStat, cfg *contract.Config) error {
	if cfg.OutputFile == "" {
		return fmt.Errorf("parquet output requires --output-file")
	}
	if err := parquet.WriteWeeklyParquet(stats, cfg.OutputFile); err != nil {
		return err
	}
	fmt.Fprintf(os.Stderr, "Wrote Parquet weekly stats to %s\n", cfg.OutputFile)
	return nil
}

// printWeeklyTable prints the aggregate table to stdout.
func printWeeklyTable(stats []schema.WeeklyStat, cfg *contract.Config, fmtFloat func(float64) string, duration time.Duration) error {
	wide := isWideTerminal()

	table := tablewriter.NewWriter(os.Stdout)

	headers := []string{"Week", "Age", "Commits", "New", "Leaving", "Active"}
	if wide {
		headers = append(headers, "Age (smooth)", "Commits (smooth)")
	}
	table.Header(headers)

	table.Configure(func(tcfg *tablewriter.Config) {
		tcfg.Row.Alignment.Global = tw.AlignRight
	})

	var data [][]string
	for _, s := range stats {
		row := []string{
			s.Week.Format(contract.DateOnlyFormat),
			fmtFloat(s.CommitAuthorAge),
			strconv.Itoa(s.CommitCount),
			strconv.Itoa(s.NewcomersCount),
			strconv.Itoa(s.LeavingCount),
			strconv.Itoa(s.ActiveCount),
		}
		if wide {
			row = append(row,
				fmtOptional(s.CommitAuthorAgeSmooth, fmtFloat),
				fmtOptional(s.CommitCountSmooth, fmtFloat),
			)
		}
		data = append(data, row)
	}

	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	fmt.Printf("Aggregated %d weeks in %v with %d workers.\n", len(stats), duration, cfg.Workers)
	return nil
}

// isWideTerminal reports whether stdout is wide enough for the smoothed
// columns. Non-terminal stdout (pipes, CI) gets the full table.
func isWideTerminal() bool {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return true
	}
	return width >= wideTableMinWidth
}

// fmtOptional renders absent smoothed values as an empty cell.
func fmtOptional(v *float64, fmtFloat func(float64) string) string {
	if v == nil {
		return ""
	}
	return fmtFloat(*v)
}
