// Package parquet exports the weekly aggregate table to Parquet files
// using github.com/parquet-go/parquet-go.
package parquet

import (
	"fmt"
	"os"
	"time"

	"github.com/parquet-go/parquet-go"

	"github.com/gitcrew/gitcrew/schema"
)

// WeeklyRow is the Parquet row shape for one aggregated week. The schema
// is inferred from the struct tags.
type WeeklyRow struct {
	// Week is the Monday 00:00 UTC starting the bucket.
	Week time.Time `parquet:"week,snappy"`

	// CommitAuthorAge is the commit-weighted mean author age in fractional years.
	CommitAuthorAge float64 `parquet:"commit_author_age,snappy"`

	// CommitCount is the number of commits in the bucket.
	CommitCount int32 `parquet:"commit_count,snappy"`

	// NewcomersCount is the number of authors whose first commit lands here.
	NewcomersCount int32 `parquet:"newcomers_count,snappy"`

	// LeavingCount is the number of authors last seen before this bucket.
	LeavingCount int32 `parquet:"leaving_count,snappy"`

	// ActiveCount is cumulative newcomers minus cumulative leavers.
	ActiveCount int32 `parquet:"active_count,snappy"`

	// Smoothed series values; absent near the series edges.
	CommitAuthorAgeSmooth *float64 `parquet:"commit_author_age_smooth,optional,snappy"`
	CommitCountSmooth     *float64 `parquet:"commit_count_smooth,optional,snappy"`
}

// RowsFromStats converts the aggregate table to Parquet rows.
func RowsFromStats(stats []schema.WeeklyStat) []WeeklyRow {
	rows := make([]WeeklyRow, len(stats))
	for i, s := range stats {
		rows[i] = WeeklyRow{
			Week:                  s.Week,
			CommitAuthorAge:       s.CommitAuthorAge,
			CommitCount:           int32(s.CommitCount),
			NewcomersCount:        int32(s.NewcomersCount),
			LeavingCount:          int32(s.LeavingCount),
			ActiveCount:           int32(s.ActiveCount),
			CommitAuthorAgeSmooth: s.CommitAuthorAgeSmooth,
			CommitCountSmooth:     s.CommitCountSmooth,
		}
	}
	return rows
}

// WriteWeeklyParquet writes the aggregate table to a Parquet file.
func WriteWeeklyParquet(stats []schema.WeeklyStat, outputPath string) error {
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() { _ = file.Close() }()

	writer := parquet.NewGenericWriter[WeeklyRow](file)
	if _, err := writer.Write(RowsFromStats(stats)); err != nil {
		_ = writer.Close()
		return fmt.Errorf("failed to write data to parquet file: %w", err)
	}
	return writer.Close()
}
