package parquet

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gitcrew/gitcrew/schema"
)

func TestRowsFromStats(t *testing.T) {
	smooth := 1.25
	stats := []schema.WeeklyStat{
		{
			Week:              time.Date(2021, 1, 4, 0, 0, 0, 0, time.UTC),
			CommitAuthorAge:   0.5,
			CommitCount:       7,
			NewcomersCount:    2,
			LeavingCount:      1,
			ActiveCount:       4,
			CommitCountSmooth: &smooth,
		},
	}

	rows := RowsFromStats(stats)
	require.Len(t, rows, 1)
	assert.Equal(t, int32(7), rows[0].CommitCount)
	assert.Equal(t, int32(4), rows[0].ActiveCount)
	assert.Nil(t, rows[0].CommitAuthorAgeSmooth)
	require.NotNil(t, rows[0].CommitCountSmooth)
	assert.Equal(t, 1.25, *rows[0].CommitCountSmooth)
}

func TestWriteWeeklyParquet(t *testing.T) {
	path := filepath.Join(t.TempDir(), "weekly.parquet")
	stats := []schema.WeeklyStat{
		{Week: time.Date(2021, 1, 4, 0, 0, 0, 0, time.UTC), CommitCount: 3, ActiveCount: 1},
	}

	require.NoError(t, WriteWeeklyParquet(stats, path))
	assert.FileExists(t, path)
}
