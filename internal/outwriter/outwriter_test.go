package outwriter

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gitcrew/gitcrew/internal/contract"
	"github.com/gitcrew/gitcrew/schema"
)

func statsFixture() []schema.WeeklyStat {
	smooth := 0.123456
	return []schema.WeeklyStat{
		{
			Week:            time.Date(2021, 1, 4, 0, 0, 0, 0, time.UTC),
			CommitAuthorAge: 0.25,
			CommitCount:     4,
			NewcomersCount:  1,
			ActiveCount:     1,
		},
		{
			Week:                  time.Date(2021, 1, 11, 0, 0, 0, 0, time.UTC),
			CommitAuthorAge:       0.5,
			CommitCount:           2,
			LeavingCount:          1,
			ActiveCount:           0,
			CommitAuthorAgeSmooth: &smooth,
		},
	}
}

func TestPrintWeeklyStatsJSONToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stats.json")
	cfg := &contract.Config{Output: schema.JSONOut, OutputFile: path, Precision: 2}

	require.NoError(t, PrintWeeklyStats(statsFixture(), cfg, time.Second))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)

	var decoded []schema.WeeklyStat
	require.NoError(t, json.Unmarshal(raw, &decoded))
	require.Len(t, decoded, 2)
	assert.Equal(t, 4, decoded[0].CommitCount)
	assert.Nil(t, decoded[0].CommitAuthorAgeSmooth)
	require.NotNil(t, decoded[1].CommitAuthorAgeSmooth)
}

func TestPrintWeeklyStatsCSVToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stats.csv")
	cfg := &contract.Config{Output: schema.CSVOut, OutputFile: path, Precision: 2}

	require.NoError(t, PrintWeeklyStats(statsFixture(), cfg, time.Second))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, "week", rows[0][0])
	assert.Equal(t, "2021-01-04", rows[1][0])
	assert.Equal(t, "0.25", rows[1][1])
	// Absent smoothed values become empty cells.
	assert.Equal(t, "", rows[1][6])
	assert.Equal(t, "0.12", rows[2][6])
}

func TestPrintWeeklyStatsParquetRequiresFile(t *testing.T) {
	cfg := &contract.Config{Output: schema.ParquetOut, Precision: 2}
	err := PrintWeeklyStats(statsFixture(), cfg, time.Second)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--output-file")
}

func TestPrintWeeklyStatsParquetToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stats.parquet")
	cfg := &contract.Config{Output: schema.ParquetOut, OutputFile: path, Precision: 2}

	require.NoError(t, PrintWeeklyStats(statsFixture(), cfg, time.Second))
	assert.FileExists(t, path)
}

func TestWriteJSONIndents(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, writeJSON(&buf, map[string]int{"a": 1}))
	assert.Contains(t, buf.String(), "  \"a\": 1")
}

func TestCreateFloatFormatter(t *testing.T) {
	fmtFloat := createFloatFormatter(3)
	assert.Equal(t, "1.235", fmtFloat(1.23456))
}

func TestFmtOptional(t *testing.T) {
	fmtFloat := createFloatFormatter(2)
	assert.Equal(t, "", fmtOptional(nil, fmtFloat))
	v := 2.0
	assert.Equal(t, "2.00", fmtOptional(&v, fmtFloat))
}
