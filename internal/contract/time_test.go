package contract

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var parseNow = time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)

func TestParseDateArgDateOnly(t *testing.T) {
	got, err := ParseDateArg("2021-03-01", parseNow)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2021, 3, 1, 0, 0, 0, 0, time.UTC), got)
}

func TestParseDateArgRFC3339(t *testing.T) {
	got, err := ParseDateArg("2021-03-01T15:04:05+02:00", parseNow)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2021, 3, 1, 13, 4, 5, 0, time.UTC), got)
}

func TestParseDateArgRelative(t *testing.T) {
	tests := []struct {
		input string
		want  time.Time
	}{
		{"2 years ago", parseNow.AddDate(-2, 0, 0)},
		{"3 months ago", parseNow.AddDate(0, -3, 0)},
		{"1 week ago", parseNow.AddDate(0, 0, -7)},
		{"10 days ago", parseNow.AddDate(0, 0, -10)},
	}
	for _, tt := range tests {
		got, err := ParseDateArg(tt.input, parseNow)
		require.NoError(t, err, tt.input)
		assert.Equal(t, tt.want, got, tt.input)
	}
}

func TestParseDateArgEmpty(t *testing.T) {
	got, err := ParseDateArg("  ", parseNow)
	require.NoError(t, err)
	assert.True(t, got.IsZero())
}

func TestParseDateArgInvalid(t *testing.T) {
	_, err := ParseDateArg("yesterday-ish", parseNow)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid date")
}
