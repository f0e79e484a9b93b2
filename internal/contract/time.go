package contract

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Capture "N [units] ago", e.g. "2 years ago", "3 months ago".
var relativeTimeRe = regexp.MustCompile(`^(\d+)\s+(year|month|week|day)s?\s+ago$`)

// ParseDateArg converts a user-supplied date bound into a UTC time.
// Accepted forms: YYYY-MM-DD (interpreted as midnight UTC), RFC3339, or a
// relative form like "2 years ago". The raw string is still handed to git
// verbatim; the parsed value drives the in-process range filter.
func ParseDateArg(s string, now time.Time) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, nil
	}

	if t, err := time.Parse(DateOnlyFormat, s); err == nil {
		return t.UTC(), nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t.UTC(), nil
	}
	if t, err := parseRelativeTime(s, now); err == nil {
		return t.UTC(), nil
	}

	return time.Time{}, fmt.Errorf("invalid date %q (expected YYYY-MM-DD, RFC3339 or e.g. \"2 years ago\")", s)
}

// parseRelativeTime converts strings like "2 years ago" into a time in the past.
func parseRelativeTime(s string, now time.Time) (time.Time, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	matches := relativeTimeRe.FindStringSubmatch(s)
	if len(matches) == 0 {
		return time.Time{}, fmt.Errorf("invalid relative time format: %s", s)
	}

	value, _ := strconv.Atoi(matches[1])
	switch matches[2] {
	case "year":
		return now.AddDate(-value, 0, 0), nil
	case "month":
		return now.AddDate(0, -value, 0), nil
	case "week":
		return now.AddDate(0, 0, -7*value), nil
	case "day":
		return now.AddDate(0, 0, -value), nil
	default:
		// Should be caught by the regex, but good for safety
		return time.Time{}, fmt.Errorf("unsupported time unit: %s", matches[2])
	}
}
