// Package gitlog turns raw git log output into structured commit records.
package gitlog

import (
	"context"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/gitcrew/gitcrew/core/rules"
	"github.com/gitcrew/gitcrew/internal/contract"
	"github.com/gitcrew/gitcrew/schema"
)

const (
	recordSep = "\x1e"
	fieldSep  = "\x1f"
)

// Extract runs the history extraction for a single repository: invoke git,
// parse the delimited log, filter by date range and rules, and namespace
// identifiers with the repository's short name.
//
// Records with a missing or unparseable date are silently dropped, as are
// records dated in the future relative to now. A failed git invocation or a
// failing rule aborts with an error.
func Extract(ctx context.Context, client contract.GitClient, repoRoot string, start, end, now time.Time) ([]schema.CommitRecord, error) {
	raw, err := client.GetCommitLog(ctx, repoRoot, start, end)
	if err != nil {
		return nil, err
	}
	return parse(raw, filepath.Base(repoRoot), start, end, now)
}

// parse converts one repository's raw log output into accepted, namespaced,
// postprocessed commit records in the order git emitted them.
func parse(raw []byte, repoName string, start, end, now time.Time) ([]schema.CommitRecord, error) {
	var entries []schema.CommitRecord

	for _, record := range strings.Split(string(raw), recordSep) {
		record = strings.TrimSpace(record)
		if record == "" {
			continue
		}
		fields := strings.Split(record, fieldSep)

		rec := schema.CommitRecord{
			ID:          fieldAt(fields, 0),
			AuthorName:  fieldAt(fields, 1),
			AuthorEmail: fieldAt(fields, 2),
			Message:     fieldAt(fields, 4),
			Repository:  repoName,
		}

		date, err := time.Parse(contract.GitDateFormat, fieldAt(fields, 3))
		if err != nil {
			// Real-world history contains malformed dates; skip, not fail.
			continue
		}
		rec.Date = date.UTC()

		if rec.Date.After(now) {
			continue
		}
		if !inRange(rec.Date, start, end) {
			continue
		}

		ok, err := rules.Accept(&rec)
		if err != nil {
			return nil, err
		}
		if !ok {
			continue
		}

		rec.ID = repoName + ":" + rec.ID
		rec.Files = namespaceFiles(fieldAt(fields, 5), repoName)

		if err := rules.Postprocess(&rec); err != nil {
			return nil, err
		}

		entries = append(entries, rec)
	}

	return entries, nil
}

// fieldAt returns fields[i], or "" when the record is short. Merge commits
// produce no file list, so the last field is routinely absent.
func fieldAt(fields []string, i int) string {
	if i >= len(fields) {
		return ""
	}
	return strings.TrimSpace(fields[i])
}

// inRange applies the inclusive [start, end] filter; a zero bound is open.
func inRange(date, start, end time.Time) bool {
	if !start.IsZero() && date.Before(start) {
		return false
	}
	if !end.IsZero() && date.After(end) {
		return false
	}
	return true
}

// namespaceFiles splits the --name-only block into a sorted, deduplicated
// set of <repo>:<path> entries.
func namespaceFiles(block, repoName string) []string {
	set := make(map[string]struct{})
	for _, line := range strings.Split(block, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		set[repoName+":"+line] = struct{}{}
	}
	if len(set) == 0 {
		return nil
	}
	files := make([]string, 0, len(set))
	for f := range set {
		files = append(files, f)
	}
	sort.Strings(files)
	return files
}
