// Package contract provides interfaces and shared utilities for internal architecture.
package contract

import (
	"context"
	"time"
)

// GitClient defines the operations needed to pull history out of a
// repository. This allows the extraction logic to be tested without a real
// git executable.
type GitClient interface {
	// Run executes a git command against the repository and returns the
	// combined stdout/stderr output. A non-zero exit is reported as an
	// *ExtractionError carrying the captured output.
	Run(ctx context.Context, repoPath string, args ...string) ([]byte, error)

	// GetCommitLog returns the full commit history of the repository in
	// forward chronological order across all branches, with changed-file
	// lists, in the machine-readable delimiter format parsed by core/gitlog.
	// Zero start or end times mean no bound on that side.
	GetCommitLog(ctx context.Context, repoPath string, start, end time.Time) ([]byte, error)
}
