package contract

import (
	"context"
	"os/exec"
	"time"
)

// Git log delimiter format: records are separated by the 0x1E record
// separator and fields by the 0x1F unit separator. Neither byte can appear
// in commit content, so parsing stays unambiguous even for multi-line
// commit messages. Fields: hash, author name, author email, date, subject,
// followed by the --name-only file list.
const (
	GitLogFormat = "%x1e%H%x1f%an%x1f%ae%x1f%ad%x1f%s%x1f"

	// GitDateFormat matches git's --date=iso output.
	GitDateFormat = "2006-01-02 15:04:05 -0700"

	// DateOnlyFormat is the YYYY-MM-DD form accepted on the command line
	// and passed through to git's --since/--until.
	DateOnlyFormat = "2006-01-02"
)

// LocalGitClient implements the GitClient interface by executing the
// local 'git' binary installed on the machine.
type LocalGitClient struct{}

var _ GitClient = &LocalGitClient{} // Compile-time check

// NewLocalGitClient creates a new instance of the local Git client.
func NewLocalGitClient() *LocalGitClient {
	return &LocalGitClient{}
}

// Run executes a git command and returns its combined stdout/stderr output.
// The combined stream is kept even on failure so callers can surface git's
// own diagnostics.
func (c *LocalGitClient) Run(_ context.Context, repoPath string, args ...string) ([]byte, error) {
	fullArgs := append([]string{"-C", repoPath}, args...)
	cmd := exec.Command("git", fullArgs...)
	out, err := cmd.CombinedOutput()
	if err != nil {
		return nil, &ExtractionError{RepoPath: repoPath, Output: out, Err: err}
	}
	return out, nil
}

// GetCommitLog implements the GitClient interface.
func (c *LocalGitClient) GetCommitLog(ctx context.Context, repoPath string, start, end time.Time) ([]byte, error) {
	return c.Run(ctx, repoPath, CommitLogArgs(start, end)...)
}

// CommitLogArgs builds the git log argument list for a full-history
// extraction: all branches, oldest first, with per-commit file lists.
func CommitLogArgs(start, end time.Time) []string {
	args := []string{
		"log",
		"--date-order", "--reverse", "--all",
		"--date=iso",
		"--name-only",
		"--pretty=format:" + GitLogFormat,
	}
	if !start.IsZero() {
		args = append(args, "--since="+start.Format(DateOnlyFormat))
	}
	if !end.IsZero() {
		args = append(args, "--until="+end.Format(DateOnlyFormat))
	}
	return args
}
