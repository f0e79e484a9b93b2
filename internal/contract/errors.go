package contract

import "fmt"

// InvalidPathError reports a repository path argument that is neither a
// repository root nor a directory to search.
type InvalidPathError struct {
	Path   string
	Reason string
}

func (e *InvalidPathError) Error() string {
	return fmt.Sprintf("invalid repository path %q: %s", e.Path, e.Reason)
}

// ExtractionError reports a failed git invocation. Output holds the combined
// stdout/stderr captured from the tool for diagnosis.
type ExtractionError struct {
	RepoPath string
	Output   []byte
	Err      error
}

func (e *ExtractionError) Error() string {
	if len(e.Output) > 0 {
		return fmt.Sprintf("history extraction failed for %q: %v: %s", e.RepoPath, e.Err, e.Output)
	}
	return fmt.Sprintf("history extraction failed for %q: %v", e.RepoPath, e.Err)
}

func (e *ExtractionError) Unwrap() error { return e.Err }

// RuleError reports a rule that failed while accepting or postprocessing a
// commit record. Any rule failure aborts the whole run.
type RuleError struct {
	Rule  string
	Stage string // "accept" or "postprocess"
	Err   error
}

func (e *RuleError) Error() string {
	return fmt.Sprintf("rule %q failed during %s: %v", e.Rule, e.Stage, e.Err)
}

func (e *RuleError) Unwrap() error { return e.Err }
