// Package locate resolves user-supplied paths into concrete repository
// roots, recursing into plain directories to find nested repositories.
package locate

import (
	"os"
	"path/filepath"
	"sort"

	"github.com/gitcrew/gitcrew/internal/contract"
)

// Resolve maps each input path to the set of repository roots beneath it.
// A path that is itself a repository contributes itself; a plain directory
// is searched recursively; anything else is an InvalidPathError. The result
// is deduplicated and sorted for a stable processing order.
func Resolve(paths []string) ([]string, error) {
	visited := make(map[string]struct{})
	found := make(map[string]struct{})

	for _, p := range paths {
		abs, err := filepath.Abs(p)
		if err != nil {
			return nil, &contract.InvalidPathError{Path: p, Reason: err.Error()}
		}
		info, err := os.Stat(abs)
		if err != nil {
			return nil, &contract.InvalidPathError{Path: p, Reason: "no such file or directory"}
		}
		if !info.IsDir() {
			return nil, &contract.InvalidPathError{Path: p, Reason: "not a repository or directory"}
		}
		walk(abs, visited, found)
	}

	repos := make([]string, 0, len(found))
	for r := range found {
		repos = append(repos, r)
	}
	sort.Strings(repos)
	return repos, nil
}

// walk adds dir if it is a repository root, otherwise descends into its
// children. Symlink cycles are broken by resolving each directory to its
// real path and visiting it at most once.
func walk(dir string, visited, found map[string]struct{}) {
	real, err := filepath.EvalSymlinks(dir)
	if err != nil {
		return
	}
	if _, seen := visited[real]; seen {
		return
	}
	visited[real] = struct{}{}

	if IsRepoRoot(real) {
		found[real] = struct{}{}
		return
	}

	entries, err := os.ReadDir(real)
	if err != nil {
		return
	}
	for _, entry := range entries {
		child := filepath.Join(real, entry.Name())
		info, err := os.Stat(child) // follow symlinks
		if err != nil || !info.IsDir() {
			continue
		}
		walk(child, visited, found)
	}
}

// IsRepoRoot reports whether dir contains git metadata. Both directories
// (normal clones) and files (worktrees, submodules) count.
func IsRepoRoot(dir string) bool {
	_, err := os.Stat(filepath.Join(dir, ".git"))
	return err == nil
}
