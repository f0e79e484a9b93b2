// Package schema has the data model shared by all parts of gitcrew.
package schema

import "time"

// CommitRecord represents a single commit extracted from a repository.
// IDs and file paths are namespaced with the repository short name so that
// records from different repositories never collide in a merged table.
type CommitRecord struct {
	ID          string    `json:"id"`           // "<repository>:<commit-hash>"
	AuthorName  string    `json:"author_name"`  // Author name as reported by git
	AuthorEmail string    `json:"author_email"` // Author email as reported by git
	Date        time.Time `json:"date"`         // Commit date, normalized to UTC
	Message     string    `json:"message"`      // First line of the commit message
	Files       []string  `json:"files"`        // "<repository>:<path>" per changed file; empty for merges
	Repository  string    `json:"repository"`   // Directory basename of the repository root
}

// AuthorSpan is the tenure window of a single author across the merged
// table: the week bucket of their first commit through the week bucket of
// their last one.
type AuthorSpan struct {
	Author    string    `json:"author"`
	Arrival   time.Time `json:"arrival"`
	Departure time.Time `json:"departure"`
}

// WeeklyStat is one aggregated row per week bucket present in the data.
// Smoothed values are nil near the series edges where the smoothing window
// does not fully fit.
type WeeklyStat struct {
	Week            time.Time `json:"week"`              // Monday 00:00 UTC of the bucket
	CommitAuthorAge float64   `json:"commit_author_age"` // Commit-weighted mean author age, fractional years
	CommitCount     int       `json:"commit_count"`      // Commits in this bucket
	NewcomersCount  int       `json:"newcomers_count"`   // Authors whose first commit lands in this bucket
	LeavingCount    int       `json:"leaving_count"`     // Authors last seen before this bucket
	ActiveCount     int       `json:"active_count"`      // Cumulative newcomers minus cumulative leavers

	CommitAuthorAgeSmooth *float64 `json:"commit_author_age_smooth,omitempty"`
	CommitCountSmooth     *float64 `json:"commit_count_smooth,omitempty"`
}

// CollabEdge is an undirected collaboration link between two authors,
// weighted by the number of namespaced file paths both have touched.
type CollabEdge struct {
	Source string `json:"source"`
	Target string `json:"target"`
	Weight int    `json:"weight"`
}

// CollabNode is a single author in the collaboration graph.
type CollabNode struct {
	Author     string  `json:"author"`
	Degree     int     `json:"degree"`     // Number of collaborators with at least one shared file
	Centrality float64 `json:"centrality"` // Degree normalized by the number of other authors
}

// CollabGraph is the who-works-with-whom network derived from a commit table.
type CollabGraph struct {
	Nodes []CollabNode `json:"nodes"`
	Edges []CollabEdge `json:"edges"`
}
