// Package collab derives a who-works-with-whom network from a commit
// table: authors are nodes, and two authors are linked when they have
// touched at least one file in common.
package collab

import (
	"sort"

	"github.com/gitcrew/gitcrew/schema"
)

// BuildGraph computes the collaboration graph for a commit table. Edge
// weight is the number of namespaced file paths both authors have touched;
// pairs sharing nothing get no edge but both authors stay in the node set.
// Nodes and edges are sorted by author name for deterministic output.
func BuildGraph(table []schema.CommitRecord) *schema.CollabGraph {
	filesByAuthor := make(map[string]map[string]struct{})
	for _, rec := range table {
		set, ok := filesByAuthor[rec.AuthorName]
		if !ok {
			set = make(map[string]struct{})
			filesByAuthor[rec.AuthorName] = set
		}
		for _, f := range rec.Files {
			set[f] = struct{}{}
		}
	}

	authors := make([]string, 0, len(filesByAuthor))
	for a := range filesByAuthor {
		authors = append(authors, a)
	}
	sort.Strings(authors)

	graph := &schema.CollabGraph{}
	degree := make(map[string]int, len(authors))

	for i, source := range authors {
		for _, target := range authors[i+1:] {
			weight := intersectionSize(filesByAuthor[source], filesByAuthor[target])
			if weight == 0 {
				continue
			}
			graph.Edges = append(graph.Edges, schema.CollabEdge{
				Source: source,
				Target: target,
				Weight: weight,
			})
			degree[source]++
			degree[target]++
		}
	}

	for _, a := range authors {
		node := schema.CollabNode{Author: a, Degree: degree[a]}
		if len(authors) > 1 {
			node.Centrality = float64(degree[a]) / float64(len(authors)-1)
		}
		graph.Nodes = append(graph.Nodes, node)
	}

	return graph
}

func intersectionSize(a, b map[string]struct{}) int {
	if len(b) < len(a) {
		a, b = b, a
	}
	n := 0
	for f := range a {
		if _, ok := b[f]; ok {
			n++
		}
	}
	return n
}
