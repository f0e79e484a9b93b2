package core

import (
	"context"
	"sync"
	"time"

	"github.com/gitcrew/gitcrew/core/gitlog"
	"github.com/gitcrew/gitcrew/internal/contract"
	"github.com/gitcrew/gitcrew/schema"
)

// extractResult carries one repository's extraction outcome back from a
// worker.
type extractResult struct {
	entries []schema.CommitRecord
	err     error
}

// Collect fans the history extraction out across repositories using a
// worker pool sized by cfg.Workers and concatenates the results into one
// table. Any single repository failure fails the whole collection; workers
// already dispatched run to completion and their results are discarded.
func Collect(ctx context.Context, cfg *contract.Config, client contract.GitClient, repoRoots []string, now time.Time) ([]schema.CommitRecord, error) {
	repoCh := make(chan string, len(repoRoots))
	resultCh := make(chan extractResult, len(repoRoots))
	var wg sync.WaitGroup

	// Start worker pool
	for range cfg.Workers {
		wg.Go(func() {
			for repo := range repoCh {
				entries, err := gitlog.Extract(ctx, client, repo, cfg.StartDate, cfg.EndDate, now)
				resultCh <- extractResult{entries: entries, err: err}
			}
		})
	}

	// Send repositories to worker channel
	for _, repo := range repoRoots {
		repoCh <- repo
	}
	close(repoCh)

	// Wait for all workers to finish processing
	wg.Wait()
	close(resultCh)

	var table []schema.CommitRecord
	for r := range resultCh {
		if r.err != nil {
			return nil, r.err
		}
		table = append(table, r.entries...)
	}

	return table, nil
}
