package loader

import (
	"context"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// LoadAll discovers documents under opts.Paths and parses them concurrently.
// Per-document failures are recorded on the outcome; only discovery errors
// and cancellation are returned.
func LoadAll(ctx context.Context, opts Options) (*Result, error) {
	files, err := Discover(ctx, opts)
	if err != nil {
		return nil, err
	}

	result := &Result{Docs: make([]Outcome, len(files))}
	result.Stats.Discovered = len(files)

	if len(files) == 0 {
		return result, nil
	}

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.NumCPU()
	}

	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(jobs)

	for i, path := range files {
		group.Go(func() error {
			if err := groupCtx.Err(); err != nil {
				return err
			}
			tree, loadErr := Load(groupCtx, path, opts)
			// Each goroutine owns its slot.
			result.Docs[i] = Outcome{Path: path, Tree: tree, Err: loadErr}
			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return result, fmt.Errorf("load cancelled: %w", err)
	}
	if ctx.Err() != nil {
		return result, fmt.Errorf("load cancelled: %w", ctx.Err())
	}

	for _, outcome := range result.Docs {
		result.accumulate(outcome)
	}

	return result, nil
}
