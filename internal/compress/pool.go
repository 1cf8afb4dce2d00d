package compress

import (
	"context"
	"sync/atomic"

	"golang.org/x/sync/errgroup"
)

// All compresses every file on a fixed-size worker pool and returns one
// Result per input, in input order, regardless of completion order. Files
// hold no shared mutable state, so the only coordination is the pool limit
// and the index-addressed result slot each task owns.
//
// Cancellation is coarse: a file already being processed runs to completion,
// while files still queued when ctx is canceled pass through unchanged with
// OutcomeSkipped.
func (c *Compressor) All(ctx context.Context, files []SourceFile) []Result {
	results := make([]Result, len(files))

	g := new(errgroup.Group)
	g.SetLimit(c.workers)

	var done atomic.Int64
	for i, f := range files {
		g.Go(func() error {
			if ctx.Err() != nil {
				results[i] = Result{Path: f.Path, Content: f.Content, Outcome: OutcomeSkipped}
			} else {
				results[i] = c.File(f)
			}
			if c.progress != nil {
				c.progress(int(done.Add(1)), len(files))
			}
			return nil
		})
	}

	// Tasks never return errors; Wait only fences the pool.
	_ = g.Wait()

	return results
}
