// Package workers provides the bounded, throttled task pool used to fan out
// independent network lookups while keeping every result addressable by its
// input position.
package workers

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"
)

// Pool runs indexed tasks with at most Limit of them in flight, spacing task
// starts by Delay. A Limit below one means sequential execution; a Delay of
// zero disables throttling.
type Pool struct {
	Limit int
	Delay time.Duration
}

// Run executes task(ctx, i) for every index in [0, n). The first error
// returned by a task cancels the shared context, stops the submission of
// further tasks, and is returned after all started tasks have finished.
// Tasks own their slot of any shared result slice; Run itself shares nothing.
func (p Pool) Run(ctx context.Context, n int, task func(ctx context.Context, i int) error) error {
	limit := p.Limit
	if limit < 1 {
		limit = 1
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)

	var throttle <-chan time.Time
	if p.Delay > 0 {
		ticker := time.NewTicker(p.Delay)
		defer ticker.Stop()
		throttle = ticker.C
	}

	for i := 0; i < n; i++ {
		if throttle != nil {
			select {
			case <-ctx.Done():
			case <-throttle:
			}
		}
		if ctx.Err() != nil {
			break
		}

		i := i
		g.Go(func() error {
			// a task may win a slot after cancellation; never start it
			if err := ctx.Err(); err != nil {
				return err
			}
			return task(ctx, i)
		})
	}

	return g.Wait()
}
