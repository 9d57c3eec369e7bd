package fanout

import (
	"context"
	"runtime"
	"sync"
)

// Result is the settled outcome of one lookup. Err is set when that lookup
// failed; the item keeps its slot in the output either way.
type Result[T any] struct {
	Value T
	Err   error
}

// DefaultLimit sizes the in-flight window for I/O-bound lookups. More
// workers than cores since most time is spent waiting on the network,
// capped to avoid flooding the upstream service with connections.
func DefaultLimit() int {
	limit := runtime.NumCPU() * 4
	if limit < 4 {
		limit = 4
	}
	if limit > 32 {
		limit = 32
	}
	return limit
}

// Map runs fn once per item with at most limit lookups in flight and
// returns one Result per input index. Every lookup settles: a failure is
// recorded in its own slot and never aborts the rest of the batch. Output
// order is input order regardless of completion order. An empty input
// returns immediately without spawning a single goroutine.
//
// Once ctx is cancelled no further lookups are issued; the remaining slots
// settle with ctx.Err().
func Map[S, T any](ctx context.Context, items []S, limit int, fn func(context.Context, S) (T, error)) []Result[T] {
	if len(items) == 0 {
		return nil
	}
	if limit <= 0 {
		limit = DefaultLimit()
	}

	out := make([]Result[T], len(items))
	sem := make(chan struct{}, limit)
	var wg sync.WaitGroup

	for i, item := range items {
		if err := ctx.Err(); err != nil {
			out[i] = Result[T]{Err: err}
			continue
		}

		select {
		case sem <- struct{}{}:
		case <-ctx.Done():
			out[i] = Result[T]{Err: ctx.Err()}
			continue
		}

		wg.Add(1)
		go func(i int, item S) {
			defer wg.Done()
			defer func() { <-sem }()
			v, err := fn(ctx, item)
			out[i] = Result[T]{Value: v, Err: err}
		}(i, item)
	}

	wg.Wait()
	return out
}
