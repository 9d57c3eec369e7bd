package fanout

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapPreservesOrder(t *testing.T) {
	const n = 16
	items := make([]int, n)
	release := make([]chan struct{}, n)
	started := make(chan int, n)
	for i := range items {
		items[i] = i
		release[i] = make(chan struct{})
	}

	// Force completion in reverse input order: every lookup blocks until
	// the controller releases it, last item first.
	go func() {
		seen := 0
		for range started {
			seen++
			if seen == n {
				break
			}
		}
		for i := n - 1; i >= 0; i-- {
			close(release[i])
		}
	}()

	results := Map(context.Background(), items, n, func(_ context.Context, i int) (int, error) {
		started <- i
		<-release[i]
		return i * 10, nil
	})

	require.Len(t, results, n)
	for i, r := range results {
		require.NoError(t, r.Err)
		assert.Equal(t, i*10, r.Value, "slot %d must hold item %d's result", i, i)
	}
}

func TestMapContainsFailures(t *testing.T) {
	items := []string{"a", "b", "c", "d"}
	boom := errors.New("lookup failed")

	results := Map(context.Background(), items, 2, func(_ context.Context, s string) (string, error) {
		if s == "b" {
			return "", boom
		}
		return s + "!", nil
	})

	require.Len(t, results, 4)
	assert.NoError(t, results[0].Err)
	assert.Equal(t, "a!", results[0].Value)

	// The failure settles in its own slot and the rest of the batch is
	// unaffected.
	assert.ErrorIs(t, results[1].Err, boom)
	assert.Equal(t, "c!", results[2].Value)
	assert.Equal(t, "d!", results[3].Value)
}

func TestMapEmptyInputIssuesNoLookups(t *testing.T) {
	var calls int64

	results := Map(context.Background(), nil, 4, func(_ context.Context, i int) (int, error) {
		atomic.AddInt64(&calls, 1)
		return 0, nil
	})

	assert.Nil(t, results)
	assert.EqualValues(t, 0, atomic.LoadInt64(&calls))
}

func TestMapCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	results := Map(ctx, []int{1, 2, 3}, 2, func(_ context.Context, i int) (int, error) {
		return i, nil
	})

	require.Len(t, results, 3)
	for _, r := range results {
		assert.ErrorIs(t, r.Err, context.Canceled)
	}
}

func TestMapBoundsConcurrency(t *testing.T) {
	const limit = 3
	var inFlight, peak int64

	items := make([]int, 20)
	results := Map(context.Background(), items, limit, func(_ context.Context, i int) (int, error) {
		cur := atomic.AddInt64(&inFlight, 1)
		for {
			p := atomic.LoadInt64(&peak)
			if cur <= p || atomic.CompareAndSwapInt64(&peak, p, cur) {
				break
			}
		}
		atomic.AddInt64(&inFlight, -1)
		return i, nil
	})

	require.Len(t, results, len(items))
	assert.LessOrEqual(t, atomic.LoadInt64(&peak), int64(limit))
}

func TestDefaultLimitBounds(t *testing.T) {
	limit := DefaultLimit()
	assert.GreaterOrEqual(t, limit, 4)
	assert.LessOrEqual(t, limit, 32)
}

func ExampleMap() {
	results := Map(context.Background(), []int{1, 2, 3}, 2, func(_ context.Context, i int) (int, error) {
		return i * i, nil
	})
	for _, r := range results {
		fmt.Println(r.Value)
	}
	// Output:
	// 1
	// 4
	// 9
}
