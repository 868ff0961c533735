package workers

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPool_RunsEveryIndexOnce(t *testing.T) {
	var mu sync.Mutex
	seen := make(map[int]int)

	p := Pool{Limit: 4}
	err := p.Run(context.Background(), 20, func(_ context.Context, i int) error {
		mu.Lock()
		seen[i]++
		mu.Unlock()
		return nil
	})

	require.NoError(t, err)
	require.Len(t, seen, 20)
	for i, n := range seen {
		assert.Equal(t, 1, n, "index %d ran %d times", i, n)
	}
}

func TestPool_ZeroTasks(t *testing.T) {
	p := Pool{}
	err := p.Run(context.Background(), 0, func(_ context.Context, _ int) error {
		t.Fatal("task must not run")
		return nil
	})

	require.NoError(t, err)
}

func TestPool_SequentialByDefault(t *testing.T) {
	var inFlight, peak atomic.Int32

	p := Pool{} // Limit unset -> 1
	err := p.Run(context.Background(), 10, func(_ context.Context, _ int) error {
		cur := inFlight.Add(1)
		if cur > peak.Load() {
			peak.Store(cur)
		}
		time.Sleep(time.Millisecond)
		inFlight.Add(-1)
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, int32(1), peak.Load())
}

func TestPool_LimitBoundsConcurrency(t *testing.T) {
	var inFlight atomic.Int32
	var exceeded atomic.Bool

	p := Pool{Limit: 3}
	err := p.Run(context.Background(), 30, func(_ context.Context, _ int) error {
		if inFlight.Add(1) > 3 {
			exceeded.Store(true)
		}
		time.Sleep(time.Millisecond)
		inFlight.Add(-1)
		return nil
	})

	require.NoError(t, err)
	assert.False(t, exceeded.Load())
}

func TestPool_FirstErrorStopsSubmission(t *testing.T) {
	boom := errors.New("boom")
	var ran atomic.Int32

	p := Pool{}
	err := p.Run(context.Background(), 100, func(_ context.Context, i int) error {
		ran.Add(1)
		if i == 2 {
			return boom
		}
		return nil
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
	assert.Less(t, ran.Load(), int32(100))
}

func TestPool_DelaySpacesStarts(t *testing.T) {
	p := Pool{Delay: 20 * time.Millisecond}

	start := time.Now()
	err := p.Run(context.Background(), 3, func(_ context.Context, _ int) error {
		return nil
	})

	require.NoError(t, err)
	assert.GreaterOrEqual(t, time.Since(start), 60*time.Millisecond)
}

func TestPool_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var ran atomic.Int32
	p := Pool{}
	err := p.Run(ctx, 5, func(_ context.Context, _ int) error {
		ran.Add(1)
		return nil
	})

	require.NoError(t, err) // no task ever started, so no error surfaced
	assert.Equal(t, int32(0), ran.Load())
}
