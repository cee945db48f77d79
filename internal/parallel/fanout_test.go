package parallel

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestPoolRunsEveryTask(t *testing.T) {
	p := New(4)
	defer p.Shutdown()

	ctx := context.Background()
	var mu sync.Mutex
	var seen []int
	var wg sync.WaitGroup

	for i := 0; i < 20; i++ {
		i := i
		wg.Add(1)
		err := p.Submit(ctx, func() {
			defer wg.Done()
			mu.Lock()
			seen = append(seen, i)
			mu.Unlock()
		})
		require.NoError(t, err)
	}
	wg.Wait()

	require.Len(t, seen, 20)
	snap := p.Stats().Snapshot()
	require.EqualValues(t, 20, snap.Submitted)
	require.EqualValues(t, 20, snap.Completed)
	require.Zero(t, snap.Failed)
}

func TestPoolRecordsPanicsAsFailures(t *testing.T) {
	p := New(2)
	defer p.Shutdown()

	ctx := context.Background()
	require.NoError(t, p.Submit(ctx, func() {
		panic("boom")
	}))

	require.Eventually(t, func() bool {
		return p.Stats().Snapshot().Failed == 1
	}, time.Second, time.Millisecond)
	snap := p.Stats().Snapshot()
	require.EqualValues(t, 1, snap.Failed)
	require.Error(t, snap.LastError)
}

func TestPoolSubmitAfterShutdown(t *testing.T) {
	p := New(1)
	p.Shutdown()

	err := p.Submit(context.Background(), func() {})
	require.ErrorIs(t, err, ErrPoolShutdown)
}

func TestPoolSubmitRespectsContextCancellation(t *testing.T) {
	p := New(1)
	defer p.Shutdown()

	// Fill the single worker and its queue so the next Submit blocks.
	block := make(chan struct{})
	require.NoError(t, p.Submit(context.Background(), func() { <-block }))
	for i := 0; i < cap(p.taskChan); i++ {
		require.NoError(t, p.Submit(context.Background(), func() { <-block }))
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := p.Submit(ctx, func() {})
	require.ErrorIs(t, err, context.Canceled)
	close(block)
}

func TestPoolShutdownIsIdempotent(t *testing.T) {
	p := New(2)
	p.Shutdown()
	p.Shutdown() // must not panic on double-close
}

func ExamplePool() {
	p := New(2)
	defer p.Shutdown()

	var wg sync.WaitGroup
	results := make([]int, 4)
	for i := range results {
		i := i
		wg.Add(1)
		_ = p.Submit(context.Background(), func() {
			defer wg.Done()
			results[i] = i * i
		})
	}
	wg.Wait()
	fmt.Println(results)
	// Output: [0 1 4 9]
}
