package presburger

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestComputeAllRunsEveryJobAndPreservesOrder(t *testing.T) {
	jobs := []DifferenceJob{
		{Name: "job0", FAC: boundedRange(0, 10), Set: rangeSet(3, 5)},
		{Name: "job1", FAC: boundedRange(0, 4), Set: rangeSet(0, 2)},
		{Name: "job2", FAC: boundedRange(-5, 5), Set: rangeSet(0, 0)},
	}
	stats := NewSubtractionStats()

	results, err := ComputeAll(context.Background(), jobs, 2, stats)
	require.NoError(t, err)
	require.Len(t, results, 3)

	for i, job := range jobs {
		require.Equal(t, job.Name, results[i].Name)
		require.NoError(t, results[i].Err)
		require.NotNil(t, results[i].Diff)
	}

	require.False(t, results[0].Diff.ContainsPoint([]int64{4}))
	require.True(t, results[0].Diff.ContainsPoint([]int64{0}))

	snap := stats.Snapshot()
	require.Greater(t, snap.RecursionNodes, int64(0))
}

func TestComputeAllIsolatesPerJobErrors(t *testing.T) {
	bad := NewFAC(1, 0)
	bad.addLocal()
	badSet := NewSetFromFAC(bad)

	jobs := []DifferenceJob{
		{Name: "good", FAC: boundedRange(0, 5), Set: rangeSet(2, 3)},
		{Name: "bad", FAC: boundedRange(0, 5), Set: badSet},
	}

	results, err := ComputeAll(context.Background(), jobs, 2, nil)
	require.NoError(t, err, "per-job failures must not fail the whole batch")
	require.Len(t, results, 2)

	require.NoError(t, results[0].Err)
	require.Error(t, results[1].Err)
	var target *SubtractionUnsupportedError
	require.ErrorAs(t, results[1].Err, &target)
}

func TestComputeAllDefaultsWorkerCount(t *testing.T) {
	jobs := []DifferenceJob{
		{Name: "only", FAC: boundedRange(0, 3), Set: rangeSet(1, 2)},
	}
	results, err := ComputeAll(context.Background(), jobs, 0, nil)
	require.NoError(t, err)
	require.Len(t, results, 1)
	require.NoError(t, results[0].Err)
}

// Context-cancellation behavior of Submit itself is covered at the pool
// level by internal/parallel's fanout_test.go; ComputeAll just propagates
// whatever error Submit returns, a path this file does not exercise.
// Per-job errors are reported in the results instead, as the isolation
// test above checks.
