package presburger

import (
	"context"
	"fmt"

	"github.com/gitrdm/gopresburger/internal/parallel"
)

// DifferenceJob names one b \ S computation within a ComputeAll batch.
type DifferenceJob struct {
	Name string
	FAC  *FAC
	Set  *Set
}

// DifferenceResult is the outcome of one DifferenceJob.
type DifferenceResult struct {
	Name string
	Diff *Set
	Err  error
}

// ComputeAll runs GetSetDifference for every job across a fixed-size
// worker pool. Each job gets its own Simplex (subtractRecursively's
// precondition, spec.md §5: "exclusively owned by one recursion tree"),
// so jobs share no mutable state and can run concurrently; workers is
// the pool size (<=0 defaults to runtime.NumCPU(), see
// internal/parallel.New). Results are returned in job order regardless
// of completion order, mirroring the teacher's pattern of fanning
// independent goal evaluations out across a worker pool
// (internal/parallel, adapted).
func ComputeAll(ctx context.Context, jobs []DifferenceJob, workers int, stats *SubtractionStats) ([]DifferenceResult, error) {
	pool := parallel.New(workers)
	defer pool.Shutdown()

	results := make([]DifferenceResult, len(jobs))
	errCh := make(chan error, len(jobs))

	for i, job := range jobs {
		i, job := i, job
		err := pool.Submit(ctx, func() {
			diff, err := GetSetDifference(job.FAC, job.Set, stats)
			results[i] = DifferenceResult{Name: job.Name, Diff: diff, Err: err}
			errCh <- nil
		})
		if err != nil {
			return nil, fmt.Errorf("presburger: submitting job %q: %w", job.Name, err)
		}
	}
	for range jobs {
		<-errCh
	}
	return results, nil
}
