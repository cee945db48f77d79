package presburger

import "sync/atomic"

// SubtractionStats holds atomic counters describing one subtractRecursively
// run, mirroring the lock-free SolverMonitor of the constraint solver this
// package was adapted from. All fields are updated with atomic operations
// so a *SubtractionStats can be shared across the goroutines a batch
// Subtract spawns (see batch.go) without a mutex.
type SubtractionStats struct {
	RecursionNodes   int64 // subtractRecursively calls entered
	SimplexCuts      int64 // branches pruned by an infeasible Simplex snapshot
	GCDCuts          int64 // redundant subtrahend inequalities skipped without forming a slice
	DisjunctsEmitted int64 // result FAC disjuncts produced
	MaxDepth         int64 // deepest recursion reached
}

// NewSubtractionStats returns a zeroed stats collector.
func NewSubtractionStats() *SubtractionStats { return &SubtractionStats{} }

// Snapshot returns a non-atomic copy safe to read after the run completes.
func (s *SubtractionStats) Snapshot() SubtractionStats {
	if s == nil {
		return SubtractionStats{}
	}
	return SubtractionStats{
		RecursionNodes:   atomic.LoadInt64(&s.RecursionNodes),
		SimplexCuts:      atomic.LoadInt64(&s.SimplexCuts),
		GCDCuts:          atomic.LoadInt64(&s.GCDCuts),
		DisjunctsEmitted: atomic.LoadInt64(&s.DisjunctsEmitted),
		MaxDepth:         atomic.LoadInt64(&s.MaxDepth),
	}
}

func (s *SubtractionStats) recordNode(depth int) {
	if s == nil {
		return
	}
	atomic.AddInt64(&s.RecursionNodes, 1)
	d := int64(depth)
	for {
		old := atomic.LoadInt64(&s.MaxDepth)
		if d <= old {
			break
		}
		if atomic.CompareAndSwapInt64(&s.MaxDepth, old, d) {
			break
		}
	}
}

func (s *SubtractionStats) recordSimplexCut() {
	if s == nil {
		return
	}
	atomic.AddInt64(&s.SimplexCuts, 1)
}

func (s *SubtractionStats) recordGCDCut() {
	if s == nil {
		return
	}
	atomic.AddInt64(&s.GCDCuts, 1)
}

func (s *SubtractionStats) recordDisjunct() {
	if s == nil {
		return
	}
	atomic.AddInt64(&s.DisjunctsEmitted, 1)
}
