package presburger

// sampleSearchWindow bounds the values FindIntegerSample tries for each
// variable: the rational relaxation's per-variable bounds, clamped to
// [-sampleSearchWindow, sampleSearchWindow]. Deciding integer feasibility
// exactly needs a full integer-point existence procedure (the Omega-test
// style algorithms in the original solver implement one via recursive
// tightening and dark/grey shadows); this instead does bounded
// branch-and-bound over the clamped bounds and never finds an integer
// point with a coordinate outside the window.
const sampleSearchWindow = 1 << 20

// FindIntegerSample searches for one integer point satisfying f, branching
// on each dimension/symbol/local variable in turn within bounds derived
// from the rational relaxation and clamped to ±sampleSearchWindow. Returns
// ok=false if none is found in that range: exact for a polyhedron lying
// inside the window, and otherwise a search limitation, not a proof of
// emptiness.
func (f *FAC) FindIntegerSample() ([]int64, bool) {
	if f.IsEmptyByGCDTest() {
		return nil, false
	}
	n := f.nDim + f.nSym + f.nLocal
	s := NewSimplexFromFAC(f)
	if s.IsEmpty() {
		return nil, false
	}
	assignment := make([]int64, n)
	if !searchSample(f, s, assignment, 0, n) {
		return nil, false
	}
	return assignment, true
}

func searchSample(f *FAC, s *Simplex, assignment []int64, idx, n int) bool {
	if idx == n {
		return f.satisfiedBy(assignment)
	}
	lo, hi, ok := s.VariableBounds(idx, sampleSearchWindow)
	if !ok {
		return false
	}
	row := make([]int64, n+1)
	for v := lo; v <= hi; v++ {
		assignment[idx] = v
		snap := s.GetSnapshot()

		for k := range row {
			row[k] = 0
		}
		row[idx] = 1
		row[n] = -v
		s.AddInequality(row) // x_idx - v >= 0
		for k := range row {
			row[k] = 0
		}
		row[idx] = -1
		row[n] = v
		s.AddInequality(row) // v - x_idx >= 0

		if !s.IsEmpty() && searchSample(f, s, assignment, idx+1, n) {
			return true
		}
		s.Rollback(snap)
	}
	return false
}
