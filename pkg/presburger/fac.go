package presburger

import "fmt"

// FAC ("flat affine constraints") is a single integer polyhedron: a
// conjunction of affine equalities and inequalities over nDim ambient
// dimensions, nSym ambient symbols, and nLocal existentially-quantified
// local variables private to this FAC. Column order is fixed:
// [dims | syms | locals | const].
//
// A row of length nDim+nSym+nLocal+1 encodes either
//
//	Σ aᵢ xᵢ + c ≥ 0   (inequality)
//	Σ aᵢ xᵢ + c = 0   (equality)
//
// FAC values are copied, never aliased, across the operations below;
// there is no identity.
type FAC struct {
	nDim, nSym, nLocal int
	eqs                *Matrix
	ineqs              *Matrix
}

// NewFAC returns an unconstrained FAC (the universe) over nDim dimensions
// and nSym symbols, with zero local variables.
func NewFAC(nDim, nSym int) *FAC {
	if nDim < 0 || nSym < 0 {
		panic("presburger: nDim and nSym must be non-negative")
	}
	cols := nDim + nSym + 1
	return &FAC{
		nDim:  nDim,
		nSym:  nSym,
		eqs:   NewMatrix(cols),
		ineqs: NewMatrix(cols),
	}
}

// GetUniverse returns an FAC with no constraints, per spec.
func GetUniverse(nDim, nSym int) *FAC { return NewFAC(nDim, nSym) }

func (f *FAC) NumDims() int         { return f.nDim }
func (f *FAC) NumSyms() int         { return f.nSym }
func (f *FAC) NumLocals() int       { return f.nLocal }
func (f *FAC) NumEqualities() int   { return f.eqs.NumRows() }
func (f *FAC) NumInequalities() int { return f.ineqs.NumRows() }

// cols returns the current row width (dims+syms+locals+1).
func (f *FAC) cols() int { return f.nDim + f.nSym + f.nLocal + 1 }

// Equality returns equality row i. The slice aliases internal storage.
func (f *FAC) Equality(i int) []int64 { return f.eqs.Row(i) }

// Inequality returns inequality row i. The slice aliases internal storage.
func (f *FAC) Inequality(i int) []int64 { return f.ineqs.Row(i) }

// AddEquality adds Σ row·x + c = 0. row must have length cols().
func (f *FAC) AddEquality(row []int64) int { return f.eqs.AppendRow(row) }

// AddInequality adds Σ row·x + c ≥ 0. row must have length cols().
func (f *FAC) AddInequality(row []int64) int { return f.ineqs.AppendRow(row) }

// AddBound is a convenience wrapper adding the inequality coeffs·x + c ≥ 0.
func (f *FAC) AddBound(coeffs []int64, c int64) int {
	row := make([]int64, len(coeffs)+1)
	copy(row, coeffs)
	row[len(coeffs)] = c
	return f.AddInequality(row)
}

// RemoveInequality removes inequality i.
func (f *FAC) RemoveInequality(i int) { f.ineqs.RemoveRow(i) }

// RemoveInequalityRange removes inequalities in [start, end).
func (f *FAC) RemoveInequalityRange(start, end int) { f.ineqs.RemoveRowRange(start, end) }

// RemoveEqualityRange removes equalities in [start, end).
func (f *FAC) RemoveEqualityRange(start, end int) { f.eqs.RemoveRowRange(start, end) }

// addLocal widens both matrices with one new local column (just before the
// constant column) and returns its index within the local id space.
func (f *FAC) addLocal() int {
	at := f.nDim + f.nSym + f.nLocal
	f.eqs.InsertColumn(at)
	f.ineqs.InsertColumn(at)
	f.nLocal++
	return f.nLocal - 1
}

// AddDivision introduces a new local variable q = floor(expr/divisor) and
// adds its two defining inequalities (0 ≤ expr - divisor*q ≤ divisor-1).
// exprCoeffs must have length nDim+nSym+NumLocals() (i.e. it may reference
// existing locals but not the one being created) and divisor must be
// positive. Returns the new local's index.
func (f *FAC) AddDivision(exprCoeffs []int64, exprConst, divisor int64) int {
	if divisor <= 0 {
		panic("presburger: AddDivision requires a positive divisor")
	}
	want := f.nDim + f.nSym + f.nLocal
	if len(exprCoeffs) != want {
		panic(fmt.Sprintf("presburger: AddDivision expects %d coefficients, got %d", want, len(exprCoeffs)))
	}
	li := f.addLocal()
	idx := f.nDim + f.nSym + li
	n := f.nDim + f.nSym + f.nLocal

	lower := make([]int64, n+1) // expr - divisor*q >= 0
	copy(lower, exprCoeffs)
	lower[idx] = -divisor
	lower[n] = exprConst

	upper := make([]int64, n+1) // divisor*q - expr + divisor - 1 >= 0
	for k := 0; k < n; k++ {
		if k != idx {
			upper[k] = -lower[k]
		}
	}
	upper[idx] = divisor
	upper[n] = -lower[n] + (divisor - 1)

	f.AddInequality(lower)
	f.AddInequality(upper)
	return li
}

// Append concatenates other's equalities and inequalities into f. other
// must have the same column layout (same nDim, nSym, nLocal) as f.
func (f *FAC) Append(other *FAC) {
	if f.nDim != other.nDim || f.nSym != other.nSym || f.nLocal != other.nLocal {
		panic("presburger: Append requires identical column layout; call MergeLocalIds first")
	}
	for i := 0; i < other.eqs.NumRows(); i++ {
		f.eqs.AppendRow(other.eqs.Row(i))
	}
	for i := 0; i < other.ineqs.NumRows(); i++ {
		f.ineqs.AppendRow(other.ineqs.Row(i))
	}
}

// MergeLocalIds re-homes the local variables of f and other so both refer
// to a shared local-column layout: after the call both have
// nLocal == L1+L2, f's original locals occupy [nDim+nSym, nDim+nSym+L1)
// and other's original locals occupy [nDim+nSym+L1, nDim+nSym+L1+L2).
// Existing rows are rewritten by inserting zero columns, so they remain
// semantically unchanged.
func (f *FAC) MergeLocalIds(other *FAC) {
	if f.nDim != other.nDim || f.nSym != other.nSym {
		panic("presburger: MergeLocalIds requires matching nDim/nSym")
	}
	l1, l2 := f.nLocal, other.nLocal
	at := f.nDim + f.nSym + l1
	for i := 0; i < l2; i++ {
		f.eqs.InsertColumn(at)
		f.ineqs.InsertColumn(at)
	}
	f.nLocal = l1 + l2

	at2 := other.nDim + other.nSym
	for i := 0; i < l1; i++ {
		other.eqs.InsertColumn(at2)
		other.ineqs.InsertColumn(at2)
	}
	other.nLocal = l1 + l2
}

// RemoveIdRange removes local variables in [start, end), shrinking nLocal.
func (f *FAC) RemoveIdRange(start, end int) {
	if start < 0 || end > f.nLocal || start > end {
		panic(fmt.Sprintf("presburger: invalid local range [%d,%d) for %d locals", start, end, f.nLocal))
	}
	if start == end {
		return
	}
	colStart := f.nDim + f.nSym + start
	colEnd := f.nDim + f.nSym + end
	f.eqs.RemoveColumnRange(colStart, colEnd)
	f.ineqs.RemoveColumnRange(colStart, colEnd)
	f.nLocal -= end - start
}

// Clone returns a deep copy of f.
func (f *FAC) Clone() *FAC {
	return &FAC{
		nDim:  f.nDim,
		nSym:  f.nSym,
		nLocal: f.nLocal,
		eqs:   f.eqs.Clone(),
		ineqs: f.ineqs.Clone(),
	}
}

func gcd64(a, b int64) int64 {
	if a < 0 {
		a = -a
	}
	if b < 0 {
		b = -b
	}
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

// IsEmptyByGCDTest is a cheap sufficient (not necessary) emptiness test:
// an FAC is GCD-empty if some equality has a constant term not divisible
// by the GCD of its non-constant coefficients.
func (f *FAC) IsEmptyByGCDTest() bool {
	n := f.nDim + f.nSym + f.nLocal
	for i := 0; i < f.eqs.NumRows(); i++ {
		row := f.eqs.Row(i)
		var g int64
		for k := 0; k < n; k++ {
			g = gcd64(g, row[k])
		}
		c := row[n]
		if g == 0 {
			if c != 0 {
				return true
			}
			continue
		}
		if c%g != 0 {
			return true
		}
	}
	return false
}

// evalRow returns the value of a coefficient row (coefficients times
// assignment, plus the constant term) at the given full assignment of
// length nDim+nSym+nLocal.
func evalRow(row []int64, assignment []int64) int64 {
	var sum int64
	n := len(row) - 1
	for k := 0; k < n; k++ {
		if row[k] == 0 {
			continue
		}
		sum = checkedAdd(sum, checkedMul(row[k], assignment[k]))
	}
	return checkedAdd(sum, row[n])
}

func (f *FAC) satisfiedBy(assignment []int64) bool {
	for i := 0; i < f.eqs.NumRows(); i++ {
		if evalRow(f.eqs.Row(i), assignment) != 0 {
			return false
		}
	}
	for i := 0; i < f.ineqs.NumRows(); i++ {
		if evalRow(f.ineqs.Row(i), assignment) < 0 {
			return false
		}
	}
	return true
}

// projectRow substitutes the ambient (dims+syms) part of a row with point
// and returns the residual row over the remaining (local) columns.
func projectRow(row []int64, point []int64, nAmbient int) []int64 {
	nLocal := len(row) - 1 - nAmbient
	out := make([]int64, nLocal+1)
	c := row[len(row)-1]
	for k := 0; k < nAmbient; k++ {
		if row[k] != 0 {
			c = checkedAdd(c, checkedMul(row[k], point[k]))
		}
	}
	copy(out, row[nAmbient:nAmbient+nLocal])
	out[nLocal] = c
	return out
}

// ContainsPoint reports whether point (length nDim+nSym) is in the set
// described by f, existentially quantifying over f's local variables.
func (f *FAC) ContainsPoint(point []int64) bool {
	nAmbient := f.nDim + f.nSym
	if len(point) != nAmbient {
		panic(fmt.Sprintf("presburger: point has length %d, want %d", len(point), nAmbient))
	}
	if f.nLocal == 0 {
		return f.satisfiedBy(point)
	}
	sub := &FAC{nLocal: f.nLocal, eqs: NewMatrix(f.nLocal + 1), ineqs: NewMatrix(f.nLocal + 1)}
	for i := 0; i < f.eqs.NumRows(); i++ {
		sub.eqs.AppendRow(projectRow(f.eqs.Row(i), point, nAmbient))
	}
	for i := 0; i < f.ineqs.NumRows(); i++ {
		sub.ineqs.AppendRow(projectRow(f.ineqs.Row(i), point, nAmbient))
	}
	_, ok := sub.FindIntegerSample()
	return ok
}

// IsIntegerEmpty reports integer emptiness via the GCD test and then
// FindIntegerSample. It is exact for a polyhedron inside FindIntegerSample's
// search window; an integer point with a coordinate outside that window is
// not found.
func (f *FAC) IsIntegerEmpty() bool {
	if f.IsEmptyByGCDTest() {
		return true
	}
	_, ok := f.FindIntegerSample()
	return !ok
}

// getLocalReprs identifies, for each local variable, the pair of
// inequality indices that bound it as a floor division (lower, upper). A
// nil entry means no representation could be found, which is a precondition
// violation for the subtraction algorithm (spec §3, §4.4 step 2).
func (f *FAC) getLocalReprs() []*[2]int {
	n := f.nDim + f.nSym + f.nLocal
	repr := make([]*[2]int, f.nLocal)
	for li := 0; li < f.nLocal; li++ {
		idx := f.nDim + f.nSym + li
	search:
		for i := 0; i < f.ineqs.NumRows(); i++ {
			ri := f.ineqs.Row(i)
			a := ri[idx]
			if a >= 0 {
				continue
			}
			d := -a
			for j := 0; j < f.ineqs.NumRows(); j++ {
				if j == i {
					continue
				}
				rj := f.ineqs.Row(j)
				if rj[idx] != d {
					continue
				}
				match := true
				for k := 0; k < n; k++ {
					if k == idx {
						continue
					}
					if rj[k] != -ri[k] {
						match = false
						break
					}
				}
				if !match || rj[n] != -ri[n]+(d-1) {
					continue
				}
				repr[li] = &[2]int{i, j}
				break search
			}
		}
	}
	return repr
}
