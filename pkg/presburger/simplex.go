package presburger

import (
	"fmt"
	"math/big"
)

// Simplex is an incremental rational LP used to test emptiness,
// redundancy, and rational containment of a polyhedron described by a
// growing list of inequality constraints (equalities are loaded as pairs
// of opposed inequalities). It is a short-lived companion to one FAC
// during subtraction (spec §4.2, §5): exclusively owned by one recursion
// tree, mutated in place, with snapshot/rollback forming a LIFO stack.
//
// Constraints are only ever appended; rollback always truncates back to a
// previously recorded length. That append-only discipline is itself the
// "journal of inverse operations" spec §9 calls for: the inverse of
// appending n constraints is truncating the last n away.
type Simplex struct {
	nVars     int
	cons      [][]int64 // each row: nVars coefficients + constant, meaning row·x+c >= 0
	redundant []bool
	snapshots []simplexFrame
}

type simplexFrame struct {
	nVars   int
	numCons int
}

// NewSimplexFromFAC constructs a Simplex describing exactly the polyhedron
// of fac: its equalities loaded as pairs of inequalities, plus its
// inequalities.
func NewSimplexFromFAC(fac *FAC) *Simplex {
	s := &Simplex{nVars: fac.nDim + fac.nSym + fac.nLocal}
	s.IntersectFAC(fac)
	return s
}

// NumVars reports the current variable count (dims+syms+locals).
func (s *Simplex) NumVars() int { return s.nVars }

// GetSnapshot records the current (nVars, constraint count) and returns an
// opaque id for Rollback.
func (s *Simplex) GetSnapshot() int {
	s.snapshots = append(s.snapshots, simplexFrame{nVars: s.nVars, numCons: len(s.cons)})
	return len(s.snapshots) - 1
}

// Rollback undoes everything added since the matching GetSnapshot. Must be
// called in LIFO order with respect to other live snapshots.
func (s *Simplex) Rollback(id int) {
	if id < 0 || id >= len(s.snapshots) {
		panic(fmt.Sprintf("presburger: invalid simplex snapshot id %d", id))
	}
	frame := s.snapshots[id]
	s.cons = s.cons[:frame.numCons]
	if drop := s.nVars - frame.nVars; drop > 0 {
		// Remove the columns AppendVariable inserted since the snapshot.
		for i, row := range s.cons {
			nr := make([]int64, len(row)-drop)
			copy(nr, row[:frame.nVars])
			copy(nr[frame.nVars:], row[s.nVars:])
			s.cons[i] = nr
		}
	}
	s.nVars = frame.nVars
	if len(s.redundant) > frame.numCons {
		s.redundant = s.redundant[:frame.numCons]
	}
	s.snapshots = s.snapshots[:id]
}

// AppendVariable widens the tableau with count new unrestricted variables,
// inserted just before the constant column of every existing row.
func (s *Simplex) AppendVariable(count int) {
	if count <= 0 {
		return
	}
	at := s.nVars
	for i, row := range s.cons {
		nr := make([]int64, len(row)+count)
		copy(nr, row[:at])
		copy(nr[at+count:], row[at:])
		s.cons[i] = nr
	}
	s.nVars += count
}

// AddInequality adds one constraint row·x+c >= 0. row must have length
// NumVars()+1.
func (s *Simplex) AddInequality(row []int64) {
	if len(row) != s.nVars+1 {
		panic(fmt.Sprintf("presburger: simplex row width %d, want %d", len(row), s.nVars+1))
	}
	cp := make([]int64, len(row))
	copy(cp, row)
	s.cons = append(s.cons, cp)
	s.redundant = append(s.redundant, false)
}

func negatedRow(row []int64) []int64 {
	out := make([]int64, len(row))
	for i, v := range row {
		out[i] = -v
	}
	return out
}

// IntersectFAC adds every equality (as a pair of opposed inequalities) and
// inequality of fac to the current constraint set.
func (s *Simplex) IntersectFAC(fac *FAC) {
	want := fac.nDim + fac.nSym + fac.nLocal
	if want != s.nVars {
		panic(fmt.Sprintf("presburger: simplex has %d vars, fac has %d", s.nVars, want))
	}
	for i := 0; i < fac.ineqs.NumRows(); i++ {
		s.AddInequality(fac.ineqs.Row(i))
	}
	for i := 0; i < fac.eqs.NumRows(); i++ {
		row := fac.eqs.Row(i)
		s.AddInequality(row)
		s.AddInequality(negatedRow(row))
	}
}

// NumConstraints reports the number of live constraints.
func (s *Simplex) NumConstraints() int { return len(s.cons) }

// IsMarkedRedundant reports the redundancy flag of constraint i, as of the
// last DetectRedundant call.
func (s *Simplex) IsMarkedRedundant(i int) bool {
	if i < 0 || i >= len(s.redundant) {
		return false
	}
	return s.redundant[i]
}

// IsEmpty reports rational infeasibility of the current constraint set.
func (s *Simplex) IsEmpty() bool {
	feasible, _, _ := minimizeOverRows(s.cons, s.nVars, nil, 0)
	return !feasible
}

// DetectRedundant marks every constraint implied by the rest of the
// current set. It does not remove constraints, only sets the flag read by
// IsMarkedRedundant.
func (s *Simplex) DetectRedundant() {
	for i := range s.cons {
		s.redundant[i] = s.isRedundantAt(i)
	}
}

// isRedundantAt reports whether constraint i is implied by every other
// live constraint, i.e. whether min(coeffs_i·x+c_i) over the rest is >= 0.
func (s *Simplex) isRedundantAt(i int) bool {
	obj := s.cons[i]
	others := make([][]int64, 0, len(s.cons)-1)
	for j, row := range s.cons {
		if j != i {
			others = append(others, row)
		}
	}
	feasible, unbounded, val := minimizeOverRows(others, s.nVars, obj[:len(obj)-1], obj[len(obj)-1])
	if !feasible {
		return true // S \ {i} is infeasible: i is implied vacuously.
	}
	if unbounded {
		return false
	}
	return val.Sign() >= 0
}

// impliesNonNegative reports whether row·x+c >= 0 holds at every point of
// the current polyhedron (or the polyhedron is empty, making this vacuous).
func (s *Simplex) impliesNonNegative(row []int64) bool {
	feasible, unbounded, val := minimizeOverRows(s.cons, s.nVars, row[:len(row)-1], row[len(row)-1])
	if !feasible {
		return true
	}
	if unbounded {
		return false
	}
	return val.Sign() >= 0
}

// IsRationalSubsetOf reports whether the current polyhedron is contained
// in fac over the rationals.
func (s *Simplex) IsRationalSubsetOf(fac *FAC) bool {
	if s.IsEmpty() {
		return true
	}
	for i := 0; i < fac.ineqs.NumRows(); i++ {
		if !s.impliesNonNegative(fac.ineqs.Row(i)) {
			return false
		}
	}
	for i := 0; i < fac.eqs.NumRows(); i++ {
		row := fac.eqs.Row(i)
		if !s.impliesNonNegative(row) || !s.impliesNonNegative(negatedRow(row)) {
			return false
		}
	}
	return true
}

// VariableBounds computes integer-rounded bounds [lo, hi] for variable idx
// over the current polyhedron, by minimizing and maximizing it, then clamps
// both to [-window, window] (an unbounded direction becomes the window
// edge), so that callers doing bounded integer search always get a finite
// range; lo > hi is returned when the variable's range lies outside the
// window. ok is false only when the polyhedron is rationally empty.
func (s *Simplex) VariableBounds(idx int, window int64) (lo, hi int64, ok bool) {
	obj := make([]int64, s.nVars)
	obj[idx] = 1
	feasible, unbounded, minVal := minimizeOverRows(s.cons, s.nVars, obj, 0)
	if !feasible {
		return 0, 0, false
	}
	if unbounded {
		lo = -window
	} else {
		lo = ceilRat(minVal)
	}
	negObj := make([]int64, s.nVars)
	negObj[idx] = -1
	_, unboundedMax, maxNeg := minimizeOverRows(s.cons, s.nVars, negObj, 0)
	if unboundedMax {
		hi = window
	} else {
		hi = floorRat(new(big.Rat).Neg(maxNeg))
	}
	if lo < -window {
		lo = -window
	}
	if hi > window {
		hi = window
	}
	return lo, hi, true
}

func ceilRat(r *big.Rat) int64 {
	q := new(big.Int)
	m := new(big.Int)
	q.QuoRem(r.Num(), r.Denom(), m)
	if m.Sign() != 0 && r.Sign() > 0 {
		q.Add(q, big.NewInt(1))
	}
	return q.Int64()
}

func floorRat(r *big.Rat) int64 {
	q := new(big.Int)
	m := new(big.Int)
	q.QuoRem(r.Num(), r.Denom(), m)
	if m.Sign() != 0 && r.Sign() < 0 {
		q.Sub(q, big.NewInt(1))
	}
	return q.Int64()
}
