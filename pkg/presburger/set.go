package presburger

import "fmt"

// Set is a Presburger set: a finite union of FAC disjuncts sharing the
// same ambient dimension and symbol count. The empty union (no disjuncts)
// is the empty set; a single-disjunct union with no constraints is the
// universe.
type Set struct {
	nDim, nSym int
	disjuncts  []*FAC
}

// NewEmptySet returns a Set with zero disjuncts over nDim dims and nSym
// symbols.
func NewEmptySet(nDim, nSym int) *Set {
	return &Set{nDim: nDim, nSym: nSym}
}

// NewUniverseSet returns a Set containing exactly the unconstrained FAC.
func NewUniverseSet(nDim, nSym int) *Set {
	return &Set{nDim: nDim, nSym: nSym, disjuncts: []*FAC{GetUniverse(nDim, nSym)}}
}

// NewSetFromFAC wraps a single FAC as a one-disjunct Set.
func NewSetFromFAC(fac *FAC) *Set {
	return &Set{nDim: fac.nDim, nSym: fac.nSym, disjuncts: []*FAC{fac.Clone()}}
}

func (s *Set) NumDims() int      { return s.nDim }
func (s *Set) NumSyms() int      { return s.nSym }
func (s *Set) NumDisjuncts() int { return len(s.disjuncts) }

// Disjunct returns disjunct i. The returned FAC aliases internal storage.
func (s *Set) Disjunct(i int) *FAC {
	if i < 0 || i >= len(s.disjuncts) {
		panic(fmt.Sprintf("presburger: disjunct index %d out of range [0,%d)", i, len(s.disjuncts)))
	}
	return s.disjuncts[i]
}

// Disjuncts returns the live disjunct slice. Callers must not retain it
// across a mutating call.
func (s *Set) Disjuncts() []*FAC { return s.disjuncts }

func (s *Set) checkCompatible(other *Set) {
	if s.nDim != other.nDim || s.nSym != other.nSym {
		panic(fmt.Sprintf("presburger: set layout mismatch (%d,%d) vs (%d,%d)", s.nDim, s.nSym, other.nDim, other.nSym))
	}
}

// Clone returns a deep copy of s.
func (s *Set) Clone() *Set {
	out := &Set{nDim: s.nDim, nSym: s.nSym, disjuncts: make([]*FAC, len(s.disjuncts))}
	for i, d := range s.disjuncts {
		out.disjuncts[i] = d.Clone()
	}
	return out
}

// unionFACInPlace appends fac as one more disjunct, without any
// simplification (spec §4.1: union never loses precision, so the naive
// union is always correct; Coalesce is the separate opt-in simplification
// pass).
func (s *Set) unionFACInPlace(fac *FAC) {
	s.disjuncts = append(s.disjuncts, fac.Clone())
}

// UnionInPlace mutates s to be the union of s and other.
func (s *Set) UnionInPlace(other *Set) {
	s.checkCompatible(other)
	for _, d := range other.disjuncts {
		s.unionFACInPlace(d)
	}
}

// Union returns a new Set equal to the union of s and other.
func Union(s, other *Set) *Set {
	out := s.Clone()
	out.UnionInPlace(other)
	return out
}

// intersectFAC returns the FAC obtained by conjoining a and b's
// constraints, merging their local variable spaces first.
func intersectFAC(a, b *FAC) *FAC {
	ac := a.Clone()
	bc := b.Clone()
	ac.MergeLocalIds(bc)
	ac.Append(bc)
	return ac
}

// Intersect returns the pairwise intersection of every disjunct of s with
// every disjunct of other: a standard distributive-law construction
// (spec §4.1) that can multiply disjunct counts, left for Coalesce to
// clean up.
func Intersect(s, other *Set) *Set {
	s.checkCompatible(other)
	out := &Set{nDim: s.nDim, nSym: s.nSym}
	for _, a := range s.disjuncts {
		for _, b := range other.disjuncts {
			fac := intersectFAC(a, b)
			if !fac.IsEmptyByGCDTest() {
				out.disjuncts = append(out.disjuncts, fac)
			}
		}
	}
	return out
}

// ContainsPoint reports whether point is in any disjunct of s.
func (s *Set) ContainsPoint(point []int64) bool {
	for _, d := range s.disjuncts {
		if d.ContainsPoint(point) {
			return true
		}
	}
	return false
}

// IsIntegerEmpty reports whether every disjunct is integer-empty.
func (s *Set) IsIntegerEmpty() bool {
	for _, d := range s.disjuncts {
		if !d.IsIntegerEmpty() {
			return false
		}
	}
	return true
}
