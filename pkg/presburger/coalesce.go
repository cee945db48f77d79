package presburger

// Coalesce returns a new Set with every disjunct that is rationally
// contained in another live disjunct dropped. This never changes the
// described set (spec §4.6): it is a simplification pass, not a precision
// change, and uses rational containment (IsRationalSubsetOf) rather than
// integer containment because it only needs to be sound, not complete — a
// disjunct that rationally contains another also integer-contains it.
func (s *Set) Coalesce() *Set {
	redundant := make([]bool, len(s.disjuncts))

	for i, fi := range s.disjuncts {
		if redundant[i] {
			continue
		}
		simplex := NewSimplexFromFAC(fi)
		if simplex.IsEmpty() {
			redundant[i] = true
			continue
		}
		for j, fj := range s.disjuncts {
			if j == i || redundant[j] {
				continue
			}
			if simplex.IsRationalSubsetOf(fj) {
				redundant[i] = true
				break
			}
		}
	}

	out := NewEmptySet(s.nDim, s.nSym)
	for i, d := range s.disjuncts {
		if !redundant[i] {
			out.unionFACInPlace(d)
		}
	}
	return out
}
