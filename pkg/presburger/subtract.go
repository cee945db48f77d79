package presburger

// getComplementIneq returns the complement of the inequality row·x >= 0,
// i.e. row·x < 0, encoded as the integer inequality -row·x - 1 >= 0 (valid
// since every variable here ranges over the integers).
func getComplementIneq(row []int64) []int64 {
	out := negatedRow(row)
	out[len(out)-1]--
	return out
}

// subtractRecursively computes b \ (U_{j>=i} s[j]) and accumulates it into
// result. b and simplex are callee-saved: restored to their original state
// before the function returns, regardless of how deep the recursion went.
//
// s[i] = AND_j s[i]_j, a conjunction of inequalities (each equality counted
// as a pair). We partition the complement of s[i] on the first violated
// inequality:
//
//	~s[i] = ~s[i]_1  OR  (s[i]_1 AND ~s[i]_2)  OR  (s[i]_1 AND s[i]_2 AND ~s[i]_3) OR ...
//
// and recurse into U_{j>i} s[j] for each of the resulting parts conjoined
// with b, which is exactly b \ s[i] once unioned together; the outer
// recursion over i then handles subtracting the rest of the disjuncts from
// each of those parts.
func subtractRecursively(b *FAC, simplex *Simplex, s *Set, i int, result *Set, stats *SubtractionStats, depth int) error {
	stats.recordNode(depth)
	if i == s.NumDisjuncts() {
		result.unionFACInPlace(b)
		stats.recordDisjunct()
		return nil
	}

	sI := s.Disjunct(i).Clone()
	bInitNumLocals := b.NumLocals()
	bInitNumIneqs := b.NumInequalities()
	bInitNumEqs := b.NumEqualities()

	repr := sI.getLocalReprs()
	for li, pair := range repr {
		if pair == nil {
			return &SubtractionUnsupportedError{DisjunctIndex: i, LocalIndex: li}
		}
	}

	b.MergeLocalIds(sI)

	isDivIneq := make([]bool, sI.NumInequalities())
	for _, pair := range repr {
		lo, hi := pair[0], pair[1]
		b.AddInequality(sI.Inequality(lo))
		b.AddInequality(sI.Inequality(hi))
		isDivIneq[lo] = true
		isDivIneq[hi] = true
	}

	initialSnapshot := simplex.GetSnapshot()
	offset := simplex.NumConstraints()
	numLocalsAdded := b.NumLocals() - bInitNumLocals
	simplex.AppendVariable(numLocalsAdded)

	snapshotBeforeIntersect := simplex.GetSnapshot()
	simplex.IntersectFAC(sI)

	if simplex.IsEmpty() {
		// b ^ s[i] is empty, so b \ s[i] = b: move directly to i+1.
		stats.recordSimplexCut()
		simplex.Rollback(initialSnapshot)
		b.RemoveInequalityRange(bInitNumIneqs, b.NumInequalities())
		b.RemoveIdRange(bInitNumLocals, b.NumLocals())
		return subtractRecursively(b, simplex, s, i+1, result, stats, depth+1)
	}

	simplex.DetectRedundant()
	totalNew := 2*sI.NumEqualities() + sI.NumInequalities()
	redundant := make([]bool, totalNew)
	for j := 0; j < totalNew; j++ {
		redundant[j] = simplex.IsMarkedRedundant(offset + j)
	}
	simplex.Rollback(snapshotBeforeIntersect)

	recurseWithInequality := func(ineq []int64) error {
		snap := simplex.GetSnapshot()
		b.AddInequality(ineq)
		simplex.AddInequality(ineq)
		err := subtractRecursively(b, simplex, s, i+1, result, stats, depth+1)
		b.RemoveInequality(b.NumInequalities() - 1)
		simplex.Rollback(snap)
		return err
	}

	// processInequality first recurses into the part where ineq is violated,
	// then commits ineq to b/simplex since every later part must satisfy it.
	processInequality := func(ineq []int64) error {
		if err := recurseWithInequality(getComplementIneq(ineq)); err != nil {
			return err
		}
		b.AddInequality(ineq)
		simplex.AddInequality(ineq)
		return nil
	}

	var err error
	for j := 0; j < sI.NumInequalities() && err == nil; j++ {
		if redundant[j] {
			stats.recordGCDCut()
			continue
		}
		if isDivIneq[j] {
			continue
		}
		err = processInequality(sI.Inequality(j))
	}
	if err == nil {
		eqOffset := sI.NumInequalities()
		for j := 0; j < sI.NumEqualities() && err == nil; j++ {
			coeffs := sI.Equality(j)
			if !redundant[eqOffset+2*j] {
				err = processInequality(coeffs)
			}
			if err == nil && !redundant[eqOffset+2*j+1] {
				err = processInequality(negatedRow(coeffs))
			}
		}
	}

	b.RemoveIdRange(bInitNumLocals, b.NumLocals())
	b.RemoveInequalityRange(bInitNumIneqs, b.NumInequalities())
	b.RemoveEqualityRange(bInitNumEqs, b.NumEqualities())
	simplex.Rollback(initialSnapshot)
	return err
}

// GetSetDifference returns fac \ s. stats may be nil; when non-nil it
// accumulates counters across the recursion (safe to share across the
// goroutines a batch subtraction spawns, see batch.go). Returns a
// *SubtractionUnsupportedError if a disjunct of s has a local variable
// with no floor-division representation.
func GetSetDifference(fac *FAC, s *Set, stats *SubtractionStats) (*Set, error) {
	if fac.IsEmptyByGCDTest() {
		return NewEmptySet(fac.nDim, fac.nSym), nil
	}
	b := fac.Clone()
	result := &Set{nDim: fac.nDim, nSym: fac.nSym}
	simplex := NewSimplexFromFAC(b)
	if err := subtractRecursively(b, simplex, s, 0, result, stats, 0); err != nil {
		return nil, err
	}
	return result, nil
}

// Subtract returns s \ other, computed disjunct-by-disjunct:
// (U_i t_i) \ (U_j u_j) = U_i (t_i \ U_j u_j).
func (s *Set) Subtract(other *Set, stats *SubtractionStats) (*Set, error) {
	s.checkCompatible(other)
	result := NewEmptySet(s.nDim, s.nSym)
	for _, d := range s.disjuncts {
		diff, err := GetSetDifference(d, other, stats)
		if err != nil {
			return nil, err
		}
		result.UnionInPlace(diff)
	}
	return result, nil
}

// Complement returns the complement of s within the universe over the same
// dimensions and symbols.
func (s *Set) Complement(stats *SubtractionStats) (*Set, error) {
	return GetSetDifference(GetUniverse(s.nDim, s.nSym), s, stats)
}

// IsEqual reports whether s and other describe the same integer set: S = T
// iff S \ T and T \ S are both integer-empty.
func (s *Set) IsEqual(other *Set) (bool, error) {
	s.checkCompatible(other)
	d1, err := s.Subtract(other, nil)
	if err != nil {
		return false, err
	}
	if !d1.IsIntegerEmpty() {
		return false, nil
	}
	d2, err := other.Subtract(s, nil)
	if err != nil {
		return false, err
	}
	return d2.IsIntegerEmpty(), nil
}

// FindIntegerSample returns one integer point contained in s, existing iff
// some disjunct has one.
func (s *Set) FindIntegerSample() ([]int64, bool) {
	for _, d := range s.disjuncts {
		if sample, ok := d.FindIntegerSample(); ok {
			return sample, true
		}
	}
	return nil, false
}
