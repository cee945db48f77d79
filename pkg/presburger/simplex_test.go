package presburger

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSimplexIsEmpty(t *testing.T) {
	f := boundedRange(3, 5)
	s := NewSimplexFromFAC(f)
	require.False(t, s.IsEmpty())

	empty := boundedRange(5, 3)
	s2 := NewSimplexFromFAC(empty)
	require.True(t, s2.IsEmpty())
}

func TestSimplexSnapshotRollback(t *testing.T) {
	f := boundedRange(0, 10)
	s := NewSimplexFromFAC(f)
	require.False(t, s.IsEmpty())

	snap := s.GetSnapshot()
	s.AddInequality([]int64{1, -20}) // x >= 20, contradicts x <= 10
	require.True(t, s.IsEmpty())

	s.Rollback(snap)
	require.False(t, s.IsEmpty())
	require.Equal(t, 2, s.NumConstraints())
}

func TestSimplexRollbackIsLIFO(t *testing.T) {
	f := boundedRange(0, 10)
	s := NewSimplexFromFAC(f)

	snap1 := s.GetSnapshot()
	s.AddInequality([]int64{1, 0}) // x >= 0 (redundant, harmless)
	snap2 := s.GetSnapshot()
	s.AddInequality([]int64{1, -1}) // x >= 1

	s.Rollback(snap2)
	require.Equal(t, 3, s.NumConstraints())
	s.Rollback(snap1)
	require.Equal(t, 2, s.NumConstraints())
}

func TestSimplexAppendVariable(t *testing.T) {
	f := boundedRange(0, 10)
	s := NewSimplexFromFAC(f)
	require.Equal(t, 1, s.NumVars())

	s.AppendVariable(1)
	require.Equal(t, 2, s.NumVars())
	// The widened row's new column defaults to zero, so feasibility is
	// unaffected; y is unconstrained.
	require.False(t, s.IsEmpty())
}

func TestSimplexDetectRedundant(t *testing.T) {
	f := boundedRange(0, 10)
	s := NewSimplexFromFAC(f)
	// x <= 20 is implied by x <= 10.
	s.AddInequality([]int64{-1, 20})
	s.DetectRedundant()
	require.True(t, s.IsMarkedRedundant(2))
	require.False(t, s.IsMarkedRedundant(0))
}

func TestSimplexIsRationalSubsetOf(t *testing.T) {
	inner := boundedRange(3, 5)
	outer := boundedRange(0, 10)
	s := NewSimplexFromFAC(inner)
	require.True(t, s.IsRationalSubsetOf(outer))

	sOuter := NewSimplexFromFAC(outer)
	require.False(t, sOuter.IsRationalSubsetOf(inner))
}

func TestSimplexVariableBounds(t *testing.T) {
	f := boundedRange(2, 7)
	s := NewSimplexFromFAC(f)
	lo, hi, ok := s.VariableBounds(0, 1000)
	require.True(t, ok)
	require.Equal(t, int64(2), lo)
	require.Equal(t, int64(7), hi)
}

func TestSimplexVariableBoundsOnEmptyIsNotOK(t *testing.T) {
	f := boundedRange(5, 3)
	s := NewSimplexFromFAC(f)
	_, _, ok := s.VariableBounds(0, 1000)
	require.False(t, ok)
}
