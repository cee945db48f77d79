package presburger

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMatrixAppendAndRemoveRow(t *testing.T) {
	m := NewMatrix(3)
	m.AppendRow([]int64{1, 2, 3})
	m.AppendRow([]int64{4, 5, 6})
	require.Equal(t, 2, m.NumRows())
	require.Equal(t, []int64{1, 2, 3}, m.Row(0))

	m.RemoveRow(0)
	require.Equal(t, 1, m.NumRows())
	require.Equal(t, []int64{4, 5, 6}, m.Row(0))
}

func TestMatrixAppendRowCopies(t *testing.T) {
	m := NewMatrix(2)
	row := []int64{1, 2}
	m.AppendRow(row)
	row[0] = 99
	require.Equal(t, int64(1), m.Row(0)[0], "AppendRow must copy, not alias, the input slice")
}

func TestMatrixInsertColumn(t *testing.T) {
	m := NewMatrix(2)
	m.AppendRow([]int64{5, 7})
	m.InsertColumn(1)
	require.Equal(t, 3, m.NumCols())
	require.Equal(t, []int64{5, 0, 7}, m.Row(0))
}

func TestMatrixRemoveColumnRange(t *testing.T) {
	m := NewMatrix(4)
	m.AppendRow([]int64{1, 2, 3, 4})
	m.RemoveColumnRange(1, 3)
	require.Equal(t, 2, m.NumCols())
	require.Equal(t, []int64{1, 4}, m.Row(0))
}

func TestMatrixRemoveRowRange(t *testing.T) {
	m := NewMatrix(1)
	for i := int64(0); i < 5; i++ {
		m.AppendRow([]int64{i})
	}
	m.RemoveRowRange(1, 3)
	require.Equal(t, 3, m.NumRows())
	require.Equal(t, []int64{0}, m.Row(0))
	require.Equal(t, []int64{3}, m.Row(1))
	require.Equal(t, []int64{4}, m.Row(2))
}

func TestMatrixClone(t *testing.T) {
	m := NewMatrix(2)
	m.AppendRow([]int64{1, 2})
	clone := m.Clone()
	clone.Row(0)[0] = 42
	require.Equal(t, int64(1), m.Row(0)[0], "Clone must be a deep copy")
}

func TestMatrixSwapAndNegateRow(t *testing.T) {
	m := NewMatrix(1)
	m.AppendRow([]int64{1})
	m.AppendRow([]int64{2})
	m.SwapRows(0, 1)
	require.Equal(t, []int64{2}, m.Row(0))
	m.NegateRow(0)
	require.Equal(t, []int64{-2}, m.Row(0))
}

func TestCheckedArithmeticOverflowPanics(t *testing.T) {
	require.Panics(t, func() { checkedAdd(1<<62, 1<<62) })
	require.Panics(t, func() { checkedMul(1<<40, 1<<40) })
	require.NotPanics(t, func() { checkedAdd(1, 2) })
	require.NotPanics(t, func() { checkedMul(3, 4) })
}
