// Package presburger implements integer Presburger sets: finite unions of
// integer polyhedra (flat affine constraint systems, "FACs") over a shared
// space of dimension and symbol identifiers, together with the boolean
// algebra over them (union, intersection, complement, set difference) and
// a coalescing pass that drops redundant disjuncts.
package presburger

import (
	"fmt"
	"math/bits"
)

// Matrix is a row-major store of integer coefficient rows. Each row encodes
// one affine constraint: the first nDim+nSym+nLocal entries are coefficients
// and the last entry is the constant term.
type Matrix struct {
	cols int
	rows [][]int64
}

// NewMatrix returns an empty matrix with the given row width.
func NewMatrix(cols int) *Matrix {
	if cols < 1 {
		panic("presburger: matrix must have at least a constant column")
	}
	return &Matrix{cols: cols}
}

// NumRows reports the number of rows currently stored.
func (m *Matrix) NumRows() int { return len(m.rows) }

// NumCols reports the row width.
func (m *Matrix) NumCols() int { return m.cols }

// Row returns the row at index i. The returned slice aliases internal
// storage; callers that intend to keep it across mutations should copy.
func (m *Matrix) Row(i int) []int64 {
	m.checkRow(i)
	return m.rows[i]
}

func (m *Matrix) checkRow(i int) {
	if i < 0 || i >= len(m.rows) {
		panic(fmt.Sprintf("presburger: row index %d out of range [0,%d)", i, len(m.rows)))
	}
}

// AppendRow appends a copy of row to the matrix. row must have length equal
// to NumCols().
func (m *Matrix) AppendRow(row []int64) int {
	if len(row) != m.cols {
		panic(fmt.Sprintf("presburger: row width %d does not match matrix width %d", len(row), m.cols))
	}
	cp := make([]int64, m.cols)
	copy(cp, row)
	m.rows = append(m.rows, cp)
	return len(m.rows) - 1
}

// RemoveRow deletes the row at index i, shifting later rows down by one.
func (m *Matrix) RemoveRow(i int) {
	m.checkRow(i)
	m.rows = append(m.rows[:i], m.rows[i+1:]...)
}

// RemoveRowRange deletes rows in [start, end).
func (m *Matrix) RemoveRowRange(start, end int) {
	if start < 0 || end > len(m.rows) || start > end {
		panic(fmt.Sprintf("presburger: invalid row range [%d,%d) for %d rows", start, end, len(m.rows)))
	}
	m.rows = append(m.rows[:start], m.rows[end:]...)
}

// SwapRows exchanges rows i and j.
func (m *Matrix) SwapRows(i, j int) {
	m.checkRow(i)
	m.checkRow(j)
	m.rows[i], m.rows[j] = m.rows[j], m.rows[i]
}

// NegateRow negates every coefficient (including the constant) in row i.
func (m *Matrix) NegateRow(i int) {
	m.checkRow(i)
	row := m.rows[i]
	for k := range row {
		row[k] = -row[k]
	}
}

// InsertColumn widens every row by one zero column inserted at position at.
// Used by mergeLocalIds to re-home local variables into a shared layout
// without perturbing the semantics of existing rows.
func (m *Matrix) InsertColumn(at int) {
	if at < 0 || at > m.cols {
		panic(fmt.Sprintf("presburger: column index %d out of range [0,%d]", at, m.cols))
	}
	for i, row := range m.rows {
		nr := make([]int64, m.cols+1)
		copy(nr, row[:at])
		copy(nr[at+1:], row[at:])
		m.rows[i] = nr
	}
	m.cols++
}

// RemoveColumnRange deletes columns [start, end) from every row.
func (m *Matrix) RemoveColumnRange(start, end int) {
	if start < 0 || end > m.cols || start > end {
		panic(fmt.Sprintf("presburger: invalid column range [%d,%d) for width %d", start, end, m.cols))
	}
	if start == end {
		return
	}
	for i, row := range m.rows {
		nr := make([]int64, m.cols-(end-start))
		copy(nr, row[:start])
		copy(nr[start:], row[end:])
		m.rows[i] = nr
	}
	m.cols -= end - start
}

// Clone returns a deep copy of the matrix.
func (m *Matrix) Clone() *Matrix {
	out := &Matrix{cols: m.cols, rows: make([][]int64, len(m.rows))}
	for i, row := range m.rows {
		cp := make([]int64, len(row))
		copy(cp, row)
		out.rows[i] = cp
	}
	return out
}

// addOverflows reports whether a+b overflows int64.
func addOverflows(a, b int64) bool {
	sum := a + b
	return ((a ^ sum) & (b ^ sum)) < 0
}

// mulOverflows reports whether a*b overflows int64, using bits.Mul64 on the
// absolute values to get an exact 128-bit product check.
func mulOverflows(a, b int64) bool {
	if a == 0 || b == 0 {
		return false
	}
	absA, absB := a, b
	if absA < 0 {
		absA = -absA
	}
	if absB < 0 {
		absB = -absB
	}
	hi, lo := bits.Mul64(uint64(absA), uint64(absB))
	if hi != 0 {
		return true
	}
	// lo holds |a*b|; a negative product may reach -2^63, a positive one
	// only 2^63-1.
	if (a < 0) != (b < 0) {
		return lo > 1<<63
	}
	return lo > 1<<63-1
}

// checkedAdd adds a and b, panicking with a precondition violation if the
// 64-bit coefficient limit (spec §9) is exceeded.
func checkedAdd(a, b int64) int64 {
	if addOverflows(a, b) {
		panic("presburger: coefficient addition overflows int64")
	}
	return a + b
}

// checkedMul multiplies a and b under the same overflow discipline.
func checkedMul(a, b int64) int64 {
	if mulOverflows(a, b) {
		panic("presburger: coefficient multiplication overflows int64")
	}
	return a * b
}
