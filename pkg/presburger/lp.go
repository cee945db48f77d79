package presburger

import "math/big"

// tableau is a standard-form simplex tableau: m constraint rows plus one
// objective (reduced-cost) row, all over the same totalCols+1 columns
// (last column is the right-hand side). The objective row's RHS entry
// always equals the negative of the current objective value, the usual
// tableau-simplex invariant, maintained by pivot.
type tableau struct {
	rows      [][]*big.Rat
	obj       []*big.Rat
	basis     []int
	totalCols int
}

func ratZero() *big.Rat { return new(big.Rat) }

func pivot(t *tableau, row, col int) {
	piv := t.rows[row][col]
	nr := make([]*big.Rat, len(t.rows[row]))
	for k, v := range t.rows[row] {
		nr[k] = new(big.Rat).Quo(v, piv)
	}
	t.rows[row] = nr

	for r := range t.rows {
		if r == row {
			continue
		}
		factor := t.rows[r][col]
		if factor.Sign() == 0 {
			continue
		}
		row2 := make([]*big.Rat, len(t.rows[r]))
		for k, v := range t.rows[r] {
			row2[k] = new(big.Rat).Sub(v, new(big.Rat).Mul(factor, nr[k]))
		}
		t.rows[r] = row2
	}

	factor := t.obj[col]
	if factor.Sign() != 0 {
		objRow := make([]*big.Rat, len(t.obj))
		for k, v := range t.obj {
			objRow[k] = new(big.Rat).Sub(v, new(big.Rat).Mul(factor, nr[k]))
		}
		t.obj = objRow
	}
	t.basis[row] = col
}

// runSimplex pivots t to optimality under Bland's rule (smallest-index
// entering column, smallest-index-basis tie-break on the leaving row),
// which guarantees termination without cycling. Columns with
// forbidden[col] set are never chosen as entering. Returns true if the
// objective is unbounded below.
func runSimplex(t *tableau, forbidden []bool) bool {
	for {
		enter := -1
		for col := 0; col < t.totalCols; col++ {
			if forbidden != nil && forbidden[col] {
				continue
			}
			if t.obj[col].Sign() < 0 {
				enter = col
				break
			}
		}
		if enter == -1 {
			return false
		}
		leave := -1
		var best *big.Rat
		for r := range t.rows {
			a := t.rows[r][enter]
			if a.Sign() <= 0 {
				continue
			}
			ratio := new(big.Rat).Quo(t.rows[r][t.totalCols], a)
			if leave == -1 || ratio.Cmp(best) < 0 || (ratio.Cmp(best) == 0 && t.basis[r] < t.basis[leave]) {
				leave = r
				best = ratio
			}
		}
		if leave == -1 {
			return true
		}
		pivot(t, leave, enter)
	}
}

// minimizeOverRows minimizes obj·x + objConst subject to cons (each row is
// coeffs(nVars)+const meaning coeffs·x+const >= 0), treating x as
// unrestricted in sign (Presburger coordinates range over all of Z). obj
// may be nil, meaning "just test feasibility" (the returned value is then
// meaningless). Uses a two-phase simplex with variable splitting
// (x_k = u_k - v_k) over exact rationals.
func minimizeOverRows(cons [][]int64, nVars int, obj []int64, objConst int64) (feasible, unbounded bool, value *big.Rat) {
	m := len(cons)
	if m == 0 {
		for _, c := range obj {
			if c != 0 {
				return true, true, nil
			}
		}
		return true, false, big.NewRat(objConst, 1)
	}

	totalCols := 2*nVars + 2*m
	rhs := totalCols
	rows := make([][]*big.Rat, m)
	basis := make([]int, m)
	cost1 := make([]*big.Rat, totalCols+1)
	for k := range cost1 {
		cost1[k] = ratZero()
	}

	for i, c := range cons {
		coeffs := c[:nVars]
		constTerm := c[nVars]
		b := -constTerm
		sigma := int64(1)
		if b < 0 {
			sigma = -1
		}
		row := make([]*big.Rat, totalCols+1)
		for k := range row {
			row[k] = ratZero()
		}
		for k := 0; k < nVars; k++ {
			if coeffs[k] != 0 {
				v := big.NewRat(sigma*coeffs[k], 1)
				row[k] = v
				row[nVars+k] = new(big.Rat).Neg(v)
			}
		}
		sCol := 2*nVars + i
		aCol := 2*nVars + m + i
		row[sCol] = big.NewRat(-sigma, 1)
		row[aCol] = big.NewRat(1, 1)
		row[rhs] = big.NewRat(sigma*b, 1)
		rows[i] = row
		basis[i] = aCol
		cost1[aCol] = big.NewRat(1, 1)
	}

	objRow := make([]*big.Rat, totalCols+1)
	for k := range objRow {
		objRow[k] = new(big.Rat).Set(cost1[k])
	}
	for i := 0; i < m; i++ {
		factor := cost1[basis[i]]
		if factor.Sign() != 0 {
			for k := range objRow {
				objRow[k] = new(big.Rat).Sub(objRow[k], new(big.Rat).Mul(factor, rows[i][k]))
			}
		}
	}

	t := &tableau{rows: rows, obj: objRow, basis: basis, totalCols: totalCols}
	runSimplex(t, nil)

	phase1Obj := new(big.Rat).Neg(t.obj[rhs])
	if phase1Obj.Sign() > 0 {
		return false, false, nil
	}

	cost2 := make([]*big.Rat, totalCols+1)
	for k := range cost2 {
		cost2[k] = ratZero()
	}
	for k := 0; k < nVars; k++ {
		if obj != nil && obj[k] != 0 {
			cost2[k] = big.NewRat(obj[k], 1)
			cost2[nVars+k] = big.NewRat(-obj[k], 1)
		}
	}
	objRow2 := make([]*big.Rat, totalCols+1)
	for k := range objRow2 {
		objRow2[k] = new(big.Rat).Set(cost2[k])
	}
	for i := 0; i < m; i++ {
		factor := cost2[t.basis[i]]
		if factor.Sign() != 0 {
			for k := range objRow2 {
				objRow2[k] = new(big.Rat).Sub(objRow2[k], new(big.Rat).Mul(factor, t.rows[i][k]))
			}
		}
	}
	t.obj = objRow2

	forbidden := make([]bool, totalCols)
	for i := 2*nVars + m; i < totalCols; i++ {
		forbidden[i] = true
	}
	if runSimplex(t, forbidden) {
		return true, true, nil
	}

	val := new(big.Rat).Neg(t.obj[rhs])
	val.Add(val, big.NewRat(objConst, 1))
	return true, false, val
}
