package presburger

import (
	"fmt"
	"io"
	"strings"
)

// rowString renders a row as "a0*x0 + a1*x1 + ... + c >= 0" (or "= 0" for an
// equality), skipping zero coefficients. Variables are named d0..,s0..,l0..
// for dims, symbols and locals respectively.
func (f *FAC) rowString(row []int64, relation string) string {
	var b strings.Builder
	wrote := false
	names := f.varNames()
	for k, v := range row[:len(row)-1] {
		if v == 0 {
			continue
		}
		if wrote {
			if v > 0 {
				b.WriteString(" + ")
			} else {
				b.WriteString(" - ")
			}
		} else if v < 0 {
			b.WriteString("-")
		}
		abs := v
		if abs < 0 {
			abs = -abs
		}
		fmt.Fprintf(&b, "%d*%s", abs, names[k])
		wrote = true
	}
	c := row[len(row)-1]
	if c != 0 || !wrote {
		if wrote {
			if c > 0 {
				fmt.Fprintf(&b, " + %d", c)
			} else {
				fmt.Fprintf(&b, " - %d", -c)
			}
		} else {
			fmt.Fprintf(&b, "%d", c)
		}
	}
	fmt.Fprintf(&b, " %s 0", relation)
	return b.String()
}

func (f *FAC) varNames() []string {
	names := make([]string, f.nDim+f.nSym+f.nLocal)
	for i := 0; i < f.nDim; i++ {
		names[i] = fmt.Sprintf("d%d", i)
	}
	for i := 0; i < f.nSym; i++ {
		names[f.nDim+i] = fmt.Sprintf("s%d", i)
	}
	for i := 0; i < f.nLocal; i++ {
		names[f.nDim+f.nSym+i] = fmt.Sprintf("l%d", i)
	}
	return names
}

// String renders every equality and inequality of f, one per line.
func (f *FAC) String() string {
	var b strings.Builder
	for i := 0; i < f.eqs.NumRows(); i++ {
		b.WriteString(f.rowString(f.eqs.Row(i), "="))
		b.WriteString("\n")
	}
	for i := 0; i < f.ineqs.NumRows(); i++ {
		b.WriteString(f.rowString(f.ineqs.Row(i), ">="))
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

// String renders s in the "<N> FlatAffineConstraints:\n<fac0>\n\n<fac1>..."
// format of the original solver's textual dump.
func (s *Set) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%d FlatAffineConstraints:\n", len(s.disjuncts))
	for i, d := range s.disjuncts {
		if i > 0 {
			b.WriteString("\n\n")
		}
		b.WriteString(d.String())
	}
	return b.String()
}

// Dump writes String() to w, ignoring write errors, matching the original
// solver's fire-and-forget dump() convention.
func (s *Set) Dump(w io.Writer) {
	fmt.Fprintln(w, s.String())
}
