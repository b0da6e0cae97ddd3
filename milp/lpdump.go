package milp

import (
	"fmt"
	"os"
	"sort"
	"strings"
)

// WriteLP serialises the problem to a simple, human-readable LP-format
// file at path: the whole objective on one line, then one line per
// constraint.
// It is an opt-in diagnostic, not written automatically — callers
// invoke it themselves on SolverInfeasible, mirroring the optional
// IIS/LP dump spec.md §6 allows.
func (p *Problem) WriteLP(path string) error {
	var b strings.Builder

	b.WriteString("Minimize\n obj: ")
	writeLinearExpr(&b, p.Objective)
	b.WriteString("\n")

	b.WriteString("Subject To\n")
	for i, c := range p.Constraints {
		fmt.Fprintf(&b, " c%d_%s: ", i, c.Label)
		writeSparseExpr(&b, c.Coeffs)
		switch c.Relation {
		case LE:
			fmt.Fprintf(&b, " <= %v\n", c.RHS)
		case EQ:
			fmt.Fprintf(&b, " = %v\n", c.RHS)
		}
	}

	b.WriteString("End\n")

	return os.WriteFile(path, []byte(b.String()), 0o600)
}

func writeLinearExpr(b *strings.Builder, coeffs []float64) {
	first := true
	for idx, c := range coeffs {
		if c == 0 {
			continue
		}
		if !first {
			b.WriteString(" + ")
		}
		fmt.Fprintf(b, "%v x%d", c, idx)
		first = false
	}
}

func writeSparseExpr(b *strings.Builder, coeffs map[int]float64) {
	indices := make([]int, 0, len(coeffs))
	for idx := range coeffs {
		indices = append(indices, idx)
	}
	sort.Ints(indices)

	first := true
	for _, idx := range indices {
		c := coeffs[idx]
		if c == 0 {
			continue
		}
		if !first {
			b.WriteString(" + ")
		}
		fmt.Fprintf(b, "%v x%d", c, idx)
		first = false
	}
}
