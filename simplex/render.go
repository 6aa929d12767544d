package simplex

import "strings"

// String renders the dictionary in its canonical human-readable shape:
//
//	Objective: 2x1 + 3x2
//	w1 = 6 - x1 - x2
//	w2 = 10 - 2x1 - x2
//
// one line per constraint in list order, no trailing newline. The expression
// fragments follow expr rendering, so the output parses back via
// expr.ParseConstraint.
func (d *Dictionary) String() string {
	var b strings.Builder
	b.WriteString("Objective: ")
	b.WriteString(d.objective.String())
	for _, con := range d.constraints {
		b.WriteString("\n")
		b.WriteString(con.String())
	}

	return b.String()
}
