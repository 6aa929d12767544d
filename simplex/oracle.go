package simplex

// Oracle predicates: pure reads over the current dictionary.
//
// The driver evaluates Unbounded before Feasible, so an unbounded-but-
// currently-infeasible dictionary still reports Unbounded: the objective can
// already be driven to +∞, repairing feasibility first would be wasted work.

// Feasible reports whether every constraint's constant term is non-negative —
// the basic solution (non-basic variables at zero) respects all constraints.
// A right-hand side with no constant term counts as zero, hence feasible.
//
// Complexity: O(C).
func (d *Dictionary) Feasible() bool {
	for _, con := range d.constraints {
		if con.RHS().ConstSign() < 0 {
			return false
		}
	}

	return true
}

// Optimal reports whether every objective coefficient is non-positive, i.e.
// no non-basic variable can improve the objective. Meaningful only on a
// feasible dictionary; the driver establishes that precondition.
//
// Complexity: O(V).
func (d *Dictionary) Optimal() bool {
	for _, name := range d.objective.Vars() {
		if d.objective.CoeffSign(name) > 0 {
			return false
		}
	}

	return true
}

// Unbounded reports whether some profitable non-basic variable (strictly
// positive objective coefficient) has a non-negative coefficient in every
// right-hand side: it can then grow forever, improving the objective without
// ever violating a constraint.
//
// Complexity: O(V·C).
func (d *Dictionary) Unbounded() bool {
	for _, name := range d.objective.Vars() {
		if d.objective.CoeffSign(name) <= 0 {
			continue
		}
		blocked := false
		for _, con := range d.constraints {
			if con.RHS().CoeffSign(name) < 0 {
				blocked = true

				break
			}
		}
		if !blocked {
			return true
		}
	}

	return false
}
