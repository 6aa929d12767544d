package simplex

import "fmt"

// pivot exchanges the roles of one entering (non-basic) and one leaving
// (basic) variable, rewriting the whole dictionary in place:
//
//  1. Solve the leaving constraint for the entering variable.
//  2. Substitute the solved expression into every other right-hand side and
//     into the objective, eliminating the entering variable from all of them.
//  3. Rebind the leaving constraint: entering variable on the left, solved
//     expression on the right.
//  4. Swap set membership: entering → basic, departing → non-basic (appended
//     at the end of the non-basic order).
//
// Feasibility of the result is the driver's post-condition to assert, not
// this function's.
//
// Errors: ErrInternal when the entering variable is absent from the leaving
// constraint — the ratio test never selects such a pair, so reaching it means
// a logic bug.
//
// Complexity: O(C·t) substitutions, each exact-rational.
func (d *Dictionary) pivot(entering string, leaving int) error {
	if leaving < 0 || leaving >= len(d.constraints) {
		return fmt.Errorf("%w: leaving constraint index %d out of range", ErrInternal, leaving)
	}
	con := d.constraints[leaving]
	departing := con.Basic()

	solved, err := con.SolveFor(entering)
	if err != nil {
		return fmt.Errorf("%w: solving %q for %q: %v", ErrInternal, departing, entering, err)
	}

	for i, other := range d.constraints {
		if i == leaving {
			continue
		}
		other.RHS().Substitute(entering, solved)
	}
	d.objective.Substitute(entering, solved)
	con.Rebind(entering, solved)

	d.nonBasic.remove(entering)
	d.basic.add(entering)
	d.basic.remove(departing)
	d.nonBasic.add(departing)

	return nil
}
