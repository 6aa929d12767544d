package simplex

import (
	"fmt"
	"math/big"

	"github.com/katalvlaran/lpdict/expr"
)

// Two-phase machinery: when the starting dictionary is infeasible, an
// auxiliary dictionary with one helper variable manufactures a feasible one
// (or proves none exists). The step driver owns the sequencing; this file
// owns construction and reconciliation.

// helperBaseName is the conventional name for the phase-one helper variable.
// Primes are appended until the name is free of collisions.
const helperBaseName = "x0"

// newAuxiliary builds the phase-one dictionary: a deep copy of d with one
// extra non-basic helper variable, objective "maximize −helper", and the
// helper added (coefficient +1) to every right-hand side so that a large
// enough helper value relaxes every violated constraint.
//
// It also selects the first pivot row: the constraint with the smallest
// right-hand-side constant (the most violated one; first wins ties). Pivoting
// the helper in against that row is guaranteed to produce a feasible
// dictionary.
//
// Complexity: O(C·t) for the copy plus O(C) for row selection.
func (d *Dictionary) newAuxiliary() (aux *Dictionary, firstPivot int) {
	helper := helperBaseName
	for d.basic.has(helper) || d.nonBasic.has(helper) {
		helper += "'"
	}

	aux = d.Clone()
	aux.varCount = d.varCount + 1
	aux.helper = helper
	aux.objective = expr.NewLinear().AddTerm(helper, big.NewRat(-1, 1))
	aux.nonBasic.add(helper)

	one := big.NewRat(1, 1)
	worst := new(big.Rat)
	firstPivot = 0
	for i, con := range aux.constraints {
		con.RHS().AddTerm(helper, one)
		c := con.RHS().Const()
		if i == 0 || c.Cmp(worst) < 0 {
			worst.Set(c)
			firstPivot = i
		}
	}

	return aux, firstPivot
}

// adoptAuxiliary folds a successfully optimized auxiliary dictionary (optimal
// value zero) back into d:
//
//  1. If the helper ended basic — possible in degenerate optima, always at
//     value zero — pivot it out against any other variable in its row first.
//  2. Zero the helper throughout the remaining right-hand sides.
//  3. Rebuild the original objective by substituting every now-basic
//     variable's final expression into it.
//  4. Adopt the auxiliary constraints and recompute both variable sets,
//     preserving the auxiliary non-basic order minus the helper.
//
// On return d is feasible and the outer solve can resume on it.
func (d *Dictionary) adoptAuxiliary(aux *Dictionary) error {
	helper := aux.helper
	if aux.basic.has(helper) {
		if err := aux.evictBasicHelper(); err != nil {
			return err
		}
	}

	zero := expr.NewLinear()
	for _, con := range aux.constraints {
		con.RHS().Substitute(helper, zero)
	}

	rebuilt := d.objective.Clone()
	for _, con := range aux.constraints {
		if rebuilt.Has(con.Basic()) {
			rebuilt.Substitute(con.Basic(), con.RHS())
		}
	}

	d.objective = rebuilt
	d.constraints = aux.constraints
	d.basic = newOrderedSet(len(aux.constraints))
	for _, con := range aux.constraints {
		d.basic.add(con.Basic())
	}
	d.nonBasic = aux.nonBasic.clone()
	d.nonBasic.remove(helper)
	d.helper = ""

	if d.basic.len()+d.nonBasic.len() != d.varCount+len(d.constraints) {
		return fmt.Errorf("%w: variable accounting broken after two-phase reconciliation", ErrInternal)
	}

	return nil
}

// evictBasicHelper removes the helper variable from the auxiliary basic set
// by pivoting it out against any variable still present in its row.
func (aux *Dictionary) evictBasicHelper() error {
	helper := aux.helper
	row := -1
	for i, con := range aux.constraints {
		if con.Basic() == helper {
			row = i

			break
		}
	}
	if row < 0 {
		return fmt.Errorf("%w: helper %q basic but owns no constraint", ErrInternal, helper)
	}
	rhs := aux.constraints[row].RHS()
	if rhs.ConstSign() != 0 {
		return fmt.Errorf("%w: basic helper %q at non-zero value after optimal phase one", ErrInternal, helper)
	}
	if rhs.Len() == 0 {
		// "helper = 0" with an empty right-hand side requires a redundant
		// original constraint; the construction rules out reaching it.
		return fmt.Errorf("%w: basic helper %q owns an empty row", ErrInternal, helper)
	}

	return aux.pivot(rhs.Vars()[0], row)
}
