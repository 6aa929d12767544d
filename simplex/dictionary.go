package simplex

import (
	"math/big"

	"github.com/katalvlaran/lpdict/expr"
)

// Dictionary is the simplex tableau in equation form: an objective over
// non-basic variables plus one constraint per basic variable. Variable roles
// (basic vs non-basic) are a property of the dictionary, not of the names —
// pivoting swaps them.
//
// Invariants, re-established after every pivot:
//   - basic and non-basic sets are disjoint and together cover every variable;
//     |basic| + |non-basic| = variable count + constraint count.
//   - each constraint binds a distinct basic variable.
//   - the objective and every right-hand side mention non-basic variables only.
//
// A Dictionary is mutated in place by the step driver; use Clone (or the deep
// snapshots yielded by the driver) for stable views.
type Dictionary struct {
	varCount    int
	objective   *expr.Linear
	constraints []*expr.Constraint
	basic       *orderedSet
	nonBasic    *orderedSet
	helper      string
	policy      Policy
}

// NewDictionary validates and assembles a dictionary from a declared variable
// count, an objective and a constraint list.
//
// The basic set becomes exactly the constraints' left-hand variables; the
// non-basic set is discovered by walking the objective and then each
// right-hand side in order, which also fixes the tie-breaking iteration order.
//
// Errors (construction, fatal):
//   - ErrBadVarCount      – varCount ≤ 0.
//   - ErrNilObjective     – nil objective.
//   - ErrNilConstraint    – nil entry in constraints.
//   - ErrDuplicateBasic   – two constraints bind the same variable.
//   - ErrBasicOnRight     – a basic variable shows up in the objective or a
//     right-hand side.
//   - ErrVarCountMismatch – discovered non-basic variables ≠ varCount.
//
// Complexity: O(C·t) over constraints and their terms.
func NewDictionary(varCount int, objective *expr.Linear, constraints []*expr.Constraint, opts Options) (*Dictionary, error) {
	if varCount <= 0 {
		return nil, ErrBadVarCount
	}
	if objective == nil {
		return nil, ErrNilObjective
	}
	for _, con := range constraints {
		if con == nil {
			return nil, ErrNilConstraint
		}
	}

	d := &Dictionary{
		varCount:    varCount,
		objective:   objective,
		constraints: constraints,
		basic:       newOrderedSet(len(constraints)),
		nonBasic:    newOrderedSet(varCount),
		policy:      opts.Policy,
	}
	if d.policy == nil {
		d.policy = NewAntiCyclePolicy()
	}
	if opts.CopyExpressions {
		d.objective = objective.Clone()
		d.constraints = make([]*expr.Constraint, len(constraints))
		for i, con := range constraints {
			d.constraints[i] = con.Clone()
		}
	}

	// Basic set first: constraint left-hand sides, in constraint order.
	for _, con := range d.constraints {
		if !d.basic.add(con.Basic()) {
			return nil, ErrDuplicateBasic
		}
	}

	// Non-basic set: first appearance across objective then right-hand sides.
	if err := d.discoverNonBasic(d.objective); err != nil {
		return nil, err
	}
	for _, con := range d.constraints {
		if err := d.discoverNonBasic(con.RHS()); err != nil {
			return nil, err
		}
	}
	if d.nonBasic.len() != varCount {
		return nil, ErrVarCountMismatch
	}

	return d, nil
}

// discoverNonBasic registers every variable of e as non-basic, rejecting
// names already claimed by the basic set.
func (d *Dictionary) discoverNonBasic(e *expr.Linear) error {
	for _, name := range e.Vars() {
		if d.basic.has(name) {
			return ErrBasicOnRight
		}
		d.nonBasic.add(name)
	}

	return nil
}

// VarCount returns the declared number of decision variables.
func (d *Dictionary) VarCount() int { return d.varCount }

// Objective returns a copy of the current objective expression.
func (d *Dictionary) Objective() *expr.Linear { return d.objective.Clone() }

// ObjectiveValue returns the objective's value at the current basic solution
// (all non-basic variables zero), i.e. its constant term.
func (d *Dictionary) ObjectiveValue() *big.Rat { return d.objective.Const() }

// Constraints returns copies of the constraints, in order.
func (d *Dictionary) Constraints() []*expr.Constraint {
	out := make([]*expr.Constraint, len(d.constraints))
	for i, con := range d.constraints {
		out[i] = con.Clone()
	}

	return out
}

// BasicVars returns the basic variable names in their current order.
func (d *Dictionary) BasicVars() []string { return d.basic.names() }

// NonBasicVars returns the non-basic variable names in their current order —
// the order the ratio test walks them.
func (d *Dictionary) NonBasicVars() []string { return d.nonBasic.names() }

// HelperVar returns the two-phase helper variable name, empty outside an
// auxiliary dictionary.
func (d *Dictionary) HelperVar() string { return d.helper }

// Solution returns the current basic solution: every non-basic variable at
// zero, every basic variable at its right-hand-side constant.
func (d *Dictionary) Solution() map[string]*big.Rat {
	out := make(map[string]*big.Rat, d.basic.len()+d.nonBasic.len())
	for _, name := range d.nonBasic.names() {
		out[name] = new(big.Rat)
	}
	for _, con := range d.constraints {
		out[con.Basic()] = con.RHS().Const()
	}

	return out
}

// SetPolicy swaps the active pivot-selection policy. Intended between runs;
// swapping mid-solve is the caller's risk.
func (d *Dictionary) SetPolicy(p Policy) {
	if p != nil {
		d.policy = p
	}
}

// Clone returns a deep copy of the dictionary's data. The policy instance is
// shared — give an independently solved clone its own via SetPolicy.
func (d *Dictionary) Clone() *Dictionary {
	out := &Dictionary{
		varCount:    d.varCount,
		objective:   d.objective.Clone(),
		constraints: make([]*expr.Constraint, len(d.constraints)),
		basic:       d.basic.clone(),
		nonBasic:    d.nonBasic.clone(),
		helper:      d.helper,
		policy:      d.policy,
	}
	for i, con := range d.constraints {
		out.constraints[i] = con.Clone()
	}

	return out
}

// orderedSet is a set of names with deterministic insertion-order iteration.
// Map iteration randomness must never reach tie-breaking, so every walk over
// variables goes through this.
type orderedSet struct {
	order []string
	index map[string]struct{}
}

func newOrderedSet(capacity int) *orderedSet {
	return &orderedSet{
		order: make([]string, 0, capacity),
		index: make(map[string]struct{}, capacity),
	}
}

// add appends name; false when it was already present.
func (s *orderedSet) add(name string) bool {
	if _, ok := s.index[name]; ok {
		return false
	}
	s.index[name] = struct{}{}
	s.order = append(s.order, name)

	return true
}

// remove deletes name, preserving the relative order of the rest.
func (s *orderedSet) remove(name string) {
	if _, ok := s.index[name]; !ok {
		return
	}
	delete(s.index, name)
	for i, n := range s.order {
		if n == name {
			s.order = append(s.order[:i], s.order[i+1:]...)

			return
		}
	}
}

func (s *orderedSet) has(name string) bool {
	_, ok := s.index[name]

	return ok
}

func (s *orderedSet) len() int { return len(s.order) }

// names returns a copy of the insertion-ordered name list.
func (s *orderedSet) names() []string {
	out := make([]string, len(s.order))
	copy(out, s.order)

	return out
}

func (s *orderedSet) clone() *orderedSet {
	out := newOrderedSet(len(s.order))
	out.order = append(out.order, s.order...)
	for name := range s.index {
		out.index[name] = struct{}{}
	}

	return out
}
