package expr

import (
	"math/big"
)

// Constraint is one dictionary equation: a basic variable on the left,
// a linear expression over non-basic variables on the right.
//
//	basic = constant + Σ coefficient·variable
//
// The right-hand side is held by reference: RHS exposes the live expression
// so the pivot executor can rewrite it in place.
type Constraint struct {
	basic string
	rhs   *Linear
}

// NewConstraint builds a constraint binding basic to rhs.
//
// Errors:
//   - ErrNoBasic        if basic is empty.
//   - ErrNilExpr        if rhs is nil.
//   - ErrSelfReference  if rhs mentions basic.
func NewConstraint(basic string, rhs *Linear) (*Constraint, error) {
	if basic == "" {
		return nil, ErrNoBasic
	}
	if rhs == nil {
		return nil, ErrNilExpr
	}
	if rhs.Has(basic) {
		return nil, ErrSelfReference
	}

	return &Constraint{basic: basic, rhs: rhs}, nil
}

// Basic returns the constrained (left-hand) variable name.
func (c *Constraint) Basic() string { return c.basic }

// RHS returns the live right-hand-side expression. Mutating it mutates the
// constraint.
func (c *Constraint) RHS() *Linear { return c.rhs }

// Rebind replaces both sides of the constraint in place. Used by the pivot
// executor when the entering variable displaces the current basic one.
func (c *Constraint) Rebind(basic string, rhs *Linear) {
	c.basic = basic
	c.rhs = rhs
}

// Clone returns a deep copy of the constraint.
func (c *Constraint) Clone() *Constraint {
	return &Constraint{basic: c.basic, rhs: c.rhs.Clone()}
}

// SolveFor isolates name from the equation basic = rhs, returning name
// expressed through basic and the remaining right-hand-side variables:
//
//	name = −const/a + (1/a)·basic − Σ (a_u/a)·u    where a = coeff(name)
//
// The result's iteration order is: former basic variable first, then the
// remaining right-hand-side variables in their original order.
//
// Errors: ErrZeroCoeff if name has no (non-zero) coefficient in rhs.
//
// Complexity: O(t) where t is the number of right-hand-side terms.
func (c *Constraint) SolveFor(name string) (*Linear, error) {
	if !c.rhs.Has(name) {
		return nil, ErrZeroCoeff
	}
	a := c.rhs.Coeff(name)
	inv := new(big.Rat).Inv(a)
	negInv := new(big.Rat).Neg(inv)

	out := NewLinear()
	var scaled big.Rat
	scaled.Mul(c.rhs.Const(), negInv)
	out.AddConst(&scaled)
	out.AddTerm(c.basic, inv)
	for _, u := range c.rhs.Vars() {
		if u == name {
			continue
		}
		scaled.Mul(c.rhs.Coeff(u), negInv)
		out.AddTerm(u, &scaled)
	}

	return out, nil
}

// String renders the constraint as "<basic> = <rhs>".
func (c *Constraint) String() string {
	return c.basic + " = " + c.rhs.String()
}
