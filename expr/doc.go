// Package expr provides exact-rational linear algebra primitives for the
// simplex engine: linear expressions, named-variable constraints, and a small
// algebraic parser.
//
// A Linear value represents
//
//	constant + Σ coefficient·variable
//
// with every number held as a *big.Rat. Exactness is not cosmetic: the solver
// depends on exact equality for cycle detection, on exact zero tests for
// degeneracy, and on exact comparison in the ratio test. Floating point would
// silently break all three.
//
// Iteration order over variables is the insertion order of first appearance.
// This order is part of the contract — downstream tie-breaking (candidate
// ordering, first-seen ratio-test winners) observes it, so it is fixed and
// documented rather than left to map randomness.
//
// Three construction paths:
//
//	– programmatic: NewLinear, AddConst, AddTerm
//	– algebraic:    Parse("2x1 + 3/2x2 - 4"), ParseConstraint("w1 = 6 - x1")
//	– derived:      Substitute, AddScaled, Constraint.SolveFor
//
// Rendering via String() produces the same textual shape the parser accepts,
// so expressions round-trip.
package expr
