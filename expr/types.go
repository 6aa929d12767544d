package expr

import "errors"

// Sentinel errors returned by the expr package.
var (
	// ErrParse indicates malformed algebraic input; the wrapped message
	// carries the offending fragment and offset.
	ErrParse = errors.New("expr: malformed expression")

	// ErrNoBasic indicates a constraint without a single variable on its
	// left-hand side.
	ErrNoBasic = errors.New("expr: constraint requires exactly one basic variable")

	// ErrSelfReference indicates a constraint whose right-hand side mentions
	// its own basic variable.
	ErrSelfReference = errors.New("expr: constraint right-hand side references its basic variable")

	// ErrZeroCoeff indicates an attempt to solve an equation for a variable
	// that is absent (coefficient zero) from it.
	ErrZeroCoeff = errors.New("expr: cannot solve for variable with zero coefficient")

	// ErrNilExpr indicates a nil *Linear passed where a value is required.
	ErrNilExpr = errors.New("expr: expression is nil")
)
