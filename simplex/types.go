package simplex

import (
	"errors"
	"math/big"
)

// Sentinel errors returned by the simplex package.
var (
	// ErrBadVarCount indicates a non-positive declared variable count.
	ErrBadVarCount = errors.New("simplex: variable count must be positive")

	// ErrNilObjective indicates a nil objective expression.
	ErrNilObjective = errors.New("simplex: objective is nil")

	// ErrNilConstraint indicates a nil constraint in the constraint list.
	ErrNilConstraint = errors.New("simplex: constraint is nil")

	// ErrNilDictionary indicates a nil *Dictionary receiver or argument.
	ErrNilDictionary = errors.New("simplex: dictionary is nil")

	// ErrDuplicateBasic indicates two constraints binding the same basic variable.
	ErrDuplicateBasic = errors.New("simplex: duplicate basic variable across constraints")

	// ErrBasicOnRight indicates a basic variable appearing in the objective or
	// in a right-hand side, which breaks dictionary form.
	ErrBasicOnRight = errors.New("simplex: basic variable appears on a right-hand side or in the objective")

	// ErrVarCountMismatch indicates that the number of distinct non-basic
	// variables discovered in the objective and right-hand sides differs from
	// the declared variable count.
	ErrVarCountMismatch = errors.New("simplex: declared variable count does not match discovered variables")

	// ErrInternal indicates a violated solver invariant: feasibility lost after
	// a pivot, a contradictory unboundedness report, or an auxiliary solve that
	// did not end optimal. It signals a bug, not a user error, and the run that
	// produced it cannot continue.
	ErrInternal = errors.New("simplex: internal invariant violated")

	// ErrDone is returned by Stepper.Next once the step sequence is exhausted.
	ErrDone = errors.New("simplex: step sequence exhausted")

	// ErrNotImplemented marks capabilities that are declared but deliberately
	// unimplemented (the dual-LP construction).
	ErrNotImplemented = errors.New("simplex: not implemented")
)

// Status classifies a dictionary after one driver step.
//
// Optimal, Unbounded and Infeasible are terminal for the outer solve; the
// remaining values mark intermediate progress or two-phase transitions.
type Status int

const (
	// Optimizable: the dictionary is feasible, not optimal, and a pivot was
	// (or can be) performed.
	Optimizable Status = iota

	// Optimal: every objective coefficient is non-positive; no pivot improves.
	Optimal

	// Unbounded: some profitable variable can grow without bound.
	Unbounded

	// Infeasible: the two-phase method proved no feasible point exists.
	Infeasible

	// HelpNeeded: the dictionary is infeasible and the two-phase method is
	// about to take over.
	HelpNeeded

	// HelperCreated: the auxiliary dictionary was just built, before its
	// first pivot.
	HelperCreated

	// HelperFeasible: the helper variable was pivoted in against the most
	// violated constraint; the auxiliary dictionary is now feasible.
	HelperFeasible

	// OriginFeasible: phase one succeeded and the original dictionary was
	// rebuilt in feasible form; the outer solve resumes on it.
	OriginFeasible
)

// String returns the status name.
func (s Status) String() string {
	switch s {
	case Optimizable:
		return "Optimizable"
	case Optimal:
		return "Optimal"
	case Unbounded:
		return "Unbounded"
	case Infeasible:
		return "Infeasible"
	case HelpNeeded:
		return "HelpNeeded"
	case HelperCreated:
		return "HelperCreated"
	case HelperFeasible:
		return "HelperFeasible"
	case OriginFeasible:
		return "OriginFeasible"
	default:
		return "Unknown"
	}
}

// Terminal reports whether the status ends the outer solve.
func (s Status) Terminal() bool {
	return s == Optimal || s == Unbounded || s == Infeasible
}

// Candidate is one admissible pivot found by the ratio test: a profitable
// entering variable, the constraint whose basic variable would leave, and the
// exact non-negative bound on the entering variable's increase. Candidates are
// ephemeral — produced by the search, consumed by the policy.
type Candidate struct {
	// Entering is the non-basic variable chosen to grow.
	Entering string

	// Leaving is the index (into Constraints order) of the constraint whose
	// basic variable departs.
	Leaving int

	// Bound is the tightest exact ratio; zero marks a degenerate pivot.
	Bound *big.Rat
}

// Options configures dictionary construction.
//
//   - Policy          – the pivot-selection strategy; nil falls back to a fresh
//     anti-cycling policy.
//   - CopyExpressions – deep-copy the caller's objective and constraints so
//     later pivots never mutate them; disable to alias the
//     originals (caller must then not touch them mid-solve).
type Options struct {
	Policy          Policy
	CopyExpressions bool
}

// DefaultOptions returns the recommended configuration: anti-cycling policy
// and defensive deep copies.
func DefaultOptions() Options {
	return Options{
		Policy:          NewAntiCyclePolicy(),
		CopyExpressions: true,
	}
}
