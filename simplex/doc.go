// Package simplex is a stepwise simplex-method engine over dictionaries —
// linear programs written as "basic variable = constant + combination of
// non-basic variables" — with exact rational arithmetic throughout.
//
// 🚀 What it does
//
//	Given an objective and a set of dictionary-form constraints, it pivots
//	until the dictionary is optimal, unbounded, or proven infeasible, and
//	hands every intermediate dictionary to the caller:
//		• Dictionary     — the data model, validated on construction
//		• Oracle         — Feasible / Optimal / Unbounded predicates
//		• Ratio test     — entering candidates with exact tie-breaking
//		• Policies       — Naive, Random, AntiCycle (default)
//		• Pivot executor — in-place substitution and role swap
//		• Two-phase      — helper-variable rescue for infeasible starts
//		• Step driver    — lazy (snapshot, status) sequence via Stepper
//
// The step driver is an explicit state machine. Each Stepper.Next performs at
// most one pivot (or one two-phase transition) and yields a deep snapshot
// paired with a Status; Optimal, Unbounded and Infeasible are terminal. When
// a run starts infeasible the driver yields HelpNeeded, builds an auxiliary
// dictionary (HelperCreated), pivots the helper in (HelperFeasible), forwards
// the auxiliary run's own pairs, then either proves Infeasible or yields
// OriginFeasible and resumes on the rebuilt dictionary.
//
// Quick example:
//
//	obj, _ := expr.Parse("2x1 + 3x2")
//	w1, _ := expr.ParseConstraint("w1 = 6 - x1 - x2")
//	w2, _ := expr.ParseConstraint("w2 = 10 - 2x1 - x2")
//	w3, _ := expr.ParseConstraint("w3 = 4 + x1 - x2")
//	d, _ := simplex.NewDictionary(2, obj, []*expr.Constraint{w1, w2, w3},
//		simplex.DefaultOptions())
//	steps, _ := d.Solve()
//	final := steps[len(steps)-1] // Status: Optimal, objective constant 17
//
// Determinism:
//
//	All tie-breaking follows insertion order — the order variables first
//	appear in the objective and right-hand sides, and constraint list order.
//	Only RandomPolicy introduces randomness, behind an explicit seed.
//
// Errors:
//
//	Construction problems (ErrBadVarCount, ErrDuplicateBasic,
//	ErrBasicOnRight, ErrVarCountMismatch, …) are reported immediately and are
//	the caller's to fix. ErrInternal marks violated solver invariants — bugs,
//	not inputs — and aborts the run. The dual-LP builder exists only as an
//	ErrNotImplemented stub.
//
// The engine is single-threaded: one dictionary, one writer, suspension only
// between yielded steps. Solve concurrent copies via Clone + SetPolicy.
package simplex
