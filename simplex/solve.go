package simplex

import (
	"errors"
	"fmt"
)

// Step is one yielded (snapshot, status) pair. Dict is a deep snapshot taken
// strictly after the step's transition; later pivots never mutate it.
type Step struct {
	Dict   *Dictionary
	Status Status
}

// phase enumerates the driver's internal positions between yields.
type phase int

const (
	// phaseRun: stepping the live dictionary with next().
	phaseRun phase = iota

	// phaseAuxCreate: HelpNeeded was yielded; build the auxiliary dictionary.
	phaseAuxCreate

	// phaseAuxFirstPivot: HelperCreated was yielded; pivot the helper in.
	phaseAuxFirstPivot

	// phaseAuxRun: forwarding the auxiliary dictionary's own step sequence.
	phaseAuxRun

	// phaseAuxReconcile: auxiliary solve finished; decide Infeasible vs
	// OriginFeasible.
	phaseAuxReconcile

	// phaseDone: the sequence is exhausted.
	phaseDone
)

// Stepper is the lazy, one-shot-forward-only step sequence of a solving run.
// Each Next call performs at most one pivot (or one two-phase transition) and
// yields the resulting pair; pausing consumption pauses all work. A Stepper
// cannot be rewound — restarting means solving a snapshot from scratch.
//
// Single-threaded by design: the underlying dictionary is mutated in place
// between yields, and only the yielded snapshots are stable.
type Stepper struct {
	d        *Dictionary
	aux      *Dictionary
	auxPivot int
	inner    *Stepper
	ph       phase
	failed   error
}

// Steps returns a fresh Stepper over d. The dictionary is stepped in place;
// create one Stepper per run.
func (d *Dictionary) Steps() *Stepper {
	return &Stepper{d: d}
}

// Solve drains a fresh Stepper to completion and returns every yielded pair,
// the last of which carries the terminal status (Optimal, Unbounded or
// Infeasible).
//
// Errors: ErrInternal (wrapped) when a solver invariant breaks mid-run; the
// steps yielded so far are returned alongside.
func (d *Dictionary) Solve() ([]Step, error) {
	var out []Step
	st := d.Steps()
	for {
		step, err := st.Next()
		if errors.Is(err, ErrDone) {
			return out, nil
		}
		if err != nil {
			return out, err
		}
		out = append(out, step)
	}
}

// Next advances the run by one transition and returns the resulting
// (snapshot, status) pair. After the terminal pair it returns ErrDone; after
// an internal failure it keeps returning that failure.
func (s *Stepper) Next() (Step, error) {
	if s.failed != nil {
		return Step{}, s.failed
	}

	switch s.ph {
	case phaseRun:
		return s.stepRun()
	case phaseAuxCreate:
		return s.stepAuxCreate()
	case phaseAuxFirstPivot:
		return s.stepAuxFirstPivot()
	case phaseAuxRun:
		return s.stepAuxRun()
	case phaseAuxReconcile:
		return s.stepAuxReconcile()
	default:
		return Step{}, ErrDone
	}
}

// stepRun performs one ordinary transition on the live dictionary.
func (s *Stepper) stepRun() (Step, error) {
	status, err := s.d.next()
	if err != nil {
		return Step{}, s.fail(err)
	}
	switch status {
	case Optimal, Unbounded:
		s.d.policy.Reset()
		s.ph = phaseDone
	case HelpNeeded:
		s.ph = phaseAuxCreate
	}

	return s.yield(s.d, status), nil
}

// stepAuxCreate builds the auxiliary dictionary and yields HelperCreated
// before any pivot touches it.
func (s *Stepper) stepAuxCreate() (Step, error) {
	s.aux, s.auxPivot = s.d.newAuxiliary()
	s.ph = phaseAuxFirstPivot

	return s.yield(s.aux, HelperCreated), nil
}

// stepAuxFirstPivot pivots the helper in against the most violated constraint
// and yields HelperFeasible; construction guarantees feasibility here.
func (s *Stepper) stepAuxFirstPivot() (Step, error) {
	if err := s.aux.pivot(s.aux.helper, s.auxPivot); err != nil {
		return Step{}, s.fail(err)
	}
	if !s.aux.Feasible() {
		return Step{}, s.fail(fmt.Errorf("%w: auxiliary dictionary infeasible after helper pivot", ErrInternal))
	}
	// Fresh solving cycle for the auxiliary dictionary: no inherited history.
	s.aux.policy.Reset()
	s.inner = s.aux.Steps()
	s.ph = phaseAuxRun

	return s.yield(s.aux, HelperFeasible), nil
}

// stepAuxRun forwards one pair from the auxiliary run. The auxiliary
// objective is bounded by construction, so its run must end Optimal.
func (s *Stepper) stepAuxRun() (Step, error) {
	step, err := s.inner.Next()
	if err != nil {
		return Step{}, s.fail(fmt.Errorf("%w: auxiliary solve failed: %v", ErrInternal, err))
	}
	if step.Status.Terminal() {
		if step.Status != Optimal {
			return Step{}, s.fail(fmt.Errorf("%w: auxiliary solve ended %s, want Optimal", ErrInternal, step.Status))
		}
		s.ph = phaseAuxReconcile
	}

	return step, nil
}

// stepAuxReconcile inspects the auxiliary optimum: a non-zero value proves
// the original LP infeasible; zero lets the original dictionary be rebuilt in
// feasible form, after which the outer run resumes on it.
func (s *Stepper) stepAuxReconcile() (Step, error) {
	if s.aux.ObjectiveValue().Sign() != 0 {
		s.d.policy.Reset()
		s.ph = phaseDone

		return s.yield(s.d, Infeasible), nil
	}
	if err := s.d.adoptAuxiliary(s.aux); err != nil {
		return Step{}, s.fail(err)
	}
	s.aux, s.inner = nil, nil
	// Resumed phase starts with clean policy history.
	s.d.policy.Reset()
	s.ph = phaseRun

	return s.yield(s.d, OriginFeasible), nil
}

// yield snapshots dict and pairs it with status.
func (s *Stepper) yield(dict *Dictionary, status Status) Step {
	return Step{Dict: dict.Clone(), Status: status}
}

// fail latches err so every later Next repeats it.
func (s *Stepper) fail(err error) error {
	s.failed = err
	s.ph = phaseDone

	return err
}

// next performs the single-step transition on the dictionary:
//
//  1. Unbounded (checked first, feasibility irrelevant) → Unbounded.
//  2. Feasible: ratio test → Optimal, or pick a candidate, pivot, assert
//     feasibility survived, then report Optimal / Unbounded / Optimizable.
//  3. Otherwise → HelpNeeded.
//
// A ratio-test unboundedness report here contradicts step 1 and is a fatal
// logic error, as is feasibility lost by a pivot.
func (d *Dictionary) next() (Status, error) {
	if d.Unbounded() {
		return Unbounded, nil
	}
	if !d.Feasible() {
		return HelpNeeded, nil
	}

	candidates, outcome := d.enteringCandidates()
	switch outcome {
	case searchOptimal:
		return Optimal, nil
	case searchUnbounded:
		return 0, fmt.Errorf("%w: ratio test reports unbounded on a dictionary the oracle bounded", ErrInternal)
	}

	choice := d.policy.Pick(d.objective, candidates)
	if err := d.pivot(choice.Entering, choice.Leaving); err != nil {
		return 0, err
	}
	if !d.Feasible() {
		return 0, fmt.Errorf("%w: feasibility lost after pivoting %q in", ErrInternal, choice.Entering)
	}
	if d.Optimal() {
		return Optimal, nil
	}
	if d.Unbounded() {
		return Unbounded, nil
	}

	return Optimizable, nil
}
