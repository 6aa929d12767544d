package simplex

import (
	"math/rand"

	"github.com/katalvlaran/lpdict/expr"
)

// Policy chooses one pivot among the admissible candidates.
//
// Pick receives the current (pre-pivot) objective — read-only — and a
// non-empty candidate list in ratio-test order. Reset clears any internal
// history; the step driver calls it at every terminal status and at each
// two-phase boundary so state never leaks between solving runs.
type Policy interface {
	Pick(objective *expr.Linear, candidates []Candidate) Candidate
	Reset()
}

// NaivePolicy always takes the first candidate. Fast and deterministic, but
// degenerate dictionaries can stall it on zero-bound pivots.
type NaivePolicy struct{}

// Pick returns the first candidate.
func (NaivePolicy) Pick(_ *expr.Linear, candidates []Candidate) Candidate {
	return candidates[0]
}

// Reset is a no-op; the naive policy is stateless.
func (NaivePolicy) Reset() {}

// defaultPolicySeed is the fixed "zero" seed used when callers pass seed==0.
// Arbitrary but stable, for reproducible defaults.
const defaultPolicySeed int64 = 1

// RandomPolicy picks a uniformly random candidate. Useful for exploring pivot
// orders; runs are reproducible only for a fixed non-zero seed.
type RandomPolicy struct {
	rng *rand.Rand
}

// NewRandomPolicy returns a RandomPolicy seeded deterministically.
// Policy: seed==0 ⇒ defaultPolicySeed; otherwise the seed is used verbatim.
func NewRandomPolicy(seed int64) *RandomPolicy {
	if seed == 0 {
		seed = defaultPolicySeed
	}

	return &RandomPolicy{rng: rand.New(rand.NewSource(seed))}
}

// Pick returns a uniformly chosen candidate.
func (p *RandomPolicy) Pick(_ *expr.Linear, candidates []Candidate) Candidate {
	return candidates[p.rng.Intn(len(candidates))]
}

// Reset is a no-op; the RNG stream is the only state and restarting it would
// hurt, not help, exploration.
func (p *RandomPolicy) Reset() {}

// AntiCyclePolicy is the default strategy. It behaves like NaivePolicy until
// a degenerate pivot (zero bound) threatens to revisit an objective already
// seen, then it sidesteps to the second candidate.
//
// Mechanics:
//   - zero first-candidate bound: look up the current objective's textual
//     signature in the history; a hit means a cycle — take the second
//     candidate when one exists; a miss records the signature and takes the
//     first.
//   - non-zero bound: real progress was made, cycle risk is gone — clear the
//     history and take the first candidate.
//
// The signature comparison relies on exact rational rendering; with floats,
// two visits to the same vertex would hash differently and cycling would slip
// through.
type AntiCyclePolicy struct {
	seen map[string]struct{}
}

// NewAntiCyclePolicy returns an AntiCyclePolicy with empty history.
func NewAntiCyclePolicy() *AntiCyclePolicy {
	return &AntiCyclePolicy{seen: make(map[string]struct{})}
}

// Pick applies the anti-cycling rule described on the type.
func (p *AntiCyclePolicy) Pick(objective *expr.Linear, candidates []Candidate) Candidate {
	if candidates[0].Bound.Sign() != 0 {
		p.Reset()

		return candidates[0]
	}
	sig := objective.String()
	if _, cycling := p.seen[sig]; cycling {
		if len(candidates) > 1 {
			return candidates[1]
		}

		return candidates[0]
	}
	p.seen[sig] = struct{}{}

	return candidates[0]
}

// Reset drops the objective-signature history.
func (p *AntiCyclePolicy) Reset() {
	p.seen = make(map[string]struct{})
}
