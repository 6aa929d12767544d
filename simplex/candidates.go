package simplex

import "math/big"

// searchOutcome classifies the result of the entering-candidate search.
type searchOutcome int

const (
	// searchCandidates: at least one admissible pivot was found.
	searchCandidates searchOutcome = iota

	// searchOptimal: no profitable variable exists.
	searchOptimal

	// searchUnbounded: a profitable variable has no blocking constraint.
	searchUnbounded
)

// enteringCandidates runs the ratio test on a feasible dictionary.
//
// For each non-basic variable with a strictly positive objective coefficient
// (walked in non-basic insertion order), it scans the constraints in list
// order; every strictly negative coefficient yields the bound
//
//	constant / (−coefficient)
//
// and the minimum bound wins, first-seen constraint breaking exact ties.
// A profitable variable with no negative coefficient anywhere makes the whole
// dictionary unbounded and short-circuits the search.
//
// Returns one candidate per profitable variable, or searchOptimal when none
// is profitable.
//
// Complexity: O(V·C) exact-rational comparisons.
func (d *Dictionary) enteringCandidates() ([]Candidate, searchOutcome) {
	var out []Candidate
	ratio := new(big.Rat)
	for _, name := range d.nonBasic.order {
		if d.objective.CoeffSign(name) <= 0 {
			continue
		}
		var (
			best    *big.Rat
			leaving int
		)
		for i, con := range d.constraints {
			if con.RHS().CoeffSign(name) >= 0 {
				continue
			}
			coeff := con.RHS().Coeff(name)
			ratio.Neg(coeff)
			ratio.Quo(con.RHS().Const(), ratio)
			if best == nil || ratio.Cmp(best) < 0 {
				best = new(big.Rat).Set(ratio)
				leaving = i
			}
		}
		if best == nil {
			return nil, searchUnbounded
		}
		out = append(out, Candidate{Entering: name, Leaving: leaving, Bound: best})
	}
	if len(out) == 0 {
		return nil, searchOptimal
	}

	return out, searchCandidates
}
