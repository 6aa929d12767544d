// Package simplex_test exercises the dictionary engine end to end: exact
// construction validation, oracle predicates, policy behavior, pivoting, the
// two-phase rescue and the lazy step driver.
package simplex_test

import (
	"math/big"
	"testing"

	"github.com/katalvlaran/lpdict/expr"
	"github.com/katalvlaran/lpdict/simplex"
	"github.com/stretchr/testify/require"
)

// mustDict assembles a dictionary from algebraic strings with default options.
func mustDict(t *testing.T, vars int, objective string, constraints ...string) *simplex.Dictionary {
	t.Helper()

	obj, err := expr.Parse(objective)
	require.NoError(t, err)
	list := make([]*expr.Constraint, len(constraints))
	for i, s := range constraints {
		list[i], err = expr.ParseConstraint(s)
		require.NoError(t, err)
	}
	d, err := simplex.NewDictionary(vars, obj, list, simplex.DefaultOptions())
	require.NoError(t, err)

	return d
}

// goldenDict is the walk-through LP used across the suite:
// maximize 2x1 + 3x2 with three slack rows; optimum 17 at x1=1, x2=5.
func goldenDict(t *testing.T) *simplex.Dictionary {
	t.Helper()

	return mustDict(t, 2, "2x1 + 3x2",
		"w1 = 6 - x1 - x2",
		"w2 = 10 - 2x1 - x2",
		"w3 = 4 + x1 - x2",
	)
}

// requireRat asserts an exact rational value.
func requireRat(t *testing.T, want *big.Rat, got *big.Rat) {
	t.Helper()
	require.Zerof(t, want.Cmp(got), "want %s, got %s", want.RatString(), got.RatString())
}

// requireInvariants checks the structural dictionary invariants the engine
// promises at every externally observable step.
func requireInvariants(t *testing.T, d *simplex.Dictionary) {
	t.Helper()

	basic, nonBasic := d.BasicVars(), d.NonBasicVars()
	require.Len(t, basic, len(d.Constraints()))
	require.Len(t, nonBasic, d.VarCount())

	seen := make(map[string]bool, len(basic)+len(nonBasic))
	for _, name := range basic {
		require.False(t, seen[name], "duplicate in basic set: %s", name)
		seen[name] = true
	}
	for _, name := range nonBasic {
		require.False(t, seen[name], "sets intersect at %s", name)
		seen[name] = true
	}

	for _, con := range d.Constraints() {
		require.True(t, seen[con.Basic()])
		for _, name := range con.RHS().Vars() {
			require.Contains(t, nonBasic, name, "rhs of %s", con.Basic())
		}
	}
	for _, name := range d.Objective().Vars() {
		require.Contains(t, nonBasic, name, "objective")
	}
}
