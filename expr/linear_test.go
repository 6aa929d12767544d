// Package expr_test validates the exact-rational expression primitives:
// term accumulation and cancellation, insertion-order iteration, scaled
// addition, substitution, equation solving and rendering.
package expr_test

import (
	"math/big"
	"testing"

	"github.com/katalvlaran/lpdict/expr"
	"github.com/stretchr/testify/require"
)

func rat(a, b int64) *big.Rat { return big.NewRat(a, b) }

func TestLinear_ZeroValue(t *testing.T) {
	e := expr.NewLinear()
	require.Equal(t, 0, e.ConstSign())
	require.Equal(t, 0, e.Len())
	require.Equal(t, "0", e.String())
}

func TestLinear_AddTermInsertionOrder(t *testing.T) {
	e := expr.NewLinear()
	e.AddTerm("x2", rat(3, 1))
	e.AddTerm("x1", rat(2, 1))
	e.AddTerm("x2", rat(1, 1)) // merges, keeps position

	require.Equal(t, []string{"x2", "x1"}, e.Vars())
	require.Equal(t, 0, rat(4, 1).Cmp(e.Coeff("x2")))
	require.Equal(t, 0, rat(2, 1).Cmp(e.Coeff("x1")))
}

func TestLinear_AddTermCancellationRemoves(t *testing.T) {
	e := expr.NewLinear()
	e.AddTerm("x1", rat(1, 2))
	e.AddTerm("x1", rat(-1, 2))

	require.False(t, e.Has("x1"))
	require.Equal(t, 0, e.Len())
	// a cancelled variable must not linger in iteration order
	require.Empty(t, e.Vars())
}

func TestLinear_AddZeroToAbsentIsNoop(t *testing.T) {
	e := expr.NewLinear()
	e.AddTerm("x1", rat(0, 1))
	require.Equal(t, 0, e.Len())
}

func TestLinear_AddScaled(t *testing.T) {
	e, err := expr.Parse("1 + x1")
	require.NoError(t, err)
	other, err := expr.Parse("2 - x1 + x2")
	require.NoError(t, err)

	e.AddScaled(other, rat(3, 1))
	// 1 + x1 + 3·(2 - x1 + x2) = 7 - 2x1 + 3x2
	require.Equal(t, 0, rat(7, 1).Cmp(e.Const()))
	require.Equal(t, 0, rat(-2, 1).Cmp(e.Coeff("x1")))
	require.Equal(t, 0, rat(3, 1).Cmp(e.Coeff("x2")))
}

func TestLinear_Substitute(t *testing.T) {
	e, err := expr.Parse("6 - x1 - x2")
	require.NoError(t, err)
	sub, err := expr.Parse("5 - 1/2w2 - 1/2x2")
	require.NoError(t, err)

	e.Substitute("x1", sub)
	// 6 - (5 - 1/2w2 - 1/2x2) - x2 = 1 + 1/2w2 - 1/2x2
	require.Equal(t, 0, rat(1, 1).Cmp(e.Const()))
	require.Equal(t, 0, rat(1, 2).Cmp(e.Coeff("w2")))
	require.Equal(t, 0, rat(-1, 2).Cmp(e.Coeff("x2")))
	require.False(t, e.Has("x1"))
}

func TestLinear_SubstituteAbsentIsNoop(t *testing.T) {
	e, err := expr.Parse("1 + x1")
	require.NoError(t, err)
	sub, err := expr.Parse("99 + x9")
	require.NoError(t, err)

	before := e.Clone()
	e.Substitute("nope", sub)
	require.True(t, e.Equal(before))
}

func TestLinear_CloneIsDeep(t *testing.T) {
	e, err := expr.Parse("1 + 2x1")
	require.NoError(t, err)

	c := e.Clone()
	c.AddConst(rat(10, 1))
	c.AddTerm("x1", rat(5, 1))

	require.Equal(t, 0, rat(1, 1).Cmp(e.Const()))
	require.Equal(t, 0, rat(2, 1).Cmp(e.Coeff("x1")))
}

func TestLinear_EqualIgnoresOrder(t *testing.T) {
	a := expr.NewLinear().AddTerm("x1", rat(1, 1)).AddTerm("x2", rat(2, 1))
	b := expr.NewLinear().AddTerm("x2", rat(2, 1)).AddTerm("x1", rat(1, 1))

	require.True(t, a.Equal(b))

	b.AddConst(rat(1, 3))
	require.False(t, a.Equal(b))
}

func TestLinear_Scale(t *testing.T) {
	e, err := expr.Parse("2 - 4x1")
	require.NoError(t, err)

	e.Scale(rat(-1, 2))
	require.Equal(t, 0, rat(-1, 1).Cmp(e.Const()))
	require.Equal(t, 0, rat(2, 1).Cmp(e.Coeff("x1")))

	e.Scale(rat(0, 1))
	require.Equal(t, "0", e.String())
}

func TestLinear_StringShapes(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"2x1 + 3x2", "2x1 + 3x2"},
		{"6 - x1 - x2", "6 - x1 - x2"},
		{"-1 - x1", "-1 - x1"},
		{"-x1 + x2", "-x1 + x2"},
		{"0 + 3/2x2", "3/2x2"},
		{"7", "7"},
		{"0", "0"},
		{"1/2 + 1/2x1", "1/2 + 1/2x1"},
	}
	for _, tc := range cases {
		e, err := expr.Parse(tc.in)
		require.NoError(t, err, tc.in)
		require.Equal(t, tc.want, e.String(), tc.in)
	}
}

func TestLinear_StringParseRoundTrip(t *testing.T) {
	inputs := []string{
		"17 - 5/2w1 - 1/2w3",
		"-x0",
		"4 + x1 - x2",
		"0.25x4 - 7",
	}
	for _, in := range inputs {
		e, err := expr.Parse(in)
		require.NoError(t, err, in)
		back, err := expr.Parse(e.String())
		require.NoError(t, err, e.String())
		require.True(t, e.Equal(back), in)
	}
}

func TestConstraint_SolveFor(t *testing.T) {
	con, err := expr.ParseConstraint("w2 = 10 - 2x1 - x2")
	require.NoError(t, err)

	solved, err := con.SolveFor("x1")
	require.NoError(t, err)
	// x1 = 5 - 1/2w2 - 1/2x2, former basic variable first
	require.Equal(t, "5 - 1/2w2 - 1/2x2", solved.String())
}

func TestConstraint_SolveForMissingVar(t *testing.T) {
	con, err := expr.ParseConstraint("w1 = 5 + x1")
	require.NoError(t, err)

	_, err = con.SolveFor("x7")
	require.ErrorIs(t, err, expr.ErrZeroCoeff)
}

func TestConstraint_Construction(t *testing.T) {
	rhs, err := expr.Parse("1 - x1")
	require.NoError(t, err)

	_, err = expr.NewConstraint("", rhs)
	require.ErrorIs(t, err, expr.ErrNoBasic)

	_, err = expr.NewConstraint("w1", nil)
	require.ErrorIs(t, err, expr.ErrNilExpr)

	self, err := expr.Parse("1 + w1")
	require.NoError(t, err)
	_, err = expr.NewConstraint("w1", self)
	require.ErrorIs(t, err, expr.ErrSelfReference)
}

func TestConstraint_CloneIsDeep(t *testing.T) {
	con, err := expr.ParseConstraint("w1 = 6 - x1")
	require.NoError(t, err)

	c := con.Clone()
	c.RHS().AddConst(rat(100, 1))
	require.Equal(t, 0, rat(6, 1).Cmp(con.RHS().Const()))
}
