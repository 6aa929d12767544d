package simplex_test

import (
	"strings"
	"testing"

	"github.com/katalvlaran/lpdict/simplex"
	"github.com/stretchr/testify/require"
)

func TestString_InitialDictionary(t *testing.T) {
	d := goldenDict(t)

	want := strings.Join([]string{
		"Objective: 2x1 + 3x2",
		"w1 = 6 - x1 - x2",
		"w2 = 10 - 2x1 - x2",
		"w3 = 4 + x1 - x2",
	}, "\n")
	require.Equal(t, want, d.String())
}

func TestString_SolvedDictionary(t *testing.T) {
	d := goldenDict(t)

	steps, err := d.Solve()
	require.NoError(t, err)

	want := strings.Join([]string{
		"Objective: 17 - 5/2w1 - 1/2w3",
		"x2 = 5 - 1/2w1 - 1/2w3",
		"x1 = 1 - 1/2w1 + 1/2w3",
		"w2 = 3 - 1/2w3 + 3/2w1",
	}, "\n")
	require.Equal(t, want, steps[len(steps)-1].Dict.String())
}

func TestString_RoundTripsThroughParsing(t *testing.T) {
	d := goldenDict(t)
	lines := strings.Split(d.String(), "\n")

	objective := strings.TrimPrefix(lines[0], "Objective: ")
	rebuilt := mustDict(t, d.VarCount(), objective, lines[1:]...)
	require.Equal(t, d.String(), rebuilt.String())
}

func TestDual_NotImplemented(t *testing.T) {
	d := goldenDict(t)

	_, err := d.Dual()
	require.ErrorIs(t, err, simplex.ErrNotImplemented)

	var nilDict *simplex.Dictionary
	_, err = nilDict.Dual()
	require.ErrorIs(t, err, simplex.ErrNilDictionary)
}
