package nodal_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/ohmnet/branch"
	"github.com/katalvlaran/ohmnet/matrix"
	"github.com/katalvlaran/ohmnet/nodal"
)

// entries flattens m row-major for comparisons.
func entries(tb testing.TB, m *matrix.Dense) []float64 {
	tb.Helper()
	out := make([]float64, 0, m.Rows()*m.Cols())
	m.Do(func(_, _ int, v float64) bool {
		out = append(out, v)
		return true
	})

	return out
}

func TestBuildConductanceStamps(t *testing.T) {
	g, err := nodal.BuildConductance(3, []branch.Branch{
		{U: 0, V: 1, R: 2},
		{U: 1, V: 2, R: 4},
	})
	require.NoError(t, err)

	want := []float64{
		0.5, -0.5, 0,
		-0.5, 0.75, -0.25,
		0, -0.25, 0.25,
	}
	require.Empty(t, cmp.Diff(want, entries(t, g)))
}

func TestBuildConductanceParallelAccumulates(t *testing.T) {
	g, err := nodal.BuildConductance(2, []branch.Branch{
		{U: 0, V: 1, R: 6},
		{U: 1, V: 0, R: 4},
	})
	require.NoError(t, err)

	v, err := g.At(0, 1)
	require.NoError(t, err)
	require.InDelta(t, -(1.0/6 + 1.0/4), v, 1e-15)
}

func TestBuildConductanceSkipsInertBranches(t *testing.T) {
	valid := []branch.Branch{{U: 0, V: 1, R: 10}, {U: 1, V: 2, R: 5}}
	noisy := append([]branch.Branch{
		{U: 1, V: 1, R: 3},           // self loop
		{U: 0, V: 3, R: 1},           // node out of range
		{U: -1, V: 0, R: 1},          // negative node
		{U: 0, V: 2, R: 0},           // zero resistance
		{U: 0, V: 2, R: -7},          // negative resistance
		{U: 0, V: 2, R: math.NaN()},  // NaN
		{U: 0, V: 2, R: math.Inf(1)}, // zero conductance
	}, valid...)

	clean, err := nodal.BuildConductance(3, valid)
	require.NoError(t, err)
	dirty, err := nodal.BuildConductance(3, noisy)
	require.NoError(t, err)
	require.Equal(t, entries(t, clean), entries(t, dirty))
}

func TestBuildConductanceEmptyAndErrors(t *testing.T) {
	g, err := nodal.BuildConductance(4, nil)
	require.NoError(t, err)
	for _, v := range entries(t, g) {
		require.Zero(t, v)
	}

	_, err = nodal.BuildConductance(0, nil)
	require.ErrorIs(t, err, nodal.ErrInvalidNodeCount)
	_, err = nodal.BuildConductance(-2, nil)
	require.ErrorIs(t, err, nodal.ErrInvalidNodeCount)
}

func TestBuildConductanceSymmetricWithZeroRowSums(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	const n = 12
	var bs []branch.Branch
	for k := 0; k < 60; k++ {
		bs = append(bs, branch.Branch{U: rng.Intn(n), V: rng.Intn(n), R: 0.5 + 100*rng.Float64()})
	}

	g, err := nodal.BuildConductance(n, bs)
	require.NoError(t, err)
	require.NoError(t, matrix.ValidateSymmetric(g, 0))

	for i := 0; i < n; i++ {
		var sum float64
		for j := 0; j < n; j++ {
			v, _ := g.At(i, j)
			sum += v
			if i != j {
				require.LessOrEqual(t, v, 0.0, "off-diagonal (%d,%d)", i, j)
			}
		}
		require.InDelta(t, 0, sum, 1e-12, "row %d", i)
	}
}

func TestBuildConductanceFreshMatrix(t *testing.T) {
	bs := []branch.Branch{{U: 0, V: 1, R: 1}}
	g1, err := nodal.BuildConductance(2, bs)
	require.NoError(t, err)
	g2, err := nodal.BuildConductance(2, bs)
	require.NoError(t, err)

	require.NoError(t, g1.Set(0, 0, 42))
	v, _ := g2.At(0, 0)
	require.Equal(t, 1.0, v)
}
