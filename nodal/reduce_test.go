package nodal_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/ohmnet/branch"
	"github.com/katalvlaran/ohmnet/matrix"
	"github.com/katalvlaran/ohmnet/nodal"
)

const tol = 1e-9

// opaque hides the concrete *matrix.Dense so Reduce takes its generic path.
type opaque struct{ matrix.Matrix }

// cube lists the twelve edges of a cube with corners 0..7.
var cube = [][2]int{
	{0, 1}, {0, 2}, {0, 4}, {1, 3}, {1, 5}, {2, 3},
	{2, 6}, {3, 7}, {4, 5}, {4, 6}, {5, 7}, {6, 7},
}

func unitBranches(edges [][2]int) []branch.Branch {
	out := make([]branch.Branch, len(edges))
	for i, e := range edges {
		out[i] = branch.Branch{U: e[0], V: e[1], R: 1}
	}

	return out
}

// ReduceSuite runs the terminal reduction over well-known networks.
type ReduceSuite struct {
	suite.Suite
}

func (s *ReduceSuite) build(n int, bs []branch.Branch) *matrix.Dense {
	g, err := nodal.BuildConductance(n, bs)
	require.NoError(s.T(), err)

	return g
}

func (s *ReduceSuite) resistance(n int, bs []branch.Branch, a, b int, opts ...nodal.Option) nodal.Result {
	res, err := nodal.EquivalentResistance(s.build(n, bs), a, b, opts...)
	require.NoError(s.T(), err)

	return res
}

func (s *ReduceSuite) requireOhms(want float64, res nodal.Result) {
	got, ok := res.Value()
	require.True(s.T(), ok, "want resistance, got %s", res.Kind)
	require.InDelta(s.T(), want, got, tol)
}

// TestSingleResistor covers the two-node short cut.
func (s *ReduceSuite) TestSingleResistor() {
	s.requireOhms(10, s.resistance(2, []branch.Branch{{U: 0, V: 1, R: 10}}, 0, 1))
	s.requireOhms(10, s.resistance(2, []branch.Branch{{U: 0, V: 1, R: 10}}, 1, 0))
}

// TestSeries checks 2 Ω + 3 Ω and the captured reduced system.
func (s *ReduceSuite) TestSeries() {
	g := s.build(3, []branch.Branch{{U: 0, V: 1, R: 2}, {U: 1, V: 2, R: 3}})
	sol, err := nodal.Reduce(g, 0, 2)
	require.NoError(s.T(), err)
	s.requireOhms(5, sol.Result)

	require.Equal(s.T(), []int{1}, sol.Unknowns)
	require.Empty(s.T(), sol.Floating)
	m, err := sol.Reduced.At(0, 0)
	require.NoError(s.T(), err)
	require.InDelta(s.T(), 0.5+1.0/3, m, 1e-15)
	require.InDelta(s.T(), 0.5, sol.RHS[0], 1e-15)

	require.InDelta(s.T(), 1.0, sol.Voltages[0], 0)
	require.InDelta(s.T(), 0.6, sol.Voltages[1], tol)
	require.InDelta(s.T(), 0.0, sol.Voltages[2], 0)
	require.InDelta(s.T(), 0.2, sol.Current, tol)

	res, err := sol.Residual()
	require.NoError(s.T(), err)
	require.Less(s.T(), res, 1e-15)
}

// TestParallel checks 6 Ω ∥ 4 Ω = 2.4 Ω.
func (s *ReduceSuite) TestParallel() {
	s.requireOhms(2.4, s.resistance(2, []branch.Branch{{U: 0, V: 1, R: 6}, {U: 0, V: 1, R: 4}}, 0, 1))
}

// TestBridges covers a balanced and an unbalanced Wheatstone bridge.
func (s *ReduceSuite) TestBridges() {
	balanced := []branch.Branch{
		{U: 0, V: 1, R: 1}, {U: 0, V: 2, R: 1},
		{U: 1, V: 3, R: 1}, {U: 2, V: 3, R: 1},
		{U: 1, V: 2, R: 1},
	}
	s.requireOhms(1, s.resistance(4, balanced, 0, 3))

	unbalanced := []branch.Branch{
		{U: 0, V: 1, R: 1}, {U: 0, V: 2, R: 2},
		{U: 1, V: 3, R: 2}, {U: 2, V: 3, R: 1},
		{U: 1, V: 2, R: 1},
	}
	s.requireOhms(7.0/5, s.resistance(4, unbalanced, 0, 3))
}

// TestCube checks the classic unit-cube resistances.
func (s *ReduceSuite) TestCube() {
	bs := unitBranches(cube)
	sol, err := nodal.Reduce(s.build(8, bs), 0, 7)
	require.NoError(s.T(), err)
	residual, err := sol.Residual()
	require.NoError(s.T(), err)
	require.Less(s.T(), residual, 1e-12)

	s.requireOhms(5.0/6, s.resistance(8, bs, 0, 7))
	s.requireOhms(7.0/12, s.resistance(8, bs, 0, 1))
	s.requireOhms(3.0/4, s.resistance(8, bs, 0, 3))
}

// TestPentagonWithChord checks a ring of five unit resistors with one chord.
func (s *ReduceSuite) TestPentagonWithChord() {
	bs := unitBranches([][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 4}, {4, 0}, {0, 2}})
	s.requireOhms(10.0/11, s.resistance(5, bs, 0, 3))
}

// TestEqualTerminals returns zero without solving.
func (s *ReduceSuite) TestEqualTerminals() {
	sol, err := nodal.Reduce(s.build(3, unitBranches([][2]int{{0, 1}})), 1, 1)
	require.NoError(s.T(), err)
	s.requireOhms(0, sol.Result)
	require.Nil(s.T(), sol.Voltages)
	require.Nil(s.T(), sol.Reduced)
}

// TestOpenCircuit has each terminal in its own component.
func (s *ReduceSuite) TestOpenCircuit() {
	bs := unitBranches([][2]int{{0, 1}, {2, 3}})
	for _, prune := range []bool{true, false} {
		res := s.resistance(4, bs, 0, 2, nodal.WithIslandPruning(prune))
		require.True(s.T(), res.IsOpen(), "prune=%v: got %s", prune, res)
		require.True(s.T(), math.IsInf(res.Ohms(), 1))
	}

	res := s.resistance(2, nil, 0, 1)
	require.True(s.T(), res.IsOpen())
}

// TestIslandPruned drops a loop hanging off neither terminal.
func (s *ReduceSuite) TestIslandPruned() {
	bs := []branch.Branch{{U: 0, V: 1, R: 8}, {U: 2, V: 3, R: 1}}
	sol, err := nodal.Reduce(s.build(5, bs), 0, 1)
	require.NoError(s.T(), err)
	s.requireOhms(8, sol.Result)
	require.Equal(s.T(), []int{2, 3, 4}, sol.Floating)
	require.Empty(s.T(), sol.Unknowns)
	require.Nil(s.T(), sol.Reduced)
	for _, f := range sol.Floating {
		require.True(s.T(), math.IsNaN(sol.Voltages[f]))
	}
}

// TestIslandWithoutPruning reproduces the singular system an island causes.
func (s *ReduceSuite) TestIslandWithoutPruning() {
	bs := []branch.Branch{{U: 0, V: 1, R: 8}, {U: 1, V: 2, R: 4}}
	sol, err := nodal.Reduce(s.build(4, bs), 0, 2, nodal.WithIslandPruning(false))
	require.NoError(s.T(), err)
	require.True(s.T(), sol.Result.IsSingular())
	require.True(s.T(), math.IsNaN(sol.Result.Ohms()))
	require.Nil(s.T(), sol.Voltages)
	require.Equal(s.T(), []int{1, 3}, sol.Unknowns)
	require.NotNil(s.T(), sol.Reduced)
	residual, err := sol.Residual()
	require.NoError(s.T(), err)
	require.True(s.T(), math.IsNaN(residual))

	s.requireOhms(12, s.resistance(4, bs, 0, 2))
}

// TestPivotToleranceOption forces a singular verdict with an oversized threshold.
func (s *ReduceSuite) TestPivotToleranceOption() {
	bs := []branch.Branch{{U: 0, V: 1, R: 2}, {U: 1, V: 2, R: 3}}
	res := s.resistance(3, bs, 0, 2, nodal.WithPivotTolerance(10))
	require.True(s.T(), res.IsSingular())
}

// TestGenericMatrix runs the reduction on a non-Dense Matrix.
func (s *ReduceSuite) TestGenericMatrix() {
	g := s.build(8, unitBranches(cube))
	res, err := nodal.EquivalentResistance(opaque{g}, 0, 7)
	require.NoError(s.T(), err)
	s.requireOhms(5.0/6, res)
}

// TestOrderIndependence permutes the branch list.
func (s *ReduceSuite) TestOrderIndependence() {
	bs := unitBranches(cube)
	bs[3].R, bs[9].R = 4.7, 0.33
	want := s.resistance(8, bs, 2, 5)

	rev := make([]branch.Branch, len(bs))
	for i := range bs {
		rev[len(bs)-1-i] = bs[i]
	}
	got := s.resistance(8, rev, 2, 5)
	s.requireOhms(want.Ohms(), got)
}

// TestIdempotent repeats a query on the same matrix.
func (s *ReduceSuite) TestIdempotent() {
	g := s.build(8, unitBranches(cube))
	first, err := nodal.EquivalentResistance(g, 0, 6)
	require.NoError(s.T(), err)
	second, err := nodal.EquivalentResistance(g, 0, 6)
	require.NoError(s.T(), err)
	require.Equal(s.T(), first, second)
}

// TestSymmetricInTerminals swaps A and B.
func (s *ReduceSuite) TestSymmetricInTerminals() {
	bs := []branch.Branch{
		{U: 0, V: 1, R: 1}, {U: 0, V: 2, R: 2},
		{U: 1, V: 3, R: 2}, {U: 2, V: 3, R: 1},
		{U: 1, V: 2, R: 5}, {U: 3, V: 4, R: 3},
	}
	ab := s.resistance(5, bs, 0, 4)
	ba := s.resistance(5, bs, 4, 0)
	s.requireOhms(ab.Ohms(), ba)
}

func TestReduceSuite(t *testing.T) {
	suite.Run(t, new(ReduceSuite))
}

func TestReduceInputErrors(t *testing.T) {
	g, err := nodal.BuildConductance(3, nil)
	require.NoError(t, err)

	_, err = nodal.Reduce(nil, 0, 1)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)

	rect, err := matrix.NewDense(2, 3)
	require.NoError(t, err)
	_, err = nodal.Reduce(rect, 0, 1)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	one, err := nodal.BuildConductance(1, nil)
	require.NoError(t, err)
	_, err = nodal.Reduce(one, 0, 0)
	require.ErrorIs(t, err, nodal.ErrInvalidNodeCount)

	for _, ab := range [][2]int{{-1, 0}, {0, 3}, {3, 3}} {
		_, err = nodal.EquivalentResistance(g, ab[0], ab[1])
		require.ErrorIs(t, err, nodal.ErrTerminalOutOfRange)
	}
}

func TestWithPivotTolerancePanics(t *testing.T) {
	require.Panics(t, func() { nodal.WithPivotTolerance(-1) })
	require.Panics(t, func() { nodal.WithPivotTolerance(math.NaN()) })

	o := nodal.NewOptions(nil, nodal.WithIslandPruning(false), nodal.WithPivotTolerance(1e-6))
	require.False(t, o.IslandPruning())
	require.Equal(t, 1e-6, o.PivotTolerance())

	d := nodal.NewOptions()
	require.Equal(t, nodal.DefaultIslandPruning, d.IslandPruning())
	require.Equal(t, nodal.DefaultPivotTolerance, d.PivotTolerance())
}
