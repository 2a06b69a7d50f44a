package mesh_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/ohmnet/mesh"
	"github.com/katalvlaran/ohmnet/network"
)

func TestNewErrors(t *testing.T) {
	opts := mesh.DefaultOptions()
	cases := []struct {
		name string
		grid [][]int
		opts mesh.Options
		err  error
	}{
		{"EmptyRows", [][]int{}, opts, mesh.ErrEmptyGrid},
		{"EmptyCols", [][]int{{}}, opts, mesh.ErrEmptyGrid},
		{"NonRectangular", [][]int{{1, 1}, {1}}, opts, mesh.ErrNonRectangular},
		{"OneNode", [][]int{{1, 0}, {0, 0}}, opts, mesh.ErrTooFewNodes},
		{"ZeroOhms", [][]int{{1, 1}}, mesh.Options{Threshold: 1, Ohms: 0}, mesh.ErrBadResistance},
		{"InfOhms", [][]int{{1, 1}}, mesh.Options{Threshold: 1, Ohms: math.Inf(1)}, mesh.ErrBadResistance},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			_, err := mesh.New(tc.grid, tc.opts)
			require.ErrorIs(t, err, tc.err)
		})
	}

	_, err := mesh.Rect(0, 3, opts)
	require.ErrorIs(t, err, mesh.ErrEmptyGrid)
}

func TestNodeNumbering(t *testing.T) {
	m, err := mesh.New([][]int{
		{1, 0, 1},
		{1, 1, 5},
	}, mesh.DefaultOptions())
	require.NoError(t, err)
	require.Equal(t, 5, m.Nodes())

	n, err := m.Node(2, 0)
	require.NoError(t, err)
	require.Equal(t, 2, n)
	n, err = m.Node(2, 1)
	require.NoError(t, err)
	require.Equal(t, 5, n)

	_, err = m.Node(1, 0)
	require.ErrorIs(t, err, mesh.ErrHole)
	_, err = m.Node(3, 0)
	require.ErrorIs(t, err, mesh.ErrCellOutOfRange)
	require.False(t, m.InBounds(0, -1))

	x, y, err := m.Cell(4)
	require.NoError(t, err)
	require.Equal(t, [2]int{1, 1}, [2]int{x, y})
	_, _, err = m.Cell(6)
	require.ErrorIs(t, err, network.ErrNodeOutOfRange)
}

func TestNetworkBranches(t *testing.T) {
	m, err := mesh.Rect(2, 2, mesh.Options{Threshold: 1, Ohms: 3})
	require.NoError(t, err)
	net, err := m.Network()
	require.NoError(t, err)
	require.Equal(t, []network.Branch{
		{Pos: 1, U: 1, V: 2, R: 3},
		{Pos: 2, U: 1, V: 3, R: 3},
		{Pos: 3, U: 2, V: 4, R: 3},
		{Pos: 4, U: 3, V: 4, R: 3},
	}, net.Branches())

	m8, err := mesh.Rect(2, 2, mesh.Options{Threshold: 1, Conn: mesh.Conn8, Ohms: 1})
	require.NoError(t, err)
	net8, err := m8.Network()
	require.NoError(t, err)
	require.Equal(t, 6, net8.Len(), "K4")
}

func TestLatticeResistances(t *testing.T) {
	cases := []struct {
		name     string
		w, h     int
		conn     mesh.Connectivity
		from, to [2]int
		want     float64
	}{
		{"square opposite", 2, 2, mesh.Conn4, [2]int{0, 0}, [2]int{1, 1}, 1},
		{"square adjacent", 2, 2, mesh.Conn4, [2]int{0, 0}, [2]int{1, 0}, 0.75},
		{"K4", 2, 2, mesh.Conn8, [2]int{0, 0}, [2]int{1, 1}, 0.5},
		{"3x2 corners", 3, 2, mesh.Conn4, [2]int{0, 0}, [2]int{2, 1}, 1.4},
		{"3x3 corners", 3, 3, mesh.Conn4, [2]int{0, 0}, [2]int{2, 2}, 1.5},
		{"3x3 corner to center", 3, 3, mesh.Conn4, [2]int{0, 0}, [2]int{1, 1}, 7.0 / 8},
		{"3x3 corner to edge", 3, 3, mesh.Conn4, [2]int{0, 0}, [2]int{1, 0}, 17.0 / 24},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			opts := mesh.DefaultOptions()
			opts.Conn = tc.conn
			m, err := mesh.Rect(tc.w, tc.h, opts)
			require.NoError(t, err)
			net, err := m.Network()
			require.NoError(t, err)

			a, err := m.Node(tc.from[0], tc.from[1])
			require.NoError(t, err)
			b, err := m.Node(tc.to[0], tc.to[1])
			require.NoError(t, err)
			res, err := net.Resistance(a, b)
			require.NoError(t, err)
			got, ok := res.Value()
			require.True(t, ok, res.String())
			require.InDelta(t, tc.want, got, 1e-9)
		})
	}
}

func TestRingWithHole(t *testing.T) {
	m, err := mesh.New([][]int{
		{1, 1, 1},
		{1, 0, 1},
		{1, 1, 1},
	}, mesh.DefaultOptions())
	require.NoError(t, err)
	net, err := m.Network()
	require.NoError(t, err)
	require.Equal(t, 8, net.Len())

	a, _ := m.Node(0, 0)
	b, _ := m.Node(2, 2)
	res, err := net.Resistance(a, b)
	require.NoError(t, err)
	require.InDelta(t, 2.0, res.Ohms(), 1e-12)
}

func TestComponents(t *testing.T) {
	m, err := mesh.New([][]int{
		{1, 1, 0, 1},
		{0, 0, 0, 1},
		{1, 0, 1, 0},
	}, mesh.DefaultOptions())
	require.NoError(t, err)
	require.Equal(t, [][]int{{1, 2}, {3, 4}, {5}, {6}}, m.Components())

	m8, err := mesh.New([][]int{
		{1, 1, 0, 1},
		{0, 0, 0, 1},
		{1, 0, 1, 0},
	}, mesh.Options{Threshold: 1, Conn: mesh.Conn8, Ohms: 1})
	require.NoError(t, err)
	require.Equal(t, [][]int{{1, 2}, {3, 4, 6}, {5}}, m8.Components())
}
