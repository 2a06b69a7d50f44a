package mesh

import (
	"fmt"
	"math"

	"github.com/katalvlaran/ohmnet/network"
)

// New builds a Mesh from a non-empty, rectangular 2D slice, indexed [y][x].
// The input is not retained.
// Complexity: O(W×H) time and memory.
func New(values [][]int, opts Options) (*Mesh, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(values), len(values[0])
	for _, row := range values {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}
	if !(opts.Ohms > 0) || math.IsInf(opts.Ohms, 0) || math.IsInf(1/opts.Ohms, 0) {
		return nil, ErrBadResistance
	}

	m := &Mesh{
		Width:  w,
		Height: h,
		Conn:   opts.Conn,
		Ohms:   opts.Ohms,
		node:   make([]int, w*h),
	}
	// Forward directions only, so each neighbor pair yields one branch.
	if opts.Conn == Conn8 {
		m.forward = [][2]int{{1, 0}, {0, 1}, {1, 1}, {-1, 1}}
	} else {
		m.forward = [][2]int{{1, 0}, {0, 1}}
	}

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if values[y][x] < opts.Threshold {
				continue
			}
			idx := m.index(x, y)
			m.cells = append(m.cells, idx)
			m.node[idx] = len(m.cells)
		}
	}
	if len(m.cells) < 2 {
		return nil, ErrTooFewNodes
	}

	return m, nil
}

// Rect builds a full width×height lattice with no holes.
func Rect(width, height int, opts Options) (*Mesh, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrEmptyGrid
	}
	grid := make([][]int, height)
	for y := range grid {
		grid[y] = make([]int, width)
		for x := range grid[y] {
			grid[y][x] = opts.Threshold
		}
	}

	return New(grid, opts)
}

// InBounds reports whether (x,y) lies within the grid boundaries.
// Complexity: O(1).
func (m *Mesh) InBounds(x, y int) bool {
	return x >= 0 && x < m.Width && y >= 0 && y < m.Height
}

// index maps (x,y) to a row-major index: y*Width + x.
func (m *Mesh) index(x, y int) int {
	return y*m.Width + x
}

// coordinate converts a row-major index back to (x,y).
func (m *Mesh) coordinate(idx int) (x, y int) {
	return idx % m.Width, idx / m.Width
}

// Nodes returns the number of node cells.
func (m *Mesh) Nodes() int { return len(m.cells) }

// Node returns the one-based node number of cell (x,y).
func (m *Mesh) Node(x, y int) (int, error) {
	if !m.InBounds(x, y) {
		return 0, fmt.Errorf("Node(%d,%d): %w", x, y, ErrCellOutOfRange)
	}
	n := m.node[m.index(x, y)]
	if n == 0 {
		return 0, fmt.Errorf("Node(%d,%d): %w", x, y, ErrHole)
	}

	return n, nil
}

// Cell returns the coordinates of one-based node n.
func (m *Mesh) Cell(n int) (x, y int, err error) {
	if n < 1 || n > len(m.cells) {
		return 0, 0, fmt.Errorf("Cell(%d): %w", n, network.ErrNodeOutOfRange)
	}
	x, y = m.coordinate(m.cells[n-1])

	return x, y, nil
}

// Network converts the lattice into a network with one branch per neighbor
// pair, listed in row-major order of their first cell.
// Complexity: O(W×H×d).
func (m *Mesh) Network() (*network.Network, error) {
	net, err := network.New(len(m.cells))
	if err != nil {
		return nil, err
	}
	for _, idx := range m.cells {
		x, y := m.coordinate(idx)
		u := m.node[idx]
		for _, d := range m.forward {
			nx, ny := x+d[0], y+d[1]
			if !m.InBounds(nx, ny) {
				continue
			}
			v := m.node[m.index(nx, ny)]
			if v == 0 {
				continue
			}
			if err = net.AddBranch(u, v, m.Ohms); err != nil {
				return nil, err
			}
		}
	}

	return net, nil
}
