package mesh

// Connectivity selects neighbor connectivity: orthogonal (Conn4) or including diagonals (Conn8).
type Connectivity int

const (
	// Conn4 uses 4-directional connectivity: N, E, S, W.
	Conn4 Connectivity = iota
	// Conn8 uses 8-directional connectivity: N, NE, E, SE, S, SW, W, NW.
	Conn8
)

// Options contains tunable parameters for mesh construction.
type Options struct {
	// Threshold is the minimum cell value that makes a node.
	Threshold int
	// Conn chooses 4- or 8-directional connectivity.
	Conn Connectivity
	// Ohms is the resistance of every lattice branch.
	Ohms float64
}

// DefaultOptions returns Threshold=1, Conn=Conn4, Ohms=1.
func DefaultOptions() Options {
	return Options{
		Threshold: 1,
		Conn:      Conn4,
		Ohms:      1,
	}
}

// Mesh is an immutable resistor lattice over a 2D grid.
// Width and Height define dimensions; node[idx] is the one-based node number
// of row-major cell idx, or 0 for a hole.
type Mesh struct {
	Width, Height int
	Conn          Connectivity
	Ohms          float64

	node  []int
	cells []int // row-major index of each node, node number n at cells[n-1]
	// forward holds each undirected neighbor direction once.
	forward [][2]int
}
