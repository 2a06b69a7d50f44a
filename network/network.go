package network

import (
	"math"
	"sync"

	"github.com/katalvlaran/ohmnet/branch"
	"github.com/katalvlaran/ohmnet/matrix"
	"github.com/katalvlaran/ohmnet/nodal"
)

// Network is a resistor network with a fixed node count.
type Network struct {
	mu       sync.RWMutex
	nodes    int
	branches *branch.List
}

// Branch is a display copy of a stored branch. All numbers are one-based.
type Branch struct {
	Pos  int
	U, V int
	R    float64
}

// New returns an empty network of nodes nodes.
//
// Errors: ErrInvalidNodeCount for nodes < 2; matrix.ErrTooLarge when the
// conductance matrix of that size could never be allocated.
func New(nodes int) (*Network, error) {
	if nodes < nodal.MinNodes {
		return nil, networkErrorf("New", ErrInvalidNodeCount)
	}
	if err := matrix.ValidateShape(nodes, nodes); err != nil {
		return nil, networkErrorf("New", err)
	}

	return &Network{nodes: nodes, branches: branch.NewList(0)}, nil
}

// Nodes returns the node count.
func (n *Network) Nodes() int { return n.nodes }

// Len returns the number of branches.
// Thread-safe: acquires a read lock.
func (n *Network) Len() int {
	n.mu.RLock()
	defer n.mu.RUnlock()

	return n.branches.Len()
}

// AddBranch appends a resistor of r ohms between nodes u and v (one-based).
// Thread-safe: acquires a write lock.
//
// Complexity: amortized O(1)
func (n *Network) AddBranch(u, v int, r float64) error {
	if u < 1 || u > n.nodes || v < 1 || v > n.nodes {
		return networkErrorf("AddBranch", ErrNodeOutOfRange)
	}
	if u == v {
		return networkErrorf("AddBranch", ErrSelfLoop)
	}
	if !(r > 0) || math.IsInf(r, 0) || math.IsInf(1/r, 0) {
		return networkErrorf("AddBranch", ErrBadResistance)
	}

	n.mu.Lock()
	defer n.mu.Unlock()
	n.branches.Append(branch.Branch{U: u - 1, V: v - 1, R: r})

	return nil
}

// RemoveBranch deletes the branch at one-based position pos; later branches
// move up by one.
// Thread-safe: acquires a write lock.
//
// Complexity: O(Len())
func (n *Network) RemoveBranch(pos int) error {
	n.mu.Lock()
	defer n.mu.Unlock()

	if _, err := n.branches.RemoveAt(pos - 1); err != nil {
		return networkErrorf("RemoveBranch", ErrPositionOutOfRange)
	}

	return nil
}

// RemoveBranches deletes positions from..to, one-based and inclusive, and
// returns how many branches were removed. Nothing is removed on error.
// Thread-safe: acquires a write lock.
//
// Complexity: O(Len())
func (n *Network) RemoveBranches(from, to int) (int, error) {
	n.mu.Lock()
	defer n.mu.Unlock()

	removed, err := n.branches.RemoveRange(from-1, to-1)
	if err != nil {
		return 0, networkErrorf("RemoveBranches", ErrPositionOutOfRange)
	}

	return removed, nil
}

// Clear removes every branch. The node count is unchanged.
// Thread-safe: acquires a write lock.
func (n *Network) Clear() {
	n.mu.Lock()
	defer n.mu.Unlock()

	n.branches.Clear()
}

// Branches returns one-based copies of the branches in order.
// Thread-safe: acquires a read lock.
func (n *Network) Branches() []Branch {
	stored := n.snapshot()
	out := make([]Branch, len(stored))
	for i, b := range stored {
		out[i] = Branch{Pos: i + 1, U: b.U + 1, V: b.V + 1, R: b.R}
	}

	return out
}

// Conductance builds the nodal conductance matrix of the current branches.
// Row and column i describe node i+1.
func (n *Network) Conductance() (*matrix.Dense, error) {
	g, err := nodal.BuildConductance(n.nodes, n.snapshot())
	if err != nil {
		return nil, networkErrorf("Conductance", err)
	}

	return g, nil
}

// Resistance returns the equivalent resistance between nodes a and b (one-based).
// Open circuits and singular systems are reported through the Result kind,
// not as errors.
func (n *Network) Resistance(a, b int, opts ...nodal.Option) (nodal.Result, error) {
	sol, err := n.solve("Resistance", a, b, opts...)
	if err != nil {
		return nodal.Result{}, err
	}

	return sol.Result, nil
}

// Solve is Resistance with the full reduction record. Node indices inside the
// Solution are zero-based: Voltages[i] belongs to node i+1.
func (n *Network) Solve(a, b int, opts ...nodal.Option) (*nodal.Solution, error) {
	return n.solve("Solve", a, b, opts...)
}

func (n *Network) solve(method string, a, b int, opts ...nodal.Option) (*nodal.Solution, error) {
	if a < 1 || a > n.nodes || b < 1 || b > n.nodes {
		return nil, networkErrorf(method, ErrNodeOutOfRange)
	}
	g, err := nodal.BuildConductance(n.nodes, n.snapshot())
	if err != nil {
		return nil, networkErrorf(method, err)
	}
	sol, err := nodal.Reduce(g, a-1, b-1, opts...)
	if err != nil {
		return nil, networkErrorf(method, err)
	}

	return sol, nil
}

// snapshot copies the branch list under a read lock.
func (n *Network) snapshot() []branch.Branch {
	n.mu.RLock()
	defer n.mu.RUnlock()

	return n.branches.All()
}
