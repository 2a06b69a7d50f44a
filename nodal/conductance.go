package nodal

import (
	"github.com/katalvlaran/ohmnet/branch"
	"github.com/katalvlaran/ohmnet/matrix"
)

// BuildConductance returns the n×n nodal conductance matrix of branches.
//
// For every meaningful branch (see branch.Branch.Conductance) with g = 1/R:
//
//	G[u][u] += g; G[v][v] += g; G[u][v] -= g; G[v][u] -= g
//
// Parallel branches accumulate. Inert branches (bad node index, self-loop,
// non-positive or non-finite resistance) are skipped silently and leave G
// unchanged. The result is symmetric and freshly allocated on every call.
//
// Errors: ErrInvalidNodeCount for n < 1; matrix.ErrTooLarge when n×n cannot be
// allocated; matrix.ErrNaNInf if accumulated conductances overflow float64.
func BuildConductance(n int, branches []branch.Branch) (*matrix.Dense, error) {
	if n < 1 {
		return nil, nodalErrorf(opBuild, ErrInvalidNodeCount)
	}
	g, err := matrix.NewDense(n, n)
	if err != nil {
		return nil, nodalErrorf(opBuild, err)
	}

	for _, b := range branches {
		c, ok := b.Conductance(n)
		if !ok {
			continue
		}
		if err = stamp(g, b.U, b.V, c); err != nil {
			return nil, nodalErrorf(opBuild, err)
		}
	}

	return g, nil
}

// stamp adds conductance c between nodes u and v.
func stamp(g *matrix.Dense, u, v int, c float64) error {
	if err := g.AddAt(u, u, c); err != nil {
		return err
	}
	if err := g.AddAt(v, v, c); err != nil {
		return err
	}
	if err := g.AddAt(u, v, -c); err != nil {
		return err
	}

	return g.AddAt(v, u, -c)
}
