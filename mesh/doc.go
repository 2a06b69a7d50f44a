// Package mesh builds resistor lattices from 2D grids.
//
// What:
//
//   - A Mesh wraps a rectangular [][]int grid. Cells with value ≥ Threshold are
//     nodes; the others are holes.
//   - Every pair of neighboring nodes is joined by one resistor of Ohms ohms.
//   - Conn4 joins orthogonal neighbors, Conn8 adds the diagonals.
//   - Nodes are numbered from 1 in row-major order, skipping holes, so a Mesh
//     converts directly into a *network.Network.
//
// Why:
//
//   - Lattice problems (R between grid corners, meshes with defects) are the
//     classic stress test for nodal analysis.
//   - Components exposes the islands a mask creates before a query prunes them.
//
// Complexity:
//
//   - New, Rect:   O(W×H), Memory: O(W×H).
//   - Network:     O(W×H×d) branches, d = 2 (Conn4) or 4 (Conn8) per cell.
//   - Components:  O(W×H×d), Memory: O(W×H).
//
// Errors:
//
//   - ErrEmptyGrid: input grid has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrTooFewNodes: fewer than two cells are nodes.
//   - ErrBadResistance: Options.Ohms is not finite and positive.
//   - ErrCellOutOfRange, ErrHole: Node on a cell that is not a node.
package mesh
