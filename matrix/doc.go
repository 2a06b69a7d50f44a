// Package matrix offers dense row-major storage and a direct linear-system
// solver for small and medium nodal systems.
//
// The matrix package provides:
//
//   - Dense, a contiguous r×c buffer addressed as data[i*cols+j] with
//     bounds-checked At/Set/AddAt and an optional finite-only numeric policy.
//   - Induced, a copy of the sub-matrix selected by explicit row/column index
//     sets; the natural way to drop fixed (boundary) unknowns from a system.
//   - SolveInPlace / Solve, Gaussian elimination with partial pivoting and a
//     pivot tolerance that turns near-singular systems into ErrSingular.
//   - Central validators (ValidateShape, ValidateSquare, ValidateSymmetric ...).
//
// Oversized shapes are rejected with ErrTooLarge before any allocation, so
// callers can refuse an unreasonable node count instead of crashing.
//
// Dense is O(r·c) memory; it is best for networks of up to a few thousand nodes.
package matrix
