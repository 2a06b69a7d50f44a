// Package ohmnet computes the equivalent resistance between two nodes of a
// resistor network by nodal analysis.
//
// 🚀 What is ohmnet?
//
//	A small, dependency-light library plus a CLI that brings together:
//		• Dense matrices: contiguous row-major storage with checked access
//		• Linear solver: Gaussian elimination with partial pivoting
//		• Nodal analysis: conductance-matrix stamping and terminal reduction
//		• Network model: 1-based nodes and branches, safe for concurrent use
//		• Netlists: YAML files with branches and terminal pairs
//
// ✨ Why choose ohmnet?
//
//   - Honest results: open circuits and singular systems are tagged, not errors
//   - Island-aware: disconnected debris is pruned instead of breaking the solve
//   - Deterministic: identical inputs give bit-identical answers
//
// Under the hood:
//
//	matrix/     Dense matrix, validators, SolveInPlace/Solve, MatVec
//	branch/     Branch (zero-based) and the ordered branch List
//	nodal/      BuildConductance, Reduce, EquivalentResistance, tagged Result
//	network/    user-facing Network (1-based, validated, thread-safe)
//	mesh/       lattice networks from rectangular grids
//	cmd/ohmnet  solve, branches, matrix and grid commands
//
// Quick ASCII example:
//
//	    1──2Ω──2──3Ω──3
//
//	R_eq(1,3) = 5 Ω.
//
//	go install github.com/katalvlaran/ohmnet/cmd/ohmnet@latest
package ohmnet
