// SPDX-License-Identifier: MIT

// Package nodal turns a resistor network into its nodal conductance matrix and
// reduces that matrix to the equivalent resistance between two terminals.
//
// The method is the unit test voltage: terminal A is held at 1 V, terminal B at
// 0 V, Kirchhoff's current law at every other node gives a reduced linear
// system in the unknown voltages, and the resistance is 1/I where I is the
// current leaving A.
//
// Node indices in this package are zero-based. Every outcome of a well-formed
// query is a Result:
//
//	KindResistance   finite R_eq (0 when the terminals coincide)
//	KindOpenCircuit  no conducting path between the terminals
//	KindSingular     the reduced system has no unique solution
//
// Only malformed input (nil matrix, wrong shape, terminal out of range) is an
// error.
//
// Islands: a node with no conducting path to either terminal has no fixed
// potential, so its row in the reduced system is singular. By default such
// nodes are pruned before solving and reported in Solution.Floating;
// WithIslandPruning(false) keeps them and lets the solver report Singular.
//
// Example:
//
//	g, _ := nodal.BuildConductance(3, []branch.Branch{{U: 0, V: 1, R: 2}, {U: 1, V: 2, R: 3}})
//	res, _ := nodal.EquivalentResistance(g, 0, 2)
//	fmt.Println(res) // 5 ohm
package nodal
