// SPDX-License-Identifier: MIT

// Package network is the user-facing model of a resistor network.
//
// A Network has a fixed number of nodes, numbered from 1, and an ordered list
// of branches, also numbered from 1 in insertion order. Removing a branch
// renumbers the ones after it. Every query rebuilds the conductance matrix
// from the current branch list, so results always reflect the latest edits.
//
// Unlike the lower-level packages, Network validates its input: AddBranch
// rejects unknown nodes, self-loops and non-positive resistances instead of
// storing branches that would be ignored later.
//
// A Network is safe for concurrent use. Mutations take a write lock; queries
// take a read lock only while they copy the branch list and then solve
// without holding it.
//
// Example:
//
//	net, _ := network.New(3)
//	_ = net.AddBranch(1, 2, 2)
//	_ = net.AddBranch(2, 3, 3)
//	res, _ := net.Resistance(1, 3)
//	fmt.Println(res) // 5 ohm
package network
