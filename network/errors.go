// SPDX-License-Identifier: MIT
// Package network: sentinel errors for caller-level validation.

package network

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidNodeCount indicates fewer than two nodes.
	ErrInvalidNodeCount = errors.New("network: node count must be at least 2")

	// ErrNodeOutOfRange indicates a node number outside [1, Nodes()].
	ErrNodeOutOfRange = errors.New("network: node out of range")

	// ErrSelfLoop indicates a branch whose ends are the same node.
	ErrSelfLoop = errors.New("network: branch connects a node to itself")

	// ErrBadResistance indicates a resistance that is not finite and positive.
	ErrBadResistance = errors.New("network: resistance must be finite and positive")

	// ErrPositionOutOfRange indicates a branch position outside [1, Len()].
	ErrPositionOutOfRange = errors.New("network: branch position out of range")
)

// networkErrorf wraps err with the method name, preserving it for errors.Is.
func networkErrorf(method string, err error) error {
	return fmt.Errorf("Network.%s: %w", method, err)
}
