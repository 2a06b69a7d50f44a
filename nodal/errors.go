// SPDX-License-Identifier: MIT
// Package nodal: sentinel errors. Numerical outcomes (singular system, open
// circuit) are NOT errors; they are reported through Result.

package nodal

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidNodeCount indicates a node count below the operation's minimum.
	ErrInvalidNodeCount = errors.New("nodal: invalid node count")

	// ErrTerminalOutOfRange indicates a terminal index outside [0, n).
	ErrTerminalOutOfRange = errors.New("nodal: terminal out of range")
)

// Operation tags for error wrapping.
const (
	opBuild  = "BuildConductance"
	opReduce = "Reduce"
)

// nodalErrorf wraps err with an operation tag, preserving it for errors.Is.
func nodalErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
