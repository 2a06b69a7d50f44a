package mesh

import "errors"

var (
	// ErrEmptyGrid indicates the input 2D slice is empty.
	ErrEmptyGrid = errors.New("mesh: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("mesh: all rows must have the same length")
	// ErrTooFewNodes indicates a grid with fewer than two node cells.
	ErrTooFewNodes = errors.New("mesh: grid must contain at least two nodes")
	// ErrBadResistance indicates a branch resistance that is not finite and positive.
	ErrBadResistance = errors.New("mesh: resistance must be finite and positive")
	// ErrCellOutOfRange indicates coordinates outside the grid.
	ErrCellOutOfRange = errors.New("mesh: cell out of range")
	// ErrHole indicates a cell below the threshold.
	ErrHole = errors.New("mesh: cell is a hole")
)
