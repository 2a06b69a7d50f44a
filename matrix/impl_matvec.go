// SPDX-License-Identifier: MIT

package matrix

import "fmt"

const opMatVec = "MatVec"

// MatVec returns y = m·x for a column vector x.
//
// Contract: m non-nil; len(x) == m.Cols(). *Dense inputs use flat row-major
// dot products; other implementations go through At. Loop order is fixed, so
// results are deterministic.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch (wrapped with "MatVec").
// Complexity: Time O(r*c), Space O(r).
func MatVec(m Matrix, x []float64) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	if err := ValidateVecLen(x, m.Cols()); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	rows, cols := m.Rows(), m.Cols()
	y := make([]float64, rows)

	if d, ok := m.(*Dense); ok {
		var i, j, base int
		var acc float64
		for i = 0; i < d.r; i++ {
			acc = 0
			base = i * d.c
			for j = 0; j < d.c; j++ {
				if x[j] != 0 {
					acc += d.data[base+j] * x[j]
				}
			}
			y[i] = acc
		}

		return y, nil
	}

	var i, j int
	var v float64
	var err error
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, matrixErrorf(opMatVec, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			y[i] += v * x[j]
		}
	}

	return y, nil
}
