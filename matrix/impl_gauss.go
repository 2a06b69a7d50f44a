// SPDX-License-Identifier: MIT
// Package matrix: dense linear-system solver (Gaussian elimination with
// partial pivoting).
//
// Purpose:
//   - Solve A·x = b for a square dense A in O(n^3) time without extra storage.
//   - Report singularity through ErrSingular instead of producing Inf/NaN.
//
// Notes:
//   - SolveInPlace destroys its inputs; Solve works on private copies.
//   - Loop orders are fixed, so identical inputs give bit-identical outputs.

package matrix

import "fmt"

// Operation name constants for unified error wrapping.
const (
	opSolve        = "Solve"
	opSolveInPlace = "SolveInPlace"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// SolveInPlace solves a·x = b by Gaussian elimination with partial pivoting.
// MAIN DESCRIPTION:
//   - On success b holds x and a holds its upper-triangular eliminated form.
//
// Implementation:
//   - Stage 1: for each pivot column i pick the row r ≥ i with the largest |a[r][i]|
//     (ties keep the lowest row); a maximum below the pivot tolerance is singular.
//   - Stage 2: swap that row into position i in both a and b.
//   - Stage 3: subtract a[r][i]/a[i][i] times row i from every row r > i.
//   - Stage 4: back-substitute from row n-1 to row 0.
//
// Behavior highlights:
//   - Never retries. On ErrSingular a and b are left in an undefined intermediate
//     state and must not be reused.
//   - A NaN pivot column is reported as singular.
//
// Errors:
//   - ErrNilMatrix (nil a or nil b), ErrDimensionMismatch (non-square a, len(b) != n),
//     ErrSingular.
//
// Complexity:
//   - Time O(n^3), Space O(1) beyond the inputs.
func SolveInPlace(a *Dense, b []float64, opts ...Option) error {
	if a == nil {
		return matrixErrorf(opSolveInPlace, ErrNilMatrix)
	}
	if err := ValidateSquare(a); err != nil {
		return matrixErrorf(opSolveInPlace, err)
	}
	n := a.r
	if err := ValidateVecLen(b, n); err != nil {
		return matrixErrorf(opSolveInPlace, err)
	}
	tol := gatherOptions(opts...).pivotTol

	data := a.data
	var (
		i, r, c      int
		pivot        int
		baseI, baseR int
		maxv, v      float64
		factor, sum  float64
		pivotVal     float64
	)

	// Forward elimination.
	for i = 0; i < n; i++ {
		pivot = i
		maxv = abs(data[i*n+i])
		for r = i + 1; r < n; r++ {
			v = abs(data[r*n+i])
			if v > maxv { // strict: ties keep the first row
				maxv = v
				pivot = r
			}
		}
		if !(maxv >= tol) || maxv == 0 {
			return matrixErrorf(opSolveInPlace, fmt.Errorf("pivot column %d: %w", i, ErrSingular))
		}
		if pivot != i {
			a.swapRows(i, pivot)
			b[i], b[pivot] = b[pivot], b[i]
		}

		baseI = i * n
		pivotVal = data[baseI+i]
		for r = i + 1; r < n; r++ {
			baseR = r * n
			factor = data[baseR+i] / pivotVal
			if factor == 0 {
				continue // row already eliminated in this column
			}
			b[r] -= factor * b[i]
			for c = i; c < n; c++ {
				data[baseR+c] -= factor * data[baseI+c]
			}
		}
	}

	// Back substitution; b is overwritten with x from the bottom up.
	for i = n - 1; i >= 0; i-- {
		baseI = i * n
		sum = b[i]
		for c = i + 1; c < n; c++ {
			sum -= data[baseI+c] * b[c]
		}
		b[i] = sum / data[baseI+i]
	}

	return nil
}

// Solve returns x with m·x = b, leaving m and b untouched.
// It clones m into a private *Dense and b into a private slice, then runs
// SolveInPlace on the copies.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch, ErrSingular (wrapped with "Solve").
// Complexity: O(n^3) time, O(n^2) extra space.
func Solve(m Matrix, b []float64, opts ...Option) ([]float64, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return nil, matrixErrorf(opSolve, err)
	}
	if err := ValidateVecLen(b, m.Rows()); err != nil {
		return nil, matrixErrorf(opSolve, err)
	}

	work, err := toDense(m)
	if err != nil {
		return nil, matrixErrorf(opSolve, err)
	}
	x := make([]float64, len(b))
	copy(x, b)

	if err = SolveInPlace(work, x, opts...); err != nil {
		return nil, matrixErrorf(opSolve, err)
	}

	return x, nil
}

// abs is math.Abs without the function-call indirection in hot loops.
func abs(v float64) float64 {
	if v < 0 {
		return -v
	}

	return v
}
