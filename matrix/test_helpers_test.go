// SPDX-License-Identifier: MIT
package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/ohmnet/matrix"
	"github.com/stretchr/testify/require"
)

// MustDense allocates a rows×cols Dense or fails the test.
func MustDense(tb testing.TB, rows, cols int) *matrix.Dense {
	tb.Helper()
	m, err := matrix.NewDense(rows, cols)
	require.NoError(tb, err)

	return m
}

// MustAt reads m[i,j] or fails the test.
func MustAt(tb testing.TB, m matrix.Matrix, i, j int) float64 {
	tb.Helper()
	v, err := m.At(i, j)
	require.NoError(tb, err)

	return v
}

// MustSet writes m[i,j]=v or fails the test.
func MustSet(tb testing.TB, m matrix.Matrix, i, j int, v float64) {
	tb.Helper()
	require.NoError(tb, m.Set(i, j, v))
}

// FromRows builds a Dense from a literal row slice.
func FromRows(tb testing.TB, rows [][]float64) *matrix.Dense {
	tb.Helper()
	m := MustDense(tb, len(rows), len(rows[0]))
	for i, row := range rows {
		for j, v := range row {
			MustSet(tb, m, i, j, v)
		}
	}

	return m
}

// fillDiagDominant fills m with a deterministic, strictly diagonally dominant
// pattern so elimination never meets a small pivot.
func fillDiagDominant(tb testing.TB, m *matrix.Dense, seed int64) {
	tb.Helper()
	rng := rand.New(rand.NewSource(seed))
	n := m.Rows()
	for i := 0; i < n; i++ {
		var off float64
		for j := 0; j < n; j++ {
			if i == j {
				continue
			}
			v := rng.Float64()*2 - 1
			off += abs(v)
			MustSet(tb, m, i, j, v)
		}
		MustSet(tb, m, i, i, off+1)
	}
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}

	return v
}

// hide wraps a Matrix to hide its concrete type and force generic paths.
type hide struct{ matrix.Matrix }
