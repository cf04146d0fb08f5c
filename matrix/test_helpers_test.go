// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   - Provide small, deterministic fixtures for the Dense type and kernels.
//   - Keep all data finite so the numeric policy never interferes.

package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/riemann/matrix"
)

// hide wraps any Matrix to hide its concrete type, forcing the generic
// At-based path of AsDense in code under test.
type hide struct{ matrix.Matrix }

// MustDense allocates an r×c *Dense or fails the test.
func MustDense(tb testing.TB, r, c int) *matrix.Dense {
	tb.Helper()
	m, err := matrix.NewDense(r, c)
	require.NoError(tb, err)

	return m
}

// MustFrom builds a *Dense from literal rows or fails the test.
func MustFrom(tb testing.TB, rows [][]float64) *matrix.Dense {
	tb.Helper()
	m, err := matrix.NewDenseFrom(rows)
	require.NoError(tb, err)

	return m
}

// MustAt reads (i,j) or fails the test.
func MustAt(tb testing.TB, m matrix.Matrix, i, j int) float64 {
	tb.Helper()
	v, err := m.At(i, j)
	require.NoError(tb, err)

	return v
}

// RandomDense fills an r×c *Dense with values in [-1, 1) from a fixed seed.
func RandomDense(tb testing.TB, r, c int, seed int64) *matrix.Dense {
	tb.Helper()
	rng := rand.New(rand.NewSource(seed))
	m := MustDense(tb, r, c)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			require.NoError(tb, m.Set(i, j, 2*rng.Float64()-1))
		}
	}

	return m
}

// RequireRows compares every cell of m to want within tol.
func RequireRows(tb testing.TB, want [][]float64, m matrix.Matrix, tol float64) {
	tb.Helper()
	require.Equal(tb, len(want), m.Rows(), "rows")
	for i := range want {
		require.Equal(tb, len(want[i]), m.Cols(), "cols")
		for j := range want[i] {
			require.InDeltaf(tb, want[i][j], MustAt(tb, m, i, j), tol, "cell (%d,%d)", i, j)
		}
	}
}
