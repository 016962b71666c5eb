// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers.
//
// Purpose:
//   - Small, deterministic fixtures (Lo Shu, seeded random fills).
//   - Must* wrappers that abort the test on construction errors.

package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/magiccoupling/matrix"
	"github.com/stretchr/testify/require"
)

// loShu is the order-3 magic square used across the package tests.
var loShu = [][]float64{
	{8, 1, 6},
	{3, 5, 7},
	{4, 9, 2},
}

// hide wraps any Matrix to hide its concrete type from type assertions,
// forcing kernels onto the interface fallback path.
type hide struct{ matrix.Matrix }

// MustDense allocates an r×c *Dense or fails the test.
func MustDense(t testing.TB, r, c int) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDense(r, c)
	require.NoError(t, err)

	return m
}

// MustDenseFrom copies rows into a *Dense or fails the test.
func MustDenseFrom(t testing.TB, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDenseFrom(rows)
	require.NoError(t, err)

	return m
}

// RandFilledDense returns an r×c matrix with entries uniform in [-1, 1).
func RandFilledDense(t testing.TB, r, c int, seed int64) *matrix.Dense {
	t.Helper()
	m := MustDense(t, r, c)
	rng := rand.New(rand.NewSource(seed))
	var i, j int
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			require.NoError(t, m.Set(i, j, rng.Float64()*2-1))
		}
	}

	return m
}

// MustAt reads (i,j) or fails the test.
func MustAt(t testing.TB, m matrix.Matrix, i, j int) float64 {
	t.Helper()
	v, err := m.At(i, j)
	require.NoError(t, err)

	return v
}

// CompareExact asserts m equals want cell by cell (bitwise float equality).
func CompareExact(t testing.TB, want [][]float64, m matrix.Matrix) {
	t.Helper()
	require.Equal(t, len(want), m.Rows(), "rows")
	var i, j int
	for i = 0; i < m.Rows(); i++ {
		require.Equal(t, len(want[i]), m.Cols(), "cols of row %d", i)
		for j = 0; j < m.Cols(); j++ {
			require.Equalf(t, want[i][j], MustAt(t, m, i, j), "m[%d,%d]", i, j)
		}
	}
}

// CompareClose asserts |m[i,j]-want[i][j]| ≤ tol for every cell.
func CompareClose(t testing.TB, want [][]float64, m matrix.Matrix, tol float64) {
	t.Helper()
	require.Equal(t, len(want), m.Rows(), "rows")
	var i, j int
	for i = 0; i < m.Rows(); i++ {
		for j = 0; j < m.Cols(); j++ {
			require.InDeltaf(t, want[i][j], MustAt(t, m, i, j), tol, "m[%d,%d]", i, j)
		}
	}
}
