// SPDX-License-Identifier: MIT
package coupling_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/magiccoupling/magic"
	"github.com/katalvlaran/magiccoupling/matrix"
	"github.com/stretchr/testify/require"
)

// MustCanonical returns the catalog square of the given order or fails.
func MustCanonical(t testing.TB, order int) *matrix.Dense {
	t.Helper()
	m, ok := magic.Canonical(order)
	require.Truef(t, ok, "no canonical square of order %d", order)

	return m
}

// MustDenseFrom copies rows into a *Dense or fails.
func MustDenseFrom(t testing.TB, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDenseFrom(rows)
	require.NoError(t, err)

	return m
}

// MustScale returns alpha*m as a *Dense.
func MustScale(t testing.TB, m matrix.Matrix, alpha float64) *matrix.Dense {
	t.Helper()
	s, err := matrix.Scale(m, alpha)
	require.NoError(t, err)

	return s.(*matrix.Dense)
}

// BlockDiag returns blockdiag(a, b) without perturbation.
func BlockDiag(t testing.TB, a, b *matrix.Dense) *matrix.Dense {
	t.Helper()
	na, nb := a.Rows(), b.Rows()
	out, err := matrix.NewDense(na+nb, na+nb)
	require.NoError(t, err)
	top, err := out.View(0, 0, na, na)
	require.NoError(t, err)
	require.NoError(t, top.AddScaled(a, 1))
	bottom, err := out.View(na, na, nb, nb)
	require.NoError(t, err)
	require.NoError(t, bottom.AddScaled(b, 1))

	return out
}

// Diag returns an n×n matrix with v on the diagonal.
func Diag(t testing.TB, n int, v float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDense(n, n)
	require.NoError(t, err)
	for i := 0; i < n; i++ {
		require.NoError(t, m.Set(i, i, v))
	}

	return m
}

// RandSquare returns an n×n matrix with entries uniform in [0, 10).
func RandSquare(t testing.TB, n int, seed int64) *matrix.Dense {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	m, err := matrix.NewDense(n, n)
	require.NoError(t, err)
	require.NoError(t, m.Apply(func(_, _ int, _ float64) float64 { return rng.Float64() * 10 }))

	return m
}

// hide masks the concrete *Dense type.
type hide struct{ matrix.Matrix }
