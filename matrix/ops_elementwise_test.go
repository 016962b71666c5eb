// SPDX-License-Identifier: MIT
// Package matrix_test contains unit tests for scaling and comparison helpers.
package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/magiccoupling/matrix"
	"github.com/stretchr/testify/require"
)

func TestScaleRowsCols(t *testing.T) {
	t.Parallel()

	a := MustDenseFrom(t, [][]float64{{1, 2}, {3, 4}})
	for name, m := range map[string]matrix.Matrix{"dense": a, "fallback": hide{a}} {
		t.Run(name, func(t *testing.T) {
			r, err := matrix.ScaleRows(m, []float64{2, -1})
			require.NoError(t, err)
			CompareExact(t, [][]float64{{2, 4}, {-3, -4}}, r)

			c, err := matrix.ScaleCols(m, []float64{0, 10})
			require.NoError(t, err)
			CompareExact(t, [][]float64{{0, 20}, {0, 40}}, c)
		})
	}
	CompareExact(t, [][]float64{{1, 2}, {3, 4}}, a)
}

func TestScaleRowsCols_Errors(t *testing.T) {
	a := MustDenseFrom(t, [][]float64{{1, 2}, {3, 4}})

	_, err := matrix.ScaleRows(a, []float64{1})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = matrix.ScaleCols(a, []float64{1, 2, 3})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = matrix.ScaleRows(nil, []float64{1})
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
	_, err = matrix.ScaleRows(a, []float64{math.Inf(1), 1})
	require.ErrorIs(t, err, matrix.ErrNaNInf)
	_, err = matrix.ScaleCols(hide{a}, []float64{math.NaN(), 1})
	require.ErrorIs(t, err, matrix.ErrNaNInf)
}

func TestAllClose(t *testing.T) {
	a := MustDenseFrom(t, [][]float64{{1, 2}, {3, 4}})
	b := MustDenseFrom(t, [][]float64{{1, 2}, {3, 4.001}})

	tests := []struct {
		name       string
		x, y       matrix.Matrix
		rtol, atol float64
		want       bool
	}{
		{"identical", a, a, 0, 0, true},
		{"within atol", a, b, 0, 1e-2, true},
		{"outside atol", a, b, 0, 1e-4, false},
		{"within rtol", a, b, 1e-3, 0, true},
		{"negative tol normalized", a, b, 0, -1e-2, true},
		{"fallback", hide{a}, hide{b}, 0, 1e-4, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := matrix.AllClose(tc.x, tc.y, tc.rtol, tc.atol)
			require.NoError(t, err)
			require.Equal(t, tc.want, got)
		})
	}

	_, err := matrix.AllClose(a, MustDense(t, 1, 2), 0, 0)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = matrix.AllClose(a, b, math.NaN(), 0)
	require.ErrorIs(t, err, matrix.ErrNaNInf)
}
