// SPDX-License-Identifier: MIT
// Package matrix - statistics over matrix entries.
//
// Purpose:
//   - Pearson correlation between two equally shaped matrices, treating each
//     as a flat sample in row-major order.
//
// Numerical policy:
//   - Two-pass algorithm (means first, then centered products) for stability.
//   - A sample with zero variance has no defined correlation: ErrDegenerate.
//   - The result is clamped to [-1, 1] against rounding drift.

package matrix

import "math"

const opPearson = "Pearson"

// pearson is the canonical implementation behind Pearson.
// Implementation:
//   - Stage 1: ValidateBinarySameShape; flatten both operands row-major.
//   - Stage 2: means; Stage 3: Σ(x-x̄)(y-ȳ), Σ(x-x̄)², Σ(y-ȳ)².
//
// Complexity: Time O(r*c), Space O(r*c) for the flat copies.
func pearson(a, b Matrix) (float64, error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return 0, matrixErrorf(opPearson, err)
	}
	xs, err := flatten(a)
	if err != nil {
		return 0, matrixErrorf(opPearson, err)
	}
	ys, err := flatten(b)
	if err != nil {
		return 0, matrixErrorf(opPearson, err)
	}

	n := float64(len(xs))
	mx, my := ZeroSum, ZeroSum
	for k := range xs {
		mx += xs[k]
		my += ys[k]
	}
	mx /= n
	my /= n

	var sxy, sxx, syy, dx, dy float64
	for k := range xs {
		dx = xs[k] - mx
		dy = ys[k] - my
		sxy += dx * dy
		sxx += dx * dx
		syy += dy * dy
	}
	if sxx == 0 || syy == 0 {
		return 0, matrixErrorf(opPearson, ErrDegenerate)
	}
	corr := sxy / math.Sqrt(sxx*syy)
	if math.IsNaN(corr) || math.IsInf(corr, 0) {
		return 0, matrixErrorf(opPearson, ErrNaNInf)
	}

	return math.Max(-1, math.Min(1, corr)), nil
}

// flatten copies m into a row-major slice.
func flatten(m Matrix) ([]float64, error) {
	if d, ok := m.(*Dense); ok {
		out := make([]float64, len(d.data))
		copy(out, d.data)

		return out, nil
	}

	r, c := m.Rows(), m.Cols()
	out := make([]float64, 0, r*c)
	var v float64
	var err error
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, err
			}
			out = append(out, v)
		}
	}

	return out, nil
}
