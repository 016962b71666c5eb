// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Private element-wise and broadcast micro-kernels (ew*) shared by the
//     facades and by magic-square normalization (row pass, column pass).
//
// Determinism & Performance:
//   - Fixed loop orders; Dense fast path walks the flat buffer.
//   - Exactly one output allocation per call.

package matrix

import "math"

const (
	opScaleRows = "ScaleRows"
	opScaleCols = "ScaleCols"
	opAllClose  = "AllClose"
)

// ewScaleCols computes out[i,j] = X[i,j] * scale[j].
// Time: O(r*c). Space: O(r*c).
func ewScaleCols(X Matrix, scale []float64) (*Dense, error) {
	if err := ValidateNotNil(X); err != nil {
		return nil, matrixErrorf(opScaleCols, err)
	}
	r, c := X.Rows(), X.Cols()
	if err := ValidateVecLen(scale, c); err != nil {
		return nil, matrixErrorf(opScaleCols, err)
	}
	out, err := NewDense(r, c)
	if err != nil {
		return nil, matrixErrorf(opScaleCols, err)
	}

	var i, j int
	var v float64
	if d, ok := X.(*Dense); ok {
		for i = 0; i < r; i++ {
			base := i * c
			for j = 0; j < c; j++ {
				out.data[base+j] = d.data[base+j] * scale[j]
			}
		}

		if err = checkFinite(opScaleCols, out); err != nil {
			return nil, err
		}

		return out, nil
	}

	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			if v, err = X.At(i, j); err != nil {
				return nil, matrixErrorf(opScaleCols, err)
			}
			if err = out.Set(i, j, v*scale[j]); err != nil {
				return nil, matrixErrorf(opScaleCols, err)
			}
		}
	}

	return out, nil
}

// ewScaleRows computes out[i,j] = X[i,j] * scale[i].
// Time: O(r*c). Space: O(r*c).
func ewScaleRows(X Matrix, scale []float64) (*Dense, error) {
	if err := ValidateNotNil(X); err != nil {
		return nil, matrixErrorf(opScaleRows, err)
	}
	r, c := X.Rows(), X.Cols()
	if err := ValidateVecLen(scale, r); err != nil {
		return nil, matrixErrorf(opScaleRows, err)
	}
	out, err := NewDense(r, c)
	if err != nil {
		return nil, matrixErrorf(opScaleRows, err)
	}

	var i, j int
	var v, sf float64
	if d, ok := X.(*Dense); ok {
		for i = 0; i < r; i++ {
			base := i * c
			sf = scale[i]
			for j = 0; j < c; j++ {
				out.data[base+j] = d.data[base+j] * sf
			}
		}

		if err = checkFinite(opScaleRows, out); err != nil {
			return nil, err
		}

		return out, nil
	}

	for i = 0; i < r; i++ {
		sf = scale[i]
		for j = 0; j < c; j++ {
			if v, err = X.At(i, j); err != nil {
				return nil, matrixErrorf(opScaleRows, err)
			}
			if err = out.Set(i, j, v*sf); err != nil {
				return nil, matrixErrorf(opScaleRows, err)
			}
		}
	}

	return out, nil
}

// checkFinite rejects a fast-path result carrying NaN or ±Inf.
func checkFinite(tag string, d *Dense) error {
	for _, v := range d.data {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return matrixErrorf(tag, ErrNaNInf)
		}
	}

	return nil
}

// ewAllClose checks |a-b| ≤ atol + rtol*|b| for every element pair.
// Returns (false, nil) on the first violation. NaN never compares close.
// Time: O(r*c). Space: O(1).
func ewAllClose(a, b Matrix, rtol, atol float64) (bool, error) {
	if math.IsNaN(rtol) || math.IsNaN(atol) || math.IsInf(rtol, 0) || math.IsInf(atol, 0) {
		return false, matrixErrorf(opAllClose, ErrNaNInf)
	}
	rtol, atol = math.Abs(rtol), math.Abs(atol)
	if err := ValidateBinarySameShape(a, b); err != nil {
		return false, matrixErrorf(opAllClose, err)
	}

	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			for k := range da.data {
				if !(math.Abs(da.data[k]-db.data[k]) <= atol+rtol*math.Abs(db.data[k])) {
					return false, nil
				}
			}

			return true, nil
		}
	}

	r, c := a.Rows(), a.Cols()
	var av, bv float64
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			av, _ = a.At(i, j) // shape validated above
			bv, _ = b.At(i, j)
			if !(math.Abs(av-bv) <= atol+rtol*math.Abs(bv)) {
				return false, nil
			}
		}
	}

	return true, nil
}
