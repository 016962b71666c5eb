// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Cache-friendly row-major buffer with the index formula i*cols + j.
//   - Safety at the public surface: At/Set return errors instead of panicking.
//   - Deterministic traversal (fixed i→j loops, no map iteration).
//   - No-copy windows (MatrixView) and copy-based submatrices (Induced).
//
// Complexity quicksheet:
//   - NewDense: O(r*c); At/Set: O(1); Clone: O(r*c); View: O(1); Induced: O(r'*c').

package matrix

import (
	"fmt"
	"math"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxAt     = "At"
	ctxSet    = "Set"
	ctxApply  = "Apply"
	ctxView   = "View"
	ctxInduce = "Induced"
	ctxFrom   = "NewDenseFrom"
)

// ---------- formatting literals ----------

const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// DefaultValidateNaNInf is the numeric policy applied by every public constructor:
// Set and Apply reject NaN and ±Inf.
const DefaultValidateNaNInf = true

// denseErrorf attaches method context and coordinates to a sentinel.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a concrete row-major matrix.
//   - r,c hold dimensions.
//   - data is a flat buffer of length r*c (offset = i*c + j).
//   - validateNaNInf rejects non-finite writes when true.
type Dense struct {
	r, c           int
	data           []float64
	validateNaNInf bool
}

// Compile-time assertions.
var (
	_ Matrix       = (*Dense)(nil)
	_ fmt.Stringer = (*Dense)(nil)
)

// NewDense creates an r×c zero matrix.
//
// Errors:
//   - ErrInvalidDimensions when rows<=0 or cols<=0.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDense(rows, cols int) (*Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}

	return &Dense{
		r:              rows,
		c:              cols,
		data:           make([]float64, rows*cols), // zero-filled
		validateNaNInf: DefaultValidateNaNInf,
	}, nil
}

// NewDenseFrom copies a rectangular [][]float64 into a new Dense.
// MAIN DESCRIPTION:
//   - Literal constructor for fixtures, canonical squares and decoded config.
//
// Implementation:
//   - Stage 1: reject empty input and ragged rows.
//   - Stage 2: copy row by row, rejecting NaN/±Inf.
//
// Errors:
//   - ErrInvalidDimensions (no rows or empty first row), ErrBadShape (ragged),
//     ErrNaNInf (non-finite cell).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDenseFrom(rows [][]float64) (*Dense, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, fmt.Errorf("%s: %w", ctxFrom, ErrInvalidDimensions)
	}
	r, c := len(rows), len(rows[0])
	m, err := NewDense(r, c)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ctxFrom, err)
	}

	var i, j int
	var v float64
	for i = 0; i < r; i++ {
		if len(rows[i]) != c {
			return nil, fmt.Errorf("%s: row %d has %d cols, want %d: %w", ctxFrom, i, len(rows[i]), c, ErrBadShape)
		}
		for j = 0; j < c; j++ {
			v = rows[i][j]
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, denseErrorf(ctxFrom, i, j, ErrNaNInf)
			}
			m.data[i*c+j] = v
		}
	}

	return m, nil
}

// Rows returns the row count.
func (m *Dense) Rows() int { return m.r }

// Cols returns the column count.
func (m *Dense) Cols() int { return m.c }

// indexOf bounds-checks (row,col) and returns the flat offset.
// Returns the bare sentinel; public methods wrap it with their own context.
func (m *Dense) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.r {
		return 0, ErrOutOfRange
	}
	if col < 0 || col >= m.c {
		return 0, ErrOutOfRange
	}

	return row*m.c + col, nil
}

// At returns the value at (row, col) or ErrOutOfRange.
// Complexity: O(1).
func (m *Dense) At(row, col int) (float64, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		return 0, denseErrorf(ctxAt, row, col, err)
	}

	return m.data[off], nil
}

// Set stores v at (row, col).
//
// Errors:
//   - ErrOutOfRange for bounds; ErrNaNInf for non-finite v under the numeric policy.
//
// Complexity: O(1).
func (m *Dense) Set(row, col int, v float64) error {
	off, err := m.indexOf(row, col)
	if err != nil {
		return denseErrorf(ctxSet, row, col, err)
	}
	if m.validateNaNInf && (math.IsNaN(v) || math.IsInf(v, 0)) {
		return denseErrorf(ctxSet, row, col, ErrNaNInf)
	}
	m.data[off] = v

	return nil
}

// Clone returns a deep copy with the same numeric policy.
// Complexity: O(r*c).
func (m *Dense) Clone() Matrix {
	cp := make([]float64, len(m.data))
	copy(cp, m.data)

	return &Dense{
		r:              m.r,
		c:              m.c,
		data:           cp,
		validateNaNInf: m.validateNaNInf,
	}
}

// RawRows returns a [][]float64 copy of the matrix, row by row.
// Intended for encoders (YAML/JSON) and printing; mutations do not reach m.
func (m *Dense) RawRows() [][]float64 {
	out := make([][]float64, m.r)
	for i := 0; i < m.r; i++ {
		row := make([]float64, m.c)
		copy(row, m.data[i*m.c:(i+1)*m.c])
		out[i] = row
	}

	return out
}

// String renders rows as bracketed, comma-separated lines. Not for hot paths.
func (m *Dense) String() string {
	var b strings.Builder
	var i, j, base int
	for i = 0; i < m.r; i++ {
		b.WriteString(_fmtRowOpen)
		base = i * m.c
		for j = 0; j < m.c; j++ {
			b.WriteString(fmt.Sprintf("%g", m.data[base+j]))
			if j+1 < m.c {
				b.WriteString(_fmtSep)
			}
		}
		b.WriteString(_fmtRowClose)
	}

	return b.String()
}

// View creates a no-copy window [r0:r0+rows, c0:c0+cols) over the same storage.
// MAIN DESCRIPTION:
//   - Writes through the view land in the base buffer; the numeric policy is inherited.
//
// Errors:
//   - ErrBadShape when the window does not fit inside the base.
//
// Complexity:
//   - Time O(1), Space O(1).
//
// Notes:
//   - MatrixView does not implement Matrix, so kernels never receive a
//     window by accident and copy it.
func (m *Dense) View(r0, c0, rows, cols int) (*MatrixView, error) {
	if r0 < 0 || c0 < 0 || rows < 0 || cols < 0 || r0+rows > m.r || c0+cols > m.c {
		return nil, fmt.Errorf("Dense.%s(%d,%d,%d,%d): %w", ctxView, r0, c0, rows, cols, ErrBadShape)
	}

	return &MatrixView{base: m, r0: r0, c0: c0, r: rows, c: cols}, nil
}

// Induced materializes a copy of the rows/cols at the given index lists.
// Duplicates are allowed. A zero-length index list yields a legal zero-area Dense.
//
// Errors:
//   - ErrOutOfRange for any index outside the base.
//
// Complexity:
//   - Time O(rp*cp), Space O(rp*cp).
func (m *Dense) Induced(rowsIdx, colsIdx []int) (*Dense, error) {
	rp, cp := len(rowsIdx), len(colsIdx)
	if rp == 0 || cp == 0 {
		return &Dense{r: rp, c: cp, data: make([]float64, 0), validateNaNInf: m.validateNaNInf}, nil
	}

	res, err := NewDense(rp, cp)
	if err != nil {
		return nil, err
	}
	res.validateNaNInf = m.validateNaNInf

	var i, j, ri, cj int
	for i = 0; i < rp; i++ {
		ri = rowsIdx[i]
		if ri < 0 || ri >= m.r {
			return nil, fmt.Errorf("Dense.%s: row index %d: %w", ctxInduce, ri, ErrOutOfRange)
		}
		for j = 0; j < cp; j++ {
			cj = colsIdx[j]
			if cj < 0 || cj >= m.c {
				return nil, fmt.Errorf("Dense.%s: col index %d: %w", ctxInduce, cj, ErrOutOfRange)
			}
			res.data[i*cp+j] = m.data[ri*m.c+cj]
		}
	}

	return res, nil
}

// Leading returns a copy of the top-left k×k block.
// Errors: ErrOutOfRange when k exceeds either dimension, ErrInvalidDimensions when k<=0.
func (m *Dense) Leading(k int) (*Dense, error) {
	if k <= 0 {
		return nil, ErrInvalidDimensions
	}
	idx := make([]int, k)
	for i := range idx {
		idx[i] = i
	}

	return m.Induced(idx, idx)
}

// MatrixView is a non-owning window into a Dense.
type MatrixView struct {
	base *Dense
	r0   int
	c0   int
	r    int
	c    int
}

// Rows returns the view height.
func (v *MatrixView) Rows() int { return v.r }

// Cols returns the view width.
func (v *MatrixView) Cols() int { return v.c }

// At reads element (i,j) of the view.
func (v *MatrixView) At(i, j int) (float64, error) {
	if i < 0 || i >= v.r || j < 0 || j >= v.c {
		return 0, fmt.Errorf("MatrixView.At(%d,%d): %w", i, j, ErrOutOfRange)
	}

	return v.base.data[(v.r0+i)*v.base.c+(v.c0+j)], nil
}

// Set writes element (i,j) through to the base, honoring the base numeric policy.
func (v *MatrixView) Set(i, j int, val float64) error {
	if i < 0 || i >= v.r || j < 0 || j >= v.c {
		return fmt.Errorf("MatrixView.Set(%d,%d): %w", i, j, ErrOutOfRange)
	}
	if v.base.validateNaNInf && (math.IsNaN(val) || math.IsInf(val, 0)) {
		return fmt.Errorf("MatrixView.Set(%d,%d): %w", i, j, ErrNaNInf)
	}
	v.base.data[(v.r0+i)*v.base.c+(v.c0+j)] = val

	return nil
}

// AddScaled accumulates alpha*src into the view element-wise (view += alpha*src).
// MAIN DESCRIPTION:
//   - Block embedding primitive: used to stamp a smaller matrix into a window
//     of a larger one without materializing intermediates.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (src shape != view shape), ErrNaNInf.
//
// Complexity:
//   - Time O(r*c), Space O(1).
func (v *MatrixView) AddScaled(src Matrix, alpha float64) error {
	if err := ValidateNotNil(src); err != nil {
		return fmt.Errorf("MatrixView.AddScaled: %w", err)
	}
	if src.Rows() != v.r || src.Cols() != v.c {
		return fmt.Errorf("MatrixView.AddScaled: %w", ErrDimensionMismatch)
	}

	var i, j, off int
	var sv, nv float64
	var err error
	for i = 0; i < v.r; i++ {
		for j = 0; j < v.c; j++ {
			if sv, err = src.At(i, j); err != nil {
				return fmt.Errorf("MatrixView.AddScaled: %w", err)
			}
			off = (v.r0+i)*v.base.c + (v.c0 + j)
			nv = v.base.data[off] + alpha*sv
			if v.base.validateNaNInf && (math.IsNaN(nv) || math.IsInf(nv, 0)) {
				return fmt.Errorf("MatrixView.AddScaled(%d,%d): %w", i, j, ErrNaNInf)
			}
			v.base.data[off] = nv
		}
	}

	return nil
}

// Do visits each element in row-major order; stops early when f returns false.
// Complexity: O(r*c), no allocations.
func (m *Dense) Do(f func(i, j int, v float64) bool) {
	var i, j, base int
	for i = 0; i < m.r; i++ {
		base = i * m.c
		for j = 0; j < m.c; j++ {
			if !f(i, j, m.data[base+j]) {
				return
			}
		}
	}
}

// Apply replaces each element with f(i,j,v) in place, row-major.
// Elements written before a policy violation stay updated; transform a
// Clone for all-or-nothing semantics.
//
// Errors:
//   - ErrNaNInf when f produced a non-finite value under the numeric policy.
func (m *Dense) Apply(f func(i, j int, v float64) float64) error {
	var i, j, base int
	var nv float64
	for i = 0; i < m.r; i++ {
		base = i * m.c
		for j = 0; j < m.c; j++ {
			nv = f(i, j, m.data[base+j])
			if m.validateNaNInf && (math.IsNaN(nv) || math.IsInf(nv, 0)) {
				return denseErrorf(ctxApply, i, j, ErrNaNInf)
			}
			m.data[base+j] = nv
		}
	}

	return nil
}
