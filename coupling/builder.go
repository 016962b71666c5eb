// SPDX-License-Identifier: MIT

package coupling

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/magiccoupling/magic"
	"github.com/katalvlaran/magiccoupling/matrix"
)

const (
	opBuild   = "coupling.Build"
	opProject = "coupling.Project"

	// minOrder is the smallest order a magic-square candidate can have.
	minOrder = 3

	// approxNoise is the relative stdev of the approximation noise (x avg).
	approxNoise = 0.1
)

// Builder constructs candidate squares of a requested order.
type Builder struct{}

// NewBuilder returns a Builder.
func NewBuilder() *Builder { return &Builder{} }

// Build returns a candidate of the given order.
// Implementation:
//   - Stage 1: the canonical square when the catalog has this order (PathCanonical).
//   - Stage 2: otherwise a normalized approximation (PathApproximate):
//     uniform avg = S/N with S = N(N²+1)/2, plus N(0, (0.1·avg)²) noise drawn
//     row-major, then one row rescale pass to S and one column pass to S.
//     The column pass disturbs the row sums again; the residual is kept.
//
// Errors:
//   - ErrInvalidOrder (order < 3), ErrNeedRand (approximation without rng),
//     ErrNumericFailure (zero row or column sum).
//
// On error the returned Path names the construction that failed, or PathNone
// for an invalid order.
//
// Complexity: O(N²).
func (b *Builder) Build(order int, rng *rand.Rand) (*matrix.Dense, Path, error) {
	if order < minOrder {
		return nil, PathNone, fmt.Errorf("%s(%d): %w", opBuild, order, ErrInvalidOrder)
	}
	if m, ok := magic.Canonical(order); ok {
		return m, PathCanonical, nil
	}
	m, err := b.Approximate(order, rng)
	if err != nil {
		return nil, PathApproximate, err
	}

	return m, PathApproximate, nil
}

// Approximate always takes the approximation path, even for orders the
// catalog covers.
func (b *Builder) Approximate(order int, rng *rand.Rand) (*matrix.Dense, error) {
	if order < minOrder {
		return nil, fmt.Errorf("%s(%d): %w", opBuild, order, ErrInvalidOrder)
	}
	if rng == nil {
		return nil, fmt.Errorf("%s(%d): %w", opBuild, order, ErrNeedRand)
	}
	m, err := approximate(order, rng)
	if err != nil {
		return nil, fmt.Errorf("%s(%d): %w", opBuild, order, err)
	}

	return m, nil
}

func approximate(order int, rng *rand.Rand) (*matrix.Dense, error) {
	target := magic.TheoreticalConstant(order)
	avg := target / float64(order)
	sd := approxNoise * avg

	m, err := matrix.NewDense(order, order)
	if err != nil {
		return nil, err
	}
	if err = m.Apply(func(_, _ int, _ float64) float64 { return avg + sd*rng.NormFloat64() }); err != nil {
		return nil, err
	}

	// Row pass.
	rows, err := matrix.RowSums(m)
	if err != nil {
		return nil, err
	}
	factors, err := rescaleFactors(rows, target)
	if err != nil {
		return nil, fmt.Errorf("row pass: %w", err)
	}
	if m, err = matrix.ScaleRows(m, factors); err != nil {
		return nil, fmt.Errorf("%w: row pass: %w", ErrNumericFailure, err)
	}

	// Column pass.
	cols, err := matrix.ColSums(m)
	if err != nil {
		return nil, err
	}
	if factors, err = rescaleFactors(cols, target); err != nil {
		return nil, fmt.Errorf("column pass: %w", err)
	}
	if m, err = matrix.ScaleCols(m, factors); err != nil {
		return nil, fmt.Errorf("%w: column pass: %w", ErrNumericFailure, err)
	}

	return m, nil
}

// rescaleFactors returns target/s for every sum s, failing on a zero sum.
func rescaleFactors(sums []float64, target float64) ([]float64, error) {
	out := make([]float64, len(sums))
	for i, s := range sums {
		if s == 0 {
			return nil, fmt.Errorf("line %d sums to zero: %w", i, ErrNumericFailure)
		}
		out[i] = target / s
	}

	return out, nil
}

// Project returns the leading order×order block of the rank-order
// reconstruction of source (A·V_k·V_kᵀ with k = order).
//
// Errors:
//   - ErrInvalidOrder (order < 3 or order > source order),
//     ErrInvalidInput (nil/non-square source), ErrNumericFailure (SVD).
//
// Complexity: one SVD of the source, O(N³) for small N.
func (b *Builder) Project(source matrix.Matrix, order int) (*matrix.Dense, error) {
	if order < minOrder {
		return nil, fmt.Errorf("%s(%d): %w", opProject, order, ErrInvalidOrder)
	}
	if err := validateSquare(source); err != nil {
		return nil, fmt.Errorf("%s: %w", opProject, err)
	}
	if order > source.Rows() {
		return nil, fmt.Errorf("%s(%d): source order %d: %w", opProject, order, source.Rows(), ErrInvalidOrder)
	}

	rec, err := matrix.LowRank(source, order)
	if err != nil {
		return nil, fmt.Errorf("%s(%d): %w: %w", opProject, order, ErrNumericFailure, err)
	}
	lead, err := rec.Leading(order)
	if err != nil {
		return nil, fmt.Errorf("%s(%d): %w", opProject, order, err)
	}

	return lead, nil
}
