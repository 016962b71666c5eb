// SPDX-License-Identifier: MIT

package coupling

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/magiccoupling/matrix"
)

const opCompose = "coupling.Compose"

// Composer merges two square matrices into a block-diagonal composite.
type Composer struct {
	sigma float64
}

// NewComposer returns a Composer using the perturbation option.
func NewComposer(opts ...Option) *Composer {
	cfg := newConfig(opts...)

	return &Composer{sigma: cfg.sigma}
}

// Compose returns the (Na+Nb)×(Na+Nb) composite
//
//	C = P + blockdiag(strength·a, strength·b)
//
// where P[i,j] = sigma·N(0,1) drawn in row-major order from rng.
// MAIN DESCRIPTION:
//   - Off-diagonal blocks carry perturbation only.
//   - Inputs are never mutated; rng may be nil only when sigma is 0.
//
// Errors:
//   - ErrInvalidInput (nil/non-square a or b), ErrInvalidPolicy (strength),
//     ErrNeedRand.
//
// Complexity: O((Na+Nb)²).
func (c *Composer) Compose(a, b matrix.Matrix, strength float64, rng *rand.Rand) (*matrix.Dense, error) {
	if err := validateSquare(a); err != nil {
		return nil, fmt.Errorf("%s: a: %w", opCompose, err)
	}
	if err := validateSquare(b); err != nil {
		return nil, fmt.Errorf("%s: b: %w", opCompose, err)
	}
	if err := (Policy{Strength: strength}).Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", opCompose, err)
	}
	if rng == nil && c.sigma > 0 {
		return nil, fmt.Errorf("%s: %w", opCompose, ErrNeedRand)
	}

	na, nb := a.Rows(), b.Rows()
	n := na + nb
	out, err := matrix.NewDense(n, n)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opCompose, err)
	}

	// Stage 1: perturbation, row-major.
	if c.sigma > 0 {
		sigma := c.sigma
		if err = out.Apply(func(_, _ int, _ float64) float64 { return sigma * rng.NormFloat64() }); err != nil {
			return nil, fmt.Errorf("%s: %w", opCompose, err)
		}
	}

	// Stage 2: stamp the scaled inputs onto the diagonal blocks.
	top, err := out.View(0, 0, na, na)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opCompose, err)
	}
	if err = top.AddScaled(a, strength); err != nil {
		return nil, fmt.Errorf("%s: %w: %w", opCompose, ErrInvalidInput, err)
	}
	bottom, err := out.View(na, na, nb, nb)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opCompose, err)
	}
	if err = bottom.AddScaled(b, strength); err != nil {
		return nil, fmt.Errorf("%s: %w: %w", opCompose, ErrInvalidInput, err)
	}

	return out, nil
}

// validateSquare rejects nil, empty and non-square matrices with ErrInvalidInput,
// keeping the matrix sentinel in the chain.
func validateSquare(m matrix.Matrix) error {
	if err := matrix.ValidateSquareNonNil(m); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	if m.Rows() == 0 {
		return fmt.Errorf("%w: %w", ErrInvalidInput, matrix.ErrInvalidDimensions)
	}

	return nil
}
