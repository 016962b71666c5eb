// SPDX-License-Identifier: MIT

package entity

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/magiccoupling/coupling"
	"github.com/katalvlaran/magiccoupling/magic"
	"github.com/katalvlaran/magiccoupling/matrix"
)

const opIntrinsic = "entity.Intrinsic"

// Intrinsic derives the square matrix of rec.
//   - Bound records: the approximate square of rec.Order, unmodulated.
//   - Elementary records: the canonical square of rec.Order when one exists,
//     else the approximate square, scaled by rec.Modulation().
//
// rng is only drawn from on the approximation path and may be nil otherwise.
//
// Errors: ErrInvalidRecord, coupling.ErrNeedRand.
func Intrinsic(rec Record, rng *rand.Rand) (*matrix.Dense, error) {
	if err := rec.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", opIntrinsic, err)
	}

	b := coupling.NewBuilder()
	if rec.Bound() {
		m, err := b.Approximate(rec.Order, rng)
		if err != nil {
			return nil, fmt.Errorf("%s(%s): %w", opIntrinsic, rec.ID, err)
		}
		return m, nil
	}

	base, ok := magic.Canonical(rec.Order)
	if !ok {
		var err error
		if base, err = b.Approximate(rec.Order, rng); err != nil {
			return nil, fmt.Errorf("%s(%s): %w", opIntrinsic, rec.ID, err)
		}
	}

	f := rec.Modulation()
	if err := base.Apply(func(_, _ int, v float64) float64 { return v * f }); err != nil {
		return nil, fmt.Errorf("%s(%s): %w", opIntrinsic, rec.ID, err)
	}

	return base, nil
}

// Entity is a record together with its derived matrix.
// It implements coupling.MatrixSource.
type Entity struct {
	Record
	m *matrix.Dense
}

// New derives the intrinsic matrix of rec and wraps both.
func New(rec Record, rng *rand.Rand) (*Entity, error) {
	m, err := Intrinsic(rec, rng)
	if err != nil {
		return nil, err
	}

	return &Entity{Record: rec, m: m}, nil
}

// Matrix returns the intrinsic matrix. Callers must not mutate it.
func (e *Entity) Matrix() matrix.Matrix { return e.m }

// Order returns the record order, which always equals the matrix order.
func (e *Entity) Order() int { return e.Record.Order }

var _ coupling.MatrixSource = (*Entity)(nil)
