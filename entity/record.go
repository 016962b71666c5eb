// SPDX-License-Identifier: MIT

package entity

import (
	"fmt"
	"math"
	"strings"
)

// Attribute keys understood by Intrinsic. Other keys are carried as data.
const (
	AttrCharge       = "charge"
	AttrSpin         = "spin"
	AttrLeptonNumber = "lepton_number"
	AttrBaryonNumber = "baryon_number"
	AttrMass         = "mass"
)

// minOrder matches the smallest order the candidate builder accepts.
const minOrder = 3

// Record describes one entity.
type Record struct {
	ID              string             `yaml:"id" json:"id"`
	Name            string             `yaml:"name" json:"name"`
	Order           int                `yaml:"order" json:"order"`
	Attributes      map[string]float64 `yaml:"attributes,omitempty" json:"attributes,omitempty"`
	StabilityFactor float64            `yaml:"stability_factor" json:"stability_factor"`
	// Constituents lists the IDs a bound entity is made of.
	Constituents []string `yaml:"constituents,omitempty" json:"constituents,omitempty"`
}

// Validate requires an ID, an order of at least 3, a finite non-negative
// stability factor and finite attributes.
func (r Record) Validate() error {
	if strings.TrimSpace(r.ID) == "" {
		return fmt.Errorf("empty id: %w", ErrInvalidRecord)
	}
	if r.Order < minOrder {
		return fmt.Errorf("%s: order %d < %d: %w", r.ID, r.Order, minOrder, ErrInvalidRecord)
	}
	if math.IsNaN(r.StabilityFactor) || math.IsInf(r.StabilityFactor, 0) || r.StabilityFactor < 0 {
		return fmt.Errorf("%s: stability factor %v: %w", r.ID, r.StabilityFactor, ErrInvalidRecord)
	}
	for k, v := range r.Attributes {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%s: attribute %s=%v: %w", r.ID, k, v, ErrInvalidRecord)
		}
	}

	return nil
}

// Attr returns the named attribute and whether it is present.
func (r Record) Attr(key string) (float64, bool) {
	v, ok := r.Attributes[key]
	return v, ok
}

// Bound reports whether the record is made of constituents.
func (r Record) Bound() bool { return len(r.Constituents) > 0 }

// Modulation is the scalar Intrinsic applies to an elementary record's base
// square: (1+0.05|q|)·cos(π·s)·stability, with absent attributes contributing 1.
func (r Record) Modulation() float64 {
	f := r.StabilityFactor
	if q, ok := r.Attr(AttrCharge); ok {
		f *= 1 + chargeWeight*math.Abs(q)
	}
	if s, ok := r.Attr(AttrSpin); ok {
		f *= math.Cos(math.Pi * s)
	}

	return f
}

// chargeWeight scales |charge| in the modulation factor.
const chargeWeight = 0.05
