// SPDX-License-Identifier: MIT

package entity

import (
	"fmt"
	"maps"
	"math"
	"slices"

	"github.com/katalvlaran/magiccoupling/coupling"
)

// Force names of the default table.
const (
	Strong          = "strong"
	Electromagnetic = "electromagnetic"
	Weak            = "weak"
	Gravitational   = "gravitational"
	Universal       = "universal"
)

// Forces maps a force name to its coupling policy.
// It implements coupling.PolicyProvider.
type Forces map[string]coupling.Policy

// DefaultForces returns a fresh copy of the reference force table.
func DefaultForces() Forces {
	return Forces{
		Strong:          {PreferredOrders: []int{3, 5, 7}, Strength: 1.0},
		Electromagnetic: {PreferredOrders: []int{3, 5, 7, 9}, Strength: 0.1},
		Weak:            {PreferredOrders: []int{3, 5}, Strength: 0.01},
		Gravitational:   {PreferredOrders: []int{3, 5, 7, 9, 11}, Strength: 1e-39},
		Universal:       {PreferredOrders: []int{3, 5, 7, 9, 11}, Strength: 1.0},
	}
}

// Policy returns a copy of the policy registered under id.
func (f Forces) Policy(id string) (coupling.Policy, error) {
	p, ok := f[id]
	if !ok {
		return coupling.Policy{}, fmt.Errorf("%q: %w", id, ErrUnknownForce)
	}
	p.PreferredOrders = slices.Clone(p.PreferredOrders)

	return p, nil
}

// Names returns the force names in ascending order.
func (f Forces) Names() []string {
	return slices.Sorted(maps.Keys(f))
}

// Merge returns f with every entry of override replacing or adding to it.
// f is not modified.
func (f Forces) Merge(override Forces) Forces {
	out := make(Forces, len(f)+len(override))
	maps.Copy(out, f)
	maps.Copy(out, override)

	return out
}

// Validate checks every policy strength.
func (f Forces) Validate() error {
	for _, name := range f.Names() {
		if err := f[name].Validate(); err != nil {
			return fmt.Errorf("force %s: %w", name, err)
		}
	}

	return nil
}

var _ coupling.PolicyProvider = Forces(nil)

// BindingEnergy estimates the binding energy of a coupling as
// score·ln(order+1); 0 when no stable state was found.
func BindingEnergy(res coupling.Result) float64 {
	if res.Stable == nil || res.StableOrder <= 0 {
		return 0
	}

	return res.StabilityScore * math.Log(float64(res.StableOrder)+1)
}
