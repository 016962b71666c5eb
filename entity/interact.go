// SPDX-License-Identifier: MIT

package entity

import (
	"fmt"

	"github.com/katalvlaran/magiccoupling/coupling"
)

// Interaction is the outcome of coupling two entities under a named force.
type Interaction struct {
	A, B          string
	Force         string
	Result        coupling.Result
	BindingEnergy float64
}

// Couple resolves force through forces and couples a and b on e.
func Couple(e *coupling.Engine, forces coupling.PolicyProvider, force string, a, b *Entity) (Interaction, error) {
	policy, err := forces.Policy(force)
	if err != nil {
		return Interaction{}, err
	}
	if a == nil || b == nil {
		return Interaction{}, fmt.Errorf("entity.Couple: nil entity: %w", coupling.ErrInvalidInput)
	}
	res, err := e.CoupleSources(a, b, policy)
	if err != nil {
		return Interaction{}, fmt.Errorf("entity.Couple(%s, %s, %s): %w", a.ID, b.ID, force, err)
	}

	return Interaction{
		A:             a.ID,
		B:             b.ID,
		Force:         force,
		Result:        res,
		BindingEnergy: BindingEnergy(res),
	}, nil
}
