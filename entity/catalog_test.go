// SPDX-License-Identifier: MIT
package entity_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/katalvlaran/magiccoupling/coupling"
	"github.com/katalvlaran/magiccoupling/entity"
	"github.com/katalvlaran/magiccoupling/magic"
	"github.com/stretchr/testify/require"
)

func TestDefaultCatalog(t *testing.T) {
	c := entity.DefaultCatalog()
	require.Equal(t, []string{
		entity.DownQuark, entity.Electron, entity.Gluon, entity.Muon,
		entity.Photon, entity.Proton, entity.Tau, entity.UpQuark,
	}, c.IDs())

	rng := rand.New(rand.NewSource(1))
	for _, id := range c.IDs() {
		e, err := c.Spawn(id, rng)
		require.NoErrorf(t, err, "spawn %s", id)
		require.Equal(t, e.Order(), e.Matrix().Rows())
	}

	tau, err := c.Lookup(entity.Tau)
	require.NoError(t, err)
	require.Equal(t, 7, tau.Order)
	require.Equal(t, 0.05, tau.StabilityFactor)

	_, err = c.Lookup("neutrino")
	require.ErrorIs(t, err, entity.ErrUnknownEntity)
	_, err = c.Spawn("neutrino", rng)
	require.ErrorIs(t, err, entity.ErrUnknownEntity)
}

func TestNewCatalog_Errors(t *testing.T) {
	_, err := entity.NewCatalog(plain("a", 3), plain("a", 5))
	require.ErrorIs(t, err, entity.ErrInvalidRecord)

	bound := plain("b", 5)
	bound.Constituents = []string{"a", "missing"}
	_, err = entity.NewCatalog(plain("a", 3), bound)
	require.ErrorIs(t, err, entity.ErrUnknownEntity)

	_, err = entity.NewCatalog(plain("a", 0))
	require.ErrorIs(t, err, entity.ErrInvalidRecord)
}

func TestForces(t *testing.T) {
	f := entity.DefaultForces()
	require.Equal(t, []string{
		entity.Electromagnetic, entity.Gravitational, entity.Strong, entity.Universal, entity.Weak,
	}, f.Names())
	require.NoError(t, f.Validate())

	tests := []struct {
		force    string
		orders   []int
		strength float64
	}{
		{entity.Strong, []int{3, 5, 7}, 1},
		{entity.Electromagnetic, []int{3, 5, 7, 9}, 0.1},
		{entity.Weak, []int{3, 5}, 0.01},
		{entity.Gravitational, []int{3, 5, 7, 9, 11}, 1e-39},
		{entity.Universal, []int{3, 5, 7, 9, 11}, 1},
	}
	for _, tc := range tests {
		p, err := f.Policy(tc.force)
		require.NoError(t, err)
		require.Equal(t, tc.orders, p.PreferredOrders)
		require.Equal(t, tc.strength, p.Strength)
	}

	p, err := f.Policy(entity.Strong)
	require.NoError(t, err)
	p.PreferredOrders[0] = 99
	again, err := f.Policy(entity.Strong)
	require.NoError(t, err)
	require.Equal(t, 3, again.PreferredOrders[0])

	_, err = f.Policy("fifth")
	require.ErrorIs(t, err, entity.ErrUnknownForce)
}

func TestForces_MergeValidate(t *testing.T) {
	base := entity.DefaultForces()
	merged := base.Merge(entity.Forces{
		entity.Weak: {PreferredOrders: []int{3}, Strength: 0.02},
		"dark":      {PreferredOrders: []int{9}, Strength: 0.5},
	})
	require.Len(t, merged, 6)
	require.Len(t, base, 5)
	p, err := merged.Policy(entity.Weak)
	require.NoError(t, err)
	require.Equal(t, 0.02, p.Strength)

	bad := entity.Forces{"broken": {Strength: 3}}
	require.ErrorIs(t, bad.Validate(), coupling.ErrInvalidPolicy)
}

func TestBindingEnergy(t *testing.T) {
	l, _ := magic.Canonical(3)
	require.InDelta(t, 0.9*math.Log(4), entity.BindingEnergy(coupling.Result{
		Stable: l, StableOrder: 3, StabilityScore: 0.9, Success: true,
	}), 1e-12)
	require.Zero(t, entity.BindingEnergy(coupling.Result{}))
}

func TestCouple(t *testing.T) {
	a, err := entity.New(plain("a", 3), nil)
	require.NoError(t, err)
	b, err := entity.New(plain("b", 3), nil)
	require.NoError(t, err)
	e := coupling.New(coupling.WithSeed(1))

	in, err := entity.Couple(e, entity.DefaultForces(), entity.Strong, a, b)
	require.NoError(t, err)
	require.Equal(t, "a", in.A)
	require.Equal(t, entity.Strong, in.Force)
	require.True(t, in.Result.Success)
	require.Equal(t, 3, in.Result.StableOrder)
	require.InDelta(t, in.Result.StabilityScore*math.Log(4), in.BindingEnergy, 1e-12)

	_, err = entity.Couple(e, entity.DefaultForces(), "fifth", a, b)
	require.ErrorIs(t, err, entity.ErrUnknownForce)
	_, err = entity.Couple(e, entity.DefaultForces(), entity.Weak, a, nil)
	require.ErrorIs(t, err, coupling.ErrInvalidInput)
}
