// SPDX-License-Identifier: MIT
package config_test

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/magiccoupling/config"
	"github.com/katalvlaran/magiccoupling/coupling"
	"github.com/katalvlaran/magiccoupling/entity"
	"github.com/katalvlaran/magiccoupling/magic"
)

const sample = `
seed: 42
log_level: debug
workers: 4
tolerance: 0.5
acceptance: 0.4
variant: correlation
weights:
  quality: 0.5
  match: 0.25
  parity: 0.25
forces:
  weak:
    preferred_orders: [3]
    strength: 0.02
  dark:
    preferred_orders: [9, 7]
    strength: 0.5
entities:
  - id: neutrino
    name: neutrino
    order: 3
    stability_factor: 1
    attributes:
      lepton_number: 1
  - id: tau
    order: 9
    stability_factor: 0.01
`

func TestDefault(t *testing.T) {
	cfg := config.Default()
	require.NoError(t, cfg.Validate())
	require.Nil(t, cfg.Seed)
	require.Equal(t, coupling.DefaultTolerance, cfg.Tolerance)
	require.Equal(t, coupling.DefaultAcceptance, cfg.Acceptance)

	lvl, err := cfg.SlogLevel()
	require.NoError(t, err)
	require.Equal(t, slog.LevelInfo, lvl)
	require.Equal(t, entity.DefaultForces(), cfg.ForceTable())
	require.Len(t, cfg.EngineOptions(), 5)
}

func TestParse(t *testing.T) {
	cfg, err := config.Parse([]byte(sample))
	require.NoError(t, err)

	require.NotNil(t, cfg.Seed)
	require.EqualValues(t, 42, *cfg.Seed)
	require.Equal(t, 4, cfg.Workers)
	require.Equal(t, 0.5, cfg.Tolerance)
	require.Equal(t, coupling.DefaultCoarseTolerance, cfg.CoarseTolerance, "unset keys keep defaults")
	require.Equal(t, &coupling.Weights{Quality: 0.5, Match: 0.25, Parity: 0.25}, cfg.Weights)

	forces := cfg.ForceTable()
	require.Len(t, forces, 6)
	weak, err := forces.Policy(entity.Weak)
	require.NoError(t, err)
	require.Equal(t, coupling.Policy{PreferredOrders: []int{3}, Strength: 0.02}, weak)

	cat, err := cfg.Catalog()
	require.NoError(t, err)
	tau, err := cat.Lookup(entity.Tau)
	require.NoError(t, err)
	require.Equal(t, 9, tau.Order)
	_, err = cat.Lookup("neutrino")
	require.NoError(t, err)
	require.Len(t, cat.IDs(), 9)
}

func TestParse_Empty(t *testing.T) {
	cfg, err := config.Parse(nil)
	require.NoError(t, err)
	require.Equal(t, config.Default(), cfg)
}

func TestParse_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		yaml string
	}{
		{"unknown key", "tolerence: 0.5"},
		{"malformed", "tolerance: [1"},
		{"negative tolerance", "tolerance: -1"},
		{"acceptance above 1", "acceptance: 1.5"},
		{"negative workers", "workers: -2"},
		{"bad level", "log_level: loud"},
		{"bad variant", "variant: entropy"},
		{"bad weights", "weights: {quality: 1, match: 1, parity: 0}"},
		{"bad force", "forces: {strong: {strength: 2}}"},
		{"bad entity", "entities: [{id: x, order: 1}]"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := config.Parse([]byte(tc.yaml))
			require.Error(t, err)
		})
	}

	_, err := config.Parse([]byte("variant: entropy"))
	require.ErrorIs(t, err, config.ErrInvalidConfig)
	require.ErrorIs(t, err, coupling.ErrUnknownVariant)
}

func TestApplyEnv(t *testing.T) {
	cfg, err := config.Parse([]byte(sample))
	require.NoError(t, err)

	require.NoError(t, cfg.ApplyEnv(map[string]string{
		"MAGIC_SEED":      "7",
		"MAGIC_LOG_LEVEL": "warn",
		"MAGIC_TOLERANCE": "0.9",
		"UNRELATED":       "x",
	}))
	require.EqualValues(t, 7, *cfg.Seed)
	require.Equal(t, "warn", cfg.LogLevel)
	require.Equal(t, 0.9, cfg.Tolerance)
	require.Equal(t, 4, cfg.Workers, "unset variables leave values alone")
	require.Equal(t, "correlation", cfg.Variant)

	require.Error(t, cfg.ApplyEnv(map[string]string{"MAGIC_WORKERS": "many"}))
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "magic.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sample), 0o600))
	t.Setenv("MAGIC_VARIANT", "energy")
	t.Setenv("MAGIC_WORKERS", "2")

	cfg, err := config.Load(path)
	require.NoError(t, err)
	require.Equal(t, "energy", cfg.Variant)
	require.Equal(t, 2, cfg.Workers)
	require.EqualValues(t, 42, *cfg.Seed)

	_, err = config.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)

	t.Setenv("MAGIC_TOLERANCE", "-3")
	_, err = config.Load(path)
	require.ErrorIs(t, err, config.ErrInvalidConfig)
}

func TestEngineOptions(t *testing.T) {
	cfg, err := config.Parse([]byte(sample))
	require.NoError(t, err)

	e := coupling.New(cfg.EngineOptions()...)
	require.Equal(t, coupling.MatchCorrelation, e.Scorer().Variant())
	require.Equal(t, *cfg.Weights, e.Scorer().Weights())

	l, _ := magic.Canonical(3)
	p := coupling.Policy{PreferredOrders: []int{3}, Strength: 1}
	first, err := e.Couple(l, l, p)
	require.NoError(t, err)
	second, err := coupling.New(coupling.WithSeed(42)).Couple(l, l, p)
	require.NoError(t, err)
	require.Equal(t, second.Composite, first.Composite, "seed flows into the engine")
}
