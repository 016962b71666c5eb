// SPDX-License-Identifier: MIT

package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"os"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/magiccoupling/coupling"
	"github.com/katalvlaran/magiccoupling/entity"
)

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config is the merged configuration.
type Config struct {
	// Seed makes runs reproducible; nil seeds from the clock.
	Seed            *int64  `yaml:"seed"`
	LogLevel        string  `yaml:"log_level"`
	Workers         int     `yaml:"workers"`
	Tolerance       float64 `yaml:"tolerance"`
	CoarseTolerance float64 `yaml:"coarse_tolerance"`
	Acceptance      float64 `yaml:"acceptance"`
	Perturbation    float64 `yaml:"perturbation"`
	Variant         string  `yaml:"variant"`
	// Weights overrides the variant's default weights when set.
	Weights *coupling.Weights `yaml:"weights"`
	// Forces is merged over entity.DefaultForces.
	Forces entity.Forces `yaml:"forces"`
	// Entities are added to, or replace by ID, the default catalog records.
	Entities []entity.Record `yaml:"entities"`
}

// envOverlay lists the variables that override file values when set.
type envOverlay struct {
	Seed      *int64   `env:"MAGIC_SEED"`
	LogLevel  *string  `env:"MAGIC_LOG_LEVEL"`
	Workers   *int     `env:"MAGIC_WORKERS"`
	Tolerance *float64 `env:"MAGIC_TOLERANCE"`
	Variant   *string  `env:"MAGIC_VARIANT"`
}

// Default returns the library defaults.
func Default() Config {
	return Config{
		LogLevel:        "info",
		Tolerance:       coupling.DefaultTolerance,
		CoarseTolerance: coupling.DefaultCoarseTolerance,
		Acceptance:      coupling.DefaultAcceptance,
		Perturbation:    coupling.DefaultPerturbation,
		Variant:         coupling.MatchEnergy.String(),
	}
}

// Load merges Default, the YAML file at path (skipped when path is empty)
// and the process environment, then validates the result.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("load config file: %w", err)
		}
		if err = cfg.decodeYAML(data); err != nil {
			return cfg, fmt.Errorf("load config file %s: %w", path, err)
		}
	}
	if err := cfg.ApplyEnv(nil); err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}

	return cfg, nil
}

// Parse decodes YAML over Default and validates. Unknown keys are errors.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	if err := cfg.decodeYAML(data); err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}

	return cfg, nil
}

func (c *Config) decodeYAML(data []byte) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(c); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("parse yaml: %w", err)
	}

	return nil
}

// ApplyEnv overrides fields from MAGIC_* variables. A nil environ reads the
// process environment.
func (c *Config) ApplyEnv(environ map[string]string) error {
	var (
		o   envOverlay
		err error
	)
	if environ == nil {
		err = env.Parse(&o)
	} else {
		err = env.ParseWithOptions(&o, env.Options{Environment: environ})
	}
	if err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	if o.Seed != nil {
		c.Seed = o.Seed
	}
	if o.LogLevel != nil {
		c.LogLevel = *o.LogLevel
	}
	if o.Workers != nil {
		c.Workers = *o.Workers
	}
	if o.Tolerance != nil {
		c.Tolerance = *o.Tolerance
	}
	if o.Variant != nil {
		c.Variant = *o.Variant
	}

	return nil
}

// Validate rejects values the engine options would panic on.
func (c Config) Validate() error {
	if _, err := c.SlogLevel(); err != nil {
		return fmt.Errorf("log_level %q: %w", c.LogLevel, ErrInvalidConfig)
	}
	if c.Workers < 0 {
		return fmt.Errorf("workers %d must be >= 0: %w", c.Workers, ErrInvalidConfig)
	}
	for _, f := range []struct {
		name string
		v    float64
	}{
		{"tolerance", c.Tolerance},
		{"coarse_tolerance", c.CoarseTolerance},
		{"perturbation", c.Perturbation},
	} {
		if math.IsNaN(f.v) || math.IsInf(f.v, 0) || f.v < 0 {
			return fmt.Errorf("%s %v must be finite and >= 0: %w", f.name, f.v, ErrInvalidConfig)
		}
	}
	if math.IsNaN(c.Acceptance) || c.Acceptance < 0 || c.Acceptance > 1 {
		return fmt.Errorf("acceptance %v must be in [0,1]: %w", c.Acceptance, ErrInvalidConfig)
	}
	if _, err := coupling.ParseVariant(c.Variant); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if c.Weights != nil {
		if err := c.Weights.Validate(); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
		}
	}
	if err := c.Forces.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if _, err := c.Catalog(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	return nil
}

// SlogLevel parses LogLevel ("debug", "info", "warn", "error", optionally
// with an offset such as "info+2").
func (c Config) SlogLevel() (slog.Level, error) {
	var l slog.Level
	err := l.UnmarshalText([]byte(c.LogLevel))

	return l, err
}

// EngineOptions maps the configuration onto coupling options.
// Call Validate first; invalid values make the option constructors panic.
func (c Config) EngineOptions() []coupling.Option {
	variant, _ := coupling.ParseVariant(c.Variant)
	opts := []coupling.Option{
		coupling.WithTolerance(c.Tolerance),
		coupling.WithCoarseTolerance(c.CoarseTolerance),
		coupling.WithAcceptance(c.Acceptance),
		coupling.WithPerturbation(c.Perturbation),
		coupling.WithVariant(variant),
	}
	if c.Weights != nil {
		opts = append(opts, coupling.WithWeights(*c.Weights))
	}
	if c.Seed != nil {
		opts = append(opts, coupling.WithSeed(*c.Seed))
	}

	return opts
}

// ForceTable returns the default forces with the configured overrides.
func (c Config) ForceTable() entity.Forces {
	return entity.DefaultForces().Merge(c.Forces)
}

// Catalog returns the default catalog extended by the configured entities.
func (c Config) Catalog() (*entity.Catalog, error) {
	recs := entity.DefaultRecords()
	index := make(map[string]int, len(recs))
	for i, r := range recs {
		index[r.ID] = i
	}
	for _, r := range c.Entities {
		if i, ok := index[r.ID]; ok {
			recs[i] = r
			continue
		}
		index[r.ID] = len(recs)
		recs = append(recs, r)
	}

	return entity.NewCatalog(recs...)
}
