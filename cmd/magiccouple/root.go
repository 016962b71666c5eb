// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"log/slog"
	"math/rand"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/magiccoupling/config"
	"github.com/katalvlaran/magiccoupling/coupling"
	"github.com/katalvlaran/magiccoupling/entity"
)

// app carries the flags and the state resolved before every subcommand.
type app struct {
	cfgPath     string
	seed        int64
	logLevel    string
	dumpMetrics bool

	cfg     config.Config
	logger  *slog.Logger
	reg     *prometheus.Registry
	metrics *coupling.Metrics
	catalog *entity.Catalog
	forces  entity.Forces
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:   "magiccouple",
		Short: "Couple magic-square entities and inspect the stable states",
		Long: `magiccouple composes two square matrices into a block-diagonal composite
and searches for a smaller, near-magic stable state that scores above the
acceptance threshold.

Configuration comes from --config (YAML), then MAGIC_* environment variables,
then the --seed and --log-level flags.`,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
		PersistentPostRunE: func(cmd *cobra.Command, _ []string) error {
			if !a.dumpMetrics {
				return nil
			}
			return a.writeMetrics(cmd)
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.cfgPath, "config", "", "YAML configuration file")
	pf.Int64Var(&a.seed, "seed", 0, "RNG seed; runs with the same seed are identical")
	pf.StringVar(&a.logLevel, "log-level", "", "log level: debug, info, warn, error")
	pf.BoolVar(&a.dumpMetrics, "metrics", false, "print Prometheus metrics to stderr on exit")

	root.AddCommand(
		a.coupleCmd(),
		a.batchCmd(),
		a.checkCmd(),
		a.parityCmd(),
		a.forcesCmd(),
		a.catalogCmd(),
	)

	return root
}

func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(a.cfgPath)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("seed") {
		seed := a.seed
		cfg.Seed = &seed
	}
	if cmd.Flags().Changed("log-level") {
		cfg.LogLevel = a.logLevel
	}
	if err = cfg.Validate(); err != nil {
		return err
	}
	level, _ := cfg.SlogLevel()

	a.cfg = cfg
	a.logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
	a.reg = prometheus.NewRegistry()
	a.metrics = coupling.NewMetrics(a.reg)
	a.forces = cfg.ForceTable()
	if a.catalog, err = cfg.Catalog(); err != nil {
		return err
	}
	a.logger.Debug("configured", "config", a.cfgPath, "seeded", cfg.Seed != nil,
		"variant", cfg.Variant, "workers", cfg.Workers)

	return nil
}

// engine builds a coupling engine from the resolved configuration.
func (a *app) engine() *coupling.Engine {
	opts := append(a.cfg.EngineOptions(), coupling.WithLogger(a.logger), coupling.WithMetrics(a.metrics))
	return coupling.New(opts...)
}

// rng returns the stream used outside the engine (entity derivation and
// standalone candidate builds).
func (a *app) rng() *rand.Rand {
	if a.cfg.Seed != nil {
		return rand.New(rand.NewSource(*a.cfg.Seed))
	}
	return rand.New(rand.NewSource(time.Now().UnixNano()))
}

func (a *app) writeMetrics(cmd *cobra.Command) error {
	families, err := a.reg.Gather()
	if err != nil {
		return fmt.Errorf("gather metrics: %w", err)
	}
	for _, mf := range families {
		if _, err = expfmt.MetricFamilyToText(cmd.ErrOrStderr(), mf); err != nil {
			return fmt.Errorf("write metrics: %w", err)
		}
	}

	return nil
}
