// SPDX-License-Identifier: MIT

package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/magiccoupling/coupling"
	"github.com/katalvlaran/magiccoupling/entity"
)

// batchFile is the YAML layout read by the batch command.
type batchFile struct {
	Jobs []batchJob `yaml:"jobs"`
}

type batchJob struct {
	ID    string `yaml:"id"`
	A     string `yaml:"a"`
	B     string `yaml:"b"`
	Force string `yaml:"force"`
}

func readBatch(path string) ([]batchJob, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var f batchFile
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err = dec.Decode(&f); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	return f.Jobs, nil
}

func (a *app) batchCmd() *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "batch <jobs.yaml>",
		Short: "Run a file of couplings on a worker pool",
		Long: `batch reads

  jobs:
    - id: pp
      a: proton
      b: proton
      force: strong

and runs every job concurrently (MAGIC_WORKERS / workers bound the pool).
Jobs without an id get a UUID; jobs without a force use "universal".`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			specs, err := readBatch(args[0])
			if err != nil {
				return err
			}

			rng := a.rng()
			jobs := make([]coupling.Job, len(specs))
			for i, s := range specs {
				if s.Force == "" {
					specs[i].Force = entity.Universal
				}
				policy, err := a.forces.Policy(specs[i].Force)
				if err != nil {
					return fmt.Errorf("job %d: %w", i, err)
				}
				ea, err := a.catalog.Spawn(s.A, rng)
				if err != nil {
					return fmt.Errorf("job %d: %w", i, err)
				}
				eb, err := a.catalog.Spawn(s.B, rng)
				if err != nil {
					return fmt.Errorf("job %d: %w", i, err)
				}
				jobs[i] = coupling.Job{ID: s.ID, A: ea.Matrix(), B: eb.Matrix(), Policy: policy}
			}

			results, err := a.engine().CoupleAll(cmd.Context(), jobs, a.cfg.Workers)
			if err != nil {
				return err
			}

			views := make([]interactionView, len(results))
			succeeded := 0
			for i, r := range results {
				in := entity.Interaction{
					A: specs[i].A, B: specs[i].B, Force: specs[i].Force,
					Result: r.Result, BindingEnergy: entity.BindingEnergy(r.Result),
				}
				views[i] = newInteractionView(in)
				views[i].ID = r.ID
				if r.Result.Success {
					succeeded++
				}
			}
			a.logger.Info("batch finished", "jobs", len(jobs), "succeeded", succeeded)

			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(views)
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "ID\tA\tB\tFORCE\tORDER\tPATH\tSCORE\tSUCCESS\tBINDING")
			for _, v := range views {
				fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%d\t%s\t%.4f\t%t\t%.4f\n",
					v.ID, v.A, v.B, v.Force, v.StableOrder, v.Path, v.StabilityScore, v.Success, v.BindingEnergy)
			}
			fmt.Fprintf(tw, "\n%d/%d succeeded\n", succeeded, len(views))

			return tw.Flush()
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print JSON")

	return cmd
}
