// SPDX-License-Identifier: MIT

package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/magiccoupling/entity"
)

// interactionView is the JSON shape of one coupling.
type interactionView struct {
	ID             string      `json:"id,omitempty"`
	A              string      `json:"a"`
	B              string      `json:"b"`
	Force          string      `json:"force"`
	CompositeOrder int         `json:"composite_order"`
	Success        bool        `json:"success"`
	StableOrder    int         `json:"stable_order"`
	Path           string      `json:"path"`
	StabilityScore float64     `json:"stability_score"`
	BindingEnergy  float64     `json:"binding_energy"`
	Stable         [][]float64 `json:"stable,omitempty"`
}

func newInteractionView(in entity.Interaction) interactionView {
	v := interactionView{
		A:              in.A,
		B:              in.B,
		Force:          in.Force,
		CompositeOrder: in.Result.Composite.Rows(),
		Success:        in.Result.Success,
		StableOrder:    in.Result.StableOrder,
		Path:           in.Result.Path.String(),
		StabilityScore: in.Result.StabilityScore,
		BindingEnergy:  in.BindingEnergy,
	}
	if in.Result.Stable != nil {
		v.Stable = in.Result.Stable.RawRows()
	}

	return v
}

func (a *app) coupleCmd() *cobra.Command {
	var (
		force    string
		orders   []int
		strength float64
		asJSON   bool
	)
	cmd := &cobra.Command{
		Use:   "couple <entity-a> <entity-b>",
		Short: "Couple two catalog entities under a force",
		Example: `  magiccouple couple up_quark down_quark --force strong
  magiccouple couple electron proton --orders 3,5 --strength 0.5 --json`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			forces := a.forces
			if cmd.Flags().Changed("orders") || cmd.Flags().Changed("strength") {
				p, err := forces.Policy(force)
				if err != nil {
					return err
				}
				if cmd.Flags().Changed("orders") {
					p.PreferredOrders = orders
				}
				if cmd.Flags().Changed("strength") {
					p.Strength = strength
				}
				forces = forces.Merge(entity.Forces{force: p})
			}

			rng := a.rng()
			ea, err := a.catalog.Spawn(args[0], rng)
			if err != nil {
				return err
			}
			eb, err := a.catalog.Spawn(args[1], rng)
			if err != nil {
				return err
			}
			in, err := entity.Couple(a.engine(), forces, force, ea, eb)
			if err != nil {
				return err
			}

			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(newInteractionView(in))
			}
			printInteraction(cmd.OutOrStdout(), in)

			return nil
		},
	}
	cmd.Flags().StringVarP(&force, "force", "f", entity.Universal, "force whose policy drives the search")
	cmd.Flags().IntSliceVar(&orders, "orders", nil, "override the force's preferred orders")
	cmd.Flags().Float64Var(&strength, "strength", 0, "override the force's coupling strength")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print JSON")

	return cmd
}

func printInteraction(w io.Writer, in entity.Interaction) {
	res := in.Result
	fmt.Fprintf(w, "%s + %s (%s)\n", in.A, in.B, in.Force)
	fmt.Fprintf(w, "composite order: %d\n", res.Composite.Rows())
	if res.Stable == nil {
		fmt.Fprintln(w, "stable state: none")
		return
	}
	fmt.Fprintf(w, "stable state: order=%d path=%s score=%.4f success=%t\n",
		res.StableOrder, res.Path, res.StabilityScore, res.Success)
	fmt.Fprintf(w, "binding energy: %.4f\n", in.BindingEnergy)
	fmt.Fprint(w, res.Stable)
}
