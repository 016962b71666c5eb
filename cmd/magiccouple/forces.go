// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func (a *app) forcesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "forces",
		Short: "List the force policies",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "FORCE\tORDERS\tSTRENGTH")
			for _, name := range a.forces.Names() {
				p, _ := a.forces.Policy(name)
				fmt.Fprintf(tw, "%s\t%s\t%g\n", name, joinInts(p.PreferredOrders), p.Strength)
			}

			return tw.Flush()
		},
	}
}

func (a *app) catalogCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "catalog",
		Short: "List the catalog entities",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "ID\tORDER\tSTABILITY\tMODULATION\tCONSTITUENTS")
			for _, id := range a.catalog.IDs() {
				r, _ := a.catalog.Lookup(id)
				mod := "-"
				if !r.Bound() {
					mod = fmt.Sprintf("%.4g", r.Modulation())
				}
				fmt.Fprintf(tw, "%s\t%d\t%g\t%s\t%s\n", r.ID, r.Order, r.StabilityFactor, mod,
					strings.Join(r.Constituents, "+"))
			}

			return tw.Flush()
		},
	}
}

func joinInts(xs []int) string {
	parts := make([]string, len(xs))
	for i, x := range xs {
		parts[i] = fmt.Sprint(x)
	}

	return strings.Join(parts, ",")
}
