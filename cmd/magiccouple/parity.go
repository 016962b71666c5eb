// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/magiccoupling/coupling"
	"github.com/katalvlaran/magiccoupling/magic"
)

// defaultParityOrders are scanned when no order is given.
var defaultParityOrders = []int{3, 4, 5, 6, 7, 8, 9, 10, 11}

func (a *app) parityCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "parity [order...]",
		Short: "Score candidate squares of the given orders with the parity heuristic",
		Long: `parity builds one candidate per order (canonical when the catalog has it,
approximate otherwise) and prints its parity stability score. Orders
default to 3 through 11.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			orders := defaultParityOrders
			if len(args) > 0 {
				orders = make([]int, len(args))
				for i, s := range args {
					o, err := strconv.Atoi(s)
					if err != nil {
						return fmt.Errorf("order %q: %w", s, err)
					}
					orders[i] = o
				}
			}

			b := coupling.NewBuilder()
			rng := a.rng()
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "ORDER\tPATH\tIMBALANCE\tPARITY")
			for _, o := range orders {
				m, path, err := b.Build(o, rng)
				if err != nil {
					return err
				}
				fmt.Fprintf(tw, "%d\t%s\t%.4f\t%.4f\n", o, path, magic.Imbalance(m), magic.ParityStabilityScore(m))
			}

			return tw.Flush()
		},
	}
}
