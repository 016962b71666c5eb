// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/magiccoupling/magic"
	"github.com/katalvlaran/magiccoupling/matrix"
)

// readMatrix loads a YAML list of rows, e.g. [[8, 1, 6], [3, 5, 7], [4, 9, 2]].
func readMatrix(path string) (*matrix.Dense, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var rows [][]float64
	if err = yaml.Unmarshal(data, &rows); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	m, err := matrix.NewDenseFrom(rows)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return m, nil
}

func (a *app) checkCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check <matrix.yaml>",
		Short: "Report line sums, imbalance and the magic verdict of a square",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := readMatrix(args[0])
			if err != nil {
				return err
			}
			sums, err := magic.Sums(m)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			n := sums.Order()
			fmt.Fprintf(w, "order: %d\n", n)
			fmt.Fprintf(w, "rows: %v\n", sums.Rows)
			fmt.Fprintf(w, "cols: %v\n", sums.Cols)
			fmt.Fprintf(w, "diag: %g anti-diag: %g\n", sums.Diag, sums.AntiDiag)
			fmt.Fprintf(w, "magic constant: %g (theoretical %g)\n",
				magic.MagicConstant(m), magic.TheoreticalConstant(n))
			fmt.Fprintf(w, "imbalance: %g self-imbalance: %g\n", magic.Imbalance(m), magic.SelfImbalance(m))
			fmt.Fprintf(w, "magic (tol %g): %t\n", a.cfg.Tolerance, magic.IsMagic(m, a.cfg.Tolerance))
			fmt.Fprintf(w, "parity score: %.4f\n", magic.ParityStabilityScore(m))

			return nil
		},
	}
}
