// SPDX-License-Identifier: MIT

package cmd

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/exactla/matrix"
)

func newSolveCmd(a *app) *cobra.Command {
	var aName, bName string

	c := &cobra.Command{
		Use:   "solve",
		Short: "Solve A·x = B exactly for square invertible A",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ms, err := a.load(aName, bName)
			if err != nil {
				return err
			}
			x, err := matrix.Solve(ms[0], ms[1], a.pivotOption())
			if err != nil {
				return err
			}

			return a.write(cmd.OutOrStdout(), x)
		},
	}
	c.Flags().StringVar(&aName, "a", "a", "name of the coefficient matrix")
	c.Flags().StringVar(&bName, "b", "b", "name of the right-hand side")

	return c
}
