// SPDX-License-Identifier: MIT

package cmd

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/exactla/matrix"
)

func newInverseCmd(a *app) *cobra.Command {
	var name string

	c := &cobra.Command{
		Use:   "inverse",
		Short: "Print the exact inverse of a square matrix",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ms, err := a.load(name)
			if err != nil {
				return err
			}
			inv, err := matrix.Inverse(ms[0], a.pivotOption())
			if err != nil {
				return err
			}

			return a.write(cmd.OutOrStdout(), inv)
		},
	}
	c.Flags().StringVar(&name, "a", "a", "name of the matrix to invert")

	return c
}
