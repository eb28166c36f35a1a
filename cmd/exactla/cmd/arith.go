// SPDX-License-Identifier: MIT

package cmd

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/exactla/fraction"
	"github.com/katalvlaran/exactla/matrix"
)

// binaryKernel is the shape shared by matrix.Add and matrix.Mul.
type binaryKernel func(x, y matrix.Matrix) (*matrix.Dense, error)

func newBinaryCmd(a *app, use, short string, kernel binaryKernel) *cobra.Command {
	var aName, bName string

	c := &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ms, err := a.load(aName, bName)
			if err != nil {
				return err
			}
			res, err := kernel(ms[0], ms[1])
			if err != nil {
				return err
			}

			return a.write(cmd.OutOrStdout(), res)
		},
	}
	c.Flags().StringVar(&aName, "a", "a", "name of the left operand")
	c.Flags().StringVar(&bName, "b", "b", "name of the right operand")

	return c
}

func newMulCmd(a *app) *cobra.Command {
	return newBinaryCmd(a, "mul", "Print the product A·B", matrix.Mul)
}

func newAddCmd(a *app) *cobra.Command {
	return newBinaryCmd(a, "add", "Print the sum A+B", matrix.Add)
}

func newTransposeCmd(a *app) *cobra.Command {
	var name string

	c := &cobra.Command{
		Use:   "transpose",
		Short: "Print the transpose of a matrix",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ms, err := a.load(name)
			if err != nil {
				return err
			}
			t, err := matrix.Transpose(ms[0])
			if err != nil {
				return err
			}

			return a.write(cmd.OutOrStdout(), t)
		},
	}
	c.Flags().StringVar(&name, "a", "a", "name of the matrix to transpose")

	return c
}

func newDetCmd(a *app) *cobra.Command {
	var name string

	c := &cobra.Command{
		Use:   "det",
		Short: "Print the exact determinant of a square matrix",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ms, err := a.load(name)
			if err != nil {
				return err
			}
			d, err := matrix.Determinant(ms[0])
			if err != nil {
				return err
			}
			res, err := matrix.NewDense([][]fraction.Fraction{{d}})
			if err != nil {
				return err
			}

			return a.write(cmd.OutOrStdout(), res)
		},
	}
	c.Flags().StringVar(&name, "a", "a", "name of the matrix")

	return c
}
