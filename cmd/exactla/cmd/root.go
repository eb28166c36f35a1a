// SPDX-License-Identifier: MIT

// Package cmd implements the exactla command line: exact inversion, solving
// and arithmetic over matrices stored in TOML or YAML grid files.
package cmd

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/exactla/gridio"
	"github.com/katalvlaran/exactla/matrix"
)

// outputText selects matrix.Format rendering instead of an encoded document.
const outputText = "text"

// resultKey names the matrix in encoded output documents.
const resultKey = "result"

// app carries the persistent flags and the logger shared by subcommands.
type app struct {
	file    string
	output  string
	verbose bool

	log *slog.Logger
}

// Execute runs the root command with os.Args.
func Execute() error {
	root := NewRootCmd()
	if err := root.Execute(); err != nil {
		printError(root.ErrOrStderr(), err)
		return err
	}

	return nil
}

// NewRootCmd builds a fresh command tree. Each call has its own flag state.
func NewRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "exactla",
		Short: "Exact rational linear algebra",
		Long: `exactla inverts matrices and solves linear systems with exact
rational arithmetic. Matrices are read by name from a TOML or YAML file whose
entries are integers or "p/q" strings.

Example file (system.toml):
  a = [[2, 0], [0, 2]]
  b = [[4], [6]]

  exactla solve -f system.toml --a a --b b`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
	}

	flags := root.PersistentFlags()
	flags.StringVarP(&a.file, "file", "f", "", "grid file (.toml, .yaml, .yml)")
	flags.StringVarP(&a.output, "output", "o", outputText, "output format: text, toml or yaml")
	flags.BoolVarP(&a.verbose, "verbose", "v", false, "log pivot steps to stderr")
	_ = root.MarkPersistentFlagRequired("file")

	root.AddCommand(
		newInverseCmd(a),
		newSolveCmd(a),
		newMulCmd(a),
		newAddCmd(a),
		newTransposeCmd(a),
		newDetCmd(a),
	)

	return root
}

// setup validates --output and installs the logger.
func (a *app) setup(cmd *cobra.Command) error {
	if a.output != outputText {
		f, err := gridio.ParseFormat(a.output)
		if err != nil || f == gridio.FormatAuto {
			return fmt.Errorf("--output %q: want text, toml or yaml", a.output)
		}
	}

	level := slog.LevelWarn
	if a.verbose {
		level = slog.LevelDebug
	}
	a.log = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))

	return nil
}

// load reads --file and returns the named matrices in order.
func (a *app) load(names ...string) ([]*matrix.Dense, error) {
	set, err := gridio.Load(a.file)
	if err != nil {
		return nil, err
	}
	a.log.Debug("loaded grid file", "file", a.file, "matrices", set.Names())

	out := make([]*matrix.Dense, len(names))
	for i, name := range names {
		if out[i], err = set.Get(name); err != nil {
			return nil, fmt.Errorf("%s: %w", a.file, err)
		}
	}

	return out, nil
}

// pivotOption logs every elimination step at debug level.
func (a *app) pivotOption() matrix.Option {
	return matrix.WithOnPivot(func(s matrix.PivotStep) error {
		a.log.Debug("pivot",
			"column", s.Column,
			"row", s.Row,
			"value", s.Pivot.String(),
			"swapped", s.Swapped,
		)

		return nil
	})
}

// write prints res in the selected output format.
func (a *app) write(w io.Writer, res *matrix.Dense) error {
	if a.output == outputText {
		_, err := fmt.Fprintln(w, matrix.Format(res))
		return err
	}
	f, err := gridio.ParseFormat(a.output)
	if err != nil {
		return err
	}

	return gridio.Encode(w, gridio.Set{resultKey: res}, f)
}

func printError(w io.Writer, err error) {
	fmt.Fprintf(w, "Error: %v\n", err)
}
