// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for the elimination kernels
// (Inverse, Solve). This file defines:
//   - Option / Options (functional options with internal state),
//   - PivotStep, the record passed to the pivot hook,
//   - WithX constructors,
//   - gatherOptions helper (internal).
//
// Design goals:
//   - Deterministic behavior: no global state.
//   - Options never change results; they only observe or abort a run.
package matrix

import "github.com/katalvlaran/exactla/fraction"

// PivotStep describes one completed Gauss-Jordan column.
type PivotStep struct {
	// Column is the pivot column j (0-based).
	Column int

	// Row is the row index the pivot was selected from, before it was
	// swapped into slot Column.
	Row int

	// Pivot is the selected entry before its row was scaled to make it 1.
	Pivot fraction.Fraction

	// Swapped reports whether a row exchange happened (Row != Column).
	Swapped bool
}

// Option configures Inverse and Solve via functional arguments.
type Option func(*Options)

// Options holds hooks that observe the elimination. Fields are unexported;
// use the WithX constructors.
type Options struct {
	// onPivot runs after each column is reduced. A non-nil error aborts the
	// whole operation; no partial result is returned.
	onPivot func(PivotStep) error
}

// WithOnPivot registers fn to run after each pivot column has been reduced.
// Returning an error aborts Inverse/Solve with that error wrapped under
// ErrHookAborted. A nil fn is ignored.
func WithOnPivot(fn func(step PivotStep) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.onPivot = fn
		}
	}
}

// defaultOptions returns Options with no-op hooks.
func defaultOptions() Options {
	return Options{
		onPivot: func(PivotStep) error { return nil },
	}
}

// gatherOptions applies user options over the defaults in order
// (last-writer-wins).
func gatherOptions(user ...Option) Options {
	o := defaultOptions()
	for _, set := range user {
		if set != nil {
			set(&o)
		}
	}

	return o
}
