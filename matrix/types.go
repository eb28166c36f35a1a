// SPDX-License-Identifier: MIT

// Package matrix: the read-only Matrix interface shared by all kernels.
// Dense is the only implementation in this package; the interface exists so
// kernels can accept any exact matrix view and so tests can force the generic
// (non-*Dense) paths.
package matrix

import "github.com/katalvlaran/exactla/fraction"

// Matrix is a read-only two-dimensional view of exact fractions.
// There is deliberately no Set: values handed to callers are immutable.
//
// Complexity notes: all methods are expected O(1).
type Matrix interface {
	// Rows returns the number of rows in the matrix.
	Rows() int

	// Cols returns the number of columns in the matrix.
	Cols() int

	// At retrieves the element at position (i, j).
	// Returns ErrOutOfRange if i<0, i>=Rows(), j<0 or j>=Cols().
	At(i, j int) (fraction.Fraction, error)
}
