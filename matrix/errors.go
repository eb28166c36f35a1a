// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the matrix
// package. All kernels MUST return these sentinels (possibly wrapped with an
// operation tag) and tests MUST check them via errors.Is. No kernel panics on
// user-triggered error conditions.

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency. Kernels wrap
// sentinels with their operation tag via matrixErrorf ("Mul: matrix: ...");
// callers match with errors.Is regardless of wrapping depth.
//
// ERROR PRIORITY (documented, enforced in tests):
// nil -> shape/index -> dimension mismatch -> singularity -> hook abort.

var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are
	// non-positive (no rows, empty rows, Identity(0)).
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrRaggedGrid is returned when a source grid has rows of different lengths.
	ErrRaggedGrid = errors.New("matrix: rows have different lengths")

	// ErrOutOfRange indicates that a row or column index is outside valid bounds.
	// Public indexers (At/Row) MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g. Add on different shapes, Mul where a.Cols != b.Rows, Concat with
	// different row counts, Inverse of a non-square matrix, or Solve where
	// a.Cols != b.Rows.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNilMatrix indicates that a nil Matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrNotInvertible is returned by Inverse when Gauss-Jordan elimination
	// finds no non-zero pivot candidate in some column.
	ErrNotInvertible = errors.New("matrix: matrix is not invertible")

	// ErrNoSolution is returned by Solve when the coefficient matrix is not
	// invertible. The returned error also matches ErrNotInvertible.
	ErrNoSolution = errors.New("matrix: linear system has no unique solution")

	// ErrHookAborted wraps an error returned by a user hook (see WithOnPivot).
	ErrHookAborted = errors.New("matrix: aborted by hook")
)

// ErrSingular is a synonym for ErrNotInvertible, for callers that name the
// condition after the matrix rather than the operation.
var ErrSingular = ErrNotInvertible
