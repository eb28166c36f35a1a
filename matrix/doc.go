// Package matrix offers an immutable dense matrix of exact fractions and the
// exact linear-algebra kernels built on it.
//
// The matrix package provides:
//
//   - Dense, a row-major matrix of fraction.Fraction with value semantics:
//     nothing in the exported API mutates a *Dense, and every constructor and
//     accessor copies grid data, so values can be shared freely across
//     goroutines.
//   - Element-wise Add/Sub, Scale, Mul, Transpose and ConcatHorizontal.
//   - Determinant by exact forward elimination.
//   - Inverse, Gauss-Jordan elimination on [A | I] with greatest-magnitude
//     pivot selection, and Solve (x = A⁻¹·B) for square invertible systems.
//
// All results are exact: Inverse(A)·A equals the identity with no tolerance.
// Errors are package sentinels (ErrDimensionMismatch, ErrNotInvertible,
// ErrNoSolution, ...) matched with errors.Is.
//
// Elimination can be observed step by step with WithOnPivot.
//
// See the examples in this package for usage patterns.
package matrix
