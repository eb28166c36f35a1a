// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for shape and nil checks.
//  - Keep kernels minimal by delegating guard logic here.
//  - Return sentinel errors tagged with the validator name so call sites can
//    wrap uniformly with their operation tag.
//
// Determinism & Performance:
//  - All checks except ValidateGrid are O(1) and allocate nothing.
//
// Note:
//  - Each composite validator follows a fixed sequence (e.g. NotNil → Shape).
//  - Non-composite validators assume their arguments are non-nil.

package matrix

import (
	"fmt"

	"github.com/katalvlaran/exactla/fraction"
)

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the matrix reference is non-nil.
// A typed nil *Dense stored in the interface is treated as nil as well.
// Returns ErrNilMatrix. Complexity: O(1).
func ValidateNotNil(m Matrix) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}
	if d, ok := m.(*Dense); ok && d == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidatePositiveShape ensures Rows() ≥ 1 and Cols() ≥ 1, so no kernel
// ever publishes an empty *Dense built from a foreign Matrix.
// Assumes m is not nil. Returns ErrInvalidDimensions. Complexity: O(1).
func ValidatePositiveShape(m Matrix) error {
	if m.Rows() < 1 || m.Cols() < 1 {
		return validatorErrorf(fmt.Sprintf("ValidatePositiveShape: %dx%d", m.Rows(), m.Cols()), ErrInvalidDimensions)
	}

	return nil
}

// ValidateOperand – Composite: NotNil → PositiveShape.
// Errors: ErrNilMatrix, ErrInvalidDimensions.
func ValidateOperand(m Matrix) error {
	if err := ValidateNotNil(m); err != nil {
		return err
	}

	return ValidatePositiveShape(m)
}

// ValidateSameShape ensures a and b have equal dimensions.
// Assumes a and b are not nil. Returns ErrDimensionMismatch.
func ValidateSameShape(a, b Matrix) error {
	if a.Rows() != b.Rows() {
		return validatorErrorf("ValidateSameShape: Rows", ErrDimensionMismatch)
	}
	if a.Cols() != b.Cols() {
		return validatorErrorf("ValidateSameShape: Columns", ErrDimensionMismatch)
	}

	return nil
}

// ValidateSameRows ensures a and b have the same number of rows, as required
// by horizontal concatenation. Column counts are irrelevant.
// Assumes a and b are not nil. Returns ErrDimensionMismatch.
func ValidateSameRows(a, b Matrix) error {
	if a.Rows() != b.Rows() {
		return validatorErrorf("ValidateSameRows", ErrDimensionMismatch)
	}

	return nil
}

// ValidateSquare checks that m is square (Rows == Cols).
// Assumes m is not nil. Returns ErrDimensionMismatch.
func ValidateSquare(m Matrix) error {
	if m.Rows() != m.Cols() {
		return validatorErrorf("ValidateSquare", ErrDimensionMismatch)
	}

	return nil
}

// ValidateMulCompatible – Composite: Operand(a) → Operand(b) → a.Cols == b.Rows.
// Errors: ErrNilMatrix, ErrInvalidDimensions, ErrDimensionMismatch.
func ValidateMulCompatible(a, b Matrix) error {
	if err := ValidateOperand(a); err != nil {
		return validatorErrorf("ValidateMulCompatible", err)
	}
	if err := ValidateOperand(b); err != nil {
		return validatorErrorf("ValidateMulCompatible", err)
	}
	if a.Cols() != b.Rows() {
		return validatorErrorf("ValidateMulCompatible", ErrDimensionMismatch)
	}

	return nil
}

// ValidateBinarySameShape – Composite: Operand(a) → Operand(b) → SameShape.
// Errors: ErrNilMatrix, ErrInvalidDimensions, ErrDimensionMismatch.
func ValidateBinarySameShape(a, b Matrix) error {
	if err := ValidateOperand(a); err != nil {
		return validatorErrorf("ValidateBinarySameShape", err)
	}
	if err := ValidateOperand(b); err != nil {
		return validatorErrorf("ValidateBinarySameShape", err)
	}
	if err := ValidateSameShape(a, b); err != nil {
		return validatorErrorf("ValidateBinarySameShape", err)
	}

	return nil
}

// ValidateSquareNonNil – Composite: Operand → Square.
// Errors: ErrNilMatrix, ErrInvalidDimensions, ErrDimensionMismatch.
func ValidateSquareNonNil(m Matrix) error {
	if err := ValidateOperand(m); err != nil {
		return validatorErrorf("ValidateSquareNonNil", err)
	}
	if err := ValidateSquare(m); err != nil {
		return validatorErrorf("ValidateSquareNonNil", err)
	}

	return nil
}

// ValidateGrid checks that grid describes an r×c matrix with r, c ≥ 1 and
// returns (r, c).
//
// Errors:
//   - ErrInvalidDimensions when grid has no rows or its first row is empty.
//   - ErrRaggedGrid when any row length differs from the first one; the
//     offending row index is included in the message.
//
// Complexity: O(r).
func ValidateGrid[T int64 | fraction.Fraction](grid [][]T) (rows, cols int, err error) {
	if len(grid) == 0 || len(grid[0]) == 0 {
		return 0, 0, validatorErrorf("ValidateGrid", ErrInvalidDimensions)
	}
	rows, cols = len(grid), len(grid[0])
	for i := 1; i < rows; i++ {
		if len(grid[i]) != cols {
			return 0, 0, validatorErrorf(fmt.Sprintf("ValidateGrid: row %d", i), ErrRaggedGrid)
		}
	}

	return rows, cols, nil
}
