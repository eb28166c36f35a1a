// SPDX-License-Identifier: MIT
// Package matrix provides exact operations on any Matrix implementation:
// element-wise addition and subtraction, scalar scaling, matrix
// multiplication, transpose and horizontal concatenation. All functions
// perform strict fail-fast validation and return a fresh *Dense; operands
// are never mutated.
//
// Notes:
//   - Each kernel has a flat-slice fast path when every operand is *Dense and
//     a generic i→j fallback through Matrix.At otherwise. Both paths produce
//     identical results.
//   - Errors are the package sentinels wrapped with the operation tag via
//     matrixErrorf.

package matrix

import (
	"fmt"

	"github.com/katalvlaran/exactla/fraction"
)

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opNewDense  = "NewDense"
	opIdentity  = "Identity"
	opAdd       = "Add"
	opSub       = "Sub"
	opMul       = "Mul"
	opScale     = "Scale"
	opTranspose = "Transpose"
	opConcat    = "ConcatHorizontal"
	opInverse   = "Inverse"
	opSolve     = "Solve"
	opDet       = "Determinant"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// atErrorf reports a failed read through the generic Matrix interface.
func atErrorf(tag string, i, j int, err error) error {
	return matrixErrorf(tag, fmt.Errorf("At(%d,%d): %w", i, j, err))
}

// zipWith computes out[i,j] = f(a[i,j], b[i,j]) for same-shaped a and b.
// Internal helper for Add/Sub sharing validation, allocation and fast path.
//
// Errors:
//   - ErrNilMatrix, ErrInvalidDimensions, ErrDimensionMismatch (ValidateBinarySameShape).
//   - Propagated At errors on the generic path.
//
// Complexity:
//   - Time O(r*c) fraction operations, Space O(r*c).
func zipWith(a, b Matrix, f func(x, y fraction.Fraction) fraction.Fraction, opTag string) (*Dense, error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return nil, matrixErrorf(opTag, err)
	}

	rows, cols := a.Rows(), a.Cols()
	res := newDense(rows, cols)

	// Fast path: *Dense with *Dense → single flat loop.
	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			for idx := range res.data {
				res.data[idx] = f(da.data[idx], db.data[idx])
			}

			return res, nil
		}
	}

	// Fallback: interface path with fixed i→j order.
	var (
		i, j   int
		av, bv fraction.Fraction
		err    error
	)
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if av, err = a.At(i, j); err != nil {
				return nil, atErrorf(opTag, i, j, err)
			}
			if bv, err = b.At(i, j); err != nil {
				return nil, atErrorf(opTag, i, j, err)
			}
			res.data[i*cols+j] = f(av, bv)
		}
	}

	return res, nil
}

// Add computes the element-wise sum C = A + B (plus).
//
// Errors:
//   - ErrNilMatrix (nil input), ErrDimensionMismatch (shape mismatch).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Add(a, b Matrix) (*Dense, error) {
	return zipWith(a, b, fraction.Fraction.Add, opAdd)
}

// Sub computes the element-wise difference C = A − B.
//
// Errors:
//   - ErrNilMatrix (nil input), ErrDimensionMismatch (shape mismatch).
func Sub(a, b Matrix) (*Dense, error) {
	return zipWith(a, b, fraction.Fraction.Sub, opSub)
}

// Scale returns a new matrix whose elements are alpha * m[i,j].
//
// Errors:
//   - ErrNilMatrix, ErrInvalidDimensions.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Scale(m Matrix, alpha fraction.Fraction) (*Dense, error) {
	if err := ValidateOperand(m); err != nil {
		return nil, matrixErrorf(opScale, err)
	}

	rows, cols := m.Rows(), m.Cols()
	res := newDense(rows, cols)

	if dm, ok := m.(*Dense); ok {
		for idx := range res.data {
			res.data[idx] = dm.data[idx].Mul(alpha)
		}

		return res, nil
	}

	var (
		i, j int
		v    fraction.Fraction
		err  error
	)
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, atErrorf(opScale, i, j, err)
			}
			res.data[i*cols+j] = v.Mul(alpha)
		}
	}

	return res, nil
}

// Mul performs matrix multiplication C = A × B (times).
//
// Implementation:
//   - Stage 1: ValidateMulCompatible (non-nil, A.Cols == B.Rows).
//   - Stage 2: for each (i, j) accumulate Σk A[i,k]·B[k,j] starting from
//     fraction.Zero in fixed k order. Zero A[i,k] terms are skipped; they
//     contribute exactly nothing.
//
// Returns:
//   - *Dense with shape (A.Rows × B.Cols).
//
// Errors:
//   - ErrNilMatrix (nil input), ErrDimensionMismatch (inner mismatch).
//
// Complexity:
//   - Time O(r*n*c) fraction multiply-adds, Space O(r*c).
func Mul(a, b Matrix) (*Dense, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	aRows, aCols, bCols := a.Rows(), a.Cols(), b.Cols()
	res := newDense(aRows, bCols)

	var (
		i, j, k int
		av, bv  fraction.Fraction
		sum     fraction.Fraction
	)
	// Fast path for two Dense matrices.
	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			for i = 0; i < aRows; i++ {
				for j = 0; j < bCols; j++ {
					sum = fraction.Zero
					for k = 0; k < aCols; k++ {
						av = da.data[i*aCols+k]
						if av.IsZero() {
							continue
						}
						sum = sum.Add(av.Mul(db.data[k*bCols+j]))
					}
					res.data[i*bCols+j] = sum
				}
			}

			return res, nil
		}
	}

	// Fallback: generic interface triple-loop (i-j-k).
	var err error
	for i = 0; i < aRows; i++ {
		for j = 0; j < bCols; j++ {
			sum = fraction.Zero
			for k = 0; k < aCols; k++ {
				if av, err = a.At(i, k); err != nil {
					return nil, atErrorf(opMul, i, k, err)
				}
				if av.IsZero() {
					continue
				}
				if bv, err = b.At(k, j); err != nil {
					return nil, atErrorf(opMul, k, j, err)
				}
				sum = sum.Add(av.Mul(bv))
			}
			res.data[i*bCols+j] = sum
		}
	}

	return res, nil
}

// Transpose returns a new matrix with rows and columns swapped (mᵀ):
// result is c×r with result[i,j] = m[j,i].
//
// Errors:
//   - ErrNilMatrix, ErrInvalidDimensions.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Transpose(m Matrix) (*Dense, error) {
	if err := ValidateOperand(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	rows, cols := m.Rows(), m.Cols()
	res := newDense(cols, rows) // dims flipped

	var i, j int
	if dm, ok := m.(*Dense); ok {
		// data[i*cols + j] → res.data[j*rows + i]
		for i = 0; i < rows; i++ {
			for j = 0; j < cols; j++ {
				res.data[j*rows+i] = dm.data[i*cols+j]
			}
		}

		return res, nil
	}

	var (
		v   fraction.Fraction
		err error
	)
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, atErrorf(opTranspose, i, j, err)
			}
			res.data[j*rows+i] = v
		}
	}

	return res, nil
}

// ConcatHorizontal returns [A | B]: A.Rows rows, A.Cols+B.Cols columns, with
// A in the left block and B in the right block.
//
// Only the row counts must agree; squareness is the concern of callers such
// as Inverse, not of concatenation.
//
// Errors:
//   - ErrNilMatrix, ErrInvalidDimensions, ErrDimensionMismatch (row counts differ).
//
// Complexity:
//   - Time O(r*(ca+cb)), Space O(r*(ca+cb)).
func ConcatHorizontal(a, b Matrix) (*Dense, error) {
	if err := ValidateOperand(a); err != nil {
		return nil, matrixErrorf(opConcat, err)
	}
	if err := ValidateOperand(b); err != nil {
		return nil, matrixErrorf(opConcat, err)
	}
	if err := ValidateSameRows(a, b); err != nil {
		return nil, matrixErrorf(opConcat, err)
	}

	rows, aCols, bCols := a.Rows(), a.Cols(), b.Cols()
	cols := aCols + bCols
	res := newDense(rows, cols)

	da, okA := a.(*Dense)
	db, okB := b.(*Dense)
	if okA && okB {
		for i := 0; i < rows; i++ {
			copy(res.data[i*cols:i*cols+aCols], da.data[i*aCols:(i+1)*aCols])
			copy(res.data[i*cols+aCols:(i+1)*cols], db.data[i*bCols:(i+1)*bCols])
		}

		return res, nil
	}

	var (
		i, j int
		v    fraction.Fraction
		err  error
	)
	for i = 0; i < rows; i++ {
		for j = 0; j < aCols; j++ {
			if v, err = a.At(i, j); err != nil {
				return nil, atErrorf(opConcat, i, j, err)
			}
			res.data[i*cols+j] = v
		}
		for j = 0; j < bCols; j++ {
			if v, err = b.At(i, j); err != nil {
				return nil, atErrorf(opConcat, i, j, err)
			}
			res.data[i*cols+aCols+j] = v
		}
	}

	return res, nil
}
