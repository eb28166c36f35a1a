// SPDX-License-Identifier: MIT

package matrix

import (
	"errors"
	"fmt"
)

// Solve returns x with A·x = B for a square, invertible A, computed as
// x = Inverse(A)·B. B may have several columns (one system per column).
//
// Only square invertible systems are supported. A singular A is reported as
// ErrNoSolution (the error also matches ErrNotInvertible); there is no
// least-squares or particular-solution fallback.
//
// Errors:
//   - ErrNilMatrix.
//   - ErrDimensionMismatch when A.Cols != B.Rows, or A is not square.
//   - ErrNoSolution (+ ErrNotInvertible) when A is singular.
//   - ErrHookAborted from WithOnPivot.
//
// Complexity:
//   - Time O(n³ + n²·k) for B with k columns, Space O(n² + n·k).
func Solve(a, b Matrix, opts ...Option) (*Dense, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opSolve, err)
	}

	inv, err := Inverse(a, opts...)
	if err != nil {
		if errors.Is(err, ErrNotInvertible) {
			return nil, matrixErrorf(opSolve, fmt.Errorf("%w: %w", ErrNoSolution, err))
		}

		return nil, matrixErrorf(opSolve, err)
	}

	x, err := Mul(inv, b)
	if err != nil {
		return nil, matrixErrorf(opSolve, err)
	}

	return x, nil
}
