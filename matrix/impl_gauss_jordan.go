// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"

	"github.com/katalvlaran/exactla/fraction"
)

// Inverse computes A⁻¹ exactly by Gauss-Jordan elimination on the augmented
// matrix [A | I]. The input is never mutated.
//
// Implementation:
//   - Stage 1: ValidateSquareNonNil(m). Build C = ConcatHorizontal(A, I_n)
//     and copy it into a private workspace.
//   - Stage 2: for each column j = 0..n-1 (see eliminate):
//     select the pivot among rows j..n-1 by greatest |C[i,j]| (ties → lowest
//     index); fail with ErrNotInvertible when it is zero; swap it into row j;
//     scale row j by 1/C[j,j]; clear column j in every other row with
//     addScaledRow(j, i, -C[i,j]); report the step to the OnPivot hook.
//   - Stage 3: the left block is now I_n; copy out the right block.
//
// Behavior highlights:
//   - Magnitude pivoting over the not-yet-pivoted rows is what makes the
//     algorithm complete: a zero on the natural diagonal is repaired by a
//     lower row whenever one exists.
//   - All arithmetic is exact; Inverse(A)·A == A·Inverse(A) == I_n holds
//     with equality, not within a tolerance.
//   - Fail fast: on any error no partial inverse is returned.
//
// Inputs:
//   - m: non-nil square matrix (n×n).
//   - opts: WithOnPivot.
//
// Returns:
//   - *Dense: n×n inverse.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (not square).
//   - ErrNotInvertible (no non-zero pivot in some column).
//   - ErrHookAborted (hook returned an error; wraps it).
//
// Complexity:
//   - Time O(n³) fraction operations, Space O(n²).
func Inverse(m Matrix, opts ...Option) (*Dense, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	o := gatherOptions(opts...)

	n := m.Rows()
	id, err := Identity(n)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	aug, err := ConcatHorizontal(m, id)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}

	ws := newWorkspace(aug)
	if err = ws.eliminate(n, o); err != nil {
		return nil, matrixErrorf(opInverse, err)
	}

	return ws.block(n, n), nil
}

// eliminate runs Gauss-Jordan over the first n columns of w, reducing them
// to the identity. Rows 0..j-1 are the already-pivoted rows when column j is
// processed, so candidates are exactly rows j..n-1.
func (w *workspace) eliminate(n int, o Options) error {
	var (
		i, j, p int
		pivot   fraction.Fraction
		inv     fraction.Fraction
		factor  fraction.Fraction
		err     error
	)
	for j = 0; j < n; j++ {
		p, pivot = w.pivotRow(j, j)
		if pivot.IsZero() {
			return fmt.Errorf("column %d: %w", j, ErrNotInvertible)
		}
		if p != j {
			w.swapRows(p, j)
		}

		if inv, err = pivot.Reciprocal(); err != nil {
			return err // unreachable: pivot is non-zero
		}
		w.scaleRow(j, inv) // C[j,j] becomes exactly 1

		for i = 0; i < n; i++ {
			if i == j {
				continue
			}
			factor = w.rows[i][j]
			if factor.IsZero() {
				continue // nothing to clear
			}
			w.addScaledRow(j, i, factor.Neg())
		}

		step := PivotStep{Column: j, Row: p, Pivot: pivot, Swapped: p != j}
		if err = o.onPivot(step); err != nil {
			return fmt.Errorf("column %d: %w: %w", j, ErrHookAborted, err)
		}
	}

	return nil
}
