// SPDX-License-Identifier: MIT

package matrix

import "github.com/katalvlaran/exactla/fraction"

// Determinant returns det(m) exactly by forward elimination in a private
// workspace, using the same pivot rule as Inverse (greatest |entry| among the
// remaining rows, lowest index on ties).
//
// Steps:
//   - For each column j, pick the pivot among rows j..n-1. A zero pivot means
//     the matrix is singular and the result is 0 (not an error).
//   - A row exchange flips the sign of the running product.
//   - Multiply the running product by the pivot, then clear column j below
//     row j with addScaledRow(j, i, -C[i,j]/pivot).
//
// Errors: ErrNilMatrix, ErrDimensionMismatch (not square).
// Complexity: Time O(n³) fraction operations, Space O(n²).
func Determinant(m Matrix) (fraction.Fraction, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return fraction.Fraction{}, matrixErrorf(opDet, err)
	}
	d, err := asDense(m, opDet)
	if err != nil {
		return fraction.Fraction{}, err
	}

	n := d.r
	ws := newWorkspace(d)
	det := fraction.One
	for j := 0; j < n; j++ {
		p, pivot := ws.pivotRow(j, j)
		if pivot.IsZero() {
			return fraction.Zero, nil
		}
		if p != j {
			ws.swapRows(p, j)
			det = det.Neg()
		}
		det = det.Mul(pivot)

		inv, err := pivot.Reciprocal()
		if err != nil {
			return fraction.Fraction{}, matrixErrorf(opDet, err) // unreachable: pivot is non-zero
		}
		for i := j + 1; i < n; i++ {
			factor := ws.rows[i][j]
			if factor.IsZero() {
				continue
			}
			ws.addScaledRow(j, i, factor.Mul(inv).Neg())
		}
	}

	return det, nil
}
