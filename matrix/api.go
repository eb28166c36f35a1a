// SPDX-License-Identifier: MIT
// Package matrix: public API facades.
//
// Purpose:
//   - Provide identity constructors and method-style entry points on *Dense.
//   - Each facade delegates to the canonical kernel; no logic is duplicated.
//
// Determinism & Policy:
//   - Facades never change the loop orders or exactness policy of the kernels.
//   - Validation is performed in the kernels; facades only forward.

package matrix

import "github.com/katalvlaran/exactla/fraction"

// ---------- Constructors ----------

// Identity returns I_n (ones on the diagonal, zeros elsewhere).
// Errors: ErrInvalidDimensions when n < 1.
// Complexity: O(n^2).
func Identity(n int) (*Dense, error) {
	if n < 1 {
		return nil, matrixErrorf(opIdentity, ErrInvalidDimensions)
	}
	id := newDense(n, n) // zero value of fraction.Fraction is 0
	for i := 0; i < n; i++ {
		id.data[i*n+i] = fraction.One
	}

	return id, nil
}

// IdentityLike returns I with dimension Rows(m); m must be square.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
func IdentityLike(m Matrix) (*Dense, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return nil, matrixErrorf(opIdentity, err)
	}

	return Identity(m.Rows())
}

// ---------- Method facades (map 1:1 to kernels) ----------

// Add returns m + b. See Add.
func (m *Dense) Add(b Matrix) (*Dense, error) { return Add(m, b) }

// Sub returns m − b. See Sub.
func (m *Dense) Sub(b Matrix) (*Dense, error) { return Sub(m, b) }

// Mul returns m × b. See Mul.
func (m *Dense) Mul(b Matrix) (*Dense, error) { return Mul(m, b) }

// Scale returns alpha·m. See Scale.
func (m *Dense) Scale(alpha fraction.Fraction) (*Dense, error) { return Scale(m, alpha) }

// T returns mᵀ. See Transpose.
func (m *Dense) T() (*Dense, error) { return Transpose(m) }

// Augment returns [m | b]. See ConcatHorizontal.
func (m *Dense) Augment(b Matrix) (*Dense, error) { return ConcatHorizontal(m, b) }

// Inverse returns m⁻¹. See Inverse.
func (m *Dense) Inverse(opts ...Option) (*Dense, error) { return Inverse(m, opts...) }

// Solve returns x with m·x = b. See Solve.
func (m *Dense) Solve(b Matrix, opts ...Option) (*Dense, error) { return Solve(m, b, opts...) }

// Det returns det(m). See Determinant.
func (m *Dense) Det() (fraction.Fraction, error) { return Determinant(m) }

// Equal reports whether m and b have equal shape and entries. See Equal.
func (m *Dense) Equal(b Matrix) bool { return Equal(m, b) }
