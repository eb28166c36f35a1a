// SPDX-License-Identifier: MIT

package fraction

import "math/big"

// Shared read-only integers backing the zero value. Never mutated.
var (
	bigZero = big.NewInt(0)
	bigOne  = big.NewInt(1)
)

// Zero and One are ready-made constants. They carry no identity semantics:
// compare with Equal, never with ==.
var (
	Zero = FromInt(0)
	One  = FromInt(1)
)

// Fraction is an immutable, normalized rational number num/den.
//   - den > 0 and gcd(|num|, den) == 1 for every value built by this package.
//   - The zero value Fraction{} reads as 0/1.
//   - The big.Int fields are owned by the Fraction and never mutated after
//     construction, so copies may share them.
type Fraction struct {
	num *big.Int // numerator, sign of the fraction
	den *big.Int // denominator, always > 0
}

// n returns the numerator, treating the zero value as 0. Read-only.
func (f Fraction) n() *big.Int {
	if f.num == nil {
		return bigZero
	}

	return f.num
}

// d returns the denominator, treating the zero value as 1. Read-only.
func (f Fraction) d() *big.Int {
	if f.den == nil {
		return bigOne
	}

	return f.den
}

// normalize divides num and den by their signed GCD and wraps them.
// It takes ownership of both arguments; den must be non-zero.
func normalize(num, den *big.Int) Fraction {
	g := signedGCD(num, den) // carries the sign of den, so den/g > 0
	num.Quo(num, g)
	den.Quo(den, g)

	return Fraction{num: num, den: den}
}

// New returns the normalized fraction num/den.
// Returns ErrDivisionByZero when den == 0.
func New(num, den int64) (Fraction, error) {
	if den == 0 {
		return Fraction{}, ErrDivisionByZero
	}

	return normalize(big.NewInt(num), big.NewInt(den)), nil
}

// NewBig returns the normalized fraction num/den for arbitrary-precision
// inputs. Both arguments are copied; the caller keeps ownership.
// Returns ErrDivisionByZero when den is zero or nil.
func NewBig(num, den *big.Int) (Fraction, error) {
	if den == nil || den.Sign() == 0 {
		return Fraction{}, ErrDivisionByZero
	}
	n := new(big.Int)
	if num != nil {
		n.Set(num)
	}

	return normalize(n, new(big.Int).Set(den)), nil
}

// FromInt returns the integer n as the fraction n/1.
func FromInt(n int64) Fraction {
	return Fraction{num: big.NewInt(n), den: big.NewInt(1)}
}

// FromBigInt returns the integer n as the fraction n/1. n is copied.
func FromBigInt(n *big.Int) Fraction {
	if n == nil {
		return Zero
	}

	return Fraction{num: new(big.Int).Set(n), den: big.NewInt(1)}
}

// Add returns f + r.
func (f Fraction) Add(r Fraction) Fraction {
	num := new(big.Int).Mul(f.n(), r.d())
	num.Add(num, new(big.Int).Mul(f.d(), r.n()))

	return normalize(num, new(big.Int).Mul(f.d(), r.d()))
}

// Sub returns f - r.
func (f Fraction) Sub(r Fraction) Fraction {
	num := new(big.Int).Mul(f.n(), r.d())
	num.Sub(num, new(big.Int).Mul(f.d(), r.n()))

	return normalize(num, new(big.Int).Mul(f.d(), r.d()))
}

// Neg returns -f.
func (f Fraction) Neg() Fraction {
	return normalize(new(big.Int).Neg(f.n()), new(big.Int).Set(f.d()))
}

// Mul returns f * r.
func (f Fraction) Mul(r Fraction) Fraction {
	return normalize(
		new(big.Int).Mul(f.n(), r.n()),
		new(big.Int).Mul(f.d(), r.d()),
	)
}

// Reciprocal returns 1/f, or ErrDivisionByZero when f is zero.
func (f Fraction) Reciprocal() (Fraction, error) {
	if f.IsZero() {
		return Fraction{}, ErrDivisionByZero
	}

	return normalize(new(big.Int).Set(f.d()), new(big.Int).Set(f.n())), nil
}

// Div returns f / r, or ErrDivisionByZero when r is zero.
func (f Fraction) Div(r Fraction) (Fraction, error) {
	if r.IsZero() {
		return Fraction{}, ErrDivisionByZero
	}

	return normalize(
		new(big.Int).Mul(f.n(), r.d()),
		new(big.Int).Mul(f.d(), r.n()),
	), nil
}

// Cmp compares f and r exactly and returns -1, 0 or +1.
// Both denominators are positive, so comparing num_f*den_r against
// num_r*den_f needs no sign correction.
func (f Fraction) Cmp(r Fraction) int {
	left := new(big.Int).Mul(f.n(), r.d())
	right := new(big.Int).Mul(r.n(), f.d())

	return left.Cmp(right)
}

// GreaterThan reports whether f > r.
func (f Fraction) GreaterThan(r Fraction) bool { return f.Cmp(r) > 0 }

// Equal reports whether f and r have the same normalized numerator and
// denominator.
func (f Fraction) Equal(r Fraction) bool {
	return f.n().Cmp(r.n()) == 0 && f.d().Cmp(r.d()) == 0
}

// Abs returns |f|.
func (f Fraction) Abs() Fraction {
	if f.Sign() >= 0 {
		return f
	}

	return f.Neg()
}

// Sign returns -1, 0 or +1 depending on the sign of f.
func (f Fraction) Sign() int { return f.n().Sign() }

// IsZero reports whether f == 0.
func (f Fraction) IsZero() bool { return f.n().Sign() == 0 }

// IsInt reports whether the denominator is 1.
func (f Fraction) IsInt() bool { return f.d().Cmp(bigOne) == 0 }

// Num returns a copy of the normalized numerator.
func (f Fraction) Num() *big.Int { return new(big.Int).Set(f.n()) }

// Den returns a copy of the normalized (positive) denominator.
func (f Fraction) Den() *big.Int { return new(big.Int).Set(f.d()) }

// Rat returns f as a freshly allocated *big.Rat.
func (f Fraction) Rat() *big.Rat { return new(big.Rat).SetFrac(f.n(), f.d()) }

// String renders f as "p" when the denominator is 1 and "p/q" otherwise.
func (f Fraction) String() string {
	if f.IsInt() {
		return f.n().String()
	}

	return f.n().String() + "/" + f.d().String()
}
