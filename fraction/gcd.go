// SPDX-License-Identifier: MIT

package fraction

import "math/big"

// signedGCD returns the greatest common divisor of a and b carrying the sign
// of b. Dividing a and b by the result therefore always leaves a positive b.
//
// Rules, applied in order:
//
//	a < 0  ⇒ gcd(-a, b)
//	b < 0  ⇒ -gcd(a, -b)
//	a < b  ⇒ gcd(b, a)
//	b == 0 ⇒ a
//	else   ⇒ gcd(b, a mod b)
//
// The tail calls are unrolled into a loop; the result is identical to the
// recursive definition. Inputs are never modified.
// Complexity: O(log(min(|a|,|b|))) big.Int remainders.
func signedGCD(a, b *big.Int) *big.Int {
	x := new(big.Int).Abs(a) // rule 1: sign of a is irrelevant
	y := new(big.Int).Set(b)

	negate := false
	if y.Sign() < 0 { // rule 2: remember to negate once, continue on |b|
		negate = true
		y.Neg(y)
	}

	for {
		if x.Cmp(y) < 0 { // rule 3
			x, y = y, x
		}
		if y.Sign() == 0 { // rule 4
			break
		}
		x.Rem(x, y) // rule 5: (a, b) -> (b, a mod b)
		x, y = y, x
	}

	if negate {
		x.Neg(x)
	}

	return x
}
