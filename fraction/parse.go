// SPDX-License-Identifier: MIT

package fraction

import (
	"fmt"
	"math/big"
	"strings"
)

// Parse reads a fraction written as "p" or "p/q", where p and q are base-10
// integers with an optional leading sign. Surrounding white space is ignored
// around the whole text and around each part. The result is normalized, so
// Parse("6/-4") returns -3/2.
//
// Errors:
//   - ErrSyntax when either part is empty or not an integer.
//   - ErrDivisionByZero when q == 0.
func Parse(s string) (Fraction, error) {
	numText, denText, hasDen := strings.Cut(strings.TrimSpace(s), "/")

	num, ok := parseInt(numText)
	if !ok {
		return Fraction{}, fmt.Errorf("%w: %q", ErrSyntax, s)
	}
	if !hasDen {
		return Fraction{num: num, den: big.NewInt(1)}, nil
	}

	den, ok := parseInt(denText)
	if !ok {
		return Fraction{}, fmt.Errorf("%w: %q", ErrSyntax, s)
	}
	if den.Sign() == 0 {
		return Fraction{}, fmt.Errorf("%w: %q", ErrDivisionByZero, s)
	}

	return normalize(num, den), nil
}

// parseInt parses one signed base-10 integer part.
func parseInt(s string) (*big.Int, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, false
	}

	return new(big.Int).SetString(s, 10)
}

// MarshalText implements encoding.TextMarshaler using String.
func (f Fraction) MarshalText() ([]byte, error) {
	return []byte(f.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler using Parse.
// On error the receiver is left unchanged.
func (f *Fraction) UnmarshalText(text []byte) error {
	v, err := Parse(string(text))
	if err != nil {
		return err
	}
	*f = v

	return nil
}
