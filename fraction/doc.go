// SPDX-License-Identifier: MIT

// Package fraction implements an exact rational scalar backed by math/big.
//
// A Fraction is always stored in normalized form:
//
//   - the denominator is strictly positive;
//   - numerator and denominator share no common factor;
//   - zero is represented as 0/1.
//
// Fractions are immutable values. Every arithmetic method returns a new,
// normalized Fraction and never touches its receiver or arguments, so a
// Fraction may be copied, shared between goroutines and used as a map value
// freely. The zero value Fraction{} is the number 0.
//
// Comparison (Cmp, GreaterThan) uses exact cross-multiplication on the
// underlying integers. No method converts through float64.
//
// Errors:
//
//   - ErrDivisionByZero: zero denominator, Div by zero, Reciprocal of zero.
//   - ErrSyntax:         Parse / UnmarshalText on malformed text.
//
// Example:
//
//	half, _ := fraction.New(1, 2)
//	third, _ := fraction.New(1, 3)
//	fmt.Println(half.Add(third)) // 5/6
package fraction
