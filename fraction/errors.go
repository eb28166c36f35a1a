// SPDX-License-Identifier: MIT

package fraction

import "errors"

var (
	// ErrDivisionByZero is returned when a fraction would get a zero
	// denominator: New/NewBig with den == 0, Div by a zero fraction, or
	// Reciprocal of zero.
	ErrDivisionByZero = errors.New("fraction: division by zero")

	// ErrSyntax is returned by Parse and UnmarshalText for text that is not
	// of the form "p" or "p/q".
	ErrSyntax = errors.New("fraction: invalid syntax")
)
