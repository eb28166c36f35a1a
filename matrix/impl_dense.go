// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a row-major buffer of exact fractions with the index formula i*cols + j.
//   - Guarantee value semantics: no exported method mutates a *Dense, and every
//     constructor/accessor that hands grid data across the API boundary copies it.
//   - Guarantee safety at the public surface: At/Row return errors instead of panicking.
//
// Sharing:
//   - fraction.Fraction values are immutable, so copying the flat slice is a
//     full deep copy of the grid. Two *Dense never share a backing slice.
//
// Complexity quicksheet:
//   - NewDense: O(r*c); At: O(1); Row: O(c); Grid/Clone: O(r*c).

package matrix

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/exactla/fraction"
)

// ---------- error context tags ----------

const (
	ctxAt  = "At"  // method tag used in error wrappers
	ctxRow = "Row" // method tag used in error wrappers
)

// ---------- Formatting literals ----------

const (
	_fmtOpen  = "["
	_fmtClose = "]"
	_fmtSep   = ", "
	_fmtBad   = "?" // entry whose At failed
)

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is an immutable row-major matrix of exact fractions.
//   - r,c hold dimensions (rows, cols), both ≥ 1 for every exported value.
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
//
// The zero value is not a usable matrix; build one with NewDense,
// NewDenseFromInts, NewZeros or Identity.
type Dense struct {
	r, c int                 // row and column counts
	data []fraction.Fraction // contiguous row-major storage (len == r*c)
}

// Compile-time assertions for interface & fmt.Stringer conformance.
var (
	_ Matrix       = (*Dense)(nil)
	_ fmt.Stringer = (*Dense)(nil)
)

// newDense allocates an r×c matrix filled with zero fractions.
// Internal: callers guarantee rows, cols ≥ 1 and fill it before publishing.
func newDense(rows, cols int) *Dense {
	return &Dense{r: rows, c: cols, data: make([]fraction.Fraction, rows*cols)}
}

// NewDense builds a matrix from a caller-supplied grid (fromGrid).
//
// Implementation:
//   - Stage 1: ValidateGrid: at least one row, first row non-empty, all rows equal length.
//   - Stage 2: copy every value into a fresh flat buffer.
//
// The grid is deep-copied: later changes to grid do not affect the result.
//
// Errors:
//   - ErrInvalidDimensions, ErrRaggedGrid.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDense(grid [][]fraction.Fraction) (*Dense, error) {
	rows, cols, err := ValidateGrid(grid)
	if err != nil {
		return nil, matrixErrorf(opNewDense, err)
	}

	res := newDense(rows, cols)
	for i := 0; i < rows; i++ {
		copy(res.data[i*cols:(i+1)*cols], grid[i])
	}

	return res, nil
}

// NewDenseFromInts builds a matrix from an integer grid (fromIntegerGrid),
// converting every entry with fraction.FromInt.
//
// Errors:
//   - ErrInvalidDimensions, ErrRaggedGrid.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDenseFromInts(grid [][]int64) (*Dense, error) {
	rows, cols, err := ValidateGrid(grid)
	if err != nil {
		return nil, matrixErrorf(opNewDense, err)
	}

	res := newDense(rows, cols)
	var i, j int
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			res.data[i*cols+j] = fraction.FromInt(grid[i][j])
		}
	}

	return res, nil
}

// NewZeros returns a rows×cols matrix of zeros.
// Errors: ErrInvalidDimensions when rows or cols is not positive.
func NewZeros(rows, cols int) (*Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, matrixErrorf(opNewDense, ErrInvalidDimensions)
	}

	return newDense(rows, cols), nil
}

// Rows returns the row count. Complexity: O(1).
func (m *Dense) Rows() int { return m.r }

// Cols returns the column count. Complexity: O(1).
func (m *Dense) Cols() int { return m.c }

// Shape packs Rows() and Cols() into a single call for convenience.
func (m *Dense) Shape() (rows, cols int) { return m.r, m.c }

// indexOf computes the row-major offset or returns ErrOutOfRange.
func (m *Dense) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.r {
		return 0, ErrOutOfRange
	}
	if col < 0 || col >= m.c {
		return 0, ErrOutOfRange
	}

	// Row-major offset: i*c + j.
	return row*m.c + col, nil
}

// At returns the value at (row, col) or ErrOutOfRange.
// Complexity: O(1).
func (m *Dense) At(row, col int) (fraction.Fraction, error) {
	idx, err := m.indexOf(row, col)
	if err != nil {
		return fraction.Fraction{}, denseErrorf(ctxAt, row, col, err)
	}

	return m.data[idx], nil
}

// Row returns a copy of row i. Errors: ErrOutOfRange.
// Complexity: O(c).
func (m *Dense) Row(i int) ([]fraction.Fraction, error) {
	if i < 0 || i >= m.r {
		return nil, denseErrorf(ctxRow, i, 0, ErrOutOfRange)
	}
	out := make([]fraction.Fraction, m.c)
	copy(out, m.data[i*m.c:(i+1)*m.c])

	return out, nil
}

// Grid returns a freshly allocated [][]fraction.Fraction copy of the matrix.
// Complexity: O(r*c).
func (m *Dense) Grid() [][]fraction.Fraction {
	out := make([][]fraction.Fraction, m.r)
	for i := range out {
		out[i] = make([]fraction.Fraction, m.c)
		copy(out[i], m.data[i*m.c:(i+1)*m.c])
	}

	return out
}

// Clone returns a deep copy of the matrix with independent storage.
// Complexity: O(r*c).
func (m *Dense) Clone() *Dense {
	data := make([]fraction.Fraction, len(m.data))
	copy(data, m.data)

	return &Dense{r: m.r, c: m.c, data: data}
}

// asDense returns m itself when it is a *Dense and otherwise copies it
// through At. Callers validate m first.
func asDense(m Matrix, tag string) (*Dense, error) {
	if d, ok := m.(*Dense); ok {
		return d, nil
	}
	r, c := m.Rows(), m.Cols()
	d := newDense(r, c)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			v, err := m.At(i, j)
			if err != nil {
				return nil, atErrorf(tag, i, j, err)
			}
			d.data[i*c+j] = v
		}
	}

	return d, nil
}

// String implements fmt.Stringer; see Format.
func (m *Dense) String() string {
	if m == nil {
		return "<nil>"
	}

	return Format(m)
}

// Format renders m as a nested, row-major list, e.g. "[[1, 1/2], [0, -3]]".
// Entries use fraction.Fraction.String; an entry whose At fails renders as
// "?". A nil matrix renders as "<nil>".
// Complexity: O(r*c).
func Format(m Matrix) string {
	if ValidateNotNil(m) != nil {
		return "<nil>"
	}

	var sb strings.Builder
	rows, cols := m.Rows(), m.Cols()
	sb.WriteString(_fmtOpen)
	for i := 0; i < rows; i++ {
		if i > 0 {
			sb.WriteString(_fmtSep)
		}
		sb.WriteString(_fmtOpen)
		for j := 0; j < cols; j++ {
			if j > 0 {
				sb.WriteString(_fmtSep)
			}
			v, err := m.At(i, j)
			if err != nil {
				sb.WriteString(_fmtBad)
				continue
			}
			sb.WriteString(v.String())
		}
		sb.WriteString(_fmtClose)
	}
	sb.WriteString(_fmtClose)

	return sb.String()
}

// Equal reports whether a and b have the same shape and equal entries.
// Nil matrices are equal only to each other.
// Complexity: O(r*c) fraction comparisons.
func Equal(a, b Matrix) bool {
	aNil, bNil := ValidateNotNil(a) != nil, ValidateNotNil(b) != nil
	if aNil || bNil {
		return aNil && bNil
	}
	if ValidateSameShape(a, b) != nil {
		return false
	}

	// Fast path: compare flat buffers directly.
	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			for idx := range da.data {
				if !da.data[idx].Equal(db.data[idx]) {
					return false
				}
			}

			return true
		}
	}

	var (
		i, j   int
		av, bv fraction.Fraction
		err    error
	)
	for i = 0; i < a.Rows(); i++ {
		for j = 0; j < a.Cols(); j++ {
			if av, err = a.At(i, j); err != nil {
				return false
			}
			if bv, err = b.At(i, j); err != nil {
				return false
			}
			if !av.Equal(bv) {
				return false
			}
		}
	}

	return true
}
