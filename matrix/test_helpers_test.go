// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic fixtures and utilities for kernels.
//   • Compare matrices exactly (fraction.Equal), never through reflection.

package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/exactla/fraction"
	"github.com/katalvlaran/exactla/matrix"
	"github.com/stretchr/testify/require"
)

// hide wraps any Matrix to hide its concrete type from type assertions,
// forcing kernels onto their generic (non-*Dense) path.
type hide struct{ matrix.Matrix }

// MustDense builds a *Dense from an integer grid or fails the test.
func MustDense(t testing.TB, grid [][]int64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDenseFromInts(grid)
	require.NoError(t, err, "NewDenseFromInts(%v)", grid)

	return m
}

// MustFrac parses "p" or "p/q" or fails the test.
func MustFrac(t testing.TB, s string) fraction.Fraction {
	t.Helper()
	f, err := fraction.Parse(s)
	require.NoError(t, err, "Parse(%q)", s)

	return f
}

// MustDenseStr builds a *Dense from a grid of fraction literals.
func MustDenseStr(t testing.TB, grid [][]string) *matrix.Dense {
	t.Helper()
	rows := make([][]fraction.Fraction, len(grid))
	for i, row := range grid {
		rows[i] = make([]fraction.Fraction, len(row))
		for j, s := range row {
			rows[i][j] = MustFrac(t, s)
		}
	}
	m, err := matrix.NewDense(rows)
	require.NoError(t, err)

	return m
}

// MustIdentity returns I_n or fails the test.
func MustIdentity(t testing.TB, n int) *matrix.Dense {
	t.Helper()
	id, err := matrix.Identity(n)
	require.NoError(t, err)

	return id
}

// MustAt reads m[i,j] or fails the test.
func MustAt(t testing.TB, m matrix.Matrix, i, j int) fraction.Fraction {
	t.Helper()
	v, err := m.At(i, j)
	require.NoError(t, err, "At(%d,%d)", i, j)

	return v
}

// RequireMatrixEqual fails unless want and got are exactly equal.
func RequireMatrixEqual(t testing.TB, want, got matrix.Matrix) {
	t.Helper()
	require.Truef(t, matrix.Equal(want, got), "matrices differ:\nwant %s\n got %s",
		matrix.Format(want), matrix.Format(got))
}

// RandomIntDense fills an r×c matrix with integers in [-spread, spread].
func RandomIntDense(t testing.TB, rng *rand.Rand, r, c int, spread int64) *matrix.Dense {
	t.Helper()
	grid := make([][]int64, r)
	for i := range grid {
		grid[i] = make([]int64, c)
		for j := range grid[i] {
			grid[i][j] = rng.Int63n(2*spread+1) - spread
		}
	}

	return MustDense(t, grid)
}

// RandomInvertible returns L·U where L is unit lower triangular and U is
// unit upper triangular with random integer off-diagonals; det == 1, so the
// result is always invertible. A random row permutation makes natural
// diagonal pivots unreliable.
func RandomInvertible(t testing.TB, rng *rand.Rand, n int, spread int64) *matrix.Dense {
	t.Helper()
	lower := make([][]int64, n)
	upper := make([][]int64, n)
	for i := 0; i < n; i++ {
		lower[i] = make([]int64, n)
		upper[i] = make([]int64, n)
		lower[i][i], upper[i][i] = 1, 1
		for j := 0; j < n; j++ {
			if j < i {
				lower[i][j] = rng.Int63n(2*spread+1) - spread
			}
			if j > i {
				upper[i][j] = rng.Int63n(2*spread+1) - spread
			}
		}
	}
	perm := rng.Perm(n)
	permuted := make([][]int64, n)
	for i, p := range perm {
		permuted[i] = lower[p]
	}

	lu, err := matrix.Mul(MustDense(t, permuted), MustDense(t, upper))
	require.NoError(t, err)

	return lu
}

// shapeOnly is a foreign Matrix reporting arbitrary dimensions, including
// empty ones, with every entry equal to 1.
type shapeOnly struct{ r, c int }

func (s shapeOnly) Rows() int { return s.r }
func (s shapeOnly) Cols() int { return s.c }
func (s shapeOnly) At(int, int) (fraction.Fraction, error) {
	return fraction.One, nil
}

// unreadable is a 1×1 foreign Matrix whose every read fails.
type unreadable struct{}

func (unreadable) Rows() int { return 1 }
func (unreadable) Cols() int { return 1 }
func (unreadable) At(int, int) (fraction.Fraction, error) {
	return fraction.Fraction{}, matrix.ErrOutOfRange
}
