// SPDX-License-Identifier: MIT
// Package matrix_test contains unit tests for Solve.
package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/exactla/matrix"
	"github.com/stretchr/testify/require"
)

func TestSolve_Diagonal(t *testing.T) {
	t.Parallel()

	a := MustDense(t, [][]int64{{2, 0}, {0, 2}})
	b := MustDense(t, [][]int64{{4}, {6}})

	x, err := a.Solve(b)
	require.NoError(t, err)
	RequireMatrixEqual(t, MustDense(t, [][]int64{{2}, {3}}), x)
}

func TestSolve_FractionalSolution(t *testing.T) {
	t.Parallel()

	// x + 2y = 1, 3x + 4y = 0  →  x = -2, y = 3/2
	a := MustDense(t, [][]int64{{1, 2}, {3, 4}})
	b := MustDense(t, [][]int64{{1}, {0}})

	x, err := matrix.Solve(a, b)
	require.NoError(t, err)
	RequireMatrixEqual(t, MustDenseStr(t, [][]string{{"-2"}, {"3/2"}}), x)
}

func TestSolve_MultipleRightHandSides(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewSource(5))
	a := RandomInvertible(t, rng, 4, 4)
	want := RandomIntDense(t, rng, 4, 3, 10)
	b, err := matrix.Mul(a, want)
	require.NoError(t, err)

	x, err := matrix.Solve(a, b)
	require.NoError(t, err)
	RequireMatrixEqual(t, want, x)

	// generic path gives the same answer
	x, err = matrix.Solve(hide{a}, hide{b})
	require.NoError(t, err)
	RequireMatrixEqual(t, want, x)
}

func TestSolve_Errors(t *testing.T) {
	t.Parallel()

	square := MustDense(t, [][]int64{{1, 2}, {3, 4}})
	singular := MustDense(t, [][]int64{{1, 2}, {2, 4}})
	wide := MustDense(t, [][]int64{{1, 2, 3}, {4, 5, 6}})

	tests := []struct {
		name    string
		a, b    matrix.Matrix
		wantErr []error
	}{
		{"rows of b differ from cols of a", square, MustDense(t, [][]int64{{1}, {2}, {3}}), []error{matrix.ErrDimensionMismatch}},
		{"singular", singular, MustDense(t, [][]int64{{1}, {2}}), []error{matrix.ErrNoSolution, matrix.ErrNotInvertible}},
		{"non-square a", wide, MustDense(t, [][]int64{{1}, {2}, {3}}), []error{matrix.ErrDimensionMismatch}},
		{"nil a", nil, square, []error{matrix.ErrNilMatrix}},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			x, err := matrix.Solve(tc.a, tc.b)
			require.Nil(t, x)
			for _, want := range tc.wantErr {
				require.ErrorIs(t, err, want)
			}
		})
	}
}

func TestSolve_NonSquareIsNotNoSolution(t *testing.T) {
	t.Parallel()

	wide := MustDense(t, [][]int64{{1, 2, 3}, {4, 5, 6}})
	_, err := matrix.Solve(wide, MustDense(t, [][]int64{{1}, {2}, {3}}))
	require.NotErrorIs(t, err, matrix.ErrNoSolution)
}

func TestSolve_ForwardsOptions(t *testing.T) {
	t.Parallel()

	calls := 0
	_, err := matrix.Solve(
		MustDense(t, [][]int64{{3, 1}, {1, 2}}),
		MustDense(t, [][]int64{{9}, {8}}),
		matrix.WithOnPivot(func(matrix.PivotStep) error { calls++; return nil }),
	)
	require.NoError(t, err)
	require.Equal(t, 2, calls)
}
