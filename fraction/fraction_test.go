// SPDX-License-Identifier: MIT
// Package fraction_test contains unit tests for the exact fraction scalar.
package fraction_test

import (
	"math/big"
	"math/rand"
	"testing"

	"github.com/katalvlaran/exactla/fraction"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mustNew builds num/den or fails the test.
func mustNew(t *testing.T, num, den int64) fraction.Fraction {
	t.Helper()
	f, err := fraction.New(num, den)
	require.NoError(t, err, "New(%d,%d)", num, den)

	return f
}

// requireEqual compares fractions structurally; reflect-based equality
// is not meaningful for the big.Int internals.
func requireEqual(t *testing.T, want, got fraction.Fraction) {
	t.Helper()
	require.Truef(t, want.Equal(got), "want %s, got %s", want, got)
}

func TestNew_Normalization(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name          string
		num, den      int64
		wantN, wantD  int64
		wantRendering string
	}{
		{"already reduced", 1, 2, 1, 2, "1/2"},
		{"common factor", 2, 4, 1, 2, "1/2"},
		{"negative denominator", 3, -6, -1, 2, "-1/2"},
		{"both negative", -4, -8, 1, 2, "1/2"},
		{"negative numerator", -9, 6, -3, 2, "-3/2"},
		{"zero over positive", 0, 7, 0, 1, "0"},
		{"zero over negative", 0, -7, 0, 1, "0"},
		{"integer", 12, 4, 3, 1, "3"},
		{"one", 5, 5, 1, 1, "1"},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			f := mustNew(t, tc.num, tc.den)
			assert.Equal(t, 0, f.Num().Cmp(big.NewInt(tc.wantN)), "numerator of %s", f)
			assert.Equal(t, 0, f.Den().Cmp(big.NewInt(tc.wantD)), "denominator of %s", f)
			assert.Equal(t, tc.wantRendering, f.String())
		})
	}
}

func TestNew_RandomInvariants(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewSource(42))
	var (
		a, b int64
		g    big.Int
	)
	for i := 0; i < 500; i++ {
		a = rng.Int63n(20001) - 10000
		b = rng.Int63n(20001) - 10000
		if a == 0 || b == 0 {
			continue
		}
		f := mustNew(t, a, b)
		require.Equal(t, 1, f.Den().Sign(), "denominator must be positive for %d/%d", a, b)
		g.GCD(nil, nil, new(big.Int).Abs(f.Num()), f.Den())
		require.Equal(t, 0, g.Cmp(big.NewInt(1)), "gcd must be 1 for %d/%d -> %s", a, b, f)
	}
}

func TestNew_ZeroDenominator(t *testing.T) {
	t.Parallel()

	_, err := fraction.New(1, 0)
	require.ErrorIs(t, err, fraction.ErrDivisionByZero)

	_, err = fraction.NewBig(big.NewInt(1), big.NewInt(0))
	require.ErrorIs(t, err, fraction.ErrDivisionByZero)

	_, err = fraction.NewBig(big.NewInt(1), nil)
	require.ErrorIs(t, err, fraction.ErrDivisionByZero)
}

func TestNewBig_CopiesInputs(t *testing.T) {
	t.Parallel()

	num, den := big.NewInt(10), big.NewInt(4)
	f, err := fraction.NewBig(num, den)
	require.NoError(t, err)

	// caller-owned values are neither reduced in place nor aliased
	require.Equal(t, "10", num.String())
	require.Equal(t, "4", den.String())
	num.SetInt64(99)
	requireEqual(t, mustNew(t, 5, 2), f)

	// copies handed out by Num/Den are independent too
	f.Num().SetInt64(1000)
	requireEqual(t, mustNew(t, 5, 2), f)
}

func TestReducedFormEquality(t *testing.T) {
	t.Parallel()

	requireEqual(t, mustNew(t, 1, 2), mustNew(t, 2, 4))
	requireEqual(t, fraction.Zero, fraction.Fraction{})
	requireEqual(t, fraction.One, mustNew(t, 7, 7))
	require.False(t, mustNew(t, 1, 2).Equal(mustNew(t, -1, 2)))
}

func TestArithmetic(t *testing.T) {
	t.Parallel()

	half := mustNew(t, 1, 2)
	third := mustNew(t, 1, 3)

	requireEqual(t, mustNew(t, 5, 6), half.Add(third))
	requireEqual(t, mustNew(t, 1, 6), half.Sub(third))
	requireEqual(t, mustNew(t, -1, 6), third.Sub(half))
	requireEqual(t, mustNew(t, 1, 6), half.Mul(third))
	requireEqual(t, mustNew(t, -1, 2), half.Neg())
	requireEqual(t, half, half.Neg().Neg())

	q, err := half.Div(third)
	require.NoError(t, err)
	requireEqual(t, mustNew(t, 3, 2), q)

	r, err := mustNew(t, -3, 4).Reciprocal()
	require.NoError(t, err)
	requireEqual(t, mustNew(t, -4, 3), r)

	// operands are untouched
	requireEqual(t, mustNew(t, 1, 2), half)
	requireEqual(t, mustNew(t, 1, 3), third)
}

func TestArithmetic_ZeroValue(t *testing.T) {
	t.Parallel()

	var z fraction.Fraction
	two := fraction.FromInt(2)

	requireEqual(t, two, z.Add(two))
	requireEqual(t, two.Neg(), z.Sub(two))
	requireEqual(t, fraction.Zero, z.Mul(two))
	require.True(t, z.IsZero())
	require.True(t, z.IsInt())
	require.Equal(t, "0", z.String())
}

func TestDivisionByZero(t *testing.T) {
	t.Parallel()

	_, err := fraction.One.Div(fraction.Zero)
	require.ErrorIs(t, err, fraction.ErrDivisionByZero)

	_, err = fraction.Zero.Reciprocal()
	require.ErrorIs(t, err, fraction.ErrDivisionByZero)

	_, err = fraction.Fraction{}.Reciprocal()
	require.ErrorIs(t, err, fraction.ErrDivisionByZero)
}

func TestCmp(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		a, b fraction.Fraction
		want int
	}{
		{"less", mustNew(t, 1, 3), mustNew(t, 1, 2), -1},
		{"greater", mustNew(t, 2, 3), mustNew(t, 1, 2), 1},
		{"equal different input", mustNew(t, 2, 4), mustNew(t, 3, 6), 0},
		{"negatives", mustNew(t, -1, 2), mustNew(t, -1, 3), -1},
		{"sign", mustNew(t, -1, 1000), fraction.Zero, -1},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tc.want, tc.a.Cmp(tc.b))
			require.Equal(t, -tc.want, tc.b.Cmp(tc.a))
			require.Equal(t, tc.want > 0, tc.a.GreaterThan(tc.b))
		})
	}
}

// TestGreaterThan_BeyondFloatPrecision checks two values that collapse to the
// same float32/float64 but differ exactly.
func TestGreaterThan_BeyondFloatPrecision(t *testing.T) {
	t.Parallel()

	big1 := new(big.Int).Lsh(big.NewInt(1), 80) // 2^80
	big2 := new(big.Int).Add(big1, big.NewInt(1))

	a, err := fraction.NewBig(big2, big1) // (2^80+1)/2^80
	require.NoError(t, err)

	af, _ := a.Rat().Float64()
	require.Equal(t, 1.0, af, "fixture must be indistinguishable from 1 in float64")

	require.True(t, a.GreaterThan(fraction.One))
	require.False(t, fraction.One.GreaterThan(a))
}

func TestLargeChainedProducts(t *testing.T) {
	t.Parallel()

	// (1/2)^200 * 2^200 == 1 without overflow
	acc := fraction.One
	half := mustNew(t, 1, 2)
	two := fraction.FromInt(2)
	for i := 0; i < 200; i++ {
		acc = acc.Mul(half)
	}
	require.Equal(t, 201, acc.Den().BitLen())
	for i := 0; i < 200; i++ {
		acc = acc.Mul(two)
	}
	requireEqual(t, fraction.One, acc)
}

func TestAbsSign(t *testing.T) {
	t.Parallel()

	requireEqual(t, mustNew(t, 3, 4), mustNew(t, -3, 4).Abs())
	requireEqual(t, mustNew(t, 3, 4), mustNew(t, 3, 4).Abs())
	require.Equal(t, -1, mustNew(t, -3, 4).Sign())
	require.Equal(t, 0, fraction.Zero.Sign())
	require.Equal(t, 1, fraction.One.Sign())
	require.False(t, mustNew(t, 3, 4).IsInt())
}

func TestFromBigInt(t *testing.T) {
	t.Parallel()

	n := big.NewInt(-17)
	f := fraction.FromBigInt(n)
	n.SetInt64(0)
	require.Equal(t, "-17", f.String())
	require.True(t, fraction.FromBigInt(nil).IsZero())
}

func TestRat(t *testing.T) {
	t.Parallel()

	r := mustNew(t, -6, 8).Rat()
	require.Equal(t, "-3/4", r.RatString())
}
