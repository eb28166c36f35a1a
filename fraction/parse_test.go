// SPDX-License-Identifier: MIT
package fraction_test

import (
	"testing"

	"github.com/katalvlaran/exactla/fraction"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in      string
		want    string
		wantErr error
	}{
		{"3", "3", nil},
		{"-3", "-3", nil},
		{"+3", "3", nil},
		{"6/4", "3/2", nil},
		{"6/-4", "-3/2", nil},
		{"  1 / 3  ", "1/3", nil},
		{"0/9", "0", nil},
		{"123456789012345678901234567890/10", "12345678901234567890123456789", nil},
		{"", "", fraction.ErrSyntax},
		{"/2", "", fraction.ErrSyntax},
		{"2/", "", fraction.ErrSyntax},
		{"1.5", "", fraction.ErrSyntax},
		{"a/b", "", fraction.ErrSyntax},
		{"1/2/3", "", fraction.ErrSyntax},
		{"1/0", "", fraction.ErrDivisionByZero},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.in, func(t *testing.T) {
			t.Parallel()
			got, err := fraction.Parse(tc.in)
			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.want, got.String())
		})
	}
}

func TestTextMarshaling(t *testing.T) {
	t.Parallel()

	f, err := fraction.New(-10, 4)
	require.NoError(t, err)

	text, err := f.MarshalText()
	require.NoError(t, err)
	require.Equal(t, "-5/2", string(text))

	var back fraction.Fraction
	require.NoError(t, back.UnmarshalText(text))
	require.True(t, f.Equal(back))

	// failed decode leaves the receiver as it was
	require.ErrorIs(t, back.UnmarshalText([]byte("x")), fraction.ErrSyntax)
	require.True(t, f.Equal(back))
}
