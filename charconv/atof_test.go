package charconv

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseFloat(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  float64
		wantN int
	}{
		{name: "integer", input: "42", want: 42, wantN: 2},
		{name: "fraction", input: "3.14", want: 3.14, wantN: 4},
		{name: "leading plus", input: "+1.5", want: 1.5, wantN: 4},
		{name: "negative", input: "-2.75", want: -2.75, wantN: 5},
		{name: "bare fraction", input: ".5", want: 0.5, wantN: 2},
		{name: "trailing point", input: "7.", want: 7, wantN: 2},
		{name: "exponent", input: "1e3", want: 1000, wantN: 3},
		{name: "exponent uppercase", input: "1.5E2", want: 150, wantN: 5},
		{name: "negative exponent", input: "25e-3", want: 0.025, wantN: 5},
		{name: "positive exponent sign", input: "2e+2", want: 200, wantN: 4},
		{name: "zero", input: "0", want: 0, wantN: 1},
		{name: "stops at junk", input: "1.5x", want: 1.5, wantN: 3},
		{name: "bare e not consumed", input: "2e", want: 2, wantN: 1},
		{name: "integer beyond uint64", input: "36893488147419103232", want: 36893488147419103232, wantN: 20},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, n, err := ParseFloat([]byte(tt.input))
			require.NoError(t, err)
			require.Equal(t, tt.wantN, n)
			if tt.want == 0 {
				require.Equal(t, tt.want, v)
			} else {
				require.InEpsilon(t, tt.want, v, 1e-12)
			}
		})
	}
}

func TestParseFloat_Zeroes(t *testing.T) {
	v, n, err := ParseFloat([]byte("0.0"))
	require.NoError(t, err)
	require.Equal(t, 3, n)
	require.Equal(t, 0.0, v)
}

func TestParseFloat_Specials(t *testing.T) {
	v, n, err := ParseFloat([]byte("inf"))
	require.NoError(t, err)
	require.Equal(t, 3, n)
	require.True(t, math.IsInf(v, 1))

	v, n, err = ParseFloat([]byte("-Inf"))
	require.NoError(t, err)
	require.Equal(t, 4, n)
	require.True(t, math.IsInf(v, -1))

	v, n, err = ParseFloat([]byte("INF"))
	require.NoError(t, err)
	require.Equal(t, 3, n)
	require.True(t, math.IsInf(v, 1))

	v, n, err = ParseFloat([]byte("nan"))
	require.NoError(t, err)
	require.Equal(t, 3, n)
	require.True(t, math.IsNaN(v))

	v, n, err = ParseFloat([]byte("NaN rest"))
	require.NoError(t, err)
	require.Equal(t, 3, n)
	require.True(t, math.IsNaN(v))
}

func TestParseFloat_Errors(t *testing.T) {
	for _, input := range []string{"", "-", "+", ".", "abc", " 1.5", "e5"} {
		t.Run(input, func(t *testing.T) {
			_, n, err := ParseFloat([]byte(input))
			require.ErrorIs(t, err, ErrSyntax)
			require.Equal(t, 0, n)
		})
	}
}

func TestParseFloat_LongFraction(t *testing.T) {
	// Digits past the 17 significant ones are consumed but contribute nothing.
	v, n, err := ParseFloat([]byte("0.123456789012345678901234567890"))
	require.NoError(t, err)
	require.Equal(t, 32, n)
	require.InEpsilon(t, 0.12345678901234567, v, 1e-12)
}

func TestFloatRoundTrip(t *testing.T) {
	values := []float64{0, 1, -1, 3.14159, -2.5, 0.001, 12345.6789, 1e15}

	for _, want := range values {
		var buf [80]byte
		span := EncodeFloat(buf[:], want, Fixed, 10, false)
		require.NotNil(t, span)

		got, n, err := ParseFloat(span)
		require.NoError(t, err)
		require.Equal(t, len(span), n)
		if want == 0 {
			require.Equal(t, want, got)
		} else {
			require.InEpsilon(t, want, got, 1e-9)
		}
	}
}
