package charconv

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"lukechampine.com/uint128"
)

func TestEncodeUint_Bases(t *testing.T) {
	tests := []struct {
		name string
		v    uint64
		base int
		want string
	}{
		{name: "zero", v: 0, base: 10, want: "0"},
		{name: "decimal small", v: 7, base: 10, want: "7"},
		{name: "decimal two digits", v: 42, base: 10, want: "42"},
		{name: "decimal four digit peel", v: 123456789, base: 10, want: "123456789"},
		{name: "decimal max", v: math.MaxUint64, base: 10, want: "18446744073709551615"},
		{name: "binary", v: 5, base: 2, want: "101"},
		{name: "octal", v: 64, base: 8, want: "100"},
		{name: "hex", v: 255, base: 16, want: "ff"},
		{name: "hex max", v: math.MaxUint64, base: 16, want: "ffffffffffffffff"},
		{name: "base 32", v: 1023, base: 32, want: "vv"},
		{name: "base 36", v: 35, base: 36, want: "z"},
		{name: "base 36 multi", v: 36*36 + 1, base: 36, want: "101"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf [64]byte
			span := EncodeUint(buf[:], tt.v, tt.base, false, false)
			require.Equal(t, tt.want, string(span))
		})
	}
}

func TestEncodeUint_UpperAndAlternate(t *testing.T) {
	var buf [64]byte

	require.Equal(t, "FF", string(EncodeUint(buf[:], 255, 16, true, false)))
	require.Equal(t, "0xff", string(EncodeUint(buf[:], 255, 16, false, true)))
	require.Equal(t, "0XFF", string(EncodeUint(buf[:], 255, 16, true, true)))
	require.Equal(t, "0b101", string(EncodeUint(buf[:], 5, 2, false, true)))
	require.Equal(t, "0B101", string(EncodeUint(buf[:], 5, 2, true, true)))
	require.Equal(t, "0100", string(EncodeUint(buf[:], 64, 8, false, true)))
	require.Equal(t, "0x0", string(EncodeUint(buf[:], 0, 16, false, true)))
	// Alternate has no prefix outside bases 2, 8 and 16.
	require.Equal(t, "zz", string(EncodeUint(buf[:], 35*36+35, 36, false, true)))
}

func TestEncodeUint_Failures(t *testing.T) {
	var buf [64]byte

	require.Nil(t, EncodeUint(buf[:], 1, 1, false, false))
	require.Nil(t, EncodeUint(buf[:], 1, 37, false, false))
	require.Nil(t, EncodeUint(buf[:2], 12345, 10, false, false))
	require.Nil(t, EncodeUint(buf[:0], 0, 10, false, false))
	require.Nil(t, EncodeUint(buf[:3], 255, 16, false, true)) // prefix does not fit
}

func TestEncodeInt(t *testing.T) {
	tests := []struct {
		name      string
		v         int64
		base      int
		alternate bool
		want      string
	}{
		{name: "positive", v: 42, base: 10, want: "42"},
		{name: "negative", v: -42, base: 10, want: "-42"},
		{name: "zero", v: 0, base: 10, want: "0"},
		{name: "min int64", v: math.MinInt64, base: 10, want: "-9223372036854775808"},
		{name: "max int64", v: math.MaxInt64, base: 10, want: "9223372036854775807"},
		{name: "sign precedes prefix", v: -255, base: 16, alternate: true, want: "-0xff"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf [72]byte
			span := EncodeInt(buf[:], tt.v, tt.base, false, tt.alternate)
			require.Equal(t, tt.want, string(span))
		})
	}
}

func TestEncodeUint128(t *testing.T) {
	var buf [136]byte

	require.Equal(t, "0", string(EncodeUint128(buf[:], uint128.Zero, 10, false, false)))
	require.Equal(t, "18446744073709551615",
		string(EncodeUint128(buf[:], uint128.From64(math.MaxUint64), 10, false, false)))

	// 2^64 is the first value needing the wide path.
	require.Equal(t, "18446744073709551616",
		string(EncodeUint128(buf[:], uint128.New(0, 1), 10, false, false)))
	require.Equal(t, "340282366920938463463374607431768211455",
		string(EncodeUint128(buf[:], uint128.Max, 10, false, false)))
	require.Equal(t, "ffffffffffffffffffffffffffffffff",
		string(EncodeUint128(buf[:], uint128.Max, 16, false, false)))
	require.Equal(t, "0x10000000000000000",
		string(EncodeUint128(buf[:], uint128.New(0, 1), 16, false, true)))
}

func TestEncodeInt128(t *testing.T) {
	var buf [144]byte

	require.Equal(t, "-1", string(EncodeInt128(buf[:], Int128From64(-1), 10, false, false)))
	require.Equal(t, "170141183460469231731687303715884105727",
		string(EncodeInt128(buf[:], MaxInt128, 10, false, false)))
	require.Equal(t, "-170141183460469231731687303715884105728",
		string(EncodeInt128(buf[:], MinInt128, 10, false, false)))
}

func TestInt128_String(t *testing.T) {
	require.Equal(t, "-42", Int128From64(-42).String())
	require.Equal(t, "0", Int128{}.String())
}
