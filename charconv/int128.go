package charconv

import "lukechampine.com/uint128"

// Int128 is a signed 128-bit integer in two's-complement form.
type Int128 struct {
	Hi int64
	Lo uint64
}

// MaxInt128 and MinInt128 are the bounds of the signed 128-bit range.
var (
	MaxInt128 = Int128{Hi: 0x7FFFFFFFFFFFFFFF, Lo: 0xFFFFFFFFFFFFFFFF}
	MinInt128 = Int128{Hi: -0x8000000000000000, Lo: 0}
)

// Int128From64 sign-extends v into an Int128.
func Int128From64(v int64) Int128 {
	hi := int64(0)
	if v < 0 {
		hi = -1
	}

	return Int128{Hi: hi, Lo: uint64(v)}
}

// IsNeg reports whether i is negative.
func (i Int128) IsNeg() bool {
	return i.Hi < 0
}

// IsZero reports whether i is zero.
func (i Int128) IsZero() bool {
	return i.Hi == 0 && i.Lo == 0
}

// Abs returns the unsigned magnitude of i. The magnitude of MinInt128 is
// 2^127, which is representable in a Uint128.
func (i Int128) Abs() uint128.Uint128 {
	if !i.IsNeg() {
		return uint128.New(i.Lo, uint64(i.Hi))
	}

	return uint128.New(^i.Lo, ^uint64(i.Hi)).AddWrap64(1)
}

// int128FromMag builds an Int128 from an unsigned magnitude and a sign.
// The caller must have range-checked mag against the signed bounds.
func int128FromMag(mag uint128.Uint128, neg bool) Int128 {
	if !neg {
		return Int128{Hi: int64(mag.Hi), Lo: mag.Lo}
	}
	u := uint128.New(^mag.Lo, ^mag.Hi).AddWrap64(1)

	return Int128{Hi: int64(u.Hi), Lo: u.Lo}
}

// String renders i in base 10.
func (i Int128) String() string {
	var buf [41]byte
	span := EncodeInt128(buf[:], i, 10, false, false)

	return string(span)
}
