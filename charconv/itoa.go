package charconv

import (
	"lukechampine.com/uint128"

	"github.com/arloliu/numtext/internal/tables"
)

// EncodeUint encodes v in the given base into the tail of dst and returns the
// encoded span as a sub-slice of dst.
//
// Digits are written back-to-front starting from the end of dst, so the
// returned span is dst[cursor:] and needs no reversal. Base 10 peels four
// digits per iteration through the two-digit pair table; power-of-two bases
// use shift/mask; all other bases fall back to a generic divide loop over the
// base-36 alphabet.
//
// When alternate is true a base prefix is written ahead of the digits:
// "0x"/"0X" for base 16, "0b"/"0B" for base 2 and a bare "0" for base 8.
//
// Returns nil when dst cannot hold the result or base is outside [2, 36].
func EncodeUint(dst []byte, v uint64, base int, upper, alternate bool) []byte {
	if base < 2 || base > 36 {
		return nil
	}

	i := len(dst)

	if v == 0 {
		if i == 0 {
			return nil
		}
		i--
		dst[i] = '0'

		return prependBasePrefix(dst, i, base, upper, alternate)
	}

	var ok bool
	switch {
	case base == 10:
		i, ok = encodeBase10(dst, i, v)
	case base&(base-1) == 0:
		i, ok = encodePow2(dst, i, v, base, upper)
	default:
		i, ok = encodeGeneric(dst, i, v, base, upper)
	}
	if !ok {
		return nil
	}

	return prependBasePrefix(dst, i, base, upper, alternate)
}

// EncodeInt encodes a signed value the same way EncodeUint does.
//
// A negative value is negated into its unsigned magnitude before digit
// emission and a '-' is prefixed last, so the sign always precedes the base
// prefix ("-0xff", not "0x-ff").
func EncodeInt(dst []byte, v int64, base int, upper, alternate bool) []byte {
	neg := v < 0
	mag := uint64(v)
	if neg {
		mag = -mag
	}

	span := EncodeUint(dst, mag, base, upper, alternate)
	if span == nil || !neg {
		return span
	}

	return prependSign(dst, span)
}

// EncodeUint128 encodes a 128-bit unsigned value; same contract as EncodeUint.
func EncodeUint128(dst []byte, v uint128.Uint128, base int, upper, alternate bool) []byte {
	if base < 2 || base > 36 {
		return nil
	}
	if v.IsZero() {
		return EncodeUint(dst, 0, base, upper, alternate)
	}
	if v.Hi == 0 {
		return EncodeUint(dst, v.Lo, base, upper, alternate)
	}

	i := len(dst)

	var ok bool
	switch {
	case base == 10:
		i, ok = encodeBase10U128(dst, i, v)
	case base&(base-1) == 0:
		i, ok = encodePow2U128(dst, i, v, base, upper)
	default:
		i, ok = encodeGenericU128(dst, i, v, base, upper)
	}
	if !ok {
		return nil
	}

	return prependBasePrefix(dst, i, base, upper, alternate)
}

// EncodeInt128 encodes a 128-bit signed value; same contract as EncodeInt.
func EncodeInt128(dst []byte, v Int128, base int, upper, alternate bool) []byte {
	neg := v.IsNeg()

	span := EncodeUint128(dst, v.Abs(), base, upper, alternate)
	if span == nil || !neg {
		return span
	}

	return prependSign(dst, span)
}

// prependSign writes '-' ahead of an already encoded span inside dst.
func prependSign(dst, span []byte) []byte {
	i := len(dst) - len(span)
	if i == 0 {
		return nil
	}
	i--
	dst[i] = '-'

	return dst[i:]
}

// prependBasePrefix writes the alternate-form prefix ahead of the digits at
// dst[i:] and returns the final span.
func prependBasePrefix(dst []byte, i int, base int, upper, alternate bool) []byte {
	if !alternate {
		return dst[i:]
	}

	var prefix string
	switch base {
	case 2:
		prefix = "0b"
		if upper {
			prefix = "0B"
		}
	case 8:
		prefix = "0"
	case 16:
		prefix = "0x"
		if upper {
			prefix = "0X"
		}
	default:
		return dst[i:]
	}

	if i < len(prefix) {
		return nil
	}
	for k := len(prefix) - 1; k >= 0; k-- {
		i--
		dst[i] = prefix[k]
	}

	return dst[i:]
}

// encodeBase10 emits decimal digits back-to-front, four per iteration via two
// lookups into the two-digit pair table.
func encodeBase10(dst []byte, i int, v uint64) (int, bool) {
	for v >= 10000 {
		if i < 4 {
			return 0, false
		}
		q := v / 10000
		r := v % 10000
		v = q

		r1 := (r / 100) * 2
		r2 := (r % 100) * 2
		dst[i-1] = tables.TwoDigits[r2+1]
		dst[i-2] = tables.TwoDigits[r2]
		dst[i-3] = tables.TwoDigits[r1+1]
		dst[i-4] = tables.TwoDigits[r1]
		i -= 4
	}
	for v >= 100 {
		if i < 2 {
			return 0, false
		}
		r := (v % 100) * 2
		v /= 100
		dst[i-1] = tables.TwoDigits[r+1]
		dst[i-2] = tables.TwoDigits[r]
		i -= 2
	}
	if v >= 10 {
		if i < 2 {
			return 0, false
		}
		r := v * 2
		dst[i-1] = tables.TwoDigits[r+1]
		dst[i-2] = tables.TwoDigits[r]
		i -= 2
	} else {
		if i < 1 {
			return 0, false
		}
		i--
		dst[i] = tables.DigitsLower[v]
	}

	return i, true
}

// encodePow2 handles bases 2, 4, 8, 16 and 32 with shift/mask.
func encodePow2(dst []byte, i int, v uint64, base int, upper bool) (int, bool) {
	digits := tables.DigitsLower
	if upper {
		digits = tables.DigitsUpper
	}

	var shift uint
	switch base {
	case 2:
		shift = 1
	case 4:
		shift = 2
	case 8:
		shift = 3
	case 16:
		shift = 4
	default:
		shift = 5
	}
	mask := uint64(base - 1)

	for v > 0 {
		if i == 0 {
			return 0, false
		}
		i--
		dst[i] = digits[v&mask]
		v >>= shift
	}

	return i, true
}

// encodeGeneric handles every remaining base with divide/modulo.
func encodeGeneric(dst []byte, i int, v uint64, base int, upper bool) (int, bool) {
	digits := tables.DigitsLower
	if upper {
		digits = tables.DigitsUpper
	}
	b := uint64(base)

	for v > 0 {
		if i == 0 {
			return 0, false
		}
		i--
		dst[i] = digits[v%b]
		v /= b
	}

	return i, true
}

func encodeBase10U128(dst []byte, i int, v uint128.Uint128) (int, bool) {
	// Peel four digits per 128-bit division until the value fits in 64 bits,
	// then finish on the fast uint64 path.
	for v.Hi != 0 {
		if i < 4 {
			return 0, false
		}
		q, r := v.QuoRem64(10000)
		v = q

		r1 := (r / 100) * 2
		r2 := (r % 100) * 2
		dst[i-1] = tables.TwoDigits[r2+1]
		dst[i-2] = tables.TwoDigits[r2]
		dst[i-3] = tables.TwoDigits[r1+1]
		dst[i-4] = tables.TwoDigits[r1]
		i -= 4
	}

	return encodeBase10(dst, i, v.Lo)
}

func encodePow2U128(dst []byte, i int, v uint128.Uint128, base int, upper bool) (int, bool) {
	digits := tables.DigitsLower
	if upper {
		digits = tables.DigitsUpper
	}

	var shift uint
	switch base {
	case 2:
		shift = 1
	case 4:
		shift = 2
	case 8:
		shift = 3
	case 16:
		shift = 4
	default:
		shift = 5
	}
	mask := uint64(base - 1)

	for !v.IsZero() {
		if i == 0 {
			return 0, false
		}
		i--
		dst[i] = digits[v.Lo&mask]
		v = v.Rsh(shift)
	}

	return i, true
}

func encodeGenericU128(dst []byte, i int, v uint128.Uint128, base int, upper bool) (int, bool) {
	digits := tables.DigitsLower
	if upper {
		digits = tables.DigitsUpper
	}
	b := uint64(base)

	for !v.IsZero() {
		if i == 0 {
			return 0, false
		}
		q, r := v.QuoRem64(b)
		i--
		dst[i] = digits[r]
		v = q
	}

	return i, true
}
