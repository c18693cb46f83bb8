package charconv

import (
	"errors"
	"math"

	"lukechampine.com/uint128"

	"github.com/arloliu/numtext/internal/tables"
)

// Decode errors. ErrSyntax reports a malformed numeral, a minus sign on an
// unsigned target or an unsupported base; ErrRange reports a magnitude that
// exceeds the destination width.
//
// On ErrRange the returned value is defined but best-effort only, and the
// returned length still spans the whole numeral so callers can skip past a
// malformed literal.
var (
	ErrSyntax = errors.New("charconv: invalid syntax")
	ErrRange  = errors.New("charconv: value out of range")
)

// ParseUint decodes an unsigned integer of the given bit width (8, 16, 32 or
// 64; 0 means 64) from the start of s. It returns the decoded value, the
// number of bytes consumed and an error.
//
// Base 0 infers the base from a "0x"/"0b" prefix or a leading '0' (octal),
// defaulting to 10; the consumed length includes the prefix.
//
// An optional leading '+' is consumed; a leading '-' consumes the numeral but
// reports ErrSyntax since the target cannot hold a negative magnitude.
// Parsing is strict: the first byte after the optional sign must be a digit,
// so leading whitespace is a syntax error.
func ParseUint(s []byte, base, bitSize int) (uint64, int, error) {
	if base != 0 && (base < 2 || base > 36) {
		return 0, 0, ErrSyntax
	}
	if bitSize == 0 {
		bitSize = 64
	}
	if bitSize != 8 && bitSize != 16 && bitSize != 32 && bitSize != 64 {
		return 0, 0, ErrSyntax
	}

	neg, signLen := parseSign(s)
	prefixLen := 0
	if base == 0 {
		base, prefixLen = inferBase(s[signLen:])
	}

	mag, digits, err := parseMagnitude(s[signLen+prefixLen:], base)
	if digits == 0 {
		return 0, 0, ErrSyntax
	}
	n := signLen + prefixLen + digits
	if err != nil {
		return mag, n, err
	}
	if neg {
		return mag, n, ErrSyntax
	}
	if bitSize < 64 && mag > uint64(1)<<bitSize-1 {
		return mag, n, ErrRange
	}

	return mag, n, nil
}

// ParseInt decodes a signed integer of the given bit width (8, 16, 32 or 64;
// 0 means 64) from the start of s.
//
// The magnitude is accumulated unsigned and range-checked against the signed
// bounds afterwards; the signed minimum is permitted exactly one more unit of
// magnitude than the signed maximum. Base 0 infers the base as ParseUint does.
func ParseInt(s []byte, base, bitSize int) (int64, int, error) {
	if base != 0 && (base < 2 || base > 36) {
		return 0, 0, ErrSyntax
	}
	if bitSize == 0 {
		bitSize = 64
	}
	if bitSize != 8 && bitSize != 16 && bitSize != 32 && bitSize != 64 {
		return 0, 0, ErrSyntax
	}

	neg, signLen := parseSign(s)
	prefixLen := 0
	if base == 0 {
		base, prefixLen = inferBase(s[signLen:])
	}

	mag, digits, err := parseMagnitude(s[signLen+prefixLen:], base)
	if digits == 0 {
		return 0, 0, ErrSyntax
	}
	n := signLen + prefixLen + digits
	value := int64(mag)
	if neg {
		value = -value
	}
	if err != nil {
		return value, n, err
	}

	maxMag := uint64(1)<<(bitSize-1) - 1
	if neg {
		maxMag++ // two's-complement asymmetry
	}
	if mag > maxMag {
		return value, n, ErrRange
	}

	return value, n, nil
}

// ParseUint128 decodes a 128-bit unsigned integer from the start of s with
// the same contract as ParseUint.
func ParseUint128(s []byte, base int) (uint128.Uint128, int, error) {
	if base < 2 || base > 36 {
		return uint128.Zero, 0, ErrSyntax
	}

	neg, signLen := parseSign(s)

	mag, digits, err := parseMagnitude128(s[signLen:], base)
	if digits == 0 {
		return uint128.Zero, 0, ErrSyntax
	}
	n := signLen + digits
	if err != nil {
		return mag, n, err
	}
	if neg {
		return mag, n, ErrSyntax
	}

	return mag, n, nil
}

// ParseInt128 decodes a 128-bit signed integer from the start of s with the
// same contract as ParseInt.
func ParseInt128(s []byte, base int) (Int128, int, error) {
	if base < 2 || base > 36 {
		return Int128{}, 0, ErrSyntax
	}

	neg, signLen := parseSign(s)

	mag, digits, err := parseMagnitude128(s[signLen:], base)
	if digits == 0 {
		return Int128{}, 0, ErrSyntax
	}
	n := signLen + digits
	value := int128FromMag(mag, neg)
	if err != nil {
		return value, n, err
	}

	maxMag := MaxInt128.Abs()
	if neg {
		maxMag = maxMag.AddWrap64(1)
	}
	if mag.Cmp(maxMag) > 0 {
		return value, n, ErrRange
	}

	return value, n, nil
}

// inferBase resolves base 0 from the numeral's prefix: "0x" hex, "0b" binary,
// a leading '0' octal (the '0' itself stays a digit), otherwise decimal. A
// prefix is only recognized when a digit valid in that base follows it.
func inferBase(s []byte) (base, prefixLen int) {
	if len(s) >= 3 && s[0] == '0' {
		switch lower(s[1]) {
		case 'x':
			if d := tables.Digit(s[2]); d >= 0 && d < 16 {
				return 16, 2
			}
		case 'b':
			if d := tables.Digit(s[2]); d >= 0 && d < 2 {
				return 2, 2
			}
		}
	}
	if len(s) >= 1 && s[0] == '0' {
		return 8, 0
	}

	return 10, 0
}

func parseSign(s []byte) (neg bool, n int) {
	if len(s) == 0 {
		return false, 0
	}
	switch s[0] {
	case '-':
		return true, 1
	case '+':
		return false, 1
	default:
		return false, 0
	}
}

// parseMagnitude selects the digit loop by base shape: decimal, power-of-two
// shift accumulate, or the generic multiply-accumulate over the base-36
// alphabet.
func parseMagnitude(s []byte, base int) (uint64, int, error) {
	switch {
	case base == 10:
		return parseDecimalU64(s)
	case base&(base-1) == 0:
		return parsePow2U64(s, base)
	default:
		return parseGenericU64(s, base)
	}
}

func parseMagnitude128(s []byte, base int) (uint128.Uint128, int, error) {
	switch {
	case base == 10:
		return parseDecimalU128(s)
	case base&(base-1) == 0:
		return parsePow2U128(s, base)
	default:
		return parseGenericU128(s, base)
	}
}

// skipDigits advances past any remaining digits valid in base so the consumed
// length spans the whole numeral even after overflow.
func skipDigits(s []byte, i, base int) int {
	for i < len(s) {
		d := tables.Digit(s[i])
		if d < 0 || d >= base {
			break
		}
		i++
	}

	return i
}

func parseDecimalU64(s []byte) (uint64, int, error) {
	const maxSafe = math.MaxUint64 / 10

	var v uint64
	i := 0
	for i < len(s) {
		d := tables.Digit(s[i])
		if d < 0 || d >= 10 {
			return v, i, nil
		}
		if v > maxSafe {
			return v, skipDigits(s, i, 10), ErrRange
		}
		nv := v * 10
		if nv > math.MaxUint64-uint64(d) {
			return v, skipDigits(s, i, 10), ErrRange
		}
		v = nv + uint64(d)
		i++
	}

	return v, i, nil
}

func parsePow2U64(s []byte, base int) (uint64, int, error) {
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
	maxSafe := uint64(math.MaxUint64) >> shift

	var v uint64
	i := 0
	for i < len(s) {
		d := tables.Digit(s[i])
		if d < 0 || d >= base {
			return v, i, nil
		}
		if v > maxSafe {
			return v, skipDigits(s, i, base), ErrRange
		}
		v = v<<shift + uint64(d)
		i++
	}

	return v, i, nil
}

func parseGenericU64(s []byte, base int) (uint64, int, error) {
	b := uint64(base)
	maxSafe := math.MaxUint64 / b

	var v uint64
	i := 0
	for i < len(s) {
		d := tables.Digit(s[i])
		if d < 0 || d >= base {
			return v, i, nil
		}
		if v > maxSafe {
			return v, skipDigits(s, i, base), ErrRange
		}
		nv := v * b
		if nv > math.MaxUint64-uint64(d) {
			return v, skipDigits(s, i, base), ErrRange
		}
		v = nv + uint64(d)
		i++
	}

	return v, i, nil
}

func parseDecimalU128(s []byte) (uint128.Uint128, int, error) {
	maxSafe := uint128.Max.Div64(10)

	v := uint128.Zero
	i := 0
	for i < len(s) {
		d := tables.Digit(s[i])
		if d < 0 || d >= 10 {
			return v, i, nil
		}
		if v.Cmp(maxSafe) > 0 {
			return v, skipDigits(s, i, 10), ErrRange
		}
		nv := v.MulWrap64(10)
		if nv.Cmp(uint128.Max.Sub64(uint64(d))) > 0 {
			return v, skipDigits(s, i, 10), ErrRange
		}
		v = nv.AddWrap64(uint64(d))
		i++
	}

	return v, i, nil
}

func parsePow2U128(s []byte, base int) (uint128.Uint128, int, error) {
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
	maxSafe := uint128.Max.Rsh(shift)

	v := uint128.Zero
	i := 0
	for i < len(s) {
		d := tables.Digit(s[i])
		if d < 0 || d >= base {
			return v, i, nil
		}
		if v.Cmp(maxSafe) > 0 {
			return v, skipDigits(s, i, base), ErrRange
		}
		v = v.Lsh(shift).AddWrap64(uint64(d))
		i++
	}

	return v, i, nil
}

func parseGenericU128(s []byte, base int) (uint128.Uint128, int, error) {
	b := uint64(base)
	maxSafe := uint128.Max.Div64(b)

	v := uint128.Zero
	i := 0
	for i < len(s) {
		d := tables.Digit(s[i])
		if d < 0 || d >= base {
			return v, i, nil
		}
		if v.Cmp(maxSafe) > 0 {
			return v, skipDigits(s, i, base), ErrRange
		}
		nv := v.MulWrap64(b)
		if nv.Cmp(uint128.Max.Sub64(uint64(d))) > 0 {
			return v, skipDigits(s, i, base), ErrRange
		}
		v = nv.AddWrap64(uint64(d))
		i++
	}

	return v, i, nil
}
