package charconv

import (
	"math"

	"github.com/arloliu/numtext/internal/tables"
)

// ParseFloat decodes a floating-point value from the start of s and returns
// the value, the number of bytes consumed and an error.
//
// The grammar is an optional sign, then either a case-insensitive "inf"/"nan"
// token or a decimal numeral with optional '.' fraction (capped at 17
// significant digits) and optional 'e'/'E' signed exponent. The integer part
// is accumulated in a uint64 and re-parsed into a 128-bit accumulator only
// when it overflows, so the happy path stays on 64-bit arithmetic. The sign
// is applied once, to the fully composed magnitude.
func ParseFloat(s []byte) (float64, int, error) {
	if len(s) == 0 {
		return 0, 0, ErrSyntax
	}

	neg, i := parseSign(s)

	if len(s)-i >= 3 {
		c0 := lower(s[i])
		c1 := lower(s[i+1])
		c2 := lower(s[i+2])
		if c0 == 'i' && c1 == 'n' && c2 == 'f' {
			v := math.Inf(1)
			if neg {
				v = math.Inf(-1)
			}

			return v, i + 3, nil
		}
		if c0 == 'n' && c1 == 'a' && c2 == 'n' {
			return math.NaN(), i + 3, nil
		}
	}

	var value float64

	mag64, intN, err := parseDecimalU64(s[i:])
	if err == nil {
		value = float64(mag64)
	} else {
		// Integer part exceeds 64 bits; re-parse into the wide accumulator.
		mag128, _, err128 := parseDecimalU128(s[i:])
		if err128 != nil {
			return 0, i + intN, ErrRange
		}
		value = float64(mag128.Hi)*0x1p64 + float64(mag128.Lo)
	}
	i += intN
	sawDigits := intN > 0

	if i < len(s) && s[i] == '.' {
		fracStart := i + 1
		fracEnd := len(s)
		if fracEnd-fracStart > MaxFloatPrecision {
			fracEnd = fracStart + MaxFloatPrecision
		}
		frac, fracN, _ := parseDecimalU64(s[fracStart:fracEnd])
		if fracN > 0 {
			value += float64(frac) / float64(tables.Pow10[fracN])
			sawDigits = true
		}
		i = fracStart + fracN
		// Digits past the significant cap contribute nothing but are consumed.
		i = skipDigits(s, i, 10)
	}

	if !sawDigits {
		return 0, 0, ErrSyntax
	}

	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		j := i + 1
		eneg, signN := parseSign(s[j:])
		j += signN
		expEnd := len(s)
		if expEnd-j > MaxFloatPrecision {
			expEnd = j + MaxFloatPrecision
		}
		exp, expN, _ := parseDecimalU64(s[j:expEnd])
		if expN > 0 {
			var scale float64
			if exp <= 18 {
				scale = float64(tables.Pow10[exp])
			} else {
				scale = math.Pow(10, float64(exp))
			}
			if eneg {
				value /= scale
			} else {
				value *= scale
			}
			i = j + expN
		}
		// A bare 'e' with no digits is not part of the numeral.
	}

	if neg {
		value = -value
	}

	return value, i, nil
}

func lower(c byte) byte {
	return c | 0x20
}
