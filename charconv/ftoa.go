package charconv

import (
	"math"

	"lukechampine.com/uint128"

	"github.com/arloliu/numtext/internal/tables"
)

// Fmt selects the textual style of an encoded floating-point value.
type Fmt uint8

const (
	Fixed      Fmt = iota // Fixed represents the fixed-point style (123.456).
	Scientific            // Scientific represents the exponent style (1.23456e+02).
	General               // General picks fixed or scientific and trims trailing zeros.
)

func (f Fmt) String() string {
	switch f {
	case Fixed:
		return "Fixed"
	case Scientific:
		return "Scientific"
	case General:
		return "General"
	default:
		return "Unknown"
	}
}

// MaxFloatPrecision is the largest meaningful number of decimal digits for a
// float64; larger requested precisions are silently clamped to it.
const MaxFloatPrecision = 17

const (
	mantBits    = 52
	expBias     = 1023
	mantMask    = 1<<mantBits - 1
	implicitBit = 1 << mantBits
	maxShift    = 127
)

// EncodeFloat encodes v into the front of dst and returns the encoded span
// dst[:n].
//
// Special values are detected from the bit pattern, not by numeric
// comparison, so negative zero and negative infinity keep their sign; they
// short-circuit to the nan/inf tokens (NAN/INF when upper is set). A
// magnitude too large for a 64-bit integer part cannot render fixed and
// falls back to the scientific style; the general style already switches on
// its own at such magnitudes.
//
// A negative precision selects the style's default (6). Returns nil only when
// dst cannot hold the result.
func EncodeFloat(dst []byte, v float64, format Fmt, prec int, upper bool) []byte {
	w := floatWriter{dst: dst}

	if math.IsNaN(v) {
		if upper {
			w.writeString("NAN")
		} else {
			w.writeString("nan")
		}

		return w.span()
	}
	if math.Signbit(v) {
		w.writeByte('-')
		v = -v
	}
	if math.IsInf(v, 1) {
		if upper {
			w.writeString("INF")
		} else {
			w.writeString("inf")
		}

		return w.span()
	}

	if prec > MaxFloatPrecision {
		prec = MaxFloatPrecision
	}

	// float64(math.MaxUint64) rounds up to exactly 2^64, one past the largest
	// representable integer part, so the comparison must be inclusive.
	if format == Fixed && v >= float64(math.MaxUint64) {
		if prec < 0 {
			prec = MaxFloatPrecision
		}
		w.scientific(v, prec, upper)

		return w.span()
	}

	switch format {
	case Fixed:
		if prec < 0 {
			prec = 6
		}
		w.fixed(v, prec)
	case Scientific:
		if prec < 0 {
			prec = 6
		}
		w.scientific(v, prec, upper)
	default:
		w.general(v, prec, upper)
	}

	return w.span()
}

// floatWriter appends forward into a caller-supplied buffer; any write past
// the end latches the fail flag and voids the result.
type floatWriter struct {
	dst  []byte
	n    int
	fail bool
}

func (w *floatWriter) span() []byte {
	if w.fail {
		return nil
	}

	return w.dst[:w.n]
}

func (w *floatWriter) writeByte(c byte) {
	if w.fail || w.n >= len(w.dst) {
		w.fail = true
		return
	}
	w.dst[w.n] = c
	w.n++
}

func (w *floatWriter) writeString(s string) {
	if w.fail || w.n+len(s) > len(w.dst) {
		w.fail = true
		return
	}
	copy(w.dst[w.n:], s)
	w.n += len(s)
}

func (w *floatWriter) writeUint(v uint64) {
	var scratch [20]byte
	span := EncodeUint(scratch[:], v, 10, false, false)
	if w.fail || w.n+len(span) > len(w.dst) {
		w.fail = true
		return
	}
	copy(w.dst[w.n:], span)
	w.n += len(span)
}

// fixed renders v (non-negative, at most MaxUint64) with exactly prec
// fractional digits.
func (w *floatWriter) fixed(v float64, prec int) {
	ip, fp := splitFloat(v, prec)
	w.writeUint(ip)
	if prec > 0 {
		w.writeByte('.')
		w.fracDigits(fp, prec)
	}
}

func (w *floatWriter) fracDigits(fp uint64, prec int) {
	divisor := tables.Pow10[prec-1]
	for i := 0; i < prec; i++ {
		w.writeByte('0' + byte((fp/divisor)%10))
		divisor /= 10
	}
}

// splitFloat extracts the integer part and the precision-scaled fractional
// part of v directly from the IEEE-754 bit pattern.
//
// The fractional part is derived by a single 128-bit multiply of the residual
// mantissa against 10^prec, rounded half-up by adding half the shift unit
// before truncating. The carry into the integer part is checked twice to
// cover the rare double-carry case.
func splitFloat(v float64, prec int) (uint64, uint64) {
	bits := math.Float64bits(v)
	exponent := int(bits>>mantBits&0x7FF) - expBias
	mantissa := bits&mantMask | implicitBit

	var ip, fp uint64
	var effMant uint64
	var shift uint

	if exponent >= 0 {
		if exponent > mantBits {
			// Pure integer, no fractional bits left.
			return mantissa << uint(exponent-mantBits), 0
		}
		shift = uint(mantBits - exponent)
		ip = mantissa >> shift
		effMant = mantissa & (1<<shift - 1)
	} else {
		shift = uint(mantBits - exponent)
		effMant = mantissa
	}

	if shift == 0 || shift > maxShift {
		return ip, 0
	}

	pow := tables.Pow10[prec]
	t := uint128.From64(effMant).MulWrap64(pow)
	t = t.AddWrap(uint128.From64(1).Lsh(shift - 1))
	fp = t.Rsh(shift).Lo

	if fp >= pow {
		fp -= pow
		ip++
		// Rare double carry.
		if fp >= pow {
			fp -= pow
			ip++
		}
	}

	return ip, fp
}

// scientific renders v (non-negative) as mantissa, 'e'/'E', sign and a
// zero-padded two-digit exponent (three or more digits past 99).
func (w *floatWriter) scientific(v float64, prec int, upper bool) {
	e := byte('e')
	if upper {
		e = 'E'
	}

	if v == 0 {
		w.fixed(0, prec)
		w.writeByte(e)
		w.writeString("+00")

		return
	}

	mant, exp := normalizeSci(v)
	w.fixed(mant, prec)
	w.expSuffix(exp, e)
}

func (w *floatWriter) expSuffix(exp int, e byte) {
	w.writeByte(e)
	if exp >= 0 {
		w.writeByte('+')
	} else {
		w.writeByte('-')
		exp = -exp
	}
	switch {
	case exp < 10:
		w.writeByte('0')
		w.writeByte('0' + byte(exp))
	case exp < 100:
		w.writeByte('0' + byte(exp/10))
		w.writeByte('0' + byte(exp%10))
	default:
		w.writeUint(uint64(exp))
	}
}

// normalizeSci computes the decimal exponent of v and the mantissa scaled
// into [1, 10), correcting the estimate when the scaling over- or undershoots
// by one order of magnitude.
func normalizeSci(v float64) (float64, int) {
	exp := decimalExp(v)
	mant := v
	switch {
	case exp > 0 && exp <= 18:
		mant /= float64(tables.Pow10[exp])
	case exp < 0 && exp >= -18:
		mant *= float64(tables.Pow10[-exp])
	case exp != 0:
		mant /= math.Pow(10, float64(exp))
	}

	const eps = 2.2204460492503131e-15 // machine epsilon * 10
	if mant >= 10-eps {
		mant /= 10
		exp++
	} else if mant < 1-eps && mant > eps {
		mant *= 10
		exp--
	}

	return mant, exp
}

// decimalExp estimates floor(log10(v)) from the binary exponent using
// fixed-point arithmetic, corrected by a binary search against the common
// powers of ten; values outside [1e-4, 1e6] use math.Log10 directly.
func decimalExp(v float64) int {
	if v >= 1e-4 && v <= 1e6 {
		bits := math.Float64bits(v)
		e2 := int(bits>>mantBits&0x7FF) - expBias
		exp := (e2*301029995 + 500000000) / 1000000000

		lo, hi := 0, len(tables.CommonPow10)-1
		for lo <= hi {
			mid := (lo + hi) / 2
			if v >= tables.CommonPow10[mid] {
				exp = mid - 4
				lo = mid + 1
			} else {
				hi = mid - 1
			}
		}

		return exp
	}

	return int(math.Floor(math.Log10(v)))
}

// general renders v per the %g rule: fixed when -4 <= exp < prec with the
// precision reduced by the integer digit count, scientific with prec-1
// otherwise; either way trailing fractional zeros and a bare trailing point
// are stripped.
func (w *floatWriter) general(v float64, prec int, upper bool) {
	if prec < 0 {
		prec = 6
	}

	if v == 0 {
		start := w.n
		w.fixed(0, prec)
		w.trimFraction(start)

		return
	}

	exp := decimalExp(v)
	if exp >= -4 && exp < prec {
		intDigits := 0
		if exp >= 0 {
			intDigits = exp + 1
		}
		fprec := prec - intDigits
		if fprec < 0 {
			fprec = 0
		}
		start := w.n
		w.fixed(v, fprec)
		w.trimFraction(start)

		return
	}

	e := byte('e')
	if upper {
		e = 'E'
	}
	mant, mexp := normalizeSci(v)
	start := w.n
	w.fixed(mant, prec-1)
	w.trimFraction(start)
	w.expSuffix(mexp, e)
}

// trimFraction strips trailing zeros of the fractional part rendered since
// start, and the decimal point itself when nothing remains behind it.
// Runs with no decimal point are left alone.
func (w *floatWriter) trimFraction(start int) {
	if w.fail {
		return
	}
	hasPoint := false
	for i := start; i < w.n; i++ {
		if w.dst[i] == '.' {
			hasPoint = true
			break
		}
	}
	if !hasPoint {
		return
	}
	for w.n > start && w.dst[w.n-1] == '0' {
		w.n--
	}
	if w.n > start && w.dst[w.n-1] == '.' {
		w.n--
	}
}
