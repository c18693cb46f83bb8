package format

import (
	"errors"
	"fmt"
	"math"
	"reflect"
	"time"
	"unicode/utf8"

	"lukechampine.com/uint128"

	"github.com/arloliu/numtext/charconv"
	"github.com/arloliu/numtext/internal/tables"
)

var errFloatEncode = errors.New("format: float encoding failed")

// dispatch routes one argument to its renderer. Formatter wins over every
// built-in, so a type can override the treatment of its underlying kind;
// error and fmt.Stringer are checked last, after all concrete types.
func dispatch(out Output, arg any, spec *Spec) error {
	switch v := arg.(type) {
	case Formatter:
		return v.FormatTo(out, spec)
	case bool:
		return formatBool(out, v, spec)
	case int:
		return formatSigned(out, int64(v), spec)
	case int8:
		return formatSigned(out, int64(v), spec)
	case int16:
		return formatSigned(out, int64(v), spec)
	case int32:
		return formatSigned(out, int64(v), spec)
	case int64:
		return formatSigned(out, v, spec)
	case uint:
		return formatUnsigned(out, uint64(v), spec)
	case uint8:
		return formatUnsigned(out, uint64(v), spec)
	case uint16:
		return formatUnsigned(out, uint64(v), spec)
	case uint32:
		return formatUnsigned(out, uint64(v), spec)
	case uint64:
		return formatUnsigned(out, v, spec)
	case uintptr:
		return formatUnsigned(out, uint64(v), spec)
	case charconv.Int128:
		return writeInteger128(out, v.IsNeg(), v.Abs(), spec)
	case uint128.Uint128:
		return writeInteger128(out, false, v, spec)
	case float32:
		return formatFloat(out, float64(v), spec, 5)
	case float64:
		return formatFloat(out, v, spec, 8)
	case string:
		return formatString(out, v, spec)
	case []byte:
		return formatBytes(out, v, spec)
	case Char:
		return formatChar(out, rune(v), spec)
	case time.Duration:
		return formatDuration(out, v, spec)
	case time.Time:
		return formatTime(out, v, spec)
	case nil:
		return formatString(out, "<nil>", spec)
	case error:
		return formatString(out, v.Error(), spec)
	case fmt.Stringer:
		return formatString(out, v.String(), spec)
	default:
		rv := reflect.ValueOf(arg)
		switch rv.Kind() {
		case reflect.Pointer, reflect.UnsafePointer:
			return formatPointer(out, rv.Pointer(), spec)
		default:
			return fmt.Errorf("%w: %T", ErrUnsupportedType, arg)
		}
	}
}

func badVerb(spec *Spec) error {
	return fmt.Errorf("%w: %q", ErrBadVerb, spec.Pattern)
}

// alignBytes pads content to spec.Width with spec.Fill. The default
// alignment is left for every renderer.
func alignBytes(out Output, content []byte, spec *Spec) {
	pad := spec.Width - len(content)
	if pad <= 0 {
		out.Append(content)
		return
	}
	left, right := padSplit(pad, spec.Align)
	out.AppendFill(spec.Fill, left)
	out.Append(content)
	out.AppendFill(spec.Fill, right)
}

func alignString(out Output, content string, spec *Spec) {
	pad := spec.Width - len(content)
	if pad <= 0 {
		out.AppendString(content)
		return
	}
	left, right := padSplit(pad, spec.Align)
	out.AppendFill(spec.Fill, left)
	out.AppendString(content)
	out.AppendFill(spec.Fill, right)
}

// padSplit distributes pad bytes around the content; center keeps the extra
// byte on the right.
func padSplit(pad int, align Align) (int, int) {
	switch align {
	case AlignRight:
		return pad, 0
	case AlignCenter:
		return pad / 2, pad - pad/2
	default:
		return 0, pad
	}
}

func formatSigned(out Output, v int64, spec *Spec) error {
	neg := v < 0
	mag := uint64(v)
	if neg {
		mag = -mag
	}

	return writeInteger(out, neg, mag, spec)
}

func formatUnsigned(out Output, v uint64, spec *Spec) error {
	return writeInteger(out, false, v, spec)
}

// writeInteger renders a sign/magnitude pair under the integer verbs. Digits
// are emitted backward into a scratch buffer and sign plus base prefix are
// prepended, so the aligned content is a single contiguous span.
func writeInteger(out Output, neg bool, mag uint64, spec *Spec) error {
	if spec.extra {
		return badVerb(spec)
	}

	base := 10
	upper := false
	switch spec.Verb {
	case 0, 'd':
	case 'x':
		base = 16
	case 'X':
		base = 16
		upper = true
	case 'o':
		base = 8
	case 'b':
		base = 2
	case 'B':
		base = 2
		upper = true
	case 'c':
		if neg {
			return badVerb(spec)
		}
		r := rune(utf8.RuneError)
		if mag <= uint64(utf8.MaxRune) {
			r = rune(mag)
		}

		return writeRune(out, r, spec)
	default:
		return badVerb(spec)
	}

	// 64 binary digits plus prefix and sign leave headroom in 72 bytes.
	var buf [72]byte
	span := charconv.EncodeUint(buf[:], mag, base, upper, spec.Alternate)
	start := len(buf) - len(span)
	switch {
	case neg:
		start--
		buf[start] = '-'
	case spec.Sign == '+' || spec.Sign == ' ':
		start--
		buf[start] = spec.Sign
	}
	alignBytes(out, buf[start:], spec)

	return nil
}

// writeInteger128 is writeInteger for 128-bit magnitudes; the 'c' verb is not
// meaningful at this width.
func writeInteger128(out Output, neg bool, mag uint128.Uint128, spec *Spec) error {
	if spec.extra {
		return badVerb(spec)
	}

	base := 10
	upper := false
	switch spec.Verb {
	case 0, 'd':
	case 'x':
		base = 16
	case 'X':
		base = 16
		upper = true
	case 'o':
		base = 8
	case 'b':
		base = 2
	case 'B':
		base = 2
		upper = true
	default:
		return badVerb(spec)
	}

	// 128 binary digits plus prefix and sign.
	var buf [136]byte
	span := charconv.EncodeUint128(buf[:], mag, base, upper, spec.Alternate)
	start := len(buf) - len(span)
	switch {
	case neg:
		start--
		buf[start] = '-'
	case spec.Sign == '+' || spec.Sign == ' ':
		start--
		buf[start] = spec.Sign
	}
	alignBytes(out, buf[start:], spec)

	return nil
}

// formatFloat renders a float under the g/G, f/F and e/E verbs. defPrec is
// the default significant-digit count of the general style: 8 for float64
// arguments, 5 for float32.
func formatFloat(out Output, v float64, spec *Spec, defPrec int) error {
	if spec.extra {
		return badVerb(spec)
	}

	format := charconv.General
	upper := false
	switch spec.Verb {
	case 0, 'g':
	case 'G':
		upper = true
	case 'f':
		format = charconv.Fixed
	case 'F':
		format = charconv.Fixed
		upper = true
	case 'e':
		format = charconv.Scientific
	case 'E':
		format = charconv.Scientific
		upper = true
	default:
		return badVerb(spec)
	}

	// Integral values the general style would render as plain digits anyway
	// take the integer path; the bound keeps values that general would
	// switch to scientific for out of it.
	if format == charconv.General && spec.Prec < 0 &&
		!math.IsNaN(v) && !math.IsInf(v, 0) &&
		v == math.Trunc(v) && math.Abs(v) < float64(tables.Pow10[defPrec]) {
		s := *spec
		s.Verb = 0

		return writeInteger(out, math.Signbit(v), uint64(math.Abs(v)), &s)
	}

	prec := spec.Prec
	if format == charconv.General && prec < 0 {
		prec = defPrec
	}

	var buf [80]byte
	off := 0
	if !math.Signbit(v) && !math.IsNaN(v) {
		switch spec.Sign {
		case '+', ' ':
			buf[0] = spec.Sign
			off = 1
		}
	}
	span := charconv.EncodeFloat(buf[off:], v, format, prec, upper)
	if span == nil {
		return errFloatEncode
	}
	alignBytes(out, buf[:off+len(span)], spec)

	return nil
}

func formatString(out Output, s string, spec *Spec) error {
	if spec.extra || (spec.Verb != 0 && spec.Verb != 's') {
		return badVerb(spec)
	}
	if spec.Prec >= 0 && spec.Prec < len(s) {
		s = s[:spec.Prec]
	}
	alignString(out, s, spec)

	return nil
}

func formatBytes(out Output, b []byte, spec *Spec) error {
	if spec.extra || (spec.Verb != 0 && spec.Verb != 's') {
		return badVerb(spec)
	}
	if spec.Prec >= 0 && spec.Prec < len(b) {
		b = b[:spec.Prec]
	}
	alignBytes(out, b, spec)

	return nil
}

func formatBool(out Output, v bool, spec *Spec) error {
	if spec.extra {
		return badVerb(spec)
	}

	var s string
	switch spec.Verb {
	case 0, 's':
		s = "false"
		if v {
			s = "true"
		}
	case 'd':
		s = "0"
		if v {
			s = "1"
		}
	default:
		return badVerb(spec)
	}
	alignString(out, s, spec)

	return nil
}

// formatChar renders a Char as its UTF-8 bytes; integer verbs fall through to
// the numeric path on the code point.
func formatChar(out Output, r rune, spec *Spec) error {
	switch spec.Verb {
	case 0, 'c', 's':
		if spec.extra {
			return badVerb(spec)
		}

		return writeRune(out, r, spec)
	default:
		return formatSigned(out, int64(r), spec)
	}
}

func writeRune(out Output, r rune, spec *Spec) error {
	var buf [utf8.UTFMax]byte
	n := utf8.EncodeRune(buf[:], r)
	alignBytes(out, buf[:n], spec)

	return nil
}

// formatPointer renders an address as 0x-prefixed lowercase hex; a nil
// pointer renders as "0x0".
func formatPointer(out Output, addr uintptr, spec *Spec) error {
	if spec.extra {
		return badVerb(spec)
	}
	switch spec.Verb {
	case 0, 'p':
	default:
		return badVerb(spec)
	}

	var buf [18]byte
	buf[0] = '0'
	buf[1] = 'x'
	span := charconv.EncodeUint(buf[2:], uint64(addr), 16, false, false)
	n := copy(buf[2:], span)
	alignBytes(out, buf[:2+n], spec)

	return nil
}
