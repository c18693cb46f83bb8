// Package numtext provides numeric text conversion and curly-brace string
// templating without the standard strconv/fmt machinery.
//
// The codecs cover integers up to 128 bits across bases 2-36 and float64 in
// fixed, scientific and general styles; the template engine renders "{}"
// placeholders with alignment, padding, dynamic width/precision and
// per-capability verbs.
//
// # Core Features
//
//   - Allocation-free integer and float encoders writing into caller buffers
//   - Decoders reporting the consumed byte count, even on overflow
//   - Curly-brace templates with automatic or explicit argument indexing
//   - Capability dispatch: integers, floats, bools, chars, strings, pointers,
//     durations, times and self-formatting types
//   - Compiled-template caching keyed by xxHash64
//   - A leveled logger whose message path is the template engine itself
//
// # Basic Usage
//
// Formatting:
//
//	import "github.com/arloliu/numtext"
//
//	s, err := numtext.Format("{} = {:>8.2f}", "pi", 3.14159)
//	// "pi =     3.14"
//
//	s = numtext.MustFormat("{0:#x} {0:b}", 255)
//	// "0xff 11111111"
//
// Numeric conversion:
//
//	s := numtext.FormatInt(-255, 16) // "-ff"
//	v, err := numtext.ParseInt("0x1f", 0, 64)
//
// # Package Structure
//
// This package provides convenient top-level wrappers around the charconv and
// format packages, simplifying the most common use cases. For buffer-level
// control, use those packages directly.
package numtext

import (
	"fmt"

	"github.com/arloliu/numtext/charconv"
	"github.com/arloliu/numtext/format"
)

// Format renders a curly-brace template against args.
//
// See the format package for the template grammar.
func Format(template string, args ...any) (string, error) {
	return format.Format(template, args...)
}

// MustFormat is Format but panics on error; for templates known correct at
// compile time.
func MustFormat(template string, args ...any) string {
	return format.MustFormat(template, args...)
}

// FormatTo renders a template directly into an append-only sink such as
// *pool.ByteBuffer.
func FormatTo(out format.Output, template string, args ...any) error {
	return format.FormatTo(out, template, args...)
}

// FormatInt renders v in the given base (2-36), lowercase digits.
func FormatInt(v int64, base int) string {
	var buf [65]byte
	span := charconv.EncodeInt(buf[:], v, base, false, false)

	return string(span)
}

// FormatUint renders v in the given base (2-36), lowercase digits.
func FormatUint(v uint64, base int) string {
	var buf [64]byte
	span := charconv.EncodeUint(buf[:], v, base, false, false)

	return string(span)
}

// FormatFloat renders v with the given style and precision; a negative
// precision selects the style's default.
func FormatFloat(v float64, style charconv.Fmt, prec int) string {
	var buf [64]byte
	span := charconv.EncodeFloat(buf[:], v, style, prec, false)

	return string(span)
}

// ParseInt decodes a signed integer from s. Base 0 infers the base from a
// "0x", "0b" or "0" prefix; bitSize is 8, 16, 32 or 64 (0 means 64).
//
// Unlike the charconv decoder it requires the whole string to be consumed.
func ParseInt(s string, base, bitSize int) (int64, error) {
	v, n, err := charconv.ParseInt([]byte(s), base, bitSize)
	if err != nil {
		return 0, err
	}
	if n != len(s) {
		return 0, fmt.Errorf("%w: trailing bytes after numeral", charconv.ErrSyntax)
	}

	return v, nil
}

// ParseUint decodes an unsigned integer from s; same contract as ParseInt.
func ParseUint(s string, base, bitSize int) (uint64, error) {
	v, n, err := charconv.ParseUint([]byte(s), base, bitSize)
	if err != nil {
		return 0, err
	}
	if n != len(s) {
		return 0, fmt.Errorf("%w: trailing bytes after numeral", charconv.ErrSyntax)
	}

	return v, nil
}

// ParseFloat decodes a floating-point value from s, requiring the whole
// string to be consumed.
func ParseFloat(s string) (float64, error) {
	v, n, err := charconv.ParseFloat([]byte(s))
	if err != nil {
		return 0, err
	}
	if n != len(s) {
		return 0, fmt.Errorf("%w: trailing bytes after numeral", charconv.ErrSyntax)
	}

	return v, nil
}
