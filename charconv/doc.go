// Package charconv converts integers and floating-point values to and from
// text without relying on the standard strconv routines.
//
// The package provides bidirectional conversion for signed and unsigned
// integers up to 128 bits across bases 2-36, and for float64 values in
// fixed, scientific and general styles with controllable precision.
//
// # Design
//
// Encoders write into caller-supplied fixed buffers and return a sub-slice of
// that buffer, so the hot path never allocates:
//
//	var buf [24]byte
//	span := charconv.EncodeInt(buf[:], -255, 16, false, true) // "-0xff"
//
// Integer digits are emitted back-to-front so no reversal pass is needed.
// Base 10 has a dedicated fast path over a two-digit pair table, power-of-two
// bases use shift/mask, and every other base falls back to divide/modulo.
//
// Decoders return the value, the number of bytes consumed and an error. The
// consumed length always spans the whole numeral, even on overflow, so a
// caller can skip past a malformed literal:
//
//	v, n, err := charconv.ParseUint([]byte("18446744073709551616"), 10, 64)
//	// err == charconv.ErrRange, n == 20
//
// All operations are stateless and reentrant; concurrent callers with
// independent buffers are fully independent.
package charconv
