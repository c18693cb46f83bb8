// Package tables holds the static lookup data shared by the numeric codecs:
// two-digit decimal pairs, base-36 digit alphabets, a char→digit table and
// powers of ten. All tables are immutable after package initialization.
package tables

// DigitsLower and DigitsUpper are the base-36 digit alphabets.
const (
	DigitsLower = "0123456789abcdefghijklmnopqrstuvwxyz"
	DigitsUpper = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"
)

// TwoDigits packs the decimal pairs "00".."99" so the base-10 fast path can
// emit two digits per table lookup.
const TwoDigits = "00010203040506070809" +
	"10111213141516171819" +
	"20212223242526272829" +
	"30313233343536373839" +
	"40414243444546474849" +
	"50515253545556575859" +
	"60616263646566676869" +
	"70717273747576777879" +
	"80818283848586878889" +
	"90919293949596979899"

// Pow10 contains the exactly representable powers of ten, 10^0 through 10^18.
var Pow10 = [19]uint64{
	1,
	10,
	100,
	1000,
	10000,
	100000,
	1000000,
	10000000,
	100000000,
	1000000000,
	10000000000,
	100000000000,
	1000000000000,
	10000000000000,
	100000000000000,
	1000000000000000,
	10000000000000000,
	100000000000000000,
	1000000000000000000,
}

// CommonPow10 covers the float exponent range [-4, 6] used by the scientific
// encoder's binary-search correction.
var CommonPow10 = [11]float64{
	1e-4, 1e-3, 1e-2, 1e-1, 1e0, 1e1, 1e2, 1e3, 1e4, 1e5, 1e6,
}

// charToDigit maps a byte to its digit value in bases up to 36, or -1.
var charToDigit [256]int8

func init() {
	for i := range charToDigit {
		charToDigit[i] = -1
	}
	for c := byte('0'); c <= '9'; c++ {
		charToDigit[c] = int8(c - '0')
	}
	for c := byte('A'); c <= 'Z'; c++ {
		charToDigit[c] = int8(c-'A') + 10
	}
	for c := byte('a'); c <= 'z'; c++ {
		charToDigit[c] = int8(c-'a') + 10
	}
}

// Digit returns the value of c as a digit, or -1 when c is not a digit in any
// supported base.
func Digit(c byte) int {
	return int(charToDigit[c])
}
