package format

// Output is the append-only sink every renderer writes into. It is satisfied
// by *pool.ByteBuffer; callers with their own buffering can implement it
// directly to avoid an intermediate copy.
//
// All four methods must be amortized O(1) per byte; renderers assume appends
// never fail.
type Output interface {
	// Append appends raw bytes.
	Append(p []byte)
	// AppendString appends a string.
	AppendString(s string)
	// AppendByte appends a single byte.
	AppendByte(c byte)
	// AppendFill appends c repeated n times; no-op when n <= 0.
	AppendFill(c byte, n int)
}

// Formatter is implemented by values that render themselves. It is checked
// before every built-in renderer, so a type can override the default
// treatment of, say, its underlying integer.
//
// The Spec carries the parsed directive plus the raw Pattern text, so an
// implementation may define verbs the built-in grammar knows nothing about
// (e.g. "{:json}").
type Formatter interface {
	FormatTo(out Output, spec *Spec) error
}

// Char marks a code point to be rendered as a character. A plain rune
// argument renders numerically, since rune is an alias of int32 and the
// dispatcher cannot tell them apart.
type Char rune
