package format

import "errors"

// Ceilings on field width and precision. Requests beyond these are grammar
// errors rather than silent clamps, since a runaway dynamic width would
// otherwise allocate unbounded padding.
const (
	MaxWidth     = 10000
	MaxPrecision = 1000
)

// Template grammar and dispatch errors. All of them abort the whole Format
// call; no partial output is returned.
var (
	// ErrUnclosedBrace indicates a '{' without a matching '}'.
	ErrUnclosedBrace = errors.New("format: unclosed '{' in template")

	// ErrUnmatchedBrace indicates a '}' that closes nothing. Literal braces
	// must be doubled ("{{" and "}}").
	ErrUnmatchedBrace = errors.New("format: unmatched '}' in template")

	// ErrBadIndex indicates an argument index that is not a plain decimal
	// number.
	ErrBadIndex = errors.New("format: invalid argument index")

	// ErrIndexRange indicates an argument index beyond the supplied arguments.
	ErrIndexRange = errors.New("format: argument index out of range")

	// ErrMixedIndexing indicates a template mixing automatic ("{}") and
	// explicit ("{0}") argument references, including nested width and
	// precision references.
	ErrMixedIndexing = errors.New("format: cannot mix automatic and explicit argument indexing")

	// ErrWidthTooLarge indicates a width beyond MaxWidth.
	ErrWidthTooLarge = errors.New("format: width exceeds limit")

	// ErrPrecisionTooLarge indicates a precision beyond MaxPrecision.
	ErrPrecisionTooLarge = errors.New("format: precision exceeds limit")

	// ErrBadVerb indicates a verb the argument's type does not support.
	ErrBadVerb = errors.New("format: unsupported verb")

	// ErrBadDynamicRef indicates a nested "{}" width or precision reference
	// resolving to a non-integer argument.
	ErrBadDynamicRef = errors.New("format: dynamic width/precision argument is not an integer")

	// ErrUnsupportedType indicates an argument no renderer accepts.
	ErrUnsupportedType = errors.New("format: unsupported argument type")
)
