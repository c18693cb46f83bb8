package format

import (
	"fmt"
	"math"
	"strings"
)

// Align selects where a value sits inside its padded field.
type Align uint8

const (
	// AlignDefault defers to the renderer's default, which is left for every
	// built-in type.
	AlignDefault Align = iota
	// AlignLeft pads on the right ('<').
	AlignLeft
	// AlignRight pads on the left ('>').
	AlignRight
	// AlignCenter splits the padding, extra byte on the right ('^').
	AlignCenter
)

// Spec is a fully parsed formatting directive, the contract between the
// dispatcher and each renderer. Renderers read it; only the parser writes it.
type Spec struct {
	// Width is the minimum field width; values <= 0 disable padding.
	Width int
	// Prec is the precision; negative means unset.
	Prec int
	// Fill is the padding byte, ' ' by default.
	Fill byte
	// Align is the requested alignment.
	Align Align
	// Sign controls the sign of non-negative numbers: '-' (default, none),
	// '+' (always) or ' ' (leading space).
	Sign byte
	// Alternate is the '#' flag: base prefixes for integers, unit suffixes
	// for durations.
	Alternate bool
	// Verb is the trailing verb byte, 0 when absent.
	Verb byte
	// Pattern is the raw spec text after the ':', handed verbatim to
	// Formatter implementations.
	Pattern string

	// extra is set when bytes follow the verb; built-in renderers reject the
	// directive, Formatter implementations interpret Pattern themselves.
	extra bool
}

func makeSpec(pattern string) Spec {
	return Spec{Width: -1, Prec: -1, Fill: ' ', Sign: '-', Pattern: pattern}
}

func isAlignByte(c byte) bool {
	return c == '<' || c == '>' || c == '^'
}

func alignOf(c byte) Align {
	switch c {
	case '<':
		return AlignLeft
	case '>':
		return AlignRight
	default:
		return AlignCenter
	}
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// formatState is the per-call cursor over the argument list: the automatic
// index counter and the indexing mode, shared between directive dispatch and
// nested width/precision resolution.
type formatState struct {
	args []any
	auto int
	mode indexMode
}

// parseSpec parses the text after the ':' of one directive. The grammar is
//
//	[[fill]align][sign]['#'][width]['.'precision][verb]
//
// where width and precision may each be a nested "{}" or "{n}" reference
// resolved against the argument list.
func (st *formatState) parseSpec(text string) (Spec, error) {
	spec := makeSpec(text)
	i := 0

	// A fill byte is only recognized when followed by an align byte, so a
	// lone '<' is an alignment, not a fill.
	if len(text) >= 2 && isAlignByte(text[1]) && text[0] != '{' && text[0] != '}' {
		spec.Fill = text[0]
		spec.Align = alignOf(text[1])
		i = 2
	} else if len(text) >= 1 && isAlignByte(text[0]) {
		spec.Align = alignOf(text[0])
		i = 1
	}

	if i < len(text) {
		switch text[i] {
		case '+', '-', ' ':
			spec.Sign = text[i]
			i++
		}
	}

	if i < len(text) && text[i] == '#' {
		spec.Alternate = true
		i++
	}

	switch {
	case i < len(text) && text[i] == '{':
		v, n, err := st.resolveNested(text[i:])
		if err != nil {
			return spec, err
		}
		if v > MaxWidth {
			return spec, ErrWidthTooLarge
		}
		spec.Width = v
		i += n
	case i < len(text) && isDigit(text[i]):
		v := 0
		for i < len(text) && isDigit(text[i]) {
			v = v*10 + int(text[i]-'0')
			if v > MaxWidth {
				return spec, ErrWidthTooLarge
			}
			i++
		}
		spec.Width = v
	}

	if i < len(text) && text[i] == '.' {
		i++
		if i < len(text) && text[i] == '{' {
			v, n, err := st.resolveNested(text[i:])
			if err != nil {
				return spec, err
			}
			if v > MaxPrecision {
				return spec, ErrPrecisionTooLarge
			}
			spec.Prec = v
			i += n
		} else {
			// A bare '.' means precision zero.
			v := 0
			for i < len(text) && isDigit(text[i]) {
				v = v*10 + int(text[i]-'0')
				if v > MaxPrecision {
					return spec, ErrPrecisionTooLarge
				}
				i++
			}
			spec.Prec = v
		}
	}

	if i < len(text) {
		spec.Verb = text[i]
		if i+1 < len(text) {
			spec.extra = true
		}
	}

	return spec, nil
}

// resolveNested resolves a "{}" or "{n}" width/precision reference at the
// start of text and returns the integer value and the bytes consumed. Nested
// references participate in the same indexing mode as the directives
// themselves.
func (st *formatState) resolveNested(text string) (int, int, error) {
	end := strings.IndexByte(text, '}')
	if end < 0 {
		return 0, 0, ErrUnclosedBrace
	}
	inner := text[1:end]

	var idx int
	if inner == "" {
		if st.mode == modeExplicit {
			return 0, 0, ErrMixedIndexing
		}
		st.mode = modeAuto
		idx = st.auto
		st.auto++
	} else {
		if st.mode == modeAuto {
			return 0, 0, ErrMixedIndexing
		}
		if len(inner) > 9 {
			return 0, 0, ErrBadIndex
		}
		for k := 0; k < len(inner); k++ {
			if !isDigit(inner[k]) {
				return 0, 0, ErrBadIndex
			}
			idx = idx*10 + int(inner[k]-'0')
		}
		st.mode = modeExplicit
	}

	if idx >= len(st.args) {
		return 0, 0, fmt.Errorf("%w: index %d with %d arguments", ErrIndexRange, idx, len(st.args))
	}
	v, err := argAsInt(st.args[idx])
	if err != nil {
		return 0, 0, err
	}

	return v, end + 1, nil
}

// argAsInt extracts an integer argument for a dynamic width or precision.
// Unsigned values beyond the int32 range clamp high and fail the caller's
// ceiling check instead.
func argAsInt(arg any) (int, error) {
	switch v := arg.(type) {
	case int:
		return v, nil
	case int8:
		return int(v), nil
	case int16:
		return int(v), nil
	case int32:
		return int(v), nil
	case int64:
		if v > math.MaxInt32 {
			return math.MaxInt32, nil
		}
		if v < math.MinInt32 {
			return math.MinInt32, nil
		}

		return int(v), nil
	case uint:
		if uint64(v) > math.MaxInt32 {
			return math.MaxInt32, nil
		}

		return int(v), nil
	case uint8:
		return int(v), nil
	case uint16:
		return int(v), nil
	case uint32:
		if v > math.MaxInt32 {
			return math.MaxInt32, nil
		}

		return int(v), nil
	case uint64:
		if v > math.MaxInt32 {
			return math.MaxInt32, nil
		}

		return int(v), nil
	default:
		return 0, fmt.Errorf("%w: %T", ErrBadDynamicRef, arg)
	}
}
