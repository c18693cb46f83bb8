package format

import (
	"fmt"

	"github.com/arloliu/numtext/internal/pool"
)

// Format renders a curly-brace template against args and returns the result.
//
// Placeholders are "{}" (automatic indexing), "{n}" (explicit indexing) or
// either followed by ":spec"; literal braces are doubled. A template must not
// mix the two indexing styles. Any grammar or dispatch error aborts the call;
// no partial output is returned.
//
// Parameters:
//   - template: the template string; compiled forms are cached by hash
//   - args: the values the placeholders reference
//
// Returns the rendered string, or an empty string and the error.
func Format(template string, args ...any) (string, error) {
	buf := pool.GetFormatBuffer()
	defer pool.PutFormatBuffer(buf)

	buf.Grow(len(template) + 8*len(args))
	if err := FormatTo(buf, template, args...); err != nil {
		return "", err
	}

	return buf.String(), nil
}

// MustFormat is Format but panics on error; for templates known correct at
// compile time.
func MustFormat(template string, args ...any) string {
	s, err := Format(template, args...)
	if err != nil {
		panic(err)
	}

	return s
}

// FormatTo renders the template directly into out, avoiding the intermediate
// string. On error the bytes already appended to out remain; callers needing
// all-or-nothing semantics render into a scratch buffer first, as Format does.
func FormatTo(out Output, template string, args ...any) error {
	c, err := compileCached(template)
	if err != nil {
		return err
	}

	st := formatState{args: args, mode: c.mode}
	for i := range c.segs {
		seg := &c.segs[i]
		if seg.dir == nil {
			out.AppendString(seg.lit)
			continue
		}

		idx := seg.dir.index
		if idx < 0 {
			idx = st.auto
			st.auto++
		}

		// Width and precision references consume their arguments before the
		// directive's own value is rendered.
		spec := makeSpec(seg.dir.spec)
		if seg.dir.spec != "" {
			spec, err = st.parseSpec(seg.dir.spec)
			if err != nil {
				return err
			}
		}

		if idx >= len(args) {
			return fmt.Errorf("%w: index %d with %d arguments", ErrIndexRange, idx, len(args))
		}
		if err := dispatch(out, args[idx], &spec); err != nil {
			return err
		}
	}

	return nil
}
