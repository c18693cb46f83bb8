package format

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"lukechampine.com/uint128"

	"github.com/arloliu/numtext/charconv"
	"github.com/arloliu/numtext/internal/pool"
)

func TestFormat_Basics(t *testing.T) {
	tests := []struct {
		name     string
		template string
		args     []any
		want     string
	}{
		{name: "no placeholders", template: "plain text", want: "plain text"},
		{name: "auto indexing", template: "{} {}", args: []any{1, "a"}, want: "1 a"},
		{name: "explicit indexing", template: "{1} {0}", args: []any{"a", "b"}, want: "b a"},
		{name: "repeated explicit", template: "{0:#x} {0:b}", args: []any{255}, want: "0xff 11111111"},
		{name: "escaped braces", template: "a{{b}}c", args: nil, want: "a{b}c"},
		{name: "escaped around placeholder", template: "{{}}{}", args: []any{7}, want: "{}7"},
		{name: "empty spec", template: "{:}", args: []any{5}, want: "5"},
		{name: "unused trailing args", template: "{}", args: []any{1, 2, 3}, want: "1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Format(tt.template, tt.args...)
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestFormat_Integers(t *testing.T) {
	tests := []struct {
		name     string
		template string
		arg      any
		want     string
	}{
		{name: "int", template: "{}", arg: -42, want: "-42"},
		{name: "uint8", template: "{}", arg: uint8(255), want: "255"},
		{name: "hex", template: "{:x}", arg: 255, want: "ff"},
		{name: "hex upper", template: "{:X}", arg: 255, want: "FF"},
		{name: "octal", template: "{:o}", arg: 64, want: "100"},
		{name: "binary", template: "{:b}", arg: 5, want: "101"},
		{name: "alternate hex", template: "{:#x}", arg: 255, want: "0xff"},
		{name: "alternate binary upper", template: "{:#B}", arg: 5, want: "0B101"},
		{name: "plus sign", template: "{:+}", arg: 5, want: "+5"},
		{name: "space sign", template: "{: }", arg: 5, want: " 5"},
		{name: "sign on negative unchanged", template: "{:+}", arg: -5, want: "-5"},
		{name: "char verb", template: "{:c}", arg: 65, want: "A"},
		{name: "int128", template: "{}", arg: charconv.Int128From64(-99), want: "-99"},
		{name: "uint128 hex", template: "{:x}", arg: uint128.Max, want: strings.Repeat("f", 32)},
		{name: "int128 sign", template: "{:+}", arg: charconv.Int128From64(7), want: "+7"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Format(tt.template, tt.arg)
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestFormat_Alignment(t *testing.T) {
	tests := []struct {
		name     string
		template string
		arg      any
		want     string
	}{
		{name: "default is left", template: "{:6}", arg: 42, want: "42    "},
		{name: "left", template: "{:<6}", arg: 42, want: "42    "},
		{name: "right", template: "{:>6}", arg: 42, want: "    42"},
		{name: "center even", template: "{:^6}", arg: 42, want: "  42  "},
		{name: "center extra right", template: "{:^5}", arg: "ab", want: " ab  "},
		{name: "custom fill", template: "{:*>6}", arg: 7, want: "*****7"},
		{name: "fill same as align byte", template: "{:<<5}", arg: "x", want: "x<<<<"},
		{name: "width smaller than content", template: "{:2}", arg: 12345, want: "12345"},
		{name: "string right", template: "{:>5}", arg: "ab", want: "   ab"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Format(tt.template, tt.arg)
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestFormat_Floats(t *testing.T) {
	tests := []struct {
		name     string
		template string
		arg      any
		want     string
	}{
		{name: "default general", template: "{}", arg: 3.5, want: "3.5"},
		{name: "integral fast path", template: "{}", arg: float64(100), want: "100"},
		{name: "negative zero", template: "{}", arg: math.Copysign(0, -1), want: "-0"},
		{name: "fixed", template: "{:.2f}", arg: 3.14159, want: "3.14"},
		{name: "fixed default precision", template: "{:f}", arg: 1.5, want: "1.500000"},
		{name: "fixed right aligned", template: "{:>8.2f}", arg: 3.14159, want: "    3.14"},
		{name: "scientific", template: "{:.3e}", arg: 12345.678, want: "1.235e+04"},
		{name: "scientific upper", template: "{:.1E}", arg: 1500.0, want: "1.5E+03"},
		{name: "general precision", template: "{:.3g}", arg: 1234.5, want: "1.23e+03"},
		{name: "plus sign", template: "{:+.1f}", arg: 2.5, want: "+2.5"},
		{name: "float32 default", template: "{}", arg: float32(2.5), want: "2.5"},
		{name: "nan", template: "{}", arg: math.NaN(), want: "nan"},
		{name: "inf right aligned", template: "{:>5}", arg: math.Inf(1), want: "  inf"},
		{name: "nan never signed", template: "{:+}", arg: math.NaN(), want: "nan"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Format(tt.template, tt.arg)
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestFormat_DynamicWidthPrecision(t *testing.T) {
	got, err := Format("{:{}}", 42, 5)
	require.NoError(t, err)
	require.Equal(t, "42   ", got)

	got, err = Format("{0:>{1}.{2}f}", 3.14159, 8, 2)
	require.NoError(t, err)
	require.Equal(t, "    3.14", got)

	// Automatic references resolve in order: width, then value.
	got, err = Format("{1:>{0}}", 4, "x")
	require.NoError(t, err)
	require.Equal(t, "   x", got)

	// Negative dynamic width disables padding.
	got, err = Format("{:{}}", 42, -3)
	require.NoError(t, err)
	require.Equal(t, "42", got)
}

func TestFormat_StringsAndBools(t *testing.T) {
	got, err := Format("{:.3}", "hello")
	require.NoError(t, err)
	require.Equal(t, "hel", got)

	got, err = Format("{}", []byte("bytes"))
	require.NoError(t, err)
	require.Equal(t, "bytes", got)

	got, err = Format("{} {}", true, false)
	require.NoError(t, err)
	require.Equal(t, "true false", got)

	got, err = Format("{:d}", true)
	require.NoError(t, err)
	require.Equal(t, "1", got)

	got, err = Format("{}", Char('A'))
	require.NoError(t, err)
	require.Equal(t, "A", got)

	got, err = Format("{:d}", Char('A'))
	require.NoError(t, err)
	require.Equal(t, "65", got)

	got, err = Format("{}", Char('世'))
	require.NoError(t, err)
	require.Equal(t, "世", got)

	got, err = Format("{}", nil)
	require.NoError(t, err)
	require.Equal(t, "<nil>", got)

	got, err = Format("{}", errors.New("boom"))
	require.NoError(t, err)
	require.Equal(t, "boom", got)
}

type label string

func (l label) String() string {
	return "label:" + string(l)
}

func TestFormat_Stringer(t *testing.T) {
	got, err := Format("{:>10}", label("x"))
	require.NoError(t, err)
	require.Equal(t, "   label:x", got)
}

func TestFormat_Pointer(t *testing.T) {
	x := 7
	got, err := Format("{}", &x)
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(got, "0x"))
	require.Greater(t, len(got), 2)

	var p *int
	got, err = Format("{:p}", p)
	require.NoError(t, err)
	require.Equal(t, "0x0", got)
}

// jsonPoint exercises the user-extension hook with a pattern the built-in
// grammar does not know.
type jsonPoint struct {
	X, Y int
}

func (p jsonPoint) FormatTo(out Output, spec *Spec) error {
	if spec.Pattern == "json" {
		return FormatTo(out, `{{"x":{},"y":{}}}`, p.X, p.Y)
	}

	return FormatTo(out, "({},{})", p.X, p.Y)
}

func TestFormat_Formatter(t *testing.T) {
	got, err := Format("{:json}", jsonPoint{X: 1, Y: 2})
	require.NoError(t, err)
	require.Equal(t, `{"x":1,"y":2}`, got)

	got, err = Format("{}", jsonPoint{X: 3, Y: 4})
	require.NoError(t, err)
	require.Equal(t, "(3,4)", got)
}

func TestFormat_Errors(t *testing.T) {
	tests := []struct {
		name     string
		template string
		args     []any
		wantErr  error
	}{
		{name: "unclosed brace", template: "{foo", wantErr: ErrUnclosedBrace},
		{name: "unmatched close", template: "}", wantErr: ErrUnmatchedBrace},
		{name: "mixed auto then explicit", template: "{} {0}", args: []any{1, 2}, wantErr: ErrMixedIndexing},
		{name: "mixed explicit then auto", template: "{0} {}", args: []any{1, 2}, wantErr: ErrMixedIndexing},
		{name: "mixed nested in explicit", template: "{0:{}}", args: []any{1, 2}, wantErr: ErrMixedIndexing},
		{name: "mixed nested in auto", template: "{:{0}}", args: []any{1, 2}, wantErr: ErrMixedIndexing},
		{name: "index out of range", template: "{2}", args: []any{1, 2}, wantErr: ErrIndexRange},
		{name: "auto exhausts args", template: "{} {}", args: []any{1}, wantErr: ErrIndexRange},
		{name: "bad index", template: "{abc}", args: []any{1}, wantErr: ErrBadIndex},
		{name: "width too large", template: "{:99999}", args: []any{1}, wantErr: ErrWidthTooLarge},
		{name: "precision too large", template: "{:.9999}", args: []any{1.0}, wantErr: ErrPrecisionTooLarge},
		{name: "dynamic width too large", template: "{:{}}", args: []any{1, 100000}, wantErr: ErrWidthTooLarge},
		{name: "dynamic width not integer", template: "{:{}}", args: []any{1, "x"}, wantErr: ErrBadDynamicRef},
		{name: "bad verb on int", template: "{:q}", args: []any{5}, wantErr: ErrBadVerb},
		{name: "bad verb on string", template: "{:x}", args: []any{"s"}, wantErr: ErrBadVerb},
		{name: "bad verb on bool", template: "{:x}", args: []any{true}, wantErr: ErrBadVerb},
		{name: "trailing spec bytes", template: "{:dd}", args: []any{5}, wantErr: ErrBadVerb},
		{name: "unsupported type", template: "{}", args: []any{struct{}{}}, wantErr: ErrUnsupportedType},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Format(tt.template, tt.args...)
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestMustFormat_Panics(t *testing.T) {
	require.Panics(t, func() {
		MustFormat("{", 1)
	})
	require.Equal(t, "ok", MustFormat("{}", "ok"))
}

func TestFormatTo_Buffer(t *testing.T) {
	buf := pool.GetFormatBuffer()
	defer pool.PutFormatBuffer(buf)

	require.NoError(t, FormatTo(buf, "n={}", 7))
	require.Equal(t, "n=7", buf.String())

	// Errors leave prior appends intact.
	require.Error(t, FormatTo(buf, "{:q}", 1))
	require.True(t, strings.HasPrefix(buf.String(), "n=7"))
}

func TestFormat_TemplateCacheReuse(t *testing.T) {
	const tmpl = "cache {} reuse {}"
	first, err := Format(tmpl, 1, 2)
	require.NoError(t, err)
	second, err := Format(tmpl, 3, 4)
	require.NoError(t, err)
	require.Equal(t, "cache 1 reuse 2", first)
	require.Equal(t, "cache 3 reuse 4", second)
}

func TestFormat_Concurrent(t *testing.T) {
	const tmpl = "{:>4} of {:>4}"
	done := make(chan error, 8)
	for g := 0; g < 8; g++ {
		go func(g int) {
			for i := 0; i < 200; i++ {
				got, err := Format(tmpl, g, i)
				if err == nil && len(got) != 12 {
					err = fmt.Errorf("bad length %d", len(got))
				}
				if err != nil {
					done <- err
					return
				}
			}
			done <- nil
		}(g)
	}
	for g := 0; g < 8; g++ {
		require.NoError(t, <-done)
	}
}
