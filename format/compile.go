package format

import (
	"fmt"
	"strings"
	"sync"

	"github.com/arloliu/numtext/internal/hash"
)

// indexMode tracks how a template references its arguments. A template picks
// one mode with its first reference and must stick to it.
type indexMode uint8

const (
	modeUnset indexMode = iota
	modeAuto
	modeExplicit
)

// directive is one "{...}" placeholder: which argument it renders and the raw
// spec text after the ':'.
type directive struct {
	index int // -1 when automatic
	spec  string
}

// segment is either a literal run (dir == nil) or a directive.
type segment struct {
	lit string
	dir *directive
}

// compiled is a parsed template, safe for concurrent reuse. Nested "{}"
// references inside spec text are resolved per call, since they depend on the
// argument values.
type compiled struct {
	tmpl string
	segs []segment
	mode indexMode
}

// compile splits tmpl into literal runs and directives, unescaping doubled
// braces and validating brace matching and top-level index syntax.
func compile(tmpl string) (*compiled, error) {
	c := &compiled{tmpl: tmpl}

	var lit strings.Builder
	flush := func() {
		if lit.Len() > 0 {
			c.segs = append(c.segs, segment{lit: lit.String()})
			lit.Reset()
		}
	}

	i := 0
	for i < len(tmpl) {
		ch := tmpl[i]

		if ch == '}' {
			if i+1 < len(tmpl) && tmpl[i+1] == '}' {
				lit.WriteByte('}')
				i += 2

				continue
			}

			return nil, ErrUnmatchedBrace
		}
		if ch != '{' {
			lit.WriteByte(ch)
			i++

			continue
		}
		if i+1 < len(tmpl) && tmpl[i+1] == '{' {
			lit.WriteByte('{')
			i += 2

			continue
		}

		// Directive: scan to the matching '}' across nested braces.
		depth := 1
		j := i + 1
		for j < len(tmpl) && depth > 0 {
			switch tmpl[j] {
			case '{':
				depth++
			case '}':
				depth--
			}
			j++
		}
		if depth != 0 {
			return nil, ErrUnclosedBrace
		}

		d, err := c.parseDirective(tmpl[i+1 : j-1])
		if err != nil {
			return nil, err
		}
		flush()
		c.segs = append(c.segs, segment{dir: d})
		i = j
	}
	flush()

	return c, nil
}

// parseDirective splits a directive body at the first top-level ':' into the
// argument index and the spec text, and records the indexing mode.
func (c *compiled) parseDirective(body string) (*directive, error) {
	idxText := body
	specText := ""
	depth := 0
scan:
	for k := 0; k < len(body); k++ {
		switch body[k] {
		case '{':
			depth++
		case '}':
			depth--
		case ':':
			if depth == 0 {
				idxText = body[:k]
				specText = body[k+1:]

				break scan
			}
		}
	}

	d := &directive{index: -1, spec: specText}

	if idxText == "" {
		if c.mode == modeExplicit {
			return nil, ErrMixedIndexing
		}
		c.mode = modeAuto

		return d, nil
	}

	if len(idxText) > 9 {
		return nil, fmt.Errorf("%w: %q", ErrBadIndex, idxText)
	}
	n := 0
	for k := 0; k < len(idxText); k++ {
		if !isDigit(idxText[k]) {
			return nil, fmt.Errorf("%w: %q", ErrBadIndex, idxText)
		}
		n = n*10 + int(idxText[k]-'0')
	}
	if c.mode == modeAuto {
		return nil, ErrMixedIndexing
	}
	c.mode = modeExplicit
	d.index = n

	return d, nil
}

// templateCacheLimit bounds the compiled-template cache; once full, new
// templates compile per call instead of evicting hot entries.
const templateCacheLimit = 4096

var templateCache = struct {
	sync.RWMutex
	m map[uint64]*compiled
}{m: make(map[uint64]*compiled)}

// compileCached returns the compiled form of tmpl, keyed by its xxHash64. The
// stored template string is compared on every hit, so a hash collision costs
// a recompile instead of returning the wrong template.
func compileCached(tmpl string) (*compiled, error) {
	key := hash.Key(tmpl)

	templateCache.RLock()
	cached := templateCache.m[key]
	templateCache.RUnlock()
	if cached != nil && cached.tmpl == tmpl {
		return cached, nil
	}

	c, err := compile(tmpl)
	if err != nil {
		return nil, err
	}

	if cached == nil {
		templateCache.Lock()
		if len(templateCache.m) < templateCacheLimit {
			templateCache.m[key] = c
		}
		templateCache.Unlock()
	}

	return c, nil
}
