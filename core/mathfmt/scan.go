package mathfmt

import "strings"

// scanner holds the source being tokenized. Matcher results are memoised per
// form and position: a container looking for its closing delimiter asks for
// the spans of earlier forms at every position it crosses, and a text full of
// unterminated triggers would otherwise be matched again and again.
type scanner struct {
	src   string
	limit Kind // only forms ordered before limit are recognized
	memo  map[spanKey]spanMatch
}

type spanKey struct {
	kind Kind
	pos  int
}

type spanMatch struct {
	args []string
	end  int
	ok   bool
}

func newScanner(src string, limit Kind) *scanner {
	return &scanner{src: src, limit: limit, memo: make(map[spanKey]spanMatch)}
}

// next tries every recognized form at pos, in precedence order.
func (sc *scanner) next(pos int) (Token, int, bool) {
	return sc.nextBefore(pos, sc.limit)
}

// nextBefore is next restricted to the forms ordered before limit.
func (sc *scanner) nextBefore(pos int, limit Kind) (Token, int, bool) {
	rest := sc.src[pos:]
	for _, st := range stages {
		if st.kind >= limit {
			break
		}
		if !strings.HasPrefix(rest, st.trigger) {
			continue
		}
		if m := sc.match(st, pos); m.ok {
			return Token{Kind: st.kind, Src: sc.src[pos:m.end], Args: m.args}, m.end, true
		}
	}
	return Token{}, 0, false
}

func (sc *scanner) match(st stage, pos int) spanMatch {
	key := spanKey{st.kind, pos}
	if m, ok := sc.memo[key]; ok {
		return m
	}
	args, end, ok := st.match(sc, pos+len(st.trigger))
	m := spanMatch{args: args, end: end, ok: ok}
	sc.memo[key] = m
	return m
}

// skip returns the end of the span of a form ordered before k that starts at
// i, or i when there is none. Such a span is one opaque unit for the form k:
// its delimiters never count as k's own.
func (sc *scanner) skip(i int, k Kind) int {
	if _, end, ok := sc.nextBefore(i, k); ok {
		return end
	}
	return i
}

// closed returns the non-empty argument running up to the next ')' outside the
// spans of forms ordered before k. The argument may contain '('.
func (sc *scanner) closed(k Kind, from int) ([]string, int, bool) {
	for i := from; i < len(sc.src); {
		if end := sc.skip(i, k); end > i {
			i = end
			continue
		}
		if sc.src[i] == ')' {
			if i == from {
				return nil, 0, false
			}
			return []string{sc.src[from:i]}, i + 1, true
		}
		i++
	}
	return nil, 0, false
}

// image matches the URL part of "[IMG:http(s)://...]".
func (sc *scanner) image(from int) ([]string, int, bool) {
	rest := sc.src[from:]
	var scheme string
	switch {
	case strings.HasPrefix(rest, "http://"):
		scheme = "http://"
	case strings.HasPrefix(rest, "https://"):
		scheme = "https://"
	default:
		return nil, 0, false
	}
	end := strings.IndexByte(rest, ']')
	if end < len(scheme)+1 {
		return nil, 0, false
	}
	return []string{rest[:end]}, from + end + 1, true
}

func (sc *scanner) vector(from int) ([]string, int, bool) { return sc.closed(Vector, from) }

func (sc *scanner) sqrt(from int) ([]string, int, bool) { return sc.closed(Sqrt, from) }

func (sc *scanner) subscript(from int) ([]string, int, bool) { return sc.closed(Subscript, from) }

// fraction matches "num/den)" where neither part contains a parenthesis of its
// own. Both parts must be non-empty; with several slashes the last one that
// leaves a denominator splits them.
func (sc *scanner) fraction(from int) ([]string, int, bool) {
	last, prev := -1, -1
	for i := from; i < len(sc.src); {
		if end := sc.skip(i, Fraction); end > i {
			i = end
			continue
		}
		switch sc.src[i] {
		case '(':
			return nil, 0, false
		case ')':
			slash := last
			if slash == i-1 {
				slash = prev
			}
			if slash < 0 {
				return nil, 0, false
			}
			return []string{sc.src[from:slash], sc.src[slash+1 : i]}, i + 1, true
		case '/':
			if i > from {
				last, prev = i, last
			}
		}
		i++
	}
	return nil, 0, false
}

// nthRoot matches "index, radicand)". The index holds no ',' and no ')';
// the radicand holds no ')' and may be only whitespace, which trims to empty.
func (sc *scanner) nthRoot(from int) ([]string, int, bool) {
	comma := -1
	for i := from; i < len(sc.src); {
		if end := sc.skip(i, NthRoot); end > i {
			i = end
			continue
		}
		switch c := sc.src[i]; {
		case c == ')':
			if comma < 0 || i == comma+1 {
				return nil, 0, false
			}
			return []string{sc.src[from:comma], sc.src[comma+1 : i]}, i + 1, true
		case c == ',' && comma < 0:
			if i == from {
				return nil, 0, false
			}
			comma = i
		}
		i++
	}
	return nil, 0, false
}

// superscript matches content followed by ')'. The content is plain text, then
// any number of adjacent parenthesized groups, then plain text again, e.g.
// "(n+1))" or "a(b)(c)d)". Groups do not nest, and "(a)x(b)" does not match:
// text between two groups ends the groups. The content may be empty.
func (sc *scanner) superscript(from int) ([]string, int, bool) {
	const (
		lead = iota
		group
		afterGroup
		trail
	)
	state := lead
	for i := from; i < len(sc.src); {
		if end := sc.skip(i, Superscript); end > i {
			if state == afterGroup {
				state = trail
			}
			i = end
			continue
		}
		switch sc.src[i] {
		case '(':
			if state == group || state == trail {
				return nil, 0, false
			}
			state = group
		case ')':
			if state != group {
				return []string{sc.src[from:i]}, i + 1, true
			}
			state = afterGroup
		default:
			if state == afterGroup {
				state = trail
			}
		}
		i++
	}
	return nil, 0, false
}
