package backend

import (
	"bytes"
	"unicode"

	"github.com/mhr3/collation/options"
	"github.com/mhr3/collation/span"
	"github.com/mhr3/collation/utf16"
)

// searcher matches one prepared pattern against windows of a source text.
// A window matches when it collates equal to the pattern; of all matching
// windows at a start position the shortest one wins.
//
// Windows only start and end on boundaries, and the source is cut into
// segments at those boundaries once per search. Because no contraction
// spans a boundary, the primary key of a window is the concatenation of its
// segments' keys, so extending a window by one segment is a prefix check
// against the pattern's primary key rather than a new collation.
type searcher struct {
	c          *collators
	o          options.CompareOptions
	pat        prepared
	patPrimary []byte
	empty      prepared
}

func (c *collators) newSearch(value []uint16, o options.CompareOptions) *searcher {
	s := &searcher{c: c, o: o, pat: c.prepare(value, o), empty: c.prepare(nil, o)}
	s.patPrimary = bytes.Clone(c.primaryKey(s.pat))
	c.buf.Reset()
	return s
}

// isEmpty reports whether the pattern collates to nothing, as a lone
// zero-width joiner does. Such a pattern matches like the empty string.
func (s *searcher) isEmpty() bool {
	return s.c.compare(s.pat, s.empty) == 0
}

// segments is a source cut at its boundaries. Segment i covers
// source[bounds[i]:bounds[i+1]].
type segments struct {
	source []uint16
	bounds []int
	// keys holds the primary key of every segment, back to back; segment i
	// owns keys[keyAt[i]:keyAt[i+1]].
	keys  []byte
	keyAt []int
	// ignorable marks segments that collate to nothing at any level.
	ignorable []bool
}

func (g *segments) len() int { return len(g.bounds) - 1 }

func (g *segments) key(i int) []byte { return g.keys[g.keyAt[i]:g.keyAt[i+1]] }

func (s *searcher) segment(source []uint16) *segments {
	g := &segments{
		source: source,
		bounds: make([]int, 0, len(source)+1),
		keyAt:  make([]int, 1, len(source)+1),
	}
	g.bounds = append(g.bounds, 0)
	for i := 1; i <= len(source); i++ {
		if s.c.isBoundary(source, i, s.o) {
			g.bounds = append(g.bounds, i)
		}
	}
	g.ignorable = make([]bool, g.len())
	for i := 0; i < g.len(); i++ {
		p := s.c.prepare(source[g.bounds[i]:g.bounds[i+1]], s.o)
		g.keys = append(g.keys, s.c.primaryKey(p)...)
		g.keyAt = append(g.keyAt, len(g.keys))
		g.ignorable[i] = s.c.compare(p, s.empty) == 0
		s.c.buf.Reset()
	}
	return g
}

func (s *searcher) index(source []uint16, fromStart bool) span.Match {
	if s.isEmpty() {
		if fromStart {
			return span.Match{Index: 0}
		}
		return span.Match{Index: len(source)}
	}
	g := s.segment(source)
	if fromStart {
		for i := 0; i < g.len(); i++ {
			if end, ok := s.matchAt(g, i, false); ok {
				return span.Match{Index: g.bounds[i], Length: end - g.bounds[i]}
			}
		}
		return span.NotFound
	}
	for i := g.len() - 1; i >= 0; i-- {
		if end, ok := s.matchAt(g, i, false); ok {
			return span.Match{Index: g.bounds[i], Length: end - g.bounds[i]}
		}
	}
	return span.NotFound
}

func (s *searcher) prefix(source []uint16) (bool, int) {
	if s.isEmpty() {
		return true, 0
	}
	g := s.segment(source)
	if g.len() == 0 {
		return false, 0
	}
	end, ok := s.matchAt(g, 0, true)
	return ok, end
}

// suffix grows the window leftwards from the end of the source, matching
// segment keys against the tail of the pattern's primary key.
func (s *searcher) suffix(source []uint16) (bool, int) {
	if s.isEmpty() {
		return true, 0
	}
	g := s.segment(source)
	matched, dirty := 0, false
	for i := g.len() - 1; i >= 0; i-- {
		k := g.key(i)
		if len(k) > 0 && matched == len(s.patPrimary) {
			break
		}
		rest := s.patPrimary[:len(s.patPrimary)-matched]
		if !bytes.HasSuffix(rest, k) {
			break
		}
		matched += len(k)
		dirty = dirty || !g.ignorable[i]
		if matched < len(s.patPrimary) || !dirty {
			continue
		}
		dirty = false
		if s.equal(source[g.bounds[i]:]) {
			return true, len(source) - g.bounds[i]
		}
	}
	return false, 0
}

// matchAt returns the end of the shortest window starting at segment first
// that matches the pattern. Unless leadingIgnorable is set, a window may not
// start on a segment that collates to nothing.
func (s *searcher) matchAt(g *segments, first int, leadingIgnorable bool) (int, bool) {
	if !leadingIgnorable && g.ignorable[first] {
		return 0, false
	}
	if g.keyAt[g.len()]-g.keyAt[first] < len(s.patPrimary) {
		return 0, false
	}
	start := g.bounds[first]
	matched, dirty := 0, false
	for i := first; i < g.len(); i++ {
		k := g.key(i)
		if len(k) > 0 && matched == len(s.patPrimary) {
			break
		}
		if !bytes.HasPrefix(s.patPrimary[matched:], k) {
			break
		}
		matched += len(k)
		// Segments that collate to nothing cannot turn a failed comparison
		// into a match, so only the others are worth another comparison.
		dirty = dirty || !g.ignorable[i]
		if matched < len(s.patPrimary) || !dirty {
			continue
		}
		dirty = false
		end := g.bounds[i+1]
		if s.equal(g.source[start:end]) {
			return end, true
		}
	}
	return 0, false
}

func (s *searcher) equal(window []uint16) bool {
	return s.c.compare(s.c.prepare(window, s.o), s.pat) == 0
}

// isBoundary reports whether a match may begin or end at i. A boundary
// never splits a surrogate pair, never separates a combining mark from its
// base and never falls inside a contraction: the two characters around it
// must have the primary key their separate keys add up to.
func (c *collators) isBoundary(u []uint16, i int, o options.CompareOptions) bool {
	if i <= 0 || i >= len(u) {
		return true
	}
	if utf16.SplitsPair(u, i) {
		return false
	}
	r, n := utf16.DecodeRune(u[i:])
	if unicode.In(r, unicode.Mn, unicode.Me) {
		return false
	}
	_, m := utf16.DecodeLastRune(u[:i])
	defer c.buf.Reset()
	left := c.primaryKey(prepared{text: c.prepareText(u[i-m:i], o)})
	right := c.primaryKey(prepared{text: c.prepareText(u[i:i+n], o)})
	pair := c.primaryKey(prepared{text: c.prepareText(u[i-m:i+n], o)})
	return len(pair) == len(left)+len(right) &&
		bytes.HasPrefix(pair, left) && bytes.HasSuffix(pair, right)
}
