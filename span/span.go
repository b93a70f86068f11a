// Package span resolves caller-supplied offsets and counts into validated
// windows over UTF-16 text, and carries search results back into the
// caller's coordinates.
//
// All violations are reported against one convention: an offset outside
// [0, len] names the offset parameter, a negative count or one running past
// the end names the count parameter.
package span

import "github.com/mhr3/collation/collerr"

// Parameter names reported by the resolvers.
const (
	ParamSource     = "source"
	ParamValue      = "value"
	ParamStartIndex = "startIndex"
	ParamCount      = "count"
)

// Span is a read-only window into caller-owned text. Start is the window's
// offset in the caller's coordinate space.
type Span struct {
	Text  []uint16
	Start int
}

// Whole returns a span covering all of text.
func Whole(text []uint16) Span {
	return Span{Text: text}
}

// Len returns the window length in code units.
func (s Span) Len() int { return len(s.Text) }

// End returns the caller-space index just past the window.
func (s Span) End() int { return s.Start + len(s.Text) }

// Translate moves a match found inside the window into caller coordinates.
func (s Span) Translate(m Match) Match {
	if !m.Found() {
		return NotFound
	}
	return Match{Index: m.Index + s.Start, Length: m.Length}
}

// Match is the result of a search: the caller-space index of the match and
// the number of source code units it consumed.
type Match struct {
	Index  int
	Length int
}

// NotFound is the canonical miss; its Length is always 0.
var NotFound = Match{Index: -1}

// Found reports whether m denotes a match.
func (m Match) Found() bool { return m.Index >= 0 }

// CheckNull validates a source/value pair. A nil source wins over a nil
// value when both are missing.
func CheckNull(source, value []uint16) error {
	if source == nil {
		return collerr.NullInput(ParamSource)
	}
	if value == nil {
		return collerr.NullInput(ParamValue)
	}
	return nil
}

// Sub validates [offset, offset+count) against text and names violations
// after offsetParam and countParam.
func Sub(text []uint16, offset, count int, offsetParam, countParam string) (Span, error) {
	if offset < 0 || offset > len(text) {
		return Span{}, collerr.OutOfRange(offsetParam, "offset %d outside [0, %d]", offset, len(text))
	}
	if count < 0 || count > len(text)-offset {
		return Span{}, collerr.OutOfRange(countParam, "count %d outside [0, %d]", count, len(text)-offset)
	}
	return Span{Text: text[offset : offset+count : offset+count], Start: offset}, nil
}

// Tail validates an offset-only call shape, the window running to the end.
func Tail(text []uint16, offset int, offsetParam string) (Span, error) {
	if offset < 0 || offset > len(text) {
		return Span{}, collerr.OutOfRange(offsetParam, "offset %d outside [0, %d]", offset, len(text))
	}
	return Span{Text: text[offset:], Start: offset}, nil
}

// Forward validates a forward search window [startIndex, startIndex+count).
func Forward(text []uint16, startIndex, count int) (Span, error) {
	return Sub(text, startIndex, count, ParamStartIndex, ParamCount)
}

// Reverse validates a backward search window, which ends at startIndex
// (inclusive) and extends count units towards the beginning:
// [startIndex-count+1, startIndex].
//
// Two historical allowances are kept: an empty text accepts startIndex and
// count of -1 or 0, and startIndex == len(text) is accepted by moving it back
// one unit (and shrinking a positive count to match).
func Reverse(text []uint16, startIndex, count int) (Span, error) {
	n := len(text)
	if n == 0 {
		if startIndex != -1 && startIndex != 0 {
			return Span{}, collerr.OutOfRange(ParamStartIndex, "startIndex %d invalid for empty source", startIndex)
		}
		if count != -1 && count != 0 {
			return Span{}, collerr.OutOfRange(ParamCount, "count %d invalid for empty source", count)
		}
		return Span{Text: text[:0]}, nil
	}

	if startIndex < 0 || startIndex > n {
		return Span{}, collerr.OutOfRange(ParamStartIndex, "startIndex %d outside [0, %d]", startIndex, n)
	}
	if startIndex == n {
		startIndex--
		if count > 0 {
			count--
		}
	}
	if count < 0 || startIndex-count+1 < 0 {
		return Span{}, collerr.OutOfRange(ParamCount, "count %d outside [0, %d]", count, startIndex+1)
	}

	start := startIndex - count + 1
	return Span{Text: text[start : startIndex+1 : startIndex+1], Start: start}, nil
}
