package compareinfo

import (
	"github.com/mhr3/collation/options"
	"github.com/mhr3/collation/ordinal"
	"github.com/mhr3/collation/span"
	"github.com/mhr3/collation/utf16"
)

// IndexOf returns the index of the first occurrence of value in source,
// or -1.
func (c *CompareInfo) IndexOf(source, value string, o options.CompareOptions) (int, error) {
	m, err := c.IndexOfUnits(utf16.FromString(source), utf16.FromString(value), o)
	return m.Index, err
}

// IndexOfFrom searches source[startIndex:].
func (c *CompareInfo) IndexOfFrom(source, value string, startIndex int, o options.CompareOptions) (int, error) {
	src := utf16.FromString(source)
	m, err := c.IndexOfUnitsRange(src, utf16.FromString(value), startIndex, len(src)-startIndex, o)
	return m.Index, err
}

// IndexOfRange searches source[startIndex:startIndex+count].
func (c *CompareInfo) IndexOfRange(source, value string, startIndex, count int, o options.CompareOptions) (int, error) {
	m, err := c.IndexOfUnitsRange(utf16.FromString(source), utf16.FromString(value), startIndex, count, o)
	return m.Index, err
}

// IndexOfRune searches source for the UTF-16 encoding of r.
func (c *CompareInfo) IndexOfRune(source string, r rune, o options.CompareOptions) (int, error) {
	m, err := c.IndexOfUnits(utf16.FromString(source), utf16.AppendRune(nil, r), o)
	return m.Index, err
}

// IndexOfUnits returns the first match of value in source together with the
// number of source units it consumed.
func (c *CompareInfo) IndexOfUnits(source, value []uint16, o options.CompareOptions) (span.Match, error) {
	if err := span.CheckNull(source, value); err != nil {
		return span.NotFound, err
	}
	return c.search(span.Whole(source), value, o, true)
}

// IndexOfUnitsRange is IndexOfUnits over source[startIndex:startIndex+count].
// The returned index is relative to the start of source.
func (c *CompareInfo) IndexOfUnitsRange(source, value []uint16, startIndex, count int, o options.CompareOptions) (span.Match, error) {
	if err := span.CheckNull(source, value); err != nil {
		return span.NotFound, err
	}
	w, err := span.Forward(source, startIndex, count)
	if err != nil {
		return span.NotFound, err
	}
	return c.search(w, value, o, true)
}

// LastIndexOf returns the index of the last occurrence of value in source,
// or -1. An empty value is found at len(source).
func (c *CompareInfo) LastIndexOf(source, value string, o options.CompareOptions) (int, error) {
	m, err := c.LastIndexOfUnits(utf16.FromString(source), utf16.FromString(value), o)
	return m.Index, err
}

// LastIndexOfFrom searches backwards from startIndex (inclusive) to the
// beginning of source.
func (c *CompareInfo) LastIndexOfFrom(source, value string, startIndex int, o options.CompareOptions) (int, error) {
	src := utf16.FromString(source)
	count := startIndex + 1
	if len(src) == 0 && count > 0 {
		count = 0
	}
	m, err := c.LastIndexOfUnitsRange(src, utf16.FromString(value), startIndex, count, o)
	return m.Index, err
}

// LastIndexOfRange searches the count units ending at startIndex
// (inclusive).
func (c *CompareInfo) LastIndexOfRange(source, value string, startIndex, count int, o options.CompareOptions) (int, error) {
	m, err := c.LastIndexOfUnitsRange(utf16.FromString(source), utf16.FromString(value), startIndex, count, o)
	return m.Index, err
}

// LastIndexOfRune searches source backwards for the UTF-16 encoding of r.
func (c *CompareInfo) LastIndexOfRune(source string, r rune, o options.CompareOptions) (int, error) {
	m, err := c.LastIndexOfUnits(utf16.FromString(source), utf16.AppendRune(nil, r), o)
	return m.Index, err
}

// LastIndexOfUnits returns the last match of value in source together with
// the number of source units it consumed.
func (c *CompareInfo) LastIndexOfUnits(source, value []uint16, o options.CompareOptions) (span.Match, error) {
	if err := span.CheckNull(source, value); err != nil {
		return span.NotFound, err
	}
	return c.search(span.Whole(source), value, o, false)
}

// LastIndexOfUnitsRange is LastIndexOfUnits over the window
// [startIndex-count+1, startIndex]. An empty value is found just past the
// window.
func (c *CompareInfo) LastIndexOfUnitsRange(source, value []uint16, startIndex, count int, o options.CompareOptions) (span.Match, error) {
	if err := span.CheckNull(source, value); err != nil {
		return span.NotFound, err
	}
	w, err := span.Reverse(source, startIndex, count)
	if err != nil {
		return span.NotFound, err
	}
	return c.search(w, value, o, false)
}

// search runs a validated window search and translates the result into the
// caller's coordinates.
func (c *CompareInfo) search(w span.Span, value []uint16, o options.CompareOptions, fromStart bool) (span.Match, error) {
	if len(value) == 0 {
		if fromStart {
			return span.Match{Index: w.Start}, nil
		}
		return span.Match{Index: w.End()}, nil
	}
	if err := options.ValidateForSearch(o, options.DefaultParam); err != nil {
		return span.NotFound, err
	}

	var m span.Match
	switch o {
	case options.Ordinal:
		m = ordinal.IndexOf(w.Text, value, false, fromStart)
	case options.OrdinalIgnoreCase:
		m = ordinal.IndexOf(w.Text, value, true, fromStart)
	default:
		var ok bool
		if m, ok = c.fastIndex(w.Text, value, o, fromStart); !ok {
			op := opIndexOf
			if !fromStart {
				op = opLastIndexOf
			}
			c.metrics.backendCall(op)

			var err error
			if m, err = c.backend.IndexOf(w.Text, value, o, fromStart); err != nil {
				return span.NotFound, err
			}
		}
	}
	return w.Translate(m), nil
}
