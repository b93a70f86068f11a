// Package ordinal implements comparison and search by raw UTF-16 code unit
// value, with an ignore-case variant built on the invariant simple case
// mapping.
//
// Matches in this package always consume exactly len(value) source units.
package ordinal

import (
	"github.com/mhr3/collation/ascii"
	"github.com/mhr3/collation/internal/bytealg"
	"github.com/mhr3/collation/internal/casing"
	"github.com/mhr3/collation/span"
)

// Compare orders a and b by code unit and returns -1, 0 or +1.
func Compare(a, b []uint16) int {
	return bytealg.Compare(a, b)
}

// CompareIgnoreCase orders a and b after mapping both to invariant
// uppercase. It is not Turkish-aware.
func CompareIgnoreCase(a, b []uint16) int {
	n := min(len(a), len(b))
	i := 0
	for ; i < n; i++ {
		x, y := a[i], b[i]
		if x|y >= 0x80 {
			break
		}
		if x != y {
			x, y = ascii.ToUpper(x), ascii.ToUpper(y)
			if x != y {
				if x < y {
					return -1
				}
				return 1
			}
		}
	}
	if i < n {
		// Everything before i is ASCII, so i never splits a pair.
		return casing.CompareUpper(a[i:], b[i:])
	}
	switch {
	case len(a) < len(b):
		return -1
	case len(a) > len(b):
		return 1
	}
	return 0
}

func equal(a, b []uint16, ignoreCase bool) bool {
	if ignoreCase {
		return casing.EqualUpper(a, b)
	}
	return bytealg.Equal(a, b)
}

// IndexOf finds value in source, scanning from the front when fromStart is
// set and from the back otherwise. An empty value matches at 0 going
// forward and at len(source) going backward.
func IndexOf(source, value []uint16, ignoreCase, fromStart bool) span.Match {
	n := len(value)
	if n == 0 {
		if fromStart {
			return span.Match{Index: 0}
		}
		return span.Match{Index: len(source)}
	}
	if n > len(source) {
		return span.NotFound
	}

	var idx int
	switch {
	case !ignoreCase && fromStart:
		idx = bytealg.Index(source, value)
	case !ignoreCase:
		idx = bytealg.LastIndex(source, value)
	case ascii.IndexNonASCII(value) == -1 && ascii.IndexNonASCII(source) == -1:
		if fromStart {
			idx = ascii.IndexFold(source, value)
		} else {
			idx = ascii.LastIndexFold(source, value)
		}
	default:
		idx = indexIgnoreCase(source, value, fromStart)
	}
	if idx < 0 {
		return span.NotFound
	}
	return span.Match{Index: idx, Length: n}
}

// indexIgnoreCase is the general ignore-case scan. The mapping keeps code
// unit lengths, so candidate windows are always len(value) units wide.
func indexIgnoreCase(source, value []uint16, fromStart bool) int {
	n := len(value)
	last := len(source) - n
	first := casing.UpperUnitAt(value, 0)
	if fromStart {
		for i := 0; i <= last; i++ {
			w := source[i : i+n]
			if casing.UpperUnitAt(w, 0) == first && casing.EqualUpper(w, value) {
				return i
			}
		}
		return -1
	}
	for i := last; i >= 0; i-- {
		if casing.EqualUpper(source[i:i+n], value) {
			return i
		}
	}
	return -1
}

// HasPrefix reports whether source starts with prefix and, if so, how many
// source units the prefix consumed.
func HasPrefix(source, prefix []uint16, ignoreCase bool) (bool, int) {
	if len(prefix) > len(source) {
		return false, 0
	}
	if !equal(source[:len(prefix)], prefix, ignoreCase) {
		return false, 0
	}
	return true, len(prefix)
}

// HasSuffix is HasPrefix anchored at the end of source.
func HasSuffix(source, suffix []uint16, ignoreCase bool) (bool, int) {
	if len(suffix) > len(source) {
		return false, 0
	}
	if !equal(source[len(source)-len(suffix):], suffix, ignoreCase) {
		return false, 0
	}
	return true, len(suffix)
}
