// Package casing holds the locale-independent simple case mappings used by
// ordinal-ignore-case comparison and by the invariant text info.
//
// Only one-to-one mappings are applied: a code point never changes its
// UTF-16 length class, so indices computed on mapped text stay valid for the
// original. The Turkish dotless i (U+0131) and the long s (U+017F) are left
// alone when upper-casing, and the dotted capital I (U+0130) when
// lower-casing.
package casing

import (
	"unicode"

	"github.com/mhr3/collation/ascii"
	"github.com/mhr3/collation/utf16"
)

// UpperRune maps r to its invariant simple uppercase.
func UpperRune(r rune) rune {
	if r < 0x80 {
		return rune(ascii.ToUpper(uint16(r)))
	}
	switch r {
	case 0x0131, 0x017F:
		return r
	}
	u := unicode.ToUpper(r)
	if utf16.RuneLen(u) != utf16.RuneLen(r) {
		return r
	}
	return u
}

// LowerRune maps r to its invariant simple lowercase.
func LowerRune(r rune) rune {
	if r < 0x80 {
		return rune(ascii.ToLower(uint16(r)))
	}
	if r == 0x0130 {
		return r
	}
	l := unicode.ToLower(r)
	if utf16.RuneLen(l) != utf16.RuneLen(r) {
		return r
	}
	return l
}

// ToUpper appends the invariant uppercase of src to dst. The result has the
// same length as src.
func ToUpper(dst, src []uint16) []uint16 {
	return mapUnits(dst, src, UpperRune)
}

// ToLower appends the invariant lowercase of src to dst.
func ToLower(dst, src []uint16) []uint16 {
	return mapUnits(dst, src, LowerRune)
}

func mapUnits(dst, src []uint16, f func(rune) rune) []uint16 {
	if ascii.IndexNonASCII(src) == -1 {
		for _, u := range src {
			dst = append(dst, uint16(f(rune(u))))
		}
		return dst
	}
	for len(src) > 0 {
		r, n := utf16.DecodeRune(src)
		if n == 1 && utf16.IsSurrogate(uint16(r)) {
			dst = append(dst, uint16(r))
		} else {
			dst = utf16.AppendRune(dst, f(r))
		}
		src = src[n:]
	}
	return dst
}

// CompareUpper orders a and b by the code units of their invariant
// uppercase forms, returning -1, 0 or +1. Surrogate pairs are mapped as one
// code point; unpaired surrogates compare by raw value.
func CompareUpper(a, b []uint16) int {
	n := min(len(a), len(b))
	for i := 0; i < n; i++ {
		if a[i] == b[i] && a[i] < 0x80 {
			continue
		}
		ua, ub := UpperUnitAt(a, i), UpperUnitAt(b, i)
		if ua != ub {
			if ua < ub {
				return -1
			}
			return 1
		}
	}
	switch {
	case len(a) < len(b):
		return -1
	case len(a) > len(b):
		return 1
	}
	return 0
}

// UpperUnitAt returns the code unit found at index i of the invariant
// uppercase form of u. Because the mapping keeps every code point's UTF-16
// length, the result can be computed without mapping the rest of u.
func UpperUnitAt(u []uint16, i int) uint16 {
	c := u[i]
	switch {
	case c < 0x80:
		return ascii.ToUpper(c)
	case utf16.IsHighSurrogate(c) && i+1 < len(u) && utf16.IsLowSurrogate(u[i+1]):
		r, _ := utf16.DecodeRune(u[i : i+2])
		var buf [2]uint16
		return utf16.AppendRune(buf[:0], UpperRune(r))[0]
	case utf16.IsLowSurrogate(c) && i > 0 && utf16.IsHighSurrogate(u[i-1]):
		r, _ := utf16.DecodeRune(u[i-1 : i+1])
		var buf [2]uint16
		return utf16.AppendRune(buf[:0], UpperRune(r))[1]
	case utf16.IsSurrogate(c):
		return c
	}
	return uint16(UpperRune(rune(c)))
}

// EqualUpper reports whether a and b have identical invariant uppercase forms.
func EqualUpper(a, b []uint16) bool {
	if len(a) != len(b) {
		return false
	}
	if ascii.IndexNonASCII(a) == -1 && ascii.IndexNonASCII(b) == -1 {
		return ascii.EqualFold(a, b)
	}
	return CompareUpper(a, b) == 0
}
