// Package utf16 provides the UTF-16 helpers the collation packages share:
// conversion to and from Go strings, surrogate classification, validity and
// code point stepping in both directions.
package utf16

import (
	"unicode/utf16"
	"unicode/utf8"

	"github.com/mhr3/collation/ascii"
)

const (
	surrSelf = 0x10000
	maxRune  = 0x10FFFF
	surr1    = 0xD800
	surr2    = 0xDC00
	surr3    = 0xE000
	replChar = utf8.RuneError
)

// FromString encodes s as UTF-16. The result is never nil, so an empty
// string stays distinguishable from a null input.
func FromString(s string) []uint16 {
	if ascii.ValidString(s) {
		out := make([]uint16, len(s))
		for i := 0; i < len(s); i++ {
			out[i] = uint16(s[i])
		}
		return out
	}
	out := make([]uint16, 0, len(s))
	for _, r := range s {
		out = AppendRune(out, r)
	}
	return out
}

// String decodes u, replacing unpaired surrogates with U+FFFD.
func String(u []uint16) string {
	if ascii.IndexNonASCII(u) == -1 {
		b := make([]byte, len(u))
		for i, c := range u {
			b[i] = byte(c)
		}
		return string(b)
	}
	return string(utf16.Decode(u))
}

func IsHighSurrogate(u uint16) bool { return u >= surr1 && u < surr2 }

func IsLowSurrogate(u uint16) bool { return u >= surr2 && u < surr3 }

func IsSurrogate(u uint16) bool { return u >= surr1 && u < surr3 }

// AppendRune appends the UTF-16 encoding of r. Invalid runes are appended as
// U+FFFD.
func AppendRune(dst []uint16, r rune) []uint16 {
	switch {
	case 0 <= r && r < surr1, surr3 <= r && r < surrSelf:
		return append(dst, uint16(r))
	case surrSelf <= r && r <= maxRune:
		r1, r2 := utf16.EncodeRune(r)
		return append(dst, uint16(r1), uint16(r2))
	}
	return append(dst, replChar)
}

// RuneLen returns the number of code units needed to encode r, or -1.
func RuneLen(r rune) int {
	switch {
	case 0 <= r && r < surr1, surr3 <= r && r < surrSelf:
		return 1
	case surrSelf <= r && r <= maxRune:
		return 2
	}
	return -1
}

// DecodeRune returns the code point starting at u[0] and its width in units.
// An unpaired surrogate is returned as its raw value with width 1, so that
// callers comparing code points keep ordinal behavior for broken text.
func DecodeRune(u []uint16) (rune, int) {
	if len(u) == 0 {
		return replChar, 0
	}
	c := u[0]
	if IsHighSurrogate(c) && len(u) > 1 && IsLowSurrogate(u[1]) {
		return utf16.DecodeRune(rune(c), rune(u[1])), 2
	}
	return rune(c), 1
}

// DecodeLastRune is DecodeRune for the code point ending at u[len(u)-1].
func DecodeLastRune(u []uint16) (rune, int) {
	n := len(u)
	if n == 0 {
		return replChar, 0
	}
	c := u[n-1]
	if IsLowSurrogate(c) && n > 1 && IsHighSurrogate(u[n-2]) {
		return utf16.DecodeRune(rune(u[n-2]), rune(c)), 2
	}
	return rune(c), 1
}

// Runes decodes u into code points using DecodeRune semantics.
func Runes(u []uint16) []rune {
	out := make([]rune, 0, len(u))
	for len(u) > 0 {
		r, n := DecodeRune(u)
		out = append(out, r)
		u = u[n:]
	}
	return out
}

// SplitsPair reports whether index i falls between the two halves of a
// surrogate pair.
func SplitsPair(u []uint16, i int) bool {
	return i > 0 && i < len(u) && IsLowSurrogate(u[i]) && IsHighSurrogate(u[i-1])
}
