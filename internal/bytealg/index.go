// Package bytealg holds the exact code-unit primitives the ordinal comparator
// is built from.
package bytealg

import (
	"slices"

	"github.com/mhr3/collation/ascii"
)

// rareFilterMin is the needle length from which the rare-unit filter of
// ascii.Needle beats scanning for the first unit.
const rareFilterMin = 4

// Index finds the first exact match of needle in haystack.
func Index(haystack, needle []uint16) int {
	n := len(needle)
	switch {
	case n == 0:
		return 0
	case n > len(haystack):
		return -1
	case n == 1:
		return slices.Index(haystack, needle[0])
	case n >= rareFilterMin:
		return ascii.MakeNeedle(needle, true).Index(haystack)
	}

	first := needle[0]
	for i := 0; i <= len(haystack)-n; {
		j := slices.Index(haystack[i:len(haystack)-n+1], first)
		if j < 0 {
			return -1
		}
		i += j
		if slices.Equal(haystack[i:i+n], needle) {
			return i
		}
		i++
	}
	return -1
}

// LastIndex finds the last exact match of needle in haystack.
func LastIndex(haystack, needle []uint16) int {
	n := len(needle)
	switch {
	case n == 0:
		return len(haystack)
	case n > len(haystack):
		return -1
	case n >= rareFilterMin:
		return ascii.MakeNeedle(needle, true).LastIndex(haystack)
	}

	last := needle[n-1]
	for i := len(haystack) - n; i >= 0; i-- {
		if haystack[i+n-1] == last && slices.Equal(haystack[i:i+n], needle) {
			return i
		}
	}
	return -1
}
