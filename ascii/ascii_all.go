// Package ascii provides ASCII fast paths over UTF-16 code units.
//
// Every function operates on []uint16 so indices are code-unit indices.
// Case folding only ever touches 'A'..'Z' and 'a'..'z'; every other unit,
// ASCII or not, must match exactly.
package ascii

// Valid reports whether every unit of s is below 0x80.
func Valid(s []uint16) bool {
	return indexMaskGo(s, 0xFF80) == -1
}

// ValidString is Valid for Go strings.
func ValidString(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= 0x80 {
			return false
		}
	}
	return true
}

// IndexMask returns the index of the first unit u with u&mask != 0, or -1.
func IndexMask(s []uint16, mask uint16) int {
	return indexMaskGo(s, mask)
}

// LastIndexMask returns the index of the last unit u with u&mask != 0, or -1.
func LastIndexMask(s []uint16, mask uint16) int {
	return lastIndexMaskGo(s, mask)
}

// IndexNonASCII returns the index of the first unit at or above 0x80, or -1.
func IndexNonASCII(s []uint16) int {
	return indexMaskGo(s, 0xFF80)
}

// IndexNonPrintable returns the index of the first unit outside the printable
// range 0x20..0x7E, or -1.
func IndexNonPrintable(s []uint16) int {
	return indexNonPrintableGo(s)
}

// EqualFold reports whether a and b are equal under ASCII case folding.
func EqualFold(a, b []uint16) bool {
	return equalFoldGo(a, b)
}

func HasPrefixFold(s, prefix []uint16) bool {
	if len(s) < len(prefix) {
		return false
	}
	return EqualFold(s[:len(prefix)], prefix)
}

func HasSuffixFold(s, suffix []uint16) bool {
	if len(s) < len(suffix) {
		return false
	}
	return EqualFold(s[len(s)-len(suffix):], suffix)
}

// IndexFold returns the index of the first ASCII-case-insensitive match of
// substr in s, or -1.
func IndexFold(s, substr []uint16) int {
	if len(substr) == 0 {
		return 0
	}
	if len(substr) > len(s) {
		return -1
	}
	return MakeNeedle(substr, false).Index(s)
}

// LastIndexFold returns the index of the last ASCII-case-insensitive match of
// substr in s, or -1.
func LastIndexFold(s, substr []uint16) int {
	if len(substr) == 0 {
		return len(s)
	}
	if len(substr) > len(s) {
		return -1
	}
	return MakeNeedle(substr, false).LastIndex(s)
}
