package utf16

import "github.com/mhr3/collation/ascii"

// Valid reports whether u contains no unpaired surrogates.
func Valid(u []uint16) bool {
	return IndexInvalid(u) == -1
}

// IndexInvalid returns the index of the first unpaired surrogate, or -1.
func IndexInvalid(u []uint16) int {
	pos := 0
	for {
		// Surrogates all have the top bit set; skip everything below 0x8000.
		i := ascii.IndexMask(u[pos:], 0x8000)
		if i < 0 {
			return -1
		}
		pos += i
		c := u[pos]
		switch {
		case IsHighSurrogate(c):
			if pos+1 >= len(u) || !IsLowSurrogate(u[pos+1]) {
				return pos
			}
			pos += 2
		case IsLowSurrogate(c):
			return pos
		default:
			pos++
		}
	}
}
