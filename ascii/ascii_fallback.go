package ascii

import "math/bits"

// Word-at-a-time kernels over UTF-16 code units. Four units are packed into
// one uint64 with unit i occupying bits [16i, 16i+16).

const (
	lanes    = 4
	laneOnes = ^uint64(0) / 0xFFFF // 0x0001000100010001
	laneHigh = laneOnes * 0x8000
)

func load4(s []uint16) uint64 {
	_ = s[3]
	return uint64(s[0]) | uint64(s[1])<<16 | uint64(s[2])<<32 | uint64(s[3])<<48
}

func indexMaskGo(s []uint16, mask uint16) int {
	mask64 := laneOnes * uint64(mask)

	pos := 0
	for ; len(s) >= lanes; pos, s = pos+lanes, s[lanes:] {
		if w := load4(s) & mask64; w != 0 {
			return pos + bits.TrailingZeros64(w)/16
		}
	}

	for i, u := range s {
		if u&mask != 0 {
			return pos + i
		}
	}
	return -1
}

// hasLess flags every lane below n. Lanes must be < 0x8000 and n <= 0x8000;
// lanes above the first flagged lane may be flagged spuriously through borrow.
func hasLess(x uint64, n uint16) uint64 {
	return (x - laneOnes*uint64(n)) & ^x & laneHigh
}

func hasZero(x uint64) uint64 {
	return hasLess(x, 1)
}

// hasLowercaseASCIIUnit flags the lanes holding 'a'..'z'.
// based on https://graphics.stanford.edu/~seander/bithacks.html#HasBetweenInWord
func hasLowercaseASCIIUnit(x uint64) uint64 {
	const m, n = 'a' - 1, 'z' + 1

	A := laneOnes * (0x7FFF + n)
	B := x & (laneOnes * 0x7FFF)
	C := ^x
	D := laneOnes * (0x7FFF - m)
	return (A - B) & C & (B + D) & laneHigh
}

// asciiFoldWord upper-cases the ASCII letters of a packed word.
func asciiFoldWord(x uint64) uint64 {
	mask := hasLowercaseASCIIUnit(x)
	mask >>= 10 // 0x8000 -> 0x0020
	return x - mask
}

func isPrintableWord(w uint64) bool {
	const del = laneOnes * 0x7F
	if w&(laneOnes*0xFF80) != 0 {
		return false
	}
	return hasLess(w, 0x20) == 0 && hasZero(w^del) == 0
}

func isPrintable(u uint16) bool {
	return u >= 0x20 && u < 0x7F
}

func indexNonPrintableGo(s []uint16) int {
	pos := 0
	for ; len(s) >= lanes; pos, s = pos+lanes, s[lanes:] {
		if !isPrintableWord(load4(s)) {
			break
		}
	}
	for i, u := range s {
		if !isPrintable(u) {
			return pos + i
		}
	}
	return -1
}

func equalFoldGo(a, b []uint16) bool {
	if len(a) != len(b) {
		return false
	}

	for len(a) >= lanes {
		a64, b64 := load4(a), load4(b)
		if a64 != b64 && asciiFoldWord(a64) != asciiFoldWord(b64) {
			return false
		}
		a, b = a[lanes:], b[lanes:]
	}

	for i := range a {
		if a[i] != b[i] && toUpper(a[i]) != toUpper(b[i]) {
			return false
		}
	}
	return true
}

func lastIndexMaskGo(s []uint16, mask uint16) int {
	for i := len(s) - 1; i >= 0; i-- {
		if s[i]&mask != 0 {
			return i
		}
	}
	return -1
}
