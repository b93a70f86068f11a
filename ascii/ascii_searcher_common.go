package ascii

// selectRarePair picks the two rarest units of pattern. The returned units
// are lower-cased unless caseSensitive. off1 < off2 unless the pattern has a
// single unit, in which case both offsets are 0.
func selectRarePair(pattern []uint16, caseSensitive bool) (rare1 uint16, off1 int, rare2 uint16, off2 int) {
	n := len(pattern)
	if n == 0 {
		return 0, 0, 0, 0
	}

	normalize := toLower
	if caseSensitive {
		normalize = func(u uint16) uint16 { return u }
	}

	if n == 1 {
		u := normalize(pattern[0])
		return u, 0, u, 0
	}

	best1Unit, best2Unit := normalize(pattern[0]), uint16(0)
	best1Off, best2Off := 0, -1
	best1Rank := rankOf(best1Unit, caseSensitive)
	best2Rank := uint16(0xFFFF)

	for i := 1; i < n; i++ {
		c := normalize(pattern[i])
		r := rankOf(c, caseSensitive)
		if r < best1Rank {
			if c != best1Unit {
				best2Unit, best2Off, best2Rank = best1Unit, best1Off, best1Rank
			}
			best1Unit, best1Off, best1Rank = c, i, r
		} else if c != best1Unit && r < best2Rank {
			best2Unit, best2Off, best2Rank = c, i, r
		}
	}

	if best2Off == -1 {
		return normalize(pattern[0]), 0, normalize(pattern[n-1]), n - 1
	}

	off1, off2 = best1Off, best2Off
	rare1, rare2 = best1Unit, best2Unit
	if off1 > off2 {
		off1, off2 = off2, off1
		rare1, rare2 = rare2, rare1
	}
	return rare1, off1, rare2, off2
}

// Needle is a pattern prepared for repeated scans. The two rarest units are
// checked before the full comparison.
type Needle struct {
	raw           []uint16
	caseSensitive bool
	rare1         uint16
	off1          int
	rare2         uint16
	off2          int
}

// MakeNeedle prepares pattern for Index and LastIndex. With caseSensitive
// false, ASCII letters match regardless of case.
func MakeNeedle(pattern []uint16, caseSensitive bool) Needle {
	rare1, off1, rare2, off2 := selectRarePair(pattern, caseSensitive)
	return Needle{
		raw:           pattern,
		caseSensitive: caseSensitive,
		rare1:         rare1,
		off1:          off1,
		rare2:         rare2,
		off2:          off2,
	}
}

// Len returns the needle length in code units.
func (n Needle) Len() int { return len(n.raw) }

func (n Needle) unitMatches(u, rare uint16) bool {
	if n.caseSensitive {
		return u == rare
	}
	return toLower(u) == rare
}

func (n Needle) matchAt(s []uint16, i int) bool {
	if !n.unitMatches(s[i+n.off1], n.rare1) || !n.unitMatches(s[i+n.off2], n.rare2) {
		return false
	}
	window := s[i : i+len(n.raw)]
	if n.caseSensitive {
		for k, u := range window {
			if u != n.raw[k] {
				return false
			}
		}
		return true
	}
	return equalFoldGo(window, n.raw)
}

// Index returns the index of the first match in s, or -1.
func (n Needle) Index(s []uint16) int {
	if len(n.raw) == 0 {
		return 0
	}
	for i := 0; i <= len(s)-len(n.raw); i++ {
		if n.matchAt(s, i) {
			return i
		}
	}
	return -1
}

// LastIndex returns the index of the last match in s, or -1.
func (n Needle) LastIndex(s []uint16) int {
	if len(n.raw) == 0 {
		return len(s)
	}
	for i := len(s) - len(n.raw); i >= 0; i-- {
		if n.matchAt(s, i) {
			return i
		}
	}
	return -1
}
