// Package foldtable holds the static width and kana folding tables applied
// before text is handed to a locale-aware service that cannot fold them
// itself.
//
// The tables are data. Code points outside the listed ranges pass through
// unchanged; every mapping is one code unit to one code unit, so folded
// text keeps the indices of the original.
package foldtable

import "sort"

// rangeMap maps [Lo, Hi] to [Lo+Delta, Hi+Delta].
type rangeMap struct {
	Lo, Hi uint16
	Delta  int32
}

// pointMap maps a single code unit.
type pointMap struct {
	From, To uint16
}

// narrowRanges folds fullwidth ASCII and halfwidth Hangul to their canonical
// widths.
var narrowRanges = []rangeMap{
	{0xFF01, 0xFF5E, -0xFEE0}, // fullwidth ASCII -> ASCII
	{0xFFA1, 0xFFBE, -0xCE70}, // halfwidth Hangul consonants
	{0xFFC2, 0xFFC7, -0xCE73}, // halfwidth Hangul vowels
	{0xFFCA, 0xFFCF, -0xCE75},
	{0xFFD2, 0xFFD7, -0xCE77},
	{0xFFDA, 0xFFDC, -0xCE79},
}

// widthPoints covers the irregular width mappings, sorted by From.
var widthPoints = []pointMap{
	{0x3000, 0x0020}, // ideographic space
	{0xFF61, 0x3002}, {0xFF62, 0x300C}, {0xFF63, 0x300D}, {0xFF64, 0x3001},
	{0xFF65, 0x30FB}, {0xFF66, 0x30F2}, {0xFF67, 0x30A1}, {0xFF68, 0x30A3},
	{0xFF69, 0x30A5}, {0xFF6A, 0x30A7}, {0xFF6B, 0x30A9}, {0xFF6C, 0x30E3},
	{0xFF6D, 0x30E5}, {0xFF6E, 0x30E7}, {0xFF6F, 0x30C3}, {0xFF70, 0x30FC},
	{0xFF71, 0x30A2}, {0xFF72, 0x30A4}, {0xFF73, 0x30A6}, {0xFF74, 0x30A8},
	{0xFF75, 0x30AA}, {0xFF76, 0x30AB}, {0xFF77, 0x30AD}, {0xFF78, 0x30AF},
	{0xFF79, 0x30B1}, {0xFF7A, 0x30B3}, {0xFF7B, 0x30B5}, {0xFF7C, 0x30B7},
	{0xFF7D, 0x30B9}, {0xFF7E, 0x30BB}, {0xFF7F, 0x30BD}, {0xFF80, 0x30BF},
	{0xFF81, 0x30C1}, {0xFF82, 0x30C4}, {0xFF83, 0x30C6}, {0xFF84, 0x30C8},
	{0xFF85, 0x30CA}, {0xFF86, 0x30CB}, {0xFF87, 0x30CC}, {0xFF88, 0x30CD},
	{0xFF89, 0x30CE}, {0xFF8A, 0x30CF}, {0xFF8B, 0x30D2}, {0xFF8C, 0x30D5},
	{0xFF8D, 0x30D8}, {0xFF8E, 0x30DB}, {0xFF8F, 0x30DE}, {0xFF90, 0x30DF},
	{0xFF91, 0x30E0}, {0xFF92, 0x30E1}, {0xFF93, 0x30E2}, {0xFF94, 0x30E4},
	{0xFF95, 0x30E6}, {0xFF96, 0x30E8}, {0xFF97, 0x30E9}, {0xFF98, 0x30EA},
	{0xFF99, 0x30EB}, {0xFF9A, 0x30EC}, {0xFF9B, 0x30ED}, {0xFF9C, 0x30EF},
	{0xFF9D, 0x30F3}, {0xFF9E, 0x3099}, {0xFF9F, 0x309A},
	{0xFFA0, 0x3164}, // halfwidth Hangul filler
	{0xFFE0, 0x00A2}, {0xFFE1, 0x00A3}, {0xFFE2, 0x00AC}, {0xFFE3, 0x00AF},
	{0xFFE4, 0x00A6}, {0xFFE5, 0x00A5}, {0xFFE6, 0x20A9},
	{0xFFE8, 0x2502}, {0xFFE9, 0x2190}, {0xFFEA, 0x2191}, {0xFFEB, 0x2192},
	{0xFFEC, 0x2193}, {0xFFED, 0x25A0}, {0xFFEE, 0x25CB},
}

// kanaRanges folds hiragana onto katakana.
var kanaRanges = []rangeMap{
	{0x3041, 0x3096, 0x60},
	{0x309D, 0x309E, 0x60}, // iteration marks
}

// Width folds a code unit to its canonical width: fullwidth ASCII to ASCII,
// halfwidth katakana and Hangul to their regular forms.
func Width(u uint16) uint16 {
	if u < 0x3000 {
		return u
	}
	if v, ok := lookupRange(narrowRanges, u); ok {
		return v
	}
	if v, ok := lookupPoint(widthPoints, u); ok {
		return v
	}
	return u
}

// Kana folds a hiragana code unit to katakana.
func Kana(u uint16) uint16 {
	if v, ok := lookupRange(kanaRanges, u); ok {
		return v
	}
	return u
}

// IsHiragana reports whether u is folded by Kana.
func IsHiragana(u uint16) bool {
	_, ok := lookupRange(kanaRanges, u)
	return ok
}

// IsKatakana reports whether u is a katakana letter that has a hiragana
// counterpart.
func IsKatakana(u uint16) bool {
	for _, r := range kanaRanges {
		if int32(u) >= int32(r.Lo)+r.Delta && int32(u) <= int32(r.Hi)+r.Delta {
			return true
		}
	}
	return false
}

// FoldWidth maps every unit of src through Width into dst.
func FoldWidth(dst, src []uint16) []uint16 {
	for _, u := range src {
		dst = append(dst, Width(u))
	}
	return dst
}

// FoldKana maps every unit of src through Kana into dst.
func FoldKana(dst, src []uint16) []uint16 {
	for _, u := range src {
		dst = append(dst, Kana(u))
	}
	return dst
}

func lookupRange(table []rangeMap, u uint16) (uint16, bool) {
	i := sort.Search(len(table), func(i int) bool { return table[i].Hi >= u })
	if i < len(table) && table[i].Lo <= u {
		return uint16(int32(u) + table[i].Delta), true
	}
	return 0, false
}

func lookupPoint(table []pointMap, u uint16) (uint16, bool) {
	i := sort.Search(len(table), func(i int) bool { return table[i].From >= u })
	if i < len(table) && table[i].From == u {
		return table[i].To, true
	}
	return 0, false
}
