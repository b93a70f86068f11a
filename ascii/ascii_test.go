package ascii

import (
	"fmt"
	"math/rand"
	"strings"
	"testing"
	"unicode"
	"unicode/utf16"

	segAscii "github.com/segmentio/asm/ascii"
)

func u16(s string) []uint16 {
	return utf16.Encode([]rune(s))
}

func makeASCII(n int) []uint16 {
	data := make([]uint16, n)
	for i := range data {
		data[i] = uint16(rand.Uint32() & 0x7f)
	}
	return data
}

// latin1 returns the byte string whose bytes equal the units of s, or false
// when a unit does not fit in a byte.
func latin1(s []uint16) (string, bool) {
	b := make([]byte, len(s))
	for i, u := range s {
		if u > 0xFF {
			return "", false
		}
		b[i] = byte(u)
	}
	return string(b), true
}

var validTests = []struct {
	in  string
	exp bool
}{
	{"", true},
	{"a", true},
	{"abc", true},
	{"Ж", false},
	{"ЖЖ", false},
	{"брэд-ЛГТМ", false},
	{"☺☻☹", false},
	{"a\uFFFDb", false},
	{"\U0010FFFF", false},
	{"\u0080", false},
	{"\u007f", true},
	{"hellowoÿ", false},
	{"hellowor", true},
}

func TestValid(t *testing.T) {
	for _, vt := range validTests {
		if Valid(u16(vt.in)) != vt.exp {
			t.Errorf("Valid(%q) = %v; want %v", vt.in, !vt.exp, vt.exp)
		}
		if ValidString(vt.in) != vt.exp {
			t.Errorf("ValidString(%q) = %v; want %v", vt.in, !vt.exp, vt.exp)
		}
	}

	for _, vt := range validTests {
		pt := "0123456789ab" + vt.in
		if Valid(u16(pt)) != vt.exp {
			t.Errorf("Valid(%q) = %v; want %v", pt, !vt.exp, vt.exp)
		}
	}
}

func TestValidMatchesSegmentio(t *testing.T) {
	for i := 0; i < 2000; i++ {
		data := makeASCII(rand.Intn(64))
		if len(data) > 0 && rand.Intn(2) == 0 {
			data[rand.Intn(len(data))] |= 0x80
		}
		s, ok := latin1(data)
		if !ok {
			t.Fatalf("test data out of byte range")
		}
		if got, want := Valid(data), segAscii.ValidString(s); got != want {
			t.Errorf("Valid(%q) = %v; segmentio says %v", s, got, want)
		}
	}
}

func TestIndexMask(t *testing.T) {
	for i := 4; i < 640; i++ {
		data := makeASCII(i)
		if !Valid(data) {
			t.Errorf("Valid([%d]) = false; want true", len(data))
		}
		if res := IndexMask(data, 0xFF80); res != -1 {
			t.Errorf("IndexMask([%d]) = %d; want %d", len(data), res, -1)
		}

		idx := rand.Intn(i)
		data[idx] |= 0x0100
		if Valid(data) {
			t.Errorf("Valid([%d]) = true; want false", len(data))
		}
		if res := IndexMask(data, 0xFF80); res != idx {
			t.Errorf("IndexMask([%d]) = %d; want %d", len(data), res, idx)
		}
		if res := IndexNonASCII(data); res != idx {
			t.Errorf("IndexNonASCII([%d]) = %d; want %d", len(data), res, idx)
		}
		if res := LastIndexMask(data, 0xFF80); res != idx {
			t.Errorf("LastIndexMask([%d]) = %d; want %d", len(data), res, idx)
		}
	}
}

func TestIndexMaskSurrogates(t *testing.T) {
	s := u16("abcdefg\U0001F600h")
	if got := IndexMask(s, 0x8000); got != 7 {
		t.Errorf("IndexMask(surrogates) = %d; want 7", got)
	}
}

func TestIndexNonPrintable(t *testing.T) {
	tests := []struct {
		in  string
		exp int
	}{
		{"", -1},
		{"hello world", -1},
		{" !\"#$%&'()*+,-./0123456789:;<=>?@AZ[\\]^_`az{|}~", -1},
		{"\thello", 0},
		{"hello\n", 5},
		{"abcdefgh\x7f", 8},
		{"abcdefgh\x00", 8},
		{"abcédef", 3},
		{"abcdefghijklm\u0301", 13},
		{"\r\n", 0},
	}
	for _, tt := range tests {
		if got := IndexNonPrintable(u16(tt.in)); got != tt.exp {
			t.Errorf("IndexNonPrintable(%q) = %d; want %d", tt.in, got, tt.exp)
		}
	}
}

func TestIndexNonPrintableRandom(t *testing.T) {
	for i := 1; i < 300; i++ {
		data := make([]uint16, i)
		for k := range data {
			data[k] = uint16(0x20 + rand.Intn(0x5F))
		}
		if got := IndexNonPrintable(data); got != -1 {
			t.Fatalf("IndexNonPrintable(printable[%d]) = %d; want -1", i, got)
		}
		idx := rand.Intn(i)
		bad := []uint16{0x00, 0x1F, 0x7F, 0x80, 0x3000, 0xD800}[rand.Intn(6)]
		data[idx] = bad
		if got := IndexNonPrintable(data); got != idx {
			t.Errorf("IndexNonPrintable([%d] with %#x at %d) = %d", i, bad, idx, got)
		}
	}
}

func TestEqualFold(t *testing.T) {
	equalFoldTests := []struct {
		s, t string
		out  bool
	}{
		{"", "", true},
		{"abc", "abc", true},
		{"ABcd", "ABcd", true},
		{"123abc", "123ABC", true},
		{"abc", "xyz", false},
		{"abc", "XYZ", false},
		{"abcdefghijk", "abcdefghijX", false},
		{"1", "2", false},
		{"utf-8", "US-ASCII", false},
		{"hello", "Hello", true},
		{"oh hello there!!", "oh hello there!!", true},
		{"oh hello there!!", "oh HELLO there!!", true},
		{"oh hello there!!", "oh HELLO there !", false},
		{"oh hello there!! friend!", "oh HELLO there!! FRIEND!", true},
		// non-ASCII units only match exactly
		{"straße", "STRAßE", true},
		{"straße", "STRASSE", false},
		{"éa", "Éa", false},
		{"ĳklmnopq", "Ĳklmnopq", false},
		{"@[`{", "`{@[", false},
	}

	for _, tt := range equalFoldTests {
		if out := EqualFold(u16(tt.s), u16(tt.t)); out != tt.out {
			t.Errorf("EqualFold(%#q, %#q) = %v, want %v", tt.s, tt.t, out, tt.out)
		}
		if out := EqualFold(u16(tt.t), u16(tt.s)); out != tt.out {
			t.Errorf("EqualFold(%#q, %#q) = %v, want %v", tt.t, tt.s, out, tt.out)
		}
	}
}

func TestEqualFoldMatchesSegmentio(t *testing.T) {
	for i := 0; i < 2000; i++ {
		n := rand.Intn(40)
		a := makeASCII(n)
		b := make([]uint16, n)
		copy(b, a)
		for k := 0; k < 3 && n > 0; k++ {
			idx := rand.Intn(n)
			r := rune(b[idx])
			switch {
			case unicode.IsUpper(r):
				b[idx] = uint16(unicode.ToLower(r))
			case unicode.IsLower(r):
				b[idx] = uint16(unicode.ToUpper(r))
			default:
				b[idx] = uint16(rand.Intn(0x80))
			}
		}
		sa, _ := latin1(a)
		sb, _ := latin1(b)
		if got, want := EqualFold(a, b), segAscii.EqualFoldString(sa, sb); got != want {
			t.Errorf("EqualFold(%q, %q) = %v; segmentio says %v", sa, sb, got, want)
		}
	}
}

func TestHasPrefixSuffixFold(t *testing.T) {
	tests := []struct {
		s, affix       string
		prefix, suffix bool
	}{
		{"", "", true, true},
		{"abc", "", true, true},
		{"", "a", false, false},
		{"abc", "abc", true, true},
		{"ABC", "abc", true, true},
		{"Hello World", "hello", true, false},
		{"Hello World", "WORLD", false, true},
		{"HeLLo", "hElLo", true, true},
		{"abc", "abcd", false, false},
		{"abcdefghijklmnop", "ABCDEFGH", true, false},
		{"abcdefghijklmnop", "IJKLMNOP", false, true},
		{"0123456789", "0123", true, false},
		{"0123456789", "01onal", false, false},
	}

	for _, tt := range tests {
		if got := HasPrefixFold(u16(tt.s), u16(tt.affix)); got != tt.prefix {
			t.Errorf("HasPrefixFold(%q, %q) = %v, want %v", tt.s, tt.affix, got, tt.prefix)
		}
		if got := HasSuffixFold(u16(tt.s), u16(tt.affix)); got != tt.suffix {
			t.Errorf("HasSuffixFold(%q, %q) = %v, want %v", tt.s, tt.affix, got, tt.suffix)
		}
	}
}

func TestIndexFold(t *testing.T) {
	tests := []struct {
		str, substr string
		first, last int
	}{
		{"abc", "bc", 1, 1},
		{"abc", "bcd", -1, -1},
		{"abc", "", 0, 3},
		{"", "a", -1, -1},
		{"0123abcd", "B", 5, 5},
		{"xxxxxx", "01", -1, -1},
		{"01xxxx", "01", 0, 0},
		{"xx01xx", "01", 2, 2},
		{"xxxx01", "01", 4, 4},
		{"xx012xx", "012", 2, 2},
		{"xx0123456789ABCDEFxx", "0123456789abcdef", 2, 2},
		{"xx01x", "012", -1, -1},
		{"cbabababdbaba", "AB", 2, 10},
		{"Hello", "L", 2, 3},
		{"000", "0\x00", -1, -1},
		{"0000", "\x00\x00\x00", -1, -1},
		{"xyyyyyyyyyyyyyyyyxxxxxxxxxxxxxxx", "YYY", 1, 14},
		{"Ünïcödé ünïcödé", "ÜNÏ", -1, -1},
		{"Ünïcödé ünïcödé", "ünï", 8, 8},
		{strings.Repeat("x", 100) + "needle", "NEEDLE", 100, 100},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%.20s/%s", tt.str, tt.substr), func(t *testing.T) {
			if got := IndexFold(u16(tt.str), u16(tt.substr)); got != tt.first {
				t.Errorf("IndexFold(%q, %q) = %d, want %d", tt.str, tt.substr, got, tt.first)
			}
			if got := LastIndexFold(u16(tt.str), u16(tt.substr)); got != tt.last {
				t.Errorf("LastIndexFold(%q, %q) = %d, want %d", tt.str, tt.substr, got, tt.last)
			}
		})
	}
}

func TestNeedleExact(t *testing.T) {
	tests := []struct {
		hay, needle string
		first, last int
	}{
		{"Hello", "l", 2, 3},
		{"Hello", "L", -1, -1},
		{"abcabc", "abc", 0, 3},
		{"aaaaab", "aab", 3, 3},
		{"Exhibit \u00C0", "\u00C0", 8, 8},
		{"Exhibit \u00C0", "A\u0300", -1, -1},
	}

	for _, tt := range tests {
		n := MakeNeedle(u16(tt.needle), true)
		if n.Len() != len(u16(tt.needle)) {
			t.Errorf("Needle(%q).Len() = %d", tt.needle, n.Len())
		}
		if got := n.Index(u16(tt.hay)); got != tt.first {
			t.Errorf("Needle(%q).Index(%q) = %d, want %d", tt.needle, tt.hay, got, tt.first)
		}
		if got := n.LastIndex(u16(tt.hay)); got != tt.last {
			t.Errorf("Needle(%q).LastIndex(%q) = %d, want %d", tt.needle, tt.hay, got, tt.last)
		}
	}
}

func TestSelectRarePair(t *testing.T) {
	tests := []struct {
		pattern       string
		caseSensitive bool
		rare1         uint16
		off1          int
		rare2         uint16
		off2          int
	}{
		{"a", false, 'a', 0, 'a', 0},
		{"A", true, 'A', 0, 'A', 0},
		{"aaaa", false, 'a', 0, 'a', 3},
		{"quartz", false, 'q', 0, 'z', 5},
		{"jazz", true, 'j', 0, 'z', 2},
		{"abécd", false, 'b', 1, 0xe9, 2},
	}

	for _, tt := range tests {
		rare1, off1, rare2, off2 := selectRarePair(u16(tt.pattern), tt.caseSensitive)
		if rare1 != tt.rare1 || off1 != tt.off1 || rare2 != tt.rare2 || off2 != tt.off2 {
			t.Errorf("selectRarePair(%q) = (%q,%d,%q,%d), want (%q,%d,%q,%d)",
				tt.pattern, rare1, off1, rare2, off2, tt.rare1, tt.off1, tt.rare2, tt.off2)
		}
	}
}

func TestCaseMapping(t *testing.T) {
	for u := uint16(0); u < 0x200; u++ {
		wantUpper, wantLower := u, u
		if u >= 'a' && u <= 'z' {
			wantUpper = u - 0x20
		}
		if u >= 'A' && u <= 'Z' {
			wantLower = u + 0x20
		}
		if got := ToUpper(u); got != wantUpper {
			t.Errorf("ToUpper(%#x) = %#x, want %#x", u, got, wantUpper)
		}
		if got := ToLower(u); got != wantLower {
			t.Errorf("ToLower(%#x) = %#x, want %#x", u, got, wantLower)
		}
	}
}

func FuzzEqualFold(f *testing.F) {
	f.Add("hello", "HELLO")
	f.Add("straße", "STRASSE")
	f.Fuzz(func(t *testing.T, a, b string) {
		ua, ub := u16(a), u16(b)
		want := len(ua) == len(ub)
		for i := 0; want && i < len(ua); i++ {
			want = toUpper(ua[i]) == toUpper(ub[i])
		}
		if got := EqualFold(ua, ub); got != want {
			t.Errorf("EqualFold(%q, %q) = %v, want %v", a, b, got, want)
		}
	})
}

func BenchmarkValid(b *testing.B) {
	for _, n := range []int{1, 7, 15, 44, 100, 1000} {
		data := makeASCII(n)
		s, _ := latin1(data)

		b.Run(fmt.Sprintf("units-%d", n), func(b *testing.B) {
			b.SetBytes(int64(2 * n))
			for i := 0; i < b.N; i++ {
				Valid(data)
			}
		})

		b.Run(fmt.Sprintf("segment-%d", n), func(b *testing.B) {
			b.SetBytes(int64(n))
			for i := 0; i < b.N; i++ {
				segAscii.ValidString(s)
			}
		})
	}
}

func BenchmarkEqualFold(b *testing.B) {
	for _, n := range []int{1, 7, 15, 44, 100, 1000} {
		a := makeASCII(n)
		c := make([]uint16, n)
		for i, u := range a {
			c[i] = toLower(u)
		}

		b.Run(fmt.Sprintf("units-%d", n), func(b *testing.B) {
			b.SetBytes(int64(2 * n))
			for i := 0; i < b.N; i++ {
				EqualFold(a, c)
			}
		})
	}
}
