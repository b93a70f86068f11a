package utf16

import (
	"slices"
	"strings"
	"testing"
	stdlib "unicode/utf16"

	"github.com/stretchr/testify/assert"
)

type unitRange struct {
	Low  uint16
	High uint16
}

func one(u uint16) unitRange {
	return unitRange{u, u}
}

func genExamples(current []uint16, ranges []unitRange) [][]uint16 {
	if len(ranges) == 0 {
		return [][]uint16{slices.Clone(current)}
	}
	r := ranges[0]
	var all [][]uint16

	elements := []uint16{r.Low, r.High}
	mid := r.Low + (r.High-r.Low)/2
	if mid != r.Low && mid != r.High {
		elements = append(elements, mid)
	}

	for _, x := range elements {
		all = append(all, genExamples(append(current, x), ranges[1:])...)
		if x == r.High {
			break
		}
	}
	return all
}

// stdlibValid reports validity by round-tripping through the standard
// library, which replaces unpaired surrogates with U+FFFD.
func stdlibValid(u []uint16) bool {
	return slices.Equal(stdlib.Encode(stdlib.Decode(u)), u)
}

func TestValid(t *testing.T) {
	examples := [][]uint16{
		{},
		FromString("a"),
		FromString("abc"),
		FromString("Ж"),
		FromString("брэд-ЛГТМ"),
		FromString("☺☻☹"),
		FromString("\U0001F600"),
		FromString("a\U0001F600b\U0010FFFF"),
		FromString(strings.Repeat("a", 61) + "\U0001F601"),
		{0xD800},
		{0xDC00},
		{'a', 0xD800},
		{0xDC00, 0xD800},
		{0xD800, 'a', 0xDC00},
		{0xD83D, 0xDE00, 0xDE00},
	}

	ascii := unitRange{0, 0x7F}
	high := unitRange{0xD800, 0xDBFF}
	low := unitRange{0xDC00, 0xDFFF}
	bmp := unitRange{0xE000, 0xFFFF}

	rangesToTest := [][]unitRange{
		{one(0x20), ascii, ascii, ascii},
		{high},
		{high, low},
		{high, high},
		{high, ascii},
		{low},
		{low, high},
		{low, high, low},
		{ascii, high, low, ascii},
		{bmp, high, low},
		{high, low, low},
		{one(0xFFFD), ascii},
	}
	for _, r := range rangesToTest {
		examples = append(examples, genExamples(nil, r)...)
	}

	for _, tt := range examples {
		t.Run(String(tt), func(t *testing.T) {
			assert.Equal(t, stdlibValid(tt), Valid(tt), "units %x", tt)
		})
	}
}

func TestIndexInvalid(t *testing.T) {
	assert.Equal(t, -1, IndexInvalid(nil))
	assert.Equal(t, -1, IndexInvalid(FromString("hello \U0001F600")))
	assert.Equal(t, 3, IndexInvalid([]uint16{'a', 'b', 'c', 0xDC00}))
	assert.Equal(t, 1, IndexInvalid([]uint16{'a', 0xD800, 'c'}))
	assert.Equal(t, 4, IndexInvalid([]uint16{0xD83D, 0xDE00, 0x3042, 'x', 0xD800}))
}
