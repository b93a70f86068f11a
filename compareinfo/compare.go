package compareinfo

import (
	"github.com/mhr3/collation/options"
	"github.com/mhr3/collation/ordinal"
	"github.com/mhr3/collation/span"
	"github.com/mhr3/collation/utf16"
)

// Parameter names of the compare call shapes.
const (
	paramOffset1 = "offset1"
	paramLength1 = "length1"
	paramOffset2 = "offset2"
	paramLength2 = "length2"
)

// Compare compares a and b with options None.
func (c *CompareInfo) Compare(a, b string) (int, error) {
	return c.CompareOptions(a, b, options.None)
}

// CompareOptions compares a and b under o.
func (c *CompareInfo) CompareOptions(a, b string, o options.CompareOptions) (int, error) {
	return c.compare(utf16.FromString(a), utf16.FromString(b), o)
}

// CompareUnits compares two UTF-16 texts. A nil text sorts before any
// other text, including an empty one, and two nil texts are equal.
func (c *CompareInfo) CompareUnits(a, b []uint16, o options.CompareOptions) (int, error) {
	return c.compare(a, b, o)
}

// CompareFrom compares s1[offset1:] with s2[offset2:]. A nil text only
// accepts offset 0 and keeps its null ordering.
func (c *CompareInfo) CompareFrom(s1 []uint16, offset1 int, s2 []uint16, offset2 int, o options.CompareOptions) (int, error) {
	w1, err := span.Tail(s1, offset1, paramOffset1)
	if err != nil {
		return 0, err
	}
	w2, err := span.Tail(s2, offset2, paramOffset2)
	if err != nil {
		return 0, err
	}
	return c.compare(w1.Text, w2.Text, o)
}

// CompareRange compares s1[offset1:offset1+length1] with
// s2[offset2:offset2+length2].
func (c *CompareInfo) CompareRange(s1 []uint16, offset1, length1 int, s2 []uint16, offset2, length2 int, o options.CompareOptions) (int, error) {
	w1, err := span.Sub(s1, offset1, length1, paramOffset1, paramLength1)
	if err != nil {
		return 0, err
	}
	w2, err := span.Sub(s2, offset2, length2, paramOffset2, paramLength2)
	if err != nil {
		return 0, err
	}
	return c.compare(w1.Text, w2.Text, o)
}

func (c *CompareInfo) compare(a, b []uint16, o options.CompareOptions) (int, error) {
	switch {
	case a == nil && b == nil:
		return 0, nil
	case a == nil:
		return -1, nil
	case b == nil:
		return 1, nil
	}

	if err := options.Validate(o, options.DefaultParam); err != nil {
		return 0, err
	}
	switch o {
	case options.Ordinal:
		return ordinal.Compare(a, b), nil
	case options.OrdinalIgnoreCase:
		return ordinal.CompareIgnoreCase(a, b), nil
	}

	c.metrics.backendCall(opCompare)
	return c.backend.Compare(a, b, o)
}
