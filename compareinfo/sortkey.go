package compareinfo

import (
	"github.com/mhr3/collation/collerr"
	"github.com/mhr3/collation/options"
	"github.com/mhr3/collation/sortkey"
	"github.com/mhr3/collation/span"
	"github.com/mhr3/collation/utf16"
)

// checkSortKeyOptions accepts the linguistic flags only; ordinal policies
// have no sort keys.
func checkSortKeyOptions(o options.CompareOptions) error {
	if err := options.Validate(o, options.DefaultParam); err != nil {
		return err
	}
	if !o.IsLinguistic() {
		return collerr.InvalidOptions(options.DefaultParam, "%s has no sort keys", o)
	}
	return nil
}

// GetSortKey returns the sort key of s under o.
func (c *CompareInfo) GetSortKey(s string, o options.CompareOptions) (sortkey.SortKey, error) {
	key, err := c.sortKey(utf16.FromString(s), o)
	if err != nil {
		return sortkey.SortKey{}, err
	}
	return sortkey.New(s, o, c.locale, key), nil
}

// GetSortKeyLength returns the number of bytes GetSortKeyInto writes for
// text.
func (c *CompareInfo) GetSortKeyLength(text []uint16, o options.CompareOptions) (int, error) {
	if text == nil {
		return 0, collerr.NullInput(span.ParamSource)
	}
	if err := checkSortKeyOptions(o); err != nil {
		return 0, err
	}
	c.metrics.backendCall(opSortKey)
	return c.backend.SortKeyLength(text, o)
}

// GetSortKeyInto writes the sort key of text into dst and returns its
// length. dst is left untouched when it is too small, and bytes past the
// key are never written.
func (c *CompareInfo) GetSortKeyInto(dst []byte, text []uint16, o options.CompareOptions) (int, error) {
	if text == nil {
		return 0, collerr.NullInput(span.ParamSource)
	}
	key, err := c.sortKey(text, o)
	if err != nil {
		return 0, err
	}
	return sortkey.Write(dst, key)
}

func (c *CompareInfo) sortKey(text []uint16, o options.CompareOptions) ([]byte, error) {
	if err := checkSortKeyOptions(o); err != nil {
		return nil, err
	}
	c.metrics.backendCall(opSortKey)
	return c.backend.SortKey(text, o)
}

// IsSortable reports whether s has a meaningful sort key: it is non-empty
// and, outside Invariant mode, well-formed text without noncharacters.
func (c *CompareInfo) IsSortable(s string) bool {
	return c.backend.IsSortable(utf16.FromString(s))
}

// IsSortableUnits is IsSortable over UTF-16 text. Nil text is not sortable.
func (c *CompareInfo) IsSortableUnits(text []uint16) bool {
	return c.backend.IsSortable(text)
}

// IsSortableRune reports whether the single character r is sortable.
// Surrogate code points are never sortable.
func (c *CompareInfo) IsSortableRune(r rune) bool {
	if utf16.RuneLen(r) < 0 {
		return false
	}
	return c.backend.IsSortable(utf16.AppendRune(nil, r))
}
