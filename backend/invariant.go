package backend

import (
	"github.com/mhr3/collation/internal/casing"
	"github.com/mhr3/collation/options"
	"github.com/mhr3/collation/ordinal"
	"github.com/mhr3/collation/sortkey"
	"github.com/mhr3/collation/span"
)

// Invariant is the reduced backend used when no collation data is
// available. It compares by code unit; IgnoreCase selects the invariant
// simple case mapping and every other linguistic flag is accepted and
// ignored. Zero-width characters carry weight and canonically equivalent
// sequences are not unified.
type Invariant struct{}

var _ Backend = Invariant{}

func (Invariant) Name() string { return "invariant" }

func (Invariant) Compare(a, b []uint16, o options.CompareOptions) (int, error) {
	if o&options.IgnoreCase != 0 {
		return ordinal.CompareIgnoreCase(a, b), nil
	}
	return ordinal.Compare(a, b), nil
}

func (Invariant) IndexOf(source, value []uint16, o options.CompareOptions, fromStart bool) (span.Match, error) {
	return ordinal.IndexOf(source, value, o&options.IgnoreCase != 0, fromStart), nil
}

func (Invariant) IsPrefix(source, prefix []uint16, o options.CompareOptions) (bool, int, error) {
	ok, n := ordinal.HasPrefix(source, prefix, o&options.IgnoreCase != 0)
	return ok, n, nil
}

func (Invariant) IsSuffix(source, suffix []uint16, o options.CompareOptions) (bool, int, error) {
	ok, n := ordinal.HasSuffix(source, suffix, o&options.IgnoreCase != 0)
	return ok, n, nil
}

// SortKey writes the text as big-endian code units, upper-cased first when
// IgnoreCase is set.
func (Invariant) SortKey(text []uint16, o options.CompareOptions) ([]byte, error) {
	n, err := sortkey.UnitsLength(len(text))
	if err != nil {
		return nil, err
	}
	if o&options.IgnoreCase != 0 {
		text = casing.ToUpper(make([]uint16, 0, len(text)), text)
	}
	return sortkey.AppendUnits(make([]byte, 0, n), text), nil
}

func (Invariant) SortKeyLength(text []uint16, _ options.CompareOptions) (int, error) {
	return sortkey.UnitsLength(len(text))
}

// IsSortable reports whether text is non-empty; any code unit sequence has
// an invariant key.
func (Invariant) IsSortable(text []uint16) bool {
	return len(text) > 0
}
