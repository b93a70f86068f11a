// Package backend holds the collation strategies behind the engine.
//
// A Backend only ever sees validated, non-ordinal options and resolved
// windows; ordinal policies are handled before dispatch. Each
// implementation is a leaf with no shared mutable state and is safe for
// concurrent use.
package backend

import (
	"strconv"

	"github.com/mhr3/collation/options"
	"github.com/mhr3/collation/span"
)

// Backend performs culture-sensitive comparison, search and sort-key
// generation. Indices and match lengths are relative to the slices passed
// in.
type Backend interface {
	Compare(a, b []uint16, o options.CompareOptions) (int, error)
	// IndexOf finds value in source. The match length is the number of
	// source units consumed, which may differ from len(value).
	IndexOf(source, value []uint16, o options.CompareOptions, fromStart bool) (span.Match, error)
	IsPrefix(source, prefix []uint16, o options.CompareOptions) (bool, int, error)
	IsSuffix(source, suffix []uint16, o options.CompareOptions) (bool, int, error)
	SortKey(text []uint16, o options.CompareOptions) ([]byte, error)
	SortKeyLength(text []uint16, o options.CompareOptions) (int, error)
	IsSortable(text []uint16) bool
	Name() string
}

// NormalizationForm selects a Unicode normalization form. The values match
// the host platform's enum.
type NormalizationForm int

const (
	FormC  NormalizationForm = 1
	FormD  NormalizationForm = 2
	FormKC NormalizationForm = 5
	FormKD NormalizationForm = 6
)

func (f NormalizationForm) String() string {
	switch f {
	case FormC:
		return "FormC"
	case FormD:
		return "FormD"
	case FormKC:
		return "FormKC"
	case FormKD:
		return "FormKD"
	}
	return "NormalizationForm(" + strconv.Itoa(int(f)) + ")"
}

// Valid reports whether f is one of the defined forms.
func (f NormalizationForm) Valid() bool {
	switch f {
	case FormC, FormD, FormKC, FormKD:
		return true
	}
	return false
}
