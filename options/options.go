// Package options decodes and validates comparison option bitsets.
//
// The bit layout is a wire contract shared with serialized option values
// and sort keys, so the constants must never move.
package options

import (
	"strconv"
	"strings"

	"github.com/mhr3/collation/collerr"
)

// CompareOptions is an immutable bitset of comparison flags.
type CompareOptions uint32

const (
	None              CompareOptions = 0
	IgnoreCase        CompareOptions = 1 << 0
	IgnoreNonSpace    CompareOptions = 1 << 1
	IgnoreSymbols     CompareOptions = 1 << 2
	IgnoreKanaType    CompareOptions = 1 << 3
	IgnoreWidth       CompareOptions = 1 << 4
	StringSort        CompareOptions = 1 << 20
	OrdinalIgnoreCase CompareOptions = 1 << 28
	Ordinal           CompareOptions = 1 << 30
)

const (
	// Linguistic holds every culture-sensitive flag.
	Linguistic = IgnoreCase | IgnoreNonSpace | IgnoreSymbols | IgnoreKanaType | IgnoreWidth | StringSort

	// searchMask holds the flags accepted by searches and prefix/suffix checks.
	searchMask = IgnoreCase | IgnoreNonSpace | IgnoreSymbols | IgnoreKanaType | IgnoreWidth

	// validMask holds every flag with a defined meaning.
	validMask = Linguistic | Ordinal | OrdinalIgnoreCase
)

// DefaultParam is the parameter name reported for invalid options.
const DefaultParam = "options"

var flagNames = []struct {
	flag CompareOptions
	name string
}{
	{IgnoreCase, "IgnoreCase"},
	{IgnoreNonSpace, "IgnoreNonSpace"},
	{IgnoreSymbols, "IgnoreSymbols"},
	{IgnoreKanaType, "IgnoreKanaType"},
	{IgnoreWidth, "IgnoreWidth"},
	{StringSort, "StringSort"},
	{OrdinalIgnoreCase, "OrdinalIgnoreCase"},
	{Ordinal, "Ordinal"},
}

// Has reports whether every bit of flag is set.
func (o CompareOptions) Has(flag CompareOptions) bool {
	return o&flag == flag
}

// IsOrdinal reports whether o selects one of the two ordinal policies.
func (o CompareOptions) IsOrdinal() bool {
	return o == Ordinal || o == OrdinalIgnoreCase
}

// IsLinguistic reports whether o holds only culture-sensitive flags. None
// is linguistic.
func (o CompareOptions) IsLinguistic() bool {
	return o&^Linguistic == 0
}

// String renders o as a |-joined flag list, e.g. "IgnoreCase|IgnoreWidth".
func (o CompareOptions) String() string {
	if o == None {
		return "None"
	}
	var parts []string
	rest := o
	for _, f := range flagNames {
		if rest&f.flag != 0 {
			parts = append(parts, f.name)
			rest &^= f.flag
		}
	}
	if rest != 0 {
		parts = append(parts, "0x"+strconv.FormatUint(uint64(rest), 16))
	}
	return strings.Join(parts, "|")
}

// Parse is the inverse of String. Names are matched case-insensitively and
// may be separated by '|' or ','.
func Parse(s string) (CompareOptions, error) {
	s = strings.TrimSpace(s)
	if s == "" || strings.EqualFold(s, "None") {
		return None, nil
	}
	var o CompareOptions
	for _, part := range strings.FieldsFunc(s, func(r rune) bool { return r == '|' || r == ',' }) {
		part = strings.TrimSpace(part)
		found := false
		for _, f := range flagNames {
			if strings.EqualFold(part, f.name) {
				o |= f.flag
				found = true
				break
			}
		}
		if !found && !strings.EqualFold(part, "None") {
			return None, collerr.InvalidOptions(DefaultParam, "unknown option %q", part)
		}
	}
	if err := Validate(o, DefaultParam); err != nil {
		return None, err
	}
	return o, nil
}

// Validate rejects unknown bits and ordinal flags combined with anything else.
func Validate(o CompareOptions, param string) error {
	if o&^validMask != 0 {
		return collerr.InvalidOptions(param, "unknown option bits 0x%x", uint32(o&^validMask))
	}
	if o&(Ordinal|OrdinalIgnoreCase) != 0 && !o.IsOrdinal() {
		return collerr.InvalidOptions(param, "%s cannot be combined with other options", o)
	}
	return nil
}

// ValidateForSearch is Validate plus the rule that StringSort only applies
// to comparisons and sort keys.
func ValidateForSearch(o CompareOptions, param string) error {
	if o.IsOrdinal() {
		return nil
	}
	if o&^searchMask != 0 {
		if err := Validate(o, param); err != nil {
			return err
		}
		return collerr.InvalidOptions(param, "StringSort is not valid for searches")
	}
	return nil
}

// Decode validates raw wire bits and returns them as CompareOptions.
func Decode(raw uint32) (CompareOptions, error) {
	o := CompareOptions(raw)
	if err := Validate(o, DefaultParam); err != nil {
		return None, err
	}
	return o, nil
}
