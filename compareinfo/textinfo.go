package compareinfo

import (
	"github.com/cockroachdb/errors"

	"github.com/mhr3/collation/backend"
	"github.com/mhr3/collation/collerr"
	"github.com/mhr3/collation/internal/casing"
	"github.com/mhr3/collation/utf16"
)

// textOps maps case and normalizes text for one mode.
type textOps interface {
	ChangeCase(text []uint16, toUpper bool) ([]uint16, error)
	Normalize(text []uint16, form backend.NormalizationForm) ([]uint16, error)
	IsNormalized(text []uint16, form backend.NormalizationForm) (bool, error)
}

var (
	_ textOps = invariantText{}
	_ textOps = serviceText{}
	_ textOps = (*backend.Hybrid)(nil)
)

// invariantText uses the invariant simple case mapping and treats every
// text as normalized.
type invariantText struct{}

func (invariantText) ChangeCase(text []uint16, toUpper bool) ([]uint16, error) {
	dst := make([]uint16, 0, len(text))
	if toUpper {
		return casing.ToUpper(dst, text), nil
	}
	return casing.ToLower(dst, text), nil
}

func (invariantText) Normalize(text []uint16, _ backend.NormalizationForm) ([]uint16, error) {
	return text, nil
}

func (invariantText) IsNormalized([]uint16, backend.NormalizationForm) (bool, error) {
	return true, nil
}

// serviceText asks an in-process service on behalf of one locale.
type serviceText struct {
	locale string
	svc    backend.Service
}

func (t serviceText) ChangeCase(text []uint16, toUpper bool) ([]uint16, error) {
	return t.svc.ChangeCaseLocaleAware(t.locale, text, toUpper)
}

func (t serviceText) Normalize(text []uint16, form backend.NormalizationForm) ([]uint16, error) {
	return t.svc.NormalizeLocaleAware(text, form)
}

func (t serviceText) IsNormalized(text []uint16, form backend.NormalizationForm) (bool, error) {
	return t.svc.IsNormalizedLocaleAware(text, form)
}

// TextInfo maps the case of text according to the locale of a CompareInfo.
// Linguistic mode applies the full locale case mapping, so the result may
// differ in length from the input ("ß" upper-cases to "SS"). Invariant mode
// keeps lengths.
type TextInfo struct {
	c *CompareInfo
}

// TextInfo returns the case mapper of c.
func (c *CompareInfo) TextInfo() TextInfo {
	return TextInfo{c: c}
}

// ToUpper upper-cases s.
func (t TextInfo) ToUpper(s string) (string, error) {
	out, err := t.ToUpperUnits(utf16.FromString(s))
	return utf16.String(out), err
}

// ToLower lower-cases s.
func (t TextInfo) ToLower(s string) (string, error) {
	out, err := t.ToLowerUnits(utf16.FromString(s))
	return utf16.String(out), err
}

// ToUpperUnits upper-cases UTF-16 text.
func (t TextInfo) ToUpperUnits(text []uint16) ([]uint16, error) {
	return t.changeCase(text, true)
}

// ToLowerUnits lower-cases UTF-16 text.
func (t TextInfo) ToLowerUnits(text []uint16) ([]uint16, error) {
	return t.changeCase(text, false)
}

func (t TextInfo) changeCase(text []uint16, toUpper bool) ([]uint16, error) {
	if text == nil {
		return nil, collerr.NullInput("str")
	}
	if len(text) == 0 {
		return text, nil
	}
	out, err := t.c.text.ChangeCase(text, toUpper)
	if err != nil {
		return nil, errors.Wrapf(err, "changing case for %q", t.c.locale)
	}
	return out, nil
}
