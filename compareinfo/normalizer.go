package compareinfo

import (
	"github.com/mhr3/collation/backend"
	"github.com/mhr3/collation/collerr"
	"github.com/mhr3/collation/span"
	"github.com/mhr3/collation/utf16"
)

// Normalizer converts text between Unicode normalization forms. Invariant
// mode has no normalization data and considers every text normalized.
type Normalizer struct {
	c *CompareInfo
}

// Normalizer returns the normalizer of c.
func (c *CompareInfo) Normalizer() Normalizer {
	return Normalizer{c: c}
}

func checkForm(form backend.NormalizationForm) error {
	if !form.Valid() {
		return collerr.InvalidOptions(backend.NormalizationFormParam, "unknown normalization form %d", int(form))
	}
	return nil
}

// Normalize returns s in form.
func (n Normalizer) Normalize(s string, form backend.NormalizationForm) (string, error) {
	out, err := n.NormalizeUnits(utf16.FromString(s), form)
	if err != nil {
		return "", err
	}
	return utf16.String(out), nil
}

// IsNormalized reports whether s is already in form.
func (n Normalizer) IsNormalized(s string, form backend.NormalizationForm) (bool, error) {
	return n.IsNormalizedUnits(utf16.FromString(s), form)
}

// NormalizeUnits is Normalize over UTF-16 text.
func (n Normalizer) NormalizeUnits(text []uint16, form backend.NormalizationForm) ([]uint16, error) {
	if text == nil {
		return nil, collerr.NullInput(span.ParamSource)
	}
	if err := checkForm(form); err != nil {
		return nil, err
	}
	return n.c.text.Normalize(text, form)
}

// IsNormalizedUnits is IsNormalized over UTF-16 text.
func (n Normalizer) IsNormalizedUnits(text []uint16, form backend.NormalizationForm) (bool, error) {
	if text == nil {
		return false, collerr.NullInput(span.ParamSource)
	}
	if err := checkForm(form); err != nil {
		return false, err
	}
	return n.c.text.IsNormalized(text, form)
}
