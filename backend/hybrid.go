package backend

import (
	"github.com/cockroachdb/errors"

	"github.com/mhr3/collation/collerr"
	"github.com/mhr3/collation/internal/foldtable"
	"github.com/mhr3/collation/options"
	"github.com/mhr3/collation/span"
	"github.com/mhr3/collation/utf16"
)

// Hybrid folds width and kana locally with static tables and delegates the
// remaining linguistic work to a Service.
//
// The service expresses IgnoreNonSpace only as a base-letter sensitivity
// that also drops width and kana differences, so IgnoreNonSpace is
// accepted only together with both IgnoreWidth and IgnoreKanaType. Sort
// keys are not available.
type Hybrid struct {
	locale string
	svc    Service
}

var _ Backend = (*Hybrid)(nil)

// NewHybrid returns a backend delegating to svc for locale.
func NewHybrid(locale string, svc Service) *Hybrid {
	return &Hybrid{locale: locale, svc: svc}
}

func (h *Hybrid) Name() string { return "hybrid" }

const localFolds = options.IgnoreWidth | options.IgnoreKanaType

func checkHybrid(o options.CompareOptions) error {
	if o&options.IgnoreNonSpace != 0 && o&localFolds != localFolds {
		return collerr.Unsupported(options.DefaultParam,
			"%s requires IgnoreWidth and IgnoreKanaType in hybrid mode", o)
	}
	return nil
}

// fold applies the local width and kana folds. Folding keeps code unit
// positions, so service results map straight back onto the input.
func fold(text []uint16, o options.CompareOptions) []uint16 {
	if o&localFolds == 0 || len(text) == 0 {
		return text
	}
	out := text
	if o&options.IgnoreWidth != 0 {
		out = foldtable.FoldWidth(make([]uint16, 0, len(text)), out)
	}
	if o&options.IgnoreKanaType != 0 {
		out = foldtable.FoldKana(make([]uint16, 0, len(text)), out)
	}
	return out
}

func (h *Hybrid) Compare(a, b []uint16, o options.CompareOptions) (int, error) {
	if err := checkHybrid(o); err != nil {
		return 0, err
	}
	r, err := h.svc.CompareLocaleAware(h.locale, fold(a, o), fold(b, o), o&^localFolds)
	if err != nil {
		return 0, errors.Wrapf(err, "comparing in locale %q", h.locale)
	}
	return sign(r), nil
}

func (h *Hybrid) IndexOf(source, value []uint16, o options.CompareOptions, fromStart bool) (span.Match, error) {
	if err := checkHybrid(o); err != nil {
		return span.NotFound, err
	}
	m, err := h.svc.IndexOfLocaleAware(h.locale, fold(source, o), fold(value, o), o&^localFolds, fromStart)
	if err != nil {
		return span.NotFound, errors.Wrapf(err, "searching in locale %q", h.locale)
	}
	if !m.Found() {
		return span.NotFound, nil
	}
	if m.Index > len(source) || m.Length < 0 || m.Index+m.Length > len(source) {
		return span.NotFound, errors.AssertionFailedf("service match %+v outside source of length %d", m, len(source))
	}
	return m, nil
}

func (h *Hybrid) IsPrefix(source, prefix []uint16, o options.CompareOptions) (bool, int, error) {
	if err := checkHybrid(o); err != nil {
		return false, 0, err
	}
	ok, n, err := h.svc.PrefixLocaleAware(h.locale, fold(source, o), fold(prefix, o), o&^localFolds)
	if err != nil {
		return false, 0, errors.Wrapf(err, "prefix check in locale %q", h.locale)
	}
	if !ok {
		return false, 0, nil
	}
	return true, n, nil
}

func (h *Hybrid) IsSuffix(source, suffix []uint16, o options.CompareOptions) (bool, int, error) {
	if err := checkHybrid(o); err != nil {
		return false, 0, err
	}
	ok, n, err := h.svc.SuffixLocaleAware(h.locale, fold(source, o), fold(suffix, o), o&^localFolds)
	if err != nil {
		return false, 0, errors.Wrapf(err, "suffix check in locale %q", h.locale)
	}
	if !ok {
		return false, 0, nil
	}
	return true, n, nil
}

func (h *Hybrid) SortKey([]uint16, options.CompareOptions) ([]byte, error) {
	return nil, collerr.Unsupported(options.DefaultParam, "sort keys are not available in hybrid mode")
}

func (h *Hybrid) SortKeyLength([]uint16, options.CompareOptions) (int, error) {
	return 0, collerr.Unsupported(options.DefaultParam, "sort keys are not available in hybrid mode")
}

func (h *Hybrid) IsSortable(text []uint16) bool {
	return len(text) > 0 && utf16.Valid(text)
}

// ChangeCase delegates locale-aware case mapping to the service.
func (h *Hybrid) ChangeCase(text []uint16, toUpper bool) ([]uint16, error) {
	out, err := h.svc.ChangeCaseLocaleAware(h.locale, text, toUpper)
	if err != nil {
		return nil, errors.Wrapf(err, "changing case in locale %q", h.locale)
	}
	return out, nil
}

// Normalize delegates normalization to the service.
func (h *Hybrid) Normalize(text []uint16, form NormalizationForm) ([]uint16, error) {
	out, err := h.svc.NormalizeLocaleAware(text, form)
	if err != nil {
		return nil, errors.Wrapf(err, "normalizing to %s", form)
	}
	return out, nil
}

// IsNormalized delegates the normalization check to the service.
func (h *Hybrid) IsNormalized(text []uint16, form NormalizationForm) (bool, error) {
	ok, err := h.svc.IsNormalizedLocaleAware(text, form)
	if err != nil {
		return false, errors.Wrapf(err, "checking %s", form)
	}
	return ok, nil
}

func sign(r int) int {
	switch {
	case r < 0:
		return -1
	case r > 0:
		return 1
	}
	return 0
}
