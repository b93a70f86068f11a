package backend

import (
	"sync"

	"github.com/cockroachdb/errors"
	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"

	"github.com/mhr3/collation/collerr"
	"github.com/mhr3/collation/options"
	"github.com/mhr3/collation/span"
	"github.com/mhr3/collation/utf16"
)

// NormalizationFormParam is the parameter name reported for unknown forms.
const NormalizationFormParam = "normalizationForm"

// Form returns the x/text normalization form for f.
func (f NormalizationForm) Form() (norm.Form, error) {
	switch f {
	case FormC:
		return norm.NFC, nil
	case FormD:
		return norm.NFD, nil
	case FormKC:
		return norm.NFKC, nil
	case FormKD:
		return norm.NFKD, nil
	}
	return 0, collerr.InvalidOptions(NormalizationFormParam, "unknown normalization form %d", int(f))
}

// TextService is an in-process Service built on golang.org/x/text. One
// Linguistic backend is kept per locale.
type TextService struct {
	mu       sync.Mutex
	backends map[string]*Linguistic
}

var _ Service = (*TextService)(nil)

func NewTextService() *TextService {
	return &TextService{backends: make(map[string]*Linguistic)}
}

func (s *TextService) linguistic(locale string) (*Linguistic, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if l, ok := s.backends[locale]; ok {
		return l, nil
	}
	l, err := NewLinguistic(locale)
	if err != nil {
		return nil, err
	}
	s.backends[locale] = l
	return l, nil
}

func (s *TextService) CompareLocaleAware(locale string, a, b []uint16, o options.CompareOptions) (int, error) {
	l, err := s.linguistic(locale)
	if err != nil {
		return 0, err
	}
	return l.Compare(a, b, o)
}

func (s *TextService) IndexOfLocaleAware(locale string, source, value []uint16, o options.CompareOptions, fromStart bool) (span.Match, error) {
	l, err := s.linguistic(locale)
	if err != nil {
		return span.NotFound, err
	}
	return l.IndexOf(source, value, o, fromStart)
}

func (s *TextService) PrefixLocaleAware(locale string, source, prefix []uint16, o options.CompareOptions) (bool, int, error) {
	l, err := s.linguistic(locale)
	if err != nil {
		return false, 0, err
	}
	return l.IsPrefix(source, prefix, o)
}

func (s *TextService) SuffixLocaleAware(locale string, source, suffix []uint16, o options.CompareOptions) (bool, int, error) {
	l, err := s.linguistic(locale)
	if err != nil {
		return false, 0, err
	}
	return l.IsSuffix(source, suffix, o)
}

func (s *TextService) ChangeCaseLocaleAware(locale string, text []uint16, toUpper bool) ([]uint16, error) {
	tag, err := ParseLocale(locale)
	if err != nil {
		return nil, err
	}
	caser := cases.Lower(tag)
	if toUpper {
		caser = cases.Upper(tag)
	}
	return utf16.FromString(caser.String(utf16.String(text))), nil
}

func (s *TextService) NormalizeLocaleAware(text []uint16, form NormalizationForm) ([]uint16, error) {
	f, err := form.Form()
	if err != nil {
		return nil, err
	}
	if !utf16.Valid(text) {
		return nil, errors.Newf("cannot normalize text with an unpaired surrogate at %d", utf16.IndexInvalid(text))
	}
	return utf16.FromString(f.String(utf16.String(text))), nil
}

func (s *TextService) IsNormalizedLocaleAware(text []uint16, form NormalizationForm) (bool, error) {
	f, err := form.Form()
	if err != nil {
		return false, err
	}
	if !utf16.Valid(text) {
		return false, errors.Newf("cannot check normalization of text with an unpaired surrogate at %d", utf16.IndexInvalid(text))
	}
	return f.IsNormalString(utf16.String(text)), nil
}
