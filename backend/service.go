package backend

import (
	"github.com/mhr3/collation/options"
	"github.com/mhr3/collation/span"
)

//go:generate mockgen -destination=mock/mock_service.go -package=mockbackend github.com/mhr3/collation/backend Service

// Service is the boundary to an external locale-aware collation provider.
// Text crosses it as explicit-length UTF-16; nothing relies on
// terminators. Implementations must be safe for concurrent use.
type Service interface {
	CompareLocaleAware(locale string, a, b []uint16, o options.CompareOptions) (int, error)
	IndexOfLocaleAware(locale string, source, value []uint16, o options.CompareOptions, fromStart bool) (span.Match, error)
	PrefixLocaleAware(locale string, source, prefix []uint16, o options.CompareOptions) (bool, int, error)
	SuffixLocaleAware(locale string, source, suffix []uint16, o options.CompareOptions) (bool, int, error)
	ChangeCaseLocaleAware(locale string, text []uint16, toUpper bool) ([]uint16, error)
	NormalizeLocaleAware(text []uint16, form NormalizationForm) ([]uint16, error)
	IsNormalizedLocaleAware(text []uint16, form NormalizationForm) (bool, error)
}
