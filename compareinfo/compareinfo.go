// Package compareinfo is the public face of the collation engine. A
// CompareInfo binds one locale to one backend and exposes every call shape
// of compare, search, prefix/suffix and sort-key generation on top of it.
//
// Every call validates in the same order: null inputs, then bounds, then
// the empty-pattern short-circuit, then options, and only then dispatches
// to the ordinal comparator or the backend.
package compareinfo

import (
	"io"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"
	"golang.org/x/text/language"

	"github.com/mhr3/collation/backend"
)

// Mode selects the backend a CompareInfo dispatches linguistic calls to.
type Mode int

const (
	// Linguistic collates with in-process Unicode collation tables.
	Linguistic Mode = iota
	// Invariant compares by code unit; only IgnoreCase has an effect.
	Invariant
	// Hybrid folds width and kana locally and delegates to a Service.
	Hybrid
)

var modeNames = [...]string{
	Linguistic: "linguistic",
	Invariant:  "invariant",
	Hybrid:     "hybrid",
}

func (m Mode) String() string {
	if m < 0 || int(m) >= len(modeNames) {
		return "Mode(" + strconv.Itoa(int(m)) + ")"
	}
	return modeNames[m]
}

// ParseMode is the inverse of String.
func ParseMode(s string) (Mode, error) {
	for m, name := range modeNames {
		if strings.EqualFold(s, name) {
			return Mode(m), nil
		}
	}
	return 0, errors.Newf("unknown mode %q, expected one of %s", s, strings.Join(modeNames[:], ", "))
}

// Set implements pflag.Value.
func (m *Mode) Set(s string) error {
	v, err := ParseMode(s)
	if err != nil {
		return err
	}
	*m = v
	return nil
}

// Type implements pflag.Value.
func (m *Mode) Type() string { return "mode" }

// Config selects the locale and backend of a CompareInfo.
type Config struct {
	// Locale is a BCP 47 name; empty selects the invariant locale.
	Locale string
	Mode   Mode
	// Service answers the linguistic questions in Hybrid mode. Nil selects
	// the in-process x/text service.
	Service backend.Service
	// Logger receives debug entries. Nil discards them.
	Logger logrus.FieldLogger
	// Registerer receives the engine counters. Nil leaves them unregistered.
	Registerer prometheus.Registerer
}

// CompareInfo compares and searches text for one locale. It is immutable
// after New and safe for concurrent use.
type CompareInfo struct {
	locale string
	tag    language.Tag
	mode   Mode

	backend backend.Backend
	text    textOps

	// asciiFast enables the ordinal scan for printable ASCII searches.
	asciiFast bool

	log     *logrus.Entry
	metrics *metrics
}

// New validates cfg and builds the backend it names.
func New(cfg Config) (*CompareInfo, error) {
	tag, err := backend.ParseLocale(cfg.Locale)
	if err != nil {
		return nil, err
	}

	logger := cfg.Logger
	if logger == nil {
		l := logrus.New()
		l.Out = io.Discard
		logger = l
	}

	m, err := newMetrics(cfg.Registerer)
	if err != nil {
		return nil, errors.Wrap(err, "registering collation metrics")
	}

	c := &CompareInfo{
		locale:  cfg.Locale,
		tag:     tag,
		mode:    cfg.Mode,
		metrics: m,
		log: logger.WithFields(logrus.Fields{
			"locale": cfg.Locale,
			"mode":   cfg.Mode.String(),
		}),
	}

	switch cfg.Mode {
	case Invariant:
		c.backend = backend.Invariant{}
		c.text = invariantText{}
	case Linguistic:
		l, err := backend.NewLinguistic(cfg.Locale)
		if err != nil {
			return nil, err
		}
		c.backend = l
		c.text = serviceText{locale: cfg.Locale, svc: backend.NewTextService()}
		c.asciiFast = isASCIIEqualityOrdinal(tag)
	case Hybrid:
		svc := cfg.Service
		if svc == nil {
			svc = backend.NewTextService()
		}
		h := backend.NewHybrid(cfg.Locale, svc)
		c.backend = h
		c.text = h
		c.asciiFast = isASCIIEqualityOrdinal(tag)
	default:
		return nil, errors.Newf("unknown mode %s", cfg.Mode)
	}

	c.log.WithField("backend", c.backend.Name()).Debug("compare info ready")
	return c, nil
}

// isASCIIEqualityOrdinal reports whether printable ASCII collates like
// ordinal text in tag: no contractions and no tailored letters.
func isASCIIEqualityOrdinal(tag language.Tag) bool {
	if tag == language.Und {
		return true
	}
	base, _ := tag.Base()
	return base.String() == "en"
}

// Name returns the locale name the CompareInfo was built for.
func (c *CompareInfo) Name() string { return c.locale }

// Mode returns the backend mode.
func (c *CompareInfo) Mode() Mode { return c.mode }

// Tag returns the parsed locale.
func (c *CompareInfo) Tag() language.Tag { return c.tag }
