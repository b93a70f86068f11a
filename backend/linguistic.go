package backend

import (
	"bytes"
	"sync"
	"unicode"
	"unicode/utf8"

	"github.com/cockroachdb/errors"
	"golang.org/x/text/cases"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
	"golang.org/x/text/width"

	"github.com/mhr3/collation/internal/foldtable"
	"github.com/mhr3/collation/options"
	"github.com/mhr3/collation/sortkey"
	"github.com/mhr3/collation/span"
	"github.com/mhr3/collation/utf16"
)

// Collator strength selection, indexing Linguistic.pools.
const (
	ignoreTertiary = 1 << iota
	ignoreSecondary
	numLevelSets
)

// Linguistic compares text with the Unicode Collation Algorithm as tailored
// for one locale.
//
// Options the collator cannot express are applied around it: symbols are
// stripped, width and kana are folded before collation, and when the
// tertiary level is switched off the case, kana and width distinctions the
// caller did not ask to ignore are restored as tie-breaks.
type Linguistic struct {
	locale string
	tag    language.Tag
	pools  [numLevelSets]sync.Pool
}

var _ Backend = (*Linguistic)(nil)

// ParseLocale maps a locale name to a language tag. The empty name is the
// invariant (root) locale.
func ParseLocale(locale string) (language.Tag, error) {
	if locale == "" {
		return language.Und, nil
	}
	tag, err := language.Parse(locale)
	if err != nil {
		return language.Und, errors.Wrapf(err, "invalid locale %q", locale)
	}
	return tag, nil
}

// NewLinguistic returns a backend for locale.
func NewLinguistic(locale string) (*Linguistic, error) {
	tag, err := ParseLocale(locale)
	if err != nil {
		return nil, err
	}
	l := &Linguistic{locale: locale, tag: tag}
	for i := range l.pools {
		levels := i
		l.pools[i].New = func() interface{} {
			return newCollators(tag, levels)
		}
	}
	return l, nil
}

func (l *Linguistic) Name() string { return "linguistic" }

// Tag returns the language tag the collation is tailored for.
func (l *Linguistic) Tag() language.Tag { return l.tag }

// collators bundles the per-goroutine state a comparison needs. Neither
// collate.Collator nor cases.Caser may be shared between goroutines.
type collators struct {
	full    *collate.Collator
	primary *collate.Collator
	fold    cases.Caser
	buf     collate.Buffer
	scratch []rune
}

func newCollators(tag language.Tag, levels int) *collators {
	var opts []collate.Option
	if levels&ignoreTertiary != 0 {
		opts = append(opts, collate.IgnoreCase)
	}
	if levels&ignoreSecondary != 0 {
		opts = append(opts, collate.IgnoreDiacritics)
	}
	return &collators{
		full:    collate.New(tag, opts...),
		primary: collate.New(tag, collate.IgnoreCase, collate.IgnoreDiacritics),
		fold:    cases.Fold(),
	}
}

func levelsFor(o options.CompareOptions) int {
	levels := 0
	if o&(options.IgnoreCase|options.IgnoreNonSpace) != 0 {
		levels |= ignoreTertiary
	}
	if o&options.IgnoreNonSpace != 0 {
		levels |= ignoreSecondary
	}
	return levels
}

func (l *Linguistic) get(o options.CompareOptions) *collators {
	return l.pools[levelsFor(o)].Get().(*collators)
}

func (l *Linguistic) put(o options.CompareOptions, c *collators) {
	c.buf.Reset()
	l.pools[levelsFor(o)].Put(c)
}

// prepared is text ready for the collator plus its tie-break signature.
type prepared struct {
	text []byte
	sig  []byte
}

func (c *collators) prepare(units []uint16, o options.CompareOptions) prepared {
	text := c.prepareText(units, o)
	sig := c.signature(text, o)
	if utf16.IndexInvalid(units) >= 0 {
		sig = appendSurrogateSignature(sig, units)
	}
	return prepared{text: text, sig: sig}
}

// prepareText turns units into the UTF-8 text handed to the collator, with
// symbols stripped and width and kana folded as o asks.
func (c *collators) prepareText(units []uint16, o options.CompareOptions) []byte {
	runes := c.scratch[:0]
	for len(units) > 0 {
		r, n := utf16.DecodeRune(units)
		units = units[n:]
		if o&options.IgnoreSymbols != 0 && isSymbol(r) {
			continue
		}
		runes = append(runes, r)
	}
	c.scratch = runes[:0]

	text := []byte(string(runes))
	if o&options.IgnoreWidth != 0 {
		text = foldWidth(text)
	}
	if o&options.IgnoreKanaType != 0 {
		text = foldKana(text)
	}
	return text
}

// appendSurrogateSignature writes every unpaired surrogate as a big-endian
// code unit after a 0xFF marker. The collator sees them all as U+FFFD; the
// section keeps distinct surrogates apart and after a real U+FFFD.
func appendSurrogateSignature(sig []byte, units []uint16) []byte {
	sig = append(sig, 0xFF)
	for i := 0; i < len(units); {
		if _, n := utf16.DecodeRune(units[i:]); n == 2 {
			i += 2
			continue
		}
		if u := units[i]; utf16.IsSurrogate(u) {
			sig = append(sig, byte(u>>8), byte(u))
		}
		i++
	}
	return sig
}

func isSymbol(r rune) bool {
	return unicode.IsPunct(r) || unicode.IsSymbol(r) || unicode.IsSpace(r)
}

// foldWidth maps every character to its canonical width. Halfwidth voicing
// marks fold to their spacing forms; they are turned into combining marks so
// that NFC can join them with the preceding kana.
func foldWidth(text []byte) []byte {
	folded := width.Fold.Bytes(text)
	folded = bytes.ReplaceAll(folded, []byte("\u309B"), []byte("\u3099"))
	folded = bytes.ReplaceAll(folded, []byte("\u309C"), []byte("\u309A"))
	return norm.NFC.Bytes(folded)
}

func foldKana(text []byte) []byte {
	return bytes.Map(func(r rune) rune {
		if r > 0xFFFF {
			return r
		}
		return rune(foldtable.Kana(uint16(r)))
	}, text)
}

// signature restores, as a tie-break after the collation key, the
// distinctions that ignoring the tertiary level drops but the options did
// not ask to drop. Sections are separated by 0x00.
func (c *collators) signature(text []byte, o options.CompareOptions) []byte {
	if o&(options.IgnoreCase|options.IgnoreNonSpace) == 0 {
		return nil
	}
	var sig []byte
	if o&options.IgnoreNonSpace != 0 && o&options.IgnoreCase == 0 {
		sig = c.appendCaseSignature(sig, text)
		sig = append(sig, 0)
	}
	if o&options.IgnoreKanaType == 0 {
		sig = appendKanaSignature(sig, text)
		sig = append(sig, 0)
	}
	if o&options.IgnoreWidth == 0 {
		sig = appendWidthSignature(sig, text)
	}
	return sig
}

// appendCaseSignature writes 2 for every uppercase and 1 for every
// lowercase letter of the compatibility decomposition, repeated by the
// letter's case-folded length so that expansions such as ß and ss agree.
func (c *collators) appendCaseSignature(sig, text []byte) []byte {
	for len(text) > 0 {
		r, n := utf8.DecodeRune(text)
		text = text[n:]
		if r < utf8.RuneSelf {
			switch {
			case 'A' <= r && r <= 'Z':
				sig = append(sig, 2)
			case 'a' <= r && r <= 'z':
				sig = append(sig, 1)
			}
			continue
		}
		for _, d := range norm.NFKD.String(string(r)) {
			var class byte
			switch {
			case unicode.In(d, unicode.Mn, unicode.Me, unicode.Mc):
				continue
			case unicode.IsUpper(d), unicode.IsTitle(d):
				class = 2
			case unicode.IsLower(d):
				class = 1
			default:
				continue
			}
			for k := utf8.RuneCountInString(c.fold.String(string(d))); k > 0; k-- {
				sig = append(sig, class)
			}
		}
	}
	return sig
}

// appendKanaSignature writes 1 for every hiragana and 2 for every katakana
// letter.
func appendKanaSignature(sig, text []byte) []byte {
	for _, r := range string(text) {
		if r < 0x3041 || r > 0xFFEF {
			continue
		}
		u := foldtable.Width(uint16(r))
		switch {
		case foldtable.IsHiragana(u):
			sig = append(sig, 1)
		case foldtable.IsKatakana(u):
			sig = append(sig, 2)
		}
	}
	return sig
}

// appendWidthSignature writes 2 for every fullwidth and 1 for every
// halfwidth variant. Characters already in their canonical width add
// nothing, so the signature is unaffected by expansions.
func appendWidthSignature(sig, text []byte) []byte {
	for _, r := range string(text) {
		if r < utf8.RuneSelf {
			continue
		}
		p := width.LookupRune(r)
		if p.Folded() == 0 {
			continue
		}
		if p.Kind() == width.EastAsianFullwidth {
			sig = append(sig, 2)
		} else {
			sig = append(sig, 1)
		}
	}
	return sig
}

func (c *collators) compare(a, b prepared) int {
	if r := c.full.Compare(a.text, b.text); r != 0 {
		return r
	}
	return bytes.Compare(a.sig, b.sig)
}

func (c *collators) primaryKey(p prepared) []byte {
	return c.primary.Key(&c.buf, p.text)
}

func (l *Linguistic) Compare(a, b []uint16, o options.CompareOptions) (int, error) {
	c := l.get(o)
	defer l.put(o, c)
	return c.compare(c.prepare(a, o), c.prepare(b, o)), nil
}

// SortKey returns the escaped collation key followed by the escaped
// tie-break signature.
func (l *Linguistic) SortKey(text []uint16, o options.CompareOptions) ([]byte, error) {
	if _, err := sortkey.UnitsLength(len(text)); err != nil {
		return nil, err
	}
	c := l.get(o)
	defer l.put(o, c)
	p := c.prepare(text, o)
	key := c.full.Key(&c.buf, p.text)
	out := sortkey.AppendEscaped(make([]byte, 0, len(key)+len(p.sig)+8), key)
	return sortkey.AppendEscaped(out, p.sig), nil
}

func (l *Linguistic) SortKeyLength(text []uint16, o options.CompareOptions) (int, error) {
	key, err := l.SortKey(text, o)
	if err != nil {
		return 0, err
	}
	return len(key), nil
}

// IsSortable reports whether text is non-empty, well formed and free of
// noncharacters.
func (l *Linguistic) IsSortable(text []uint16) bool {
	if len(text) == 0 || !utf16.Valid(text) {
		return false
	}
	for len(text) > 0 {
		r, n := utf16.DecodeRune(text)
		if isNoncharacter(r) {
			return false
		}
		text = text[n:]
	}
	return true
}

func isNoncharacter(r rune) bool {
	return (r >= 0xFDD0 && r <= 0xFDEF) || r&0xFFFE == 0xFFFE
}

func (l *Linguistic) IndexOf(source, value []uint16, o options.CompareOptions, fromStart bool) (span.Match, error) {
	c := l.get(o)
	defer l.put(o, c)
	return c.newSearch(value, o).index(source, fromStart), nil
}

func (l *Linguistic) IsPrefix(source, prefix []uint16, o options.CompareOptions) (bool, int, error) {
	c := l.get(o)
	defer l.put(o, c)
	ok, n := c.newSearch(prefix, o).prefix(source)
	return ok, n, nil
}

func (l *Linguistic) IsSuffix(source, suffix []uint16, o options.CompareOptions) (bool, int, error) {
	c := l.get(o)
	defer l.put(o, c)
	ok, n := c.newSearch(suffix, o).suffix(source)
	return ok, n, nil
}
