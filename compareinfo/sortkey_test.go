package compareinfo

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mhr3/collation/collerr"
	"github.com/mhr3/collation/options"
	"github.com/mhr3/collation/sortkey"
)

func TestSortKeyMatchesCompare(t *testing.T) {
	opts := []options.CompareOptions{
		options.None,
		options.IgnoreCase,
		options.IgnoreCase | options.IgnoreNonSpace,
		options.IgnoreSymbols,
		options.StringSort,
	}
	for _, mode := range []Mode{Linguistic, Invariant} {
		for _, locale := range []string{"", "de-DE"} {
			c := newInfo(t, locale, mode)
			for _, o := range opts {
				keys := make([]sortkey.SortKey, len(compareCorpus))
				for i, s := range compareCorpus {
					k, err := c.GetSortKey(s, o)
					require.NoError(t, err)
					assert.Equal(t, s, k.Original)
					assert.Equal(t, locale, k.Locale)
					assert.Equal(t, o, k.Options)
					keys[i] = k
				}
				for i, a := range compareCorpus {
					for j, b := range compareCorpus {
						exp, err := c.CompareOptions(a, b, o)
						require.NoError(t, err)
						if got := sortkey.Compare(keys[i], keys[j]); got != exp {
							t.Errorf("[%s %q] %s: key order of %q, %q is %d, Compare says %d", mode, locale, o, a, b, got, exp)
						}
					}
				}
			}
		}
	}
}

func TestInvariantSortKeyLength(t *testing.T) {
	c := newInfo(t, "", Invariant)
	for _, n := range []int{0, 1, 7, 1024} {
		text := make([]uint16, n)
		got, err := c.GetSortKeyLength(text, options.None)
		require.NoError(t, err)
		assert.Equal(t, 2*n, got)
	}

	k, err := c.GetSortKey("Ab", options.IgnoreCase)
	require.NoError(t, err)
	assert.Equal(t, []byte{0x00, 'A', 0x00, 'B'}, k.KeyData)

	_, err = sortkey.UnitsLength(sortkey.MaxUnits + 1)
	requireParamError(t, err, collerr.ErrOutOfRange, "source")
}

func TestGetSortKeyInto(t *testing.T) {
	for _, mode := range []Mode{Linguistic, Invariant} {
		c := newInfo(t, "", mode)
		text := u("Hello")

		n, err := c.GetSortKeyLength(text, options.None)
		require.NoError(t, err)
		require.Greater(t, n, 0)

		small := bytes.Repeat([]byte{0xAA}, n-1)
		_, err = c.GetSortKeyInto(small, text, options.None)
		requireParamError(t, err, collerr.ErrBufferTooSmall, "destination")
		assert.Equal(t, bytes.Repeat([]byte{0xAA}, n-1), small, "undersized buffer was written")

		big := bytes.Repeat([]byte{0xAA}, n+16)
		written, err := c.GetSortKeyInto(big, text, options.None)
		require.NoError(t, err)
		assert.Equal(t, n, written)
		assert.Equal(t, bytes.Repeat([]byte{0xAA}, 16), big[n:], "bytes past the key were written")

		k, err := c.GetSortKey("Hello", options.None)
		require.NoError(t, err)
		assert.Equal(t, k.KeyData, big[:n])
	}
}

func TestSortKeyErrors(t *testing.T) {
	c := newInfo(t, "", Linguistic)

	_, err := c.GetSortKey("a", options.Ordinal)
	requireParamError(t, err, collerr.ErrInvalidOptions, "options")
	_, err = c.GetSortKey("a", options.CompareOptions(1<<25))
	requireParamError(t, err, collerr.ErrInvalidOptions, "options")
	_, err = c.GetSortKeyLength(nil, options.None)
	requireParamError(t, err, collerr.ErrNullInput, "source")
	_, err = c.GetSortKeyInto(make([]byte, 8), nil, options.None)
	requireParamError(t, err, collerr.ErrNullInput, "source")

	h := newInfo(t, "", Hybrid)
	_, err = h.GetSortKey("a", options.None)
	requireParamError(t, err, collerr.ErrUnsupportedOptions, "options")
	_, err = h.GetSortKeyLength(u("a"), options.None)
	requireParamError(t, err, collerr.ErrUnsupportedOptions, "options")
}

func TestIsSortable(t *testing.T) {
	tests := []struct {
		mode Mode
		s    []uint16
		exp  bool
	}{
		{Linguistic, u("abc"), true},
		{Linguistic, u(""), false},
		{Linguistic, nil, false},
		{Linguistic, []uint16{'a', 0xD800}, false},
		{Linguistic, u("\uFFFE"), false},
		{Invariant, []uint16{'a', 0xD800}, true},
		{Invariant, u(""), false},
		{Hybrid, u("\U0001F600"), true},
		{Hybrid, []uint16{0xDC00}, false},
	}
	for _, tt := range tests {
		c := newInfo(t, "", tt.mode)
		assert.Equal(t, tt.exp, c.IsSortableUnits(tt.s), "%s %v", tt.mode, tt.s)
	}

	c := newInfo(t, "", Linguistic)
	assert.True(t, c.IsSortable("x"))
	assert.True(t, c.IsSortableRune('\U0001F600'))
	assert.False(t, c.IsSortableRune(0xD800))
	assert.False(t, c.IsSortableRune(0xFDD0))
}

func TestVersion(t *testing.T) {
	de := newInfo(t, "de-DE", Linguistic)
	de2 := newInfo(t, "de-DE", Linguistic)
	fr := newInfo(t, "fr-FR", Linguistic)
	inv := newInfo(t, "de-DE", Invariant)

	assert.Equal(t, de.Version(), de2.Version())
	assert.NotEqual(t, de.Version().SortID, fr.Version().SortID)
	assert.NotEqual(t, de.Version().SortID, inv.Version().SortID)
	assert.Equal(t, de.Version().FullVersion>>8, inv.Version().FullVersion>>8)
	assert.Equal(t, int(Invariant), inv.Version().FullVersion&0xFF)
	assert.Greater(t, de.Version().FullVersion>>24, 0, "unicode major version")
	assert.Equal(t, 5, int(de.Version().SortID.Version()), "name-based SHA-1 uuid")
}
