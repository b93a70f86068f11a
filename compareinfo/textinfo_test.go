package compareinfo

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mhr3/collation/backend"
	mockbackend "github.com/mhr3/collation/backend/mock"
	"github.com/mhr3/collation/collerr"
)

func TestTextInfoCase(t *testing.T) {
	tests := []struct {
		locale       string
		mode         Mode
		in           string
		upper, lower string
	}{
		{"", Invariant, "Stra\u00DFe", "STRA\u00DFE", "stra\u00DFe"},
		{"tr-TR", Invariant, "iI", "II", "ii"},
		{"", Invariant, "\U00010428x", "\U00010400X", "\U00010428x"},
		{"", Linguistic, "Stra\u00DFe", "STRASSE", "stra\u00DFe"},
		{"tr-TR", Linguistic, "iI", "\u0130I", "i\u0131"},
		{"en-US", Linguistic, "iI", "II", "ii"},
		{"tr-TR", Hybrid, "iI", "\u0130I", "i\u0131"},
	}
	for _, tt := range tests {
		ti := newInfo(t, tt.locale, tt.mode).TextInfo()
		got, err := ti.ToUpper(tt.in)
		require.NoError(t, err)
		assert.Equal(t, tt.upper, got, "[%s %s] ToUpper(%q)", tt.locale, tt.mode, tt.in)

		got, err = ti.ToLower(tt.in)
		require.NoError(t, err)
		assert.Equal(t, tt.lower, got, "[%s %s] ToLower(%q)", tt.locale, tt.mode, tt.in)
	}

	ti := newInfo(t, "", Invariant).TextInfo()
	_, err := ti.ToUpperUnits(nil)
	requireParamError(t, err, collerr.ErrNullInput, "str")
	out, err := ti.ToLowerUnits(u(""))
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestTextInfoHybridDelegates(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := mockbackend.NewMockService(ctrl)
	c, err := New(Config{Locale: "az", Mode: Hybrid, Service: svc})
	require.NoError(t, err)

	svc.EXPECT().ChangeCaseLocaleAware("az", u("i"), true).Return(u("\u0130"), nil)
	got, err := c.TextInfo().ToUpper("i")
	require.NoError(t, err)
	assert.Equal(t, "\u0130", got)

	svc.EXPECT().ChangeCaseLocaleAware("az", u("I"), false).Return(nil, errors.New("boom"))
	_, err = c.TextInfo().ToLower("I")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "boom")
}

func TestNormalizer(t *testing.T) {
	n := newInfo(t, "", Linguistic).Normalizer()

	got, err := n.Normalize("A\u0301", backend.FormC)
	require.NoError(t, err)
	assert.Equal(t, "\u00C1", got)

	got, err = n.Normalize("\u00C1", backend.FormD)
	require.NoError(t, err)
	assert.Equal(t, "A\u0301", got)

	got, err = n.Normalize("\uFB01", backend.FormKC)
	require.NoError(t, err)
	assert.Equal(t, "fi", got)

	ok, err := n.IsNormalized("A\u0301", backend.FormC)
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = n.IsNormalized("A\u0301", backend.FormD)
	require.NoError(t, err)
	assert.True(t, ok)

	_, err = n.Normalize("a", backend.NormalizationForm(3))
	requireParamError(t, err, collerr.ErrInvalidOptions, "normalizationForm")
	_, err = n.NormalizeUnits(nil, backend.FormC)
	requireParamError(t, err, collerr.ErrNullInput, "source")
	_, err = n.NormalizeUnits([]uint16{'a', 0xD800}, backend.FormC)
	assert.Error(t, err)

	inv := newInfo(t, "", Invariant).Normalizer()
	ok, err = inv.IsNormalized("A\u0301", backend.FormC)
	require.NoError(t, err)
	assert.True(t, ok)
	got, err = inv.Normalize("A\u0301", backend.FormC)
	require.NoError(t, err)
	assert.Equal(t, "A\u0301", got)
	_, err = inv.IsNormalized("a", backend.NormalizationForm(0))
	requireParamError(t, err, collerr.ErrInvalidOptions, "normalizationForm")
}

func TestNormalizerHybridDelegates(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := mockbackend.NewMockService(ctrl)
	c, err := New(Config{Mode: Hybrid, Service: svc})
	require.NoError(t, err)

	svc.EXPECT().IsNormalizedLocaleAware(u("abc"), backend.FormKD).Return(true, nil)
	ok, err := c.Normalizer().IsNormalized("abc", backend.FormKD)
	require.NoError(t, err)
	assert.True(t, ok)
}
