package compareinfo

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mhr3/collation/collerr"
	"github.com/mhr3/collation/options"
	"github.com/mhr3/collation/utf16"
)

var u = utf16.FromString

func newInfo(t testing.TB, locale string, mode Mode) *CompareInfo {
	t.Helper()
	c, err := New(Config{Locale: locale, Mode: mode})
	require.NoError(t, err)
	return c
}

func TestNew(t *testing.T) {
	for _, mode := range []Mode{Linguistic, Invariant, Hybrid} {
		c, err := New(Config{Locale: "de-DE", Mode: mode})
		require.NoError(t, err, mode)
		assert.Equal(t, "de-DE", c.Name())
		assert.Equal(t, mode, c.Mode())
		assert.Equal(t, "de-DE", c.Tag().String())
	}

	_, err := New(Config{Locale: "not a locale!"})
	assert.Error(t, err)

	_, err = New(Config{Mode: Mode(7)})
	assert.Error(t, err)
}

func TestModeParse(t *testing.T) {
	for _, mode := range []Mode{Linguistic, Invariant, Hybrid} {
		got, err := ParseMode(mode.String())
		require.NoError(t, err)
		assert.Equal(t, mode, got)
	}

	got, err := ParseMode("HYBRID")
	require.NoError(t, err)
	assert.Equal(t, Hybrid, got)

	_, err = ParseMode("icu")
	assert.Error(t, err)
	assert.Equal(t, "Mode(9)", Mode(9).String())

	var m Mode
	require.NoError(t, m.Set("invariant"))
	assert.Equal(t, Invariant, m)
	assert.Equal(t, "mode", m.Type())
}

func TestASCIIFastPathLocales(t *testing.T) {
	tests := []struct {
		locale string
		mode   Mode
		exp    bool
	}{
		{"", Linguistic, true},
		{"en", Linguistic, true},
		{"en-GB", Hybrid, true},
		{"de-DE", Linguistic, false},
		{"hu-HU", Linguistic, false},
		{"", Invariant, false},
	}
	for _, tt := range tests {
		c := newInfo(t, tt.locale, tt.mode)
		assert.Equal(t, tt.exp, c.asciiFast, "%q %s", tt.locale, tt.mode)
	}
}

func TestMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	c, err := New(Config{Locale: "en-US", Registerer: reg})
	require.NoError(t, err)

	_, err = c.IndexOf("hello world", "WORLD", options.IgnoreCase)
	require.NoError(t, err)
	_, err = c.IndexOf("héllo", "l", options.None)
	require.NoError(t, err)
	_, err = c.Compare("a", "b")
	require.NoError(t, err)

	assert.Equal(t, 1.0, testutil.ToFloat64(c.metrics.fastPath))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.metrics.bailout))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.metrics.backendCalls.WithLabelValues(opIndexOf)))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.metrics.backendCalls.WithLabelValues(opCompare)))

	// A second engine on the same registry shares the counters.
	other, err := New(Config{Locale: "en-GB", Registerer: reg})
	require.NoError(t, err)
	_, err = other.IsPrefix("hello", "he", options.None)
	require.NoError(t, err)
	assert.Equal(t, 2.0, testutil.ToFloat64(c.metrics.fastPath))

	n, err := testutil.GatherAndCount(reg, "collation_fast_path_total", "collation_backend_calls_total")
	require.NoError(t, err)
	assert.Equal(t, 3, n)
}

func TestMetricsRegistrationConflict(t *testing.T) {
	reg := prometheus.NewRegistry()
	reg.MustRegister(prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: prometheusMetricNamespace,
		Name:      "fast_path_total",
		Help:      "Something else.",
	}))
	_, err := New(Config{Registerer: reg})
	assert.Error(t, err)
}

func TestBailoutIsLogged(t *testing.T) {
	logger, hook := logtest.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)

	c, err := New(Config{Locale: "en", Logger: logger})
	require.NoError(t, err)
	hook.Reset()

	_, err = c.IndexOf("naïve", "v", options.None)
	require.NoError(t, err)

	entry := hook.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, logrus.DebugLevel, entry.Level)
	assert.Equal(t, opIndexOf, entry.Data["op"])
	assert.Equal(t, "en", entry.Data["locale"])
	assert.Equal(t, "linguistic", entry.Data["mode"])
	assert.Equal(t, "ascii fast path left at source[2]", entry.Message)
}

func requireParamError(t *testing.T, err error, sentinel error, param string) {
	t.Helper()
	require.Error(t, err)
	assert.True(t, errors.Is(err, sentinel), "got %v", err)
	assert.Equal(t, param, collerr.Param(err), "got %v", err)
}
