package compareinfo

import (
	"github.com/cockroachdb/errors"
	"github.com/prometheus/client_golang/prometheus"
)

const prometheusMetricNamespace = "collation"

// Operation labels of collation_backend_calls_total.
const (
	opCompare     = "compare"
	opIndexOf     = "index_of"
	opLastIndexOf = "last_index_of"
	opIsPrefix    = "is_prefix"
	opIsSuffix    = "is_suffix"
	opSortKey     = "sort_key"
)

type metrics struct {
	fastPath     prometheus.Counter
	bailout      prometheus.Counter
	backendCalls *prometheus.CounterVec
}

func newMetrics(reg prometheus.Registerer) (*metrics, error) {
	m := &metrics{
		fastPath: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: prometheusMetricNamespace,
				Name:      "fast_path_total",
				Help:      "Searches answered by the printable ASCII ordinal scan.",
			},
		),
		bailout: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: prometheusMetricNamespace,
				Name:      "fast_path_bailout_total",
				Help:      "Searches that left the ASCII ordinal scan for the backend.",
			},
		),
		backendCalls: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: prometheusMetricNamespace,
				Name:      "backend_calls_total",
				Help:      "Calls dispatched to the collation backend.",
			},
			[]string{"op"},
		),
	}
	if reg == nil {
		return m, nil
	}

	var err error
	if m.fastPath, err = register(reg, m.fastPath); err != nil {
		return nil, err
	}
	if m.bailout, err = register(reg, m.bailout); err != nil {
		return nil, err
	}
	if m.backendCalls, err = register(reg, m.backendCalls); err != nil {
		return nil, err
	}
	return m, nil
}

// register adds c to reg. Several CompareInfos may share a registry, so an
// identical collector already registered is reused.
func register[C prometheus.Collector](reg prometheus.Registerer, c C) (C, error) {
	err := reg.Register(c)
	if err == nil {
		return c, nil
	}
	var are prometheus.AlreadyRegisteredError
	if errors.As(err, &are) {
		if existing, ok := are.ExistingCollector.(C); ok {
			return existing, nil
		}
	}
	return c, err
}

func (m *metrics) backendCall(op string) {
	m.backendCalls.WithLabelValues(op).Inc()
}
