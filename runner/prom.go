package runner

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Outcome labels.
const (
	outcomeFeasible   = "feasible"
	outcomeInfeasible = "infeasible"
	outcomeError      = "error"
)

// Metrics is a private Prometheus registry with the batch counters. It is
// kept off the default registry so several runners (and tests) never clash.
type Metrics struct {
	reg *prometheus.Registry

	instances  *prometheus.CounterVec
	duration   *prometheus.HistogramVec
	expanded   *prometheus.CounterVec
	mismatches prometheus.Counter
}

// NewMetrics registers the batch collectors on a fresh registry.
func NewMetrics() *Metrics {
	reg := prometheus.NewRegistry()
	f := promauto.With(reg)

	return &Metrics{
		reg: reg,
		instances: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: "duopath",
			Name:      "instances_total",
			Help:      "Instances processed by strategy and outcome",
		}, []string{"strategy", "outcome"}),
		duration: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "duopath",
			Name:      "solve_duration_seconds",
			Help:      "Oracle plus search time per instance",
			Buckets:   prometheus.ExponentialBuckets(0.0001, 4, 12),
		}, []string{"strategy"}),
		expanded: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: "duopath",
			Name:      "states_expanded_total",
			Help:      "Product states expanded",
		}, []string{"strategy"}),
		mismatches: f.NewCounter(prometheus.CounterOpts{
			Namespace: "duopath",
			Name:      "expected_mismatch_total",
			Help:      "Instances whose k differs from the .out reference",
		}),
	}
}

// Registry exposes the underlying registry, e.g. for an HTTP handler.
func (m *Metrics) Registry() *prometheus.Registry { return m.reg }

// WriteTextfile dumps the registry in text exposition format.
func (m *Metrics) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, m.reg)
}

func (m *Metrics) observe(strategy, outcome string, seconds float64, expanded int, mismatch bool) {
	m.instances.WithLabelValues(strategy, outcome).Inc()
	m.duration.WithLabelValues(strategy).Observe(seconds)
	m.expanded.WithLabelValues(strategy).Add(float64(expanded))
	if mismatch {
		m.mismatches.Inc()
	}
}
