// Package metrics holds the Prometheus instrumentation for the research
// pipeline.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the pipeline's Prometheus collectors. A nil *Metrics is
// valid and records nothing, so library code never needs a guard at every
// call site.
type Metrics struct {
	RequestsTotal   prometheus.Counter
	RequestsFailed  *prometheus.CounterVec
	AgentOutcomes   *prometheus.CounterVec
	RequestDuration prometheus.Histogram
	SearchDuration  prometheus.Histogram
	ModelDuration   prometheus.Histogram
}

// New creates and registers the pipeline metrics against the given
// registerer. Tests pass a fresh prometheus.NewRegistry().
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		RequestsTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "corpintel_requests_total",
			Help: "Total research requests received",
		}),
		RequestsFailed: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "corpintel_requests_failed_total",
			Help: "Research requests that ended in a terminal error, by error kind",
		}, []string{"kind"}),
		AgentOutcomes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "corpintel_agent_outcomes_total",
			Help: "Specialist agent branch outcomes, by intent and result",
		}, []string{"intent", "result"}),
		RequestDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "corpintel_request_duration_seconds",
			Help:    "End-to-end research request duration",
			Buckets: prometheus.ExponentialBuckets(0.5, 2, 10),
		}),
		SearchDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "corpintel_search_duration_seconds",
			Help:    "Single web search query duration",
			Buckets: prometheus.ExponentialBuckets(0.05, 2, 10),
		}),
		ModelDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "corpintel_model_call_duration_seconds",
			Help:    "Single model completion call duration",
			Buckets: prometheus.ExponentialBuckets(0.25, 2, 10),
		}),
	}

	reg.MustRegister(
		m.RequestsTotal,
		m.RequestsFailed,
		m.AgentOutcomes,
		m.RequestDuration,
		m.SearchDuration,
		m.ModelDuration,
	)
	return m
}

// ObserveSearch records one web search query duration.
func (m *Metrics) ObserveSearch(d time.Duration) {
	if m == nil {
		return
	}
	m.SearchDuration.Observe(d.Seconds())
}

// ObserveModelCall records one model completion call duration.
func (m *Metrics) ObserveModelCall(d time.Duration) {
	if m == nil {
		return
	}
	m.ModelDuration.Observe(d.Seconds())
}

// ObserveRequest records one finished request.
func (m *Metrics) ObserveRequest(d time.Duration) {
	if m == nil {
		return
	}
	m.RequestsTotal.Inc()
	m.RequestDuration.Observe(d.Seconds())
}

// ObserveFailure records a terminal error event.
func (m *Metrics) ObserveFailure(kind string) {
	if m == nil {
		return
	}
	m.RequestsFailed.WithLabelValues(kind).Inc()
}

// ObserveAgent records one specialist branch outcome. result is "ok" or the
// branch's error kind.
func (m *Metrics) ObserveAgent(intent, result string) {
	if m == nil {
		return
	}
	m.AgentOutcomes.WithLabelValues(intent, result).Inc()
}
