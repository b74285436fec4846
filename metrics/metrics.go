package metrics

import (
	// Go Internal Packages
	"net/http"
	"time"

	// External Packages
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics counts publish outcomes. A nil *Metrics is valid and records nothing.
// The kafka sink registers its client metrics on the same Registry.
type Metrics struct {
	Registry *prometheus.Registry

	Published       *prometheus.CounterVec
	PublishFailures *prometheus.CounterVec
	PublishDuration prometheus.Histogram
}

func New(namespace string) *Metrics {
	m := &Metrics{
		Registry: prometheus.NewRegistry(),
		Published: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "published_total",
				Help:      "Total transactions acknowledged by the sink",
			},
			[]string{"psp"},
		),
		PublishFailures: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "publish_failures_total",
				Help:      "Total transactions the sink did not acknowledge",
			},
			[]string{"stage"}, // encode|ack
		),
		PublishDuration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "publish_duration_seconds",
				Help:      "Time from submission to acknowledgment",
				Buckets:   prometheus.DefBuckets,
			},
		),
	}

	m.Registry.MustRegister(
		m.Published,
		m.PublishFailures,
		m.PublishDuration,
	)
	return m
}

func (m *Metrics) ObservePublished(psp string, took time.Duration) {
	if m == nil {
		return
	}
	m.Published.WithLabelValues(psp).Inc()
	m.PublishDuration.Observe(took.Seconds())
}

func (m *Metrics) ObserveFailure(stage string) {
	if m == nil {
		return
	}
	m.PublishFailures.WithLabelValues(stage).Inc()
}

// Handler serves the registry for the /metrics endpoint.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.Registry, promhttp.HandlerOpts{Registry: m.Registry})
}
