package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics for the application. A nil *Metrics is
// valid and records nothing, so tests can wire services without touching the
// default registry.
type Metrics struct {
	Signups           prometheus.Counter
	Unregistrations   prometheus.Counter
	DocumentsUploaded prometheus.Counter
	DocumentsVerified prometheus.Counter
	RequestDuration   *prometheus.HistogramVec
}

// New creates and registers all Prometheus metrics. Call once per process;
// promauto registers on the default registry.
func New() *Metrics {
	return &Metrics{
		Signups: promauto.NewCounter(prometheus.CounterOpts{
			Name: "mergington_signups_total",
			Help: "Total number of successful activity signups",
		}),
		Unregistrations: promauto.NewCounter(prometheus.CounterOpts{
			Name: "mergington_unregistrations_total",
			Help: "Total number of successful activity unregistrations",
		}),
		DocumentsUploaded: promauto.NewCounter(prometheus.CounterOpts{
			Name: "mergington_documents_uploaded_total",
			Help: "Total number of achievement documents submitted",
		}),
		DocumentsVerified: promauto.NewCounter(prometheus.CounterOpts{
			Name: "mergington_documents_verified_total",
			Help: "Total number of achievement documents verified",
		}),
		RequestDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "mergington_http_request_duration_seconds",
			Help:    "HTTP request latency by method and route pattern",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "route"}),
	}
}

func (m *Metrics) ObserveSignup() {
	if m == nil {
		return
	}
	m.Signups.Inc()
}

func (m *Metrics) ObserveUnregistration() {
	if m == nil {
		return
	}
	m.Unregistrations.Inc()
}

func (m *Metrics) ObserveDocumentUploaded() {
	if m == nil {
		return
	}
	m.DocumentsUploaded.Inc()
}

func (m *Metrics) ObserveDocumentVerified() {
	if m == nil {
		return
	}
	m.DocumentsVerified.Inc()
}

// ObserveRequest records one request's latency against its route pattern.
func (m *Metrics) ObserveRequest(method, route string, seconds float64) {
	if m == nil {
		return
	}
	m.RequestDuration.WithLabelValues(method, route).Observe(seconds)
}
