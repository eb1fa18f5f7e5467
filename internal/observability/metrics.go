package observability

import (
	"strconv"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	registerOnce sync.Once

	httpRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "openlink",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total HTTP requests.",
		},
		[]string{"service", "method", "path", "status"},
	)
	httpDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "openlink",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request duration in seconds.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"service", "method", "path", "status"},
	)
	stanzasInspected = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "openlink",
			Subsystem: "stanza",
			Name:      "inspected_total",
			Help:      "Stanzas inspected, by kind and conformance.",
		},
		[]string{"kind", "conformant"},
	)
	stanzaDiagnostics = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "openlink",
			Subsystem: "stanza",
			Name:      "diagnostics_total",
			Help:      "Diagnostics reported while parsing stanzas.",
		},
		[]string{"kind"},
	)
	stanzaRejected = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "openlink",
			Subsystem: "stanza",
			Name:      "rejected_total",
			Help:      "Documents rejected before parsing, by reason.",
		},
		[]string{"reason"},
	)
)

func RegisterMetrics() {
	registerOnce.Do(func() {
		prometheus.MustRegister(
			httpRequests,
			httpDuration,
			stanzasInspected,
			stanzaDiagnostics,
			stanzaRejected,
		)
	})
}

func RecordHTTPRequest(service, method, path string, status int, duration time.Duration) {
	RegisterMetrics()
	statusLabel := strconv.Itoa(status)
	httpRequests.WithLabelValues(service, method, path, statusLabel).Inc()
	httpDuration.WithLabelValues(service, method, path, statusLabel).Observe(duration.Seconds())
}

// RecordInspection counts one parsed stanza and the diagnostics it produced.
func RecordInspection(kind string, diagnostics int) {
	RegisterMetrics()
	conformant := strconv.FormatBool(diagnostics == 0)
	stanzasInspected.WithLabelValues(kind, conformant).Inc()
	if diagnostics > 0 {
		stanzaDiagnostics.WithLabelValues(kind).Add(float64(diagnostics))
	}
}

// RecordRejection counts a document that never reached the stanza parser.
func RecordRejection(reason string) {
	RegisterMetrics()
	stanzaRejected.WithLabelValues(reason).Inc()
}
