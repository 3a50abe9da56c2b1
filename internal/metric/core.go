package metric

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "config_keeper"

// Result kinds used as the "kind" label.
const (
	KindOk  = "ok"
	KindErr = "err"
)

// Metrics contains every metric recorded by go-config-keeper processes.
type Metrics struct {
	// ResultsTotal counts configuration results by responder method and kind.
	ResultsTotal *prometheus.CounterVec

	// StreamedElements counts elements delivered by the streaming responder.
	StreamedElements prometheus.Counter

	// TruncatedStreams counts streams that ended early because their caller
	// cancelled.
	TruncatedStreams prometheus.Counter

	// GatewayResponses counts gateway HTTP responses by route and status.
	GatewayResponses *prometheus.CounterVec

	// RPCDuration observes gRPC call durations by method and status code.
	RPCDuration *prometheus.HistogramVec
}

// NewMetrics creates a new Metrics instance. Metrics are not registered.
func NewMetrics() *Metrics {
	return &Metrics{
		ResultsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "responder",
				Name:      "results_total",
				Help:      "Total number of configuration results by method and kind (ok, err)",
			},
			[]string{"method", "kind"},
		),

		StreamedElements: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "responder",
				Name:      "streamed_elements_total",
				Help:      "Total number of elements produced by node configuration streams",
			},
		),

		TruncatedStreams: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "responder",
				Name:      "truncated_streams_total",
				Help:      "Total number of node configuration streams ended by cancellation",
			},
		),

		GatewayResponses: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "gateway",
				Name:      "responses_total",
				Help:      "Total number of gateway HTTP responses by route and status",
			},
			[]string{"route", "status"},
		),

		RPCDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: "rpc",
				Name:      "duration_seconds",
				Help:      "gRPC call duration in seconds",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"method", "code"},
		),
	}
}

// collectors lists every metric for registration.
func (m *Metrics) collectors() []prometheus.Collector {
	return []prometheus.Collector{
		m.ResultsTotal,
		m.StreamedElements,
		m.TruncatedStreams,
		m.GatewayResponses,
		m.RPCDuration,
	}
}

// RecordResult increments ResultsTotal for method with the given kind.
func (m *Metrics) RecordResult(method, kind string) {
	m.ResultsTotal.WithLabelValues(method, kind).Inc()
}

// RecordGatewayResponse increments GatewayResponses.
func (m *Metrics) RecordGatewayResponse(route string, status int) {
	m.GatewayResponses.WithLabelValues(route, statusLabel(status)).Inc()
}

// ObserveRPC records the duration of one gRPC call.
func (m *Metrics) ObserveRPC(method, code string, started time.Time) {
	m.RPCDuration.WithLabelValues(method, code).Observe(time.Since(started).Seconds())
}
