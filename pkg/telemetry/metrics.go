package telemetry

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics is the Prometheus surface for the gateway: one counter+histogram
// pair per transport (gRPC, HTTP) plus a stream-chunk counter for the
// server-streaming RPCs and SSE responses. Every Record method is
// nil-receiver safe so call sites never need a "metrics enabled?" check,
// the same discipline as the teacher's observability.Metrics.
type Metrics struct {
	registry *prometheus.Registry

	grpcCallsTotal   *prometheus.CounterVec
	grpcCallDuration *prometheus.HistogramVec

	httpRequestsTotal   *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec

	streamChunksTotal *prometheus.CounterVec
}

// NewMetrics builds and registers all collectors against a fresh registry.
func NewMetrics() *Metrics {
	registry := prometheus.NewRegistry()
	m := &Metrics{
		registry: registry,
		grpcCallsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "fmaas_router_grpc_calls_total",
			Help: "Total gRPC calls handled by the router, by service, method, and status code.",
		}, []string{"service", "method", "code"}),
		grpcCallDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "fmaas_router_grpc_call_duration_seconds",
			Help:    "gRPC call latency in seconds, by service and method.",
			Buckets: prometheus.DefBuckets,
		}, []string{"service", "method"}),
		httpRequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "fmaas_router_http_requests_total",
			Help: "Total OpenAI-compatible HTTP requests, by path, method, and status class.",
		}, []string{"path", "method", "status_class"}),
		httpRequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "fmaas_router_http_request_duration_seconds",
			Help:    "HTTP request latency in seconds, by path and method.",
			Buckets: prometheus.DefBuckets,
		}, []string{"path", "method"}),
		streamChunksTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "fmaas_router_stream_chunks_total",
			Help: "Total chunks emitted on streaming responses, by service and method.",
		}, []string{"service", "method"}),
	}

	registry.MustRegister(
		m.grpcCallsTotal,
		m.grpcCallDuration,
		m.httpRequestsTotal,
		m.httpRequestDuration,
		m.streamChunksTotal,
	)
	return m
}

// RecordGRPCCall records one completed unary or streaming gRPC call.
func (m *Metrics) RecordGRPCCall(service, method, code string, duration time.Duration) {
	if m == nil {
		return
	}
	m.grpcCallsTotal.WithLabelValues(service, method, code).Inc()
	m.grpcCallDuration.WithLabelValues(service, method).Observe(duration.Seconds())
}

// RecordStreamChunk records one chunk of a server-streaming gRPC call or
// an SSE event of an OpenAI-compatible streaming HTTP response.
func (m *Metrics) RecordStreamChunk(service, method string) {
	if m == nil {
		return
	}
	m.streamChunksTotal.WithLabelValues(service, method).Inc()
}

// RecordHTTPRequest records one completed OpenAI-compatible HTTP request.
func (m *Metrics) RecordHTTPRequest(path, method string, status int, duration time.Duration) {
	if m == nil {
		return
	}
	m.httpRequestsTotal.WithLabelValues(path, method, statusClassLabel(status)).Inc()
	m.httpRequestDuration.WithLabelValues(path, method).Observe(duration.Seconds())
}

// Handler exposes the registry for scraping.
func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return http.NotFoundHandler()
	}
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

func statusClassLabel(status int) string {
	if status < 100 || status > 599 {
		return "unknown"
	}
	return strconv.Itoa(status/100) + "xx"
}
