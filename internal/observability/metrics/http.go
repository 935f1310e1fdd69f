package metrics

import (
	"bufio"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type HTTPServerMetrics struct {
	registry *prometheus.Registry

	requestTotal    *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
	requestInFlight prometheus.Gauge

	lettersGeneratedTotal *prometheus.CounterVec
	revisionFallbackTotal *prometheus.CounterVec
	generationDuration    *prometheus.HistogramVec
	documentBytes         *prometheus.HistogramVec
	downloadsTotal        *prometheus.CounterVec
	rateLimitedTotal      *prometheus.CounterVec
}

func NewHTTPServerMetrics(service string) *HTTPServerMetrics {
	registry := prometheus.NewRegistry()

	requestTotal := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "lr",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total HTTP requests processed.",
		},
		[]string{"service", "method", "path", "status"},
	)
	requestDuration := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "lr",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request duration in seconds.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"service", "method", "path"},
	)
	requestInFlight := prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "lr",
			Subsystem: "http",
			Name:      "in_flight_requests",
			Help:      "Number of in-flight HTTP requests.",
			ConstLabels: prometheus.Labels{
				"service": service,
			},
		},
	)
	lettersGeneratedTotal := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "lr",
			Subsystem: "letters",
			Name:      "generated_total",
			Help:      "Total letters generated, by organism, case and revision outcome.",
		},
		[]string{"service", "organism", "case", "degraded"},
	)
	revisionFallbackTotal := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "lr",
			Subsystem: "letters",
			Name:      "revision_fallback_total",
			Help:      "Total generations where the external revision failed and the deterministic draft was used.",
		},
		[]string{"service", "organism"},
	)
	generationDuration := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "lr",
			Subsystem: "letters",
			Name:      "generation_duration_seconds",
			Help:      "End-to-end letter generation duration in seconds.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"service", "organism"},
	)
	documentBytes := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "lr",
			Subsystem: "letters",
			Name:      "document_bytes",
			Help:      "Size distribution of rendered documents.",
			Buckets:   []float64{8 << 10, 16 << 10, 32 << 10, 64 << 10, 128 << 10, 256 << 10},
		},
		[]string{"service"},
	)
	downloadsTotal := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "lr",
			Subsystem: "letters",
			Name:      "downloads_total",
			Help:      "Total one-time document downloads by outcome.",
		},
		[]string{"service", "status"},
	)
	rateLimitedTotal := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "lr",
			Subsystem: "http",
			Name:      "rate_limited_total",
			Help:      "Total requests rejected by the rate limiter.",
		},
		[]string{"service", "path"},
	)

	registry.MustRegister(
		requestTotal,
		requestDuration,
		requestInFlight,
		lettersGeneratedTotal,
		revisionFallbackTotal,
		generationDuration,
		documentBytes,
		downloadsTotal,
		rateLimitedTotal,
	)

	return &HTTPServerMetrics{
		registry:              registry,
		requestTotal:          requestTotal,
		requestDuration:       requestDuration,
		requestInFlight:       requestInFlight,
		lettersGeneratedTotal: lettersGeneratedTotal,
		revisionFallbackTotal: revisionFallbackTotal,
		generationDuration:    generationDuration,
		documentBytes:         documentBytes,
		downloadsTotal:        downloadsTotal,
		rateLimitedTotal:      rateLimitedTotal,
	}
}

func (m *HTTPServerMetrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

func (m *HTTPServerMetrics) Middleware(service string, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		path := normalizePath(r.URL.Path)
		recorder := &statusRecorder{
			ResponseWriter: w,
			statusCode:     http.StatusOK,
		}

		m.requestInFlight.Inc()
		defer m.requestInFlight.Dec()

		next.ServeHTTP(recorder, r)

		m.requestTotal.WithLabelValues(
			service,
			r.Method,
			path,
			strconv.Itoa(recorder.statusCode),
		).Inc()
		m.requestDuration.WithLabelValues(service, r.Method, path).Observe(time.Since(start).Seconds())
	})
}

func normalizePath(path string) string {
	switch {
	case strings.HasPrefix(path, "/v1/documents/"):
		return "/v1/documents/{document_id}"
	case strings.HasPrefix(path, "/v1/letters/fields/"):
		return "/v1/letters/fields/{case_id}"
	default:
		return path
	}
}

func (m *HTTPServerMetrics) RecordLetterGenerated(service, organism, caseID string, degraded bool, size int, duration time.Duration) {
	m.lettersGeneratedTotal.WithLabelValues(service, organism, caseID, strconv.FormatBool(degraded)).Inc()
	m.generationDuration.WithLabelValues(service, organism).Observe(duration.Seconds())
	if size > 0 {
		m.documentBytes.WithLabelValues(service).Observe(float64(size))
	}
	if degraded {
		m.revisionFallbackTotal.WithLabelValues(service, organism).Inc()
	}
}

func (m *HTTPServerMetrics) RecordDownload(service, status string) {
	if status == "" {
		status = "unknown"
	}
	m.downloadsTotal.WithLabelValues(service, status).Inc()
}

func (m *HTTPServerMetrics) RecordRateLimited(service, path string) {
	m.rateLimitedTotal.WithLabelValues(service, normalizePath(path)).Inc()
}

type statusRecorder struct {
	http.ResponseWriter
	statusCode int
}

func (w *statusRecorder) WriteHeader(statusCode int) {
	w.statusCode = statusCode
	w.ResponseWriter.WriteHeader(statusCode)
}

func (w *statusRecorder) Flush() {
	flusher, ok := w.ResponseWriter.(http.Flusher)
	if ok {
		flusher.Flush()
	}
}

func (w *statusRecorder) Hijack() (net.Conn, *bufio.ReadWriter, error) {
	hijacker, ok := w.ResponseWriter.(http.Hijacker)
	if !ok {
		return nil, nil, fmt.Errorf("response writer does not implement http.Hijacker")
	}
	return hijacker.Hijack()
}

func (w *statusRecorder) Push(target string, opts *http.PushOptions) error {
	pusher, ok := w.ResponseWriter.(http.Pusher)
	if !ok {
		return http.ErrNotSupported
	}
	return pusher.Push(target, opts)
}
