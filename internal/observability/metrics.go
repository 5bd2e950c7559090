package observability

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	registerOnce         sync.Once
	httpRequestsTotal    *prometheus.CounterVec
	httpLatencySeconds   *prometheus.HistogramVec
	httpErrorsTotal      *prometheus.CounterVec
	pipelineDuration     *prometheus.HistogramVec
	pipelineFallbacks    *prometheus.CounterVec
	uploadsRejectedTotal *prometheus.CounterVec
	extractionsTotal     *prometheus.CounterVec
	languageCacheLookups *prometheus.CounterVec
)

// RegisterMetrics initialises the Prometheus collectors used by the tutor service.
func RegisterMetrics() {
	registerOnce.Do(func() {
		httpRequestsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "tutor_http_requests_total",
			Help: "Total number of tutor API requests served.",
		}, []string{"method", "route", "status"})

		httpLatencySeconds = prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "tutor_http_latency_seconds",
			Help:    "Latency distribution for tutor API requests.",
			Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30, 60},
		}, []string{"method", "route"})

		httpErrorsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "tutor_http_errors_total",
			Help: "Total number of error responses returned by tutor endpoints.",
		}, []string{"method", "route", "status"})

		pipelineDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "tutor_pipeline_stage_seconds",
			Help:    "Time spent in each stage of the answer pipeline.",
			Buckets: []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30, 60},
		}, []string{"stage"})

		pipelineFallbacks = prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "tutor_fallbacks_total",
			Help: "Number of pipeline stages that degraded to a fallback value.",
		}, []string{"stage"})

		uploadsRejectedTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "tutor_uploads_rejected_total",
			Help: "Uploads rejected at the HTTP boundary.",
		}, []string{"reason"})

		extractionsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "tutor_extractions_total",
			Help: "Document extractions by kind and outcome.",
		}, []string{"kind", "outcome"})

		languageCacheLookups = prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "tutor_language_cache_lookups_total",
			Help: "Language catalogue cache lookups by result.",
		}, []string{"result"})

		prometheus.MustRegister(
			httpRequestsTotal,
			httpLatencySeconds,
			httpErrorsTotal,
			pipelineDuration,
			pipelineFallbacks,
			uploadsRejectedTotal,
			extractionsTotal,
			languageCacheLookups,
		)
	})
}

// HTTPRequests exposes the counter for tutor API requests.
func HTTPRequests() *prometheus.CounterVec {
	RegisterMetrics()
	return httpRequestsTotal
}

// HTTPLatency exposes the latency histogram for tutor API requests.
func HTTPLatency() *prometheus.HistogramVec {
	RegisterMetrics()
	return httpLatencySeconds
}

// HTTPErrors exposes the counter for tutor API error responses.
func HTTPErrors() *prometheus.CounterVec {
	RegisterMetrics()
	return httpErrorsTotal
}

// PipelineStageDuration exposes the per-stage latency histogram.
func PipelineStageDuration() *prometheus.HistogramVec {
	RegisterMetrics()
	return pipelineDuration
}

// PipelineFallbacks exposes the per-stage fallback counter.
func PipelineFallbacks() *prometheus.CounterVec {
	RegisterMetrics()
	return pipelineFallbacks
}

// UploadsRejected exposes the counter for rejected uploads.
func UploadsRejected() *prometheus.CounterVec {
	RegisterMetrics()
	return uploadsRejectedTotal
}

// Extractions exposes the document extraction counter.
func Extractions() *prometheus.CounterVec {
	RegisterMetrics()
	return extractionsTotal
}

// LanguageCacheLookups exposes the language catalogue cache counter.
func LanguageCacheLookups() *prometheus.CounterVec {
	RegisterMetrics()
	return languageCacheLookups
}
