package observability

import (
	"net/http"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics stores Prometheus collectors for the furnishings batch job.
type Metrics struct {
	registry *prometheus.Registry

	furnishingsCreatedTotal *prometheus.CounterVec
	businessesSkippedTotal  *prometheus.CounterVec
	lettersUploadedTotal    *prometheus.CounterVec
	letterBatchFailedTotal  *prometheus.CounterVec
	externalCallDuration    *prometheus.HistogramVec
}

func NewMetrics() *Metrics {
	registry := prometheus.NewRegistry()

	m := &Metrics{
		registry: registry,
		furnishingsCreatedTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "furnishings_engine",
				Name:      "furnishings_created_total",
				Help:      "Total number of furnishing ledger entries created by channel and notice variant.",
			},
			[]string{"type", "name"},
		),
		businessesSkippedTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "furnishings_engine",
				Name:      "businesses_skipped_total",
				Help:      "Total number of businesses skipped during a run by reason.",
			},
			[]string{"reason"},
		),
		lettersUploadedTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "furnishings_engine",
				Name:      "letters_uploaded_total",
				Help:      "Total number of merged letter batches uploaded by entity category.",
			},
			[]string{"category"},
		),
		letterBatchFailedTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "furnishings_engine",
				Name:      "letter_batch_failed_total",
				Help:      "Total number of letter batch partitions that failed by category and phase.",
			},
			[]string{"category", "phase"},
		),
		externalCallDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: "furnishings_engine",
				Name:      "external_call_duration_seconds",
				Help:      "Duration of outbound calls grouped by collaborator service.",
				Buckets:   prometheus.ExponentialBuckets(0.01, 2, 12),
			},
			[]string{"service"},
		),
	}

	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.furnishingsCreatedTotal,
		m.businessesSkippedTotal,
		m.lettersUploadedTotal,
		m.letterBatchFailedTotal,
		m.externalCallDuration,
	)

	return m
}

func (m *Metrics) Handler() http.Handler {
	if m == nil || m.registry == nil {
		return promhttp.Handler()
	}
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

func (m *Metrics) IncFurnishingCreated(furnishingType string, furnishingName string) {
	if m == nil {
		return
	}
	m.furnishingsCreatedTotal.WithLabelValues(
		normalizeLabel(furnishingType),
		normalizeLabel(furnishingName),
	).Inc()
}

func (m *Metrics) IncBusinessSkipped(reason string) {
	if m == nil {
		return
	}
	m.businessesSkippedTotal.WithLabelValues(normalizeLabel(reason)).Inc()
}

func (m *Metrics) IncLetterUploaded(category string) {
	if m == nil {
		return
	}
	m.lettersUploadedTotal.WithLabelValues(normalizeLabel(category)).Inc()
}

func (m *Metrics) IncLetterBatchFailed(category string, phase string) {
	if m == nil {
		return
	}
	m.letterBatchFailedTotal.WithLabelValues(normalizeLabel(category), normalizeLabel(phase)).Inc()
}

func (m *Metrics) ObserveExternalCall(service string, duration time.Duration) {
	if m == nil {
		return
	}
	seconds := duration.Seconds()
	if seconds < 0 {
		seconds = 0
	}
	m.externalCallDuration.WithLabelValues(normalizeLabel(service)).Observe(seconds)
}

func normalizeLabel(value string) string {
	normalized := strings.ToLower(strings.TrimSpace(value))
	if normalized == "" {
		return "unknown"
	}
	return normalized
}
