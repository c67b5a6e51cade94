// Package metrics provides Prometheus metrics for the content pipeline.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "contentpipeline"

// Result labels.
const (
	ResultSuccess = "success"
	ResultError   = "error"
)

var (
	// FetchAttemptsTotal counts single HTTP attempts made by the extractor.
	FetchAttemptsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "fetch_attempts_total",
			Help:      "Total number of article fetch attempts",
		},
		[]string{"result"},
	)

	// ExtractionsTotal counts extractions by outcome.
	ExtractionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "extractions_total",
			Help:      "Total number of article extractions",
		},
		[]string{"outcome"},
	)

	// ExtractionDuration measures extraction latency including retries.
	ExtractionDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "extraction_duration_seconds",
			Help:      "Duration of article extractions in seconds",
			Buckets:   []float64{0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30, 60},
		},
		[]string{"outcome"},
	)

	// ContentsTotal counts generated ModifiedContent values.
	ContentsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "contents_total",
			Help:      "Total number of adapted contents",
		},
		[]string{"format"},
	)

	// ReelsTotal counts render requests by template and result.
	ReelsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "reels_total",
			Help:      "Total number of reel render requests",
		},
		[]string{"template", "result"},
	)
)

// RecordFetchAttempt records one HTTP attempt.
func RecordFetchAttempt(result string) {
	FetchAttemptsTotal.WithLabelValues(result).Inc()
}

// RecordExtraction records a finished extraction.
func RecordExtraction(outcome string, seconds float64) {
	ExtractionsTotal.WithLabelValues(outcome).Inc()
	ExtractionDuration.WithLabelValues(outcome).Observe(seconds)
}

// RecordContent records an adapted content.
func RecordContent(format string) {
	ContentsTotal.WithLabelValues(format).Inc()
}

// RecordReel records a render request.
func RecordReel(template, result string) {
	ReelsTotal.WithLabelValues(template, result).Inc()
}

// Handler exposes the default registry.
func Handler() http.Handler {
	return promhttp.Handler()
}
