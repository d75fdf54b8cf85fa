// Package metrics provides observability for the verification module.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics tracks verification throughput, outcomes, and score shape.
type Metrics struct {
	// Decisions by outcome band
	Decisions *prometheus.CounterVec

	// Per-field score distribution
	FieldScore *prometheus.HistogramVec

	// Full verification latency including persistence
	VerifyLatency prometheus.Histogram
}

// New creates a Metrics instance with all verification metrics registered.
func New() *Metrics {
	return &Metrics{
		Decisions: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "idverify_verification_decisions_total",
			Help: "Total verification decisions by outcome",
		}, []string{"decision"}),

		FieldScore: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "idverify_verification_field_score",
			Help:    "Distribution of per-field similarity scores",
			Buckets: prometheus.LinearBuckets(0, 0.1, 11),
		}, []string{"field"}),

		VerifyLatency: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "idverify_verification_duration_seconds",
			Help:    "Duration of full verification including persistence",
			Buckets: []float64{0.001, 0.0025, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		}),
	}
}

// IncrementDecision records a verification outcome.
func (m *Metrics) IncrementDecision(decision string) {
	if m != nil {
		m.Decisions.WithLabelValues(decision).Inc()
	}
}

// ObserveFieldScore records a single field's similarity score.
func (m *Metrics) ObserveFieldScore(field string, score float64) {
	if m != nil {
		m.FieldScore.WithLabelValues(field).Observe(score)
	}
}

// ObserveVerifyLatency records the total verification duration.
func (m *Metrics) ObserveVerifyLatency(d time.Duration) {
	if m != nil {
		m.VerifyLatency.Observe(d.Seconds())
	}
}
