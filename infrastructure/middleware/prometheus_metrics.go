// Package middleware provides decorators for the engine ports. Each
// decorator wraps a ports.Decoder or ports.Validator and adds one
// operational concern without touching engine logic, so concerns
// compose in any order.
package middleware

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/ahrav/go-metaf/internal/domain"
	"github.com/ahrav/go-metaf/internal/ports"
)

var (
	decodeTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "metaf_decode_total",
		Help: "Total decode attempts by outcome.",
	}, []string{"status"})

	decodeDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "metaf_decode_duration_seconds",
		Help:    "Decode latency distribution.",
		Buckets: prometheus.ExponentialBuckets(1e-6, 4, 10),
	})

	validateTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "metaf_validate_total",
		Help: "Total validations by verdict and failing rule.",
	}, []string{"verdict", "rule"})

	validateDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "metaf_validate_duration_seconds",
		Help:    "Validation latency distribution.",
		Buckets: prometheus.ExponentialBuckets(1e-6, 4, 10),
	})
)

var _ ports.Decoder = (*MetricsDecoder)(nil)

// MetricsDecoder decorates a Decoder with Prometheus counters and a
// latency histogram.
type MetricsDecoder struct{ next ports.Decoder }

// NewMetricsDecoder wraps next with metrics collection.
func NewMetricsDecoder(next ports.Decoder) *MetricsDecoder {
	return &MetricsDecoder{next: next}
}

// Decode delegates to the wrapped decoder and records the outcome.
func (m *MetricsDecoder) Decode(ctx context.Context, raw string) (domain.Report, error) {
	start := time.Now()
	rep, err := m.next.Decode(ctx, raw)
	decodeDuration.Observe(time.Since(start).Seconds())

	status := "ok"
	if err != nil {
		status = "error"
	}
	decodeTotal.WithLabelValues(status).Inc()
	return rep, err
}

var _ ports.Validator = (*MetricsValidator)(nil)

// MetricsValidator decorates a Validator with Prometheus counters and
// a latency histogram. Invalid verdicts are labeled by the failing
// rule so rule-level failure rates are visible per scrape.
type MetricsValidator struct{ next ports.Validator }

// NewMetricsValidator wraps next with metrics collection.
func NewMetricsValidator(next ports.Validator) *MetricsValidator {
	return &MetricsValidator{next: next}
}

// Validate delegates to the wrapped validator and records the verdict.
func (m *MetricsValidator) Validate(ctx context.Context, raw string) domain.ValidationResult {
	start := time.Now()
	res := m.next.Validate(ctx, raw)
	validateDuration.Observe(time.Since(start).Seconds())

	if res.Valid {
		validateTotal.WithLabelValues("valid", "").Inc()
	} else {
		validateTotal.WithLabelValues("invalid", res.RuleID).Inc()
	}
	return res
}
