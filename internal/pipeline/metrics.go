package pipeline

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"customer-support-agent/internal/model"
)

// Request outcomes used as the metrics label.
const (
	OutcomeOK       = "ok"
	OutcomeDegraded = "degraded"
	OutcomeRejected = "rejected"
)

// Metrics holds Prometheus metrics for pipeline observability. A nil *Metrics records nothing.
type Metrics struct {
	RequestsTotal *prometheus.CounterVec   // Requests by outcome
	StageDuration *prometheus.HistogramVec // Stage latency
	StageFailures *prometheus.CounterVec   // Stage failures by kind
}

// NewMetrics creates and registers the pipeline metrics.
// The registerer parameter allows flexible registration (e.g., global registry, test registry).
func NewMetrics(reg prometheus.Registerer) *Metrics {
	requests := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "support_pipeline_requests_total",
		Help: "Total number of pipeline requests by outcome",
	}, []string{"outcome"})

	duration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "support_stage_duration_seconds",
		Help:    "Pipeline stage latency in seconds",
		Buckets: prometheus.ExponentialBuckets(0.0005, 4, 10),
	}, []string{"stage"})

	failures := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "support_stage_failures_total",
		Help: "Total number of stage failures replaced by their default",
	}, []string{"stage", "kind"})

	reg.MustRegister(requests, duration, failures)

	return &Metrics{
		RequestsTotal: requests,
		StageDuration: duration,
		StageFailures: failures,
	}
}

func (m *Metrics) observeRequest(outcome string) {
	if m == nil {
		return
	}
	m.RequestsTotal.WithLabelValues(outcome).Inc()
}

func (m *Metrics) observeStage(stage model.StageName, d time.Duration, err error) {
	if m == nil {
		return
	}
	m.StageDuration.WithLabelValues(string(stage)).Observe(d.Seconds())
	if err != nil {
		m.StageFailures.WithLabelValues(string(stage), failureKind(err)).Inc()
	}
}
