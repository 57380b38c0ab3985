// Package analytics counts pipeline outcomes for dashboards and the /metrics endpoint.
package analytics

import (
	"context"
	"sync"

	"github.com/prometheus/client_golang/prometheus"

	"customer-support-agent/internal/model"
)

// Snapshot is a point-in-time copy of the in-process totals.
type Snapshot struct {
	Requests    int                           `json:"requests"`
	Degraded    int                           `json:"degraded"`
	Intents     map[model.Intent]int          `json:"intents"`
	Sentiments  map[model.Sentiment]int       `json:"sentiments"`
	Escalations map[model.EscalationLevel]int `json:"escalations"`
	Flagged     int                           `json:"flagged"`
}

// Analytics is a pipeline observer.
type Analytics struct {
	intents     *prometheus.CounterVec
	sentiments  *prometheus.CounterVec
	escalations *prometheus.CounterVec

	mu     sync.Mutex
	totals Snapshot
}

// New registers the analytics counters on reg.
func New(reg prometheus.Registerer) *Analytics {
	intents := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "support_intent_total",
		Help: "Classified messages by intent",
	}, []string{"intent"})
	sentiments := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "support_sentiment_total",
		Help: "Analyzed messages by sentiment",
	}, []string{"sentiment"})
	escalations := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "support_escalations_total",
		Help: "Escalation decisions by level",
	}, []string{"level"})

	reg.MustRegister(intents, sentiments, escalations)

	return &Analytics{
		intents:     intents,
		sentiments:  sentiments,
		escalations: escalations,
		totals:      emptySnapshot(),
	}
}

// Observe records one finished request.
func (a *Analytics) Observe(_ context.Context, pc *model.PipelineContext) {
	intent := pc.Intent.Value
	mood := pc.Sentiment.Value.Sentiment
	level := pc.Escalation.Value.Level

	a.intents.WithLabelValues(string(intent)).Inc()
	a.sentiments.WithLabelValues(string(mood)).Inc()
	if pc.Escalation.Value.ShouldEscalate {
		a.escalations.WithLabelValues(string(level)).Inc()
	}

	a.mu.Lock()
	defer a.mu.Unlock()
	a.totals.Requests++
	a.totals.Intents[intent]++
	a.totals.Sentiments[mood]++
	if pc.Escalation.Value.ShouldEscalate {
		a.totals.Escalations[level]++
	}
	if pc.Degraded() {
		a.totals.Degraded++
	}
	if len(pc.Verdict.Value.SafetyFlags) > 0 {
		a.totals.Flagged++
	}
}

// Snapshot returns a copy of the totals.
func (a *Analytics) Snapshot() Snapshot {
	a.mu.Lock()
	defer a.mu.Unlock()

	out := a.totals
	out.Intents = make(map[model.Intent]int, len(a.totals.Intents))
	for k, v := range a.totals.Intents {
		out.Intents[k] = v
	}
	out.Sentiments = make(map[model.Sentiment]int, len(a.totals.Sentiments))
	for k, v := range a.totals.Sentiments {
		out.Sentiments[k] = v
	}
	out.Escalations = make(map[model.EscalationLevel]int, len(a.totals.Escalations))
	for k, v := range a.totals.Escalations {
		out.Escalations[k] = v
	}
	return out
}

func emptySnapshot() Snapshot {
	return Snapshot{
		Intents:     make(map[model.Intent]int),
		Sentiments:  make(map[model.Sentiment]int),
		Escalations: make(map[model.EscalationLevel]int),
	}
}
