package pipeline

import (
	"errors"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"

	"customer-support-agent/pkg/log"
)

// Pipeline is safe for concurrent use. Each Process call owns its own PipelineContext.
type Pipeline struct {
	l       log.Logger
	deps    Deps
	cfg     Config
	metrics *Metrics
	tracer  trace.Tracer

	obsMu     sync.RWMutex
	observers []Observer
	closed    bool
	wg        sync.WaitGroup
}

// Option customizes a Pipeline.
type Option func(*Pipeline)

// WithMetrics records stage metrics.
func WithMetrics(m *Metrics) Option {
	return func(p *Pipeline) { p.metrics = m }
}

// WithTracer replaces the global otel tracer.
func WithTracer(t trace.Tracer) Option {
	return func(p *Pipeline) { p.tracer = t }
}

// WithObservers registers post-request observers.
func WithObservers(obs ...Observer) Option {
	return func(p *Pipeline) { p.observers = append(p.observers, obs...) }
}

// New creates a pipeline.
func New(l log.Logger, deps Deps, cfg Config, opts ...Option) (*Pipeline, error) {
	if deps.Classifier == nil || deps.Categorizer == nil || deps.Knowledge == nil || deps.Orders == nil || deps.Planner == nil {
		return nil, errors.New("pipeline: every stage dependency is required")
	}
	if cfg.StageTimeout <= 0 {
		cfg.StageTimeout = DefaultStageTimeout
	}
	if cfg.TopK <= 0 {
		cfg.TopK = DefaultTopK
	}

	p := &Pipeline{
		l:      l,
		deps:   deps,
		cfg:    cfg,
		tracer: otel.Tracer(tracerName),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p, nil
}

// StageTimeout returns the per-stage bound in use.
func (p *Pipeline) StageTimeout() time.Duration {
	return p.cfg.StageTimeout
}
