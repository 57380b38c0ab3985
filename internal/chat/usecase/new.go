package usecase

import (
	"context"
	"sync"
	"time"

	"customer-support-agent/internal/chat"
	"customer-support-agent/internal/chat/repository"
	"customer-support-agent/internal/escalation"
	"customer-support-agent/internal/model"
	"customer-support-agent/pkg/log"
)

// Processor runs the support pipeline for one message.
type Processor interface {
	Process(ctx context.Context, req model.Request) (*model.PipelineContext, error)
}

// Escalator tracks human handoff tickets per session.
type Escalator interface {
	Open(ctx context.Context, sessionID string, decision model.EscalationDecision) (escalation.Ticket, error)
	Confirm(ctx context.Context, sessionID string, confirmed bool) (escalation.Outcome, error)
	Status(sessionID string) (escalation.Outcome, bool)
	Forget(sessionID string)
}

// Config tunes the chat use case. Zero values disable rate limiting.
type Config struct {
	RateLimitPerMin int
	MaxSessions     int
	SessionTTL      time.Duration
}

// implUseCase is the private implementation of chat.UseCase.
type implUseCase struct {
	l         log.Logger
	repo      repository.SessionRepository
	pipeline  Processor
	escalator Escalator
	limiter   *rateLimiter

	// mu serializes read-modify-write cycles on sessions.
	mu sync.Mutex
}

var _ chat.UseCase = (*implUseCase)(nil)

// New creates a new chat UseCase implementation.
func New(l log.Logger, repo repository.SessionRepository, pipeline Processor, escalator Escalator, cfg Config) *implUseCase {
	ttl := cfg.SessionTTL
	if ttl <= 0 {
		ttl = chat.DefaultSessionTTL
	}
	size := cfg.MaxSessions
	if size <= 0 {
		size = chat.DefaultMaxSessions
	}
	return &implUseCase{
		l:         l,
		repo:      repo,
		pipeline:  pipeline,
		escalator: escalator,
		limiter:   newRateLimiter(cfg.RateLimitPerMin, size, ttl),
	}
}
