// Package memory stores chat sessions in an in-process LRU with an idle TTL.
package memory

import (
	"context"
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"customer-support-agent/internal/chat/repository"
	"customer-support-agent/internal/model"
	"customer-support-agent/pkg/log"
)

type implRepository struct {
	l        log.Logger
	mu       sync.Mutex
	sessions *expirable.LRU[string, model.Session]
	evicted  []func(sessionID string)
}

var _ repository.SessionRepository = (*implRepository)(nil)

// Option configures the store.
type Option func(*implRepository)

// WithOnEvict registers fn to run with the id of each session that leaves the store.
// fn runs under the store's lock and must not call back into the repository.
func WithOnEvict(fn func(sessionID string)) Option {
	return func(r *implRepository) {
		r.evicted = append(r.evicted, fn)
	}
}

// New creates a session store holding at most size sessions, each dropped after ttl without activity.
func New(l log.Logger, size int, ttl time.Duration, opts ...Option) repository.SessionRepository {
	r := &implRepository{l: l}
	for _, opt := range opts {
		opt(r)
	}
	r.sessions = expirable.NewLRU[string, model.Session](size, r.onEvict, ttl)
	return r
}

func (r *implRepository) onEvict(id string, s model.Session) {
	r.l.Debugf(context.Background(), "internal.chat.repository.memory.onEvict: session %s dropped after %d messages", id, s.MessageCount)
	for _, fn := range r.evicted {
		fn(id)
	}
}
