package memory

import (
	"context"
	"slices"
	"strings"

	"github.com/google/uuid"

	"customer-support-agent/internal/chat/repository"
	"customer-support-agent/internal/model"
)

func (r *implRepository) CreateSession(ctx context.Context, opt repository.CreateSessionOptions) (model.Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	id := opt.ID
	if id == "" {
		id = uuid.NewString()
	}
	if r.sessions.Contains(id) {
		return model.Session{}, repository.ErrAlreadyExists
	}

	s := model.Session{
		ID:               id,
		UserID:           opt.UserID,
		Channel:          opt.Channel,
		CreatedAt:        opt.Now,
		LastActivity:     opt.Now,
		EscalationStatus: model.EscalationStatusNone,
	}
	r.sessions.Add(id, s)
	return s, nil
}

func (r *implRepository) GetSession(ctx context.Context, id string) (model.Session, error) {
	s, ok := r.sessions.Get(id)
	if !ok {
		return model.Session{}, repository.ErrNotFound
	}
	s.History = slices.Clone(s.History)
	return s, nil
}

func (r *implRepository) UpdateSession(ctx context.Context, s model.Session) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.sessions.Contains(s.ID) {
		return repository.ErrNotFound
	}
	s.History = slices.Clone(s.History)
	r.sessions.Add(s.ID, s)
	return nil
}

func (r *implRepository) DeleteSession(ctx context.Context, id string) error {
	if !r.sessions.Remove(id) {
		return repository.ErrNotFound
	}
	return nil
}

// ListSessions returns live sessions ordered by creation time, then id.
func (r *implRepository) ListSessions(ctx context.Context) ([]model.Session, error) {
	out := r.sessions.Values()
	slices.SortFunc(out, func(a, b model.Session) int {
		if c := a.CreatedAt.Compare(b.CreatedAt); c != 0 {
			return c
		}
		return strings.Compare(a.ID, b.ID)
	})
	return out, nil
}
