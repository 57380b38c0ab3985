package repository

import (
	"context"

	"customer-support-agent/internal/model"
)

//go:generate mockery --name SessionRepository
type SessionRepository interface {
	CreateSession(ctx context.Context, opt CreateSessionOptions) (model.Session, error)
	// GetSession returns ErrNotFound when the session does not exist or has expired.
	GetSession(ctx context.Context, id string) (model.Session, error)
	// UpdateSession stores s and restarts its idle timer.
	UpdateSession(ctx context.Context, s model.Session) error
	DeleteSession(ctx context.Context, id string) error
	ListSessions(ctx context.Context) ([]model.Session, error)
}
