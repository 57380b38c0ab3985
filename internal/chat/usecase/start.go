package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"customer-support-agent/internal/chat"
	"customer-support-agent/internal/chat/repository"
)

// Start creates a session, or resumes the caller's existing one when the id is taken by them.
func (uc *implUseCase) Start(ctx context.Context, input chat.StartInput) (chat.StartOutput, error) {
	userID := input.UserID
	if userID == "" {
		userID = uuid.NewString()
	}
	channel := input.Channel
	if channel == "" {
		channel = chat.DefaultChannel
	}

	uc.mu.Lock()
	defer uc.mu.Unlock()

	if input.SessionID != "" {
		existing, err := uc.repo.GetSession(ctx, input.SessionID)
		switch {
		case err == nil && existing.UserID != userID:
			return chat.StartOutput{}, chat.ErrSessionExists
		case err == nil:
			return chat.StartOutput{SessionID: existing.ID, UserID: existing.UserID, CreatedAt: existing.CreatedAt, Resumed: true}, nil
		case !errors.Is(err, repository.ErrNotFound):
			uc.l.Errorf(ctx, "internal.chat.usecase.Start: repo.GetSession: %v", err)
			return chat.StartOutput{}, err
		}
	}

	sess, err := uc.repo.CreateSession(ctx, repository.CreateSessionOptions{
		ID:      input.SessionID,
		UserID:  userID,
		Channel: channel,
		Now:     time.Now(),
	})
	if err != nil {
		uc.l.Errorf(ctx, "internal.chat.usecase.Start: repo.CreateSession: %v", err)
		return chat.StartOutput{}, err
	}

	uc.l.Infof(ctx, "internal.chat.usecase.Start: session=%s user=%s channel=%s", sess.ID, sess.UserID, sess.Channel)
	return chat.StartOutput{SessionID: sess.ID, UserID: sess.UserID, CreatedAt: sess.CreatedAt}, nil
}
