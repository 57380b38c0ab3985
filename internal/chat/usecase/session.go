package usecase

import (
	"context"
	"time"

	"customer-support-agent/internal/chat"
)

// History returns the conversation so far, folding in any escalation that resolved meanwhile.
func (uc *implUseCase) History(ctx context.Context, sessionID string) (chat.HistoryOutput, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	sess, err := uc.repo.GetSession(ctx, sessionID)
	if err != nil {
		return chat.HistoryOutput{}, uc.mapRepoError(err)
	}
	if uc.syncEscalation(ctx, &sess) {
		if err := uc.repo.UpdateSession(ctx, sess); err != nil {
			return chat.HistoryOutput{}, uc.mapRepoError(err)
		}
	}

	return chat.HistoryOutput{
		SessionID:        sess.ID,
		UserID:           sess.UserID,
		History:          sess.History,
		MessageCount:     sess.MessageCount,
		EscalationStatus: sess.EscalationStatus,
		CreatedAt:        sess.CreatedAt,
		LastActivity:     sess.LastActivity,
	}, nil
}

// End drops the session together with its rate limiter and any escalation ticket.
func (uc *implUseCase) End(ctx context.Context, sessionID string) (chat.EndOutput, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	sess, err := uc.repo.GetSession(ctx, sessionID)
	if err != nil {
		return chat.EndOutput{}, uc.mapRepoError(err)
	}

	uc.escalator.Forget(sessionID)
	uc.limiter.Forget(sessionID)
	if err := uc.repo.DeleteSession(ctx, sessionID); err != nil {
		return chat.EndOutput{}, uc.mapRepoError(err)
	}

	ended := time.Now()
	uc.l.Infof(ctx, "internal.chat.usecase.End: session=%s messages=%d", sessionID, sess.MessageCount)
	return chat.EndOutput{
		SessionID:     sess.ID,
		TotalMessages: sess.MessageCount,
		CreatedAt:     sess.CreatedAt,
		EndedAt:       ended,
		Duration:      ended.Sub(sess.CreatedAt),
	}, nil
}

// ActiveSessions lists live sessions, oldest first.
func (uc *implUseCase) ActiveSessions(ctx context.Context) (chat.ActiveOutput, error) {
	sessions, err := uc.repo.ListSessions(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "internal.chat.usecase.ActiveSessions: repo.ListSessions: %v", err)
		return chat.ActiveOutput{}, err
	}

	out := chat.ActiveOutput{Sessions: make([]chat.SessionSummary, 0, len(sessions))}
	for _, s := range sessions {
		out.Sessions = append(out.Sessions, chat.SessionSummary{
			SessionID:        s.ID,
			UserID:           s.UserID,
			Channel:          s.Channel,
			MessageCount:     s.MessageCount,
			EscalationStatus: s.EscalationStatus,
			CreatedAt:        s.CreatedAt,
			LastActivity:     s.LastActivity,
		})
	}
	return out, nil
}
