package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"customer-support-agent/internal/chat"
	"customer-support-agent/internal/chat/repository"
	"customer-support-agent/internal/model"
	"customer-support-agent/internal/pipeline"
)

// SendMessage runs the pipeline for one message and records both sides in the history.
// A bare yes or no while an escalation is pending answers the escalation instead.
func (uc *implUseCase) SendMessage(ctx context.Context, input chat.MessageInput) (chat.MessageOutput, error) {
	if input.SessionID == "" || input.UserID == "" {
		return chat.MessageOutput{}, fmt.Errorf("%w: session_id and user_id", chat.ErrMissingField)
	}
	if strings.TrimSpace(input.Message) == "" {
		return chat.MessageOutput{}, fmt.Errorf("%w: message is empty", chat.ErrInvalidMessage)
	}

	sess, err := uc.getOwned(ctx, input.SessionID, input.UserID)
	if err != nil {
		return chat.MessageOutput{}, err
	}

	if !uc.limiter.Allow(input.SessionID) {
		uc.l.Warnf(ctx, "internal.chat.usecase.SendMessage: session=%s rate limited", input.SessionID)
		return chat.MessageOutput{}, chat.ErrRateLimited
	}

	received := time.Now()
	if sess.EscalationStatus.Pending() {
		if confirmed, ok := parseReply(input.Message); ok {
			return uc.answerEscalation(ctx, input, received, confirmed)
		}
	}

	channel := input.Channel
	if channel == "" {
		channel = sess.Channel
	}
	meta := map[string]string{"channel": channel}
	for k, v := range input.Metadata {
		meta[k] = v
	}

	pc, err := uc.pipeline.Process(ctx, model.Request{
		Text:       input.Message,
		UserID:     input.UserID,
		SessionID:  input.SessionID,
		Metadata:   meta,
		ReceivedAt: received,
	})
	if err != nil {
		var inputErr *pipeline.InputError
		if errors.As(err, &inputErr) {
			return chat.MessageOutput{}, fmt.Errorf("%w: %v", chat.ErrInvalidMessage, inputErr.Err)
		}
		uc.l.Errorf(ctx, "internal.chat.usecase.SendMessage: pipeline.Process: %v", err)
		return chat.MessageOutput{}, err
	}

	uc.mu.Lock()
	defer uc.mu.Unlock()

	// the session may have ended while the pipeline ran
	sess, err = uc.repo.GetSession(ctx, input.SessionID)
	if err != nil {
		return chat.MessageOutput{}, uc.mapRepoError(err)
	}
	uc.syncEscalation(ctx, &sess)

	reply := pc.Reply()
	if d := pc.Escalation.Value; d.ShouldEscalate {
		switch {
		case sess.EscalationStatus.Pending():
			reply = chat.MessageStillWaiting
		case sess.EscalationStatus != model.EscalationStatusEscalated:
			if _, err := uc.escalator.Open(ctx, sess.ID, d); err != nil {
				uc.l.Warnf(ctx, "internal.chat.usecase.SendMessage: escalator.Open: %v", err)
			} else {
				sess.EscalationStatus = model.EscalationStatusAwaitingAgent
			}
		}
	}
	reply = withNotice(&sess, reply)

	metadata := newMessageMetadata(pc, sess.EscalationStatus)
	now := time.Now()
	sess.History = append(sess.History,
		model.HistoryEntry{Role: model.RoleUser, Content: input.Message, Timestamp: received},
		model.HistoryEntry{Role: model.RoleAgent, Content: reply, Timestamp: now, Metadata: &metadata},
	)
	sess.MessageCount++
	sess.LastActivity = now

	if err := uc.repo.UpdateSession(ctx, sess); err != nil {
		return chat.MessageOutput{}, uc.mapRepoError(err)
	}

	return chat.MessageOutput{
		SessionID:     sess.ID,
		AgentResponse: reply,
		MessageCount:  sess.MessageCount,
		Timestamp:     now,
		Metadata:      metadata,
	}, nil
}

// getOwned loads a session and checks that userID owns it.
func (uc *implUseCase) getOwned(ctx context.Context, sessionID, userID string) (model.Session, error) {
	sess, err := uc.repo.GetSession(ctx, sessionID)
	if err != nil {
		return model.Session{}, uc.mapRepoError(err)
	}
	if sess.UserID != userID {
		return model.Session{}, chat.ErrUserMismatch
	}
	return sess, nil
}

func (uc *implUseCase) mapRepoError(err error) error {
	if errors.Is(err, repository.ErrNotFound) {
		return chat.ErrSessionNotFound
	}
	return err
}

func newMessageMetadata(pc *model.PipelineContext, status model.EscalationStatus) model.MessageMetadata {
	return model.MessageMetadata{
		RequestID:        pc.Request.ID,
		Intent:           pc.Intent.Value,
		Category:         pc.Category.Value,
		Sentiment:        pc.Sentiment.Value.Sentiment,
		Urgency:          pc.Sentiment.Value.Urgency,
		EscalationStatus: status,
		EscalationLevel:  pc.Escalation.Value.Level,
		EscalationReason: pc.Escalation.Value.Reason,
		Summary:          pc.Verdict.Value.Summary,
		SafetyFlags:      pc.Verdict.Value.SafetyFlags,
		Degraded:         pc.Degraded(),
		Trace:            pc.Trace,
	}
}
