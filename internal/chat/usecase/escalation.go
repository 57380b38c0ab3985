package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"customer-support-agent/internal/chat"
	"customer-support-agent/internal/escalation"
	"customer-support-agent/internal/model"
)

// ConfirmEscalation resolves the session's pending escalation with the agent's answer.
func (uc *implUseCase) ConfirmEscalation(ctx context.Context, input chat.ConfirmInput) (chat.ConfirmOutput, error) {
	if input.SessionID == "" {
		return chat.ConfirmOutput{}, chat.ErrMissingField
	}

	uc.mu.Lock()
	defer uc.mu.Unlock()

	sess, err := uc.repo.GetSession(ctx, input.SessionID)
	if err != nil {
		return chat.ConfirmOutput{}, uc.mapRepoError(err)
	}

	out, err := uc.escalator.Confirm(ctx, sess.ID, input.Confirmed)
	var resolveErr error
	switch {
	case errors.Is(err, escalation.ErrNoPendingEscalation):
		return chat.ConfirmOutput{}, chat.ErrNoPendingEscalation
	case errors.Is(err, escalation.ErrInvalidTransition):
		resolveErr = chat.ErrEscalationResolved
	case errors.Is(err, escalation.ErrEscalationTimeout):
		// resolved by the timeout, reported as a normal outcome
	case err != nil:
		uc.l.Errorf(ctx, "internal.chat.usecase.ConfirmEscalation: escalator.Confirm: %v", err)
		return chat.ConfirmOutput{}, err
	}

	status, message := outcomeStatus(out)
	if sess.EscalationStatus != status {
		sess.EscalationStatus = status
		sess.Notice = message
		sess.History = append(sess.History, model.HistoryEntry{Role: model.RoleSystem, Content: message, Timestamp: time.Now()})
		if err := uc.repo.UpdateSession(ctx, sess); err != nil {
			return chat.ConfirmOutput{}, uc.mapRepoError(err)
		}
	}

	uc.l.Infof(ctx, "internal.chat.usecase.ConfirmEscalation: session=%s agent=%s status=%s",
		sess.ID, input.AgentID, status)
	return chat.ConfirmOutput{
		SessionID:        sess.ID,
		EscalationStatus: status,
		Message:          message,
		AgentID:          input.AgentID,
	}, resolveErr
}

// answerEscalation handles the customer's yes or no to a pending escalation without
// running the pipeline. "yes" keeps the ticket open for an agent, "no" declines it.
func (uc *implUseCase) answerEscalation(ctx context.Context, input chat.MessageInput, received time.Time, confirmed bool) (chat.MessageOutput, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	sess, err := uc.repo.GetSession(ctx, input.SessionID)
	if err != nil {
		return chat.MessageOutput{}, uc.mapRepoError(err)
	}
	uc.syncEscalation(ctx, &sess)

	reply := chat.MessageAwaitingAgent
	switch {
	case !sess.EscalationStatus.Pending():
		// resolved before the answer arrived, the notice tells the customer how
		reply = ""
	case !confirmed:
		out, err := uc.escalator.Confirm(ctx, sess.ID, false)
		switch {
		case err == nil:
			sess.EscalationStatus = model.EscalationStatusDeclined
			reply = chat.MessageCustomerDeclined
		case errors.Is(err, escalation.ErrNoPendingEscalation):
			sess.EscalationStatus, sess.Notice, reply = model.EscalationStatusFailed, chat.MessageFailed, ""
		case errors.Is(err, escalation.ErrInvalidTransition), errors.Is(err, escalation.ErrEscalationTimeout):
			sess.EscalationStatus, sess.Notice = outcomeStatus(out)
			reply = ""
		default:
			uc.l.Errorf(ctx, "internal.chat.usecase.answerEscalation: escalator.Confirm: %v", err)
			return chat.MessageOutput{}, err
		}
	}
	reply = withNotice(&sess, reply)

	metadata := model.MessageMetadata{
		EscalationStatus: sess.EscalationStatus,
		Summary:          "customer answered the escalation prompt",
		SafetyFlags:      []model.SafetyFlag{},
	}
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

	uc.l.Infof(ctx, "internal.chat.usecase.answerEscalation: session=%s confirmed=%t status=%s",
		sess.ID, confirmed, sess.EscalationStatus)
	return chat.MessageOutput{
		SessionID:     sess.ID,
		AgentResponse: reply,
		MessageCount:  sess.MessageCount,
		Timestamp:     now,
		Metadata:      metadata,
	}, nil
}

var (
	yesReplies = map[string]bool{"yes": true, "y": true, "yeah": true, "yep": true, "sure": true, "ok": true, "okay": true, "yes please": true, "please": true}
	noReplies  = map[string]bool{"no": true, "n": true, "nope": true, "no thanks": true, "no thank you": true, "nah": true}
)

// parseReply recognizes a bare yes or no. ok is false for anything else.
func parseReply(text string) (confirmed, ok bool) {
	t := strings.Join(strings.Fields(strings.ToLower(text)), " ")
	t = strings.Trim(t, ".!?, ")
	switch {
	case yesReplies[t]:
		return true, true
	case noReplies[t]:
		return false, true
	}
	return false, false
}

// withNotice prepends the session's pending notice to reply and clears it.
func withNotice(sess *model.Session, reply string) string {
	notice := sess.Notice
	sess.Notice = ""
	switch {
	case notice == "":
		return reply
	case reply == "":
		return notice
	}
	return notice + "\n\n" + reply
}

// syncEscalation folds a ticket resolved in the background (timeout) into the session
// and queues its message as the session notice. It reports whether the session changed.
// Callers hold uc.mu.
func (uc *implUseCase) syncEscalation(ctx context.Context, sess *model.Session) bool {
	if !sess.EscalationStatus.Pending() {
		return false
	}

	out, ok := uc.escalator.Status(sess.ID)
	if ok && out.State == model.EscalationStatePending {
		return false
	}

	status, message := model.EscalationStatusFailed, chat.MessageFailed
	if ok {
		status, message = outcomeStatus(out)
	}
	sess.EscalationStatus = status
	sess.Notice = message
	sess.History = append(sess.History, model.HistoryEntry{Role: model.RoleSystem, Content: message, Timestamp: time.Now()})
	uc.l.Infof(ctx, "internal.chat.usecase.syncEscalation: session=%s status=%s", sess.ID, status)
	return true
}

func outcomeStatus(out escalation.Outcome) (model.EscalationStatus, string) {
	switch {
	case out.State == model.EscalationStateConfirmed:
		return model.EscalationStatusEscalated, chat.MessageEscalated
	case out.State == model.EscalationStatePending:
		return model.EscalationStatusAwaitingAgent, chat.MessageAwaitingAgent
	case out.TimedOut:
		return model.EscalationStatusFailed, chat.MessageFailed
	default:
		return model.EscalationStatusDeclined, chat.MessageDeclined
	}
}
