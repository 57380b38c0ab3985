package chat

import "context"

//go:generate mockery --name UseCase
type UseCase interface {
	// Start opens a session. Starting an existing session id for the same user returns it.
	Start(ctx context.Context, input StartInput) (StartOutput, error)
	SendMessage(ctx context.Context, input MessageInput) (MessageOutput, error)
	History(ctx context.Context, sessionID string) (HistoryOutput, error)
	End(ctx context.Context, sessionID string) (EndOutput, error)
	ActiveSessions(ctx context.Context) (ActiveOutput, error)
	// ConfirmEscalation is the human-in-the-loop channel for a pending escalation.
	ConfirmEscalation(ctx context.Context, input ConfirmInput) (ConfirmOutput, error)
}
