package chat

import "errors"

var (
	ErrSessionNotFound     = errors.New("session not found")
	ErrSessionExists       = errors.New("session belongs to another user")
	ErrUserMismatch        = errors.New("user does not own this session")
	ErrMissingField        = errors.New("required field is missing")
	ErrInvalidMessage      = errors.New("invalid message")
	ErrRateLimited         = errors.New("rate limit exceeded")
	ErrNoPendingEscalation = errors.New("no pending escalation for session")
	ErrEscalationResolved  = errors.New("escalation already resolved")
)
