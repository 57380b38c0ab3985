package escalation

import "errors"

var (
	ErrInvalidTransition   = errors.New("invalid escalation transition")
	ErrNotEscalating       = errors.New("decision does not call for escalation")
	ErrNoPendingEscalation = errors.New("no escalation for session")
	ErrEscalationTimeout   = errors.New("escalation timed out")
	ErrHandoffClosed       = errors.New("handoff manager closed")
)
