package escalation

import (
	"fmt"

	"customer-support-agent/internal/model"
)

// Event drives the escalation state machine.
type Event string

const (
	EventEscalate Event = "escalate"
	EventConfirm  Event = "confirm"
	EventDecline  Event = "decline"
	EventTimeout  Event = "timeout"
)

var transitions = map[model.EscalationState]map[Event]model.EscalationState{
	model.EscalationStateNone: {
		EventEscalate: model.EscalationStatePending,
	},
	model.EscalationStatePending: {
		EventConfirm: model.EscalationStateConfirmed,
		EventDecline: model.EscalationStateDeclined,
		EventTimeout: model.EscalationStateDeclined,
	},
}

// Transition returns the next state or ErrInvalidTransition. CONFIRMED and DECLINED are final.
func Transition(from model.EscalationState, event Event) (model.EscalationState, error) {
	if next, ok := transitions[from][event]; ok {
		return next, nil
	}
	return from, fmt.Errorf("%w: %s on %s", ErrInvalidTransition, from, event)
}
