package model

type EscalationLevel string

const (
	EscalationNone  EscalationLevel = "none"
	EscalationTier1 EscalationLevel = "tier1"
	EscalationTier2 EscalationLevel = "tier2"
)

// EscalationState is the handoff state machine position.
type EscalationState string

const (
	EscalationStateNone      EscalationState = "NONE"
	EscalationStatePending   EscalationState = "PENDING"
	EscalationStateConfirmed EscalationState = "CONFIRMED"
	EscalationStateDeclined  EscalationState = "DECLINED"
)

// EscalationDecision is created once by the decider and never modified.
type EscalationDecision struct {
	ShouldEscalate bool            `json:"should_escalate"`
	Reason         string          `json:"reason,omitempty"`
	Level          EscalationLevel `json:"level"`
	State          EscalationState `json:"state"`
}

// NoEscalation is the zero decision.
func NoEscalation() EscalationDecision {
	return EscalationDecision{Level: EscalationNone, State: EscalationStateNone}
}
