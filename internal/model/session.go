package model

import "time"

// EscalationStatus is the customer-facing escalation state of a chat session.
type EscalationStatus string

const (
	EscalationStatusNone          EscalationStatus = "none"
	EscalationStatusAwaitingAgent EscalationStatus = "awaiting_agent"
	EscalationStatusEscalated     EscalationStatus = "escalated"
	EscalationStatusDeclined      EscalationStatus = "declined"
	EscalationStatusFailed        EscalationStatus = "escalation_failed"
)

// Pending reports whether a human agent is still being waited for.
func (s EscalationStatus) Pending() bool {
	return s == EscalationStatusAwaitingAgent
}

// Roles of history entries.
const (
	RoleUser   = "user"
	RoleAgent  = "agent"
	RoleSystem = "system"
)

// MessageMetadata describes how the pipeline handled one message.
type MessageMetadata struct {
	RequestID        string           `json:"request_id"`
	Intent           Intent           `json:"intent"`
	Category         Intent           `json:"category"`
	Sentiment        Sentiment        `json:"sentiment"`
	Urgency          Urgency          `json:"urgency"`
	EscalationStatus EscalationStatus `json:"escalation_status"`
	EscalationLevel  EscalationLevel  `json:"escalation_level"`
	EscalationReason string           `json:"escalation_reason,omitempty"`
	Summary          string           `json:"summary"`
	SafetyFlags      []SafetyFlag     `json:"safety_flags"`
	Degraded         bool             `json:"degraded"`
	Trace            []StageTrace     `json:"trace,omitempty"`
}

// HistoryEntry is one line of a conversation.
type HistoryEntry struct {
	Role      string           `json:"role"`
	Content   string           `json:"content"`
	Timestamp time.Time        `json:"timestamp"`
	Metadata  *MessageMetadata `json:"metadata,omitempty"`
}

// Session is a chat conversation between one user and the assistant.
type Session struct {
	ID               string
	UserID           string
	Channel          string
	CreatedAt        time.Time
	LastActivity     time.Time
	MessageCount     int
	EscalationStatus EscalationStatus
	History          []HistoryEntry
	// Notice is prepended to the next reply and then cleared.
	Notice string
}
