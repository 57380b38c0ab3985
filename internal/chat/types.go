package chat

import (
	"time"

	"customer-support-agent/internal/model"
)

// StartInput may carry a caller-chosen session id, as drivers keyed by chat do.
type StartInput struct {
	SessionID string
	UserID    string
	Channel   string
}

type StartOutput struct {
	SessionID string
	UserID    string
	CreatedAt time.Time
	Resumed   bool
}

type MessageInput struct {
	SessionID string
	UserID    string
	Message   string
	Channel   string
	Metadata  map[string]string
}

type MessageOutput struct {
	SessionID     string
	AgentResponse string
	MessageCount  int
	Timestamp     time.Time
	Metadata      model.MessageMetadata
}

type HistoryOutput struct {
	SessionID        string
	UserID           string
	History          []model.HistoryEntry
	MessageCount     int
	EscalationStatus model.EscalationStatus
	CreatedAt        time.Time
	LastActivity     time.Time
}

// SessionSummary is one row of the active session listing.
type SessionSummary struct {
	SessionID        string
	UserID           string
	Channel          string
	MessageCount     int
	EscalationStatus model.EscalationStatus
	CreatedAt        time.Time
	LastActivity     time.Time
}

type ActiveOutput struct {
	Sessions []SessionSummary
}

type EndOutput struct {
	SessionID     string
	TotalMessages int
	CreatedAt     time.Time
	EndedAt       time.Time
	Duration      time.Duration
}

type ConfirmInput struct {
	SessionID string
	Confirmed bool
	AgentID   string
}

type ConfirmOutput struct {
	SessionID        string
	EscalationStatus model.EscalationStatus
	Message          string
	AgentID          string
}
