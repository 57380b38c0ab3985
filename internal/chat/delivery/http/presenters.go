package http

import (
	"net/http"
	"strings"
	"time"

	"customer-support-agent/internal/chat"
	"customer-support-agent/internal/model"
	pkgErrors "customer-support-agent/pkg/errors"
)

// --- Request DTOs ---

type startReq struct {
	UserID    string `json:"user_id"`
	SessionID string `json:"session_id"`
	Channel   string `json:"channel"`
}

func (r startReq) toInput() chat.StartInput {
	return chat.StartInput{SessionID: r.SessionID, UserID: r.UserID, Channel: r.Channel}
}

type messageReq struct {
	SessionID string            `json:"session_id" binding:"required"`
	UserID    string            `json:"user_id" binding:"required"`
	Message   string            `json:"message"`
	Metadata  map[string]string `json:"metadata"`
}

func (r messageReq) validate() error {
	if strings.TrimSpace(r.Message) == "" {
		return pkgErrors.NewHTTPError(http.StatusBadRequest, "message must not be empty")
	}
	return nil
}

func (r messageReq) toInput() chat.MessageInput {
	return chat.MessageInput{
		SessionID: r.SessionID,
		UserID:    r.UserID,
		Message:   r.Message,
		Metadata:  r.Metadata,
	}
}

type confirmReq struct {
	SessionID string `json:"session_id" binding:"required"`
	Confirmed *bool  `json:"confirmed"`
	AgentID   string `json:"agent_id"`
}

func (r confirmReq) validate() error {
	if r.Confirmed == nil {
		return pkgErrors.NewHTTPError(http.StatusBadRequest, "confirmed is required")
	}
	return nil
}

func (r confirmReq) toInput() chat.ConfirmInput {
	return chat.ConfirmInput{SessionID: r.SessionID, Confirmed: *r.Confirmed, AgentID: r.AgentID}
}

// --- Response DTOs ---

type startResp struct {
	SessionID string    `json:"session_id"`
	UserID    string    `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
	Resumed   bool      `json:"resumed"`
}

func newStartResp(out chat.StartOutput) startResp {
	return startResp{SessionID: out.SessionID, UserID: out.UserID, CreatedAt: out.CreatedAt, Resumed: out.Resumed}
}

type traceResp struct {
	Stage      string  `json:"stage"`
	DurationMs float64 `json:"duration_ms"`
	Error      string  `json:"error,omitempty"`
	Degraded   bool    `json:"degraded"`
}

type metadataResp struct {
	RequestID        string      `json:"request_id"`
	Intent           string      `json:"intent"`
	Category         string      `json:"category"`
	Sentiment        string      `json:"sentiment"`
	Urgency          string      `json:"urgency"`
	EscalationStatus string      `json:"escalation_status"`
	EscalationLevel  string      `json:"escalation_level"`
	EscalationReason string      `json:"escalation_reason,omitempty"`
	Summary          string      `json:"summary"`
	SafetyFlags      []string    `json:"safety_flags"`
	Degraded         bool        `json:"degraded"`
	Trace            []traceResp `json:"trace,omitempty"`
}

func newMetadataResp(m model.MessageMetadata) metadataResp {
	flags := make([]string, len(m.SafetyFlags))
	for i, f := range m.SafetyFlags {
		flags[i] = string(f)
	}
	trace := make([]traceResp, len(m.Trace))
	for i, t := range m.Trace {
		trace[i] = traceResp{
			Stage:      string(t.Stage),
			DurationMs: float64(t.Duration) / float64(time.Millisecond),
			Error:      t.Error,
			Degraded:   t.Degraded,
		}
	}
	return metadataResp{
		RequestID:        m.RequestID,
		Intent:           string(m.Intent),
		Category:         string(m.Category),
		Sentiment:        string(m.Sentiment),
		Urgency:          string(m.Urgency),
		EscalationStatus: string(m.EscalationStatus),
		EscalationLevel:  string(m.EscalationLevel),
		EscalationReason: m.EscalationReason,
		Summary:          m.Summary,
		SafetyFlags:      flags,
		Degraded:         m.Degraded,
		Trace:            trace,
	}
}

type messageResp struct {
	SessionID     string       `json:"session_id"`
	AgentResponse string       `json:"agent_response"`
	MessageCount  int          `json:"message_count"`
	Timestamp     time.Time    `json:"timestamp"`
	Metadata      metadataResp `json:"metadata"`
}

func newMessageResp(out chat.MessageOutput) messageResp {
	return messageResp{
		SessionID:     out.SessionID,
		AgentResponse: out.AgentResponse,
		MessageCount:  out.MessageCount,
		Timestamp:     out.Timestamp,
		Metadata:      newMetadataResp(out.Metadata),
	}
}

type historyEntryResp struct {
	Role      string        `json:"role"`
	Content   string        `json:"content"`
	Timestamp time.Time     `json:"timestamp"`
	Metadata  *metadataResp `json:"metadata,omitempty"`
}

type historyResp struct {
	SessionID        string             `json:"session_id"`
	UserID           string             `json:"user_id"`
	History          []historyEntryResp `json:"history"`
	MessageCount     int                `json:"message_count"`
	EscalationStatus string             `json:"escalation_status"`
	CreatedAt        time.Time          `json:"created_at"`
	LastActivity     time.Time          `json:"last_activity"`
}

func newHistoryResp(out chat.HistoryOutput) historyResp {
	entries := make([]historyEntryResp, len(out.History))
	for i, e := range out.History {
		entries[i] = historyEntryResp{Role: e.Role, Content: e.Content, Timestamp: e.Timestamp}
		if e.Metadata != nil {
			m := newMetadataResp(*e.Metadata)
			entries[i].Metadata = &m
		}
	}
	return historyResp{
		SessionID:        out.SessionID,
		UserID:           out.UserID,
		History:          entries,
		MessageCount:     out.MessageCount,
		EscalationStatus: string(out.EscalationStatus),
		CreatedAt:        out.CreatedAt,
		LastActivity:     out.LastActivity,
	}
}

type endResp struct {
	SessionID       string    `json:"session_id"`
	TotalMessages   int       `json:"total_messages"`
	CreatedAt       time.Time `json:"created_at"`
	EndedAt         time.Time `json:"ended_at"`
	DurationMinutes float64   `json:"duration_minutes"`
}

func newEndResp(out chat.EndOutput) endResp {
	return endResp{
		SessionID:       out.SessionID,
		TotalMessages:   out.TotalMessages,
		CreatedAt:       out.CreatedAt,
		EndedAt:         out.EndedAt,
		DurationMinutes: out.Duration.Minutes(),
	}
}

type sessionResp struct {
	SessionID        string    `json:"session_id"`
	UserID           string    `json:"user_id"`
	Channel          string    `json:"channel"`
	MessageCount     int       `json:"message_count"`
	EscalationStatus string    `json:"escalation_status"`
	CreatedAt        time.Time `json:"created_at"`
	LastActivity     time.Time `json:"last_activity"`
}

type activeResp struct {
	ActiveSessions int           `json:"active_sessions"`
	Sessions       []sessionResp `json:"sessions"`
}

func newActiveResp(out chat.ActiveOutput) activeResp {
	sessions := make([]sessionResp, len(out.Sessions))
	for i, s := range out.Sessions {
		sessions[i] = sessionResp{
			SessionID:        s.SessionID,
			UserID:           s.UserID,
			Channel:          s.Channel,
			MessageCount:     s.MessageCount,
			EscalationStatus: string(s.EscalationStatus),
			CreatedAt:        s.CreatedAt,
			LastActivity:     s.LastActivity,
		}
	}
	return activeResp{ActiveSessions: len(sessions), Sessions: sessions}
}

type confirmResp struct {
	SessionID        string `json:"session_id"`
	EscalationStatus string `json:"escalation_status"`
	Message          string `json:"message"`
	AgentID          string `json:"agent_id,omitempty"`
}

func newConfirmResp(out chat.ConfirmOutput) confirmResp {
	return confirmResp{
		SessionID:        out.SessionID,
		EscalationStatus: string(out.EscalationStatus),
		Message:          out.Message,
		AgentID:          out.AgentID,
	}
}
