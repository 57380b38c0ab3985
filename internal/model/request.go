package model

import (
	"strings"
	"time"
)

// Request is one inbound customer message. It is never mutated after creation.
type Request struct {
	ID         string
	Text       string
	UserID     string
	SessionID  string
	Metadata   map[string]string
	ReceivedAt time.Time
}

// Trimmed returns the message text without surrounding whitespace.
func (r Request) Trimmed() string {
	return strings.TrimSpace(r.Text)
}

// Channel returns metadata["channel"] or "api".
func (r Request) Channel() string {
	if c := r.Metadata["channel"]; c != "" {
		return c
	}
	return "api"
}
