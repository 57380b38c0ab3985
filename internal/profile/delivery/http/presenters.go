package http

import (
	"time"

	"customer-support-agent/internal/profile"
)

type profileResp struct {
	UserID        string    `json:"user_id"`
	Interactions  int       `json:"interactions"`
	LastIntent    string    `json:"last_intent"`
	LastSentiment string    `json:"last_sentiment"`
	LastIssue     string    `json:"last_issue,omitempty"`
	LastEscalated string    `json:"last_escalated,omitempty"`
	LastSeen      time.Time `json:"last_seen"`
}

func newProfileResp(p profile.Profile) profileResp {
	return profileResp{
		UserID:        p.UserID,
		Interactions:  p.Interactions,
		LastIntent:    string(p.LastIntent),
		LastSentiment: string(p.LastSentiment),
		LastIssue:     p.LastIssue,
		LastEscalated: string(p.LastEscalated),
		LastSeen:      p.LastSeen,
	}
}
