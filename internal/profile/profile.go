// Package profile keeps a short-lived per-user profile fed by finished pipeline runs.
package profile

import (
	"context"
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"customer-support-agent/internal/lexicon"
	"customer-support-agent/internal/model"
	"customer-support-agent/pkg/log"
)

const (
	IssueBilling   = "billing_issue"
	IssueTechnical = "technical_issue"
	IssueDelivery  = "delivery_issue"

	DefaultSize = 10000
	DefaultTTL  = 24 * time.Hour

	LogPrefixObserve = "internal.profile.Observe"
)

var billingIssueTerms = []string{"charged", "charge", "overcharged", "billed"}

// Profile summarizes one user's recent interactions.
type Profile struct {
	UserID        string                `json:"user_id"`
	Interactions  int                   `json:"interactions"`
	LastIntent    model.Intent          `json:"last_intent"`
	LastSentiment model.Sentiment       `json:"last_sentiment"`
	LastIssue     string                `json:"last_issue,omitempty"`
	LastEscalated model.EscalationLevel `json:"last_escalated,omitempty"`
	LastSeen      time.Time             `json:"last_seen"`
}

// Store is a pipeline observer. Profiles expire after the TTL without activity.
type Store struct {
	l     log.Logger
	mu    sync.Mutex
	cache *expirable.LRU[string, Profile]
}

// NewStore creates a store. Non-positive arguments take the defaults.
func NewStore(l log.Logger, size int, ttl time.Duration) *Store {
	if size <= 0 {
		size = DefaultSize
	}
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Store{
		l:     l,
		cache: expirable.NewLRU[string, Profile](size, nil, ttl),
	}
}

// Observe updates the requesting user's profile. Anonymous requests are ignored.
func (s *Store) Observe(ctx context.Context, pc *model.PipelineContext) {
	uid := pc.Request.UserID
	if uid == "" {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	p, _ := s.cache.Get(uid)
	p.UserID = uid
	p.Interactions++
	p.LastIntent = pc.Intent.Value
	p.LastSentiment = pc.Sentiment.Value.Sentiment
	p.LastSeen = pc.Request.ReceivedAt
	if issue := detectIssue(pc); issue != "" {
		p.LastIssue = issue
	}
	if pc.Escalation.Value.ShouldEscalate {
		p.LastEscalated = pc.Escalation.Value.Level
	}
	s.cache.Add(uid, p)

	s.l.Debugf(ctx, "%s: user=%s interactions=%d issue=%s", LogPrefixObserve, uid, p.Interactions, p.LastIssue)
}

// Get returns the profile for userID.
func (s *Store) Get(userID string) (Profile, bool) {
	return s.cache.Get(userID)
}

// Len returns the number of live profiles.
func (s *Store) Len() int {
	return s.cache.Len()
}

func detectIssue(pc *model.PipelineContext) string {
	text := lexicon.Normalize(pc.Request.Text)
	switch {
	case len(text.Matches(billingIssueTerms)) > 0:
		return IssueBilling
	case pc.Category.Value == model.IntentTechnical:
		return IssueTechnical
	case pc.Order.Value.NotFound:
		return IssueDelivery
	}
	return ""
}
