package http

import (
	"customer-support-agent/internal/profile"
	"customer-support-agent/pkg/log"
)

// Reader looks up stored profiles.
type Reader interface {
	Get(userID string) (profile.Profile, bool)
}

type handler struct {
	l        log.Logger
	profiles Reader
}

// New creates a new HTTP handler for user profiles.
func New(l log.Logger, profiles Reader) *handler {
	return &handler{
		l:        l,
		profiles: profiles,
	}
}
