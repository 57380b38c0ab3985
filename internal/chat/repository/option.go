package repository

import "time"

// CreateSessionOptions describes a new session. An empty ID is generated.
type CreateSessionOptions struct {
	ID      string
	UserID  string
	Channel string
	Now     time.Time
}
