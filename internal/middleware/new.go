package middleware

import (
	"customer-support-agent/pkg/log"
)

// Middleware holds the gin middlewares shared by every route group.
type Middleware struct {
	l              log.Logger
	allowedOrigins []string
}

// New creates the middleware set. An empty allowedOrigins list allows any origin.
func New(l log.Logger, allowedOrigins []string) Middleware {
	return Middleware{
		l:              l,
		allowedOrigins: allowedOrigins,
	}
}
