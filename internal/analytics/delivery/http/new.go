package http

import (
	"customer-support-agent/internal/analytics"
	"customer-support-agent/pkg/log"
)

// Reader returns the current analytics totals.
type Reader interface {
	Snapshot() analytics.Snapshot
}

type handler struct {
	l      log.Logger
	totals Reader
}

// New creates a new HTTP handler for analytics.
func New(l log.Logger, totals Reader) *handler {
	return &handler{
		l:      l,
		totals: totals,
	}
}
