package http

import (
	"customer-support-agent/internal/order"
	"customer-support-agent/pkg/log"
)

type handler struct {
	l  log.Logger
	uc order.UseCase
}

// New creates a new HTTP handler for the order domain.
func New(l log.Logger, uc order.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
