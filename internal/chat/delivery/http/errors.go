package http

import (
	"errors"
	"net/http"

	"customer-support-agent/internal/chat"
	pkgErrors "customer-support-agent/pkg/errors"
)

// mapError translates use-case errors into HTTP errors from pkg/errors.
// Unknown errors become an internal error.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, chat.ErrSessionNotFound):
		return pkgErrors.NewHTTPError(http.StatusNotFound, "session not found")
	case errors.Is(err, chat.ErrUserMismatch):
		return pkgErrors.NewHTTPError(http.StatusForbidden, "session belongs to another user")
	case errors.Is(err, chat.ErrSessionExists):
		return pkgErrors.NewHTTPError(http.StatusConflict, "session id already in use")
	case errors.Is(err, chat.ErrMissingField), errors.Is(err, chat.ErrInvalidMessage):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, chat.ErrRateLimited):
		return pkgErrors.ErrTooManyRequests
	case errors.Is(err, chat.ErrNoPendingEscalation):
		return pkgErrors.NewHTTPError(http.StatusNotFound, "no pending escalation")
	case errors.Is(err, chat.ErrEscalationResolved):
		return pkgErrors.NewHTTPError(http.StatusConflict, "escalation already resolved")
	default:
		return pkgErrors.ErrInternalServerError
	}
}
