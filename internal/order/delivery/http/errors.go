package http

import (
	"errors"
	"net/http"

	"customer-support-agent/internal/order"
	pkgErrors "customer-support-agent/pkg/errors"
)

// mapError translates use-case errors into HTTP errors from pkg/errors.
// Unknown errors become an internal error.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, order.ErrOrderNotFound):
		return pkgErrors.NewHTTPError(http.StatusNotFound, "order not found")
	case errors.Is(err, order.ErrInvalidOrderID):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, "order id must look like ORD12345")
	default:
		return pkgErrors.ErrInternalServerError
	}
}
