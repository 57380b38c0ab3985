package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// HTTPError is an error that carries the response code and HTTP status for delivery layers.
type HTTPError struct {
	Code       int
	Message    string
	StatusCode int
}

// NewHTTPError builds an HTTPError. Codes in the HTTP status range double as the status,
// anything else is reported as 400.
func NewHTTPError(code int, msg string) *HTTPError {
	status := http.StatusBadRequest
	if code >= 400 && code < 600 {
		status = code
	}
	return &HTTPError{Code: code, Message: msg, StatusCode: status}
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("%d: %s", e.Code, e.Message)
}

var (
	ErrBadRequest          = NewHTTPError(http.StatusBadRequest, "bad request")
	ErrNotFound            = NewHTTPError(http.StatusNotFound, "not found")
	ErrTooManyRequests     = NewHTTPError(http.StatusTooManyRequests, "too many requests")
	ErrInternalServerError = NewHTTPError(http.StatusInternalServerError, "internal server error")
)

// AsHTTPError reports whether err wraps an *HTTPError.
func AsHTTPError(err error) (*HTTPError, bool) {
	var he *HTTPError
	if errors.As(err, &he) {
		return he, true
	}
	return nil, false
}
