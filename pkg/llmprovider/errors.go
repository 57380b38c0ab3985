package llmprovider

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/anthropics/anthropic-sdk-go"
	"google.golang.org/genai"

	"customer-support-agent/pkg/openaicompat"
)

var (
	ErrAllProvidersFailed    = errors.New("all providers failed")
	ErrNoProvidersConfigured = errors.New("no providers configured")

	// ErrInvalidRequest is returned for empty requests and for requests a provider rejects as malformed.
	// It is never retried.
	ErrInvalidRequest = errors.New("invalid request")

	ErrProviderTimeout     = errors.New("provider timeout")
	ErrProviderRateLimited = errors.New("provider rate limited")
)

// ProviderError records the provider that failed and how many attempts it got.
type ProviderError struct {
	Provider string
	Attempts int
	Err      error
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("provider %s after %d attempt(s): %v", e.Provider, e.Attempts, e.Err)
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}

// classify tags err with the sentinel matching its cause so callers can test it with errors.Is.
// Errors that match no sentinel are returned unchanged.
func classify(err error) error {
	if err == nil || errors.Is(err, ErrProviderTimeout) || errors.Is(err, ErrProviderRateLimited) || errors.Is(err, ErrInvalidRequest) {
		return err
	}

	var (
		sentinel     error
		genaiErr     genai.APIError
		anthropicErr *anthropic.Error
		compatErr    *openaicompat.APIError
	)
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		sentinel = ErrProviderTimeout
	case errors.As(err, &genaiErr):
		sentinel = statusSentinel(genaiErr.Code)
	case errors.As(err, &anthropicErr):
		sentinel = statusSentinel(anthropicErr.StatusCode)
	case errors.As(err, &compatErr):
		sentinel = statusSentinel(compatErr.StatusCode)
	}
	if sentinel == nil {
		return err
	}
	return fmt.Errorf("%w: %w", sentinel, err)
}

func statusSentinel(status int) error {
	switch status {
	case http.StatusTooManyRequests:
		return ErrProviderRateLimited
	case http.StatusRequestTimeout, http.StatusGatewayTimeout:
		return ErrProviderTimeout
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		return ErrInvalidRequest
	}
	return nil
}
