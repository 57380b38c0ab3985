package pipeline

import (
	"context"
	"errors"
	"fmt"
	"time"

	"customer-support-agent/internal/model"
)

var (
	ErrEmptyMessage   = errors.New("message text is empty")
	ErrMessageTooLong = errors.New("message text is too long")
	ErrStagePanic     = errors.New("stage panicked")
)

// InputError rejects a request before any stage runs. It is the only error Process returns.
type InputError struct {
	Field string
	Err   error
}

func (e *InputError) Error() string {
	return fmt.Sprintf("invalid input %s: %v", e.Field, e.Err)
}

func (e *InputError) Unwrap() error {
	return e.Err
}

// StageTimeoutError reports a stage that exceeded its bound.
type StageTimeoutError struct {
	Stage   model.StageName
	Timeout time.Duration
}

func (e *StageTimeoutError) Error() string {
	return fmt.Sprintf("stage %s timed out after %s", e.Stage, e.Timeout)
}

func (e *StageTimeoutError) Unwrap() error {
	return context.DeadlineExceeded
}

// ExternalServiceError wraps a failing collaborator (generation service, order store, corpus).
type ExternalServiceError struct {
	Stage model.StageName
	Err   error
}

func (e *ExternalServiceError) Error() string {
	return fmt.Sprintf("stage %s: %v", e.Stage, e.Err)
}

func (e *ExternalServiceError) Unwrap() error {
	return e.Err
}

// failureKind maps a stage error onto a metrics label.
func failureKind(err error) string {
	var timeout *StageTimeoutError
	switch {
	case errors.As(err, &timeout):
		return FailureTimeout
	case errors.Is(err, ErrStagePanic):
		return FailurePanic
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return FailureCancelled
	default:
		return FailureExternal
	}
}
