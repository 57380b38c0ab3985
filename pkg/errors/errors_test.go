package errors_test

import (
	"fmt"
	"net/http"
	"testing"

	pkgErrors "customer-support-agent/pkg/errors"
)

func TestNewHTTPError(t *testing.T) {
	tests := []struct {
		name       string
		code       int
		wantStatus int
	}{
		{name: "http status code", code: 404, wantStatus: http.StatusNotFound},
		{name: "business code", code: 10001, wantStatus: http.StatusBadRequest},
		{name: "server error", code: 503, wantStatus: http.StatusServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := pkgErrors.NewHTTPError(tt.code, "msg")
			if e.StatusCode != tt.wantStatus {
				t.Errorf("expected status %d, got %d", tt.wantStatus, e.StatusCode)
			}
		})
	}
}

func TestAsHTTPError(t *testing.T) {
	wrapped := fmt.Errorf("outer: %w", pkgErrors.ErrNotFound)
	he, ok := pkgErrors.AsHTTPError(wrapped)
	if !ok || he.StatusCode != http.StatusNotFound {
		t.Fatalf("expected wrapped not found error, got %v", he)
	}
	if _, ok := pkgErrors.AsHTTPError(fmt.Errorf("plain")); ok {
		t.Error("plain error must not match")
	}
}
