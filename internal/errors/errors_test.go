package errors

import (
	"fmt"
	"net/http"
	"testing"
)

func TestErrorIs(t *testing.T) {
	err := NotFound("settings not configured")
	if !Is(err, ErrNotFound) {
		t.Error("expected match on code")
	}
	if Is(err, ErrValidation) {
		t.Error("unexpected match across codes")
	}
}

func TestErrorWrapping(t *testing.T) {
	cause := fmt.Errorf("connection refused")
	err := Wrap(cause, CodeUpstream, "asset search failed")

	if !Is(err, ErrUpstream) {
		t.Error("expected upstream code match")
	}
	if Unwrap(err) != cause {
		t.Error("expected cause to unwrap")
	}
	if err.Error() != "asset search failed: connection refused" {
		t.Errorf("unexpected message: %q", err.Error())
	}
}

func TestWithCause(t *testing.T) {
	cause := fmt.Errorf("boom")
	err := ErrConfiguration.WithCause(cause)

	if !Is(err, ErrConfiguration) {
		t.Error("expected configuration code preserved")
	}
	if Unwrap(err) != cause {
		t.Error("expected cause to unwrap")
	}
}

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		code Code
		want int
	}{
		{CodeNotFound, http.StatusNotFound},
		{CodeValidation, http.StatusBadRequest},
		{CodeUnauthorized, http.StatusUnauthorized},
		{CodeRateLimited, http.StatusTooManyRequests},
		{CodeUpstream, http.StatusBadGateway},
		{CodeConfiguration, http.StatusServiceUnavailable},
		{CodeInternal, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		if got := tt.code.HTTPStatus(); got != tt.want {
			t.Errorf("%s.HTTPStatus() = %d, want %d", tt.code, got, tt.want)
		}
	}
}

func TestValidationWithDetails(t *testing.T) {
	err := ValidationWithDetails("validation failed", map[string]string{"url": "is required"})

	details, ok := err.Details.(map[string]string)
	if !ok {
		t.Fatalf("expected detail map, got %T", err.Details)
	}
	if details["url"] != "is required" {
		t.Errorf("unexpected details: %+v", details)
	}
}
