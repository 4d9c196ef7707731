package common

import (
	"errors"
	"fmt"
	"testing"
)

func TestAppError(t *testing.T) {
	cause := fmt.Errorf("wrapped: %w", ErrRateLimited)
	err := NewAppError("OCR_RATE_LIMITED", "error 18: qps request limit reached", cause)

	if !errors.Is(err, ErrRateLimited) {
		t.Error("AppError must unwrap to its cause sentinel")
	}

	var appErr *AppError
	if !errors.As(err, &appErr) {
		t.Fatal("errors.As failed")
	}
	if appErr.Code != "OCR_RATE_LIMITED" {
		t.Errorf("code: got %s", appErr.Code)
	}

	bare := NewAppError("CONFIG_ERROR", "missing key", nil)
	if got, want := bare.Error(), "CONFIG_ERROR: missing key"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestIsRetryable(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"rate limit", ErrRateLimited, true},
		{"auth", ErrAuth, true},
		{"transport", ErrTransport, true},
		{"remote", ErrRemote, false},
		{"empty content", ErrEmptyContent, false},
		{"invalid input", ErrInvalidInput, false},
		{"wrapped rate limit", NewAppError("OCR_RATE_LIMITED", "http 429", ErrRateLimited), true},
		{"wrapped remote", NewAppError("OCR_REMOTE", "error 216201", ErrRemote), false},
		{"plain error", errors.New("something else"), false},
		{"nil", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsRetryable(tt.err); got != tt.want {
				t.Errorf("IsRetryable(%v): got %v, want %v", tt.err, got, tt.want)
			}
		})
	}
}
