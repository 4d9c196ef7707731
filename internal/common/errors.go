package common

import (
	"errors"
	"fmt"
)

// AppError represents application-specific errors
type AppError struct {
	Code    string
	Message string
	Cause   error
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

// Failure taxonomy for recognition calls. Retry decisions are made with
// errors.Is against these sentinels, never by string matching.
var (
	ErrAuth         = errors.New("credential issuance failed")
	ErrRateLimited  = errors.New("remote rate limit reached")
	ErrRemote       = errors.New("remote recognition error")
	ErrTransport    = errors.New("transport failure")
	ErrEmptyContent = errors.New("no content extracted")
	ErrInvalidInput = errors.New("invalid input")
)

// Error constructors
func NewAppError(code, message string, cause error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

func WrapError(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}

// IsRetryable reports whether an error should go through the backoff/retry
// policy. Auth, rate-limit and transport failures are treated uniformly as
// transient; remote application errors and empty content are terminal.
func IsRetryable(err error) bool {
	return errors.Is(err, ErrRateLimited) ||
		errors.Is(err, ErrAuth) ||
		errors.Is(err, ErrTransport)
}
