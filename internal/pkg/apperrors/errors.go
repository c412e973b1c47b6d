package apperrors

import (
	"errors"
	"fmt"
)

// Common errors
var (
	ErrResourceNotFound = errors.New("resource not found")
	ErrConflict         = errors.New("conflict")
	ErrPermissionDenied = errors.New("permission denied")
	ErrValidationFailed = errors.New("validation failed")
	ErrUnauthorized     = errors.New("unauthorized")
)

// Session errors
var (
	ErrSessionMisconfigured = errors.New("session verification is not configured")
	ErrTokenInvalid         = errors.New("invalid token")
	ErrTokenExpired         = errors.New("token expired")
)

// Row errors. Every "no row" sentinel wraps ErrResourceNotFound so callers that
// tolerate absent rows can test a single marker.
var (
	ErrProfileNotFound     = fmt.Errorf("profile not found: %w", ErrResourceNotFound)
	ErrStudentNotFound     = fmt.Errorf("student not found: %w", ErrResourceNotFound)
	ErrMentorNotFound      = fmt.Errorf("mentor profile not found: %w", ErrResourceNotFound)
	ErrApplicationNotFound = fmt.Errorf("mentor application not found: %w", ErrResourceNotFound)
)

// Mentor errors
var (
	ErrNotMentor          = fmt.Errorf("user is not a mentor: %w", ErrPermissionDenied)
	ErrMentorInactive     = fmt.Errorf("mentor account is not active: %w", ErrPermissionDenied)
	ErrApplicationExists  = fmt.Errorf("a mentor application is already pending or approved: %w", ErrConflict)
	ErrInvalidDesiredRole = fmt.Errorf("desired_role must be one of: student mentor: %w", ErrValidationFailed)
	ErrNegativePrice      = fmt.Errorf("priceDollars must not be negative: %w", ErrValidationFailed)
	ErrPriceOutOfRange    = fmt.Errorf("priceDollars is too large: %w", ErrValidationFailed)
)

// BusinessError is a domain-level rejection reported by the database, typically
// the embedded reason of a stored procedure's {success:false, error} result.
type BusinessError struct {
	Reason string
}

// NewBusinessError creates a BusinessError with the given reason
func NewBusinessError(reason string) *BusinessError {
	if reason == "" {
		reason = "Request was rejected"
	}
	return &BusinessError{Reason: reason}
}

// Error implements error interface
func (e *BusinessError) Error() string {
	return e.Reason
}

// StepError marks which step of a multi-step write failed. Earlier steps stay
// committed; callers resume by retrying the failed step.
type StepError struct {
	Step    string
	Message string
	Err     error
}

// NewStepError creates a StepError
func NewStepError(step, message string, err error) *StepError {
	return &StepError{Step: step, Message: message, Err: err}
}

// Error implements error interface
func (e *StepError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Step, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Step, e.Message)
}

// Unwrap implements errors.Unwrap interface
func (e *StepError) Unwrap() error {
	return e.Err
}

// NewValidationError wraps a human readable message with ErrValidationFailed
func NewValidationError(message string) error {
	return &CustomError{Err: ErrValidationFailed, Message: message}
}

// CustomError carries a caller-facing message over a sentinel
type CustomError struct {
	Err     error
	Message string
}

// Error implements error interface
func (e *CustomError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

// Unwrap implements errors.Unwrap interface
func (e *CustomError) Unwrap() error {
	return e.Err
}
