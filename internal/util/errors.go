package util

import (
	"errors"
	"net/http"

	"flashbot/backend/internal/store"
)

// AppError represents an application error with HTTP status code
type AppError struct {
	StatusCode int    `json:"-"`
	Code       string `json:"code"`
	Message    string `json:"message"`
	Details    string `json:"details,omitempty"`
	Err        error  `json:"-"`
}

// Error implements the error interface
func (e *AppError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return e.Message
}

// Common error codes
const (
	ErrCodeInternal         = "INTERNAL_ERROR"
	ErrCodeBadRequest       = "BAD_REQUEST"
	ErrCodeNotFound         = "NOT_FOUND"
	ErrCodeInvalidQuery     = "INVALID_QUERY"
	ErrCodeValidation       = "VALIDATION_ERROR"
	ErrCodeStoreUnavailable = "STORE_UNAVAILABLE"
	ErrCodeRateLimit        = "RATE_LIMIT_EXCEEDED"
)

// NewAppError creates a new application error
func NewAppError(statusCode int, code, message string) *AppError {
	return &AppError{
		StatusCode: statusCode,
		Code:       code,
		Message:    message,
	}
}

// WrapError wraps an existing error
func WrapError(statusCode int, code, message string, err error) *AppError {
	return &AppError{
		StatusCode: statusCode,
		Code:       code,
		Message:    message,
		Err:        err,
	}
}

// Common error constructors

func ErrBadRequest(message string) *AppError {
	return NewAppError(http.StatusBadRequest, ErrCodeBadRequest, message)
}

func ErrNotFound(message string) *AppError {
	return NewAppError(http.StatusNotFound, ErrCodeNotFound, message)
}

func ErrInvalidQuery(message string) *AppError {
	return NewAppError(http.StatusBadRequest, ErrCodeInvalidQuery, message)
}

func ErrValidation(message string) *AppError {
	return NewAppError(http.StatusBadRequest, ErrCodeValidation, message)
}

func ErrInternalServer(message string) *AppError {
	return NewAppError(http.StatusInternalServerError, ErrCodeInternal, message)
}

func ErrStoreUnavailable(err error) *AppError {
	return WrapError(http.StatusServiceUnavailable, ErrCodeStoreUnavailable,
		"Store temporarily unavailable", err)
}

func ErrRateLimit(message string) *AppError {
	return NewAppError(http.StatusTooManyRequests, ErrCodeRateLimit, message)
}

// GetAppError extracts AppError from error
func GetAppError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return nil
}

// FromStoreError maps document store errors onto the error taxonomy.
// Anything unrecognized becomes a 500 without leaking internal detail.
func FromStoreError(err error) *AppError {
	switch {
	case errors.Is(err, store.ErrInvalidQuery):
		return ErrInvalidQuery(err.Error())
	case errors.Is(err, store.ErrUnavailable):
		return ErrStoreUnavailable(err)
	case errors.Is(err, store.ErrNotFound):
		return ErrNotFound(err.Error())
	default:
		return WrapError(http.StatusInternalServerError, ErrCodeInternal,
			"Internal server error", err)
	}
}
