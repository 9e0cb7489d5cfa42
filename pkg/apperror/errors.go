package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// AppError is a structured error that maps to HTTP responses.
type AppError struct {
	Code       string `json:"error_code"`
	Message    string `json:"message"`
	HTTPStatus int    `json:"-"`
	Err        error  `json:"-"` // Wrapped internal error (not exposed to client)
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// New creates a new AppError.
func New(code string, message string, httpStatus int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
	}
}

// Wrap wraps an internal error with an AppError.
func Wrap(code string, message string, httpStatus int, err error) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
		Err:        err,
	}
}

// ---- Request validation (VAL), raised before anything is signed ----

const validationPrefix = "VAL_"

func ErrMissingField(field string) *AppError {
	return New("VAL_001", fmt.Sprintf("%s is required", field), http.StatusBadRequest)
}

func ErrInvalidAccountNumber(field string) *AppError {
	return New("VAL_002", fmt.Sprintf("%s must be exactly 10 digits", field), http.StatusBadRequest)
}

func ErrUnknownOperation(name string) *AppError {
	return New("VAL_003", fmt.Sprintf("unknown gateway operation %q", name), http.StatusBadRequest)
}

func ErrEmptyBatch() *AppError {
	return New("VAL_004", "at least one transaction is required", http.StatusBadRequest)
}

func ErrInvalidField(field, rule string) *AppError {
	return New("VAL_005", fmt.Sprintf("%s failed %s validation", field, rule), http.StatusBadRequest)
}

// IsValidation reports whether err is a pre-signing validation failure.
func IsValidation(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr) && strings.HasPrefix(appErr.Code, validationPrefix)
}

// ---- Proxy relay (PRX) ----

func ErrMalformedEnvelope(err error) *AppError {
	return Wrap("PRX_001", "malformed proxy request", http.StatusInternalServerError, err)
}

func ErrRelayFailed(err error) *AppError {
	return Wrap("PRX_002", "gateway relay failed", http.StatusInternalServerError, err)
}

// ---- Authentication (AUTH) ----

func ErrInvalidToken() *AppError {
	return New("AUTH_001", "Invalid or expired token", http.StatusUnauthorized)
}

// ---- Rate Limiting (RATE) ----

func ErrRateLimitExceeded() *AppError {
	return New("RATE_001", "Rate limit exceeded", http.StatusTooManyRequests)
}

// ---- System & Infrastructure (SYS) ----

// InternalError wraps an internal error as a SYS_001 error.
func InternalError(err error) *AppError {
	return Wrap("SYS_001", "Internal server error", http.StatusInternalServerError, err)
}
