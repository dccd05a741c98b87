// Package errors defines the application error taxonomy for the session
// lifecycle core.
package errors

import (
	"net/http"

	"linkup/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Predefined error types
var (
	// Identity provider errors. Cancellation and network failure carry
	// distinct messages so the UI can tell "you closed the dialog" apart
	// from "check your connection".
	ErrPopupClosed = NewBaseError(
		http.StatusUnauthorized,
		"AUTH_POPUP_CLOSED",
		"You closed the sign-in dialog before finishing",
		"",
	)

	ErrPopupBlocked = NewBaseError(
		http.StatusUnauthorized,
		"AUTH_POPUP_BLOCKED",
		"Your browser blocked the sign-in popup",
		"",
	)

	ErrAuthNetwork = NewBaseError(
		http.StatusServiceUnavailable,
		"AUTH_NETWORK_FAILURE",
		"Sign-in failed, check your connection and try again",
		"",
	)

	// Profile store errors.
	ErrProfileStorePermission = NewBaseError(
		http.StatusForbidden,
		"PROFILE_STORE_PERMISSION",
		"The profile store denied the operation",
		"",
	)

	ErrProfileStoreNotFound = NewBaseError(
		http.StatusNotFound,
		"PROFILE_NOT_FOUND",
		"No profile exists for that account",
		"",
	)

	ErrProfileStoreUnavailable = NewBaseError(
		http.StatusServiceUnavailable,
		"PROFILE_STORE_UNAVAILABLE",
		"The profile store is temporarily unavailable",
		"",
	)

	// Upgrade preconditions.
	ErrInvalidUpgradeState = NewBaseError(
		http.StatusConflict,
		"INVALID_UPGRADE_STATE",
		"Upgrading requires an anonymous session with a loaded profile",
		"",
	)

	ErrMissingEmail = NewBaseError(
		http.StatusUnprocessableEntity,
		"MISSING_EMAIL",
		"The linked account has no email address, which is required to keep your profile",
		"",
	)

	// Profile lifecycle errors.
	ErrProfileCreation = NewBaseError(
		http.StatusBadRequest,
		"PROFILE_CREATION_FAILED",
		"A profile can only be created for an active signed-in session",
		"",
	)

	ErrProfileUpdate = NewBaseError(
		http.StatusBadRequest,
		"PROFILE_UPDATE_FAILED",
		"No profile is loaded for this session",
		"",
	)

	// Flow/navigation errors.
	ErrFlowTokenInvalid = NewBaseError(
		http.StatusForbidden,
		"FLOW_TOKEN_INVALID",
		"This page can only be reached from inside the app",
		"",
	)

	// Validation-related errors.
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Input validation failed",
		"",
	)

	// General errors.
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Internal server error",
		"",
	)
)
