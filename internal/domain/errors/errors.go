package errors

import (
	"net/http"

	"cabinet/internal/errors"
)

// AppError defines the interface for session and account-service errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code that produced or maps to the error, 0 when none
	ErrorCode() string // Stable error code
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
	if e.details != "" {
		return e.message + ": " + e.details
	}

	return e.message
}

// Is matches errors sharing the same error code, so copies made with
// WithDetails or WithHTTPCode still satisfy errors.Is against the sentinel.
func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)
	if !ok {
		return false
	}

	return t.errorCode == e.errorCode
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the error code
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

// WithHTTPCode records the status code actually observed on the wire
func (e *BaseError) WithHTTPCode(code int) *BaseError {
	return &BaseError{
		httpCode:  code,
		errorCode: e.errorCode,
		message:   e.message,
		details:   e.details,
	}
}

// Session error taxonomy
var (
	// Network, DNS or TLS level failure; no HTTP status was received.
	ErrTransportFailure = NewBaseError(
		0,
		"TRANSPORT_FAILURE",
		"transport failure",
		"",
	)

	// Login did not yield a usable token.
	ErrAuthFailure = NewBaseError(
		http.StatusUnauthorized,
		"AUTH_FAILURE",
		"authentication failed",
		"",
	)

	// Requested username belongs to another account.
	ErrConflict = NewBaseError(
		http.StatusConflict,
		"CONFLICT",
		"username already taken",
		"",
	)

	// Account missing server-side.
	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"account not found",
		"",
	)

	// 5xx or unclassified transport error during an authenticated call.
	ErrServerError = NewBaseError(
		http.StatusInternalServerError,
		"SERVER_ERROR",
		"server error",
		"",
	)

	// Status not explicitly mapped by the caller.
	ErrUnexpectedStatus = NewBaseError(
		0,
		"UNEXPECTED_STATUS",
		"unexpected response status",
		"",
	)

	// Client-side input rejection; never reaches the network.
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"validation failed",
		"",
	)

	// A token-carrying request was attempted before a successful login.
	ErrNotAuthenticated = NewBaseError(
		http.StatusUnauthorized,
		"NOT_AUTHENTICATED",
		"no authentication token",
		"",
	)

	// A username update is already outstanding.
	ErrUpdateInProgress = NewBaseError(
		http.StatusConflict,
		"UPDATE_IN_PROGRESS",
		"username update already in progress",
		"",
	)

	// Local persistence could not be read or written.
	ErrStorageUnavailable = NewBaseError(
		http.StatusInternalServerError,
		"STORAGE_UNAVAILABLE",
		"local storage unavailable",
		"",
	)

	// Request carried no valid bearer token (dev account service).
	ErrUnauthorized = NewBaseError(
		http.StatusUnauthorized,
		"UNAUTHORIZED",
		"invalid or missing bearer token",
		"",
	)
)
