package errors

import (
	"net/http"

	"petfeeder/internal/errors"
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
	// origin is the sentinel a decorated copy came from.
	origin *BaseError
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

// WithDetails returns a copy carrying details. The copy still matches the
// receiver under errors.Is.
func (e *BaseError) WithDetails(details string) *BaseError {
	origin := e
	if e.origin != nil {
		origin = e.origin
	}

	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
		origin:    origin,
	}
}

// Is reports whether target is the sentinel e was decorated from.
func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)

	return ok && e.origin != nil && (t == e.origin || t.origin == e.origin)
}

// Predefined error types
var (
	// Feeder binding errors
	ErrFeederNotFound = NewBaseError(
		http.StatusNotFound,
		"FEEDER_NOT_FOUND",
		"Feeder not found.",
		"",
	)

	ErrActivationFailed = NewBaseError(
		http.StatusNotFound,
		"ACTIVATION_FAILED",
		"Device activation failed, invalid device id or activation code.",
		"",
	)

	ErrDeviceOwnedByYou = NewBaseError(
		http.StatusBadRequest,
		"DEVICE_OWNED_BY_YOU",
		"Device is already registered to you.",
		"",
	)

	ErrDeviceOwnedByOther = NewBaseError(
		http.StatusBadRequest,
		"DEVICE_OWNED_BY_OTHER",
		"Device is already registered to another user.",
		"",
	)

	ErrDeviceAlreadyProvisioned = NewBaseError(
		http.StatusConflict,
		"DEVICE_ALREADY_PROVISIONED",
		"Device identifier is already provisioned.",
		"",
	)

	ErrInvalidDeviceIdentifier = NewBaseError(
		http.StatusBadRequest,
		"INVALID_DEVICE_IDENTIFIER",
		"Invalid device identifier.",
		"",
	)

	// Device authentication errors
	ErrDeviceKeyInvalid = NewBaseError(
		http.StatusUnauthorized,
		"DEVICE_KEY_INVALID",
		"Invalid device key.",
		"",
	)

	// Queue errors
	ErrEventNotFound = NewBaseError(
		http.StatusNotFound,
		"EVENT_NOT_FOUND",
		"Event not found.",
		"",
	)

	// Schedule errors
	ErrScheduleNotFound = NewBaseError(
		http.StatusNotFound,
		"SCHEDULE_NOT_FOUND",
		"Schedule not found.",
		"",
	)

	ErrInvalidDayMask = NewBaseError(
		http.StatusBadRequest,
		"INVALID_DAY_MASK",
		"At least one valid weekday must be selected.",
		"",
	)

	ErrInvalidTimeOfDay = NewBaseError(
		http.StatusBadRequest,
		"INVALID_TIME_OF_DAY",
		"Time must be HH:MM or HH:MM:SS.",
		"",
	)

	ErrPetNotFound = NewBaseError(
		http.StatusNotFound,
		"PET_NOT_FOUND",
		"Pet not found.",
		"",
	)

	ErrPortionNotFound = NewBaseError(
		http.StatusNotFound,
		"PORTION_NOT_FOUND",
		"Portion size not found.",
		"",
	)

	ErrInvalidPortion = NewBaseError(
		http.StatusBadRequest,
		"INVALID_PORTION",
		"Portion size must be a positive fraction such as 1/4.",
		"",
	)

	// Settings errors
	ErrInvalidTimezone = NewBaseError(
		http.StatusBadRequest,
		"INVALID_TIMEZONE",
		"Unknown timezone.",
		"",
	)

	// Validation-related errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Input validation failed.",
		"",
	)

	// Transaction-related errors
	ErrTransactionFailed = NewBaseError(
		http.StatusInternalServerError,
		"TRANSACTION_FAILED",
		"Database transaction failed.",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Internal server error.",
		"",
	)

	ErrUnauthorized = NewBaseError(
		http.StatusUnauthorized,
		"UNAUTHORIZED",
		"Authentication required.",
		"",
	)

	ErrForbidden = NewBaseError(
		http.StatusForbidden,
		"FORBIDDEN",
		"Access denied.",
		"",
	)

	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"Resource not found.",
		"",
	)
)

// DatabaseExecuteError represents a database execution error, implementing the AppError interface
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError creates a database-related error
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

// HTTPCode returns the HTTP status code
func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *DatabaseExecuteError) ErrorCode() string {
	return "DATABASE_EXECUTE_FAILED"
}

// Message returns the user-friendly error message
func (e *DatabaseExecuteError) Message() string {
	return "Database operation failed."
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}
