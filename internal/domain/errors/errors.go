package errors

import (
	"net/http"

	"accounts/internal/errors"
)

// Kind is the closed set of failure categories callers branch on.
type Kind int

const (
	KindInternal Kind = iota
	KindValidation
	KindConflict
	KindNotFound
	KindAuth
	KindAuthorization
	KindPersistence
)

var kindNames = map[Kind]string{
	KindInternal:      "internal",
	KindValidation:    "validation",
	KindConflict:      "conflict",
	KindNotFound:      "not_found",
	KindAuth:          "auth",
	KindAuthorization: "authorization",
	KindPersistence:   "persistence",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}

	return "unknown"
}

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	Kind() Kind        // Failure category
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	kind      Kind
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(kind Kind, httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		kind:      kind,
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

// Is matches any BaseError carrying the same error code, so errors derived with
// WithDetails still satisfy errors.Is against the predefined value.
func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)
	if !ok {
		return false
	}

	return e.errorCode == t.errorCode
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// Kind returns the failure category
func (e *BaseError) Kind() Kind {
	return e.kind
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
		kind:      e.kind,
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Predefined error types
var (
	// Validation errors
	ErrValidationFailed = NewBaseError(
		KindValidation,
		http.StatusUnprocessableEntity,
		"VALIDATION_FAILED",
		"input validation failed",
		"",
	)

	ErrFieldRequired = NewBaseError(
		KindValidation,
		http.StatusUnprocessableEntity,
		"FIELD_REQUIRED",
		"a required field is missing",
		"",
	)

	ErrPasswordMismatch = NewBaseError(
		KindValidation,
		http.StatusUnprocessableEntity,
		"PASSWORD_MISMATCH",
		"password and confirmation do not match",
		"",
	)

	ErrPasswordTooLong = NewBaseError(
		KindValidation,
		http.StatusUnprocessableEntity,
		"PASSWORD_TOO_LONG",
		"password is too long",
		"",
	)

	// Conflict errors
	ErrEmailAlreadyUsed = NewBaseError(
		KindConflict,
		http.StatusUnprocessableEntity,
		"EMAIL_ALREADY_USED",
		"email is already in use, please use another one",
		"",
	)

	// Not found errors
	ErrAccountNotFound = NewBaseError(
		KindNotFound,
		http.StatusNotFound,
		"ACCOUNT_NOT_FOUND",
		"account not found",
		"",
	)

	// Authentication errors
	ErrInvalidCredentials = NewBaseError(
		KindAuth,
		http.StatusUnprocessableEntity,
		"INVALID_CREDENTIALS",
		"invalid email or password",
		"",
	)

	// Authorization errors
	ErrUnauthenticated = NewBaseError(
		KindAuthorization,
		http.StatusUnauthorized,
		"UNAUTHENTICATED",
		"authentication required",
		"",
	)

	ErrNotAccountOwner = NewBaseError(
		KindAuthorization,
		http.StatusUnauthorized,
		"NOT_ACCOUNT_OWNER",
		"you are not allowed to modify this account",
		"",
	)

	// Internal errors
	ErrPasswordHashFailed = NewBaseError(
		KindInternal,
		http.StatusInternalServerError,
		"PASSWORD_HASH_FAILED",
		"password processing failed",
		"",
	)

	ErrTokenIssueFailed = NewBaseError(
		KindInternal,
		http.StatusInternalServerError,
		"TOKEN_ISSUE_FAILED",
		"could not issue auth token",
		"",
	)

	ErrInternalError = NewBaseError(
		KindInternal,
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"internal server error",
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

// Unwrap exposes the driver error.
func (e *DatabaseExecuteError) Unwrap() error {
	return e.err
}

// Kind returns KindPersistence
func (e *DatabaseExecuteError) Kind() Kind {
	return KindPersistence
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
	return "database operation failed"
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}

// KindOf reports the Kind of the first AppError in err's chain.
// Errors outside the taxonomy are KindInternal.
func KindOf(err error) Kind {
	var appErr AppError
	if errors.As(err, &appErr) {
		return appErr.Kind()
	}

	return KindInternal
}

// Required is the validation error for a blank required field.
func Required(field string) error {
	return errors.WithStack(ErrFieldRequired.WithDetails(field + " is required"))
}
