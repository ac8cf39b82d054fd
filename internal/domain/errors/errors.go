// Package errors defines the application error taxonomy. Every guard and
// usecase failure is one of these typed errors; the delivery layer maps them
// to HTTP responses without ever downgrading the kind.
package errors

import (
	"net/http"

	"coderr/internal/errors"
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
	// Validation errors (malformed or rule-violating input)
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Input validation failed",
		"",
	)

	ErrWrongDetailCount = NewBaseError(
		http.StatusBadRequest,
		"WRONG_DETAIL_COUNT",
		"Exactly 3 details must be provided",
		"",
	)

	ErrDuplicateOrMissingTier = NewBaseError(
		http.StatusBadRequest,
		"DUPLICATE_OR_MISSING_TIER",
		"Each offer_type (basic, standard, premium) must appear exactly once",
		"",
	)

	ErrMissingOfferType = NewBaseError(
		http.StatusBadRequest,
		"MISSING_OFFER_TYPE",
		"Each detail patch must include offer_type",
		"",
	)

	ErrDuplicateOfferType = NewBaseError(
		http.StatusBadRequest,
		"DUPLICATE_OFFER_TYPE",
		"Duplicate offer_type values are not allowed in one update",
		"",
	)

	ErrForbiddenFields = NewBaseError(
		http.StatusBadRequest,
		"FORBIDDEN_FIELDS",
		"Payload contains fields that may not be modified",
		"",
	)

	ErrEmptyUpdate = NewBaseError(
		http.StatusBadRequest,
		"EMPTY_UPDATE",
		"No data provided",
		"",
	)

	ErrUnknownStatus = NewBaseError(
		http.StatusBadRequest,
		"UNKNOWN_STATUS",
		"Unrecognized order status",
		"",
	)

	ErrRatingOutOfRange = NewBaseError(
		http.StatusBadRequest,
		"RATING_OUT_OF_RANGE",
		"Rating must be between 1 and 5",
		"",
	)

	ErrEmptyDescription = NewBaseError(
		http.StatusBadRequest,
		"EMPTY_DESCRIPTION",
		"Description must not be empty",
		"",
	)

	ErrImmutableField = NewBaseError(
		http.StatusBadRequest,
		"IMMUTABLE_FIELD",
		"Field cannot be changed after creation",
		"",
	)

	ErrTargetNotBusiness = NewBaseError(
		http.StatusBadRequest,
		"TARGET_NOT_BUSINESS",
		"Review target must be a business profile",
		"",
	)

	// Authorization errors (actor lacks rights)
	ErrNotOwner = NewBaseError(
		http.StatusForbidden,
		"NOT_OWNER",
		"Only the owner may modify this resource",
		"",
	)

	ErrNotBusiness = NewBaseError(
		http.StatusForbidden,
		"NOT_BUSINESS",
		"Only business profiles may perform this action",
		"",
	)

	ErrNotCustomer = NewBaseError(
		http.StatusForbidden,
		"NOT_CUSTOMER",
		"Only customer profiles may perform this action",
		"",
	)

	ErrForbidden = NewBaseError(
		http.StatusForbidden,
		"FORBIDDEN",
		"Access denied",
		"",
	)

	// Not-found errors (referenced entity or child absent)
	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"Resource not found",
		"",
	)

	ErrUserNotFound = NewBaseError(
		http.StatusNotFound,
		"USER_NOT_FOUND",
		"User not found",
		"",
	)

	ErrDetailNotFound = NewBaseError(
		http.StatusNotFound,
		"DETAIL_NOT_FOUND",
		"No detail with the given offer_type exists on this offer",
		"",
	)

	ErrOfferDetailInvalid = NewBaseError(
		http.StatusNotFound,
		"OFFER_DETAIL_ID_INVALID",
		"Referenced offer detail does not exist",
		"",
	)

	// Conflict errors (state already satisfies an exclusivity constraint)
	ErrConflict = NewBaseError(
		http.StatusConflict,
		"CONFLICT",
		"Resource conflict",
		"",
	)

	ErrDuplicateReview = NewBaseError(
		http.StatusConflict,
		"DUPLICATE_REVIEW",
		"You have already reviewed this business user",
		"",
	)

	ErrOrderClosed = NewBaseError(
		http.StatusConflict,
		"ORDER_CLOSED",
		"Order is in a terminal status and accepts no further transitions",
		"",
	)

	ErrUserAlreadyExists = NewBaseError(
		http.StatusConflict,
		"USER_ALREADY_EXISTS",
		"This username or email is already registered",
		"",
	)

	// Authentication errors
	ErrInvalidCredentials = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_CREDENTIALS",
		"Wrong username or password",
		"",
	)

	ErrPasswordHashFailed = NewBaseError(
		http.StatusInternalServerError,
		"PASSWORD_HASH_FAILED",
		"Password processing failed",
		"",
	)

	// Infrastructure errors, distinct from the domain kinds above
	ErrTransactionFailed = NewBaseError(
		http.StatusInternalServerError,
		"TRANSACTION_FAILED",
		"Database transaction failed",
		"",
	)

	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Internal server error",
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
	return "Database execution failed"
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}
