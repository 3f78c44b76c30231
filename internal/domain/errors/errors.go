// Package errors defines the application error taxonomy. Every public
// contract converts internal failures into one of these kinds; sensitive
// detail stays in server logs and never reaches the client payload.
package errors

import (
	"net/http"

	"github.com/Hritik000/valentine-gifts-hub/internal/errors"
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
	// Intake validation errors
	ErrEmptyCart = NewBaseError(
		http.StatusBadRequest,
		"EMPTY_CART",
		"Cart items or Product ID is required",
		"",
	)

	ErrEmailRequired = NewBaseError(
		http.StatusBadRequest,
		"EMAIL_REQUIRED",
		"Customer email is required",
		"",
	)

	ErrInvalidEmail = NewBaseError(
		http.StatusBadRequest,
		"INVALID_EMAIL",
		"Invalid email format",
		"",
	)

	// Catalog errors
	ErrProductNotFound = NewBaseError(
		http.StatusNotFound,
		"PRODUCT_NOT_FOUND",
		"Product not found",
		"",
	)

	// ErrProductUnavailable names the missing ids in its details via
	// WithDetails; the message itself stays generic.
	ErrProductUnavailable = NewBaseError(
		http.StatusNotFound,
		"PRODUCT_UNAVAILABLE",
		"Some products are not available",
		"",
	)

	ErrCatalogReadFailed = NewBaseError(
		http.StatusInternalServerError,
		"CATALOG_READ_FAILED",
		"Failed to verify products",
		"",
	)

	// Order errors
	ErrOrderCreateFailed = NewBaseError(
		http.StatusInternalServerError,
		"ORDER_CREATE_FAILED",
		"Failed to create order",
		"",
	)

	ErrInvalidOrderID = NewBaseError(
		http.StatusBadRequest,
		"INVALID_ORDER_ID",
		"Invalid order ID format",
		"",
	)

	// ErrOrderNotVerified deliberately covers both "no such order" and
	// "order exists but unpaid" so order ids cannot be enumerated.
	ErrOrderNotVerified = NewBaseError(
		http.StatusNotFound,
		"ORDER_NOT_VERIFIED",
		"Order not found or payment not verified",
		"",
	)

	ErrOrderAccessDenied = NewBaseError(
		http.StatusForbidden,
		"ORDER_ACCESS_DENIED",
		"Unauthorized access to this order",
		"",
	)

	// Download errors
	ErrProductNotInOrder = NewBaseError(
		http.StatusForbidden,
		"PRODUCT_NOT_IN_ORDER",
		"Product not found in this order",
		"",
	)

	ErrFileNotAvailable = NewBaseError(
		http.StatusNotFound,
		"FILE_NOT_AVAILABLE",
		"Product file not found",
		"",
	)

	// Payment errors
	ErrInvalidAmount = NewBaseError(
		http.StatusBadRequest,
		"INVALID_AMOUNT",
		"Valid amount is required",
		"",
	)

	ErrGatewayNotConfigured = NewBaseError(
		http.StatusInternalServerError,
		"GATEWAY_NOT_CONFIGURED",
		"Payment gateway not configured",
		"",
	)

	ErrMissingPaymentProof = NewBaseError(
		http.StatusBadRequest,
		"MISSING_PAYMENT_PROOF",
		"Missing payment verification data",
		"",
	)

	// ErrSignatureMismatch never reveals which component of the signature
	// triple was wrong.
	ErrSignatureMismatch = NewBaseError(
		http.StatusBadRequest,
		"SIGNATURE_MISMATCH",
		"Payment verification failed",
		"",
	)

	// General errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Input validation failed",
		"",
	)

	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Internal server error",
		"",
	)
)

// RateLimitError reports an exceeded order-creation budget. It carries the
// seconds-until-reset so the delivery layer can emit a Retry-After header.
type RateLimitError struct {
	retryAfterSeconds int
}

// NewRateLimitError creates a rate-limit error with the given reset delay.
func NewRateLimitError(retryAfterSeconds int) *RateLimitError {
	return &RateLimitError{retryAfterSeconds: retryAfterSeconds}
}

// Error implements the error interface
func (e *RateLimitError) Error() string {
	return e.Message()
}

// HTTPCode returns the HTTP status code
func (e *RateLimitError) HTTPCode() int {
	return http.StatusTooManyRequests
}

// ErrorCode returns the business error code
func (e *RateLimitError) ErrorCode() string {
	return "RATE_LIMITED"
}

// Message returns the user-friendly error message
func (e *RateLimitError) Message() string {
	return "Too many order attempts. Please try again later."
}

// Details returns detailed error information
func (e *RateLimitError) Details() string {
	return ""
}

// RetryAfterSeconds returns the seconds until the window resets.
func (e *RateLimitError) RetryAfterSeconds() int {
	return e.retryAfterSeconds
}

// DatabaseExecuteError represents a database operation failure. The driver
// error stays in details and never reaches the client payload.
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError creates a database execution error
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{err: err, details: details}
}

// Error implements the error interface
func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execute failed").Error()
}

// HTTPCode returns the HTTP status code
func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *DatabaseExecuteError) ErrorCode() string {
	return "DATABASE_ERROR"
}

// Message returns the user-friendly error message
func (e *DatabaseExecuteError) Message() string {
	return "Database operation failed"
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}

// GatewayError represents a payment-gateway failure. The gateway's
// diagnostic payload is kept in details for server-side logging only.
type GatewayError struct {
	err     error
	details string
}

// NewGatewayError creates a gateway-related error
func NewGatewayError(err error, details string) AppError {
	return &GatewayError{err: err, details: details}
}

// Error implements the error interface
func (e *GatewayError) Error() string {
	return errors.Wrap(e.err, "payment gateway request failed").Error()
}

// HTTPCode returns the HTTP status code
func (e *GatewayError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *GatewayError) ErrorCode() string {
	return "GATEWAY_ERROR"
}

// Message returns the user-friendly error message
func (e *GatewayError) Message() string {
	return "Failed to create payment order"
}

// Details returns detailed error information
func (e *GatewayError) Details() string {
	return e.details
}

// StorageError represents a signed-URL mint failure. Bucket names and the
// underlying storage diagnostics stay in details for operator logs.
type StorageError struct {
	err     error
	details string
}

// NewStorageError creates a storage-related error
func NewStorageError(err error, details string) AppError {
	return &StorageError{err: err, details: details}
}

// Error implements the error interface
func (e *StorageError) Error() string {
	return errors.Wrap(e.err, "storage signed URL failed").Error()
}

// HTTPCode returns the HTTP status code
func (e *StorageError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *StorageError) ErrorCode() string {
	return "STORAGE_ERROR"
}

// Message returns the user-friendly error message
func (e *StorageError) Message() string {
	return "Failed to generate download URL"
}

// Details returns detailed error information
func (e *StorageError) Details() string {
	return e.details
}
