package errors

import (
	"fmt"
	"strings"

	"storefront/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	ErrorCode() string // Business error code
	Message() string   // Human-readable error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface.
// Two BaseErrors match under errors.Is when their codes are equal, so a copy
// carrying details still matches the predefined value it was derived from.
type BaseError struct {
	errorCode string
	message   string
	details   string
	parent    *BaseError
}

// NewBaseError creates a new base error
func NewBaseError(errorCode, message, details string) *BaseError {
	return &BaseError{
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Derive creates a more specific error that still matches e under errors.Is.
func (e *BaseError) Derive(errorCode, message string) *BaseError {
	return &BaseError{
		errorCode: errorCode,
		message:   message,
		parent:    e,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	if e.details == "" {
		return e.message
	}

	return e.message + ": " + e.details
}

// Is reports whether target carries the same error code.
func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)
	if !ok {
		return false
	}

	return e.errorCode == t.errorCode
}

// Unwrap exposes the generic error this one was derived from.
func (e *BaseError) Unwrap() error {
	if e.parent == nil {
		return nil
	}

	return e.parent
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the human-readable error message
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
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
		parent:    e.parent,
	}
}

// WithDetailsf is WithDetails with a format specifier.
func (e *BaseError) WithDetailsf(format string, args ...any) *BaseError {
	return e.WithDetails(fmt.Sprintf(format, args...))
}

// Predefined error types
var (
	// ErrMalformedInput is a shape or pattern mismatch in a raw value.
	ErrMalformedInput = NewBaseError(
		"MALFORMED_INPUT",
		"malformed input",
		"",
	)

	// ErrConstraintViolation is a broken field-level rule.
	ErrConstraintViolation = NewBaseError(
		"CONSTRAINT_VIOLATION",
		"field constraint violated",
		"",
	)

	// ErrInvalidChecksum is a check digit or control letter mismatch.
	ErrInvalidChecksum = NewBaseError(
		"INVALID_CHECKSUM",
		"checksum mismatch",
		"",
	)

	// ErrValidationFailed is a broken cross-field or cross-document invariant.
	ErrValidationFailed = NewBaseError(
		"VALIDATION_FAILED",
		"document validation failed",
		"",
	)

	// ErrDuplicateKey is a uniqueness violation at the persistence boundary.
	ErrDuplicateKey = NewBaseError(
		"DUPLICATE_KEY",
		"duplicate key",
		"",
	)

	// ErrNotFound is a reference to a missing document.
	ErrNotFound = NewBaseError(
		"NOT_FOUND",
		"document not found",
		"",
	)

	ErrProductNotFound = ErrNotFound.Derive("PRODUCT_NOT_FOUND", "product not found")
	ErrOrderNotFound   = ErrNotFound.Derive("ORDER_NOT_FOUND", "order not found")
	ErrUserNotFound    = ErrNotFound.Derive("USER_NOT_FOUND", "user not found")

	ErrProductAlreadyExists = ErrDuplicateKey.Derive("PRODUCT_ALREADY_EXISTS", "a product with this barcode already exists")
	ErrOrderAlreadyExists   = ErrDuplicateKey.Derive("ORDER_ALREADY_EXISTS", "an order with this id already exists")
	ErrUserAlreadyExists    = ErrDuplicateKey.Derive("USER_ALREADY_EXISTS", "a user with this national id already exists")

	// ErrUnknownKind is returned for a document kind the store does not manage.
	ErrUnknownKind = NewBaseError(
		"UNKNOWN_KIND",
		"unknown document kind",
		"",
	)

	// ErrTransactionFailed wraps failures to begin or commit a store transaction.
	ErrTransactionFailed = NewBaseError(
		"TRANSACTION_FAILED",
		"store transaction failed",
		"",
	)
)

// ConstraintViolation describes a single broken field rule.
type ConstraintViolation struct {
	Field  string // Dotted path of the offending field, e.g. "Lines[0].UnitPrice"
	Rule   string // Name of the rule, e.g. "required", "barcode"
	Reason string // Human-readable reason
}

func (v ConstraintViolation) Error() string {
	return fmt.Sprintf("%s: %s", v.Field, v.Reason)
}

// ConstraintViolations collects every field violation found on one document.
type ConstraintViolations []ConstraintViolation

func (vs ConstraintViolations) Error() string {
	parts := make([]string, 0, len(vs))
	for _, v := range vs {
		parts = append(parts, v.Error())
	}

	return ErrConstraintViolation.Message() + ": " + strings.Join(parts, "; ")
}

// Unwrap lets errors.Is(err, ErrConstraintViolation) match.
func (vs ConstraintViolations) Unwrap() error {
	return ErrConstraintViolation
}

// Fields lists the offending field paths in report order.
func (vs ConstraintViolations) Fields() []string {
	fields := make([]string, 0, len(vs))
	for _, v := range vs {
		fields = append(fields, v.Field)
	}

	return fields
}

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

// Unwrap returns the underlying driver error.
func (e *DatabaseExecuteError) Unwrap() error {
	return e.err
}

// ErrorCode returns the business error code
func (e *DatabaseExecuteError) ErrorCode() string {
	return "DATABASE_EXECUTE_FAILED"
}

// Message returns the human-readable error message
func (e *DatabaseExecuteError) Message() string {
	return "database execution failed"
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}

// ValidationError reports a broken record-level invariant on one document.
// It matches ErrValidationFailed under errors.Is, and also the more specific
// cause (ErrInvalidChecksum, ErrNotFound, ...) when there is one.
type ValidationError struct {
	Kind   string // Document kind, e.g. "order"
	Key    string // Document key; empty for documents not yet keyed
	Reason string // What invariant was broken
	cause  error
}

// NewValidationError creates a ValidationError with an optional cause.
func NewValidationError(kind, key, reason string, cause error) *ValidationError {
	return &ValidationError{
		Kind:   kind,
		Key:    key,
		Reason: reason,
		cause:  cause,
	}
}

func (e *ValidationError) Error() string {
	msg := ErrValidationFailed.Message() + " for " + e.Kind
	if e.Key != "" {
		msg += " " + e.Key
	}
	msg += ": " + e.Reason
	if e.cause != nil {
		msg += " (" + e.cause.Error() + ")"
	}

	return msg
}

// Unwrap exposes ErrValidationFailed and the cause.
func (e *ValidationError) Unwrap() []error {
	if e.cause == nil {
		return []error{ErrValidationFailed}
	}

	return []error{ErrValidationFailed, e.cause}
}
