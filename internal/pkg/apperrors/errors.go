package apperrors

import "errors"

// Common errors
var (
	// Resource errors
	ErrResourceNotFound = errors.New("resource not found")

	// Validation errors
	ErrValidationFailed = errors.New("validation failed")
	ErrBadRequest       = errors.New("bad request")

	// Startup errors
	ErrConfigurationMissing = errors.New("required configuration missing")

	// Store errors
	ErrDatabaseFailure = errors.New("database failure")

	// ErrUpstreamFailure covers every store or completion provider failure on the chat path.
	ErrUpstreamFailure = errors.New("upstream failure")
)

// Course errors
var (
	ErrCourseNotFound      = NewResourceNotFoundError("Course not found")
	ErrInsufficientCourses = NewResourceNotFoundError("Less than 2 courses found in this category")
)

// NewResourceNotFoundError creates a new custom error for resource not found with a message
func NewResourceNotFoundError(message string) error {
	return &CustomError{
		Err:     ErrResourceNotFound,
		Message: message,
	}
}

// NewBadRequestError creates a new custom error for bad request with a message
func NewBadRequestError(message string) error {
	return &CustomError{
		Err:     ErrBadRequest,
		Message: message,
	}
}

// NewDatabaseError wraps a store failure on the read endpoints. The cause stays
// reachable through errors.Is but is never shown to clients.
func NewDatabaseError(err error) error {
	if err == nil {
		return nil
	}
	return &CustomError{
		Err:     ErrDatabaseFailure,
		Message: err.Error(),
		cause:   err,
	}
}

// NewUpstreamError wraps a failure from the store or the completion provider.
// The message is the underlying error text so callers can surface it unchanged.
func NewUpstreamError(err error) error {
	if err == nil {
		return nil
	}
	return &CustomError{
		Err:     ErrUpstreamFailure,
		Message: err.Error(),
		cause:   err,
	}
}

// Is returns whether target matches any of the errors in errList
func Is(err, target error, errList ...error) bool {
	if errors.Is(err, target) {
		return true
	}

	for _, e := range errList {
		if errors.Is(err, e) {
			return true
		}
	}

	return false
}

// CustomError represents application-specific errors with additional context
type CustomError struct {
	Err     error
	Message string

	cause error
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
func (e *CustomError) Unwrap() []error {
	if e.cause != nil {
		return []error{e.Err, e.cause}
	}
	return []error{e.Err}
}
