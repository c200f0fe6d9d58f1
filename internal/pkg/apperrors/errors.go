package apperrors

import "errors"

// Common errors
var (
	// Resource errors
	ErrResourceNotFound = errors.New("resource not found")
	ErrConflict         = errors.New("conflict")

	// Authentication errors
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrTokenExpired       = errors.New("token expired")
	ErrTokenInvalid       = errors.New("invalid token")
	ErrPermissionDenied   = errors.New("permission denied")

	// Validation errors
	ErrValidationFailed  = errors.New("validation failed")
	ErrInvalidIdentifier = errors.New("invalid identifier")
	ErrBadRequest        = errors.New("bad request")

	// Uniqueness violations
	ErrEmailAlreadyExists = errors.New("email already exists")
)

// Entity lookups
var (
	ErrUserNotFound    = errors.New("user not found")
	ErrAlumnusNotFound = errors.New("alumnus not found")
	ErrCourseNotFound  = errors.New("course not found")
	ErrEventNotFound   = errors.New("event not found")
	ErrForumNotFound   = errors.New("forum topic not found")
	ErrCommentNotFound = errors.New("comment not found")
	ErrJobNotFound     = errors.New("job posting not found")
)

// NewNotFoundError creates a custom not-found error with a message
func NewNotFoundError(message string) error {
	return &CustomError{
		Err:     ErrResourceNotFound,
		Message: message,
	}
}

// NewBadRequestError creates a custom bad-request error with a message
func NewBadRequestError(message string) error {
	return &CustomError{
		Err:     ErrBadRequest,
		Message: message,
	}
}

// NewValidationError creates a custom validation error with a message
func NewValidationError(message string) error {
	return &CustomError{
		Err:     ErrValidationFailed,
		Message: message,
	}
}

// CustomError represents application-specific errors with additional context
type CustomError struct {
	Err     error
	Message string
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
func (e *CustomError) Unwrap() error {
	return e.Err
}
