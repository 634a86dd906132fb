package model

import "errors"

var (
	// ErrNotFound is returned when a row does not exist or belongs to
	// a different owner. The two cases are indistinguishable.
	ErrNotFound = errors.New("not found")
	// ErrEmailTaken is returned when registering with an email that is
	// already present.
	ErrEmailTaken = errors.New("email already registered")
	// ErrInvalidCredentials is returned for both an unknown email and a
	// password mismatch.
	ErrInvalidCredentials = errors.New("invalid email or password")
	// ErrInvalidReference is returned when an expense references a
	// category the caller does not own.
	ErrInvalidReference = errors.New("invalid category reference")
)

// ValidationError reports malformed or missing input.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// NewValidationError creates a ValidationError with the given message.
func NewValidationError(message string) *ValidationError {
	return &ValidationError{Message: message}
}
