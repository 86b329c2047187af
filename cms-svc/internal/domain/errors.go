package domain

import "errors"

var (
	ErrNotFound           = errors.New("not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid token")
	ErrUserNotFound       = errors.New("user not found")
	ErrDuplicateKey       = errors.New("duplicate key")
	ErrStorageUnavailable = errors.New("storage unavailable")
	ErrForbidden          = errors.New("insufficient permissions")
	ErrInactiveUser       = errors.New("user account is inactive")
	ErrTooManyAttempts    = errors.New("too many login attempts")
	ErrValidation         = errors.New("validation failed")
)

// ValidationError names the offending field and still matches ErrValidation.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Reason
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

func Invalid(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}
