package domain

import "errors"

// Sentinel errors for the domain layer. These provide consistent, checkable
// errors for common failures.
var (
	ErrNotFound       = errors.New("requested resource not found")
	ErrInvalidContent = errors.New("invalid portfolio content")
	ErrValidation     = errors.New("validation failed")
)
