package shared

import "errors"

var (
	// ErrNotFound indicates resource not found.
	ErrNotFound = errors.New("not found")
	// ErrValidation indicates a value rejected by domain validation.
	ErrValidation = errors.New("validation failed")
)
