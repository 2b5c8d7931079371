package form

import (
	"errors"
	"fmt"
)

var (
	ErrValidation       = errors.New("validation")
	ErrSubmitInProgress = errors.New("submit already in progress")
	ErrUnknownField     = errors.New("unknown field")
	ErrLineItemIndex    = errors.New("line item index out of range")
	ErrNoUploader       = errors.New("image upload is not configured")
)

// ValidationError carries the single message shown to the operator.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

func (e *ValidationError) Unwrap() error { return ErrValidation }

func invalid(format string, args ...any) *ValidationError {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}
