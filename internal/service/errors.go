package service

import "errors"

var ErrNotFound = errors.New("not found")

// Returned by HandleMessage; the consumer does not retry either of them.
var (
	ErrDecode     = errors.New("decode")
	ErrValidation = errors.New("validation")
)
