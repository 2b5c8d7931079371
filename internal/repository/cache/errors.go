package cache

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrMiss is returned, wrapped in an ErrorHandler, when a key is absent or expired.
var ErrMiss = errors.New("not in cache")

// ErrorHandler carries the HTTP status the failure should surface as.
type ErrorHandler struct {
	StatusCode int
	err        error
}

func NewErrorHandler(err error, statusCode int) ErrorHandler {
	return ErrorHandler{StatusCode: statusCode, err: err}
}

func (e ErrorHandler) Error() string { return e.err.Error() }

func (e ErrorHandler) Unwrap() error { return e.err }

func miss(kind, key string) error {
	return NewErrorHandler(fmt.Errorf("%s %s: %w", kind, key, ErrMiss), http.StatusNotFound)
}

func badType(kind, key string, v any) error {
	return NewErrorHandler(fmt.Errorf("%s %s holds %T", kind, key, v), http.StatusInternalServerError)
}
