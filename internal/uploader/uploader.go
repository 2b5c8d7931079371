package uploader

import (
	"context"
	"errors"
	"io"
)

var (
	ErrUnsupportedFormat = errors.New("only png, jpg, jpeg and webp images are allowed")
	ErrTooLarge          = errors.New("image is larger than the upload limit")
)

// Uploader stores an image somewhere public and returns its URL.
type Uploader interface {
	Upload(ctx context.Context, name string, r io.Reader) (string, error)
}
