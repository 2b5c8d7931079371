package uploader

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/sirupsen/logrus"
)

const (
	DefaultMaxBytes     = 2_000_000
	DefaultMaxDimension = 1200
	defaultQuality      = 80
)

var allowedFormats = map[string]bool{".png": true, ".jpg": true, ".jpeg": true, ".webp": true}

// Optimizing checks format and size before handing the image on, and shrinks
// anything wider or taller than MaxDimension to a JPEG.
type Optimizing struct {
	Next         Uploader
	MaxBytes     int64
	MaxDimension int
	Quality      int
}

func NewOptimizing(next Uploader, maxBytes int64) *Optimizing {
	if maxBytes <= 0 {
		maxBytes = DefaultMaxBytes
	}
	return &Optimizing{Next: next, MaxBytes: maxBytes, MaxDimension: DefaultMaxDimension, Quality: defaultQuality}
}

func (o *Optimizing) Upload(ctx context.Context, name string, r io.Reader) (string, error) {
	ext := extOf(name)
	if !allowedFormats[ext] {
		return "", ErrUnsupportedFormat
	}

	data, err := io.ReadAll(io.LimitReader(r, o.MaxBytes+1))
	if err != nil {
		return "", fmt.Errorf("read image: %w", err)
	}
	if int64(len(data)) > o.MaxBytes {
		return "", ErrTooLarge
	}

	// webp has no encoder here; it goes through untouched.
	if ext == ".webp" {
		return o.Next.Upload(ctx, name, bytes.NewReader(data))
	}

	img, err := imaging.Decode(bytes.NewReader(data), imaging.AutoOrientation(true))
	if err != nil {
		return "", fmt.Errorf("decode image: %w", err)
	}
	b := img.Bounds()
	if b.Dx() <= o.MaxDimension && b.Dy() <= o.MaxDimension {
		return o.Next.Upload(ctx, name, bytes.NewReader(data))
	}

	resized := imaging.Fit(img, o.MaxDimension, o.MaxDimension, imaging.Lanczos)
	var buf bytes.Buffer
	if err := imaging.Encode(&buf, resized, imaging.JPEG, imaging.JPEGQuality(o.Quality)); err != nil {
		return "", fmt.Errorf("encode image: %w", err)
	}
	logrus.WithFields(logrus.Fields{
		"from": fmt.Sprintf("%dx%d", b.Dx(), b.Dy()),
		"to":   fmt.Sprintf("%dx%d", resized.Bounds().Dx(), resized.Bounds().Dy()),
	}).Debug("image resized before upload")

	return o.Next.Upload(ctx, strings.TrimSuffix(name, filepath.Ext(name))+".jpg", &buf)
}

func extOf(name string) string {
	return strings.ToLower(filepath.Ext(name))
}
