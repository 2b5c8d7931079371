package uploader

import (
	"context"
	"fmt"
	"io"

	"github.com/cloudinary/cloudinary-go/v2"
	cldupload "github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/sirupsen/logrus"
)

type CloudinaryConfig struct {
	CloudName    string
	APIKey       string
	APISecret    string
	UploadPreset string
	Folder       string
}

// Cloudinary uploads through an unsigned upload preset, the same way the browser
// widget does, so no API secret is required.
type Cloudinary struct {
	cld    *cloudinary.Cloudinary
	preset string
	folder string
}

func NewCloudinary(cfg CloudinaryConfig) (*Cloudinary, error) {
	if cfg.CloudName == "" || cfg.UploadPreset == "" {
		return nil, fmt.Errorf("cloudinary: cloud name and upload preset are required")
	}
	cld, err := cloudinary.NewFromParams(cfg.CloudName, cfg.APIKey, cfg.APISecret)
	if err != nil {
		return nil, fmt.Errorf("cloudinary: %w", err)
	}
	return &Cloudinary{cld: cld, preset: cfg.UploadPreset, folder: cfg.Folder}, nil
}

func (c *Cloudinary) Upload(ctx context.Context, name string, r io.Reader) (string, error) {
	res, err := c.cld.Upload.UnsignedUpload(ctx, r, c.preset, cldupload.UploadParams{Folder: c.folder})
	if err != nil {
		return "", fmt.Errorf("image upload: %w", err)
	}
	if res.Error.Message != "" {
		return "", fmt.Errorf("image upload: %s", res.Error.Message)
	}
	logrus.WithFields(logrus.Fields{"file": name, "url": res.SecureURL}).Info("image uploaded")
	return res.SecureURL, nil
}
