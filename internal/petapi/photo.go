package petapi

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"
)

// MaxPhotoSize is the largest photo accepted for upload (10 MiB).
const MaxPhotoSize = 10 << 20

// LoadPhoto reads an image file for upload. The content type is sniffed
// from the data, not taken from the extension.
func LoadPhoto(path string) (*Photo, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return nil, NewValidationError(photoField, "photo path is empty")
	}

	info, err := os.Stat(path)
	if err != nil {
		return nil, NewValidationError(photoField, fmt.Sprintf("cannot read photo: %v", err))
	}
	if info.IsDir() {
		return nil, NewValidationError(photoField, fmt.Sprintf("%s is a directory", path))
	}
	if info.Size() > MaxPhotoSize {
		return nil, NewValidationError(photoField,
			fmt.Sprintf("photo is %d bytes, the limit is %d", info.Size(), MaxPhotoSize))
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, NewValidationError(photoField, fmt.Sprintf("cannot read photo: %v", err))
	}

	return NewPhoto(filepath.Base(path), data)
}

// NewPhoto wraps image bytes for upload, rejecting anything that is not an image.
func NewPhoto(filename string, data []byte) (*Photo, error) {
	if len(data) == 0 {
		return nil, NewValidationError(photoField, "photo is empty")
	}

	mt := mimetype.Detect(data)
	if !strings.HasPrefix(mt.String(), "image/") {
		return nil, NewValidationError(photoField,
			fmt.Sprintf("%s is not an image (detected %s)", filename, mt.String()))
	}

	return &Photo{
		Filename:    filename,
		ContentType: mt.String(),
		Data:        data,
	}, nil
}

// Dimensions decodes the image header. ok is false for formats
// the standard decoders do not handle (e.g. webp).
func (p *Photo) Dimensions() (width, height int, ok bool) {
	if p == nil || len(p.Data) == 0 {
		return 0, 0, false
	}
	cfg, _, err := image.DecodeConfig(bytes.NewReader(p.Data))
	if err != nil {
		return 0, 0, false
	}
	return cfg.Width, cfg.Height, true
}

// Describe returns a one-line summary for a preview.
func (p *Photo) Describe() string {
	if p == nil {
		return "no photo"
	}
	if w, h, ok := p.Dimensions(); ok {
		return fmt.Sprintf("%s (%s, %dx%d, %s)", p.Filename, p.ContentType, w, h, FormatSize(p.Size()))
	}
	return fmt.Sprintf("%s (%s, %s)", p.Filename, p.ContentType, FormatSize(p.Size()))
}

const photoField = "foto"

// FormatSize renders a byte count with a binary unit.
func FormatSize(n int) string {
	const unit = 1024
	if n < unit {
		return fmt.Sprintf("%d B", n)
	}
	div, exp := unit, 0
	for m := n / unit; m >= unit; m /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %ciB", float64(n)/float64(div), "KMG"[exp])
}
