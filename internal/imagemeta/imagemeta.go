// Package imagemeta reports intrinsic pixel dimensions of image files
// without decoding pixel data.
package imagemeta

import (
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// Meta describes an image file's intrinsic properties.
type Meta struct {
	Width  int
	Height int
	Format string // registered format name: "jpeg", "png", "gif", "bmp", "tiff", "webp"
}

// Resolve reads only the image header to extract intrinsic pixel dimensions.
// Missing files, unreadable files, and unsupported formats return an error;
// callers treat any error as "this attachment is unavailable" and continue.
func Resolve(path string) (Meta, error) {
	f, err := os.Open(path) //nolint:gosec
	if err != nil {
		return Meta{}, fmt.Errorf("open image: %w", err)
	}
	defer f.Close()

	cfg, format, err := image.DecodeConfig(f)
	if err != nil {
		return Meta{}, fmt.Errorf("decode image config: %w", err)
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return Meta{}, fmt.Errorf("image has invalid dimensions %dx%d", cfg.Width, cfg.Height)
	}

	return Meta{Width: cfg.Width, Height: cfg.Height, Format: format}, nil
}

// Embeddable reports whether the PDF encoder can embed this image format
// directly. Formats we can measure but not embed (bmp, tiff, webp) are
// skipped by the export pipeline with a warning.
func (m Meta) Embeddable() bool {
	switch m.Format {
	case "jpeg", "png", "gif":
		return true
	}
	return false
}
