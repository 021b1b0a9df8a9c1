// Package imageio loads and stores maze images and normalizes noisy scans
// into pure black/white.
//
// Decoding understands PNG, GIF and JPEG (standard library) plus BMP, TIFF
// and WebP (golang.org/x/image). Encoding is limited to lossless formats so
// painted colors survive: PNG, BMP and TIFF.
package imageio

import (
	"errors"
	"fmt"
	"image"
	_ "image/gif"  // register GIF decoder
	_ "image/jpeg" // register JPEG decoder
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
	_ "golang.org/x/image/webp" // register WebP decoder
)

// ErrUnsupportedFormat is returned for output paths with an unknown extension.
var ErrUnsupportedFormat = errors.New("imageio: unsupported output format")

// Format names an output encoding.
type Format string

// Supported output formats.
const (
	PNG  Format = "png"
	BMP  Format = "bmp"
	TIFF Format = "tiff"
)

// Ext returns the canonical file extension, dot included.
func (f Format) Ext() string {
	return "." + string(f)
}

// ParseFormat accepts "png", "bmp", "tif" or "tiff", case-insensitively.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimPrefix(s, ".")) {
	case "png":
		return PNG, nil
	case "bmp":
		return BMP, nil
	case "tif", "tiff":
		return TIFF, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, s)
	}
}

// FormatFromPath picks the Format from path's extension.
func FormatFromPath(path string) (Format, error) {
	return ParseFormat(filepath.Ext(path))
}

// Load decodes the image at path, returning the image and the decoder name.
func Load(path string) (image.Image, string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, "", fmt.Errorf("imageio: open %s: %w", path, err)
	}
	defer f.Close()

	img, kind, err := image.Decode(f)
	if err != nil {
		return nil, "", fmt.Errorf("imageio: decode %s: %w", path, err)
	}

	return img, kind, nil
}

// Encode writes img to w as f.
func Encode(w io.Writer, img image.Image, f Format) error {
	switch f {
	case PNG:
		return png.Encode(w, img)
	case BMP:
		return bmp.Encode(w, img)
	case TIFF:
		return tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate})
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, string(f))
	}
}

// Save encodes img to path, choosing the format from the extension.
func Save(path string, img image.Image) error {
	f, err := FormatFromPath(path)
	if err != nil {
		return err
	}

	return SaveAs(path, img, f)
}

// SaveAs encodes img to path as f, truncating any existing file.
func SaveAs(path string, img image.Image, f Format) error {
	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("imageio: create %s: %w", path, err)
	}
	if err := Encode(out, img, f); err != nil {
		out.Close()
		return fmt.Errorf("imageio: encode %s: %w", path, err)
	}
	if err := out.Close(); err != nil {
		return fmt.Errorf("imageio: close %s: %w", path, err)
	}

	return nil
}
