// Package imagefile writes rendered QR rasters to disk or any writer in a
// standard image format chosen from the file extension.
package imagefile

import (
	"errors"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// Format is a raster file format.
type Format string

const (
	// FormatPNG is lossless and the default.
	FormatPNG Format = "png"
	// FormatJPEG is offered for compatibility with tools that expect photos.
	FormatJPEG Format = "jpeg"
)

// jpegQuality keeps module edges crisp enough for scanners.
const jpegQuality = 95

// ErrUnsupportedFormat is returned for unknown file extensions or formats.
var ErrUnsupportedFormat = errors.New("unsupported image format")

// ContentType returns the MIME type of f.
func (f Format) ContentType() string {
	if f == FormatJPEG {
		return "image/jpeg"
	}

	return "image/png"
}

// FormatFromPath picks a format from the extension of path. A path without
// an extension maps to PNG.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case "", ".png":
		return FormatPNG, nil
	case ".jpg", ".jpeg":
		return FormatJPEG, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(path))
	}
}

// Encode writes img to w in format f.
func Encode(w io.Writer, img image.Image, f Format) error {
	switch f {
	case FormatPNG:
		return png.Encode(w, img)
	case FormatJPEG:
		return jpeg.Encode(w, img, &jpeg.Options{Quality: jpegQuality})
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, f)
	}
}

// Save writes img to path and returns the path actually written: ".png" is
// appended when path has no extension. A partially written file is removed
// on failure.
func Save(path string, img image.Image) (string, error) {
	f, err := FormatFromPath(path)
	if err != nil {
		return "", err
	}
	if filepath.Ext(path) == "" {
		path += ".png"
	}

	out, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("could not create image file: %w", err)
	}

	if err := Encode(out, img, f); err != nil {
		_ = out.Close()
		_ = os.Remove(path)

		return "", fmt.Errorf("could not write image: %w", err)
	}

	if err := out.Close(); err != nil {
		_ = os.Remove(path)

		return "", fmt.Errorf("could not close image file: %w", err)
	}

	return path, nil
}
