// Package imageio writes rendered images as PNG or plain-text PPM.
package imageio

import (
	"image"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
)

// Format identifies an output image encoding
type Format string

const (
	FormatPNG Format = "png"
	FormatPPM Format = "ppm"
)

// ErrUnknownFormat is returned for formats other than png and ppm
var ErrUnknownFormat = errors.New("unknown image format")

// ParseFormat parses a format name, ignoring case and a leading dot
func ParseFormat(name string) (Format, error) {
	switch Format(strings.TrimPrefix(strings.ToLower(name), ".")) {
	case FormatPNG:
		return FormatPNG, nil
	case FormatPPM:
		return FormatPPM, nil
	default:
		return "", errors.Wrapf(ErrUnknownFormat, "%q", name)
	}
}

// FormatFromPath infers the format from a file extension
func FormatFromPath(path string) (Format, error) {
	ext := filepath.Ext(path)
	if ext == "" {
		return "", errors.Wrapf(ErrUnknownFormat, "no extension in %q", path)
	}
	return ParseFormat(ext)
}

// Write encodes img to w in the given format
func Write(w io.Writer, img image.Image, format Format) error {
	switch format {
	case FormatPNG:
		return WritePNG(w, img)
	case FormatPPM:
		return WritePPM(w, img)
	default:
		return errors.Wrapf(ErrUnknownFormat, "%q", format)
	}
}

// WriteFile creates path and writes img to it
func WriteFile(path string, img image.Image, format Format) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return errors.Wrapf(err, "creating output directory %s", dir)
		}
	}

	file, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "creating %s", path)
	}

	if err := Write(file, img, format); err != nil {
		file.Close()
		return errors.Wrapf(err, "writing %s", path)
	}
	return errors.Wrapf(file.Close(), "closing %s", path)
}
