package imageio

import (
	"image"
	"image/png"
	"io"

	"github.com/pkg/errors"
)

// WritePNG writes img as a PNG
func WritePNG(w io.Writer, img image.Image) error {
	return errors.Wrap(png.Encode(w, img), "encoding png")
}
