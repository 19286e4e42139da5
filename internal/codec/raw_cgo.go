//go:build cgo

package codec

import (
	"image"
	"io"

	"github.com/pixiv/go-libjpeg/jpeg"
)

const rawPixelAvailable = true

var jpegDecodeOptions = &jpeg.DecoderOptions{}

// decodeJPEG decodes a JPEG stream through the libjpeg bindings.
func decodeJPEG(r io.Reader) (image.Image, error) {
	return jpeg.Decode(r, jpegDecodeOptions)
}
