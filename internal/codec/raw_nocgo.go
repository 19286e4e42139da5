//go:build !cgo

package codec

import (
	"errors"
	"image"
	"io"
)

const rawPixelAvailable = false

var errLibjpegUnavailable = errors.New("libjpeg decoder not compiled in")

func decodeJPEG(io.Reader) (image.Image, error) {
	return nil, errLibjpegUnavailable
}
