package codec

import (
	"errors"
	"fmt"
	"image"
	"path/filepath"
	"strings"
)

// Mode selects the axis (or axes) along which pixel order is reversed.
type Mode string

const (
	// Horizontal mirrors the image left-right.
	Horizontal Mode = "horizontal"
	// Vertical mirrors the image top-bottom.
	Vertical Mode = "vertical"
	// Both rotates the image 180 degrees, reversing both axes.
	Both Mode = "both"
)

// ErrInvalidMode is returned for a mode outside the closed enum.
var ErrInvalidMode = errors.New("unknown mode, choose from horizontal|vertical|both")

// ParseMode validates a mode string from the command line.
// Matching is case-insensitive.
func ParseMode(s string) (Mode, error) {
	switch Mode(strings.ToLower(s)) {
	case Horizontal:
		return Horizontal, nil
	case Vertical:
		return Vertical, nil
	case Both:
		return Both, nil
	default:
		return "", fmt.Errorf("%q: %w", s, ErrInvalidMode)
	}
}

// Image is a decoded image handle plus whatever metadata the backend
// carried through decoding. It is owned by the single operation that
// decoded it and is not safe to share across operations.
type Image struct {
	// Pixels is the decoded pixel data.
	Pixels image.Image

	// Format is the source format as registered with image.Decode
	// ("jpeg", "png", ...). Empty for backends that do not track it.
	Format string

	// ICC is the ICC colour profile, concatenated from the source
	// file's ICC_PROFILE segments. Nil when absent.
	ICC []byte

	// Exif is the raw TIFF payload of the source file's Exif block.
	// Nil when absent.
	Exif []byte
}

// Codec decodes, flips and re-encodes images. Implementations are
// stateless; a single value can serve any number of files.
type Codec interface {
	// Name returns the backend name as used on the command line.
	Name() string

	// Decode reads and decodes the image at path.
	Decode(path string) (*Image, error)

	// Flip returns a flipped copy of img. The source handle is not
	// modified; metadata fields carry over to the copy unchanged.
	Flip(img *Image, mode Mode) (*Image, error)

	// Save encodes img to path, creating missing parent directories.
	Save(img *Image, path string) error
}

var supportedExts = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".bmp":  true,
	".gif":  true,
	".tiff": true,
	".webp": true,
}

// SupportedExtension reports whether path has one of the supported
// image extensions (case-insensitive).
func SupportedExtension(path string) bool {
	return supportedExts[strings.ToLower(filepath.Ext(path))]
}
