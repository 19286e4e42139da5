package codec

import (
	"fmt"
	"image"
	"image/draw"
	"os"
	"path/filepath"
	"strings"

	"github.com/anthonynsimon/bild/transform"
	"github.com/disintegration/imaging"
)

// Raw is the optional raw-pixel backend. It decodes into a bare RGBA
// buffer with no metadata and derives the output format from the
// output file's extension rather than from the input. JPEG decoding
// goes through the libjpeg bindings, so the backend is only usable in
// cgo builds; see RawAvailable.
type Raw struct{}

// Name returns the backend name as used on the command line.
func (Raw) Name() string { return "opencv-equivalent" }

// RawAvailable reports whether the raw-pixel backend was compiled into
// this binary. Without cgo the libjpeg bindings are absent and the
// backend cannot honour its contract, so callers should fall back to
// the metadata-aware backend instead.
func RawAvailable() bool { return rawPixelAvailable }

// Decode reads the file at path into a raw RGBA pixel buffer. No
// format tag, ICC profile or Exif block is carried through.
func (Raw) Decode(path string) (*Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read image: %w", err)
	}
	defer f.Close()

	var pixels image.Image
	switch strings.ToLower(filepath.Ext(path)) {
	case ".jpg", ".jpeg":
		pixels, err = decodeJPEG(f)
	default:
		pixels, _, err = image.Decode(f)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read image: %w", err)
	}
	return &Image{Pixels: toRGBA(pixels)}, nil
}

// Flip returns a flipped copy of the pixel buffer.
func (Raw) Flip(img *Image, mode Mode) (*Image, error) {
	switch mode {
	case Horizontal:
		return &Image{Pixels: transform.FlipH(img.Pixels)}, nil
	case Vertical:
		return &Image{Pixels: transform.FlipV(img.Pixels)}, nil
	case Both:
		// Reversing both axes in sequence is exactly a 180 degree rotation.
		return &Image{Pixels: transform.FlipV(transform.FlipH(img.Pixels))}, nil
	default:
		return nil, fmt.Errorf("%q: %w", mode, ErrInvalidMode)
	}
}

// Save encodes the pixel buffer to path in the format named by the
// output extension, creating missing parent directories first.
func (Raw) Save(img *Image, path string) error {
	if _, err := imaging.FormatFromExtension(filepath.Ext(path)); err != nil {
		return fmt.Errorf("cannot encode %s output: %w", filepath.Ext(path), err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	if err := imaging.Save(img.Pixels, path, imaging.JPEGQuality(jpegQuality)); err != nil {
		return fmt.Errorf("failed to encode image: %w", err)
	}
	return nil
}

// toRGBA flattens any decoded image into an RGBA buffer so the flip
// operates on a plain byte matrix.
func toRGBA(src image.Image) *image.RGBA {
	if rgba, ok := src.(*image.RGBA); ok {
		return rgba
	}
	bounds := src.Bounds()
	rgba := image.NewRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	draw.Draw(rgba, rgba.Bounds(), src, bounds.Min, draw.Src)
	return rgba
}
