package codec

import (
	"bytes"
	"fmt"
	"image"
	"os"
	"path/filepath"

	"github.com/disintegration/imaging"
	"github.com/rwcarlsen/goexif/exif"
	_ "golang.org/x/image/webp" // Register WebP decoder; imaging registers the rest
)

// jpegQuality is the fixed encoding quality for JPEG output. A high
// fixed setting avoids the visible artifacts of encoder defaults when
// an image is decoded and re-saved.
const jpegQuality = 95

// Meta is the default, metadata-aware backend. It remembers the source
// format and carries the ICC profile and Exif block of JPEG inputs so
// Save can re-attach them to the output.
type Meta struct{}

// Name returns the backend name as used on the command line.
func (Meta) Name() string { return "pillow-equivalent" }

// Decode reads the file at path and decodes it through the standard
// image registry. For JPEG inputs the Exif block and ICC profile are
// extracted alongside the pixels; either being absent is fine.
func (Meta) Decode(path string) (*Image, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open image: %w", err)
	}

	pixels, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}

	img := &Image{Pixels: pixels, Format: format}
	if format == "jpeg" {
		if x, err := exif.Decode(bytes.NewReader(data)); err == nil {
			img.Exif = x.Raw
		}
		img.ICC = extractICCProfile(data)
	}
	return img, nil
}

// Flip returns a flipped copy of img with its metadata carried over.
func (Meta) Flip(img *Image, mode Mode) (*Image, error) {
	var flipped image.Image
	switch mode {
	case Horizontal:
		flipped = imaging.FlipH(img.Pixels)
	case Vertical:
		flipped = imaging.FlipV(img.Pixels)
	case Both:
		flipped = imaging.Rotate180(img.Pixels)
	default:
		return nil, fmt.Errorf("%q: %w", mode, ErrInvalidMode)
	}
	return &Image{Pixels: flipped, Format: img.Format, ICC: img.ICC, Exif: img.Exif}, nil
}

// Save encodes img to path in the image's source format, re-attaching
// any Exif block or ICC profile the handle carries. Missing parent
// directories are created first.
func (Meta) Save(img *Image, path string) error {
	format, err := saveFormat(img.Format, path)
	if err != nil {
		return err
	}

	var opts []imaging.EncodeOption
	if format == imaging.JPEG {
		opts = append(opts, imaging.JPEGQuality(jpegQuality))
	}

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img.Pixels, format, opts...); err != nil {
		return fmt.Errorf("failed to encode image: %w", err)
	}

	out := buf.Bytes()
	if format == imaging.JPEG && (len(img.Exif) > 0 || len(img.ICC) > 0) {
		out, err = spliceJPEGMetadata(out, img.Exif, img.ICC)
		if err != nil {
			return fmt.Errorf("failed to attach metadata: %w", err)
		}
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	if err := os.WriteFile(path, out, 0o644); err != nil {
		return fmt.Errorf("failed to write image: %w", err)
	}
	return nil
}

// saveFormat resolves the encoding format for a handle: the source
// format when the handle carries one, the output extension otherwise.
func saveFormat(name, path string) (imaging.Format, error) {
	if name == "" {
		format, err := imaging.FormatFromExtension(filepath.Ext(path))
		if err != nil {
			return -1, fmt.Errorf("cannot encode %s output: %w", filepath.Ext(path), err)
		}
		return format, nil
	}
	switch name {
	case "jpeg":
		return imaging.JPEG, nil
	case "png":
		return imaging.PNG, nil
	case "gif":
		return imaging.GIF, nil
	case "tiff":
		return imaging.TIFF, nil
	case "bmp":
		return imaging.BMP, nil
	default:
		// Decodable but not encodable, e.g. webp.
		return -1, fmt.Errorf("cannot encode %s output: %w", name, imaging.ErrUnsupportedFormat)
	}
}
