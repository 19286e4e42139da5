package engine

import (
	"errors"
	"fmt"
	"io"

	"github.com/imgkit/image-flip/internal/codec"
)

// Backend names accepted on the command line.
const (
	BackendMeta = "pillow-equivalent"
	BackendRaw  = "opencv-equivalent"
)

// ErrUnknownBackend is returned for a backend name outside the closed set.
var ErrUnknownBackend = errors.New("unknown backend, choose from pillow-equivalent|opencv-equivalent")

// SelectBackend resolves a backend name to a codec. When the raw-pixel
// backend is requested but not compiled into this binary, the whole run
// degrades to the metadata-aware backend and a single warning is
// written to warn. The decision is made here, once, before any file is
// touched, so per-file processing never needs to branch on capability.
func SelectBackend(name string, warn io.Writer) (codec.Codec, error) {
	switch name {
	case BackendMeta, "":
		return codec.Meta{}, nil
	case BackendRaw:
		if !codec.RawAvailable() {
			fmt.Fprintf(warn, "[!] %s backend selected but libjpeg support is not compiled in. Falling back to %s.\n",
				BackendRaw, BackendMeta)
			return codec.Meta{}, nil
		}
		return codec.Raw{}, nil
	default:
		return nil, fmt.Errorf("%q: %w", name, ErrUnknownBackend)
	}
}
