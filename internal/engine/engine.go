package engine

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/imgkit/image-flip/internal/codec"
)

// Engine runs the decode, flip, save sequence one file at a time.
// User-facing progress lines go to Out, which is injectable so callers
// and tests can capture them.
type Engine struct {
	Codec codec.Codec
	Out   io.Writer
}

// ProcessFile flips a single file. Any decode, flip or save failure is
// reported on Out and converted to a false return; nothing propagates
// past this boundary, so batch runs keep going. Existing output files
// are left untouched unless overwrite is set.
func (e *Engine) ProcessFile(inPath, outPath string, mode codec.Mode, overwrite bool) bool {
	if _, err := os.Stat(inPath); err != nil {
		fmt.Fprintf(e.Out, "[!] Input file not found: %s\n", inPath)
		return false
	}
	if !overwrite {
		if _, err := os.Stat(outPath); err == nil {
			fmt.Fprintf(e.Out, "[!] Output file already exists (use --overwrite to replace): %s\n", outPath)
			return false
		}
	}

	img, err := e.Codec.Decode(inPath)
	if err != nil {
		return e.fail(inPath, err)
	}
	flipped, err := e.Codec.Flip(img, mode)
	if err != nil {
		return e.fail(inPath, err)
	}
	if err := e.Codec.Save(flipped, outPath); err != nil {
		return e.fail(inPath, err)
	}

	fmt.Fprintf(e.Out, "[+] Saved: %s\n", outPath)
	return true
}

func (e *Engine) fail(inPath string, err error) bool {
	fmt.Fprintf(e.Out, "[!] Failed to process %s: %s\n", inPath, err)
	return false
}

// DeriveOutputPath builds the default single-file output name beside
// the input: photo.jpg flipped vertically becomes
// photo_flipped_vertical.jpg.
func DeriveOutputPath(inPath string, mode codec.Mode) string {
	ext := filepath.Ext(inPath)
	stem := strings.TrimSuffix(filepath.Base(inPath), ext)
	return filepath.Join(filepath.Dir(inPath), fmt.Sprintf("%s_flipped_%s%s", stem, mode, ext))
}
