package engine

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/imgkit/image-flip/internal/codec"
)

// BatchProcess flips every supported image directly inside inDir into
// outDir, keeping the same file names. Entries are processed in name
// order for reproducible runs; individual failures do not stop the
// batch.
func (e *Engine) BatchProcess(inDir, outDir string, mode codec.Mode, overwrite bool) {
	info, err := os.Stat(inDir)
	if err != nil || !info.IsDir() {
		fmt.Fprintf(e.Out, "[!] Input folder not found or not a directory: %s\n", inDir)
		return
	}
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		fmt.Fprintf(e.Out, "[!] Failed to create output folder %s: %s\n", outDir, err)
		return
	}

	entries, err := os.ReadDir(inDir)
	if err != nil {
		fmt.Fprintf(e.Out, "[!] Failed to list input folder %s: %s\n", inDir, err)
		return
	}

	// os.ReadDir returns entries sorted by name.
	var names []string
	for _, entry := range entries {
		if entry.IsDir() || !codec.SupportedExtension(entry.Name()) {
			continue
		}
		names = append(names, entry.Name())
	}
	if len(names) == 0 {
		fmt.Fprintln(e.Out, "[!] No supported image files found in input folder.")
		return
	}

	for _, name := range names {
		e.ProcessFile(filepath.Join(inDir, name), filepath.Join(outDir, name), mode, overwrite)
	}
}
