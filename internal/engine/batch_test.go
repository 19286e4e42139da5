package engine

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/imgkit/image-flip/internal/codec"
)

func TestBatchProcess_FiltersAndOrders(t *testing.T) {
	inDir := t.TempDir()
	outDir := filepath.Join(t.TempDir(), "out")

	// Written out of order on purpose; processing must be name order.
	writePNG(t, inDir, "c.png", createPatternImage(8, 8))
	writePNG(t, inDir, "a.png", createPatternImage(8, 8))
	writePNG(t, inDir, "b.png", createPatternImage(8, 8))
	if err := os.WriteFile(filepath.Join(inDir, "notes.txt"), []byte("skip me"), 0o644); err != nil {
		t.Fatalf("failed to write notes.txt: %v", err)
	}

	eng, logOut := newTestEngine()
	eng.BatchProcess(inDir, outDir, codec.Horizontal, false)

	saved := regexp.MustCompile(`\[\+\] Saved: (\S+)`).FindAllStringSubmatch(logOut.String(), -1)
	if len(saved) != 3 {
		t.Fatalf("saved lines: got %d, want 3 (output: %q)", len(saved), logOut.String())
	}
	for i, want := range []string{"a.png", "b.png", "c.png"} {
		if got := filepath.Base(saved[i][1]); got != want {
			t.Errorf("saved[%d]: got %s, want %s", i, got, want)
		}
	}

	if _, err := os.Stat(filepath.Join(outDir, "notes.txt")); err == nil {
		t.Error("unsupported file must not be copied to the output folder")
	}
}

func TestBatchProcess_MissingInputDir(t *testing.T) {
	eng, logOut := newTestEngine()
	eng.BatchProcess(filepath.Join(t.TempDir(), "missing"), t.TempDir(), codec.Horizontal, false)

	if !strings.Contains(logOut.String(), "[!] Input folder not found") {
		t.Errorf("missing not-found line, got %q", logOut.String())
	}
}

func TestBatchProcess_InputIsAFile(t *testing.T) {
	dir := t.TempDir()
	in := writePNG(t, dir, "in.png", createPatternImage(8, 8))

	eng, logOut := newTestEngine()
	eng.BatchProcess(in, t.TempDir(), codec.Horizontal, false)

	if !strings.Contains(logOut.String(), "not a directory") {
		t.Errorf("missing not-a-directory line, got %q", logOut.String())
	}
}

func TestBatchProcess_NoSupportedFiles(t *testing.T) {
	inDir := t.TempDir()
	outDir := filepath.Join(t.TempDir(), "out")
	if err := os.WriteFile(filepath.Join(inDir, "notes.txt"), []byte("text"), 0o644); err != nil {
		t.Fatalf("failed to write notes.txt: %v", err)
	}

	eng, logOut := newTestEngine()
	eng.BatchProcess(inDir, outDir, codec.Horizontal, false)

	if !strings.Contains(logOut.String(), "[!] No supported image files found") {
		t.Errorf("missing no-files line, got %q", logOut.String())
	}
	// The output directory itself is created, but stays empty.
	entries, err := os.ReadDir(outDir)
	if err != nil {
		t.Fatalf("output folder was not created: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("output folder should be empty, has %d entries", len(entries))
	}
}

func TestBatchProcess_FailuresDoNotAbort(t *testing.T) {
	inDir := t.TempDir()
	outDir := filepath.Join(t.TempDir(), "out")

	if err := os.WriteFile(filepath.Join(inDir, "a.png"), []byte("broken"), 0o644); err != nil {
		t.Fatalf("failed to write broken file: %v", err)
	}
	writePNG(t, inDir, "b.png", createPatternImage(8, 8))

	eng, logOut := newTestEngine()
	eng.BatchProcess(inDir, outDir, codec.Horizontal, false)

	if !strings.Contains(logOut.String(), "[!] Failed to process") {
		t.Errorf("missing failure line, got %q", logOut.String())
	}
	if _, err := os.Stat(filepath.Join(outDir, "b.png")); err != nil {
		t.Error("healthy file after a failure was not processed")
	}
}

func TestBatchProcess_CaseInsensitiveExtensions(t *testing.T) {
	inDir := t.TempDir()
	outDir := filepath.Join(t.TempDir(), "out")
	writePNG(t, inDir, "upper.PNG", createPatternImage(8, 8))

	eng, _ := newTestEngine()
	eng.BatchProcess(inDir, outDir, codec.Vertical, false)

	if _, err := os.Stat(filepath.Join(outDir, "upper.PNG")); err != nil {
		t.Error("upper-case extension was not processed")
	}
}
