package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/imgkit/image-flip/internal/codec"
	"github.com/imgkit/image-flip/internal/engine"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("image-flip", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var (
		input        = fs.String("input", "", "input image file")
		inputFolder  = fs.String("input-folder", "", "input folder (batch); all supported images are processed")
		output       = fs.String("output", "", "output file path (single image); default appends _flipped_<mode>")
		outputFolder = fs.String("output-folder", "", "output folder for batch (required with --input-folder)")
		modeName     = fs.String("mode", "horizontal", "flip mode: horizontal|vertical|both")
		overwrite    = fs.Bool("overwrite", false, "overwrite existing output files")
		backend      = fs.String("backend", engine.BackendMeta, "backend: pillow-equivalent|opencv-equivalent")
		showVersion  = fs.Bool("version", false, "print version information")
	)
	fs.Usage = func() {
		fmt.Fprintln(stderr, "image-flip - flip images horizontally, vertically, or both")
		fmt.Fprintln(stderr)
		fmt.Fprintln(stderr, "Usage: image-flip (--input <file> | --input-folder <dir>) [options]")
		fmt.Fprintln(stderr)
		fmt.Fprintln(stderr, "Options:")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return 2
	}

	if *showVersion {
		fmt.Fprintf(stdout, "image-flip %s\n", Version)
		fmt.Fprintf(stdout, "  Build time: %s\n", BuildTime)
		fmt.Fprintf(stdout, "  Git commit: %s\n", GitCommit)
		return 0
	}

	// Diagnostics go to stderr; stdout carries per-file progress only.
	log.SetOutput(stderr)
	log.SetFlags(log.Ldate | log.Ltime)

	mode, err := codec.ParseMode(*modeName)
	if err != nil {
		fmt.Fprintf(stderr, "[!] %s\n", err)
		return 2
	}
	if (*input == "") == (*inputFolder == "") {
		fmt.Fprintln(stderr, "[!] Exactly one of --input or --input-folder is required")
		fs.Usage()
		return 2
	}

	c, err := engine.SelectBackend(*backend, stderr)
	if err != nil {
		fmt.Fprintf(stderr, "[!] %s\n", err)
		return 2
	}
	if os.Getenv("IMAGE_FLIP_LOG_LEVEL") == "debug" {
		log.Printf("image-flip %s (built %s, commit %s), backend %s", Version, BuildTime, GitCommit, c.Name())
	}

	eng := &engine.Engine{Codec: c, Out: stdout}

	if *input != "" {
		if _, err := os.Stat(*input); err != nil {
			fmt.Fprintf(stderr, "[!] Input file does not exist: %s\n", *input)
			return 2
		}
		outPath := *output
		if outPath == "" {
			outPath = engine.DeriveOutputPath(*input, mode)
		}
		if !eng.ProcessFile(*input, outPath, mode, *overwrite) {
			return 1
		}
		return 0
	}

	if *outputFolder == "" {
		fmt.Fprintln(stderr, "[!] --output-folder is required when using --input-folder")
		return 2
	}
	eng.BatchProcess(*inputFolder, *outputFolder, mode, *overwrite)
	return 0
}
