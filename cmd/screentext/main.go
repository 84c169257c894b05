package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/ironsheep/screen-text-ocr/internal/config"
	"github.com/ironsheep/screen-text-ocr/internal/debugsink"
	"github.com/ironsheep/screen-text-ocr/internal/imaging"
	"github.com/ironsheep/screen-text-ocr/internal/logging"
	"github.com/ironsheep/screen-text-ocr/internal/ocr"
	"github.com/ironsheep/screen-text-ocr/internal/pipeline"
	"github.com/ironsheep/screen-text-ocr/internal/variant"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

const usage = `screentext - extract a text value from a screenshot region

Usage: screentext <image> <numeric|word> <left> <top> <right> <bottom>

The region is given as fractions (0.0 to 1.0) of the screenshot size.

Options:
  --version, -v    Print version information
  --help, -h       Print this help message

Environment variables (also read from .env):
  SCREENTEXT_DEBUG_DIR=<dir>      Save enhanced images here
  SCREENTEXT_LANGUAGE=eng         Tesseract languages, '+' separated
  SCREENTEXT_TESSDATA=<dir>       Tesseract tessdata directory
  SCREENTEXT_WHITELIST=<chars>    Restrict recognized characters
  SCREENTEXT_ENCODING=png|tiff    Image format handed to Tesseract
  SCREENTEXT_LOG_LEVEL=info       debug, info, warn or error`

func main() {
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "--version", "-v", "version":
			fmt.Printf("screentext %s\n", Version)
			fmt.Printf("  Build time: %s\n", BuildTime)
			fmt.Printf("  Git commit: %s\n", GitCommit)
			fmt.Printf("  Tesseract:  %s\n", ocr.Version())
			return
		case "--help", "-h", "help":
			fmt.Println(usage)
			return
		}
	}

	if len(os.Args) != 7 {
		fmt.Fprintln(os.Stderr, usage)
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "configuration error: %v\n", err)
		os.Exit(2)
	}
	log := logging.New(cfg.LogLevel, os.Stderr)

	text, err := run(cfg, log, os.Args[1:])
	if err != nil {
		log.Fatal().Err(err).Msg("Extraction failed")
	}
	fmt.Println(text)
}

func run(cfg *config.Config, log zerolog.Logger, args []string) (string, error) {
	path, kind := args[0], args[1]

	region, err := parseRegion(args[2:6])
	if err != nil {
		return "", err
	}

	v, err := newVariant(kind, region)
	if err != nil {
		return "", err
	}

	screenshot, err := imaging.NewImageCache().Load(path)
	if err != nil {
		return "", err
	}

	opts := []pipeline.Option{pipeline.WithLogger(log)}
	if cfg.DebugDir != "" {
		opts = append(opts, pipeline.WithSink(debugsink.NewFolder(cfg.DebugDir)))
	}

	p := pipeline.New(ocr.NewTesseract(cfg.OCROptions()), opts...)
	return p.Process(screenshot, v)
}

func newVariant(kind string, region imaging.RelativeRegion) (pipeline.Variant, error) {
	switch kind {
	case "numeric":
		return variant.Numeric{Name: "numeric", Region: region, MaxAttempts: 3, GrowPerRetry: 4}, nil
	case "word":
		return variant.Word{Name: "word", Region: region, MaxAttempts: 1}, nil
	default:
		return nil, fmt.Errorf("unknown variant %q: want numeric or word", kind)
	}
}

func parseRegion(args []string) (imaging.RelativeRegion, error) {
	var vals [4]float64
	for i, a := range args {
		v, err := strconv.ParseFloat(a, 64)
		if err != nil {
			return imaging.RelativeRegion{}, fmt.Errorf("invalid region value %q: %w", a, err)
		}
		vals[i] = v
	}

	region := imaging.RelativeRegion{Left: vals[0], Top: vals[1], Right: vals[2], Bottom: vals[3]}
	if err := region.Validate(); err != nil {
		return imaging.RelativeRegion{}, err
	}
	return region, nil
}
