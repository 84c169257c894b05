package ocr

import (
	"bytes"
	"fmt"
	"image"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/otiai10/gosseract/v2"
	"golang.org/x/image/tiff"
)

// Encoding selects the lossless format used to hand images to Tesseract.
type Encoding string

// Supported encodings.
const (
	EncodingPNG  Encoding = "png"
	EncodingTIFF Encoding = "tiff"
)

// ParseEncoding maps a configuration string to an Encoding.
func ParseEncoding(s string) (Encoding, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "png":
		return EncodingPNG, nil
	case "tif", "tiff":
		return EncodingTIFF, nil
	default:
		return "", fmt.Errorf("unknown image encoding: %s", s)
	}
}

// Options configures a Tesseract recognizer.
type Options struct {
	// Languages are Tesseract language codes, e.g. "eng". Defaults to "eng".
	Languages []string

	// PageSegMode tells Tesseract how the text is laid out. Zero leaves
	// the engine default in place.
	PageSegMode gosseract.PageSegMode

	// Whitelist restricts recognition to these characters when non-empty.
	Whitelist string

	// TessdataPrefix points at a directory of .traineddata files when the
	// system default should not be used.
	TessdataPrefix string

	// Encoding is the format the image is serialized to. Defaults to PNG.
	Encoding Encoding
}

// Tesseract recognizes text with the Tesseract engine through gosseract.
//
// A fresh client is created for every call, so a single Tesseract value is
// safe for concurrent use.
type Tesseract struct {
	opts Options
}

// NewTesseract creates a recognizer. Zero-value fields in opts get defaults.
func NewTesseract(opts Options) *Tesseract {
	if len(opts.Languages) == 0 {
		opts.Languages = []string{"eng"}
	}
	if opts.Encoding == "" {
		opts.Encoding = EncodingPNG
	}
	return &Tesseract{opts: opts}
}

// Options returns the effective options.
func (t *Tesseract) Options() Options {
	return t.opts
}

// Recognize returns the text Tesseract reads in img with leading and
// trailing whitespace removed. Engine failures are returned wrapped and are
// never retried here.
func (t *Tesseract) Recognize(img image.Image) (string, error) {
	data, err := Encode(img, t.opts.Encoding)
	if err != nil {
		return "", err
	}

	client := gosseract.NewClient()
	defer client.Close()

	if t.opts.TessdataPrefix != "" {
		if err := client.SetTessdataPrefix(t.opts.TessdataPrefix); err != nil {
			return "", fmt.Errorf("failed to set tessdata path: %w", err)
		}
	}

	if err := client.SetLanguage(t.opts.Languages...); err != nil {
		return "", fmt.Errorf("failed to set language: %w", err)
	}

	if t.opts.PageSegMode != 0 {
		if err := client.SetPageSegMode(t.opts.PageSegMode); err != nil {
			return "", fmt.Errorf("failed to set page segmentation mode: %w", err)
		}
	}

	if t.opts.Whitelist != "" {
		if err := client.SetWhitelist(t.opts.Whitelist); err != nil {
			return "", fmt.Errorf("failed to set whitelist: %w", err)
		}
	}

	if err := client.SetImageFromBytes(data); err != nil {
		return "", fmt.Errorf("failed to set image: %w", err)
	}

	text, err := client.Text()
	if err != nil {
		return "", fmt.Errorf("OCR failed: %w", err)
	}

	return strings.TrimSpace(text), nil
}

// Encode serializes img losslessly in the given format.
func Encode(img image.Image, enc Encoding) ([]byte, error) {
	var buf bytes.Buffer

	switch enc {
	case EncodingPNG, "":
		if err := imaging.Encode(&buf, img, imaging.PNG); err != nil {
			return nil, fmt.Errorf("failed to encode image as png: %w", err)
		}
	case EncodingTIFF:
		if err := tiff.Encode(&buf, img, &tiff.Options{}); err != nil {
			return nil, fmt.Errorf("failed to encode image as tiff: %w", err)
		}
	default:
		return nil, fmt.Errorf("unknown image encoding: %s", enc)
	}

	return buf.Bytes(), nil
}

// Version returns the version of the linked Tesseract library.
func Version() string {
	client := gosseract.NewClient()
	defer client.Close()
	return client.Version()
}
