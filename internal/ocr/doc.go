// Package ocr recognizes text in enhanced screenshot crops using Tesseract.
//
// This package wraps the Tesseract OCR engine (via gosseract/v2). It is the
// only place in the module that talks to the engine; the extraction pipeline
// sees it through a single Recognize(image) (string, error) method.
//
// # Prerequisites
//
// Tesseract must be installed on the system:
//   - Ubuntu/Debian: apt-get install tesseract-ocr libtesseract-dev
//   - macOS: brew install tesseract
//
// Language data files are required for each language:
//   - Ubuntu/Debian: apt-get install tesseract-ocr-eng (for English)
//
// # Image Transfer
//
// Images are serialized in memory and passed to the engine as bytes; no
// temporary files are written. PNG is the default. TIFF can be selected for
// Tesseract builds that read it faster.
//
// # Error Handling
//
// Recognize returns errors for:
//   - Image encoding failures
//   - Unsupported language codes or a missing tessdata directory
//   - Engine failures while reading the image
//
// The recognizer never retries. Retrying with a different crop is the
// caller's decision.
package ocr
