// Package variant provides ready-made text extraction variants for the
// pipeline: numeric labels such as counters and ranks, and word labels such
// as player or deck names.
//
// Both locate their text with an imaging.RelativeRegion, so one definition
// works for any screenshot resolution. Each bounds its own retries with
// MaxAttempts; the pipeline itself never stops a variant that keeps asking
// to retry.
package variant

import (
	"image"

	"github.com/ironsheep/screen-text-ocr/internal/imaging"
	"github.com/ironsheep/screen-text-ocr/internal/pipeline"
)

// Numeric extracts a number.
//
// If the normalized result is empty, it retries with the crop widened by
// GrowPerRetry pixels per side for each earlier attempt, until MaxAttempts
// iterations have run.
type Numeric struct {
	Name         string
	Region       imaging.RelativeRegion
	MaxAttempts  int
	GrowPerRetry int
}

// Crop cuts Region out of the screenshot, grown by GrowPerRetry pixels per earlier iteration.
func (n Numeric) Crop(screenshot image.Image, iteration int) (image.Image, error) {
	return imaging.CropRelative(screenshot, n.Region, iteration*n.GrowPerRetry)
}

// Normalize maps digit look-alikes and drops everything else.
func (n Numeric) Normalize(raw string, _ int) string {
	return NormalizeDigits(raw)
}

// ShouldRetry reports whether text is empty and fewer than MaxAttempts iterations have run.
func (n Numeric) ShouldRetry(text string, completed int) bool {
	return text == "" && completed < n.MaxAttempts
}

// Filename returns Name.
func (n Numeric) Filename() string {
	return n.Name
}

// Word extracts alphabetic text, such as a name.
//
// With MaxAttempts of 0 or 1 it never retries; otherwise it retries on an
// empty result until MaxAttempts iterations have run.
type Word struct {
	Name        string
	Region      imaging.RelativeRegion
	MaxAttempts int
}

// Crop cuts Region out of the screenshot.
func (w Word) Crop(screenshot image.Image, _ int) (image.Image, error) {
	return imaging.CropRelative(screenshot, w.Region, 0)
}

// Normalize turns digits that look like letters into letters and keeps only word characters.
func (w Word) Normalize(raw string, _ int) string {
	return NormalizeWord(raw)
}

// ShouldRetry reports whether text is empty and fewer than MaxAttempts iterations have run.
func (w Word) ShouldRetry(text string, completed int) bool {
	return text == "" && completed < w.MaxAttempts
}

// Filename returns Name.
func (w Word) Filename() string {
	return w.Name
}

var (
	_ pipeline.Variant = Numeric{}
	_ pipeline.Variant = Word{}
)
