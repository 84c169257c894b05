package pipeline

import "image"

// Funcs builds a Variant from plain functions.
//
// Nil hooks fall back to: the whole screenshot for CropFunc, the raw text
// for NormalizeFunc, and never retrying for RetryFunc.
type Funcs struct {
	Name          string
	CropFunc      func(screenshot image.Image, iteration int) (image.Image, error)
	NormalizeFunc func(raw string, iteration int) string
	RetryFunc     func(text string, completed int) bool
}

// Crop calls CropFunc, or returns the whole screenshot if it is nil.
func (f Funcs) Crop(screenshot image.Image, iteration int) (image.Image, error) {
	if f.CropFunc == nil {
		return screenshot, nil
	}
	return f.CropFunc(screenshot, iteration)
}

// Normalize calls NormalizeFunc, or returns raw unchanged if it is nil.
func (f Funcs) Normalize(raw string, iteration int) string {
	if f.NormalizeFunc == nil {
		return raw
	}
	return f.NormalizeFunc(raw, iteration)
}

// ShouldRetry calls RetryFunc, or reports false if it is nil.
func (f Funcs) ShouldRetry(text string, completed int) bool {
	if f.RetryFunc == nil {
		return false
	}
	return f.RetryFunc(text, completed)
}

// Filename returns Name.
func (f Funcs) Filename() string {
	return f.Name
}
