package imaging

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/anthonynsimon/bild/adjust"
	"github.com/anthonynsimon/bild/effect"
	"github.com/disintegration/imaging"
	"github.com/lucasb-eyer/go-colorful"
)

const (
	// UpscaleFactor is the factor applied to both dimensions before recognition.
	UpscaleFactor = 3

	// DefaultContrastScale and DefaultContrastOffset define the linear
	// contrast rescale applied as the last enhancement step.
	DefaultContrastScale  = 1.8
	DefaultContrastOffset = -30.0
)

// ErrInvalidRescale is returned when Rescale is given parameters it cannot apply.
var ErrInvalidRescale = errors.New("invalid rescale parameters")

// Enhance prepares a cropped screenshot region for OCR using the default
// contrast parameters.
//
// The returned image is UpscaleFactor times larger than img in both
// dimensions and fully opaque. img is never modified.
func Enhance(img image.Image) (*image.RGBA, error) {
	return EnhanceWith(img, DefaultContrastScale, DefaultContrastOffset)
}

// EnhanceWith is Enhance with explicit contrast rescale parameters.
//
// The steps always run in this order: Grayscale, Upscale, Invert, Rescale.
// An error is returned only if the rescale parameters are invalid.
func EnhanceWith(img image.Image, scale, offset float64) (*image.RGBA, error) {
	gray := Grayscale(img)
	big := Upscale(gray, UpscaleFactor)
	inverted := Invert(big)

	out, err := Rescale(inverted, scale, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to rescale OCR image: %w", err)
	}
	return out, nil
}

// Grayscale converts every pixel to its luminance by color-space conversion.
//
// Each pixel is linearized from sRGB, reduced to its CIE XYZ luminance (Y)
// and encoded back to sRGB with R = G = B. No thresholding or dithering is
// applied. The output is fully opaque: colour is read un-premultiplied and
// any alpha is dropped, so a transparent pixel keeps the colour it carries.
func Grayscale(img image.Image) *image.NRGBA {
	bounds := img.Bounds()
	dst := image.NewNRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))

	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			n := color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
			c := colorful.Color{
				R: float64(n.R) / 255.0,
				G: float64(n.G) / 255.0,
				B: float64(n.B) / 255.0,
			}

			_, lum, _ := c.Xyz()
			v, _, _ := colorful.LinearRgb(lum, lum, lum).Clamped().RGB255()
			dst.SetNRGBA(x-bounds.Min.X, y-bounds.Min.Y, color.NRGBA{R: v, G: v, B: v, A: 255})
		}
	}

	return dst
}

// Upscale stretches img by factor in both dimensions using nearest-neighbour
// interpolation. The result is fully opaque; colour channels are kept as
// stored (un-premultiplied) and alpha is set to 255.
func Upscale(img image.Image, factor int) *image.NRGBA {
	bounds := img.Bounds()
	width := bounds.Dx() * factor
	height := bounds.Dy() * factor

	if width == 0 || height == 0 {
		return imaging.New(width, height, color.NRGBA{0, 0, 0, 255})
	}

	stretched := imaging.Resize(img, width, height, imaging.NearestNeighbor)
	for i := 3; i < len(stretched.Pix); i += 4 {
		stretched.Pix[i] = 255
	}
	return stretched
}

// Invert replaces every red, green and blue channel value v with 255 - v.
// Alpha is left untouched.
func Invert(img image.Image) *image.RGBA {
	return effect.Invert(img)
}

// Rescale applies out = v*scale + offset to the red, green and blue channels
// of every pixel, clamping to 0-255 and truncating the fraction.
//
// It returns an error wrapping ErrInvalidRescale if scale is negative or if
// either parameter is NaN or infinite.
func Rescale(img image.Image, scale, offset float64) (*image.RGBA, error) {
	if math.IsNaN(scale) || math.IsInf(scale, 0) || scale < 0 {
		return nil, fmt.Errorf("%w: scale %v", ErrInvalidRescale, scale)
	}
	if math.IsNaN(offset) || math.IsInf(offset, 0) {
		return nil, fmt.Errorf("%w: offset %v", ErrInvalidRescale, offset)
	}

	var lut [256]uint8
	for v := range lut {
		lut[v] = RescaleValue(uint8(v), scale, offset)
	}

	return adjust.Apply(img, func(c color.RGBA) color.RGBA {
		return color.RGBA{R: lut[c.R], G: lut[c.G], B: lut[c.B], A: c.A}
	}), nil
}

// RescaleValue computes the rescaled value of a single channel. The
// fractional part is dropped, so 17 at the default parameters gives 0.
func RescaleValue(v uint8, scale, offset float64) uint8 {
	out := float64(v)*scale + offset
	if out < 0 {
		return 0
	}
	if out > 255 {
		return 255
	}
	return uint8(out)
}
