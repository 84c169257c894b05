package imaging

import (
	"fmt"
	"image"
	"math"

	"github.com/disintegration/imaging"
)

// Region represents a rectangular region within an image.
//
// Coordinates follow the standard image convention:
//   - (X1, Y1) is the top-left corner (inclusive)
//   - (X2, Y2) is the bottom-right corner (exclusive)
type Region struct {
	X1 int `json:"x1"`
	Y1 int `json:"y1"`
	X2 int `json:"x2"`
	Y2 int `json:"y2"`
}

// Rect returns the region as an image.Rectangle.
func (r Region) Rect() image.Rectangle {
	return image.Rect(r.X1, r.Y1, r.X2, r.Y2)
}

// Grow widens the region by px pixels on every side. A negative px shrinks it.
func (r Region) Grow(px int) Region {
	return Region{X1: r.X1 - px, Y1: r.Y1 - px, X2: r.X2 + px, Y2: r.Y2 + px}
}

// Clamp limits the region to bounds.
func (r Region) Clamp(bounds image.Rectangle) Region {
	return Region{
		X1: max(r.X1, bounds.Min.X),
		Y1: max(r.Y1, bounds.Min.Y),
		X2: min(r.X2, bounds.Max.X),
		Y2: min(r.Y2, bounds.Max.Y),
	}
}

// RelativeRegion describes a region as fractions (0.0 to 1.0) of an image's
// width and height, so the same text location can be found in screenshots
// of any resolution.
type RelativeRegion struct {
	Left   float64 `json:"left"`
	Top    float64 `json:"top"`
	Right  float64 `json:"right"`
	Bottom float64 `json:"bottom"`
}

// Resolve converts the relative region into pixel coordinates for an image
// with the given bounds. Edges are rounded to the nearest pixel.
func (r RelativeRegion) Resolve(bounds image.Rectangle) Region {
	w := float64(bounds.Dx())
	h := float64(bounds.Dy())
	return Region{
		X1: bounds.Min.X + int(math.Round(r.Left*w)),
		Y1: bounds.Min.Y + int(math.Round(r.Top*h)),
		X2: bounds.Min.X + int(math.Round(r.Right*w)),
		Y2: bounds.Min.Y + int(math.Round(r.Bottom*h)),
	}
}

// Validate checks that the fractions are within 0-1 and describe a
// non-empty area.
func (r RelativeRegion) Validate() error {
	for _, v := range []float64{r.Left, r.Top, r.Right, r.Bottom} {
		if math.IsNaN(v) || v < 0 || v > 1 {
			return fmt.Errorf("relative region %+v: fractions must be between 0 and 1", r)
		}
	}
	if r.Left >= r.Right || r.Top >= r.Bottom {
		return fmt.Errorf("relative region %+v: left must be < right, top must be < bottom", r)
	}
	return nil
}

// CropRegion extracts region from img into a new image whose bounds start
// at (0,0). img is not modified.
func CropRegion(img image.Image, region Region) (*image.NRGBA, error) {
	bounds := img.Bounds()

	if region.X1 < bounds.Min.X || region.Y1 < bounds.Min.Y || region.X2 > bounds.Max.X || region.Y2 > bounds.Max.Y {
		return nil, fmt.Errorf("crop region (%d,%d)-(%d,%d) outside image bounds (%d,%d)-(%d,%d)",
			region.X1, region.Y1, region.X2, region.Y2, bounds.Min.X, bounds.Min.Y, bounds.Max.X, bounds.Max.Y)
	}
	if region.X1 >= region.X2 || region.Y1 >= region.Y2 {
		return nil, fmt.Errorf("invalid crop region: x1 must be < x2, y1 must be < y2")
	}

	return imaging.Crop(img, region.Rect()), nil
}

// CropRelative resolves rel against img and crops the result, after widening
// it by grow pixels per side and clamping it to the image.
func CropRelative(img image.Image, rel RelativeRegion, grow int) (*image.NRGBA, error) {
	if err := rel.Validate(); err != nil {
		return nil, err
	}
	region := rel.Resolve(img.Bounds()).Grow(grow).Clamp(img.Bounds())
	return CropRegion(img, region)
}
