// Package imaging provides the image operations used to prepare screenshot
// regions for text recognition.
//
// The central operation is Enhance, which turns a small, noisy crop of a
// screenshot into a large, high-contrast image that an OCR engine reads more
// reliably. It always applies the same four steps in the same order:
//
//  1. Grayscale: color-space conversion to luminance (no thresholding),
//     alpha dropped
//  2. Upscale: exactly 3x in both directions, nearest-neighbour
//  3. Invert: 255 - channel for red, green and blue
//  4. Rescale: channel*1.8 - 30, clamped to 0-255 and truncated
//
// Each step is also exported on its own so callers and tests can reason
// about them individually.
//
// # Coordinate System
//
// All pixel coordinates in this package are 0-based:
//   - X: horizontal position (0 = leftmost pixel)
//   - Y: vertical position (0 = topmost pixel)
//   - For regions, (x1,y1) is inclusive (top-left), (x2,y2) is exclusive (bottom-right)
//
// RelativeRegion expresses a region as fractions of the screenshot size so a
// text location can be described once and resolved against any resolution.
//
// # Thread Safety
//
// The ImageCache type is safe for concurrent use. All other operations are
// stateless, never mutate their input, and return freshly allocated images,
// so they can be called concurrently.
//
// # Error Handling
//
// Functions return errors for invalid inputs such as:
//   - Regions outside image bounds or with zero area
//   - Rescale parameters that are NaN, infinite or negative
//   - File I/O errors during image loading
package imaging
