package imaging

import (
	"errors"
	"image"
	"image/color"
	"math"
	"testing"
)

func gray8(img image.Image, x, y int) (uint8, uint8, uint8, uint8) {
	r, g, b, a := img.At(x, y).RGBA()
	return uint8(r >> 8), uint8(g >> 8), uint8(b >> 8), uint8(a >> 8)
}

func TestEnhance_Dimensions(t *testing.T) {
	sizes := []struct{ w, h int }{
		{1, 1},
		{7, 13},
		{100, 20},
		{33, 64},
	}

	for _, s := range sizes {
		img := createPatternImage(s.w, s.h)
		out, err := Enhance(img)
		if err != nil {
			t.Fatalf("Enhance(%dx%d) failed: %v", s.w, s.h, err)
		}
		b := out.Bounds()
		if b.Dx() != 3*s.w || b.Dy() != 3*s.h {
			t.Errorf("Enhance(%dx%d) size: got %dx%d, want %dx%d", s.w, s.h, b.Dx(), b.Dy(), 3*s.w, 3*s.h)
		}
	}
}

func TestEnhance_OffsetBounds(t *testing.T) {
	img := createPatternImage(40, 40).SubImage(image.Rect(10, 10, 30, 20))
	out, err := Enhance(img)
	if err != nil {
		t.Fatalf("Enhance failed: %v", err)
	}
	if b := out.Bounds(); b != image.Rect(0, 0, 60, 30) {
		t.Errorf("bounds: got %v, want (0,0)-(60,30)", b)
	}
}

func TestEnhance_DoesNotModifyInput(t *testing.T) {
	img := createPatternImage(10, 10)
	before := append([]uint8(nil), img.Pix...)

	if _, err := Enhance(img); err != nil {
		t.Fatalf("Enhance failed: %v", err)
	}
	for i := range before {
		if img.Pix[i] != before[i] {
			t.Fatal("Enhance modified its input")
		}
	}
}

func TestEnhance_WhiteTextOnDarkBecomesDarkOnLight(t *testing.T) {
	img := createInMemoryImage(10, 10, color.RGBA{20, 20, 20, 255})
	img.Set(5, 5, color.White)

	out, err := Enhance(img)
	if err != nil {
		t.Fatalf("Enhance failed: %v", err)
	}

	// Background: 20 -> invert 235 -> 235*1.8-30 clamps to 255.
	if r, g, b, a := gray8(out, 0, 0); r != 255 || g != 255 || b != 255 || a != 255 {
		t.Errorf("background: got (%d,%d,%d,%d), want (255,255,255,255)", r, g, b, a)
	}
	// Text pixel: 255 -> invert 0 -> rescale 0. It covers a 3x3 block.
	for y := 15; y < 18; y++ {
		for x := 15; x < 18; x++ {
			if r, _, _, _ := gray8(out, x, y); r != 0 {
				t.Errorf("text pixel (%d,%d): got %d, want 0", x, y, r)
			}
		}
	}
}

func TestEnhance_OutputIsOpaque(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 4, 4))
	img.SetNRGBA(0, 0, color.NRGBA{200, 200, 200, 0})
	img.SetNRGBA(1, 0, color.NRGBA{200, 200, 200, 128})
	img.SetNRGBA(2, 0, color.NRGBA{200, 200, 200, 255})

	out, err := Enhance(img)
	if err != nil {
		t.Fatalf("Enhance failed: %v", err)
	}
	b := out.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if _, _, _, a := gray8(out, x, y); a != 255 {
				t.Fatalf("pixel (%d,%d) alpha = %d, want 255", x, y, a)
			}
		}
	}

	// Alpha is dropped and the stored colour kept, so every pixel follows
	// 200 -> gray 200 -> invert 55 -> 55*1.8-30 = 69.
	for x := 0; x < 3; x++ {
		for dy := 0; dy < UpscaleFactor; dy++ {
			for dx := 0; dx < UpscaleFactor; dx++ {
				if r, _, _, _ := gray8(out, x*UpscaleFactor+dx, dy); r != 69 {
					t.Errorf("src x=%d: got %d, want 69", x, r)
				}
			}
		}
	}
}

func TestGrayscale_DropsAlphaKeepsColour(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 3, 1))
	img.SetNRGBA(0, 0, color.NRGBA{200, 200, 200, 0})
	img.SetNRGBA(1, 0, color.NRGBA{200, 200, 200, 128})
	img.SetNRGBA(2, 0, color.NRGBA{200, 200, 200, 255})

	out := Grayscale(img)
	for x := 0; x < 3; x++ {
		c := out.NRGBAAt(x, 0)
		if c.A != 255 {
			t.Errorf("pixel %d alpha: got %d, want 255", x, c.A)
		}
		if c.R != 200 || c.G != 200 || c.B != 200 {
			t.Errorf("pixel %d: got (%d,%d,%d), want 200 gray", x, c.R, c.G, c.B)
		}
	}
}

func TestUpscale_DropsAlphaKeepsColour(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 1, 1))
	img.SetNRGBA(0, 0, color.NRGBA{10, 120, 240, 64})

	out := Upscale(img, 2)
	for y := 0; y < 2; y++ {
		for x := 0; x < 2; x++ {
			if c := out.NRGBAAt(x, y); c != (color.NRGBA{10, 120, 240, 255}) {
				t.Errorf("pixel (%d,%d): got %v, want {10 120 240 255}", x, y, c)
			}
		}
	}
}

func TestEnhanceWith_InvalidRescale(t *testing.T) {
	img := createPatternImage(4, 4)

	tests := []struct {
		name          string
		scale, offset float64
	}{
		{"nan scale", math.NaN(), 0},
		{"inf scale", math.Inf(1), 0},
		{"negative scale", -1, 0},
		{"nan offset", 1, math.NaN()},
		{"inf offset", 1, math.Inf(-1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := EnhanceWith(img, tt.scale, tt.offset)
			if err == nil {
				t.Fatal("EnhanceWith should fail")
			}
			if !errors.Is(err, ErrInvalidRescale) {
				t.Errorf("error %v should wrap ErrInvalidRescale", err)
			}
		})
	}
}

func TestGrayscale(t *testing.T) {
	tests := []struct {
		name string
		c    color.Color
		want uint8
	}{
		{"black", color.RGBA{0, 0, 0, 255}, 0},
		{"white", color.RGBA{255, 255, 255, 255}, 255},
		{"mid gray", color.RGBA{128, 128, 128, 255}, 128},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := Grayscale(createInMemoryImage(2, 2, tt.c))
			r, g, b, a := gray8(out, 1, 1)
			if r != g || g != b {
				t.Fatalf("not gray: (%d,%d,%d)", r, g, b)
			}
			if diff := int(r) - int(tt.want); diff < -1 || diff > 1 {
				t.Errorf("gray value: got %d, want %d", r, tt.want)
			}
			if a != 255 {
				t.Errorf("alpha: got %d, want 255", a)
			}
		})
	}
}

func TestGrayscale_LuminanceOrdering(t *testing.T) {
	// Green carries the most luminance and blue the least.
	red, _, _, _ := gray8(Grayscale(createInMemoryImage(1, 1, color.RGBA{255, 0, 0, 255})), 0, 0)
	green, _, _, _ := gray8(Grayscale(createInMemoryImage(1, 1, color.RGBA{0, 255, 0, 255})), 0, 0)
	blue, _, _, _ := gray8(Grayscale(createInMemoryImage(1, 1, color.RGBA{0, 0, 255, 255})), 0, 0)

	if !(green > red && red > blue) {
		t.Errorf("luminance order: red=%d green=%d blue=%d", red, green, blue)
	}
}

func TestUpscale_NearestNeighbour(t *testing.T) {
	img := createPatternImage(2, 2)
	out := Upscale(img, 3)

	if b := out.Bounds(); b.Dx() != 6 || b.Dy() != 6 {
		t.Fatalf("size: got %dx%d, want 6x6", b.Dx(), b.Dy())
	}

	// Every source pixel becomes a uniform 3x3 block.
	for sy := 0; sy < 2; sy++ {
		for sx := 0; sx < 2; sx++ {
			wr, wg, wb, _ := gray8(img, sx, sy)
			for dy := 0; dy < 3; dy++ {
				for dx := 0; dx < 3; dx++ {
					r, g, b, a := gray8(out, sx*3+dx, sy*3+dy)
					if r != wr || g != wg || b != wb || a != 255 {
						t.Fatalf("pixel (%d,%d): got (%d,%d,%d,%d), want (%d,%d,%d,255)",
							sx*3+dx, sy*3+dy, r, g, b, a, wr, wg, wb)
					}
				}
			}
		}
	}
}

func TestInvert_IsItsOwnInverse(t *testing.T) {
	gray := Grayscale(createPatternImage(8, 8))
	twice := Invert(Invert(gray))

	b := gray.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			r1, g1, b1, a1 := gray8(gray, x, y)
			r2, g2, b2, a2 := gray8(twice, x, y)
			if r1 != r2 || g1 != g2 || b1 != b2 || a1 != a2 {
				t.Fatalf("pixel (%d,%d): got (%d,%d,%d,%d), want (%d,%d,%d,%d)",
					x, y, r2, g2, b2, a2, r1, g1, b1, a1)
			}
		}
	}
}

func TestInvert(t *testing.T) {
	out := Invert(createInMemoryImage(1, 1, color.RGBA{10, 100, 250, 255}))
	r, g, b, a := gray8(out, 0, 0)
	if r != 245 || g != 155 || b != 5 || a != 255 {
		t.Errorf("got (%d,%d,%d,%d), want (245,155,5,255)", r, g, b, a)
	}
}

func TestRescaleValue(t *testing.T) {
	tests := []struct {
		in, want uint8
	}{
		{0, 0},
		{16, 0},
		{17, 0},
		{18, 2},
		{100, 150},
		{150, 240},
		{200, 255},
		{255, 255},
	}

	for _, tt := range tests {
		got := RescaleValue(tt.in, DefaultContrastScale, DefaultContrastOffset)
		if got != tt.want {
			t.Errorf("RescaleValue(%d) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestRescaleValue_Monotonic(t *testing.T) {
	prev := RescaleValue(0, DefaultContrastScale, DefaultContrastOffset)
	for v := 1; v < 256; v++ {
		cur := RescaleValue(uint8(v), DefaultContrastScale, DefaultContrastOffset)
		if cur < prev {
			t.Fatalf("RescaleValue not monotonic at %d: %d < %d", v, cur, prev)
		}
		prev = cur
	}
}

func TestRescale_Image(t *testing.T) {
	for _, v := range []uint8{0, 16, 100, 200} {
		img := createInMemoryImage(3, 3, color.RGBA{v, v, v, 255})
		out, err := Rescale(img, DefaultContrastScale, DefaultContrastOffset)
		if err != nil {
			t.Fatalf("Rescale failed: %v", err)
		}
		want := RescaleValue(v, DefaultContrastScale, DefaultContrastOffset)
		r, g, b, a := gray8(out, 1, 1)
		if r != want || g != want || b != want || a != 255 {
			t.Errorf("Rescale(%d): got (%d,%d,%d,%d), want (%d,%d,%d,255)", v, r, g, b, a, want, want, want)
		}
	}
}
