package image

import (
	"image"
	"image/color"
	"testing"
)

func solid(w, h int, c color.NRGBA) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	Fill(img, img.Bounds(), c)
	return img
}

func TestFill(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 4, 4))
	Fill(img, image.Rect(1, 1, 3, 3), color.NRGBA{10, 20, 30, 40})

	for y := range 4 {
		for x := range 4 {
			got := img.NRGBAAt(x, y)
			inside := x >= 1 && x < 3 && y >= 1 && y < 3
			want := color.NRGBA{}
			if inside {
				want = color.NRGBA{10, 20, 30, 40}
			}
			if got != want {
				t.Errorf("pixel (%d, %d) = %v, want %v", x, y, got, want)
			}
		}
	}
}

func TestFillOutOfBounds(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	// Must not panic.
	Fill(img, image.Rect(-5, -5, 10, 10), color.NRGBA{1, 2, 3, 4})
	if got := img.NRGBAAt(1, 1); got != (color.NRGBA{1, 2, 3, 4}) {
		t.Errorf("pixel (1, 1) = %v, want filled", got)
	}
}

func TestBlendOver(t *testing.T) {
	tests := []struct {
		name     string
		src, dst color.NRGBA
		want     color.NRGBA
	}{
		{"transparent source keeps destination", color.NRGBA{255, 0, 0, 0}, color.NRGBA{1, 2, 3, 200}, color.NRGBA{1, 2, 3, 200}},
		{"opaque source replaces destination", color.NRGBA{255, 0, 0, 255}, color.NRGBA{1, 2, 3, 200}, color.NRGBA{255, 0, 0, 255}},
		{"transparent destination takes source", color.NRGBA{9, 8, 7, 100}, color.NRGBA{}, color.NRGBA{9, 8, 7, 100}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, g, b, a := BlendOver(tt.src.R, tt.src.G, tt.src.B, tt.src.A, tt.dst.R, tt.dst.G, tt.dst.B, tt.dst.A)
			got := color.NRGBA{r, g, b, a}
			if got != tt.want {
				t.Errorf("BlendOver(%v over %v) = %v, want %v", tt.src, tt.dst, got, tt.want)
			}
		})
	}
}

func TestBlendOverOpaqueDestination(t *testing.T) {
	r, g, b, a := BlendOver(255, 255, 255, 128, 0, 0, 0, 255)
	if a != 255 {
		t.Errorf("alpha = %d, want opaque destination to stay 255", a)
	}
	for _, c := range []uint8{r, g, b} {
		if c < 127 || c > 128 {
			t.Errorf("channel = %d, want ~128", c)
		}
	}
}

func TestBlendOverPartialAlpha(t *testing.T) {
	// 50% red over 50% blue: out alpha = 0.5 + 0.5*0.5 = 0.75.
	_, _, _, a := BlendOver(255, 0, 0, 128, 0, 0, 255, 128)
	if a < 190 || a > 192 {
		t.Errorf("alpha = %d, want ~191", a)
	}
}

func TestDrawOverPlacement(t *testing.T) {
	dst := solid(6, 6, color.NRGBA{0, 0, 0, 255})
	src := solid(2, 2, color.NRGBA{255, 0, 0, 255})

	DrawOver(dst, dst.Bounds(), image.Pt(3, 1), src)

	for y := range 6 {
		for x := range 6 {
			inside := x >= 3 && x < 5 && y >= 1 && y < 3
			want := color.NRGBA{0, 0, 0, 255}
			if inside {
				want = color.NRGBA{255, 0, 0, 255}
			}
			if got := dst.NRGBAAt(x, y); got != want {
				t.Errorf("pixel (%d, %d) = %v, want %v", x, y, got, want)
			}
		}
	}
}

func TestDrawOverClip(t *testing.T) {
	dst := solid(6, 6, color.NRGBA{0, 0, 0, 255})
	src := solid(4, 4, color.NRGBA{0, 255, 0, 255})

	clip := image.Rect(1, 1, 3, 3)
	DrawOver(dst, clip, image.Pt(0, 0), src)

	for y := range 6 {
		for x := range 6 {
			want := color.NRGBA{0, 0, 0, 255}
			if image.Pt(x, y).In(clip) {
				want = color.NRGBA{0, 255, 0, 255}
			}
			if got := dst.NRGBAAt(x, y); got != want {
				t.Errorf("pixel (%d, %d) = %v, want %v", x, y, got, want)
			}
		}
	}
}

func TestDrawOverOffCanvas(t *testing.T) {
	dst := solid(4, 4, color.NRGBA{0, 0, 0, 255})
	src := solid(4, 4, color.NRGBA{255, 255, 255, 255})

	// Partially outside: only the overlapping 2x2 corner is written.
	DrawOver(dst, dst.Bounds(), image.Pt(2, 2), src)
	if got := dst.NRGBAAt(3, 3); got != (color.NRGBA{255, 255, 255, 255}) {
		t.Errorf("pixel (3, 3) = %v, want white", got)
	}
	if got := dst.NRGBAAt(1, 1); got != (color.NRGBA{0, 0, 0, 255}) {
		t.Errorf("pixel (1, 1) = %v, want black", got)
	}

	// Entirely outside: no-op, no panic.
	DrawOver(dst, dst.Bounds(), image.Pt(10, 10), src)
}

func TestDrawMaskOver(t *testing.T) {
	dst := solid(4, 4, color.NRGBA{0, 0, 0, 255})
	mask := image.NewAlpha(image.Rect(0, 0, 2, 2))
	mask.SetAlpha(0, 0, color.Alpha{255})
	mask.SetAlpha(1, 1, color.Alpha{128})

	DrawMaskOver(dst, image.Rect(1, 1, 3, 3), color.NRGBA{255, 255, 255, 255}, mask, image.Point{})

	if got := dst.NRGBAAt(1, 1); got != (color.NRGBA{255, 255, 255, 255}) {
		t.Errorf("full coverage pixel = %v, want white", got)
	}
	if got := dst.NRGBAAt(2, 1); got != (color.NRGBA{0, 0, 0, 255}) {
		t.Errorf("zero coverage pixel = %v, want black", got)
	}
	got := dst.NRGBAAt(2, 2)
	if got.R < 120 || got.R > 135 || got.A != 255 {
		t.Errorf("half coverage pixel = %v, want ~gray", got)
	}
	if got := dst.NRGBAAt(0, 0); got != (color.NRGBA{0, 0, 0, 255}) {
		t.Errorf("pixel outside rect = %v, want black", got)
	}
}
