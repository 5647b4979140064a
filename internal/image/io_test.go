package image

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"testing"
)

func TestDecodePNG(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 3, 2))
	src.SetNRGBA(2, 1, color.NRGBA{200, 100, 50, 77})

	var buf bytes.Buffer
	if err := png.Encode(&buf, src); err != nil {
		t.Fatalf("png.Encode: %v", err)
	}

	got, err := DecodePNG(buf.Bytes())
	if err != nil {
		t.Fatalf("DecodePNG: %v", err)
	}
	if got.Bounds() != src.Bounds() {
		t.Fatalf("bounds = %v, want %v", got.Bounds(), src.Bounds())
	}
	if c := got.NRGBAAt(2, 1); c != (color.NRGBA{200, 100, 50, 77}) {
		t.Errorf("pixel = %v, want straight-alpha value preserved", c)
	}
}

func TestDecodePNGErrors(t *testing.T) {
	if _, err := DecodePNG(nil); !errors.Is(err, ErrEmptyData) {
		t.Errorf("DecodePNG(nil) error = %v, want ErrEmptyData", err)
	}
	if _, err := DecodePNG([]byte("not a png")); err == nil {
		t.Error("DecodePNG(garbage) returned nil error")
	}
}

func TestToNRGBA(t *testing.T) {
	rgba := image.NewRGBA(image.Rect(2, 2, 4, 4))
	rgba.SetRGBA(3, 3, color.RGBA{10, 20, 30, 255})

	got := ToNRGBA(rgba)
	if got.Bounds() != image.Rect(0, 0, 2, 2) {
		t.Fatalf("bounds = %v, want origin-anchored 2x2", got.Bounds())
	}
	if c := got.NRGBAAt(1, 1); c != (color.NRGBA{10, 20, 30, 255}) {
		t.Errorf("pixel = %v, want converted color", c)
	}

	n := image.NewNRGBA(image.Rect(0, 0, 1, 1))
	if ToNRGBA(n) != n {
		t.Error("ToNRGBA copied an origin-anchored NRGBA")
	}
}
