package text

import (
	"image"
	"math"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
	"golang.org/x/text/unicode/norm"
)

// Normalize returns s in Unicode normalization form C.
// Labels are normalized before measuring and drawing so that composed and
// decomposed spellings produce the same glyphs.
func Normalize(s string) string {
	return norm.NFC.String(s)
}

// Mask rasterizes text at the given pixel size into an alpha coverage mask.
//
// The mask bounds start at (0, 0), which is the top-left corner of the text
// box: the baseline lies at Ascent. The mask is as wide as the text advance
// (rounded up) and as tall as the line box, so glyph parts beyond the
// advance box are clipped. Returns nil for empty text.
func Mask(src *FontSource, text string, size float64) (*image.Alpha, error) {
	text = Normalize(text)
	if text == "" {
		return nil, nil
	}

	face, err := src.NewFace(size)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = face.Close()
	}()

	m := src.Metrics(size)
	w := font.MeasureString(face, text).Ceil()
	h := int(math.Ceil(m.Height()))
	if w <= 0 || h <= 0 {
		return nil, nil
	}

	mask := image.NewAlpha(image.Rect(0, 0, w, h))
	d := &font.Drawer{
		Dst:  mask,
		Src:  image.Opaque,
		Face: face,
		Dot:  fixed.Point26_6{X: 0, Y: floatToFixed(m.Ascent)},
	}
	d.DrawString(text)

	return mask, nil
}
