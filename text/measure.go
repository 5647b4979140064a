package text

import "golang.org/x/image/font"

// Measurer computes the horizontal advance of a string.
// Implementations must be safe for concurrent use.
type Measurer interface {
	// Advance returns the advance width of text in pixels at the given size.
	Advance(src *FontSource, text string, size float64) float64
}

// FaceMeasurer measures text with the same glyph advances and kerning the
// rasterizer uses, so measured widths match drawn widths exactly.
// It is the default Measurer.
type FaceMeasurer struct{}

// Advance implements Measurer.
func (FaceMeasurer) Advance(src *FontSource, text string, size float64) float64 {
	text = Normalize(text)
	if text == "" {
		return 0
	}

	face, err := src.NewFace(size)
	if err != nil {
		return 0
	}
	defer func() {
		_ = face.Close()
	}()

	return fixedToFloat(font.MeasureString(face, text))
}

// FitSize shrinks size so that text fits into width.
//
// The text is measured at size; when it is wider than width the size is
// scaled once by width/measured and the text is measured again. This is a
// single proportional correction, not an iteration to convergence: glyph
// metrics are close to, but not exactly, linear in size.
//
// It returns the chosen size and the text advance at that size.
func FitSize(m Measurer, src *FontSource, text string, size, width float64) (fitted, advance float64) {
	advance = m.Advance(src, text, size)
	if advance <= width || advance <= 0 {
		return size, advance
	}

	fitted = size * width / advance
	if fitted <= 0 {
		return 0, 0
	}
	return fitted, m.Advance(src, text, fitted)
}
