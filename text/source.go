package text

import (
	"fmt"

	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
)

// FontSource represents a parsed font file.
// One FontSource serves any number of sizes; faces are created on demand.
//
// FontSource is immutable after creation and safe for concurrent use.
// FontSource must not be copied after creation (enforced by copyCheck).
type FontSource struct {
	// addr is used for copy protection (Ebitengine pattern).
	// It must point to the FontSource itself.
	addr *FontSource

	data []byte
	font *opentype.Font
	name string
}

// Metrics holds vertical font metrics in pixels at a given size.
type Metrics struct {
	// Ascent is the distance from the baseline to the top of the line box.
	Ascent float64
	// Descent is the positive distance from the baseline to the bottom of the line box.
	Descent float64
}

// Height returns the height of the text box, Ascent + Descent.
func (m Metrics) Height() float64 {
	return m.Ascent + m.Descent
}

// NewFontSource parses font data (TTF or OTF).
// The data slice is copied internally and can be reused after this call.
func NewFontSource(data []byte) (*FontSource, error) {
	if len(data) == 0 {
		return nil, ErrEmptyFontData
	}

	f, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("text: failed to parse font: %w", err)
	}

	dataCopy := make([]byte, len(data))
	copy(dataCopy, data)

	s := &FontSource{
		data: dataCopy,
		font: f,
	}
	s.addr = s
	s.name = fontName(f)

	return s, nil
}

// Name returns the font family name.
func (s *FontSource) Name() string {
	s.copyCheck()
	return s.name
}

// Data returns the raw font bytes. Callers must not modify them.
func (s *FontSource) Data() []byte {
	s.copyCheck()
	return s.data
}

// NewFace creates a rasterizing face at the given pixel size.
// The face is not safe for concurrent use; callers should Close it when done.
func (s *FontSource) NewFace(size float64) (font.Face, error) {
	s.copyCheck()
	if size <= 0 {
		return nil, fmt.Errorf("%w: %g", ErrInvalidSize, size)
	}

	face, err := opentype.NewFace(s.font, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingNone,
	})
	if err != nil {
		return nil, fmt.Errorf("text: failed to create face: %w", err)
	}
	return face, nil
}

// Metrics returns the vertical metrics at the given pixel size.
func (s *FontSource) Metrics(size float64) Metrics {
	s.copyCheck()

	var buf sfnt.Buffer
	m, err := s.font.Metrics(&buf, floatToFixed(size), font.HintingNone)
	if err != nil {
		return Metrics{}
	}

	// sfnt reports Descent as a positive distance below the baseline.
	descent := fixedToFloat(m.Descent)
	if descent < 0 {
		descent = -descent
	}

	return Metrics{
		Ascent:  fixedToFloat(m.Ascent),
		Descent: descent,
	}
}

// copyCheck panics if FontSource was copied by value.
func (s *FontSource) copyCheck() {
	if s.addr != s {
		panic("text: FontSource must not be copied by value")
	}
}

// fontName extracts the family name, falling back to the full name.
func fontName(f *opentype.Font) string {
	if name, err := f.Name(nil, sfnt.NameIDFamily); err == nil && name != "" {
		return name
	}
	if name, err := f.Name(nil, sfnt.NameIDFull); err == nil && name != "" {
		return name
	}
	return "Unknown Font"
}

// floatToFixed converts a float64 size to fixed.Int26_6.
func floatToFixed(v float64) fixed.Int26_6 {
	return fixed.Int26_6(v * 64)
}

// fixedToFloat converts a fixed.Int26_6 value to float64.
func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64.0
}
