package text

import (
	"bytes"
	"sync"

	"github.com/go-text/typesetting/di"
	"github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
)

// GoTextShaper measures text with HarfBuzz shaping from go-text/typesetting.
// Shaping applies kerning and ligatures from the font's OpenType tables, so
// its advances can differ slightly from FaceMeasurer for proportional fonts.
//
// GoTextShaper is safe for concurrent use. It caches parsed font.Font objects
// (which are thread-safe) and creates a lightweight font.Face per call
// (font.Face is NOT safe for concurrent use). HarfbuzzShaper instances are
// pooled since they are not concurrent-safe either.
type GoTextShaper struct {
	shaperPool sync.Pool

	// mu protects fontCache.
	mu        sync.RWMutex
	fontCache map[*FontSource]*font.Font
}

// NewGoTextShaper creates a new GoTextShaper.
func NewGoTextShaper() *GoTextShaper {
	return &GoTextShaper{
		shaperPool: sync.Pool{
			New: func() any {
				return &shaping.HarfbuzzShaper{}
			},
		},
		fontCache: make(map[*FontSource]*font.Font),
	}
}

// Advance implements Measurer. It returns 0 if the font cannot be parsed.
func (s *GoTextShaper) Advance(src *FontSource, text string, size float64) float64 {
	text = Normalize(text)
	if text == "" || src == nil {
		return 0
	}

	f, err := s.getOrCreateFont(src)
	if err != nil {
		return 0
	}

	runes := []rune(text)
	input := shaping.Input{
		Text:      runes,
		RunStart:  0,
		RunEnd:    len(runes),
		Direction: di.DirectionLTR,
		Face:      font.NewFace(f),
		Size:      floatToFixed(size),
		Script:    detectScript(runes),
		Language:  language.NewLanguage("en"),
	}

	hb := s.shaperPool.Get().(*shaping.HarfbuzzShaper)
	output := hb.Shape(input)
	s.shaperPool.Put(hb)

	return fixedToFloat(output.Advance)
}

// getOrCreateFont returns the cached go-text font for src, parsing it on
// first use.
func (s *GoTextShaper) getOrCreateFont(src *FontSource) (*font.Font, error) {
	s.mu.RLock()
	if f, ok := s.fontCache[src]; ok {
		s.mu.RUnlock()
		return f, nil
	}
	s.mu.RUnlock()

	s.mu.Lock()
	defer s.mu.Unlock()

	if f, ok := s.fontCache[src]; ok {
		return f, nil
	}

	face, err := font.ParseTTF(bytes.NewReader(src.Data()))
	if err != nil {
		return nil, err
	}

	s.fontCache[src] = face.Font
	return face.Font, nil
}

// detectScript returns the script of the first non-space rune.
func detectScript(runes []rune) language.Script {
	for _, r := range runes {
		if r == ' ' || r == '\t' || r == '\n' || r == '\r' {
			continue
		}
		return language.LookupScript(r)
	}
	return language.Latin
}
