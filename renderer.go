package roomrender

import (
	"fmt"
	"image"

	"github.com/gogpu/roomrender/assets"
	"github.com/gogpu/roomrender/internal/cache"
	"github.com/gogpu/roomrender/text"
)

// Renderer draws tiles, heatmaps and labels onto canvases.
//
// A Renderer holds no per-canvas state and is safe for concurrent use, as
// long as each canvas has a single writer.
type Renderer struct {
	registry  *assets.Registry
	font      *text.FontSource
	measurer  text.Measurer
	labelSize float64

	// resized holds tiles resampled to a scale other than their native size.
	resized *cache.Cache[resizeKey, *image.NRGBA]
}

type resizeKey struct {
	tile  assets.Tile
	scale int
}

// NewRenderer creates a Renderer.
//
// The label font is loaded immediately: a font that fails to decode is an
// initialization error and no Renderer is returned.
func NewRenderer(opts ...RendererOption) (*Renderer, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.registry == nil {
		o.registry = assets.Default()
	}

	if o.warm {
		if err := o.registry.Warm(); err != nil {
			return nil, fmt.Errorf("roomrender: warm assets: %w", err)
		}
	}

	font, err := o.registry.Font()
	if err != nil {
		return nil, fmt.Errorf("roomrender: load font: %w", err)
	}

	Logger().Info("renderer created",
		"font", font.Name(),
		"label_size", o.labelSize,
		"resize_cache", o.resizeCacheSize,
		"warm", o.warm)

	return &Renderer{
		registry:  o.registry,
		font:      font,
		measurer:  o.measurer,
		labelSize: o.labelSize,
		resized:   cache.New[resizeKey, *image.NRGBA](o.resizeCacheSize),
	}, nil
}

// Registry returns the asset registry used by r.
func (r *Renderer) Registry() *assets.Registry {
	return r.registry
}

// Font returns the label font.
func (r *Renderer) Font() *text.FontSource {
	return r.font
}

// LabelSize returns the nominal label font size at the given scale.
func (r *Renderer) LabelSize(scale int) float64 {
	return r.labelSize * float64(scale) / DefaultScale
}

// ResizeStats reports resampled tile cache statistics.
func (r *Renderer) ResizeStats() cache.Stats {
	return r.resized.Stats()
}
