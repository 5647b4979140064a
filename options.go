package roomrender

import (
	"github.com/gogpu/roomrender/assets"
	"github.com/gogpu/roomrender/text"
)

// DefaultLabelSize is the nominal label font size in pixels at DefaultScale.
const DefaultLabelSize = 15.0

// DefaultResizeCacheSize is the default number of resampled tiles kept.
const DefaultResizeCacheSize = 256

// RendererOption configures a Renderer during creation.
//
// Example:
//
//	// Embedded assets, sfnt measuring
//	r, err := roomrender.NewRenderer()
//
//	// HarfBuzz measuring for centered labels
//	r, err := roomrender.NewRenderer(roomrender.WithMeasurer(text.NewGoTextShaper()))
type RendererOption func(*rendererOptions)

// rendererOptions holds optional configuration for Renderer creation.
type rendererOptions struct {
	registry        *assets.Registry
	measurer        text.Measurer
	labelSize       float64
	resizeCacheSize int
	warm            bool
}

// defaultOptions returns the default renderer options.
func defaultOptions() rendererOptions {
	return rendererOptions{
		registry:        nil, // Will be set to assets.Default() if nil
		measurer:        text.FaceMeasurer{},
		labelSize:       DefaultLabelSize,
		resizeCacheSize: DefaultResizeCacheSize,
	}
}

// WithRegistry sets the asset registry tiles and the font are loaded from.
// Registries can be shared between renderers.
func WithRegistry(reg *assets.Registry) RendererOption {
	return func(o *rendererOptions) {
		o.registry = reg
	}
}

// WithMeasurer sets how centered labels are measured when fitting them
// into a cell. Nil keeps the default text.FaceMeasurer.
func WithMeasurer(m text.Measurer) RendererOption {
	return func(o *rendererOptions) {
		if m != nil {
			o.measurer = m
		}
	}
}

// WithLabelSize sets the nominal label font size at DefaultScale.
// The size used on a canvas is scaled linearly with the canvas scale.
// Non-positive sizes are ignored.
func WithLabelSize(size float64) RendererOption {
	return func(o *rendererOptions) {
		if size > 0 {
			o.labelSize = size
		}
	}
}

// WithResizeCacheSize sets how many resampled tiles are kept.
// Zero or less keeps every resampled tile.
func WithResizeCacheSize(n int) RendererOption {
	return func(o *rendererOptions) {
		o.resizeCacheSize = n
	}
}

// WithWarmAssets makes NewRenderer decode every asset up front, so a broken
// asset fails construction rather than the first draw that needs it.
func WithWarmAssets() RendererOption {
	return func(o *rendererOptions) {
		o.warm = true
	}
}
