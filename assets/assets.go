// Package assets holds the baked-in tile images and label font and decodes
// them on demand.
//
// Every tile and the font are decoded at most once per Registry, on first
// access, and kept for the Registry's lifetime. The key set is small and
// fixed at build time, so nothing is ever evicted.
package assets

import (
	"embed"
	"errors"
	"fmt"
	"image"
	"io/fs"
	"sync"
	"sync/atomic"

	"golang.org/x/image/font/gofont/gomono"

	imgutil "github.com/gogpu/roomrender/internal/image"
	"github.com/gogpu/roomrender/text"
)

//go:embed tiles
var embedded embed.FS

// Errors returned by Registry.
var (
	// ErrUnknownTile is returned for Tile values outside the known set.
	ErrUnknownTile = errors.New("assets: unknown tile")
)

// Registry is the process-wide cache of decoded assets.
//
// A Registry is safe for concurrent use. Concurrent first access to the same
// key decodes once; every caller observes the fully decoded result.
type Registry struct {
	fsys     fs.FS
	fontData []byte

	tiles [tileCount]slot

	fontOnce sync.Once
	font     *text.FontSource
	fontErr  error

	decodes atomic.Int64
}

// slot holds one lazily decoded tile.
type slot struct {
	once sync.Once
	img  *image.NRGBA
	err  error
}

// Option configures a Registry.
type Option func(*Registry)

// WithFS replaces the embedded tile files. Paths are looked up with
// Tile.Path, e.g. "tiles/terrains/plain.png".
func WithFS(fsys fs.FS) Option {
	return func(r *Registry) {
		r.fsys = fsys
	}
}

// WithFont replaces the embedded font (Go Mono) with TTF/OTF data.
func WithFont(data []byte) Option {
	return func(r *Registry) {
		r.fontData = data
	}
}

// NewRegistry creates a Registry. Nothing is decoded until first use or Warm.
func NewRegistry(opts ...Option) *Registry {
	r := &Registry{
		fsys:     embedded,
		fontData: gomono.TTF,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

var defaultRegistry = sync.OnceValue(func() *Registry {
	return NewRegistry()
})

// Default returns a shared Registry over the embedded assets.
func Default() *Registry {
	return defaultRegistry()
}

// Tile returns the decoded image for t. The returned image is shared and
// must not be modified.
func (r *Registry) Tile(t Tile) (*image.NRGBA, error) {
	if !t.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownTile, t)
	}

	s := &r.tiles[t]
	s.once.Do(func() {
		s.img, s.err = r.decodeTile(t)
	})
	return s.img, s.err
}

// Font returns the parsed label font.
func (r *Registry) Font() (*text.FontSource, error) {
	r.fontOnce.Do(func() {
		r.decodes.Add(1)
		r.font, r.fontErr = text.NewFontSource(r.fontData)
		if r.fontErr != nil {
			r.fontErr = fmt.Errorf("assets: font: %w", r.fontErr)
		}
	})
	return r.font, r.fontErr
}

// Warm decodes every tile and the font, returning the first error.
// Use it at startup to surface broken assets before rendering.
func (r *Registry) Warm() error {
	if _, err := r.Font(); err != nil {
		return err
	}
	for _, t := range Tiles() {
		if _, err := r.Tile(t); err != nil {
			return err
		}
	}
	return nil
}

// Decodes returns how many decode operations the Registry has performed.
func (r *Registry) Decodes() int64 {
	return r.decodes.Load()
}

func (r *Registry) decodeTile(t Tile) (*image.NRGBA, error) {
	r.decodes.Add(1)

	data, err := fs.ReadFile(r.fsys, t.Path())
	if err != nil {
		return nil, fmt.Errorf("assets: read %s: %w", t, err)
	}
	img, err := imgutil.DecodePNG(data)
	if err != nil {
		return nil, fmt.Errorf("assets: decode %s: %w", t, err)
	}
	return img, nil
}
