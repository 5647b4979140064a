package roomrender

import (
	"image"

	"github.com/gogpu/roomrender/assets"
	imgutil "github.com/gogpu/roomrender/internal/image"
)

// DrawTile composites tile onto cell.
//
// Tiles whose native size differs from the canvas scale are resampled to
// scale×scale with nearest-neighbor sampling first. The tile is blended
// with straight-alpha source-over and never writes outside the cell.
// Cells outside the grid are a caller error; such writes are clipped to the
// canvas.
func (r *Renderer) DrawTile(c *Canvas, cell Cell, tile assets.Tile) error {
	img, err := r.scaledTile(tile, c.scale)
	if err != nil {
		return err
	}
	imgutil.DrawOver(c.img, c.CellRect(cell), cell.Origin(c.scale), img)
	return nil
}

// DrawTerrain draws the terrain tile for t onto cell.
func (r *Renderer) DrawTerrain(c *Canvas, cell Cell, t Terrain) error {
	return r.DrawTile(c, cell, t.Tile())
}

// DrawResource draws the resource tile for res onto cell.
func (r *Renderer) DrawResource(c *Canvas, cell Cell, res Resource) error {
	return r.DrawTile(c, cell, res.Tile())
}

// DrawStructure draws the structure tile for s onto cell.
func (r *Renderer) DrawStructure(c *Canvas, cell Cell, s Structure) error {
	return r.DrawTile(c, cell, s.Tile())
}

// MaxCachedScale is the largest scale whose resampled tiles are kept in the
// renderer's resize cache. Larger tiles are resampled on every draw, so the
// cache holds at most about MaxCachedScale²×4 bytes per entry.
const MaxCachedScale = 128

// scaledTile returns tile at scale×scale pixels.
func (r *Renderer) scaledTile(tile assets.Tile, scale int) (*image.NRGBA, error) {
	src, err := r.registry.Tile(tile)
	if err != nil {
		return nil, err
	}

	b := src.Bounds()
	if b.Dx() == scale && b.Dy() == scale {
		return src, nil
	}

	resample := func() *image.NRGBA {
		Logger().Debug("resampling tile",
			"tile", tile.String(),
			"from", b.Size().String(),
			"scale", scale)
		return imgutil.ResizeNearest(src, scale, scale)
	}
	if scale > MaxCachedScale {
		return resample(), nil
	}
	return r.resized.GetOrCreate(resizeKey{tile: tile, scale: scale}, resample), nil
}
