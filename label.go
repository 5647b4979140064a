package roomrender

import (
	"image"
	"image/color"
	"strconv"

	imgutil "github.com/gogpu/roomrender/internal/image"
	"github.com/gogpu/roomrender/text"
)

// LabelColor is the color labels are drawn in.
var LabelColor = color.NRGBA{255, 255, 255, 255}

// Label layout within a cell, in pixels.
const (
	// LabelInset is the offset of fixed labels from the cell's grid corner.
	LabelInset = 2
	// LabelPadding is the border kept free around centered labels.
	LabelPadding = 2
)

// DrawLabel draws s with its text box's top-left corner at
// (col*scale+2, row*scale+2). A non-positive size selects the nominal label
// size for the canvas scale. Output is clipped to the canvas only.
func (r *Renderer) DrawLabel(c *Canvas, cell Cell, s string, size float64) error {
	if size <= 0 {
		size = r.LabelSize(c.scale)
	}

	mask, err := text.Mask(r.font, s, size)
	if err != nil || mask == nil {
		return err
	}

	p := image.Pt(cell.Col*c.scale+LabelInset, cell.Row*c.scale+LabelInset)
	dr := image.Rectangle{Min: p, Max: p.Add(mask.Rect.Size())}
	imgutil.DrawMaskOver(c.img, dr, LabelColor, mask, image.Point{})
	return nil
}

// DrawNumber draws n at the nominal label size, like DrawLabel.
func (r *Renderer) DrawNumber(c *Canvas, cell Cell, n int) error {
	return r.DrawLabel(c, cell, strconv.Itoa(n), 0)
}

// DrawCenteredLabel draws s centered in cell, shrunk to fit.
//
// The text starts at a font size equal to the cell size. If it is wider than
// the cell minus LabelPadding on both sides, the size is scaled once by
// available/measured and the text is measured again. The text box is then
// centered in the padded area and clipped to it.
func (r *Renderer) DrawCenteredLabel(c *Canvas, cell Cell, s string) error {
	area := c.CellRect(cell).Inset(LabelPadding)
	if area.Empty() {
		return nil
	}

	size, advance := text.FitSize(r.measurer, r.font, s, float64(c.scale), float64(area.Dx()))
	if size <= 0 || advance <= 0 {
		return nil
	}

	mask, err := text.Mask(r.font, s, size)
	if err != nil || mask == nil {
		return err
	}

	ms := mask.Rect.Size()
	p := image.Pt(
		area.Min.X+(area.Dx()-ms.X)/2,
		area.Min.Y+(area.Dy()-ms.Y)/2,
	)
	dr := image.Rectangle{Min: p, Max: p.Add(ms)}.Intersect(area)
	imgutil.DrawMaskOver(c.img, dr, LabelColor, mask, dr.Min.Sub(p))

	Logger().Debug("centered label",
		"text", s,
		"cell", cell.String(),
		"size", size,
		"advance", advance,
		"available", area.Dx())
	return nil
}
