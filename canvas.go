package roomrender

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"math"
	"os"

	imgutil "github.com/gogpu/roomrender/internal/image"
)

// Default room geometry.
const (
	DefaultCols  = 50
	DefaultRows  = 50
	DefaultScale = 50
)

// Background is the color every new canvas is filled with.
var Background = color.NRGBA{0, 0, 0, 255}

// Cell identifies one grid cell by column and row.
type Cell struct {
	Col, Row int
}

// Origin returns the top-left pixel of the cell at the given scale.
func (c Cell) Origin(scale int) image.Point {
	return image.Pt(c.Col*scale+1, c.Row*scale+1)
}

func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.Col, c.Row)
}

// Canvas is a straight-alpha RGBA pixel buffer sized to a grid of cells.
//
// A canvas for cols×rows cells at scale s is cols*s+1 × rows*s+1 pixels.
// Its dimensions are fixed at creation.
type Canvas struct {
	img   *image.NRGBA
	cols  int
	rows  int
	scale int
}

// NewCanvas creates a canvas filled with opaque black.
//
// Returns ErrInvalidDimensions if any argument is not positive and
// ErrDimensionOverflow if the pixel buffer size cannot be represented.
func NewCanvas(cols, rows, scale int) (*Canvas, error) {
	if cols <= 0 || rows <= 0 || scale <= 0 {
		return nil, fmt.Errorf("%w: cols=%d rows=%d scale=%d", ErrInvalidDimensions, cols, rows, scale)
	}

	w, ok1 := extent(cols, scale)
	h, ok2 := extent(rows, scale)
	if !ok1 || !ok2 || w > math.MaxInt/4/h {
		return nil, fmt.Errorf("%w: cols=%d rows=%d scale=%d", ErrDimensionOverflow, cols, rows, scale)
	}

	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	imgutil.Fill(img, img.Rect, Background)

	return &Canvas{img: img, cols: cols, rows: rows, scale: scale}, nil
}

// NewDefaultCanvas creates a DefaultCols×DefaultRows canvas at DefaultScale.
func NewDefaultCanvas() *Canvas {
	c, err := NewCanvas(DefaultCols, DefaultRows, DefaultScale)
	if err != nil {
		panic(err)
	}
	return c
}

// extent returns n*scale+1, reporting false on overflow.
func extent(n, scale int) (int, bool) {
	if n > (math.MaxInt-1)/scale {
		return 0, false
	}
	return n*scale + 1, true
}

// Cols returns the number of cell columns.
func (c *Canvas) Cols() int { return c.cols }

// Rows returns the number of cell rows.
func (c *Canvas) Rows() int { return c.rows }

// Scale returns the cell edge length in pixels.
func (c *Canvas) Scale() int { return c.scale }

// Width returns the width in pixels.
func (c *Canvas) Width() int { return c.img.Rect.Dx() }

// Height returns the height in pixels.
func (c *Canvas) Height() int { return c.img.Rect.Dy() }

// Image returns the underlying pixel buffer. Writes to it are visible
// through the canvas.
func (c *Canvas) Image() *image.NRGBA { return c.img }

// Contains reports whether cell lies inside the grid.
func (c *Canvas) Contains(cell Cell) bool {
	return cell.Col >= 0 && cell.Col < c.cols && cell.Row >= 0 && cell.Row < c.rows
}

// CellRect returns the scale×scale pixel block covered by cell.
func (c *Canvas) CellRect(cell Cell) image.Rectangle {
	o := cell.Origin(c.scale)
	return image.Rectangle{Min: o, Max: o.Add(image.Pt(c.scale, c.scale))}
}

// NRGBAAt returns the pixel at (x, y).
func (c *Canvas) NRGBAAt(x, y int) color.NRGBA {
	return c.img.NRGBAAt(x, y)
}

// At implements the image.Image interface.
func (c *Canvas) At(x, y int) color.Color {
	return c.img.At(x, y)
}

// Bounds implements the image.Image interface.
func (c *Canvas) Bounds() image.Rectangle {
	return c.img.Rect
}

// ColorModel implements the image.Image interface.
func (c *Canvas) ColorModel() color.Model {
	return color.NRGBAModel
}

// Set implements the draw.Image interface.
func (c *Canvas) Set(x, y int, col color.Color) {
	c.img.Set(x, y, col)
}

// EncodePNG writes the canvas to w as PNG.
func (c *Canvas) EncodePNG(w io.Writer) error {
	return png.Encode(w, c.img)
}

// SavePNG saves the canvas to a PNG file.
func (c *Canvas) SavePNG(path string) error {
	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return err
	}
	if err := c.EncodePNG(f); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
