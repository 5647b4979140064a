package roomrender

import "image/color"

// GridColor is the color grid lines overwrite pixels with.
var GridColor = color.NRGBA{255, 255, 255, 128}

// DrawGrid draws grid lines at every cell boundary, including the canvas
// edges, using the canvas scale.
func (c *Canvas) DrawGrid() {
	c.DrawGridWithScale(c.scale)
}

// DrawGridWithScale overwrites every pixel whose x or y coordinate is a
// multiple of scale with GridColor. No blending is performed, so repeated
// calls leave the canvas unchanged. Non-positive scales are ignored.
func (c *Canvas) DrawGridWithScale(scale int) {
	if scale <= 0 {
		return
	}

	img := c.img
	w, h := img.Rect.Dx(), img.Rect.Dy()
	for y := 0; y < h; y++ {
		i := img.PixOffset(0, y)
		row := img.Pix[i : i+w*4 : i+w*4]
		if y%scale == 0 {
			for x := 0; x < w; x++ {
				setGrid(row[x*4 : x*4+4 : x*4+4])
			}
			continue
		}
		for x := 0; x < w; x += scale {
			setGrid(row[x*4 : x*4+4 : x*4+4])
		}
	}
}

func setGrid(p []uint8) {
	p[0], p[1], p[2], p[3] = GridColor.R, GridColor.G, GridColor.B, GridColor.A
}
