package image

import (
	"image"
	"math"
)

// ResizeNearest returns src resampled to w×h using nearest-neighbor sampling.
//
// When src already has the requested size it is returned as is, without
// allocating. Otherwise a new buffer is returned and src is left untouched.
// Pixels are copied verbatim, so hard pixel-art edges are preserved.
func ResizeNearest(src *image.NRGBA, w, h int) *image.NRGBA {
	sb := src.Bounds()
	if sb.Dx() == w && sb.Dy() == h {
		return src
	}

	dst := image.NewNRGBA(image.Rect(0, 0, w, h))
	if sb.Empty() || w <= 0 || h <= 0 {
		return dst
	}

	// Precompute the source column for every destination column.
	cols := make([]int, w)
	for dx := range w {
		cols[dx] = nearest(dx, w, sb.Dx())
	}

	for dy := range h {
		sy := sb.Min.Y + nearest(dy, h, sb.Dy())
		di := dst.PixOffset(0, dy)
		for dx := range w {
			si := src.PixOffset(sb.Min.X+cols[dx], sy)
			copy(dst.Pix[di:di+4], src.Pix[si:si+4])
			di += 4
		}
	}

	return dst
}

// nearest maps destination index d in [0, dn) to a source index in [0, sn),
// sampling at the destination pixel center.
func nearest(d, dn, sn int) int {
	u := (float64(d) + 0.5) / float64(dn)
	s := int(math.Floor(u * float64(sn)))
	return clamp(s, 0, sn-1)
}

// clamp restricts v to [lo, hi].
func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
