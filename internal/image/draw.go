// Package image provides the pixel-level primitives used by roomrender:
// straight-alpha compositing, nearest-neighbor resampling and PNG decoding.
//
// All buffers are *image.NRGBA (non-premultiplied, 8 bits per channel).
package image

import (
	"image"
	"image/color"
)

// Fill overwrites every pixel of dst inside r with c. No blending is performed.
func Fill(dst *image.NRGBA, r image.Rectangle, c color.NRGBA) {
	r = r.Intersect(dst.Bounds())
	if r.Empty() {
		return
	}

	for y := r.Min.Y; y < r.Max.Y; y++ {
		i := dst.PixOffset(r.Min.X, y)
		row := dst.Pix[i : i+r.Dx()*4 : i+r.Dx()*4]
		for j := 0; j < len(row); j += 4 {
			row[j+0] = c.R
			row[j+1] = c.G
			row[j+2] = c.B
			row[j+3] = c.A
		}
	}
}

// DrawOver composites src onto dst with the source's top-left corner at p.
//
// Only pixels inside clip (intersected with dst bounds) are written.
// Blending is straight-alpha source-over, see BlendOver.
func DrawOver(dst *image.NRGBA, clip image.Rectangle, p image.Point, src *image.NRGBA) {
	sb := src.Bounds()
	r := image.Rectangle{Min: p, Max: p.Add(sb.Size())}
	r = r.Intersect(clip).Intersect(dst.Bounds())
	if r.Empty() {
		return
	}

	// Offset from destination to source coordinates.
	off := sb.Min.Sub(p)

	for y := r.Min.Y; y < r.Max.Y; y++ {
		di := dst.PixOffset(r.Min.X, y)
		si := src.PixOffset(r.Min.X+off.X, y+off.Y)
		for x := r.Min.X; x < r.Max.X; x++ {
			s := src.Pix[si : si+4 : si+4]
			d := dst.Pix[di : di+4 : di+4]
			d[0], d[1], d[2], d[3] = BlendOver(s[0], s[1], s[2], s[3], d[0], d[1], d[2], d[3])
			di += 4
			si += 4
		}
	}
}

// DrawMaskOver composites the uniform color c onto dst through mask.
// The mask pixel at mp maps to the destination pixel at r.Min.
// Effective source alpha is c.A scaled by the mask coverage.
func DrawMaskOver(dst *image.NRGBA, r image.Rectangle, c color.NRGBA, mask *image.Alpha, mp image.Point) {
	// Clip to the mask's extent as well as the destination.
	mr := mask.Bounds().Sub(mp).Add(r.Min)
	clipped := r.Intersect(mr).Intersect(dst.Bounds())
	if clipped.Empty() {
		return
	}
	mp = mp.Add(clipped.Min.Sub(r.Min))

	for y := clipped.Min.Y; y < clipped.Max.Y; y++ {
		di := dst.PixOffset(clipped.Min.X, y)
		mi := mask.PixOffset(mp.X, mp.Y+(y-clipped.Min.Y))
		for x := clipped.Min.X; x < clipped.Max.X; x++ {
			cov := mask.Pix[mi]
			if cov != 0 {
				a := uint8((uint16(c.A)*uint16(cov) + 127) / 255)
				d := dst.Pix[di : di+4 : di+4]
				d[0], d[1], d[2], d[3] = BlendOver(c.R, c.G, c.B, a, d[0], d[1], d[2], d[3])
			}
			di += 4
			mi++
		}
	}
}

// BlendOver performs straight-alpha source-over blending of a single pixel.
//
//	out_a = src_a + dst_a * (1 - src_a)
//	out_c = (src_c * src_a + dst_c * dst_a * (1 - src_a)) / out_a
//
// Channel results are truncated to integers.
func BlendOver(srcR, srcG, srcB, srcA, dstR, dstG, dstB, dstA uint8) (r, g, b, a uint8) {
	if srcA == 0 {
		return dstR, dstG, dstB, dstA
	}
	if srcA == 255 {
		return srcR, srcG, srcB, 255
	}
	if dstA == 0 {
		return srcR, srcG, srcB, srcA
	}

	srcAlpha := float64(srcA) / 255.0
	dstAlpha := float64(dstA) / 255.0

	// Opaque destination stays opaque.
	if dstA == 255 {
		r = uint8(float64(srcR)*srcAlpha + float64(dstR)*(1-srcAlpha))
		g = uint8(float64(srcG)*srcAlpha + float64(dstG)*(1-srcAlpha))
		b = uint8(float64(srcB)*srcAlpha + float64(dstB)*(1-srcAlpha))
		return r, g, b, 255
	}

	outAlpha := srcAlpha + dstAlpha*(1-srcAlpha)
	if outAlpha == 0 {
		return 0, 0, 0, 0
	}

	r = uint8((float64(srcR)*srcAlpha + float64(dstR)*dstAlpha*(1-srcAlpha)) / outAlpha)
	g = uint8((float64(srcG)*srcAlpha + float64(dstG)*dstAlpha*(1-srcAlpha)) / outAlpha)
	b = uint8((float64(srcB)*srcAlpha + float64(dstB)*dstAlpha*(1-srcAlpha)) / outAlpha)
	a = uint8(outAlpha * 255.0)

	return r, g, b, a
}
