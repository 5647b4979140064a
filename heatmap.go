package roomrender

import (
	"fmt"
	"image"
	"image/color"
	"strconv"

	imgutil "github.com/gogpu/roomrender/internal/image"
)

// ClipPolicy decides what happens to heatmap values outside [Min, Max].
type ClipPolicy uint8

const (
	// ClipClamp clamps out-of-range values into [Min, Max].
	ClipClamp ClipPolicy = iota
	// ClipSkip drops out-of-range cells: no color and no label.
	ClipSkip
)

func (p ClipPolicy) String() string {
	switch p {
	case ClipClamp:
		return "clamp"
	case ClipSkip:
		return "skip"
	default:
		return fmt.Sprintf("ClipPolicy(%d)", p)
	}
}

// HeatmapOptions controls how a cost field is colored.
type HeatmapOptions struct {
	// Min and Max bound the value range. Min must be less than Max.
	Min, Max uint8
	// BlueMax is the blue intensity at Min.
	BlueMax uint8
	// Alpha is the overlay opacity of every colored cell.
	Alpha uint8
	// Clip selects clamping or skipping of out-of-range values.
	Clip ClipPolicy
}

// DefaultHeatmapOptions returns options covering the full 8-bit range with a
// half-transparent overlay.
func DefaultHeatmapOptions() HeatmapOptions {
	return HeatmapOptions{Min: 0, Max: 255, BlueMax: 255, Alpha: 128, Clip: ClipClamp}
}

// Validate reports ErrEmptyRange or ErrInvertedRange for unusable ranges.
func (o HeatmapOptions) Validate() error {
	switch {
	case o.Min == o.Max:
		return fmt.Errorf("%w: min=max=%d", ErrEmptyRange, o.Min)
	case o.Min > o.Max:
		return fmt.Errorf("%w: min=%d max=%d", ErrInvertedRange, o.Min, o.Max)
	}
	return nil
}

// lerp returns (1-t)*v0 + t*v1.
func lerp(v0, v1, t float64) float64 {
	return (1-t)*v0 + t*v1
}

// HeatColor returns the overlay color for value v.
//
// The value is clamped into [Min, Max] and t = (v-Min)/(Max-Min). Blue is
// BlueMax - lerp(0, BlueMax, t); red and green are both
// lerp(BlueMax, 0, blue/BlueMax). Channels are truncated, not rounded.
// A zero value is fully transparent.
//
// ok is false when the value is dropped by ClipSkip or the options are
// invalid.
func HeatColor(v uint8, o HeatmapOptions) (c color.NRGBA, ok bool) {
	if o.Validate() != nil {
		return color.NRGBA{}, false
	}
	zero := v == 0
	if v < o.Min || v > o.Max {
		if o.Clip == ClipSkip {
			return color.NRGBA{}, false
		}
		v = min(max(v, o.Min), o.Max)
	}

	t := float64(v-o.Min) / float64(o.Max-o.Min)
	blueMax := float64(o.BlueMax)

	b := o.BlueMax - uint8(lerp(0, blueMax, t))
	var rg uint8
	if o.BlueMax != 0 {
		rg = uint8(lerp(blueMax, 0, float64(b)/blueMax))
	}

	a := o.Alpha
	if zero {
		a = 0
	}
	return color.NRGBA{R: rg, G: rg, B: b, A: a}, true
}

// DrawCostField overlays field as a heatmap and labels every colored cell
// with its value.
//
// All cells are painted into one overlay which is then composited onto the
// canvas in a single pass. Labels show the clamped value; values with two or
// more digits are labeled at 75% of the nominal label size. Invalid options are rejected before anything
// is drawn.
func (r *Renderer) DrawCostField(c *Canvas, field CostField, o HeatmapOptions) error {
	if err := o.Validate(); err != nil {
		return err
	}

	type label struct {
		cell  Cell
		value uint8
	}

	overlay := image.NewNRGBA(c.img.Rect)
	var (
		labels  []label
		skipped int
	)
	for cell, v := range field.Costs() {
		if v == 0 {
			continue
		}
		col, ok := HeatColor(v, o)
		if !ok {
			skipped++
			continue
		}
		imgutil.Fill(overlay, c.CellRect(cell), col)
		labels = append(labels, label{cell: cell, value: min(max(v, o.Min), o.Max)})
	}

	imgutil.DrawOver(c.img, c.img.Rect, image.Point{}, overlay)

	nominal := r.LabelSize(c.scale)
	for _, l := range labels {
		size := nominal
		if l.value >= 10 {
			size *= 0.75
		}
		if err := r.DrawLabel(c, l.cell, strconv.Itoa(int(l.value)), size); err != nil {
			return err
		}
	}

	Logger().Debug("cost field drawn",
		"cells", len(labels),
		"skipped", skipped,
		"min", o.Min,
		"max", o.Max,
		"clip", o.Clip.String())
	return nil
}
