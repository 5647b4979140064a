package room

import (
	"fmt"

	"github.com/gogpu/roomrender"
)

// Render draws d onto a new canvas. Layers are drawn in order: terrain,
// objects, costs, labels, then grid lines.
//
// d must have passed Validate.
func Render(r *roomrender.Renderer, d *Document) (*roomrender.Canvas, error) {
	c, err := roomrender.NewCanvas(d.Cols, d.Rows, d.Scale)
	if err != nil {
		return nil, err
	}

	if d.Terrain != "" {
		for i := 0; i < len(d.Terrain); i++ {
			cell := roomrender.Cell{Col: i % d.Cols, Row: i / d.Cols}
			t := roomrender.TerrainFromMask(d.Terrain[i] - '0')
			if err := r.DrawTerrain(c, cell, t); err != nil {
				return nil, fmt.Errorf("room: terrain %v: %w", cell, err)
			}
		}
	}

	for _, o := range d.Objects {
		cell := roomrender.Cell{Col: o.X, Row: o.Y}
		if err := drawObject(r, c, cell, o); err != nil {
			return nil, fmt.Errorf("room: %s %q at %v: %w", o.Kind, o.Type, cell, err)
		}
	}

	if d.Costs != nil {
		if err := r.DrawCostField(c, d.Costs.Field(), d.Costs.Options()); err != nil {
			return nil, fmt.Errorf("room: costs: %w", err)
		}
	}

	for _, l := range d.Labels {
		cell := roomrender.Cell{Col: l.X, Row: l.Y}
		if l.Centered {
			err = r.DrawCenteredLabel(c, cell, l.Text)
		} else {
			err = r.DrawLabel(c, cell, l.Text, l.Size)
		}
		if err != nil {
			return nil, fmt.Errorf("room: label %v: %w", cell, err)
		}
	}

	if d.Grid {
		c.DrawGrid()
	}

	roomrender.Logger().Debug("room rendered",
		"cols", d.Cols,
		"rows", d.Rows,
		"scale", d.Scale,
		"objects", len(d.Objects),
		"labels", len(d.Labels))
	return c, nil
}

func drawObject(r *roomrender.Renderer, c *roomrender.Canvas, cell roomrender.Cell, o Object) error {
	switch o.Kind {
	case KindTerrain:
		t, err := roomrender.ParseTerrain(o.Type)
		if err != nil {
			return err
		}
		return r.DrawTerrain(c, cell, t)
	case KindResource:
		return r.DrawResource(c, cell, roomrender.ResourceFromType(o.Type))
	case KindStructure:
		return r.DrawStructure(c, cell, roomrender.StructureFromType(o.Type))
	default:
		return fmt.Errorf("%w: kind %q", ErrInvalid, o.Kind)
	}
}
