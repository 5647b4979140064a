// Package room describes a renderable room as a JSON document and renders
// it through a roomrender.Renderer.
//
// A document looks like:
//
//	{
//	  "cols": 50, "rows": 50, "scale": 50, "grid": true,
//	  "terrain": "0012...",
//	  "objects": [{"x": 25, "y": 25, "kind": "structure", "type": "spawn"}],
//	  "labels":  [{"x": 25, "y": 26, "text": "Spawn1", "centered": true}],
//	  "costs":   {"min": 0, "max": 10, "skip": true, "cells": [{"x": 3, "y": 4, "value": 5}]}
//	}
//
// terrain holds one terrain mask digit per cell in row-major order
// (0 plain, 1 wall, 2 swamp, 3 wall).
package room

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/gogpu/roomrender"
)

// Object kinds.
const (
	KindTerrain   = "terrain"
	KindResource  = "resource"
	KindStructure = "structure"
)

// MaxSide is the largest canvas width or height, in pixels, a document may
// describe.
const MaxSide = 8192

// Errors returned by Decode and Validate.
var (
	// ErrInvalid is wrapped by every validation failure.
	ErrInvalid = errors.New("room: invalid document")
)

// Document is a room to render.
type Document struct {
	Cols    int      `json:"cols,omitempty"`
	Rows    int      `json:"rows,omitempty"`
	Scale   int      `json:"scale,omitempty"`
	Grid    bool     `json:"grid,omitempty"`
	Terrain string   `json:"terrain,omitempty"`
	Objects []Object `json:"objects,omitempty"`
	Labels  []Label  `json:"labels,omitempty"`
	Costs   *Costs   `json:"costs,omitempty"`
}

// Object places one tile on a cell.
type Object struct {
	X    int    `json:"x"`
	Y    int    `json:"y"`
	Kind string `json:"kind"`
	Type string `json:"type"`
}

// Label places text on a cell. Centered labels are fitted into the cell;
// others are drawn at the cell's top-left corner at Size, or at the
// nominal label size when Size is zero.
type Label struct {
	X        int     `json:"x"`
	Y        int     `json:"y"`
	Text     string  `json:"text"`
	Centered bool    `json:"centered,omitempty"`
	Size     float64 `json:"size,omitempty"`
}

// Costs is a heatmap layer. Omitted Max, BlueMax and Alpha take the values
// of roomrender.DefaultHeatmapOptions.
type Costs struct {
	Min     uint8      `json:"min"`
	Max     *uint8     `json:"max,omitempty"`
	BlueMax *uint8     `json:"blue_max,omitempty"`
	Alpha   *uint8     `json:"alpha,omitempty"`
	Skip    bool       `json:"skip,omitempty"`
	Cells   []CostCell `json:"cells"`
}

// CostCell is one heatmap value.
type CostCell struct {
	X     int   `json:"x"`
	Y     int   `json:"y"`
	Value uint8 `json:"value"`
}

// Decode reads a document from r, rejecting unknown fields and trailing
// data, and validates it.
func Decode(r io.Reader) (*Document, error) {
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()

	var d Document
	if err := dec.Decode(&d); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	if dec.More() {
		return nil, fmt.Errorf("%w: trailing data after document", ErrInvalid)
	}
	if err := d.Validate(); err != nil {
		return nil, err
	}
	return &d, nil
}

// Validate applies defaults and checks that every coordinate lies inside
// the grid and the terrain string matches the grid size.
func (d *Document) Validate() error {
	if d.Cols == 0 {
		d.Cols = roomrender.DefaultCols
	}
	if d.Rows == 0 {
		d.Rows = roomrender.DefaultRows
	}
	if d.Scale == 0 {
		d.Scale = roomrender.DefaultScale
	}
	if d.Cols < 0 || d.Rows < 0 || d.Scale < 0 {
		return invalid("negative dimensions %dx%d@%d", d.Cols, d.Rows, d.Scale)
	}
	if d.Cols >= MaxSide || d.Rows >= MaxSide || d.Scale >= MaxSide ||
		d.Cols*d.Scale+1 > MaxSide || d.Rows*d.Scale+1 > MaxSide {
		return invalid("%dx%d@%d exceeds %d pixels per side", d.Cols, d.Rows, d.Scale, MaxSide)
	}

	if d.Terrain != "" {
		if len(d.Terrain) != d.Cols*d.Rows {
			return invalid("terrain has %d cells, want %d", len(d.Terrain), d.Cols*d.Rows)
		}
		for i := 0; i < len(d.Terrain); i++ {
			if ch := d.Terrain[i]; ch < '0' || ch > '9' {
				return invalid("terrain cell %d is %q, want a digit", i, ch)
			}
		}
	}

	for i, o := range d.Objects {
		if !d.contains(o.X, o.Y) {
			return invalid("object %d at (%d,%d) is outside the room", i, o.X, o.Y)
		}
		switch o.Kind {
		case KindResource, KindStructure:
		case KindTerrain:
			if _, err := roomrender.ParseTerrain(o.Type); err != nil {
				return invalid("object %d: %v", i, err)
			}
		default:
			return invalid("object %d has kind %q", i, o.Kind)
		}
	}

	for i, l := range d.Labels {
		if !d.contains(l.X, l.Y) {
			return invalid("label %d at (%d,%d) is outside the room", i, l.X, l.Y)
		}
		if l.Size < 0 {
			return invalid("label %d has negative size %g", i, l.Size)
		}
	}

	if d.Costs != nil {
		if err := d.Costs.Options().Validate(); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalid, err)
		}
		seen := make(map[roomrender.Cell]bool, len(d.Costs.Cells))
		for i, c := range d.Costs.Cells {
			if !d.contains(c.X, c.Y) {
				return invalid("cost %d at (%d,%d) is outside the room", i, c.X, c.Y)
			}
			cell := roomrender.Cell{Col: c.X, Row: c.Y}
			if seen[cell] {
				return invalid("cost %d repeats cell %v", i, cell)
			}
			seen[cell] = true
		}
	}

	return nil
}

func (d *Document) contains(x, y int) bool {
	return x >= 0 && x < d.Cols && y >= 0 && y < d.Rows
}

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalid, fmt.Sprintf(format, args...))
}

// Options returns the heatmap options described by c.
func (c *Costs) Options() roomrender.HeatmapOptions {
	o := roomrender.DefaultHeatmapOptions()
	o.Min = c.Min
	if c.Max != nil {
		o.Max = *c.Max
	}
	if c.BlueMax != nil {
		o.BlueMax = *c.BlueMax
	}
	if c.Alpha != nil {
		o.Alpha = *c.Alpha
	}
	if c.Skip {
		o.Clip = roomrender.ClipSkip
	}
	return o
}

// Field returns the cost cells as a cost field.
func (c *Costs) Field() roomrender.CostMap {
	m := make(roomrender.CostMap, len(c.Cells))
	for _, cell := range c.Cells {
		if cell.Value != 0 {
			m[roomrender.Cell{Col: cell.X, Row: cell.Y}] = cell.Value
		}
	}
	return m
}
