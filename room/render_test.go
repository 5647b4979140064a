package room

import (
	"bytes"
	"strings"
	"testing"

	"github.com/gogpu/roomrender"
)

func newRenderer(t *testing.T) *roomrender.Renderer {
	t.Helper()
	r, err := roomrender.NewRenderer()
	if err != nil {
		t.Fatalf("NewRenderer: %v", err)
	}
	return r
}

func TestRenderMatchesDirectCalls(t *testing.T) {
	r := newRenderer(t)

	const doc = `{
		"cols": 3, "rows": 2, "scale": 20, "grid": true,
		"terrain": "012300",
		"objects": [
			{"x": 0, "y": 0, "kind": "structure", "type": "spawn"},
			{"x": 2, "y": 1, "kind": "resource", "type": "X"},
			{"x": 1, "y": 1, "kind": "terrain", "type": "swamp"}
		],
		"labels": [
			{"x": 1, "y": 0, "text": "W7", "centered": true},
			{"x": 0, "y": 1, "text": "a", "size": 9}
		],
		"costs": {"min": 0, "max": 10, "skip": true, "cells": [{"x": 2, "y": 0, "value": 5}, {"x": 1, "y": 0, "value": 50}]}
	}`
	d, err := Decode(strings.NewReader(doc))
	if err != nil {
		t.Fatal(err)
	}
	got, err := Render(r, d)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}

	want, err := roomrender.NewCanvas(3, 2, 20)
	if err != nil {
		t.Fatal(err)
	}
	terrain := []roomrender.Terrain{
		roomrender.TerrainPlain, roomrender.TerrainWall, roomrender.TerrainSwamp,
		roomrender.TerrainWall, roomrender.TerrainPlain, roomrender.TerrainPlain,
	}
	for i, tr := range terrain {
		must(t, r.DrawTerrain(want, roomrender.Cell{Col: i % 3, Row: i / 3}, tr))
	}
	must(t, r.DrawStructure(want, roomrender.Cell{Col: 0, Row: 0}, roomrender.StructureSpawn))
	must(t, r.DrawResource(want, roomrender.Cell{Col: 2, Row: 1}, roomrender.ResourceCatalyst))
	must(t, r.DrawTerrain(want, roomrender.Cell{Col: 1, Row: 1}, roomrender.TerrainSwamp))
	must(t, r.DrawCostField(want, roomrender.CostMap{{Col: 2, Row: 0}: 5, {Col: 1, Row: 0}: 50},
		roomrender.HeatmapOptions{Min: 0, Max: 10, BlueMax: 255, Alpha: 128, Clip: roomrender.ClipSkip}))
	must(t, r.DrawCenteredLabel(want, roomrender.Cell{Col: 1, Row: 0}, "W7"))
	must(t, r.DrawLabel(want, roomrender.Cell{Col: 0, Row: 1}, "a", 9))
	want.DrawGrid()

	if !bytes.Equal(got.Image().Pix, want.Image().Pix) {
		t.Error("Render output differs from the equivalent direct calls")
	}
}

func TestRenderNoGrid(t *testing.T) {
	r := newRenderer(t)
	d := &Document{Cols: 1, Rows: 1, Scale: 10}
	if err := d.Validate(); err != nil {
		t.Fatal(err)
	}

	c, err := Render(r, d)
	if err != nil {
		t.Fatal(err)
	}
	if c.NRGBAAt(0, 0) != roomrender.Background {
		t.Error("grid drawn without Grid set")
	}

	d.Grid = true
	c, err = Render(r, d)
	if err != nil {
		t.Fatal(err)
	}
	if c.NRGBAAt(0, 0) != roomrender.GridColor {
		t.Error("grid missing with Grid set")
	}
}

func TestRenderUnknownKind(t *testing.T) {
	r := newRenderer(t)
	d := &Document{Cols: 1, Rows: 1, Scale: 10, Objects: []Object{{Kind: "creep"}}}
	if _, err := Render(r, d); err == nil {
		t.Error("Render accepted an unvalidated unknown kind")
	}
}

func must(t *testing.T, err error) {
	t.Helper()
	if err != nil {
		t.Fatal(err)
	}
}
