package main

import (
	"strings"

	"github.com/gogpu/roomrender/room"
)

// demoDocument returns a small room that exercises every layer.
func demoDocument() *room.Document {
	const cols, rows = 10, 8

	// Walls around the edge, a swamp patch in the middle.
	var terrain strings.Builder
	for y := range rows {
		for x := range cols {
			switch {
			case x == 0 || y == 0 || x == cols-1 || y == rows-1:
				terrain.WriteByte('1')
			case x >= 5 && x <= 7 && y >= 4 && y <= 6:
				terrain.WriteByte('2')
			default:
				terrain.WriteByte('0')
			}
		}
	}

	blueMax, alpha := uint8(255), uint8(128)
	maxCost := uint8(20)

	return &room.Document{
		Cols:    cols,
		Rows:    rows,
		Scale:   50,
		Grid:    true,
		Terrain: terrain.String(),
		Objects: []room.Object{
			{X: 2, Y: 2, Kind: room.KindStructure, Type: "spawn"},
			{X: 3, Y: 2, Kind: room.KindStructure, Type: "extension"},
			{X: 4, Y: 2, Kind: room.KindStructure, Type: "tower"},
			{X: 2, Y: 4, Kind: room.KindStructure, Type: "storage"},
			{X: 3, Y: 4, Kind: room.KindStructure, Type: "road"},
			{X: 7, Y: 1, Kind: room.KindResource, Type: "source"},
			{X: 8, Y: 6, Kind: room.KindResource, Type: "X"},
			{X: 6, Y: 2, Kind: room.KindStructure, Type: "controller"},
		},
		Labels: []room.Label{
			{X: 2, Y: 3, Text: "Spawn1", Centered: true},
			{X: 6, Y: 3, Text: "RCL 8", Centered: true},
		},
		Costs: &room.Costs{
			Min:     1,
			Max:     &maxCost,
			BlueMax: &blueMax,
			Alpha:   &alpha,
			Skip:    true,
			Cells: []room.CostCell{
				{X: 5, Y: 4, Value: 5},
				{X: 6, Y: 4, Value: 10},
				{X: 7, Y: 4, Value: 15},
				{X: 5, Y: 5, Value: 20},
				{X: 6, Y: 5, Value: 25},
			},
		},
	}
}
