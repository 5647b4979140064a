// Package roomrender renders grid-based room state into RGBA images.
//
// # Overview
//
// roomrender is a compositing engine: it owns no simulation logic. Callers
// supply terrain, resources, structures and cost fields that were computed
// elsewhere, and roomrender turns them into pixels on a Canvas.
//
// # Quick Start
//
//	r, err := roomrender.NewRenderer()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	c, err := roomrender.NewCanvas(50, 50, roomrender.DefaultScale)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	_ = r.DrawTerrain(c, roomrender.Cell{Col: 10, Row: 10}, roomrender.TerrainWall)
//	_ = r.DrawStructure(c, roomrender.Cell{Col: 25, Row: 25}, roomrender.StructureFromType("spawn"))
//	r.DrawCenteredLabel(c, roomrender.Cell{Col: 25, Row: 26}, "Spawn1")
//	c.DrawGrid()
//
//	_ = c.SavePNG("room.png")
//
// # Geometry
//
// A canvas for cols×rows cells at scale s is cols*s+1 pixels wide and
// rows*s+1 pixels tall. The extra row and column hold the closing grid line.
// Cell (col, row) covers the s×s pixels whose top-left corner is
// (col*s+1, row*s+1). Origin (0,0) is the top-left pixel; y grows down.
//
// # Compositing
//
// Pixels are stored non-premultiplied (image.NRGBA). Tiles, heatmaps and
// labels are blended with straight-alpha source-over; later calls paint
// over earlier ones. Grid lines overwrite pixels without blending.
//
// # Concurrency
//
// A Renderer and its asset Registry are safe for concurrent use. A Canvas
// must have a single writer; concurrent renders use separate canvases.
package roomrender

// Version is the current version of the library.
const Version = "0.1.0"
