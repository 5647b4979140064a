// Command roomrender renders a room document to a PNG file.
//
// Usage:
//
//	roomrender -in room.json -out room.png [-scale N] [-grid] [-v]
//
// Use "-in -" to read the document from standard input. Without -in a
// built-in demo room is rendered.
package main

import (
	"flag"
	"log"
	"log/slog"
	"os"

	"github.com/gogpu/roomrender"
	"github.com/gogpu/roomrender/room"
	"github.com/gogpu/roomrender/text"
)

func main() {
	var (
		input   = flag.String("in", "", "room document (JSON), - for stdin; empty renders a demo room")
		output  = flag.String("out", "room.png", "output file")
		scale   = flag.Int("scale", 0, "override the document scale")
		grid    = flag.Bool("grid", false, "draw grid lines")
		shaping = flag.Bool("shaping", false, "measure labels with HarfBuzz shaping")
		verbose = flag.Bool("v", false, "verbose logging")
	)
	flag.Parse()

	if *verbose {
		roomrender.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	d, err := loadDocument(*input)
	if err != nil {
		log.Fatalf("Failed to load room: %v", err)
	}
	if *scale > 0 {
		d.Scale = *scale
	}
	if *grid {
		d.Grid = true
	}
	if err := d.Validate(); err != nil {
		log.Fatalf("Invalid room: %v", err)
	}

	opts := []roomrender.RendererOption{roomrender.WithWarmAssets()}
	if *shaping {
		opts = append(opts, roomrender.WithMeasurer(text.NewGoTextShaper()))
	}
	r, err := roomrender.NewRenderer(opts...)
	if err != nil {
		log.Fatalf("Failed to initialize renderer: %v", err)
	}

	c, err := room.Render(r, d)
	if err != nil {
		log.Fatalf("Failed to render: %v", err)
	}

	if err := c.SavePNG(*output); err != nil {
		log.Fatalf("Failed to save: %v", err)
	}

	log.Printf("Room saved to %s (%dx%d)\n", *output, c.Width(), c.Height())
}

func loadDocument(path string) (*room.Document, error) {
	switch path {
	case "":
		return demoDocument(), nil
	case "-":
		return room.Decode(os.Stdin)
	}

	f, err := os.Open(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = f.Close()
	}()
	return room.Decode(f)
}
