// Package text rasterizes and measures short labels for roomrender.
//
// The pipeline is deliberately small:
//
//   - FontSource: a parsed TTF/OTF font, shared across the process
//   - Mask: rasterizes a string into an alpha coverage mask
//   - Measurer: computes advance widths (FaceMeasurer or GoTextShaper)
//   - FitSize: shrinks a font size so a string fits a given width
//
// # Example usage
//
//	src, err := text.NewFontSource(gomono.TTF)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	size, _ := text.FitSize(text.FaceMeasurer{}, src, "12345", 50, 46)
//	mask, err := text.Mask(src, "12345", size)
//
// Rasterization and face metrics use golang.org/x/image/font/opentype.
// GoTextShaper measures with HarfBuzz shaping from go-text/typesetting.
package text
