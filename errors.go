package roomrender

import "errors"

// Configuration errors. Calls that return them draw nothing.
var (
	// ErrInvalidDimensions is returned when cols, rows or scale is not positive.
	ErrInvalidDimensions = errors.New("roomrender: invalid canvas dimensions")

	// ErrDimensionOverflow is returned when the canvas size does not fit in memory arithmetic.
	ErrDimensionOverflow = errors.New("roomrender: canvas dimensions overflow")

	// ErrEmptyRange is returned when a heatmap range has Min == Max.
	ErrEmptyRange = errors.New("roomrender: empty heatmap range")

	// ErrInvertedRange is returned when a heatmap range has Min > Max.
	ErrInvertedRange = errors.New("roomrender: inverted heatmap range")

	// ErrUnknownTerrain is returned by ParseTerrain for unrecognized names.
	ErrUnknownTerrain = errors.New("roomrender: unknown terrain")
)
