package gridmesh

import (
	"errors"
	"fmt"
)

// Sentinel errors for the gridmesh package.
var (
	// ErrOverflow is returned when a glyph does not fit in the terminal grid,
	// either because its cell lies outside the grid or because a wide glyph
	// would straddle the right edge.
	ErrOverflow = errors.New("gridmesh: text overflow")

	// ErrInvalidSize is returned for negative screen dimensions on resize.
	ErrInvalidSize = errors.New("gridmesh: invalid size")

	// ErrInvalidLayer is returned when a glyph style uses a negative layer,
	// which would collide with the background plane.
	ErrInvalidLayer = errors.New("gridmesh: invalid layer")

	// ErrIndexOutOfRange is returned by Mesh.Validate when a face references
	// a vertex or UV that does not exist.
	ErrIndexOutOfRange = errors.New("gridmesh: index out of range")
)

// ConfigError represents a configuration validation error.
type ConfigError struct {
	Field  string
	Reason string
}

func (e *ConfigError) Error() string {
	return "gridmesh: invalid config." + e.Field + ": " + e.Reason
}

// OverflowError describes a rejected single-glyph placement.
// It unwraps to ErrOverflow.
type OverflowError struct {
	// Cell is the normalized destination cell.
	Cell Cell

	// Rune is the codepoint that was being placed.
	Rune rune

	// Wide reports whether the glyph needed two cells.
	Wide bool

	// Grid is the terminal grid size at the time of the call.
	Grid Size
}

func (e *OverflowError) Error() string {
	kind := "narrow"
	if e.Wide {
		kind = "wide"
	}
	return fmt.Sprintf("gridmesh: text overflow: %s glyph %U at cell (%d,%d) on %dx%d grid",
		kind, e.Rune, e.Cell.Col, e.Cell.Row, e.Grid.Width, e.Grid.Height)
}

// Unwrap returns ErrOverflow.
func (e *OverflowError) Unwrap() error {
	return ErrOverflow
}
