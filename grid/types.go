// Package grid defines the two-layer occupancy grid that the router
// searches over: a rectangular W×H cell space duplicated across two
// layers, each cell either FREE or BLOCKED.
//
// Layer 0 is the horizontal-preferred layer; layer 1 is the
// vertical-preferred layer. See routecost for the direction rule.
package grid

import (
	"errors"
	"fmt"
)

// Sentinel errors for grid construction and access.
var (
	// ErrBadDimensions indicates a non-positive width or height.
	ErrBadDimensions = errors.New("grid: width and height must be positive")

	// ErrOutOfBounds indicates a cell lies outside the grid's W×H extents.
	ErrOutOfBounds = errors.New("grid: cell out of bounds")

	// ErrBadLayer indicates a layer value other than 0 or 1.
	ErrBadLayer = errors.New("grid: layer must be 0 or 1")
)

// Layer identifies one of the two routing planes.
type Layer int

const (
	// LayerHorizontal prefers moves along Y (spec: layer 0).
	LayerHorizontal Layer = 0
	// LayerVertical prefers moves along X (spec: layer 1).
	LayerVertical Layer = 1

	// NumLayers is the fixed number of routing layers this router supports.
	NumLayers = 2
)

// State is the occupancy of a single cell.
type State uint8

const (
	// Free marks a cell as available for routing.
	Free State = iota
	// Blocked marks a cell as unusable (obstacle or already-routed net).
	Blocked
)

// Cell addresses a single grid location.
type Cell struct {
	Layer Layer
	X, Y  int
}

// String renders a Cell in the spec's 1-based-layer output form,
// e.g. "(1, 3, 4)" for LayerHorizontal at (3,4).
func (c Cell) String() string {
	return fmt.Sprintf("(%d, %d, %d)", int(c.Layer)+1, c.X, c.Y)
}

// Opposite returns the cell directly across the via from c.
func (c Cell) Opposite() Cell {
	return Cell{Layer: 1 - c.Layer, X: c.X, Y: c.Y}
}

// IsVia reports whether moving from c to other is a layer transition
// at the same (X,Y).
func (c Cell) IsVia(other Cell) bool {
	return c.X == other.X && c.Y == other.Y && c.Layer != other.Layer
}
