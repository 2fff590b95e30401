// Package netroute defines the Net/Pin data model (spec.md §3) and
// implements the Rentsch-style multi-pin net connector (spec.md §4.3):
// repeatedly invoking pathsearch.Search from the union of all
// previously routed cells of the current net until every pin is
// attached.
package netroute

import (
	"errors"

	"github.com/gridroute/gridroute/grid"
	"github.com/gridroute/gridroute/pathsearch"
	"github.com/gridroute/gridroute/routecost"
)

// ErrTooFewPins indicates a net with fewer than two pins (spec.md §7,
// "Degenerate net").
var ErrTooFewPins = errors.New("netroute: net must have at least 2 pins")

// Net is a named, ordered list of pins. After sequencing
// (see the sequence package), Pins[0] is the elected source and the
// remainder are targets to be attached in successive-search order.
type Net struct {
	Name string
	Pins []grid.Cell
}

// Validate reports ErrTooFewPins if the net has fewer than 2 pins.
func (n *Net) Validate() error {
	if len(n.Pins) < 2 {
		return ErrTooFewPins
	}
	return nil
}

// ConnectNet runs the iterative pin-attachment loop of spec.md §4.3
// and returns the concatenation of each successive pin's path. g is
// mutated: every cell of every attached path is marked BLOCKED as it
// is found, so later attachments search from the union of all
// previously routed cells (including the net's own prior pins).
//
// For a 2-pin net this degenerates to a single pathsearch.Search call
// from {pins[0]} to {pins[1]} (spec.md §8, "Single-source reduction").
func ConnectNet(g *grid.Grid, pins []grid.Cell, cfg routecost.Config) (pathsearch.Path, error) {
	if len(pins) < 2 {
		return nil, ErrTooFewPins
	}

	connected := []grid.Cell{pins[0]}
	remaining := append([]grid.Cell(nil), pins[1:]...)

	var full pathsearch.Path
	for len(remaining) > 0 {
		path, err := pathsearch.Search(g, connected, remaining, cfg)
		if err != nil {
			return nil, err
		}

		full = append(full, path...)

		g.BlockPath(path)
		connected = append(connected, path...)

		reached := path[len(path)-1]
		remaining = removeCell(remaining, reached)
	}

	return full, nil
}

// removeCell returns cells with the first occurrence of target removed.
func removeCell(cells []grid.Cell, target grid.Cell) []grid.Cell {
	for i, c := range cells {
		if c == target {
			out := make([]grid.Cell, 0, len(cells)-1)
			out = append(out, cells[:i]...)
			out = append(out, cells[i+1:]...)
			return out
		}
	}
	return cells
}
