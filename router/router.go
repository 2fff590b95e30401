// Package router implements the router driver of spec.md §4.5: it
// iterates nets in sequencer order, invokes the multi-pin connector,
// commits routed cells as obstacles for subsequent nets, and collects
// results. Unroutable nets are logged and skipped; the session
// continues (spec.md §7 error-propagation policy).
package router

import (
	"log/slog"

	"github.com/gridroute/gridroute/grid"
	"github.com/gridroute/gridroute/netroute"
	"github.com/gridroute/gridroute/pathsearch"
	"github.com/gridroute/gridroute/routecost"
	"github.com/gridroute/gridroute/sequence"
)

// Result collects the outcome of routing a full session.
type Result struct {
	// Order lists the successfully routed nets' names in the order
	// they were routed (spec.md §6 output ordering); Routed maps each
	// net name to its full, concatenated path.
	Order  []string
	Routed map[string]pathsearch.Path
	Failed []string
}

// Driver owns the grid and cost configuration for one routing
// session. The zero value is not usable; construct with New.
type Driver struct {
	Grid   *grid.Grid
	Cost   routecost.Config
	Logger *slog.Logger
}

// New constructs a Driver over g with the given cost configuration.
// If logger is nil, slog.Default() is used.
func New(g *grid.Grid, cost routecost.Config, logger *slog.Logger) *Driver {
	if logger == nil {
		logger = slog.Default()
	}
	return &Driver{Grid: g, Cost: cost, Logger: logger}
}

// RouteAll runs spec.md §4.5's per-net loop over nets (keyed by net
// name) in sequencer order and returns the accumulated Result.
//
// The grid is the only mutable shared state; it is mutated
// sequentially, after each successful net, by marking every routed
// cell BLOCKED (spec.md §5's "no locks required" single-threaded
// model). Before the loop every net's pins are marked BLOCKED, so an
// earlier net cannot route through a later net's pin.
func (d *Driver) RouteAll(nets map[string]*netroute.Net) *Result {
	ordered := sequence.OrderNets(nets, d.Grid.W, d.Grid.H)

	result := &Result{
		Routed: make(map[string]pathsearch.Path, len(ordered)),
	}

	for _, n := range ordered {
		for _, p := range n.Pins {
			d.Grid.Block(p)
		}
	}

	for _, n := range ordered {
		if err := n.Validate(); err != nil {
			d.Logger.Warn("skipping degenerate net", "net", n.Name, "error", err)
			result.Failed = append(result.Failed, n.Name)
			continue
		}

		// Step 1: force each pin cell FREE, overriding any prior
		// BLOCKED state left by an earlier net's BlockPath.
		for _, p := range n.Pins {
			d.Grid.ForceFree(p)
		}

		// Step 2: invoke the connector.
		path, err := netroute.ConnectNet(d.Grid, n.Pins, d.Cost)
		if err != nil {
			d.Logger.Warn("net unroutable", "net", n.Name, "error", err)
			result.Failed = append(result.Failed, n.Name)
			// Step 4 still applies even on failure: re-lock the
			// net's own pins so later nets cannot tunnel through them.
			for _, p := range n.Pins {
				d.Grid.Block(p)
			}
			continue
		}

		// Step 3: commit the path as an obstacle for subsequent nets.
		result.Routed[n.Name] = path
		result.Order = append(result.Order, n.Name)
		d.Grid.BlockPath(path)

		// Step 4: re-lock pins to prevent later nets tunneling
		// through this net's pins.
		for _, p := range n.Pins {
			d.Grid.Block(p)
		}
	}

	return result
}
