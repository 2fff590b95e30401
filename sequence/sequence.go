// Package sequence implements the net ordering and pin-source election
// heuristics of spec.md §4.4: nets are routed in ascending order of
// total pairwise Manhattan distance (ties broken by name), and within
// each net the pin closest to any chip edge is elected as the source.
package sequence

import (
	"slices"

	"golang.org/x/exp/maps"

	"github.com/gridroute/gridroute/grid"
	"github.com/gridroute/gridroute/netroute"
)

// manhattanScore sums |xi-xj|+|yi-yj| over every unordered pair of a
// net's pins (layer ignored, per spec.md §4.4).
func manhattanScore(pins []grid.Cell) int {
	score := 0
	for i := 0; i < len(pins); i++ {
		for j := i + 1; j < len(pins); j++ {
			dx := pins[i].X - pins[j].X
			dy := pins[i].Y - pins[j].Y
			if dx < 0 {
				dx = -dx
			}
			if dy < 0 {
				dy = -dy
			}
			score += dx + dy
		}
	}
	return score
}

// ElectSource returns the index within pins of the pin whose distance
// to the nearest chip edge (min(x, y, w-x, h-y)) is smallest. Ties are
// broken by the original pin order (lowest index wins).
func ElectSource(pins []grid.Cell, w, h int) int {
	best := 0
	bestDist := edgeDistance(pins[0], w, h)
	for i := 1; i < len(pins); i++ {
		d := edgeDistance(pins[i], w, h)
		if d < bestDist {
			bestDist = d
			best = i
		}
	}
	return best
}

func edgeDistance(c grid.Cell, w, h int) int {
	d := c.X
	if v := c.Y; v < d {
		d = v
	}
	if v := w - c.X; v < d {
		d = v
	}
	if v := h - c.Y; v < d {
		d = v
	}
	return d
}

// ElectAndReorder moves the elected source pin of n to the front of
// n.Pins in place, preserving the relative order of the remaining
// pins (this is the "sequencer's" per-net pin reorder of spec.md §3).
func ElectAndReorder(n *netroute.Net, w, h int) {
	i := ElectSource(n.Pins, w, h)
	if i == 0 {
		return
	}
	source := n.Pins[i]
	rest := make([]grid.Cell, 0, len(n.Pins)-1)
	rest = append(rest, n.Pins[:i]...)
	rest = append(rest, n.Pins[i+1:]...)
	n.Pins = append([]grid.Cell{source}, rest...)
}

// OrderNets reorders the given nets (by map key, to keep iteration
// deterministic before sorting; see DESIGN.md for the x/exp/maps use)
// by ascending Manhattan score, ties broken by net name, and elects
// each net's source pin. w and h are the grid extents used for source
// election.
func OrderNets(nets map[string]*netroute.Net, w, h int) []*netroute.Net {
	names := maps.Keys(nets)
	slices.Sort(names)

	ordered := make([]*netroute.Net, 0, len(names))
	for _, name := range names {
		ordered = append(ordered, nets[name])
	}

	for _, n := range ordered {
		ElectAndReorder(n, w, h)
	}

	slices.SortStableFunc(ordered, func(a, b *netroute.Net) int {
		sa, sb := manhattanScore(a.Pins), manhattanScore(b.Pins)
		if sa != sb {
			return sa - sb
		}
		if a.Name < b.Name {
			return -1
		}
		if a.Name > b.Name {
			return 1
		}
		return 0
	})

	return ordered
}
