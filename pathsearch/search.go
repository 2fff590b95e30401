// Package pathsearch implements the weighted multi-source/multi-target
// shortest-path search of spec.md §4.2: a uniform-cost (Dijkstra)
// expansion over the 3D routing graph (two layers × W × H), honoring
// the direction- and via-aware edge costs of routecost, admitting
// free cells and any target cell, and terminating at the first popped
// cell that belongs to the target set.
//
// The implementation fuses two teacher shapes: dijkstra.Dijkstra's
// container/heap lazy-decrease-key loop (runner/process/relax) and
// gridgraph.ExpandIsland's dense flat-index distance/predecessor
// arrays with multi-source initialization and multi-target
// termination. The one addition neither teacher shape needs on its
// own graph is FIFO tie-breaking (spec.md §4.2), added here as a
// monotonic insertion-sequence counter riding alongside cost in the
// heap (see DESIGN.md).
package pathsearch

import (
	"container/heap"
	"errors"

	"github.com/gridroute/gridroute/grid"
	"github.com/gridroute/gridroute/routecost"
)

// ErrUnroutable is returned when no source cell can reach any target
// cell under the grid's current occupancy.
var ErrUnroutable = errors.New("pathsearch: no path from sources to targets")

// ErrNoSources indicates an empty source set.
var ErrNoSources = errors.New("pathsearch: source set must be non-empty")

// ErrNoTargets indicates an empty target set.
var ErrNoTargets = errors.New("pathsearch: target set must be non-empty")

// Path is a non-empty ordered sequence of cells, source to target.
type Path []grid.Cell

// Cost computes the total cost of the path under cfg, summing each
// consecutive edge's step or via cost. Used by callers to check
// spec.md §8 testable property 5 (emitted cost equals edge-cost sum).
func (p Path) Cost(cfg routecost.Config) int {
	total := 0
	for i := 1; i < len(p); i++ {
		from, to := p[i-1], p[i]
		if from.IsVia(to) {
			total += cfg.Via()
		} else {
			total += cfg.StepMove(from, to)
		}
	}
	return total
}

// cellSet is a membership set over dense flat indices.
type cellSet map[int]struct{}

func newCellSet(g *grid.Grid, cells []grid.Cell) cellSet {
	s := make(cellSet, len(cells))
	for _, c := range cells {
		s[g.FlatIndex(c)] = struct{}{}
	}
	return s
}

// Search runs the uniform-cost search described above. g is read-only
// during the search (the grid is mutated only by callers, between
// searches). Returns ErrUnroutable if no source can reach any target.
func Search(g *grid.Grid, sources, targets []grid.Cell, cfg routecost.Config) (Path, error) {
	if len(sources) == 0 {
		return nil, ErrNoSources
	}
	if len(targets) == 0 {
		return nil, ErrNoTargets
	}

	targetSet := newCellSet(g, targets)

	// Edge case (spec.md §4.2): S ∩ T ≠ ∅ returns the single-cell path.
	for _, s := range sources {
		if _, ok := targetSet[g.FlatIndex(s)]; ok {
			return Path{s}, nil
		}
	}

	n := g.NumCells()
	const inf = int(^uint(0) >> 1)
	dist := make([]int, n)
	prev := make([]int, n)
	visited := make([]bool, n)
	for i := range dist {
		dist[i] = inf
		prev[i] = -1
	}

	pq := &nodeHeap{}
	heap.Init(pq)

	var seq int
	push := func(idx, cost int) {
		heap.Push(pq, &nodeItem{idx: idx, cost: cost, seq: seq})
		seq++
	}

	for _, s := range sources {
		idx := g.FlatIndex(s)
		if dist[idx] > 0 {
			dist[idx] = 0
			push(idx, 0)
		}
	}

	for pq.Len() > 0 {
		it := heap.Pop(pq).(*nodeItem)
		if visited[it.idx] {
			continue
		}
		// Stale entry: a cheaper path to this cell was already found.
		if it.cost > dist[it.idx] {
			continue
		}
		visited[it.idx] = true

		if _, ok := targetSet[it.idx]; ok {
			return reconstruct(g, prev, it.idx), nil
		}

		current := g.CellAt(it.idx)
		for _, nc := range neighbors(g, current) {
			if !admitted(g, nc, targetSet) {
				continue
			}
			nIdx := g.FlatIndex(nc)
			if visited[nIdx] {
				continue
			}
			moveCost := edgeCost(cfg, current, nc)
			newCost := dist[it.idx] + moveCost
			if newCost < dist[nIdx] {
				dist[nIdx] = newCost
				prev[nIdx] = it.idx
				push(nIdx, newCost)
			}
		}
	}

	return nil, ErrUnroutable
}

// neighbors produces the in-bounds in-plane ±X/±Y neighbors and the
// via neighbor of c; occupancy is left to callers (filtered via
// admitted).
func neighbors(g *grid.Grid, c grid.Cell) []grid.Cell {
	out := make([]grid.Cell, 0, 5)
	offsets := [4][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}
	for _, d := range offsets {
		nx, ny := c.X+d[0], c.Y+d[1]
		if g.InBounds(nx, ny) {
			out = append(out, grid.Cell{Layer: c.Layer, X: nx, Y: ny})
		}
	}
	out = append(out, c.Opposite())
	return out
}

// admitted reports whether an edge into cell c may be taken: c must
// be FREE, or a member of the target set (spec.md §4.2 graph rule).
func admitted(g *grid.Grid, c grid.Cell, targetSet cellSet) bool {
	if g.IsFree(c) {
		return true
	}
	_, isTarget := targetSet[g.FlatIndex(c)]
	return isTarget
}

func edgeCost(cfg routecost.Config, from, to grid.Cell) int {
	if from.IsVia(to) {
		return cfg.Via()
	}
	return cfg.StepMove(from, to)
}

func reconstruct(g *grid.Grid, prev []int, goalIdx int) Path {
	var idxPath []int
	for at := goalIdx; at >= 0; at = prev[at] {
		idxPath = append(idxPath, at)
		if prev[at] < 0 {
			break
		}
	}
	path := make(Path, len(idxPath))
	for i, idx := range idxPath {
		path[len(idxPath)-1-i] = g.CellAt(idx)
	}
	return path
}

// nodeItem is a single priority-queue entry: a cell (by dense index),
// its accumulated cost, and a monotonic insertion sequence used to
// break cost ties deterministically (FIFO, spec.md §4.2).
type nodeItem struct {
	idx, cost, seq int
}

// nodeHeap is a container/heap min-heap ordered by (cost, seq).
type nodeHeap []*nodeItem

func (h nodeHeap) Len() int { return len(h) }
func (h nodeHeap) Less(i, j int) bool {
	if h[i].cost != h[j].cost {
		return h[i].cost < h[j].cost
	}
	return h[i].seq < h[j].seq
}
func (h nodeHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }
func (h *nodeHeap) Push(x any) {
	*h = append(*h, x.(*nodeItem))
}
func (h *nodeHeap) Pop() any {
	old := *h
	n := len(old)
	it := old[n-1]
	old[n-1] = nil
	*h = old[:n-1]
	return it
}
