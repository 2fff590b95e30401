package grid

// Grid is a two-layer occupancy map over a W×H cell space.
//
// Storage is a dense flat array per layer, indexed in row-major order
// (y*W+x), the same indexing scheme the teacher's gridgraph package
// uses for its single-layer occupancy grid. Mutation is monotonic in
// normal operation (FREE -> BLOCKED) but ForceFree exists for the
// driver's pin-unblocking step (spec.md §4.5).
type Grid struct {
	W, H   int
	layers [NumLayers][]State
}

// New constructs an empty (all-FREE) Grid of the given dimensions.
// Returns ErrBadDimensions if w or h is not positive.
func New(w, h int) (*Grid, error) {
	if w <= 0 || h <= 0 {
		return nil, ErrBadDimensions
	}
	g := &Grid{W: w, H: h}
	for l := 0; l < NumLayers; l++ {
		g.layers[l] = make([]State, w*h)
	}
	return g, nil
}

// InBounds reports whether (x,y) lies within the grid's extents.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.W && y >= 0 && y < g.H
}

// index maps (x,y) to a row-major flat index: y*W+x.
func (g *Grid) index(x, y int) int {
	return y*g.W + x
}

// Coordinate converts a row-major flat index back to (x,y).
func (g *Grid) Coordinate(idx int) (x, y int) {
	return idx % g.W, idx / g.W
}

// FlatIndex returns the dense index of c across both layers, the value
// per-search arenas of NumCells entries are keyed by:
// layer*W*H + y*W + x.
func (g *Grid) FlatIndex(c Cell) int {
	return int(c.Layer)*g.W*g.H + g.index(c.X, c.Y)
}

// NumCells returns the total number of addressable cells (2*W*H).
func (g *Grid) NumCells() int {
	return NumLayers * g.W * g.H
}

// CellAt reconstructs the Cell for a dense index produced by FlatIndex.
func (g *Grid) CellAt(idx int) Cell {
	planeSize := g.W * g.H
	l := idx / planeSize
	x, y := g.Coordinate(idx % planeSize)
	return Cell{Layer: Layer(l), X: x, Y: y}
}

func (g *Grid) validate(c Cell) error {
	if c.Layer != LayerHorizontal && c.Layer != LayerVertical {
		return ErrBadLayer
	}
	if !g.InBounds(c.X, c.Y) {
		return ErrOutOfBounds
	}
	return nil
}

// State returns the occupancy of c. Cells outside the grid or with an
// invalid layer are reported as Blocked.
func (g *Grid) State(c Cell) State {
	if err := g.validate(c); err != nil {
		return Blocked
	}
	return g.layers[c.Layer][g.index(c.X, c.Y)]
}

// IsFree reports whether c is currently routable.
func (g *Grid) IsFree(c Cell) bool {
	return g.State(c) == Free
}

// Block marks c as BLOCKED. Out-of-range or bad-layer cells are a no-op.
func (g *Grid) Block(c Cell) {
	if g.validate(c) != nil {
		return
	}
	g.layers[c.Layer][g.index(c.X, c.Y)] = Blocked
}

// ForceFree marks c as FREE, overriding any prior BLOCKED state. Used
// by the router driver to guarantee a net's own pins are always
// enterable (spec.md §4.5 step 1).
func (g *Grid) ForceFree(c Cell) {
	if g.validate(c) != nil {
		return
	}
	g.layers[c.Layer][g.index(c.X, c.Y)] = Free
}

// BlockObstacle marks (x,y) BLOCKED on layer 0 only, per spec.md §3's
// invariant that input obstacles affect layer 0 exclusively (the
// reference implementation's policy, carried forward unchanged; see
// DESIGN.md Open Question 3).
func (g *Grid) BlockObstacle(x, y int) {
	g.Block(Cell{Layer: LayerHorizontal, X: x, Y: y})
}

// BlockPath marks every cell of path BLOCKED.
func (g *Grid) BlockPath(path []Cell) {
	for _, c := range path {
		g.Block(c)
	}
}
