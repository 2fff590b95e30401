// Package routecost holds the three scalar cost parameters of spec.md
// §4.1 and the pure functions that combine them into edge weights. It
// follows the teacher's (dijkstra) functional-options configuration
// pattern so that cost parameters are passed as an explicit, immutable
// value into every call site rather than held as package state
// (spec.md §9, "Global cost parameters").
package routecost

import "github.com/gridroute/gridroute/grid"

// Config holds the three non-negative integer cost parameters.
type Config struct {
	// StepCost is the unit cost of a step move on the preferred axis
	// of the current layer.
	StepCost int
	// WrongDirCost is the additional penalty for a step move on the
	// non-preferred axis of the current layer.
	WrongDirCost int
	// ViaCost is the total cost of a layer transition; it replaces,
	// rather than adds to, StepCost.
	ViaCost int
}

// Option configures a Config.
type Option func(*Config)

// WithStepCost overrides the default unit step cost. Panics if v is
// negative, matching the teacher's panic-on-invalid-argument
// convention for functional options (dijkstra.WithMaxDistance).
func WithStepCost(v int) Option {
	if v < 0 {
		panic("routecost: StepCost must be non-negative")
	}
	return func(c *Config) { c.StepCost = v }
}

// WithWrongDirCost overrides the default off-direction penalty.
func WithWrongDirCost(v int) Option {
	if v < 0 {
		panic("routecost: WrongDirCost must be non-negative")
	}
	return func(c *Config) { c.WrongDirCost = v }
}

// WithViaCost overrides the default via cost.
func WithViaCost(v int) Option {
	if v < 0 {
		panic("routecost: ViaCost must be non-negative")
	}
	return func(c *Config) { c.ViaCost = v }
}

// DefaultConfig returns the spec's default cost parameters
// (step=1, wrong-dir=20, via=20), then applies opts left to right.
func DefaultConfig(opts ...Option) Config {
	cfg := Config{StepCost: 1, WrongDirCost: 20, ViaCost: 20}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// preferredAxisIsY reports whether the given layer prefers Y-axis
// moves. Layer 0 (LayerHorizontal) prefers Y; layer 1 (LayerVertical)
// prefers X. The naming is the spec's, not a statement about the
// axis itself.
func preferredAxisIsY(l grid.Layer) bool {
	return l == grid.LayerHorizontal
}

// StepMove returns the cost of an in-plane move from one cell to an
// adjacent cell on the same layer. It is the caller's responsibility
// to ensure from and to are orthogonally adjacent on the same layer;
// StepMove does not itself validate adjacency.
func (c Config) StepMove(from, to grid.Cell) int {
	dx := from.X - to.X
	dy := from.Y - to.Y
	if dx < 0 {
		dx = -dx
	}
	if dy < 0 {
		dy = -dy
	}

	wrongDir := false
	if preferredAxisIsY(from.Layer) {
		// Layer 0 prefers Y; an X move is off-direction.
		wrongDir = dx != 0
	} else {
		// Layer 1 prefers X; a Y move is off-direction.
		wrongDir = dy != 0
	}

	cost := c.StepCost
	if wrongDir {
		cost += c.WrongDirCost
	}
	return cost
}

// Via returns the cost of a layer transition. It is symmetric and
// does not add StepCost (spec.md §9 Open Question 2: fixed as ViaCost
// alone).
func (c Config) Via() int {
	return c.ViaCost
}
