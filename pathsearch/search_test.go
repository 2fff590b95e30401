package pathsearch

import (
	"testing"

	"github.com/gridroute/gridroute/grid"
	"github.com/gridroute/gridroute/routecost"
)

func mustGrid(t *testing.T, w, h int) *grid.Grid {
	t.Helper()
	g, err := grid.New(w, h)
	if err != nil {
		t.Fatalf("grid.New: %v", err)
	}
	return g
}

// Scenario 1 (spec.md §8.1): 5x5, no obstacles, between two layer-0
// corners. With default costs, preferred-axis legs on both layers joined
// by two vias (8 + 2*20 = 48) undercut any layer-0 L-shape (4 + 4*21 = 88).
func TestSearch_CornerToCorner(t *testing.T) {
	g := mustGrid(t, 5, 5)
	cfg := routecost.DefaultConfig()
	src := grid.Cell{Layer: grid.LayerHorizontal, X: 0, Y: 0}
	dst := grid.Cell{Layer: grid.LayerHorizontal, X: 4, Y: 4}

	path, err := Search(g, []grid.Cell{src}, []grid.Cell{dst}, cfg)
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(path) < 9 {
		t.Errorf("path length = %d; want >= 9", len(path))
	}
	vias := 0
	for i := 1; i < len(path); i++ {
		if path[i-1].IsVia(path[i]) {
			vias++
		} else if got := cfg.StepMove(path[i-1], path[i]); got != cfg.StepCost {
			t.Errorf("step %v->%v costs %d; want only preferred-axis steps", path[i-1], path[i], got)
		}
	}
	if vias != 2 {
		t.Errorf("vias = %d; want 2", vias)
	}
	if got, want := path.Cost(cfg), 8*cfg.StepCost+2*cfg.ViaCost; got != want {
		t.Errorf("cost = %d; want %d (two vias, preferred-axis steps only)", got, want)
	}
}

// Scenario 2 (spec.md §8.2): layer 0 fully blocked between source/target,
// forcing two vias through layer 1.
func TestSearch_ForcedVias(t *testing.T) {
	g := mustGrid(t, 3, 3)
	for y := 0; y < 3; y++ {
		g.BlockObstacle(1, y)
	}
	cfg := routecost.DefaultConfig()
	src := grid.Cell{Layer: grid.LayerHorizontal, X: 0, Y: 1}
	dst := grid.Cell{Layer: grid.LayerHorizontal, X: 2, Y: 1}

	path, err := Search(g, []grid.Cell{src}, []grid.Cell{dst}, cfg)
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if got, want := path.Cost(cfg), 2*cfg.ViaCost+2*cfg.StepCost; got != want {
		t.Errorf("cost = %d; want %d", got, want)
	}
}

// Scenario 5 (spec.md §8.5): source == target yields a single-cell path.
func TestSearch_SourceEqualsTarget(t *testing.T) {
	g := mustGrid(t, 2, 2)
	cfg := routecost.DefaultConfig()
	c := grid.Cell{Layer: grid.LayerHorizontal, X: 0, Y: 0}

	path, err := Search(g, []grid.Cell{c}, []grid.Cell{c}, cfg)
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(path) != 1 || path[0] != c {
		t.Errorf("path = %v; want single-cell [%v]", path, c)
	}
	if got := path.Cost(cfg); got != 0 {
		t.Errorf("cost = %d; want 0", got)
	}
}

// Scenario 6 (spec.md §8.6): a pin fully enclosed by obstacles on both
// layers is unroutable.
func TestSearch_Unroutable(t *testing.T) {
	g := mustGrid(t, 3, 3)
	// Enclose (1,1) on layer 0 on all four sides, and block the same four
	// neighbours on layer 1 too so the via can't escape either.
	g.BlockObstacle(0, 1)
	g.BlockObstacle(2, 1)
	g.BlockObstacle(1, 0)
	g.BlockObstacle(1, 2)
	g.Block(grid.Cell{Layer: grid.LayerVertical, X: 0, Y: 1})
	g.Block(grid.Cell{Layer: grid.LayerVertical, X: 2, Y: 1})
	g.Block(grid.Cell{Layer: grid.LayerVertical, X: 1, Y: 0})
	g.Block(grid.Cell{Layer: grid.LayerVertical, X: 1, Y: 2})

	cfg := routecost.DefaultConfig()
	src := grid.Cell{Layer: grid.LayerHorizontal, X: 1, Y: 1}
	dst := grid.Cell{Layer: grid.LayerHorizontal, X: 0, Y: 0}

	_, err := Search(g, []grid.Cell{src}, []grid.Cell{dst}, cfg)
	if err != ErrUnroutable {
		t.Fatalf("Search error = %v; want ErrUnroutable", err)
	}
}

func TestSearch_TargetReachableThroughAnotherTarget(t *testing.T) {
	g := mustGrid(t, 5, 1)
	cfg := routecost.DefaultConfig()
	src := grid.Cell{Layer: grid.LayerHorizontal, X: 0, Y: 0}
	mid := grid.Cell{Layer: grid.LayerHorizontal, X: 2, Y: 0}
	far := grid.Cell{Layer: grid.LayerHorizontal, X: 4, Y: 0}
	// Block the cell between src and far so the only route passes
	// through mid, a target cell treated as FREE.
	g.Block(mid)
	g.Block(mid.Opposite())

	path, err := Search(g, []grid.Cell{src}, []grid.Cell{mid, far}, cfg)
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if path[len(path)-1] != mid {
		t.Errorf("expected to stop at nearer target %v, got path %v", mid, path)
	}
}

func TestSearch_EmptySourcesOrTargets(t *testing.T) {
	g := mustGrid(t, 2, 2)
	cfg := routecost.DefaultConfig()
	c := grid.Cell{Layer: grid.LayerHorizontal, X: 0, Y: 0}

	if _, err := Search(g, nil, []grid.Cell{c}, cfg); err != ErrNoSources {
		t.Errorf("want ErrNoSources, got %v", err)
	}
	if _, err := Search(g, []grid.Cell{c}, nil, cfg); err != ErrNoTargets {
		t.Errorf("want ErrNoTargets, got %v", err)
	}
}

func TestSearch_Determinism(t *testing.T) {
	g := mustGrid(t, 6, 6)
	cfg := routecost.DefaultConfig()
	src := grid.Cell{Layer: grid.LayerHorizontal, X: 0, Y: 0}
	dst := grid.Cell{Layer: grid.LayerHorizontal, X: 5, Y: 5}

	first, err := Search(g, []grid.Cell{src}, []grid.Cell{dst}, cfg)
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	for i := 0; i < 5; i++ {
		g2 := mustGrid(t, 6, 6)
		again, err := Search(g2, []grid.Cell{src}, []grid.Cell{dst}, cfg)
		if err != nil {
			t.Fatalf("Search: %v", err)
		}
		if len(again) != len(first) {
			t.Fatalf("run %d differs in length: %d vs %d", i, len(again), len(first))
		}
		for j := range first {
			if again[j] != first[j] {
				t.Fatalf("run %d differs at %d: %v vs %v", i, j, again[j], first[j])
			}
		}
	}
}
