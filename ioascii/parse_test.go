package ioascii

import (
	"bytes"
	"strings"
	"testing"

	"github.com/gridroute/gridroute/grid"
	"github.com/gridroute/gridroute/pathsearch"
	"github.com/gridroute/gridroute/router"
)

func TestParse_Basic(t *testing.T) {
	src := `
5x5

OBS (1,1)
A (1,0,0) (2, 4, 4)
`
	in, err := Parse(strings.NewReader(src))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if in.W != 5 || in.H != 5 {
		t.Fatalf("dims = %dx%d; want 5x5", in.W, in.H)
	}
	if len(in.Obstacles) != 1 || in.Obstacles[0].X != 1 || in.Obstacles[0].Y != 1 {
		t.Fatalf("obstacles = %v", in.Obstacles)
	}
	net, ok := in.Nets["A"]
	if !ok {
		t.Fatalf("net A not parsed")
	}
	want := []grid.Cell{
		{Layer: grid.LayerHorizontal, X: 0, Y: 0},
		{Layer: grid.LayerVertical, X: 4, Y: 4},
	}
	if len(net.Pins) != 2 || net.Pins[0] != want[0] || net.Pins[1] != want[1] {
		t.Fatalf("pins = %v; want %v", net.Pins, want)
	}
}

func TestParse_BadDimensions(t *testing.T) {
	_, err := Parse(strings.NewReader("0x5\nA (1,0,0) (1,1,1)\n"))
	if err == nil {
		t.Fatalf("expected error for W=0")
	}
}

func TestParse_TooFewPins(t *testing.T) {
	_, err := Parse(strings.NewReader("3x3\nA (1,0,0)\n"))
	if err == nil {
		t.Fatalf("expected error for a 1-pin net")
	}
}

func TestParse_BadLayer(t *testing.T) {
	_, err := Parse(strings.NewReader("3x3\nA (3,0,0) (1,1,1)\n"))
	if err == nil {
		t.Fatalf("expected error for layer 3")
	}
}

func TestParse_OutOfBounds(t *testing.T) {
	_, err := Parse(strings.NewReader("3x3\nA (1,5,5) (1,1,1)\n"))
	if err == nil {
		t.Fatalf("expected error for out-of-bounds pin")
	}
}

func TestWriteResult(t *testing.T) {
	result := &router.Result{
		Order: []string{"A"},
		Routed: map[string]pathsearch.Path{
			"A": {
				{Layer: grid.LayerHorizontal, X: 0, Y: 0},
				{Layer: grid.LayerHorizontal, X: 0, Y: 1},
			},
		},
	}
	var buf bytes.Buffer
	if err := WriteResult(&buf, result); err != nil {
		t.Fatalf("WriteResult: %v", err)
	}
	got := buf.String()
	want := "A (1, 0, 0) (1, 0, 1) \n"
	if got != want {
		t.Fatalf("WriteResult output = %q; want %q", got, want)
	}
}
