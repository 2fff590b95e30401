// Package vizplot renders a routed session to a PNG: the grid
// extents, obstacles, and each net's path (colored by the layer of its
// first cell). This is
// the concrete home for spec.md §1's "optional 2D visualization"
// external collaborator, and the Go-ecosystem rendition of
// original_source/maze_router.py's matplotlib output, using the
// pack's only plotting library, gonum.org/v1/plot (gonum-gonum's
// go.mod require).
package vizplot

import (
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/gridroute/gridroute/grid"
	"github.com/gridroute/gridroute/router"
)

var layerColors = [grid.NumLayers]color.Color{
	color.RGBA{R: 0x20, G: 0x60, B: 0xc0, A: 0xff}, // layer 0: horizontal-preferred
	color.RGBA{R: 0xc0, G: 0x40, B: 0x20, A: 0xff}, // layer 1: vertical-preferred
}

// Render draws a w×h grid, marks obstacles as filled squares, and
// draws each routed net's path as one polyline colored by the layer of
// the path's first cell, saving the result to path as a PNG. Segments
// on the other layer are not colored differently.
func Render(w, h int, obstacles []grid.Cell, result *router.Result, path string) error {
	p := plot.New()
	p.Title.Text = "routed session"
	p.X.Min, p.X.Max = -1, float64(w)
	p.Y.Min, p.Y.Max = -1, float64(h)

	if len(obstacles) > 0 {
		pts := make(plotter.XYs, len(obstacles))
		for i, c := range obstacles {
			pts[i].X = float64(c.X)
			pts[i].Y = float64(c.Y)
		}
		scatter, err := plotter.NewScatter(pts)
		if err != nil {
			return err
		}
		scatter.Color = color.Black
		scatter.Shape = plotter.BoxGlyph{}
		p.Add(scatter)
	}

	for _, name := range result.Order {
		routed := result.Routed[name]
		if len(routed) == 0 {
			continue
		}
		pts := make(plotter.XYs, len(routed))
		for i, c := range routed {
			pts[i].X = float64(c.X)
			pts[i].Y = float64(c.Y)
		}
		line, err := plotter.NewLine(pts)
		if err != nil {
			return err
		}
		line.Color = layerColors[routed[0].Layer]
		line.Width = vg.Points(1.5)
		p.Add(line)
	}

	return p.Save(6*vg.Inch, 6*vg.Inch, path)
}
