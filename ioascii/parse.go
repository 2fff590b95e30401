// Package ioascii implements the thin I/O adapters of spec.md §6: the
// ASCII input grammar and the output writer. These are external
// collaborators to the core router (spec.md §1), translated
// idiomatically from original_source/maze_router.py's
// regexp-over-coordinates parsing into Go's regexp/bufio.
package ioascii

import (
	"bufio"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"

	"github.com/gridroute/gridroute/grid"
	"github.com/gridroute/gridroute/netroute"
	"github.com/gridroute/gridroute/router"
)

var (
	dimsRe  = regexp.MustCompile(`^(\d+)x(\d+)$`)
	coordRe = regexp.MustCompile(`\((\d+)\s*,\s*(\d+)\s*,\s*(\d+)\)`)
	obsRe   = regexp.MustCompile(`\((\d+)\s*,\s*(\d+)\)`)
	nameRe  = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)
)

// Input is the validated, parsed contents of an input file.
type Input struct {
	W, H      int
	Obstacles []struct{ X, Y int }
	Nets      map[string]*netroute.Net
}

// ParseError reports the line a validation failure occurred on.
type ParseError struct {
	Line int
	Msg  string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("ioascii: line %d: %s", e.Line, e.Msg)
}

// Parse reads the spec.md §6 grammar from r and returns a validated
// Input, or a *ParseError / net-degeneracy error on the first grammar
// or bounds violation (input-malformed and out-of-bounds are both
// fatal to the session, per spec.md §7).
func Parse(r io.Reader) (*Input, error) {
	scanner := bufio.NewScanner(r)

	var lines []string
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		lines = append(lines, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if len(lines) == 0 {
		return nil, &ParseError{Line: 0, Msg: "empty input"}
	}

	m := dimsRe.FindStringSubmatch(lines[0])
	if m == nil {
		return nil, &ParseError{Line: 1, Msg: "expected <W>x<H> on the first non-blank line"}
	}
	w, _ := strconv.Atoi(m[1])
	h, _ := strconv.Atoi(m[2])
	if w < 1 || w > 1000 || h < 1 || h > 1000 {
		return nil, &ParseError{Line: 1, Msg: "W and H must be in [1,1000]"}
	}

	in := &Input{W: w, H: h, Nets: make(map[string]*netroute.Net)}

	for i, line := range lines[1:] {
		lineNum := i + 2
		if strings.HasPrefix(line, "OBS") {
			m := obsRe.FindStringSubmatch(line)
			if m == nil {
				return nil, &ParseError{Line: lineNum, Msg: "malformed obstacle: " + line}
			}
			x, _ := strconv.Atoi(m[1])
			y, _ := strconv.Atoi(m[2])
			if x < 0 || x >= w || y < 0 || y >= h {
				return nil, &ParseError{Line: lineNum, Msg: "obstacle coordinate out of bounds"}
			}
			in.Obstacles = append(in.Obstacles, struct{ X, Y int }{x, y})
			continue
		}

		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		name := fields[0]
		if !nameRe.MatchString(name) {
			return nil, &ParseError{Line: lineNum, Msg: "bad net name: " + name}
		}
		if _, dup := in.Nets[name]; dup {
			return nil, &ParseError{Line: lineNum, Msg: "duplicate net name: " + name}
		}

		matches := coordRe.FindAllStringSubmatch(line, -1)
		if len(matches) < 2 {
			return nil, &ParseError{Line: lineNum, Msg: "net " + name + " must have at least 2 pins"}
		}

		pins := make([]grid.Cell, 0, len(matches))
		for _, pm := range matches {
			layer1, _ := strconv.Atoi(pm[1])
			x, _ := strconv.Atoi(pm[2])
			y, _ := strconv.Atoi(pm[3])
			if layer1 != 1 && layer1 != 2 {
				return nil, &ParseError{Line: lineNum, Msg: "layer must be 1 or 2"}
			}
			if x < 0 || x >= w || y < 0 || y >= h {
				return nil, &ParseError{Line: lineNum, Msg: "pin coordinate out of bounds in net " + name}
			}
			pins = append(pins, grid.Cell{Layer: grid.Layer(layer1 - 1), X: x, Y: y})
		}

		in.Nets[name] = &netroute.Net{Name: name, Pins: pins}
	}

	return in, nil
}

// WriteResult writes result in the spec.md §6 output format: one
// line per successfully routed net, in routing order, cells in
// traversal order with 1-based layers.
func WriteResult(w io.Writer, result *router.Result) error {
	bw := bufio.NewWriter(w)
	for _, name := range result.Order {
		path := result.Routed[name]
		if _, err := fmt.Fprintf(bw, "%s ", name); err != nil {
			return err
		}
		for _, c := range path {
			if _, err := fmt.Fprintf(bw, "%s ", c.String()); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(bw); err != nil {
			return err
		}
	}
	return bw.Flush()
}
