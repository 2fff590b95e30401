// Command gridroute is the CLI entry point for the two-layer maze
// router: it reads an ASCII routing problem (spec.md §6), routes every
// net, writes the ASCII result, and optionally renders a PNG
// visualization. It is the idiomatic-Go rendition of
// original_source/maze_router.py's main() prompt sequence: flags
// replace the original's input() prompts, with an interactive
// fallback preserved for any flag left unset: it reads the answer from
// stdin whether or not stdin is a terminal, using the default on a
// blank line or end of input.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/gridroute/gridroute/grid"
	"github.com/gridroute/gridroute/ioascii"
	"github.com/gridroute/gridroute/router"
	"github.com/gridroute/gridroute/routecost"
	"github.com/gridroute/gridroute/vizplot"
)

func main() {
	os.Exit(run())
}

func run() int {
	var (
		inPath  = flag.String("in", "", "input file (default: prompt)")
		outPath = flag.String("out", "", "output file (default: prompt)")
		step    = flag.Int("step-cost", -1, "unit step cost (default: 1, or prompt)")
		wrong   = flag.Int("wrong-dir-cost", -1, "off-direction penalty (default: 20, or prompt)")
		via     = flag.Int("via-cost", -1, "via cost (default: 20, or prompt)")
		vizPath = flag.String("viz", "", "optional PNG visualization output path")
	)
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	in := bufio.NewScanner(os.Stdin)

	resolvedIn := *inPath
	if resolvedIn == "" {
		resolvedIn = prompt(in, "Enter input file name (default: input.txt): ", "input.txt")
	}
	f, err := os.Open(resolvedIn)
	if err != nil {
		logger.Error("failed to open input file", "path", resolvedIn, "error", err)
		return 1
	}
	defer f.Close()

	resolvedOut := *outPath
	if resolvedOut == "" {
		resolvedOut = prompt(in, "Enter output file name (default: output.txt): ", "output.txt")
	}

	cost := routecost.DefaultConfig(
		stepOption(step, in),
		wrongDirOption(wrong, in),
		viaOption(via, in),
	)

	parsed, err := ioascii.Parse(f)
	if err != nil {
		logger.Error("input validation failed", "error", err)
		return 1
	}

	g, err := grid.New(parsed.W, parsed.H)
	if err != nil {
		logger.Error("invalid grid dimensions", "error", err)
		return 1
	}
	for _, obs := range parsed.Obstacles {
		g.BlockObstacle(obs.X, obs.Y)
	}

	logger.Info("starting routing", "nets", len(parsed.Nets), "width", parsed.W, "height", parsed.H)

	d := router.New(g, cost, logger)
	result := d.RouteAll(parsed.Nets)

	outFile, err := os.Create(resolvedOut)
	if err != nil {
		logger.Error("failed to create output file", "path", resolvedOut, "error", err)
		return 1
	}
	defer outFile.Close()

	if err := ioascii.WriteResult(outFile, result); err != nil {
		logger.Error("failed to write output file", "error", err)
		return 1
	}

	logger.Info("routing completed", "routed", len(result.Routed), "failed", len(result.Failed), "output", resolvedOut)

	if *vizPath != "" {
		obstacleCells := make([]grid.Cell, len(parsed.Obstacles))
		for i, obs := range parsed.Obstacles {
			obstacleCells[i] = grid.Cell{Layer: grid.LayerHorizontal, X: obs.X, Y: obs.Y}
		}
		if err := vizplot.Render(parsed.W, parsed.H, obstacleCells, result, *vizPath); err != nil {
			logger.Warn("visualization failed", "error", err)
		} else {
			logger.Info("visualization saved", "path", *vizPath)
		}
	}

	return 0
}

// prompt reads a line from in, returning def if the line is blank.
// This is the interactive fallback preserved from the original
// script's input()-driven UX (see DESIGN.md).
func prompt(in *bufio.Scanner, message, def string) string {
	fmt.Fprint(os.Stderr, message)
	if !in.Scan() {
		return def
	}
	line := strings.TrimSpace(in.Text())
	if line == "" {
		return def
	}
	return line
}

func stepOption(v *int, in *bufio.Scanner) routecost.Option {
	return costOption(v, in, "Enter step cost (default: 1): ", routecost.WithStepCost)
}

func wrongDirOption(v *int, in *bufio.Scanner) routecost.Option {
	return costOption(v, in, "Enter wrong direction cost (default: 20): ", routecost.WithWrongDirCost)
}

func viaOption(v *int, in *bufio.Scanner) routecost.Option {
	return costOption(v, in, "Enter via cost (default: 20): ", routecost.WithViaCost)
}

func costOption(v *int, in *bufio.Scanner, message string, makeOpt func(int) routecost.Option) routecost.Option {
	if *v >= 0 {
		return makeOpt(*v)
	}
	fmt.Fprint(os.Stderr, message)
	if !in.Scan() {
		return func(*routecost.Config) {}
	}
	text := strings.TrimSpace(in.Text())
	if text == "" {
		return func(*routecost.Config) {}
	}
	n, err := strconv.Atoi(text)
	if err != nil || n < 0 {
		fmt.Fprintln(os.Stderr, "invalid cost, using default")
		return func(*routecost.Config) {}
	}
	return makeOpt(n)
}
