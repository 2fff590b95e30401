// Package gridroute is a two-layer, grid-based maze router in the
// style of Lee's algorithm, adapted for VLSI detail routing.
//
// Given a rectangular routing area, a set of blocked cells, and a
// collection of named nets (each a set of pins with layer/column/row
// coordinates), gridroute computes, for each net, an ordered sequence
// of cells that connects every pin of the net. Routing honors a
// preferred-direction model per layer and charges configurable
// penalties for off-direction moves and layer transitions (vias).
//
// Everything is organized under single-purpose subpackages:
//
//	grid/          — the two-layer occupancy grid and cell addressing
//	routecost/     — the three cost parameters and the edge-cost rules
//	pathsearch/    — the weighted multi-source/multi-target grid search
//	netroute/      — net/pin types and the multi-pin net connector
//	sequence/      — net ordering and pin-source election heuristics
//	router/        — the driver that ties the above into a routing session
//	ioascii/       — the ASCII input grammar and output writer
//	vizplot/       — optional PNG visualization of a routed session
//	cmd/gridroute/ — the command-line entry point
//
// A minimal session looks like:
//
//	g, _ := grid.New(width, height)
//	for _, obs := range obstacles {
//	    g.BlockObstacle(obs.X, obs.Y)
//	}
//	d := router.New(g, routecost.DefaultConfig(), nil)
//	result := d.RouteAll(nets)
package gridroute
