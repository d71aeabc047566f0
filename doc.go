// Package gridwalk visualizes grid pathfinding one step at a time.
//
// A search walks a small 2D grid of free cells and weighted obstacles from a
// Start cell to an End cell. Every algorithm speaks the same stepping
// protocol, so a renderer can draw the frontier after each expansion.
//
// What is inside:
//
//	grid/      cells, four-neighbor queries, search marks, ASCII parse/print
//	builder/   the two fixed layouts and seeded random layouts
//	search/    shared search state, path reconstruction, hooks, PathFinder
//	bfs/       breadth-first search, obstacles are walls
//	dijkstra/  cost relaxation, obstacles crossable at (weight+1)×6
//	heuristic/ greedy best-first search on the Manhattan estimate
//	driver/    Session, commands, YAML config, logrus hooks
//	stream/    websocket transport of session snapshots
//	render/    palette and cell geometry of the window
//
// Binaries:
//
//	cmd/gridwalk        ebiten window, keyboard driven
//	cmd/gridwalk-serve  HTTP server exposing /stream
//
// Quick example:
//
//	g := grid.MustParse("S.2.E")
//	f, _ := dijkstra.New(g)
//	search.Run(f, 0)
//	p, _ := f.Path()
//	fmt.Println(p) // path (0,0) -> (4,0): length=21 hops=4 visited=3
package gridwalk
