// Package gridpath is a grid pathfinding engine: a bordered cell board, a
// fixed neighbor policy and four search strategies that report every cell
// they commit, step by step, plus the path they find.
//
// Packages, in dependency order:
//
//	grid/          board model, neighbor policy, builder, maze text format, random boards
//	frontier/      FIFO queue, LIFO stack, keyed min-heap with FIFO tie-break
//	arena/         per-run vertex arena, unit-cost relaxation, parent-walk paths
//	core/          run states, Result, observer and cancellation hooks, engine options
//	bfs/ dfs/      value-carried-path traversals
//	dijkstra/      shortest path over the arena
//	astar/         Dijkstra plus a fixed Manhattan heuristic
//	search/        algorithm selection and instrumented runs
//	observability/ slog helpers, OpenTelemetry metrics and spans
//	config/        YAML/JSON host settings
//	render/        ASCII and PNG renderings of a trace
//	cmd/gridpath/  command-line host
//
// Quick example:
//
//	g := grid.MustParse("O..#\n.#..\n...X")
//	res, err := search.Run(ctx, g, search.AStar)
//	fmt.Print(render.ASCII(g, res.Path, res.Visited))
//
// A run is single-threaded and cooperative: the host calls Step (or
// core.Run), the strategy invokes the observer inside each step and polls
// the cancellation source once per step. Separate runs share nothing.
package gridpath
