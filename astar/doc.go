// Package astar implements A* search over a grid.Grid with unit edge costs
// and a Manhattan-distance heuristic.
//
// The machinery is Dijkstra's (package dijkstra): a per-run arena, a
// priority frontier with push-time keys and FIFO tie-break, lazy deletion
// of stale entries and parent-walk path reconstruction. The difference is
// the key: distance from Start plus the heuristic estimate to End.
//
// Heuristics are computed once per vertex before the first step and are
// never modified during the run. Manhattan distance is admissible and
// consistent on a 4-directional unit grid, so the first pop of End yields a
// shortest path.
//
// A variant that subtracts the tentative distance from the stored
// heuristic on each relaxation drifts keys as the run progresses and can
// return non-shortest paths; it is not reproduced here.
//
// Like Dijkstra, A* always moves 4-directionally and ignores diagonal
// options.
package astar
