// Package dijkstra provides Dijkstra's shortest-path search over a
// grid.Grid with unit edge costs.
//
// Overview:
//
//   - A fresh arena.Arena is built per run: one vertex per cell, adjacency
//     computed once from the 4-directional neighbor policy.
//   - A min-priority frontier (frontier.Priority) always expands the
//     closest unvisited vertex. Keys are recorded at push time; ties pop
//     in push order.
//   - Lazy decrease-key: an improved vertex is pushed again and stale
//     entries are skipped when popped, as their vertex is already visited.
//   - The path is rebuilt by walking parent indices from End back to Start.
//
// On a unit-cost grid Dijkstra and BFS agree on path length; Dijkstra is
// the reference for A*, which adds a heuristic to the same machinery.
//
// Diagonal movement options are accepted but ignored: the arena is
// always 4-directional.
//
// Performance and complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E), E entries worst-case in the heap.
//
// Error handling (sentinel errors):
//
//   - core.ErrNilGrid:         nil grid.
//   - grid.ErrNotFound:        Start or End missing.
//   - core.ErrOptionViolation: invalid engine option.
package dijkstra
