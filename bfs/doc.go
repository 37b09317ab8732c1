// Package bfs provides breadth-first search over a grid.Grid, returning the
// visitation trace and, when End is reachable, a path of minimum edge count.
//
// What
//
//   - FIFO frontier seeded with (Start, [Start]).
//   - Each frontier entry carries its own copy of the path that reached it;
//     the winning entry's path is the answer, no parent map is kept.
//   - Dedup happens at pop time: the same cell may sit in the frontier
//     several times, only its first pop is committed.
//   - Neighbors come from grid.Neighbors in policy order (N, E, S, W, plus
//     NE, SE, SW, NW when diagonal movement is enabled).
//
// Why
//
//	All edges cost 1 and FIFO order explores by increasing depth, so the
//	first time End is popped its carried path is shortest.
//
// Determinism
//
//	The neighbor policy fixes push order, so the visit sequence and path are
//	reproducible run to run.
//
// Complexity (N = passable cells, d = 4 or 8)
//
//   - Time:   O(N·d) pops, each pushing paths of up to O(N) length.
//   - Memory: O(N·d·L) for carried paths, L = path length.
//
// Usage
//
//	w, err := bfs.New(g, core.WithObserver(obs), core.WithDiagonal(true))
//	if err != nil {
//		// core.ErrNilGrid, grid.ErrNotFound, core.ErrOptionViolation
//	}
//	for !w.Step().Terminal() {
//		// pace here
//	}
//	res := w.Result()
//
//	// or, free-running:
//	res, err := bfs.Search(g)
package bfs
