// Package dfs implements depth-first search over a grid.Grid.
//
// Key features:
//   - LIFO frontier of (position, path) entries, each owning its path.
//   - Pop-time dedup and visit semantics identical to package bfs.
//   - Neighbors from grid.Neighbors are pushed in reverse, so the first
//     policy direction (North) ends on top of the stack and is explored
//     first. The reversal keeps traces identical to a recursive DFS that
//     walks neighbors in policy order.
//   - Step-by-step driving through Walker.Step, or Search to run freely.
//
// DFS gives no shortest-path guarantee: it returns the first path its
// traversal order reaches. When End is unreachable the visited order
// covers Start's whole connected component.
//
// Complexity (N = passable cells, d = 4 or 8):
//
//   - Time:   O(N·d) pops.
//   - Memory: O(N·d·L) for carried paths, L = path length.
//
// Errors:
//
//   - core.ErrNilGrid         if g is nil.
//   - grid.ErrNotFound        if Start or End is missing.
//   - core.ErrOptionViolation for invalid options.
package dfs
