// Package frontier provides the three frontier orderings consumed by the
// gridpath search loops:
//
//   - Queue:    FIFO, used by breadth-first search.
//   - Stack:    LIFO, used by depth-first search.
//   - Priority: min-heap keyed by an int priority, used by Dijkstra and A*.
//
// All three satisfy Frontier[T] so a step loop can be written once against
// the ordering it needs.
//
// Priority tie-break: among entries with equal keys, the one pushed first is
// popped first. Each push stamps a monotonically increasing sequence number
// that the heap compares after the key, so equal-key order is stable and
// runs are reproducible.
//
// Priority records the key at push time. Later changes to the value's own
// fields do not reorder entries already in the heap; callers push a fresh
// entry instead (lazy decrease-key) and discard stale ones when popped.
//
// Complexity:
//
//   - Queue, Stack: O(1) amortized Push and Pop.
//   - Priority:     O(log n) Push and Pop.
package frontier

// Frontier is the ordered collection of not-yet-processed search entries.
type Frontier[T any] interface {
	// Push adds v to the frontier.
	Push(v T)
	// Pop removes and returns the next entry; ok is false when empty.
	Pop() (v T, ok bool)
	// Len returns the number of pending entries.
	Len() int
}
