package frontier

import "container/heap"

// Priority is a min-heap frontier. The key of each entry is computed by the
// key function when the entry is pushed and stored alongside it.
type Priority[T any] struct {
	h   entries[T]
	key func(T) int
	seq uint64
}

// NewPriority returns an empty priority frontier ordered by key (ascending),
// then by push order.
func NewPriority[T any](capacity int, key func(T) int) *Priority[T] {
	p := &Priority[T]{h: make(entries[T], 0, capacity), key: key}
	heap.Init(&p.h)
	return p
}

// Push adds v with priority key(v).
func (p *Priority[T]) Push(v T) {
	p.PushKey(v, p.key(v))
}

// PushKey adds v with an explicit priority.
func (p *Priority[T]) PushKey(v T, key int) {
	heap.Push(&p.h, entry[T]{value: v, key: key, seq: p.seq})
	p.seq++
}

// Pop removes the entry with the smallest key.
func (p *Priority[T]) Pop() (T, bool) {
	v, _, ok := p.PopKey()
	return v, ok
}

// PopKey removes the entry with the smallest key and returns that key as it
// was recorded at push time.
func (p *Priority[T]) PopKey() (T, int, bool) {
	if p.h.Len() == 0 {
		var zero T
		return zero, 0, false
	}
	e := heap.Pop(&p.h).(entry[T])
	return e.value, e.key, true
}

// Len returns the number of pending entries, stale duplicates included.
func (p *Priority[T]) Len() int { return p.h.Len() }

// entry pairs a value with its push-time key and sequence number.
type entry[T any] struct {
	value T
	key   int
	seq   uint64
}

// entries implements heap.Interface ordered by (key, seq).
type entries[T any] []entry[T]

func (h entries[T]) Len() int { return len(h) }

func (h entries[T]) Less(i, j int) bool {
	if h[i].key != h[j].key {
		return h[i].key < h[j].key
	}
	return h[i].seq < h[j].seq
}

func (h entries[T]) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *entries[T]) Push(x any) { *h = append(*h, x.(entry[T])) }

func (h *entries[T]) Pop() any {
	old := *h
	n := len(old)
	e := old[n-1]
	*h = old[:n-1]
	return e
}
