package frontier

// Stack is a LIFO frontier.
type Stack[T any] struct {
	items []T
}

// NewStack returns an empty stack with room for capacity entries.
func NewStack[T any](capacity int) *Stack[T] {
	return &Stack[T]{items: make([]T, 0, capacity)}
}

// Push places v on top.
func (s *Stack[T]) Push(v T) { s.items = append(s.items, v) }

// Pop removes the top entry.
func (s *Stack[T]) Pop() (T, bool) {
	var zero T
	n := len(s.items)
	if n == 0 {
		return zero, false
	}
	v := s.items[n-1]
	s.items[n-1] = zero
	s.items = s.items[:n-1]
	return v, true
}

// Len returns the number of pending entries.
func (s *Stack[T]) Len() int { return len(s.items) }
