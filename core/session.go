package core

import (
	"fmt"

	"github.com/katalvlaran/gridpath/grid"
)

// Session is the observe/cancel glue embedded by every strategy. It owns
// the visited order and the run state; strategies own their frontier.
type Session struct {
	opts    Options
	state   State
	visited []grid.Position
	path    []grid.Position
}

// NewSession returns a Session in state Ready.
// capacity is a hint for the visited order.
func NewSession(opts Options, capacity int) *Session {
	return &Session{opts: opts, visited: make([]grid.Position, 0, capacity)}
}

// State returns the current run state.
func (s *Session) State() State { return s.state }

// Options returns the options the session was built with.
func (s *Session) Options() Options { return s.opts }

// Visited returns the visited order so far. The returned slice has its
// capacity clipped, so appending to it never touches the run's storage.
func (s *Session) Visited() []grid.Position {
	return s.visited[:len(s.visited):len(s.visited)]
}

// Commit records p as visited, notifies the observer when ShowSteps is on,
// and polls the cancellation source. It returns true when the run was
// cancelled; the caller must then return without expanding p.
func (s *Session) Commit(p grid.Position) (cancelled bool) {
	s.state = Stepping
	s.visited = append(s.visited, p)
	if s.opts.ShowSteps {
		s.opts.Observer.Observe(s.Visited())
	}
	if s.opts.Cancel.ShouldStop() {
		s.Finish(Cancelled, nil)
		return true
	}
	return false
}

// Finish moves the session into the terminal state st, storing path for
// Found. With ShowSteps off the observer sees the full visited order once,
// here. Finish on an already terminal session is a no-op.
func (s *Session) Finish(st State, path []grid.Position) State {
	if s.state.Terminal() {
		return s.state
	}
	s.state = st
	if st == Found {
		s.path = path
	}
	if !s.opts.ShowSteps {
		s.opts.Observer.Observe(s.Visited())
	}
	return s.state
}

// Result returns a snapshot of the run. Slices are copies.
func (s *Session) Result() Result {
	r := Result{
		State:     s.state,
		PathFound: s.state == Found,
		Path:      []grid.Position{},
		Visited:   append([]grid.Position(nil), s.visited...),
	}
	if r.PathFound {
		r.Path = append(r.Path, s.path...)
	}
	if r.Visited == nil {
		r.Visited = []grid.Position{}
	}
	return r
}

// Endpoints locates Start and End, wrapping a miss with prefix
// (typically the strategy name).
func Endpoints(g *grid.Grid, prefix string) (start, end grid.Position, err error) {
	if g == nil {
		return start, end, fmt.Errorf("%s: %w", prefix, ErrNilGrid)
	}
	if start, err = g.Locate(grid.Start); err != nil {
		return start, end, fmt.Errorf("%s: locate start: %w", prefix, err)
	}
	if end, err = g.Locate(grid.End); err != nil {
		return start, end, fmt.Errorf("%s: locate end: %w", prefix, err)
	}
	return start, end, nil
}
