package core

import (
	"fmt"

	"github.com/katalvlaran/gridpath/grid"
)

// Option configures a search run via functional arguments.
// An invalid Option is recorded and surfaced as ErrOptionViolation when the
// strategy is constructed.
type Option func(*Options)

// Options holds the hooks and policy of a run.
type Options struct {
	// Observer receives the visited order; see ShowSteps.
	Observer StepObserver

	// Cancel is polled once per step.
	Cancel CancellationSource

	// ShowSteps selects per-step observation (true) or a single observation
	// at the end of the run (false).
	ShowSteps bool

	// Conn is the neighbor policy of BFS and DFS. Dijkstra and A* always
	// use Conn4.
	Conn grid.Connectivity

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with:
//   - no-op observer and a cancellation source that never stops
//   - ShowSteps = true
//   - Conn = grid.Conn4 (diagonal movement off)
func DefaultOptions() Options {
	return Options{
		Observer:  ObserverFunc(func([]grid.Position) {}),
		Cancel:    StopFunc(func() bool { return false }),
		ShowSteps: true,
		Conn:      grid.Conn4,
	}
}

// Apply builds Options from defaults and opts, returning the first
// recorded violation.
func Apply(opts ...Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return Options{}, o.err
	}
	return o, nil
}

// WithObserver sets the step observer. nil keeps the no-op observer.
func WithObserver(obs StepObserver) Option {
	return func(o *Options) {
		if obs != nil {
			o.Observer = obs
		}
	}
}

// WithCancellation sets the cancellation source. nil keeps the default.
func WithCancellation(c CancellationSource) Option {
	return func(o *Options) {
		if c != nil {
			o.Cancel = c
		}
	}
}

// WithShowSteps toggles per-step observation.
func WithShowSteps(show bool) Option {
	return func(o *Options) { o.ShowSteps = show }
}

// WithDiagonal enables (Conn8) or disables (Conn4) diagonal movement.
func WithDiagonal(diagonal bool) Option {
	return func(o *Options) {
		o.Conn = grid.Conn4
		if diagonal {
			o.Conn = grid.Conn8
		}
	}
}

// WithConnectivity sets the neighbor policy explicitly.
//
//	grid.Conn4, grid.Conn8: accepted
//	anything else:          ErrOptionViolation
func WithConnectivity(conn grid.Connectivity) Option {
	return func(o *Options) {
		if conn != grid.Conn4 && conn != grid.Conn8 {
			o.err = fmt.Errorf("%w: unknown connectivity %d", ErrOptionViolation, int(conn))
			return
		}
		o.Conn = conn
	}
}
