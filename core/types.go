package core

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/gridpath/grid"
)

// Sentinel errors shared by all strategies.
var (
	// ErrNilGrid is returned if a nil grid pointer is passed.
	ErrNilGrid = errors.New("core: grid is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("core: invalid option supplied")
)

// State is the lifecycle phase of a search run.
type State int

const (
	// Ready: grid accepted, endpoints located, nothing popped yet.
	Ready State = iota
	// Stepping: at least one cell committed, frontier not yet exhausted.
	Stepping
	// Found: End reached; Result carries the path.
	Found
	// Exhausted: frontier emptied without reaching End.
	Exhausted
	// Cancelled: the cancellation source asked the run to stop.
	Cancelled
)

var stateNames = [...]string{"ready", "stepping", "found", "exhausted", "cancelled"}

// String returns the lower-case state name.
func (s State) String() string {
	if s >= 0 && int(s) < len(stateNames) {
		return stateNames[s]
	}
	return fmt.Sprintf("state(%d)", int(s))
}

// Terminal reports whether no further steps will change the run.
func (s State) Terminal() bool {
	return s == Found || s == Exhausted || s == Cancelled
}

// Result is the outcome of a run.
//
//   - PathFound is true only in state Found.
//   - Path lists Start→End inclusive; empty when no path was found.
//   - Visited lists positions in the order they were first committed.
type Result struct {
	State     State
	PathFound bool
	Path      []grid.Position
	Visited   []grid.Position
}

// PathLength returns the number of edges on Path, 0 without a path.
func (r Result) PathLength() int {
	if len(r.Path) == 0 {
		return 0
	}
	return len(r.Path) - 1
}

// StepObserver receives the visited order of a run. The slice is owned by
// the run and must not be modified or retained past the call.
type StepObserver interface {
	Observe(visited []grid.Position)
}

// ObserverFunc adapts a function to StepObserver.
type ObserverFunc func(visited []grid.Position)

// Observe calls f(visited).
func (f ObserverFunc) Observe(visited []grid.Position) { f(visited) }

// CancellationSource is polled once per step; returning true stops the run.
type CancellationSource interface {
	ShouldStop() bool
}

// StopFunc adapts a function to CancellationSource.
type StopFunc func() bool

// ShouldStop calls f().
func (f StopFunc) ShouldStop() bool { return f() }

// ContextSource reports a stop once ctx is done.
func ContextSource(ctx context.Context) CancellationSource {
	return StopFunc(func() bool {
		select {
		case <-ctx.Done():
			return true
		default:
			return false
		}
	})
}

// AnySource stops as soon as any non-nil source does.
func AnySource(sources ...CancellationSource) CancellationSource {
	return StopFunc(func() bool {
		for _, s := range sources {
			if s != nil && s.ShouldStop() {
				return true
			}
		}
		return false
	})
}

// Stepper is the step contract every strategy implements.
type Stepper interface {
	// Step performs one step and returns the resulting state.
	// Once terminal, Step is a no-op that returns the same state.
	Step() State
	// State returns the current state without stepping.
	State() State
	// Result returns a snapshot of the run; Path is set only once Found.
	Result() Result
}

// Run drives s until it reaches a terminal state and returns the result.
func Run(s Stepper) Result {
	for !s.Step().Terminal() {
	}
	return s.Result()
}
