// Package core holds the contract shared by every gridpath search strategy:
// the run state machine, the result shape, the observer and cancellation
// hooks, engine options, and the Session glue that strategies embed.
//
// State machine:
//
//	Ready ─► Stepping ─┬─► Found      (path + visited order)
//	                   ├─► Exhausted  (no path + full reachable component)
//	                   └─► Cancelled  (no path + partial visited order)
//
// One step is: pop → dedup → visit/record → observe → cancellation poll →
// expand. Strategies expose Step so the host can drive the loop itself and
// pace an animation between steps; Run is the free-running loop.
//
// Observation:
//
//   - ShowSteps on (default): the StepObserver sees the visited order after
//     every committed cell.
//   - ShowSteps off: the StepObserver is invoked once, when the run reaches
//     a terminal state, with the full visited order.
//
// Cancellation is cooperative: CancellationSource.ShouldStop is polled once
// per step, and a true answer ends the run in Cancelled immediately. No
// cleanup is needed since the grid is never mutated by a search.
//
// Errors:
//
//   - ErrNilGrid:         a nil *grid.Grid was passed to a strategy.
//   - ErrOptionViolation: an Option received an invalid value.
//
// A missing Start or End surfaces as grid.ErrNotFound from the strategy's
// constructor, before any step runs. Neither a missing path nor a
// cancellation is an error.
package core
