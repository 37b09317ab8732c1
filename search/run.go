package search

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"

	"github.com/katalvlaran/gridpath/core"
	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/observability"
)

// Run executes algo over g until a terminal state. The run is cancelled
// once ctx is done, in addition to any cancellation source passed through
// WithEngineOptions. Construction errors are returned; Exhausted and
// Cancelled are normal outcomes reported in the Result.
func Run(ctx context.Context, g *grid.Grid, algo Algorithm, opts ...Option) (core.Result, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.RunID == "" {
		o.RunID = uuid.New().String()
	}
	logger := observability.EnrichLogger(o.Logger, o.RunID, algo.String())

	ctx, span := o.Spans.StartSearchSpan(ctx, algo.String(), o.RunID)

	stepper, err := newCancellable(ctx, g, algo, o.Engine)
	if err != nil {
		observability.LogRunError(logger, o.RunID, err)
		o.Spans.EndSearchSpan(span, observability.Outcome{}, err)
		return core.Result{}, err
	}

	observability.LogRunStart(logger, o.RunID, g.Rows(), g.Cols())
	o.Spans.AddSpanEvent(ctx, "board.ready",
		attribute.Int("board.rows", g.Rows()),
		attribute.Int("board.cols", g.Cols()))
	start := time.Now()
	res := core.Run(stepper)
	elapsed := time.Since(start)
	durationMs := float64(elapsed.Microseconds()) / 1000

	state := res.State.String()
	o.Metrics.RecordRun(ctx, algo.String(), state, elapsed)
	o.Metrics.RecordVisited(ctx, algo.String(), len(res.Visited))
	if res.PathFound {
		o.Metrics.RecordPath(ctx, algo.String(), res.PathLength())
	}

	if res.State == core.Cancelled {
		observability.LogRunCancelled(logger, o.RunID, durationMs, len(res.Visited))
	} else {
		observability.LogRunComplete(logger, o.RunID, state, durationMs, len(res.Visited), res.PathLength())
	}
	o.Spans.EndSearchSpan(span, observability.Outcome{
		State:      state,
		Visited:    len(res.Visited),
		PathLength: res.PathLength(),
	}, nil)
	return res, nil
}

// newCancellable builds the stepper with ctx merged into whatever
// cancellation source engine already carries.
func newCancellable(ctx context.Context, g *grid.Grid, algo Algorithm, engine []core.Option) (core.Stepper, error) {
	eo, err := core.Apply(engine...)
	if err != nil {
		return nil, err
	}
	merged := append(append([]core.Option(nil), engine...),
		core.WithCancellation(core.AnySource(core.ContextSource(ctx), eo.Cancel)))
	return New(g, algo, merged...)
}
