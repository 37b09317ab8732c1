// Package search selects a strategy by name and drives instrumented runs.
//
// New maps an Algorithm to its strategy constructor with a tagged switch and
// returns the core.Stepper, for hosts that pace steps themselves. Run is the
// free-running variant: it adds a run ID, ties cancellation to a
// context.Context, and reports the outcome through slog, OpenTelemetry
// metrics and a trace span (package observability). All instrumentation is
// off unless configured.
//
//	res, err := search.Run(ctx, g, search.AStar,
//		search.WithLogger(logger),
//		search.WithMetrics(observability.NewMetricsRecorder()),
//		search.WithEngineOptions(core.WithObserver(draw)),
//	)
package search
