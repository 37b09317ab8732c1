// Package observability provides structured logging, metrics and tracing
// for search runs.
//
// Features:
//   - Structured logging via log/slog helpers that accept a nil logger
//   - Metrics via OpenTelemetry
//   - Tracing via OpenTelemetry
//
// All features are opt-in and have no-op implementations when disabled.
// The engine packages never log or record; package search does, around a
// whole run.
package observability

import (
	"log/slog"
	"time"
)

// EnrichLogger adds run context to a logger.
// Returns a new logger with run_id and algorithm fields.
//
// Example:
//
//	enriched := EnrichLogger(logger, "run-123", "a_star")
//	enriched.Info("board ready") // includes run_id, algorithm
func EnrichLogger(logger *slog.Logger, runID, algorithm string) *slog.Logger {
	if logger == nil {
		return nil
	}
	return logger.With(
		slog.String("run_id", runID),
		slog.String("algorithm", algorithm),
	)
}

// LogRunStart logs the start of a search run.
func LogRunStart(logger *slog.Logger, runID string, rows, cols int) {
	if logger == nil {
		return
	}
	logger.Info("search run starting",
		slog.String("run_id", runID),
		slog.Int("rows", rows),
		slog.Int("cols", cols),
	)
}

// LogRunComplete logs a run that ended Found or Exhausted.
func LogRunComplete(logger *slog.Logger, runID, state string, durationMs float64, visited, pathLength int) {
	if logger == nil {
		return
	}
	logger.Info("search run completed",
		slog.String("run_id", runID),
		slog.String("state", state),
		slog.Float64("duration_ms", durationMs),
		slog.Int("visited", visited),
		slog.Int("path_length", pathLength),
	)
}

// LogRunCancelled logs a run stopped by its cancellation source.
func LogRunCancelled(logger *slog.Logger, runID string, durationMs float64, visited int) {
	if logger == nil {
		return
	}
	logger.Warn("search run cancelled",
		slog.String("run_id", runID),
		slog.Float64("duration_ms", durationMs),
		slog.Int("visited", visited),
	)
}

// LogRunError logs a run that could not start.
func LogRunError(logger *slog.Logger, runID string, err error) {
	if logger == nil {
		return
	}
	logger.Error("search run failed",
		slog.String("run_id", runID),
		slog.String("error", err.Error()),
	)
}

// LogBoardLoaded logs where a board came from and its full size.
func LogBoardLoaded(logger *slog.Logger, source string, rows, cols int) {
	if logger == nil {
		return
	}
	logger.Debug("board loaded",
		slog.String("source", source),
		slog.Int("rows", rows),
		slog.Int("cols", cols),
	)
}

// TimedOperation measures the duration of an operation.
// Returns a function that, when called, returns the elapsed time in milliseconds.
//
// Example:
//
//	done := TimedOperation()
//	// ... do work ...
//	durationMs := done()
func TimedOperation() func() float64 {
	start := time.Now()
	return func() float64 {
		return float64(time.Since(start).Microseconds()) / 1000
	}
}
