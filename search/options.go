package search

import (
	"log/slog"

	"github.com/katalvlaran/gridpath/core"
	"github.com/katalvlaran/gridpath/observability"
)

// Options configures Run. The zero value is not ready to use; start from
// DefaultOptions.
type Options struct {
	Engine  []core.Option
	Logger  *slog.Logger
	Metrics observability.MetricsRecorder
	Spans   observability.SpanManager
	RunID   string
}

// Option is a functional option for Run.
type Option func(*Options)

// DefaultOptions returns no logging, no-op metrics and spans, and a
// generated run ID.
func DefaultOptions() Options {
	return Options{
		Metrics: observability.NoopMetrics{},
		Spans:   observability.NoopSpanManager{},
	}
}

// WithEngineOptions forwards options to the strategy constructor.
func WithEngineOptions(opts ...core.Option) Option {
	return func(o *Options) { o.Engine = append(o.Engine, opts...) }
}

// WithLogger sets the logger; nil disables logging.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) { o.Logger = l }
}

// WithMetrics sets the metrics recorder. Nil is ignored.
func WithMetrics(m observability.MetricsRecorder) Option {
	return func(o *Options) {
		if m != nil {
			o.Metrics = m
		}
	}
}

// WithSpans sets the span manager. Nil is ignored.
func WithSpans(s observability.SpanManager) Option {
	return func(o *Options) {
		if s != nil {
			o.Spans = s
		}
	}
}

// WithRunID fixes the run ID instead of generating one.
func WithRunID(id string) Option {
	return func(o *Options) { o.RunID = id }
}
