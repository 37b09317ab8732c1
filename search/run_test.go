package search_test

import (
	"bytes"
	"context"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"

	"github.com/katalvlaran/gridpath/core"
	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/observability"
	"github.com/katalvlaran/gridpath/search"
)

// fakeMetrics captures every recorder call.
type fakeMetrics struct {
	mu      sync.Mutex
	runs    []string
	visited []int
	paths   []int
}

func (f *fakeMetrics) RecordRun(_ context.Context, algorithm, state string, _ time.Duration) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.runs = append(f.runs, algorithm+"/"+state)
}

func (f *fakeMetrics) RecordVisited(_ context.Context, _ string, visited int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.visited = append(f.visited, visited)
}

func (f *fakeMetrics) RecordPath(_ context.Context, _ string, length int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.paths = append(f.paths, length)
}

// fakeSpans records started and ended spans.
type fakeSpans struct {
	started  []string
	outcomes []observability.Outcome
	errs     []error
}

func (f *fakeSpans) StartSearchSpan(ctx context.Context, algorithm, runID string) (context.Context, trace.Span) {
	f.started = append(f.started, algorithm+"/"+runID)
	return ctx, noop.Span{}
}

func (f *fakeSpans) EndSearchSpan(_ trace.Span, outcome observability.Outcome, err error) {
	f.outcomes = append(f.outcomes, outcome)
	f.errs = append(f.errs, err)
}

func (f *fakeSpans) AddSpanEvent(context.Context, string, ...attribute.KeyValue) {}

type RunSuite struct {
	suite.Suite
	g       *grid.Grid
	metrics *fakeMetrics
	spans   *fakeSpans
	logs    *bytes.Buffer
	logger  *slog.Logger
}

func (s *RunSuite) SetupTest() {
	s.g = grid.MustParse("O..\n.#.\n..X")
	s.metrics = &fakeMetrics{}
	s.spans = &fakeSpans{}
	s.logs = &bytes.Buffer{}
	s.logger = slog.New(slog.NewTextHandler(s.logs, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func (s *RunSuite) run(ctx context.Context, algo search.Algorithm, extra ...search.Option) (core.Result, error) {
	opts := append([]search.Option{
		search.WithLogger(s.logger),
		search.WithMetrics(s.metrics),
		search.WithSpans(s.spans),
	}, extra...)
	return search.Run(ctx, s.g, algo, opts...)
}

func (s *RunSuite) TestFoundIsInstrumented() {
	res, err := s.run(context.Background(), search.AStar, search.WithRunID("run-7"))
	s.Require().NoError(err)
	s.Require().Equal(core.Found, res.State)

	s.Equal([]string{"a_star/found"}, s.metrics.runs)
	s.Equal([]int{len(res.Visited)}, s.metrics.visited)
	s.Equal([]int{4}, s.metrics.paths)

	s.Equal([]string{"a_star/run-7"}, s.spans.started)
	s.Require().Len(s.spans.outcomes, 1)
	s.Equal(observability.Outcome{State: "found", Visited: len(res.Visited), PathLength: 4}, s.spans.outcomes[0])
	s.NoError(s.spans.errs[0])

	out := s.logs.String()
	s.Contains(out, "search run starting")
	s.Contains(out, "search run completed")
	s.Contains(out, "run_id=run-7")
	s.Contains(out, "algorithm=a_star")
}

func (s *RunSuite) TestGeneratedRunID() {
	_, err := s.run(context.Background(), search.BreadthFirst)
	s.Require().NoError(err)
	s.Require().Len(s.spans.started, 1)
	// breadth_first/ plus a 36-character UUID
	s.Len(s.spans.started[0], len("breadth_first/")+36)
}

func (s *RunSuite) TestContextCancel() {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	res, err := s.run(ctx, search.Dijkstra)
	s.Require().NoError(err)
	s.Equal(core.Cancelled, res.State)
	s.Len(res.Visited, 1, "the first commit is recorded before the poll")
	s.Empty(res.Path)
	s.Empty(s.metrics.paths)
	s.Equal([]string{"dijkstra/cancelled"}, s.metrics.runs)
	s.Contains(s.logs.String(), "search run cancelled")
}

func (s *RunSuite) TestEngineCancellationKept() {
	calls := 0
	res, err := s.run(context.Background(), search.BreadthFirst,
		search.WithEngineOptions(core.WithCancellation(core.StopFunc(func() bool {
			calls++
			return calls == 2
		}))))
	s.Require().NoError(err)
	s.Equal(core.Cancelled, res.State)
	s.Len(res.Visited, 2)
}

func (s *RunSuite) TestObserverForwarded() {
	var last []grid.Position
	res, err := s.run(context.Background(), search.DepthFirst,
		search.WithEngineOptions(
			core.WithShowSteps(false),
			core.WithObserver(core.ObserverFunc(func(v []grid.Position) {
				last = append([]grid.Position(nil), v...)
			})),
		))
	s.Require().NoError(err)
	s.Equal(res.Visited, last)
}

func (s *RunSuite) TestConstructionError() {
	_, err := search.Run(context.Background(), grid.MustParse("..."), search.BreadthFirst,
		search.WithLogger(s.logger), search.WithSpans(s.spans), search.WithMetrics(s.metrics))
	s.Require().ErrorIs(err, grid.ErrNotFound)
	s.Require().Len(s.spans.errs, 1)
	s.ErrorIs(s.spans.errs[0], grid.ErrNotFound)
	s.Empty(s.metrics.runs)
	s.Contains(s.logs.String(), "search run failed")

	_, err = search.Run(context.Background(), s.g, search.BreadthFirst,
		search.WithEngineOptions(core.WithConnectivity(grid.Connectivity(3))))
	s.ErrorIs(err, core.ErrOptionViolation)
}

func TestRunSuite(t *testing.T) {
	suite.Run(t, new(RunSuite))
}

// TestRun_Defaults runs without any instrumentation configured.
func TestRun_Defaults(t *testing.T) {
	res, err := search.Run(context.Background(), grid.MustParse("OX"), search.DepthFirst)
	require.NoError(t, err)
	assert.Equal(t, []grid.Position{{Row: 1, Col: 1}, {Row: 1, Col: 2}}, res.Path)
}
