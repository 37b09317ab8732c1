package core_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/gridpath/core"
	"github.com/katalvlaran/gridpath/grid"
)

// SessionSuite exercises the observe/cancel glue in isolation.
type SessionSuite struct {
	suite.Suite
	seen [][]grid.Position
	obs  core.StepObserver
}

func (s *SessionSuite) SetupTest() {
	s.seen = nil
	s.obs = core.ObserverFunc(func(v []grid.Position) {
		s.seen = append(s.seen, append([]grid.Position(nil), v...))
	})
}

func (s *SessionSuite) newSession(opts ...core.Option) *core.Session {
	o, err := core.Apply(append([]core.Option{core.WithObserver(s.obs)}, opts...)...)
	require.NoError(s.T(), err)
	return core.NewSession(o, 4)
}

// TestShowStepsObservesEveryCommit checks per-step observation and the Found result.
func (s *SessionSuite) TestShowStepsObservesEveryCommit() {
	sess := s.newSession()
	s.Equal(core.Ready, sess.State())

	a, b := grid.Position{Row: 1, Col: 1}, grid.Position{Row: 1, Col: 2}
	s.False(sess.Commit(a))
	s.Equal(core.Stepping, sess.State())
	s.False(sess.Commit(b))
	s.Equal(core.Found, sess.Finish(core.Found, []grid.Position{a, b}))

	s.Equal([][]grid.Position{{a}, {a, b}}, s.seen)
	res := sess.Result()
	s.True(res.PathFound)
	s.Equal(1, res.PathLength())
	s.Equal([]grid.Position{a, b}, res.Visited)
}

// TestHiddenStepsObserveOnce checks the single end-of-run observation.
func (s *SessionSuite) TestHiddenStepsObserveOnce() {
	sess := s.newSession(core.WithShowSteps(false))
	a := grid.Position{Row: 2, Col: 2}
	sess.Commit(a)
	s.Empty(s.seen)
	sess.Finish(core.Exhausted, nil)
	sess.Finish(core.Found, []grid.Position{a}) // no-op once terminal

	s.Equal([][]grid.Position{{a}}, s.seen)
	res := sess.Result()
	s.Equal(core.Exhausted, res.State)
	s.False(res.PathFound)
	s.Empty(res.Path)
	s.NotNil(res.Path)
}

// TestCancellationAfterObserve verifies the poll happens after the observer runs.
func (s *SessionSuite) TestCancellationAfterObserve() {
	polls := 0
	sess := s.newSession(core.WithCancellation(core.StopFunc(func() bool {
		polls++
		return polls == 2
	})))
	s.False(sess.Commit(grid.Position{Row: 1, Col: 1}))
	s.True(sess.Commit(grid.Position{Row: 1, Col: 2}))
	s.Equal(core.Cancelled, sess.State())
	s.Len(s.seen, 2)
	s.Len(sess.Result().Visited, 2)
}

// TestVisitedIsClipped ensures observers cannot clobber the run's storage.
func (s *SessionSuite) TestVisitedIsClipped() {
	sess := s.newSession()
	sess.Commit(grid.Position{Row: 1, Col: 1})
	v := sess.Visited()
	_ = append(v, grid.Position{Row: 9, Col: 9})
	sess.Commit(grid.Position{Row: 1, Col: 2})
	s.Equal(grid.Position{Row: 1, Col: 2}, sess.Visited()[1])
}

func TestSessionSuite(t *testing.T) {
	suite.Run(t, new(SessionSuite))
}

func TestApply_Options(t *testing.T) {
	o, err := core.Apply()
	require.NoError(t, err)
	assert.True(t, o.ShowSteps)
	assert.Equal(t, grid.Conn4, o.Conn)
	assert.False(t, o.Cancel.ShouldStop())

	o, err = core.Apply(core.WithDiagonal(true), core.WithObserver(nil), core.WithCancellation(nil))
	require.NoError(t, err)
	assert.Equal(t, grid.Conn8, o.Conn)
	assert.NotNil(t, o.Observer)
	assert.NotNil(t, o.Cancel)

	_, err = core.Apply(core.WithConnectivity(grid.Connectivity(7)))
	assert.ErrorIs(t, err, core.ErrOptionViolation)

	o, err = core.Apply(core.WithConnectivity(grid.Conn8), core.WithDiagonal(false))
	require.NoError(t, err)
	assert.Equal(t, grid.Conn4, o.Conn)
}

func TestCancellationSources(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	src := core.ContextSource(ctx)
	assert.False(t, src.ShouldStop())
	cancel()
	assert.True(t, src.ShouldStop())

	never := core.StopFunc(func() bool { return false })
	assert.False(t, core.AnySource(never, nil).ShouldStop())
	assert.True(t, core.AnySource(never, src).ShouldStop())
}

func TestEndpoints(t *testing.T) {
	_, _, err := core.Endpoints(nil, "bfs")
	assert.ErrorIs(t, err, core.ErrNilGrid)

	_, _, err = core.Endpoints(grid.MustParse("O.."), "bfs")
	require.ErrorIs(t, err, grid.ErrNotFound)
	assert.Equal(t, "bfs: locate end: grid: cell not found: end", err.Error())

	start, end, err := core.Endpoints(grid.MustParse("O.X"), "bfs")
	require.NoError(t, err)
	assert.Equal(t, grid.Position{Row: 1, Col: 1}, start)
	assert.Equal(t, grid.Position{Row: 1, Col: 3}, end)
}

func TestStateStrings(t *testing.T) {
	assert.Equal(t, "cancelled", core.Cancelled.String())
	assert.Equal(t, "state(42)", core.State(42).String())
	assert.False(t, core.Stepping.Terminal())
	assert.True(t, core.Exhausted.Terminal())
	assert.Zero(t, core.Result{}.PathLength())
}
