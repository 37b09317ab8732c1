package dijkstra

import (
	"github.com/katalvlaran/gridpath/arena"
	"github.com/katalvlaran/gridpath/core"
	"github.com/katalvlaran/gridpath/frontier"
	"github.com/katalvlaran/gridpath/grid"
)

// Runner holds the state of one Dijkstra run.
type Runner struct {
	a    *arena.Arena
	end  int
	pq   *frontier.Priority[int]
	sess *core.Session
}

// New builds the arena for g and returns a Runner in state Ready with
// Start queued at distance 0.
func New(g *grid.Grid, opts ...core.Option) (*Runner, error) {
	start, end, err := core.Endpoints(g, "dijkstra")
	if err != nil {
		return nil, err
	}
	o, err := core.Apply(opts...)
	if err != nil {
		return nil, err
	}

	a := arena.New(g, start)
	r := &Runner{
		a:    a,
		end:  a.Index(end),
		sess: core.NewSession(o, g.Len()),
	}
	// key is read when pushing, so each entry keeps the distance it was
	// queued with even if the vertex improves later.
	r.pq = frontier.NewPriority(g.Len(), func(i int) int { return a.Vertex(i).Distance })
	r.pq.Push(a.Index(start))
	return r, nil
}

// Search runs Dijkstra to completion.
func Search(g *grid.Grid, opts ...core.Option) (core.Result, error) {
	r, err := New(g, opts...)
	if err != nil {
		return core.Result{}, err
	}
	return core.Run(r), nil
}

// Step pops until one vertex is settled or the run terminates.
func (r *Runner) Step() core.State {
	if r.sess.State().Terminal() {
		return r.sess.State()
	}
	for {
		u, ok := r.pq.Pop()
		if !ok {
			return r.sess.Finish(core.Exhausted, nil)
		}
		v := r.a.Vertex(u)
		if v.Visited {
			continue // stale entry
		}
		if u == r.end {
			return r.sess.Finish(core.Found, r.a.PathTo(u))
		}
		v.Visited = true
		if r.sess.Commit(v.Pos) {
			return core.Cancelled
		}
		r.a.Relax(u, r.pq.Push)
		return core.Stepping
	}
}

// State returns the current run state.
func (r *Runner) State() core.State { return r.sess.State() }

// Result returns a snapshot of the run.
func (r *Runner) Result() core.Result { return r.sess.Result() }

// Distance returns the tentative distance of p from Start, arena.Infinity
// if p has not been reached.
func (r *Runner) Distance(p grid.Position) int { return r.a.At(p).Distance }
