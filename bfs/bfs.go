package bfs

import (
	"github.com/katalvlaran/gridpath/core"
	"github.com/katalvlaran/gridpath/frontier"
	"github.com/katalvlaran/gridpath/grid"
)

// entry pairs a position with the path that reached it. Each entry owns
// its path slice.
type entry struct {
	pos  grid.Position
	path []grid.Position
}

// Walker holds the mutable state of one breadth-first run.
type Walker struct {
	g       *grid.Grid
	conn    grid.Connectivity
	end     grid.Position
	queue   *frontier.Queue[entry]
	visited []bool
	sess    *core.Session
}

// New validates the inputs and seeds a Walker in state Ready.
// Returns core.ErrNilGrid, a wrapped grid.ErrNotFound when Start or End is
// missing, or core.ErrOptionViolation for bad options.
func New(g *grid.Grid, opts ...core.Option) (*Walker, error) {
	start, end, err := core.Endpoints(g, "bfs")
	if err != nil {
		return nil, err
	}
	o, err := core.Apply(opts...)
	if err != nil {
		return nil, err
	}

	w := &Walker{
		g:       g,
		conn:    o.Conn,
		end:     end,
		queue:   frontier.NewQueue[entry](g.Len()),
		visited: make([]bool, g.Len()),
		sess:    core.NewSession(o, g.Len()),
	}
	w.queue.Push(entry{pos: start, path: []grid.Position{start}})
	return w, nil
}

// Search runs breadth-first search to completion.
func Search(g *grid.Grid, opts ...core.Option) (core.Result, error) {
	w, err := New(g, opts...)
	if err != nil {
		return core.Result{}, err
	}
	return core.Run(w), nil
}

// Step pops entries until one is committed, End is reached, or the queue
// is empty.
func (w *Walker) Step() core.State {
	if w.sess.State().Terminal() {
		return w.sess.State()
	}
	for {
		e, ok := w.queue.Pop()
		if !ok {
			return w.sess.Finish(core.Exhausted, nil)
		}
		if e.pos == w.end {
			return w.sess.Finish(core.Found, e.path)
		}
		i := w.g.Index(e.pos)
		if w.visited[i] {
			continue // duplicate, dedup at pop time
		}
		w.visited[i] = true
		if w.sess.Commit(e.pos) {
			return core.Cancelled
		}
		w.expand(e)
		return core.Stepping
	}
}

// expand pushes (nb, path+[nb]) for each neighbor in policy order.
func (w *Walker) expand(e entry) {
	for _, nb := range w.g.Neighbors(e.pos, w.conn) {
		w.queue.Push(entry{pos: nb, path: extend(e.path, nb)})
	}
}

// State returns the current run state.
func (w *Walker) State() core.State { return w.sess.State() }

// Result returns a snapshot of the run.
func (w *Walker) Result() core.Result { return w.sess.Result() }

// Pending returns the number of entries in the frontier, duplicates included.
func (w *Walker) Pending() int { return w.queue.Len() }

// extend returns a fresh copy of path with p appended.
func extend(path []grid.Position, p grid.Position) []grid.Position {
	out := make([]grid.Position, len(path)+1)
	copy(out, path)
	out[len(path)] = p
	return out
}
