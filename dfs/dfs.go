package dfs

import (
	"github.com/katalvlaran/gridpath/core"
	"github.com/katalvlaran/gridpath/frontier"
	"github.com/katalvlaran/gridpath/grid"
)

// entry pairs a position with the path that reached it.
type entry struct {
	pos  grid.Position
	path []grid.Position
}

// Walker encapsulates the state of one depth-first run.
type Walker struct {
	g       *grid.Grid
	conn    grid.Connectivity
	end     grid.Position
	stack   *frontier.Stack[entry]
	visited []bool
	sess    *core.Session
}

// New validates g and opts and returns a Walker in state Ready with
// (Start, [Start]) on the stack.
func New(g *grid.Grid, opts ...core.Option) (*Walker, error) {
	start, end, err := core.Endpoints(g, "dfs")
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
		stack:   frontier.NewStack[entry](g.Len()),
		visited: make([]bool, g.Len()),
		sess:    core.NewSession(o, g.Len()),
	}
	w.stack.Push(entry{pos: start, path: []grid.Position{start}})
	return w, nil
}

// Search runs depth-first search to completion.
func Search(g *grid.Grid, opts ...core.Option) (core.Result, error) {
	w, err := New(g, opts...)
	if err != nil {
		return core.Result{}, err
	}
	return core.Run(w), nil
}

// Step pops until one cell is committed or the run terminates.
func (w *Walker) Step() core.State {
	if w.sess.State().Terminal() {
		return w.sess.State()
	}
	for {
		e, ok := w.stack.Pop()
		if !ok {
			return w.sess.Finish(core.Exhausted, nil)
		}
		if e.pos == w.end {
			return w.sess.Finish(core.Found, e.path)
		}
		i := w.g.Index(e.pos)
		if w.visited[i] {
			continue
		}
		w.visited[i] = true
		if w.sess.Commit(e.pos) {
			return core.Cancelled
		}
		w.expand(e)
		return core.Stepping
	}
}

// expand pushes neighbors in reverse policy order so the first direction
// is popped next.
func (w *Walker) expand(e entry) {
	nbs := w.g.Neighbors(e.pos, w.conn)
	for k := len(nbs) - 1; k >= 0; k-- {
		nb := nbs[k]
		path := make([]grid.Position, len(e.path)+1)
		copy(path, e.path)
		path[len(e.path)] = nb
		w.stack.Push(entry{pos: nb, path: path})
	}
}

// State returns the current run state.
func (w *Walker) State() core.State { return w.sess.State() }

// Result returns a snapshot of the run.
func (w *Walker) Result() core.Result { return w.sess.Result() }

// Pending returns the stack depth, duplicates included.
func (w *Walker) Pending() int { return w.stack.Len() }
