package render

import "github.com/katalvlaran/gridpath/grid"

// Mark is what a cell shows once the trace is overlaid.
type Mark int

const (
	MarkTile Mark = iota
	MarkWall
	MarkEnd
	MarkVisited
	MarkPath
	MarkStart
)

// Frame overlays a trace on a board.
type Frame struct {
	g       *grid.Grid
	path    map[grid.Position]bool
	visited map[grid.Position]bool
}

// NewFrame builds the overlay for path and visited; either may be nil.
func NewFrame(g *grid.Grid, path, visited []grid.Position) *Frame {
	f := &Frame{
		g:       g,
		path:    make(map[grid.Position]bool, len(path)),
		visited: make(map[grid.Position]bool, len(visited)),
	}
	for _, p := range path {
		f.path[p] = true
	}
	for _, p := range visited {
		f.visited[p] = true
	}
	return f
}

// Mark returns the mark of p.
func (f *Frame) Mark(p grid.Position) Mark {
	k, _ := f.g.CellAt(p)
	switch {
	case k == grid.Start:
		return MarkStart
	case f.path[p]:
		return MarkPath
	case f.visited[p]:
		return MarkVisited
	case k == grid.Wall || k == grid.BorderWall:
		return MarkWall
	case k == grid.End:
		return MarkEnd
	default:
		return MarkTile
	}
}
