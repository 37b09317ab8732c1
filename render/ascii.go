package render

import (
	"strings"

	"github.com/katalvlaran/gridpath/grid"
)

var asciiMarks = [...]byte{
	MarkTile:    '.',
	MarkWall:    '#',
	MarkEnd:     'X',
	MarkVisited: '+',
	MarkPath:    '*',
	MarkStart:   'O',
}

// ASCII renders the board with the trace overlaid, one line per row, each
// line terminated by '\n'.
func ASCII(g *grid.Grid, path, visited []grid.Position) string {
	f := NewFrame(g, path, visited)
	var b strings.Builder
	b.Grow(g.Rows() * (g.Cols() + 1))
	for r := 0; r < g.Rows(); r++ {
		for c := 0; c < g.Cols(); c++ {
			b.WriteByte(asciiMarks[f.Mark(grid.Position{Row: r, Col: c})])
		}
		b.WriteByte('\n')
	}
	return b.String()
}
