package grid

import (
	"fmt"
	"strings"
)

// New constructs a Grid from a non-empty, rectangular 2D slice.
// It deep-copies the input so later edits by the caller cannot leak into a run.
// Returns ErrEmptyGrid if cells has no rows or no columns,
// ErrNonRectangular if any row length differs.
// New does not check the border ring or the endpoints; see Validate.
func New(cells [][]Kind) (*Grid, error) {
	if len(cells) == 0 || len(cells[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(cells), len(cells[0])
	for _, row := range cells {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}
	flat := make([]Kind, 0, h*w)
	for _, row := range cells {
		flat = append(flat, row...)
	}

	return &Grid{rows: h, cols: w, cells: flat}, nil
}

// Rows returns the number of rows, border included.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of columns, border included.
func (g *Grid) Cols() int { return g.cols }

// Len returns Rows()*Cols().
func (g *Grid) Len() int { return len(g.cells) }

// InBounds reports whether p lies within the grid boundaries.
func (g *Grid) InBounds(p Position) bool {
	return p.Row >= 0 && p.Row < g.rows && p.Col >= 0 && p.Col < g.cols
}

// Index maps p to its row-major index: Row*Cols + Col.
// p must be in bounds.
func (g *Grid) Index(p Position) int {
	return p.Row*g.cols + p.Col
}

// Position converts a row-major index back to a Position.
func (g *Grid) Position(idx int) Position {
	return Position{Row: idx / g.cols, Col: idx % g.cols}
}

// CellAt returns the kind stored at p, or ErrOutOfBounds.
func (g *Grid) CellAt(p Position) (Kind, error) {
	if !g.InBounds(p) {
		return 0, fmt.Errorf("%w: %v in %dx%d", ErrOutOfBounds, p, g.rows, g.cols)
	}
	return g.cells[g.Index(p)], nil
}

// Passable reports whether p is in bounds and neither Wall nor BorderWall.
func (g *Grid) Passable(p Position) bool {
	return g.InBounds(p) && g.cells[g.Index(p)].Passable()
}

// Locate returns the position of the cell of kind k, scanning row-major.
// If k appears more than once the first occurrence wins; callers must
// guarantee uniqueness of Start and End beforehand.
func (g *Grid) Locate(k Kind) (Position, error) {
	for i, c := range g.cells {
		if c == k {
			return g.Position(i), nil
		}
	}
	return Position{}, fmt.Errorf("%w: %s", ErrNotFound, k)
}

// Count returns how many cells hold kind k.
func (g *Grid) Count(k Kind) int {
	n := 0
	for _, c := range g.cells {
		if c == k {
			n++
		}
	}
	return n
}

// Cells returns a fresh 2D copy of the board.
func (g *Grid) Cells() [][]Kind {
	out := make([][]Kind, g.rows)
	for r := range out {
		out[r] = make([]Kind, g.cols)
		copy(out[r], g.cells[r*g.cols:(r+1)*g.cols])
	}
	return out
}

// Validate checks the invariants a board producer must establish before a
// search: BorderWall ring, exactly one Start and exactly one End.
// Search strategies assume these and never call Validate themselves.
func (g *Grid) Validate() error {
	for r := 0; r < g.rows; r++ {
		for c := 0; c < g.cols; c++ {
			onRing := r == 0 || c == 0 || r == g.rows-1 || c == g.cols-1
			k := g.cells[r*g.cols+c]
			if onRing && k != BorderWall {
				return fmt.Errorf("%w: %v is %s", ErrBorder, Position{r, c}, k)
			}
			if !onRing && k == BorderWall {
				return fmt.Errorf("%w: interior %v is border", ErrBorder, Position{r, c})
			}
		}
	}
	if s, e := g.Count(Start), g.Count(End); s != 1 || e != 1 {
		return fmt.Errorf("%w: found %d start, %d end", ErrEndpoints, s, e)
	}
	return nil
}

// String renders the board in the maze text format, border included.
func (g *Grid) String() string {
	var sb strings.Builder
	sb.Grow((g.cols + 1) * g.rows)
	for r := 0; r < g.rows; r++ {
		for c := 0; c < g.cols; c++ {
			sb.WriteByte(symbolOf(g.cells[r*g.cols+c]))
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
