package grid

import "fmt"

// Builder edits a bordered board before it is frozen into a Grid.
// It enforces the interactive editing rules of the board editor:
//
//   - BorderWall cells are never edited.
//   - Start and End are placed only on a Tile, at most once each.
//   - Tile and Wall never overwrite Start or End.
type Builder struct {
	rows, cols int
	cells      []Kind
	hasStart   bool
	hasEnd     bool
}

// NewBuilder returns a Builder whose interior is height×width Tiles framed by
// a one-cell BorderWall ring, so the board is (height+2)×(width+2).
func NewBuilder(height, width int) (*Builder, error) {
	if height < 1 || width < 1 {
		return nil, fmt.Errorf("%w: interior %dx%d", ErrEmptyGrid, height, width)
	}
	b := &Builder{rows: height + 2, cols: width + 2}
	b.cells = make([]Kind, b.rows*b.cols)
	for r := 0; r < b.rows; r++ {
		for c := 0; c < b.cols; c++ {
			if r == 0 || c == 0 || r == b.rows-1 || c == b.cols-1 {
				b.cells[r*b.cols+c] = BorderWall
			}
		}
	}
	return b, nil
}

// Rows returns the board height, border included.
func (b *Builder) Rows() int { return b.rows }

// Cols returns the board width, border included.
func (b *Builder) Cols() int { return b.cols }

// Set writes k at p if the editing rules allow it and reports whether the
// board changed.
func (b *Builder) Set(p Position, k Kind) bool {
	if p.Row < 0 || p.Row >= b.rows || p.Col < 0 || p.Col >= b.cols {
		return false
	}
	i := p.Row*b.cols + p.Col
	cur := b.cells[i]
	if cur == BorderWall {
		return false
	}
	switch k {
	case Start:
		if b.hasStart || cur != Tile {
			return false
		}
		b.hasStart = true
	case End:
		if b.hasEnd || cur != Tile {
			return false
		}
		b.hasEnd = true
	case Tile, Wall:
		if cur == Start || cur == End {
			return false
		}
	default:
		return false
	}
	b.cells[i] = k
	return true
}

// Ready reports whether both Start and End have been placed.
func (b *Builder) Ready() bool { return b.hasStart && b.hasEnd }

// Build freezes the board and validates it.
func (b *Builder) Build() (*Grid, error) {
	g := &Grid{rows: b.rows, cols: b.cols, cells: append([]Kind(nil), b.cells...)}
	if err := g.Validate(); err != nil {
		return nil, err
	}
	return g, nil
}
