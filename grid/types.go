package grid

import (
	"errors"
	"fmt"
)

// Sentinel errors for grid operations.
var (
	// ErrEmptyGrid indicates the input 2D slice is empty.
	ErrEmptyGrid = errors.New("grid: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("grid: all rows must have the same length")
	// ErrOutOfBounds indicates a position outside the grid.
	ErrOutOfBounds = errors.New("grid: position out of bounds")
	// ErrNotFound indicates no cell of the requested kind exists.
	ErrNotFound = errors.New("grid: cell not found")
	// ErrBorder indicates the outer ring is not entirely BorderWall.
	ErrBorder = errors.New("grid: outer ring must be border wall")
	// ErrEndpoints indicates the grid does not hold exactly one Start and one End.
	ErrEndpoints = errors.New("grid: exactly one start and one end required")
	// ErrBadSymbol indicates an unknown character in maze text.
	ErrBadSymbol = errors.New("grid: unknown maze symbol")
)

// Kind is the content of a single cell.
type Kind uint8

const (
	// Tile is an empty, passable cell.
	Tile Kind = iota
	// Wall is an interior obstacle.
	Wall
	// Start is the unique search origin.
	Start
	// End is the unique search goal.
	End
	// BorderWall frames the playable area.
	BorderWall
)

var kindNames = [...]string{"tile", "wall", "start", "end", "border"}

// String returns the lower-case name of k.
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("kind(%d)", uint8(k))
}

// Passable reports whether a search may step onto a cell of kind k.
func (k Kind) Passable() bool {
	return k != Wall && k != BorderWall
}

// Position addresses a cell by row and column, origin at the top-left.
type Position struct {
	Row, Col int
}

// String formats p as "(row,col)".
func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

// Manhattan returns |Δrow| + |Δcol| between p and q.
func (p Position) Manhattan(q Position) int {
	return abs(p.Row-q.Row) + abs(p.Col-q.Col)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// Connectivity selects neighbor connectivity: orthogonal (Conn4) or including diagonals (Conn8).
type Connectivity int

const (
	// Conn4 uses 4-directional connectivity: N, E, S, W.
	Conn4 Connectivity = iota
	// Conn8 adds the diagonals after the cardinals: NE, SE, SW, NW.
	Conn8
)

// String returns "conn4" or "conn8".
func (c Connectivity) String() string {
	if c == Conn8 {
		return "conn8"
	}
	return "conn4"
}

// Grid is an immutable rectangular board stored row-major.
type Grid struct {
	rows, cols int
	cells      []Kind
}
