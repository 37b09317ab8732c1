package grid

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// symbolOf maps a kind to its maze text character.
func symbolOf(k Kind) byte {
	switch k {
	case Wall, BorderWall:
		return '#'
	case Start:
		return 'O'
	case End:
		return 'X'
	default:
		return '.'
	}
}

// kindOf maps a maze text character to a kind.
func kindOf(ch byte) (Kind, bool) {
	switch ch {
	case ' ', '.':
		return Tile, true
	case '#':
		return Wall, true
	case 'O':
		return Start, true
	case 'X':
		return End, true
	}
	return 0, false
}

// Parse reads a maze in text form and frames it with a BorderWall ring.
// Every line is one row: 'X' is End, 'O' is Start, '#' is Wall, and a space
// or '.' is Tile. Rows shorter than the longest one are padded with Tile.
// Trailing empty lines are ignored. Parse does not check the endpoints; call
// Validate on the result.
func Parse(r io.Reader) (*Grid, error) {
	var lines []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		lines = append(lines, strings.TrimRight(sc.Text(), "\r"))
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("grid: read maze: %w", err)
	}
	for len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	width := 0
	for _, l := range lines {
		if len(l) > width {
			width = len(l)
		}
	}
	if len(lines) == 0 || width == 0 {
		return nil, ErrEmptyGrid
	}

	g := &Grid{rows: len(lines) + 2, cols: width + 2}
	g.cells = make([]Kind, g.rows*g.cols)
	for i := range g.cells {
		g.cells[i] = BorderWall
	}
	for r, l := range lines {
		for c := 0; c < width; c++ {
			k := Tile
			if c < len(l) {
				var ok bool
				if k, ok = kindOf(l[c]); !ok {
					return nil, fmt.Errorf("%w: %q at line %d column %d", ErrBadSymbol, l[c], r+1, c+1)
				}
			}
			g.cells[(r+1)*g.cols+c+1] = k
		}
	}
	return g, nil
}

// ParseString is Parse over a string.
func ParseString(s string) (*Grid, error) {
	return Parse(strings.NewReader(s))
}

// MustParse is ParseString that panics on error. Intended for tests and examples.
func MustParse(s string) *Grid {
	g, err := ParseString(s)
	if err != nil {
		panic(err)
	}
	return g
}
