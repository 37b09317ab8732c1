package grid

import (
	"fmt"
	"math/rand"
)

// WallDensity is the share of the whole board, border included, that
// Randomize turns into interior walls.
const WallDensity = 0.1

// Randomize builds a bordered board with a height×width interior, turns
// int(WallDensity × board area) distinct interior cells into Wall, then puts
// Start and End on two distinct interior cells (overwriting a wall if one
// was placed there). The result is deterministic for a given rng state.
// The interior must hold at least two cells.
func Randomize(height, width int, rng *rand.Rand) (*Grid, error) {
	if height < 1 || width < 1 || height*width < 2 {
		return nil, fmt.Errorf("%w: interior %dx%d too small", ErrEmptyGrid, height, width)
	}
	b, err := NewBuilder(height, width)
	if err != nil {
		return nil, err
	}
	interior := make([]int, 0, height*width)
	for r := 1; r <= height; r++ {
		for c := 1; c <= width; c++ {
			interior = append(interior, r*b.cols+c)
		}
	}

	// The budget counts border cells but only interior cells take walls.
	walls := int(float64(b.rows*b.cols) * WallDensity)
	if walls > len(interior) {
		walls = len(interior)
	}
	for _, i := range rng.Perm(len(interior))[:walls] {
		b.cells[interior[i]] = Wall
	}
	// Endpoints are drawn from the whole interior, walls included, so a
	// placed wall may be replaced and the final wall count can fall below
	// the budget. This is intended.
	picks := rng.Perm(len(interior))[:2]
	b.cells[interior[picks[0]]] = Start
	b.cells[interior[picks[1]]] = End
	b.hasStart, b.hasEnd = true, true

	return b.Build()
}
