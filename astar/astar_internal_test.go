package astar

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridpath/core"
	"github.com/katalvlaran/gridpath/grid"
)

// TestHeuristicsStatic checks that no relaxation touches a heuristic.
func TestHeuristicsStatic(t *testing.T) {
	g := grid.MustParse("O..#.\n.#...\n...#X")
	r, err := New(g)
	require.NoError(t, err)

	end, _ := g.Locate(grid.End)
	before := make([]int, r.a.Len())
	for i := range before {
		before[i] = r.a.Vertex(i).Heuristic
		assert.Equal(t, end.Manhattan(r.a.Vertex(i).Pos), before[i])
	}

	require.Equal(t, core.Found, core.Run(r).State)
	for i := range before {
		assert.Equal(t, before[i], r.a.Vertex(i).Heuristic, "vertex %d", i)
	}
}

func TestKey(t *testing.T) {
	r, err := New(grid.MustParse("O..X"))
	require.NoError(t, err)
	// Start: distance 0, three columns from End.
	assert.Equal(t, 3, r.key(r.a.Index(grid.Position{Row: 1, Col: 1})))
}
