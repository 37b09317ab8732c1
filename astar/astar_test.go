package astar_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridpath/astar"
	"github.com/katalvlaran/gridpath/core"
	"github.com/katalvlaran/gridpath/dijkstra"
	"github.com/katalvlaran/gridpath/grid"
)

func TestAStar_Errors(t *testing.T) {
	_, err := astar.New(nil)
	assert.ErrorIs(t, err, core.ErrNilGrid)

	_, err = astar.Search(grid.MustParse("..X"))
	require.ErrorIs(t, err, grid.ErrNotFound)
	assert.Contains(t, err.Error(), "astar: locate start")
}

// TestAStar_Corridor heads straight for End and commits only the row it
// travels on.
func TestAStar_Corridor(t *testing.T) {
	g := grid.MustParse("O....X\n......\n......")
	res, err := astar.Search(g)
	require.NoError(t, err)

	row1 := []grid.Position{{Row: 1, Col: 1}, {Row: 1, Col: 2}, {Row: 1, Col: 3}, {Row: 1, Col: 4}, {Row: 1, Col: 5}}
	assert.Equal(t, row1, res.Visited)
	assert.Equal(t, append(row1, grid.Position{Row: 1, Col: 6}), res.Path)

	dj, err := dijkstra.Search(g)
	require.NoError(t, err)
	assert.Less(t, len(res.Visited), len(dj.Visited))
	assert.Equal(t, dj.PathLength(), res.PathLength())
}

// TestAStar_Detour keeps shortest length when the direct line is blocked.
func TestAStar_Detour(t *testing.T) {
	g := grid.MustParse("....#...\n.##.#.#.\nO#..#.#X\n.#.##.#.\n........")
	res, err := astar.Search(g)
	require.NoError(t, err)
	dj, err := dijkstra.Search(g)
	require.NoError(t, err)

	require.True(t, res.PathFound)
	assert.Equal(t, dj.PathLength(), res.PathLength())
	for i := 1; i < len(res.Path); i++ {
		assert.Equal(t, 1, res.Path[i-1].Manhattan(res.Path[i]), "step %d", i)
	}
}

func TestAStar_Enclosed(t *testing.T) {
	g := grid.MustParse("O.#\n..#\n##X")
	res, err := astar.Search(g)
	require.NoError(t, err)
	assert.Equal(t, core.Exhausted, res.State)
	assert.ElementsMatch(t, []grid.Position{{Row: 1, Col: 1}, {Row: 1, Col: 2}, {Row: 2, Col: 1}, {Row: 2, Col: 2}}, res.Visited)
	assert.Empty(t, res.Path)
}

// TestAStar_HiddenSteps observes once at the end with the whole trace.
func TestAStar_HiddenSteps(t *testing.T) {
	var calls [][]grid.Position
	res, err := astar.Search(grid.MustParse("O..\n...\n..X"),
		core.WithShowSteps(false),
		core.WithObserver(core.ObserverFunc(func(v []grid.Position) {
			calls = append(calls, append([]grid.Position(nil), v...))
		})),
	)
	require.NoError(t, err)
	require.Len(t, calls, 1)
	assert.Equal(t, res.Visited, calls[0])
}

func TestAStar_Deterministic(t *testing.T) {
	g := grid.MustParse("O...\n.##.\n...X")
	a, _ := astar.Search(g)
	b, _ := astar.Search(g)
	assert.Equal(t, a, b)
}
