package grid_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridpath/grid"
)

// TestParse_PadsBorderAndRows verifies framing, short-row padding and symbol mapping.
func TestParse_PadsBorderAndRows(t *testing.T) {
	g, err := grid.Parse(strings.NewReader("O #\r\n.\nX\n\n"))
	require.NoError(t, err)
	require.Equal(t, 5, g.Rows())
	require.Equal(t, 5, g.Cols())

	want := "#####\n" +
		"#O.##\n" +
		"#...#\n" +
		"#X..#\n" +
		"#####\n"
	assert.Equal(t, want, g.String())
	require.NoError(t, g.Validate())
}

// TestParse_Errors covers empty input and unknown characters.
func TestParse_Errors(t *testing.T) {
	_, err := grid.ParseString("")
	assert.ErrorIs(t, err, grid.ErrEmptyGrid)

	_, err = grid.ParseString("\n\n")
	assert.ErrorIs(t, err, grid.ErrEmptyGrid)

	_, err = grid.ParseString("O.\n.?X")
	if !errors.Is(err, grid.ErrBadSymbol) {
		t.Fatalf("want ErrBadSymbol, got %v", err)
	}
	assert.Contains(t, err.Error(), "line 2 column 2")
}

func TestMustParse_Panics(t *testing.T) {
	assert.Panics(t, func() { grid.MustParse("") })
}
