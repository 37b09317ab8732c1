package render_test

import (
	"fmt"

	"github.com/katalvlaran/gridpath/bfs"
	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/render"
)

func ExampleASCII() {
	g := grid.MustParse("O.#\n..#\n#..\n#.X")
	res, _ := bfs.Search(g)

	fmt.Print(render.ASCII(g, res.Path, res.Visited))
	// Output:
	// #####
	// #O*##
	// #+*##
	// ##**#
	// ##+*#
	// #####
}
