package astar_test

import (
	"fmt"

	"github.com/katalvlaran/gridpath/astar"
	"github.com/katalvlaran/gridpath/grid"
)

func ExampleSearch() {
	g := grid.MustParse("O....X\n......")

	res, _ := astar.Search(g)
	fmt.Println(res.State, len(res.Visited), res.PathLength())
	// Output:
	// found 5 5
}
