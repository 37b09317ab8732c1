package dijkstra_test

import (
	"fmt"

	"github.com/katalvlaran/gridpath/dijkstra"
	"github.com/katalvlaran/gridpath/grid"
)

// ExampleSearch finds the shortest way around a wall.
func ExampleSearch() {
	g := grid.MustParse("O#X\n...")

	res, err := dijkstra.Search(g)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(res.State, res.PathLength())
	fmt.Println(res.Path)
	// Output:
	// found 4
	// [(1,1) (2,1) (2,2) (2,3) (1,3)]
}
