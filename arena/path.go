package arena

import "github.com/katalvlaran/gridpath/grid"

// PathTo follows parent back-references from vertex i to the origin and
// returns the positions origin→i inclusive.
// Time: O(path length).
func (a *Arena) PathTo(i int) []grid.Position {
	var path []grid.Position
	for at := i; at != NoParent; at = a.vertices[at].Parent {
		path = append(path, a.vertices[at].Pos)
	}
	// reverse to get origin → i
	for l, r := 0, len(path)-1; l < r; l, r = l+1, r-1 {
		path[l], path[r] = path[r], path[l]
	}
	return path
}
