package grid

// Reachable returns every passable position connected to from under conn,
// in breadth-first discovery order, from included. If from is not passable
// the result is empty.
//
// Time:   O(W·H·d), where d = 4 or 8.
// Memory: O(W·H) for visited flags and output.
func (g *Grid) Reachable(from Position, conn Connectivity) []Position {
	if !g.Passable(from) {
		return nil
	}
	seen := make([]bool, len(g.cells))
	queue := []Position{from}
	seen[g.Index(from)] = true

	for qi := 0; qi < len(queue); qi++ {
		for _, q := range g.Neighbors(queue[qi], conn) {
			i := g.Index(q)
			if !seen[i] {
				seen[i] = true
				queue = append(queue, q)
			}
		}
	}
	return queue
}

// PassableCount returns the number of cells that are neither Wall nor BorderWall.
func (g *Grid) PassableCount() int {
	n := 0
	for _, c := range g.cells {
		if c.Passable() {
			n++
		}
	}
	return n
}
