package grid

// offsets4 lists the cardinal moves as (dRow, dCol): N, E, S, W.
var offsets4 = [][2]int{{-1, 0}, {0, 1}, {1, 0}, {0, -1}}

// offsets8 lists the cardinals followed by the diagonals clockwise from NE.
var offsets8 = [][2]int{
	{-1, 0}, {0, 1}, {1, 0}, {0, -1},
	{-1, 1}, {1, 1}, {1, -1}, {-1, -1},
}

// Offsets returns the move offsets for conn in policy order.
// The returned slice must not be modified.
func Offsets(conn Connectivity) [][2]int {
	if conn == Conn8 {
		return offsets8
	}
	return offsets4
}

// Neighbors returns the in-bounds, passable neighbors of p in policy order:
// North, East, South, West and, for Conn8, North-East, South-East,
// South-West, North-West. The order fixes visitation order for every
// strategy and must stay stable.
// Time: O(d).
func (g *Grid) Neighbors(p Position, conn Connectivity) []Position {
	offs := Offsets(conn)
	out := make([]Position, 0, len(offs))
	for _, d := range offs {
		q := Position{Row: p.Row + d[0], Col: p.Col + d[1]}
		if g.Passable(q) {
			out = append(out, q)
		}
	}
	return out
}
