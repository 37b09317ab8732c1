// Package arena builds the per-run vertex graph used by the weighted
// strategies (Dijkstra and A*) and reconstructs paths from it.
//
// Every cell of the grid gets a Vertex, stored in one slice indexed
// row-major, so a vertex handle is just an int. Adjacency lists and parent
// links hold those indices: Parent is a positional back-reference used only
// to walk from the goal to the origin once a search ends, and never implies
// ownership.
//
// An Arena belongs to exactly one run. It is built fresh by New and must not
// be reused or shared.
//
// Edges are 4-directional and unit cost. Walls and border cells get a vertex
// (so indices line up with the grid) but an empty adjacency list.
package arena

import (
	"math"

	"github.com/katalvlaran/gridpath/grid"
)

// Infinity marks a vertex whose distance from the origin is not yet known.
const Infinity = math.MaxInt

// NoParent marks a vertex without a predecessor.
const NoParent = -1

// Vertex is one grid cell in the search graph.
type Vertex struct {
	Pos       grid.Position
	Distance  int   // tentative distance from the origin; Infinity until relaxed
	Heuristic int   // static estimate to the goal; 0 unless set by SetHeuristic
	Visited   bool  // distance is final
	Parent    int   // arena index of the predecessor, or NoParent
	Edges     []int // arena indices of passable neighbors, in policy order
}

// Arena is the vertex set of one search run.
type Arena struct {
	g        *grid.Grid
	vertices []Vertex
}

// New builds a vertex per cell and computes every adjacency list once via
// the grid's 4-directional neighbor policy. origin gets distance 0.
// Time: O(W×H), Memory: O(W×H).
func New(g *grid.Grid, origin grid.Position) *Arena {
	a := &Arena{g: g, vertices: make([]Vertex, g.Len())}
	for i := range a.vertices {
		p := g.Position(i)
		v := &a.vertices[i]
		v.Pos = p
		v.Distance = Infinity
		v.Parent = NoParent
		if !g.Passable(p) {
			continue
		}
		nbs := g.Neighbors(p, grid.Conn4)
		v.Edges = make([]int, len(nbs))
		for j, q := range nbs {
			v.Edges[j] = g.Index(q)
		}
	}
	a.vertices[g.Index(origin)].Distance = 0
	return a
}

// Len returns the number of vertices.
func (a *Arena) Len() int { return len(a.vertices) }

// Index returns the arena index of p.
func (a *Arena) Index(p grid.Position) int { return a.g.Index(p) }

// Vertex returns the vertex at index i. The pointer stays valid for the
// lifetime of the arena.
func (a *Arena) Vertex(i int) *Vertex { return &a.vertices[i] }

// At returns the vertex for position p.
func (a *Arena) At(p grid.Position) *Vertex { return &a.vertices[a.g.Index(p)] }

// SetHeuristic assigns h(v.Pos) to every vertex. It is called once,
// before the search starts; the values never change afterwards.
func (a *Arena) SetHeuristic(h func(grid.Position) int) {
	for i := range a.vertices {
		a.vertices[i].Heuristic = h(a.vertices[i].Pos)
	}
}

// Relax tries every unvisited neighbor of vertex u with a unit-cost edge.
// When Distance(u)+1 improves a neighbor's tentative distance, Relax updates
// the distance and parent and calls improved with the neighbor's index.
// Vertex heuristics are left untouched.
func (a *Arena) Relax(u int, improved func(v int)) {
	cur := &a.vertices[u]
	nd := cur.Distance + 1
	for _, vi := range cur.Edges {
		v := &a.vertices[vi]
		if v.Visited || nd >= v.Distance {
			continue
		}
		v.Distance = nd
		v.Parent = u
		improved(vi)
	}
}
