package search

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/gridpath/astar"
	"github.com/katalvlaran/gridpath/bfs"
	"github.com/katalvlaran/gridpath/core"
	"github.com/katalvlaran/gridpath/dfs"
	"github.com/katalvlaran/gridpath/dijkstra"
	"github.com/katalvlaran/gridpath/grid"
)

// ErrUnknownAlgorithm is returned for names or values that map to no strategy.
var ErrUnknownAlgorithm = errors.New("search: unknown algorithm")

// Algorithm identifies one of the search strategies.
type Algorithm int

const (
	BreadthFirst Algorithm = iota
	DepthFirst
	Dijkstra
	AStar
)

var algorithmNames = [...]string{"breadth_first", "depth_first", "dijkstra", "a_star"}

// aliases maps every accepted spelling to its Algorithm, including the
// *_search names used by older settings files.
var aliases = map[string]Algorithm{
	"breadth_first":        BreadthFirst,
	"breadth_first_search": BreadthFirst,
	"bfs":                  BreadthFirst,
	"depth_first":          DepthFirst,
	"depth_first_search":   DepthFirst,
	"dfs":                  DepthFirst,
	"dijkstra":             Dijkstra,
	"dijkstra_search":      Dijkstra,
	"a_star":               AStar,
	"a_star_search":        AStar,
	"astar":                AStar,
}

// Algorithms lists every strategy in declaration order.
func Algorithms() []Algorithm {
	return []Algorithm{BreadthFirst, DepthFirst, Dijkstra, AStar}
}

// String returns the canonical name.
func (a Algorithm) String() string {
	if a >= 0 && int(a) < len(algorithmNames) {
		return algorithmNames[a]
	}
	return fmt.Sprintf("algorithm(%d)", int(a))
}

// ParseAlgorithm accepts canonical names, legacy *_search names and short
// aliases, case-insensitively. Dashes are read as underscores.
func ParseAlgorithm(name string) (Algorithm, error) {
	key := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), "-", "_")
	if a, ok := aliases[key]; ok {
		return a, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, name)
}

// MarshalText implements encoding.TextMarshaler.
func (a Algorithm) MarshalText() ([]byte, error) {
	if a < 0 || int(a) >= len(algorithmNames) {
		return nil, fmt.Errorf("%w: %d", ErrUnknownAlgorithm, int(a))
	}
	return []byte(a.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler via ParseAlgorithm.
func (a *Algorithm) UnmarshalText(text []byte) error {
	v, err := ParseAlgorithm(string(text))
	if err != nil {
		return err
	}
	*a = v
	return nil
}

// New returns a Ready stepper for algo over g.
func New(g *grid.Grid, algo Algorithm, opts ...core.Option) (core.Stepper, error) {
	switch algo {
	case BreadthFirst:
		return stepper(bfs.New(g, opts...))
	case DepthFirst:
		return stepper(dfs.New(g, opts...))
	case Dijkstra:
		return stepper(dijkstra.New(g, opts...))
	case AStar:
		return stepper(astar.New(g, opts...))
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownAlgorithm, int(algo))
	}
}

// stepper drops the typed nil a failed constructor returns, so callers can
// compare the interface against nil.
func stepper[S core.Stepper](s S, err error) (core.Stepper, error) {
	if err != nil {
		return nil, err
	}
	return s, nil
}
