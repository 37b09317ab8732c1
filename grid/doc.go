// Package grid models the rectangular, bordered board that every search
// strategy in gridpath consumes.
//
// What:
//
//   - Kind enumerates cell contents: Tile, Wall, Start, End, BorderWall.
//   - Grid is an immutable row-major array of Kind, deep-copied on input.
//   - Locate finds the unique Start or End; CellAt is bounds-checked.
//   - Neighbors is the shared neighbor policy: passable, in-bounds positions
//     in a fixed order (N, E, S, W, then NE, SE, SW, NW under Conn8).
//   - Reachable returns the connected component of a position.
//
// Board producers (editors, maze loaders, random generators) live here too:
//
//   - Builder applies the interactive editing rules to a bordered board.
//   - Parse reads the ASCII maze format ('#' wall, 'O' start, 'X' end,
//     ' ' or '.' tile) and frames it with a BorderWall ring.
//   - Randomize places walls on 10% of the board and two distinct endpoints.
//
// The neighbor order is part of the observable contract: it fixes the
// visitation order of every strategy and makes traces reproducible.
//
// Complexity:
//
//   - Locate:    O(W×H).
//   - Neighbors: O(d), d = 4 or 8.
//   - Reachable: O(W×H×d), Memory: O(W×H).
//
// Errors:
//
//   - ErrEmptyGrid:      input has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrOutOfBounds:    position outside the grid.
//   - ErrNotFound:       no cell of the requested kind.
//   - ErrBorder:         outer ring is not entirely BorderWall.
//   - ErrEndpoints:      Start or End count is not exactly one.
//   - ErrBadSymbol:      unknown character in maze text.
package grid
