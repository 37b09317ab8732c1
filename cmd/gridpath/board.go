package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math/rand"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/katalvlaran/gridpath/config"
	"github.com/katalvlaran/gridpath/grid"
)

// errNoMazes is returned when the maze directory holds no regular files.
var errNoMazes = errors.New("no maze files found")

// loadBoard produces the board for s.Board and names its source.
func loadBoard(s config.Settings, stdin io.Reader, rng *rand.Rand, logger *slog.Logger) (*grid.Grid, string, error) {
	switch s.Board {
	case config.File:
		path := s.MazeFile
		if path == "" {
			var err error
			if path, err = pickMaze(s.MazeDir, rng); err != nil {
				return nil, "", err
			}
		}
		g, err := loadMaze(path)
		return g, "file:" + path, err
	case config.Draw:
		g, err := drawBoard(stdin, s.Height, s.Width, logger)
		return g, "draw", err
	default:
		g, err := grid.Randomize(s.Height, s.Width, rng)
		return g, "randomize", err
	}
}

// pickMaze returns a random regular file from dir. Names are sorted first
// so the pick only depends on rng.
func pickMaze(dir string, rng *rand.Rand) (string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return "", fmt.Errorf("read maze dir: %w", err)
	}
	var names []string
	for _, e := range entries {
		if e.Type().IsRegular() {
			names = append(names, e.Name())
		}
	}
	if len(names) == 0 {
		return "", fmt.Errorf("%w in %s", errNoMazes, dir)
	}
	sort.Strings(names)
	return filepath.Join(dir, names[rng.Intn(len(names))]), nil
}

// loadMaze parses and validates a maze text file.
func loadMaze(path string) (*grid.Grid, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open maze: %w", err)
	}
	defer f.Close()

	g, err := grid.Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if err := g.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return g, nil
}

var drawKinds = map[string]grid.Kind{
	"start": grid.Start,
	"end":   grid.End,
	"wall":  grid.Wall,
	"tile":  grid.Tile,
}

// drawBoard applies edit commands from r to an empty height×width board.
// Each line is "<start|end|wall|tile> ROW COL" in board coordinates (the
// border ring is row and column 0); "done" or EOF finishes. Blank lines and
// lines starting with '#' are skipped. Edits the board rules refuse are
// logged and ignored.
func drawBoard(r io.Reader, height, width int, logger *slog.Logger) (*grid.Grid, error) {
	b, err := grid.NewBuilder(height, width)
	if err != nil {
		return nil, err
	}
	sc := bufio.NewScanner(r)
	for line := 1; sc.Scan(); line++ {
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		if text == "done" {
			break
		}
		k, p, err := parseEdit(text)
		if err != nil {
			return nil, fmt.Errorf("draw line %d: %w", line, err)
		}
		if !b.Set(p, k) {
			logger.Debug("edit refused",
				slog.Int("line", line),
				slog.String("kind", k.String()),
				slog.String("pos", p.String()))
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read draw commands: %w", err)
	}
	return b.Build()
}

// parseEdit splits "<kind> ROW COL".
func parseEdit(text string) (grid.Kind, grid.Position, error) {
	fields := strings.Fields(text)
	if len(fields) != 3 {
		return 0, grid.Position{}, fmt.Errorf("want \"<kind> ROW COL\", got %q", text)
	}
	k, ok := drawKinds[strings.ToLower(fields[0])]
	if !ok {
		return 0, grid.Position{}, fmt.Errorf("unknown kind %q", fields[0])
	}
	row, err := strconv.Atoi(fields[1])
	if err != nil {
		return 0, grid.Position{}, fmt.Errorf("row: %w", err)
	}
	col, err := strconv.Atoi(fields[2])
	if err != nil {
		return 0, grid.Position{}, fmt.Errorf("col: %w", err)
	}
	return k, grid.Position{Row: row, Col: col}, nil
}
