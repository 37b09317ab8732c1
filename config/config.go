package config

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/katalvlaran/gridpath/search"
)

// Size bounds of the board interior, inclusive.
const (
	MinSize = 2
	MaxSize = 50
)

// ErrInvalidSettings wraps every validation failure.
var ErrInvalidSettings = errors.New("config: invalid settings")

// BoardSource selects how the host obtains its board.
type BoardSource string

const (
	// Randomize generates a board with random walls.
	Randomize BoardSource = "randomize"
	// File loads a maze text file.
	File BoardSource = "file"
	// Draw reads a board drawn by the user (from stdin in the CLI).
	Draw BoardSource = "draw"
)

// Settings is the full host configuration.
type Settings struct {
	Width       int         `yaml:"width" json:"width"`
	Height      int         `yaml:"height" json:"height"`
	ShowProcess bool        `yaml:"is_show_process" json:"is_show_process"`
	Algorithm   string      `yaml:"choose_algorithm" json:"choose_algorithm"`
	Board       BoardSource `yaml:"is_draw_maze" json:"is_draw_maze"`

	// MazeFile is loaded for Board == File; when empty a random file from
	// MazeDir is used.
	MazeFile string `yaml:"maze_file,omitempty" json:"maze_file,omitempty"`
	MazeDir  string `yaml:"maze_dir" json:"maze_dir"`

	Diagonal  bool   `yaml:"diagonal" json:"diagonal"`
	FPS       int    `yaml:"fps" json:"fps"`
	Seed      int64  `yaml:"seed" json:"seed"` // 0 picks a time-based seed
	LogLevel  string `yaml:"log_level" json:"log_level"`
	Output    string `yaml:"png,omitempty" json:"png,omitempty"`
	ImageSize int    `yaml:"image_size" json:"image_size"`
	Telemetry bool   `yaml:"telemetry" json:"telemetry"` // print recorded metrics and spans
}

// Default returns the settings used when nothing is configured.
func Default() Settings {
	return Settings{
		Width:       20,
		Height:      20,
		ShowProcess: true,
		Algorithm:   search.BreadthFirst.String(),
		Board:       Randomize,
		MazeDir:     "maze",
		FPS:         100,
		LogLevel:    "info",
		ImageSize:   700,
	}
}

// Validate reports every invalid field, joined.
func (s Settings) Validate() error {
	var errs []error
	bad := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalidSettings}, args...)...))
	}

	if s.Width < MinSize || s.Width > MaxSize {
		bad("width %d not in [%d, %d]", s.Width, MinSize, MaxSize)
	}
	if s.Height < MinSize || s.Height > MaxSize {
		bad("height %d not in [%d, %d]", s.Height, MinSize, MaxSize)
	}
	if _, err := search.ParseAlgorithm(s.Algorithm); err != nil {
		bad("%v", err)
	}
	switch s.Board {
	case Randomize, Draw:
	case File:
		if s.MazeFile == "" && s.MazeDir == "" {
			bad("board source file needs maze_file or maze_dir")
		}
	default:
		bad("unknown board source %q", s.Board)
	}
	if s.FPS <= 0 {
		bad("fps must be positive, got %d", s.FPS)
	}
	if _, err := s.Level(); err != nil {
		bad("log level %q", s.LogLevel)
	}
	if s.ImageSize <= 0 {
		bad("image_size must be positive, got %d", s.ImageSize)
	}
	return errors.Join(errs...)
}

// AlgorithmValue parses Algorithm.
func (s Settings) AlgorithmValue() (search.Algorithm, error) {
	return search.ParseAlgorithm(s.Algorithm)
}

// Level parses LogLevel; an empty value means info.
func (s Settings) Level() (slog.Level, error) {
	var l slog.Level
	if s.LogLevel == "" {
		return slog.LevelInfo, nil
	}
	err := l.UnmarshalText([]byte(s.LogLevel))
	return l, err
}
