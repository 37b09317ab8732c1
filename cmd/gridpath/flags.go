package main

import (
	"flag"
	"fmt"
	"io"

	"github.com/katalvlaran/gridpath/config"
)

// parseSettings starts from Default, overlays -config when given, then
// applies every flag set explicitly on the command line and validates the
// result once, so a flag can repair a bad value in the file. The second
// result is the -save path.
func parseSettings(args []string, stderr io.Writer) (config.Settings, string, error) {
	d := config.Default()
	var (
		cfgPath, save string
		f             = d
	)

	fs := flag.NewFlagSet("gridpath", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&cfgPath, "config", "", "Settings file (.yaml, .yml or .json).")
	fs.StringVar(&save, "save", "", "Write the effective settings to this file.")
	fs.IntVar(&f.Width, "width", d.Width, "Board interior width, 2..50.")
	fs.IntVar(&f.Height, "height", d.Height, "Board interior height, 2..50.")
	fs.StringVar(&f.Algorithm, "algorithm", d.Algorithm,
		"breadth_first, depth_first, dijkstra or a_star.")
	fs.BoolVar(&f.ShowProcess, "show-process", d.ShowProcess,
		"Animate every step instead of only the end result.")
	board := fs.String("board", string(d.Board), "Board source: randomize, file or draw.")
	fs.StringVar(&f.MazeFile, "maze", d.MazeFile, "Maze file for -board file.")
	fs.StringVar(&f.MazeDir, "maze-dir", d.MazeDir, "Directory to pick a maze from when -maze is empty.")
	fs.BoolVar(&f.Diagonal, "diagonal", d.Diagonal, "Allow diagonal moves (BFS and DFS).")
	fs.IntVar(&f.FPS, "fps", d.FPS, "Animation frames per second.")
	fs.Int64Var(&f.Seed, "seed", d.Seed, "Random seed; 0 picks one.")
	fs.StringVar(&f.LogLevel, "log-level", d.LogLevel, "debug, info, warn or error.")
	fs.StringVar(&f.Output, "png", d.Output, "Write the final trace to this PNG file.")
	fs.IntVar(&f.ImageSize, "image-size", d.ImageSize, "PNG width and height in pixels.")
	fs.BoolVar(&f.Telemetry, "telemetry", d.Telemetry, "Print the metrics and spans the run recorded.")
	if err := fs.Parse(args); err != nil {
		return config.Settings{}, "", err
	}
	if fs.NArg() > 0 {
		return config.Settings{}, "", fmt.Errorf("unexpected arguments: %v", fs.Args())
	}
	f.Board = config.BoardSource(*board)

	s := d
	if cfgPath != "" {
		var err error
		if s, err = config.ReadFile(cfgPath); err != nil {
			return config.Settings{}, "", err
		}
	}
	fs.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "width":
			s.Width = f.Width
		case "height":
			s.Height = f.Height
		case "algorithm":
			s.Algorithm = f.Algorithm
		case "show-process":
			s.ShowProcess = f.ShowProcess
		case "board":
			s.Board = f.Board
		case "maze":
			s.MazeFile = f.MazeFile
		case "maze-dir":
			s.MazeDir = f.MazeDir
		case "diagonal":
			s.Diagonal = f.Diagonal
		case "fps":
			s.FPS = f.FPS
		case "seed":
			s.Seed = f.Seed
		case "log-level":
			s.LogLevel = f.LogLevel
		case "png":
			s.Output = f.Output
		case "image-size":
			s.ImageSize = f.ImageSize
		case "telemetry":
			s.Telemetry = f.Telemetry
		}
	})
	if err := s.Validate(); err != nil {
		return config.Settings{}, "", err
	}
	return s, save, nil
}
