// Command gridpath runs one grid search and shows how it explores the board.
//
// A board is generated, loaded from a maze file or drawn from stdin edit
// commands; the chosen algorithm then runs step by step, redrawing the
// board as ASCII at the configured frame rate. Ctrl-C stops the run and
// keeps the partial trace. The final trace can be written as a PNG.
//
// Usage:
//
//	gridpath [-config settings.yaml] [-algorithm a_star] [-board file] [-png out.png] [-telemetry] ...
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/katalvlaran/gridpath/config"
	"github.com/katalvlaran/gridpath/core"
	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/observability"
	"github.com/katalvlaran/gridpath/render"
	"github.com/katalvlaran/gridpath/search"
)

// clearScreen moves the cursor home and clears the terminal.
const clearScreen = "\x1b[H\x1b[2J"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

// run is main without the process globals. It returns the exit code.
func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	s, save, err := parseSettings(args, stderr)
	if errors.Is(err, flag.ErrHelp) {
		return 0
	}
	if err != nil {
		fmt.Fprintf(stderr, "gridpath: %s\n", err)
		return 2
	}
	level, _ := s.Level()
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	if save != "" {
		if err := s.WriteFile(save); err != nil {
			logger.Error("save settings failed", slog.String("error", err.Error()))
			return 1
		}
		logger.Info("settings saved", slog.String("path", save))
	}

	seed := s.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))
	logger.Debug("random source ready", slog.Int64("seed", seed))

	g, source, err := loadBoard(s, stdin, rng, logger)
	if err != nil {
		logger.Error("load board failed", slog.String("error", err.Error()))
		return 1
	}
	observability.LogBoardLoaded(logger, source, g.Rows(), g.Cols())

	var tel *telemetry
	if s.Telemetry {
		tel = newTelemetry()
		defer func() {
			if err := tel.shutdown(context.WithoutCancel(ctx)); err != nil {
				logger.Warn("telemetry shutdown failed", slog.String("error", err.Error()))
			}
		}()
	}
	metrics, spans := tel.recorders()

	algo, _ := s.AlgorithmValue()
	done := observability.TimedOperation()
	res, err := search.Run(ctx, g, algo,
		search.WithLogger(logger),
		search.WithMetrics(metrics),
		search.WithSpans(spans),
		search.WithEngineOptions(
			core.WithDiagonal(s.Diagonal),
			core.WithShowSteps(s.ShowProcess),
			core.WithObserver(animator(ctx, g, stdout, s)),
		),
	)
	if err != nil {
		return 1
	}

	fmt.Fprint(stdout, render.ASCII(g, res.Path, res.Visited))
	fmt.Fprintf(stdout, "%s: %s, visited %d, path length %d\n",
		algo, res.State, len(res.Visited), res.PathLength())
	logger.Debug("wall time", slog.Float64("duration_ms", done()))
	if tel != nil {
		if err := tel.report(context.WithoutCancel(ctx), stdout); err != nil {
			logger.Error("telemetry report failed", slog.String("error", err.Error()))
			return 1
		}
	}

	if s.Output != "" {
		if err := render.WritePNG(s.Output, g, res.Path, res.Visited, render.DefaultPalette, s.ImageSize); err != nil {
			logger.Error("write png failed", slog.String("error", err.Error()))
			return 1
		}
		logger.Info("png written", slog.String("path", s.Output))
	}
	if res.State == core.Cancelled {
		return 130
	}
	return 0
}

// animator redraws the board on each observation. With step display on it
// waits one frame between steps, returning early once ctx is done.
func animator(ctx context.Context, g *grid.Grid, w io.Writer, s config.Settings) core.StepObserver {
	if !s.ShowProcess {
		return core.ObserverFunc(func([]grid.Position) {})
	}
	frame := time.Second / time.Duration(s.FPS)
	return core.ObserverFunc(func(visited []grid.Position) {
		fmt.Fprint(w, clearScreen, render.ASCII(g, nil, visited))
		t := time.NewTimer(frame)
		defer t.Stop()
		select {
		case <-ctx.Done():
		case <-t.C:
		}
	})
}
