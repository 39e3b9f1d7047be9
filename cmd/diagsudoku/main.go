// Command diagsudoku solves a diagonal Sudoku given as an 81-character grid
// string and prints the result. The assignment trace can be written to a
// JSON file for an external visualizer to replay.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"log/slog"
	"os"

	"svw.info/diagsudoku/internal/config"
	"svw.info/diagsudoku/internal/display"
	"svw.info/diagsudoku/internal/domain"
	"svw.info/diagsudoku/internal/hint"
	"svw.info/diagsudoku/internal/ports"
	"svw.info/diagsudoku/internal/solver"
	"svw.info/diagsudoku/internal/usecase"
	"svw.info/diagsudoku/internal/validator"
)

func buildSolver(kind domain.SolverKind, ref solver.Refiner) ports.Solver {
	switch kind {
	case domain.SolverBacktrack:
		return solver.NewBacktracking()
	case domain.SolverParallel:
		return solver.NewParallel(ref)
	default:
		return solver.NewEngine(ref)
	}
}

func main() {
	grid := flag.String("grid", "", "81-character grid, '.' or '0' for unknown cells")
	cfgPath := flag.String("config", "", "optional YAML config file")
	solverName := flag.String("solver", "", "engine|backtrack|parallel")
	strategy := flag.String("strategy", "", "post-propagation refinement: twins|none")
	tracePath := flag.String("trace", "", "write the assignment trace to this JSON file")
	noColor := flag.Bool("no-color", false, "disable colored output")
	levelStr := flag.String("log-level", "", "debug|info|warn|error")
	flag.Parse()

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		slog.Error("config", "err", err)
		os.Exit(1)
	}
	if *solverName != "" {
		cfg.Solver = *solverName
	}
	if *strategy != "" {
		cfg.Strategy = *strategy
	}
	if *levelStr != "" {
		cfg.LogLevel = *levelStr
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: parseLevel(cfg.LogLevel)}))

	g := *grid
	if g == "" && flag.NArg() > 0 {
		g = flag.Arg(0)
	}
	if g == "" {
		logger.Error("no grid given; pass -grid or a positional argument")
		os.Exit(2)
	}

	ref := solver.RefinerFor(cfg.Strategy)
	s := buildSolver(domain.ParseSolverKind(cfg.Solver), ref)
	uc := usecase.NewService(s, validator.New(), hint.NewForced(), nil)

	res, err := uc.SolveGrid(context.Background(), g)
	if err != nil {
		logger.Error("solve failed", "err", err)
		os.Exit(1)
	}
	logger.Info("solved",
		"solver", cfg.Solver,
		"nodes", res.Stats.Nodes,
		"dur", res.Stats.Duration,
		"assignments", len(res.Trace),
	)

	r := display.New(os.Stdout)
	if *noColor {
		r.WithColor(false)
	}
	if err := r.Render(res.Board); err != nil {
		logger.Error("render", "err", err)
		os.Exit(1)
	}

	if *tracePath != "" {
		f, err := os.Create(*tracePath)
		if err != nil {
			logger.Error("trace file", "err", err)
			os.Exit(1)
		}
		defer f.Close()
		enc := json.NewEncoder(f)
		enc.SetIndent("", "  ")
		if err := enc.Encode(res.Trace); err != nil {
			logger.Error("trace encode", "err", err)
			os.Exit(1)
		}
		logger.Info("trace written", "path", *tracePath, "snapshots", len(res.Trace))
	}
}

func parseLevel(s string) slog.Level {
	switch s {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
