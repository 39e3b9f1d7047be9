// Command diagsudoku-web serves the solver over a JSON HTTP API. Traces are
// returned and persisted for an external visualizer; there is no embedded UI.
package main

import (
	"flag"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"

	httpadapter "svw.info/diagsudoku/internal/adapters/http"
	"svw.info/diagsudoku/internal/config"
	"svw.info/diagsudoku/internal/domain"
	"svw.info/diagsudoku/internal/hint"
	"svw.info/diagsudoku/internal/infrastructure/storage"
	"svw.info/diagsudoku/internal/ports"
	"svw.info/diagsudoku/internal/solver"
	"svw.info/diagsudoku/internal/usecase"
	"svw.info/diagsudoku/internal/validator"
)

// statusWriter captures HTTP status and bytes written.
type statusWriter struct {
	http.ResponseWriter
	status int
	bytes  int
}

func (w *statusWriter) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}

func (w *statusWriter) Write(b []byte) (int, error) {
	if w.status == 0 {
		w.status = http.StatusOK
	}
	n, err := w.ResponseWriter.Write(b)
	w.bytes += n
	return n, err
}

// requestLogger logs method, path, status, bytes, and duration in a human-readable format.
func requestLogger(logger *slog.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		sw := &statusWriter{ResponseWriter: w}
		next.ServeHTTP(sw, r)
		dur := time.Since(start)
		logger.Info("http",
			"method", r.Method,
			"path", r.URL.Path,
			"status", sw.status,
			"bytes", sw.bytes,
			"dur", dur.Round(time.Millisecond),
		)
	})
}

func main() {
	addr := flag.String("addr", "", "listen address")
	persist := flag.String("persist-path", "", "save directory")
	cfgPath := flag.String("config", "", "optional YAML config file")
	levelStr := flag.String("log-level", "", "debug|info|warn|error")
	solverName := flag.String("solver", "", "solver to use: engine|backtrack|parallel")
	strategy := flag.String("strategy", "", "post-propagation refinement: twins|none")
	flag.Parse()

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		slog.Error("config", "err", err)
		os.Exit(1)
	}
	if *addr != "" {
		cfg.Addr = *addr
	}
	if *persist != "" {
		cfg.DataDir = *persist
	}
	if *levelStr != "" {
		cfg.LogLevel = *levelStr
	}
	if *solverName != "" {
		cfg.Solver = *solverName
	}
	if *strategy != "" {
		cfg.Strategy = *strategy
	}

	lvl := slog.LevelInfo
	switch strings.ToLower(cfg.LogLevel) {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	}
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: lvl}))
	_ = os.MkdirAll(cfg.DataDir, 0o755)

	ref := solver.RefinerFor(cfg.Strategy)
	var s ports.Solver
	switch domain.ParseSolverKind(cfg.Solver) {
	case domain.SolverBacktrack:
		s = solver.NewBacktracking()
	case domain.SolverParallel:
		s = solver.NewParallel(ref)
	default:
		s = solver.NewEngine(ref)
	}

	// Wire providers → use cases → HTTP adapter
	v := validator.New()
	st := storage.NewFS(cfg.DataDir)
	hin := hint.NewForced()
	uc := usecase.NewService(s, v, hin, st)
	h := httpadapter.New(uc)

	mux := http.NewServeMux()
	h.Register(mux)

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           requestLogger(logger, mux),
		ReadHeaderTimeout: 5 * time.Second,
	}
	logger.Info("listening", "addr", cfg.Addr, "persist", cfg.DataDir, "solver", cfg.Solver)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Error("server error", "err", err)
		os.Exit(1)
	}
}
