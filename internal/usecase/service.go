package usecase

import (
	"context"
	"errors"

	"svw.info/diagsudoku/internal/domain"
	"svw.info/diagsudoku/internal/parser"
	"svw.info/diagsudoku/internal/ports"
	"svw.info/diagsudoku/internal/trace"
)

type Service struct {
	Solver    ports.Solver
	Validator ports.Validator
	Hinter    ports.Hinter
	Storage   ports.Storage
}

func NewService(s ports.Solver, v ports.Validator, h ports.Hinter, st ports.Storage) *Service {
	return &Service{Solver: s, Validator: v, Hinter: h, Storage: st}
}

var errNotConfigured = errors.New("usecase dependency not configured")

// SolveResult bundles the solved board with the trace that produced it.
type SolveResult struct {
	Board domain.Board
	Trace []domain.Board
	Stats ports.Stats
}

// SolveGrid parses the 81-character grid, allocates a fresh trace log and
// solves. The trace is owned here and handed back with the result; nothing is
// shared across calls, so the service is reentrant.
func (u *Service) SolveGrid(ctx context.Context, grid string) (*SolveResult, error) {
	if u.Solver == nil {
		return nil, errNotConfigured
	}
	b, err := parser.Parse(grid)
	if err != nil {
		return nil, err
	}
	log := trace.NewLog()
	out, st, err := u.Solver.Solve(ctx, b, log)
	if err != nil {
		return nil, err
	}
	return &SolveResult{Board: out, Trace: log.Snapshots(), Stats: st}, nil
}

func (u *Service) Validate(ctx context.Context, b domain.Board) (bool, []domain.Cell, error) {
	if u.Validator == nil {
		return false, nil, errNotConfigured
	}
	return u.Validator.Validate(ctx, b)
}

func (u *Service) Hint(ctx context.Context, grid string) (domain.Hint, bool, error) {
	if u.Hinter == nil {
		return domain.Hint{}, false, errNotConfigured
	}
	b, err := parser.Parse(grid)
	if err != nil {
		return domain.Hint{}, false, err
	}
	return u.Hinter.Hint(ctx, b)
}

// Persistence
func (u *Service) Save(ctx context.Context, p *domain.Puzzle) error {
	if u.Storage == nil {
		return errNotConfigured
	}
	return u.Storage.Save(ctx, p)
}
func (u *Service) Load(ctx context.Context, id string) (*domain.Puzzle, error) {
	if u.Storage == nil {
		return nil, errNotConfigured
	}
	return u.Storage.Load(ctx, id)
}
func (u *Service) List(ctx context.Context) ([]domain.PuzzleMeta, error) {
	if u.Storage == nil {
		return nil, errNotConfigured
	}
	return u.Storage.List(ctx)
}
