package ports

import (
	"context"
	"time"

	"svw.info/diagsudoku/internal/domain"
	"svw.info/diagsudoku/internal/trace"
)

// Stats captures performance characteristics of an operation.
type Stats struct {
	Nodes    int
	Duration time.Duration
}

// Solver takes a candidate board to a fully determined one. Single-value
// commitments are appended to log in chronological order; log may be nil to
// disable tracing. The input board is never mutated.
type Solver interface {
	Solve(ctx context.Context, b domain.Board, log *trace.Log) (domain.Board, Stats, error)
}

// Validator performs fast constraint checks over all 29 units.
type Validator interface {
	Validate(ctx context.Context, b domain.Board) (ok bool, conflicts []domain.Cell, err error)
}

// Hinter returns the next forced placement, if one exists.
type Hinter interface {
	Hint(ctx context.Context, b domain.Board) (domain.Hint, bool, error)
}

// Storage persists solve results (with their traces) as JSON.
type Storage interface {
	Save(ctx context.Context, p *domain.Puzzle) error
	Load(ctx context.Context, id string) (*domain.Puzzle, error)
	List(ctx context.Context) ([]domain.PuzzleMeta, error)
}
