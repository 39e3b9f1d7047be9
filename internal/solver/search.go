package solver

import (
	"context"
	"errors"
	"time"

	"svw.info/diagsudoku/internal/domain"
	"svw.info/diagsudoku/internal/ports"
	"svw.info/diagsudoku/internal/topology"
	"svw.info/diagsudoku/internal/trace"
)

// Engine interleaves constraint propagation with depth-first search.
type Engine struct {
	refiner Refiner
}

// NewEngine builds an engine with the given post-propagation refiner; nil
// means no refinement.
func NewEngine(r Refiner) *Engine {
	if r == nil {
		r = Identity{}
	}
	return &Engine{refiner: r}
}

// Solve runs the search and performs the mandatory solved post-check: the
// internal search returns its last reduced board when every branch is
// exhausted, and that fallback must never be mistaken for a solution.
func (e *Engine) Solve(ctx context.Context, b domain.Board, log *trace.Log) (domain.Board, ports.Stats, error) {
	start := time.Now()
	nodes := 0
	out, err := e.search(ctx, b, log, &nodes)
	st := ports.Stats{Nodes: nodes, Duration: time.Since(start)}
	if err != nil {
		return nil, st, err
	}
	if !out.Solved() {
		return nil, st, ErrUnsolvable
	}
	return out, st, nil
}

// search reduces b to a propagation fixed point, applies the refiner, and if
// the board is still ambiguous branches on the cell with the fewest
// candidates. Each branch gets its own clone; a contradiction fails only that
// branch. When no branch solves, the reduced board itself is returned, which
// is why Solve re-checks Solved.
func (e *Engine) search(ctx context.Context, b domain.Board, log *trace.Log, nodes *int) (domain.Board, error) {
	*nodes++
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	work := b.Clone()
	if err := Reduce(work, log); err != nil {
		return nil, err
	}
	work = e.refiner.Refine(work)
	if work.Solved() {
		return work, nil
	}

	cell, ok := fewestCandidates(work)
	if !ok {
		return work, nil
	}
	cands := work[cell]
	for i := 0; i < len(cands); i++ {
		child := work.Clone()
		Assign(child, cell, cands[i:i+1], log)
		got, err := e.search(ctx, child, log, nodes)
		if err != nil {
			if errors.Is(err, ErrContradiction) {
				continue
			}
			return nil, err
		}
		if got.Solved() {
			return got, nil
		}
	}
	return work, nil
}

// fewestCandidates picks the undetermined cell with the smallest candidate
// set, ties broken by canonical cell order for reproducibility.
func fewestCandidates(b domain.Board) (domain.Cell, bool) {
	var best domain.Cell
	bestN := len(domain.AllDigits) + 1
	for _, cell := range topology.Cells() {
		if n := len(b[cell]); n > 1 && n < bestN {
			best, bestN = cell, n
		}
	}
	return best, best != ""
}
