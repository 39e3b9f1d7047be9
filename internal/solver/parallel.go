package solver

import (
	"context"
	"time"

	"svw.info/diagsudoku/internal/domain"
	"svw.info/diagsudoku/internal/ports"
	"svw.info/diagsudoku/internal/trace"
)

// Parallel explores the first branching cell's candidates concurrently, one
// goroutine per candidate, each on its own clone. The first solved branch
// wins and cancels the rest. Branches share the caller's trace log, which is
// safe because Log appends under a mutex; the interleaving of snapshots
// across sibling branches is not meaningful to solving, only to replay.
type Parallel struct {
	refiner Refiner
}

func NewParallel(r Refiner) *Parallel {
	if r == nil {
		r = Identity{}
	}
	return &Parallel{refiner: r}
}

type branchResult struct {
	board domain.Board
	stats ports.Stats
	err   error
}

func (p *Parallel) Solve(ctx context.Context, b domain.Board, log *trace.Log) (domain.Board, ports.Stats, error) {
	start := time.Now()
	work := b.Clone()
	if err := Reduce(work, log); err != nil {
		return nil, ports.Stats{Nodes: 1, Duration: time.Since(start)}, err
	}
	work = p.refiner.Refine(work)
	if work.Solved() {
		return work, ports.Stats{Nodes: 1, Duration: time.Since(start)}, nil
	}
	cell, ok := fewestCandidates(work)
	if !ok {
		return nil, ports.Stats{Nodes: 1, Duration: time.Since(start)}, ErrUnsolvable
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	cands := work[cell]
	results := make(chan branchResult, len(cands))
	for i := 0; i < len(cands); i++ {
		child := work.Clone()
		Assign(child, cell, cands[i:i+1], log)
		go func(child domain.Board) {
			eng := NewEngine(p.refiner)
			out, st, err := eng.Solve(ctx, child, log)
			results <- branchResult{board: out, stats: st, err: err}
		}(child)
	}

	nodes := 1
	var firstErr error
	for i := 0; i < len(cands); i++ {
		res := <-results
		nodes += res.stats.Nodes
		if res.err == nil {
			// remaining branches are canceled by the deferred cancel;
			// their goroutines drain into the buffered channel
			return res.board, ports.Stats{Nodes: nodes, Duration: time.Since(start)}, nil
		}
		if firstErr == nil {
			firstErr = res.err
		}
	}
	if err := ctx.Err(); err != nil {
		return nil, ports.Stats{Nodes: nodes, Duration: time.Since(start)}, err
	}
	return nil, ports.Stats{Nodes: nodes, Duration: time.Since(start)}, ErrUnsolvable
}
