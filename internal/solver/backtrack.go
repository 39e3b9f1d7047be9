package solver

import (
	"context"
	"time"

	"svw.info/diagsudoku/internal/domain"
	"svw.info/diagsudoku/internal/ports"
	"svw.info/diagsudoku/internal/topology"
	"svw.info/diagsudoku/internal/trace"
)

// Backtracking is a straightforward recursive solver with no propagation,
// kept as the alternate backend. It honors the diagonal constraints but
// produces no assignment trace.
type Backtracking struct{}

func NewBacktracking() *Backtracking { return &Backtracking{} }

func (s *Backtracking) Solve(ctx context.Context, b domain.Board, log *trace.Log) (domain.Board, ports.Stats, error) {
	start := time.Now()
	var grid [9][9]uint8
	for i, cell := range topology.Cells() {
		if v := b[cell]; len(v) == 1 {
			grid[i/9][i%9] = v[0] - '0'
		}
	}
	// reject inconsistent givens up front; plain DFS would otherwise keep
	// the conflicting pair and run to exhaustion
	if conflictingGivens(&grid) {
		return nil, ports.Stats{Duration: time.Since(start)}, ErrContradiction
	}

	nodes := 0
	var dfs func() bool
	dfs = func() bool {
		if ctx.Err() != nil {
			return false
		}
		r, c, ok := findEmpty(&grid)
		if !ok {
			return true
		}
		for v := uint8(1); v <= 9; v++ {
			nodes++
			if isValid(&grid, r, c, v) {
				grid[r][c] = v
				if dfs() {
					return true
				}
				grid[r][c] = 0
			}
		}
		return false
	}
	solved := dfs()
	st := ports.Stats{Nodes: nodes, Duration: time.Since(start)}
	if !solved {
		if err := ctx.Err(); err != nil {
			return nil, st, err
		}
		return nil, st, ErrUnsolvable
	}

	out := make(domain.Board, 81)
	for i, cell := range topology.Cells() {
		idx := int(grid[i/9][i%9] - 1)
		out[cell] = domain.AllDigits[idx : idx+1]
	}
	return out, st, nil
}

// isValid checks row, column, box and the two main diagonals.
func isValid(b *[9][9]uint8, r, c int, v uint8) bool {
	for i := 0; i < 9; i++ {
		if b[r][i] == v || b[i][c] == v {
			return false
		}
	}
	br, bc := (r/3)*3, (c/3)*3
	for dr := 0; dr < 3; dr++ {
		for dc := 0; dc < 3; dc++ {
			if b[br+dr][bc+dc] == v {
				return false
			}
		}
	}
	if r == c {
		for i := 0; i < 9; i++ {
			if b[i][i] == v {
				return false
			}
		}
	}
	if r+c == 8 {
		for i := 0; i < 9; i++ {
			if b[i][8-i] == v {
				return false
			}
		}
	}
	return true
}

func findEmpty(b *[9][9]uint8) (int, int, bool) {
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if b[r][c] == 0 {
				return r, c, true
			}
		}
	}
	return 0, 0, false
}

func conflictingGivens(b *[9][9]uint8) bool {
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			v := b[r][c]
			if v == 0 {
				continue
			}
			b[r][c] = 0
			ok := isValid(b, r, c, v)
			b[r][c] = v
			if !ok {
				return true
			}
		}
	}
	return false
}
