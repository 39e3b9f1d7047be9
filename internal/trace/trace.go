// Package trace records the ordered board snapshots taken at each
// single-value commitment. The log is owned by the caller of the solver and
// passed down explicitly; it is observational only and never read back by the
// solving algorithm.
package trace

import (
	"sync"

	"svw.info/diagsudoku/internal/domain"
)

// Log is an append-only snapshot sequence. The zero value is not usable; use
// NewLog. A nil *Log is valid and discards appends, for callers that do not
// need a trace. Appends are mutex-guarded so sibling search branches may
// share one log.
type Log struct {
	mu    sync.Mutex
	snaps []domain.Board
}

func NewLog() *Log { return &Log{} }

// Append stores an independent copy of b as the next snapshot.
func (l *Log) Append(b domain.Board) {
	if l == nil {
		return
	}
	snap := b.Clone()
	l.mu.Lock()
	l.snaps = append(l.snaps, snap)
	l.mu.Unlock()
}

// Snapshots returns the recorded boards in commitment order. The returned
// slice is a copy; the boards themselves are the stored snapshots and must
// not be mutated.
func (l *Log) Snapshots() []domain.Board {
	if l == nil {
		return nil
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]domain.Board, len(l.snaps))
	copy(out, l.snaps)
	return out
}

// Len returns the number of snapshots recorded so far.
func (l *Log) Len() int {
	if l == nil {
		return 0
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.snaps)
}
