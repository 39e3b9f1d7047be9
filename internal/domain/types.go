package domain

// Cell identifies one of the 81 grid positions, e.g. "A1" (row letter A-I,
// column digit 1-9).
type Cell string

// Candidates is the set of digits still admissible for a cell, stored as a
// string of distinct digit characters in ascending order.
type Candidates string

// AllDigits is the full candidate set of an unknown cell.
const AllDigits Candidates = "123456789"

// Has reports whether digit d is still a candidate.
func (c Candidates) Has(d byte) bool {
	for i := 0; i < len(c); i++ {
		if c[i] == d {
			return true
		}
	}
	return false
}

// Remove returns the candidate set without digit d.
func (c Candidates) Remove(d byte) Candidates {
	for i := 0; i < len(c); i++ {
		if c[i] == d {
			return c[:i] + c[i+1:]
		}
	}
	return c
}

// Single reports whether exactly one digit remains.
func (c Candidates) Single() bool { return len(c) == 1 }

// Empty reports whether no digit remains. An empty set is the contradiction
// signal; it never occurs on a consistent board.
func (c Candidates) Empty() bool { return len(c) == 0 }

// Board maps every cell to its current candidate set.
type Board map[Cell]Candidates

// Clone returns an independent deep copy.
func (b Board) Clone() Board {
	out := make(Board, len(b))
	for c, v := range b {
		out[c] = v
	}
	return out
}

// Solved reports whether every cell is down to a single digit.
func (b Board) Solved() bool {
	for _, v := range b {
		if len(v) != 1 {
			return false
		}
	}
	return true
}

// Contradictory reports whether some cell has run out of candidates.
func (b Board) Contradictory() bool {
	for _, v := range b {
		if len(v) == 0 {
			return true
		}
	}
	return false
}

// SolvedCount returns the number of single-digit cells.
func (b Board) SolvedCount() int {
	n := 0
	for _, v := range b {
		if len(v) == 1 {
			n++
		}
	}
	return n
}

// Hint describes the next forced placement for the UI.
type Hint struct {
	Cell    Cell   `json:"cell"`
	Digit   string `json:"digit"`
	Unit    string `json:"unit,omitempty"`
	Message string `json:"message,omitempty"`
}

// Puzzle is a persisted solve result with its assignment trace.
type Puzzle struct {
	ID         string  `json:"id,omitempty"`
	Name       string  `json:"name,omitempty"`
	Grid       string  `json:"grid"`
	Solution   Board   `json:"solution,omitempty"`
	Trace      []Board `json:"trace,omitempty"`
	Nodes      int     `json:"nodes,omitempty"`
	DurationMs int64   `json:"durationMs,omitempty"`
	CreatedAt  int64   `json:"createdAt,omitempty"`
}

// PuzzleMeta is a lightweight listing entry.
type PuzzleMeta struct {
	ID        string `json:"id"`
	Name      string `json:"name,omitempty"`
	CreatedAt int64  `json:"createdAt"`
}
