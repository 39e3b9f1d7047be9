package solver

import (
	"svw.info/diagsudoku/internal/domain"
	"svw.info/diagsudoku/internal/topology"
	"svw.info/diagsudoku/internal/trace"
)

// Assign is the only sanctioned mutation primitive: it sets the cell's
// candidate set and, when the set is a single digit, appends a snapshot of
// the whole board to the log. Every commitment made by the engine routes
// through here so the trace stays complete and ordered.
func Assign(b domain.Board, cell domain.Cell, cands domain.Candidates, log *trace.Log) {
	b[cell] = cands
	if len(cands) == 1 {
		log.Append(b)
	}
}

// Eliminate removes each solved cell's digit from the candidate sets of all
// its peers. A single pass need not reach a fixed point; Reduce iterates it.
// Visitation is in canonical cell order, though the fixed point does not
// depend on it.
func Eliminate(b domain.Board, log *trace.Log) {
	for _, cell := range topology.Cells() {
		v := b[cell]
		if len(v) != 1 {
			continue
		}
		d := v[0]
		for _, peer := range topology.PeersOf(cell) {
			next := b[peer].Remove(d)
			if next != b[peer] {
				Assign(b, peer, next, log)
			}
		}
	}
}

// OnlyChoice commits, for each unit, any digit that only one cell in that
// unit still admits. Tallies are computed from a snapshot taken at the start
// of the pass, so commitments made during the pass cannot skew later tallies.
func OnlyChoice(b domain.Board, log *trace.Log) {
	snap := b.Clone()
	for _, u := range topology.Units() {
		for i := 0; i < len(domain.AllDigits); i++ {
			d := domain.AllDigits[i]
			var found domain.Cell
			n := 0
			for _, cell := range u.Cells {
				if snap[cell].Has(d) {
					found = cell
					n++
					if n > 1 {
						break
					}
				}
			}
			if n == 1 && b[found] != domain.AllDigits[i:i+1] {
				Assign(b, found, domain.AllDigits[i:i+1], log)
			}
		}
	}
}

// NakedTwins returns a board with the naked-twins strategy applied once: for
// every unit, whenever two distinct cells hold the same two-candidate set,
// those two digits are removed from every other cell in that unit. Pair
// detection reads the input board, removal writes to the returned copy.
//
// Removals deliberately bypass Assign: a twin elimination that happens to
// leave a single candidate is not recorded in the trace. This mirrors the
// historical behavior of the strategy; see DESIGN.md.
func NakedTwins(b domain.Board) domain.Board {
	out := b.Clone()
	for _, u := range topology.Units() {
		for i, first := range u.Cells {
			pair := b[first]
			if len(pair) != 2 {
				continue
			}
			for _, second := range u.Cells[i+1:] {
				if b[second] != pair {
					continue
				}
				for _, other := range u.Cells {
					if other == first || other == second {
						continue
					}
					out[other] = out[other].Remove(pair[0]).Remove(pair[1])
				}
			}
		}
	}
	return out
}

// Reduce runs elimination followed by only-choice until a full cycle adds no
// newly solved cell, checking for contradiction after each cycle. It mutates
// b in place; callers own their copy.
func Reduce(b domain.Board, log *trace.Log) error {
	for {
		before := b.SolvedCount()
		Eliminate(b, log)
		OnlyChoice(b, log)
		if b.Contradictory() {
			return ErrContradiction
		}
		if b.SolvedCount() == before {
			return nil
		}
	}
}
