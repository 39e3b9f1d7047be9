package hint

import (
	"context"
	"fmt"

	"svw.info/diagsudoku/internal/domain"
	"svw.info/diagsudoku/internal/solver"
	"svw.info/diagsudoku/internal/topology"
)

// Forced suggests the next forced placement: a naked single (one elimination
// pass leaves a lone candidate) or a hidden single (a digit that fits only
// one cell of some unit).
type Forced struct{}

func NewForced() *Forced { return &Forced{} }

func (h *Forced) Hint(ctx context.Context, b domain.Board) (domain.Hint, bool, error) {
	work := b.Clone()
	solver.Eliminate(work, nil)

	// naked single: eliminated down to one candidate
	for _, cell := range topology.Cells() {
		if len(b[cell]) > 1 && len(work[cell]) == 1 {
			d := string(work[cell])
			return domain.Hint{
				Cell:    cell,
				Digit:   d,
				Message: fmt.Sprintf("Single: only %s fits in %s", d, cell),
			}, true, nil
		}
	}

	// hidden single: sole home for a digit within a unit
	for _, u := range topology.Units() {
		for i := 0; i < len(domain.AllDigits); i++ {
			d := domain.AllDigits[i]
			var found domain.Cell
			n := 0
			for _, cell := range u.Cells {
				if work[cell].Has(d) {
					found = cell
					n++
					if n > 1 {
						break
					}
				}
			}
			if n == 1 && len(b[found]) > 1 {
				return domain.Hint{
					Cell:    found,
					Digit:   string(domain.AllDigits[i : i+1]),
					Unit:    u.Kind.String(),
					Message: fmt.Sprintf("Hidden single: %c goes in %s, the only place in its %s", d, found, u.Kind),
				}, true, nil
			}
		}
	}
	return domain.Hint{}, false, nil
}
