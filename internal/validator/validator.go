package validator

import (
	"context"

	"svw.info/diagsudoku/internal/domain"
	"svw.info/diagsudoku/internal/topology"
)

// Fast checks every unit for duplicate committed digits using bitmasks.
// Cells still holding several candidates are ignored, so it works on partial
// boards as well as finished ones.
type Fast struct{}

func New() *Fast { return &Fast{} }

func (v *Fast) Validate(ctx context.Context, b domain.Board) (bool, []domain.Cell, error) {
	conf := make([]domain.Cell, 0, 8)
	seen := make(map[domain.Cell]bool)
	for _, u := range topology.Units() {
		m := 0
		for _, cell := range u.Cells {
			val := b[cell]
			if len(val) != 1 {
				continue
			}
			bit := 1 << (val[0] - '0')
			if m&bit != 0 && !seen[cell] {
				conf = append(conf, cell)
				seen[cell] = true
			}
			m |= bit
		}
	}
	return len(conf) == 0, conf, nil
}

// Complete reports whether b is a fully determined board satisfying all 29
// constraints.
func (v *Fast) Complete(ctx context.Context, b domain.Board) (bool, error) {
	if !b.Solved() {
		return false, nil
	}
	ok, _, err := v.Validate(ctx, b)
	return ok, err
}
