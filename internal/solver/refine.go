package solver

import "svw.info/diagsudoku/internal/domain"

// Refiner is the pluggable post-propagation step applied after each Reduce,
// before the search decides whether to branch.
type Refiner interface {
	Refine(b domain.Board) domain.Board
}

// Identity applies no refinement.
type Identity struct{}

func (Identity) Refine(b domain.Board) domain.Board { return b }

// TwinsRefiner applies the naked-twins strategy once per Refine call.
type TwinsRefiner struct{}

func (TwinsRefiner) Refine(b domain.Board) domain.Board { return NakedTwins(b) }

// RefinerFor maps a config/flag value ("twins" or "none") to a Refiner,
// defaulting to naked twins.
func RefinerFor(name string) Refiner {
	if name == "none" {
		return Identity{}
	}
	return TwinsRefiner{}
}
