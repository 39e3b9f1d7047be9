package solver

import "errors"

var (
	// ErrContradiction indicates propagation emptied a cell's candidate set;
	// the current branch cannot lead to a solution.
	ErrContradiction = errors.New("solver: contradiction: a cell has no candidates left")
	// ErrUnsolvable indicates the search exhausted every branch without
	// reaching a fully determined board.
	ErrUnsolvable = errors.New("solver: search exhausted without a solution")
)
