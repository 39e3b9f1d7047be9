package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"svw.info/diagsudoku/internal/hint"
	"svw.info/diagsudoku/internal/parser"
	"svw.info/diagsudoku/internal/solver"
	"svw.info/diagsudoku/internal/validator"
)

const diagGrid = "2.............62....1....7...6..8...3...9...7...6..4...4....8....52.............3"

func newService() *Service {
	return NewService(solver.NewEngine(solver.TwinsRefiner{}), validator.New(), hint.NewForced(), nil)
}

func TestSolveGrid(t *testing.T) {
	uc := newService()
	res, err := uc.SolveGrid(context.Background(), diagGrid)
	require.NoError(t, err)
	assert.True(t, res.Board.Solved())
	assert.NotEmpty(t, res.Trace)
	assert.Positive(t, res.Stats.Nodes)

	ok, conflicts, err := uc.Validate(context.Background(), res.Board)
	require.NoError(t, err)
	assert.True(t, ok, "conflicts: %v", conflicts)
}

func TestSolveGridRejectsBadInput(t *testing.T) {
	uc := newService()
	_, err := uc.SolveGrid(context.Background(), "short")
	assert.ErrorIs(t, err, parser.ErrGridLength)
}

func TestSolveGridIsReentrant(t *testing.T) {
	// two solves must not share trace state
	uc := newService()
	first, err := uc.SolveGrid(context.Background(), diagGrid)
	require.NoError(t, err)
	second, err := uc.SolveGrid(context.Background(), diagGrid)
	require.NoError(t, err)
	assert.Equal(t, len(first.Trace), len(second.Trace))
}

func TestUnconfiguredDependencies(t *testing.T) {
	uc := &Service{}
	_, err := uc.SolveGrid(context.Background(), diagGrid)
	assert.Error(t, err)
	_, _, err = uc.Validate(context.Background(), nil)
	assert.Error(t, err)
	_, _, err = uc.Hint(context.Background(), diagGrid)
	assert.Error(t, err)
	assert.Error(t, uc.Save(context.Background(), nil))
	_, err = uc.Load(context.Background(), "x")
	assert.Error(t, err)
	_, err = uc.List(context.Background())
	assert.Error(t, err)
}
