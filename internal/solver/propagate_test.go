package solver

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"svw.info/diagsudoku/internal/domain"
	"svw.info/diagsudoku/internal/parser"
	"svw.info/diagsudoku/internal/topology"
	"svw.info/diagsudoku/internal/trace"
	"svw.info/diagsudoku/internal/validator"
)

const diagGrid = "2.............62....1....7...6..8...3...9...7...6..4...4....8....52.............3"

func emptyBoard(t *testing.T) domain.Board {
	t.Helper()
	b, err := parser.Parse(strings.Repeat(".", 81))
	require.NoError(t, err)
	return b
}

func TestEliminateRemovesFromPeers(t *testing.T) {
	b := emptyBoard(t)
	b["A1"] = "5"
	Eliminate(b, nil)

	for _, p := range topology.PeersOf("A1") {
		assert.False(t, b[p].Has('5'), "peer %s still admits 5", p)
		assert.Len(t, string(b[p]), 8)
	}
	// non-peers untouched
	assert.Equal(t, domain.AllDigits, b["B4"])
	assert.Equal(t, domain.Candidates("5"), b["A1"])
}

func TestEliminateTracesPeerSingletons(t *testing.T) {
	b := emptyBoard(t)
	// leave A9 with only '9' admissible after elimination
	for i, d := range []domain.Candidates{"1", "2", "3", "4", "5", "6", "7", "8"} {
		b[topology.Cells()[i]] = d
	}
	log := trace.NewLog()
	Eliminate(b, log)

	assert.Equal(t, domain.Candidates("9"), b["A9"])
	require.NotZero(t, log.Len())
	last := log.Snapshots()[log.Len()-1]
	assert.Equal(t, domain.Candidates("9"), last["A9"])
}

func TestEliminateKeepsConsistentBoardNonEmpty(t *testing.T) {
	b, err := parser.Parse(diagGrid)
	require.NoError(t, err)
	Eliminate(b, nil)
	assert.False(t, b.Contradictory())
}

func TestOnlyChoiceCommitsUniqueFit(t *testing.T) {
	b := emptyBoard(t)
	// make A1 the only cell in row A that still admits '1'
	for _, cell := range topology.Cells()[1:9] {
		b[cell] = b[cell].Remove('1')
	}
	OnlyChoice(b, nil)
	assert.Equal(t, domain.Candidates("1"), b["A1"])
}

func TestOnlyChoiceNeverConflictsWithinUnit(t *testing.T) {
	b, err := parser.Parse(diagGrid)
	require.NoError(t, err)
	Eliminate(b, nil)
	OnlyChoice(b, nil)

	ok, conflicts, err := validator.New().Validate(context.Background(), b)
	require.NoError(t, err)
	assert.True(t, ok, "only-choice introduced conflicts: %v", conflicts)
}

func TestNakedTwins(t *testing.T) {
	b := emptyBoard(t)
	b["A1"] = "23"
	b["A2"] = "23"
	out := NakedTwins(b)

	// the paired cells themselves are untouched
	assert.Equal(t, domain.Candidates("23"), out["A1"])
	assert.Equal(t, domain.Candidates("23"), out["A2"])
	// other members of the row unit lose both digits
	for _, cell := range []domain.Cell{"A3", "A4", "A5", "A6", "A7", "A8", "A9"} {
		assert.Equal(t, domain.Candidates("1456789"), out[cell], "cell %s", cell)
	}
	// A1 and A2 share the top-left box, so its members lose the digits too
	for _, cell := range []domain.Cell{"B1", "B2", "B3", "C1", "C2", "C3"} {
		assert.Equal(t, domain.Candidates("1456789"), out[cell], "cell %s", cell)
	}
	// column-only peers of a single pair member are not a shared unit
	assert.Equal(t, domain.AllDigits, out["D1"])
	// input board is untouched
	assert.Equal(t, domain.AllDigits, b["A3"])
}

func TestReduceIdempotentAtFixedPoint(t *testing.T) {
	b, err := parser.Parse(diagGrid)
	require.NoError(t, err)
	require.NoError(t, Reduce(b, nil))

	again := b.Clone()
	require.NoError(t, Reduce(again, nil))
	assert.Equal(t, b, again)
}

func TestReduceDetectsContradiction(t *testing.T) {
	b, err := parser.Parse("22" + strings.Repeat(".", 79))
	require.NoError(t, err)
	err = Reduce(b, nil)
	assert.ErrorIs(t, err, ErrContradiction)
}
