package validator

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"svw.info/diagsudoku/internal/parser"
)

func TestValidateCleanBoard(t *testing.T) {
	b, err := parser.Parse("2.............62....1....7...6..8...3...9...7...6..4...4....8....52.............3")
	require.NoError(t, err)
	ok, conflicts, err := New().Validate(context.Background(), b)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Empty(t, conflicts)
}

func TestValidateRowConflict(t *testing.T) {
	b, err := parser.Parse("44" + strings.Repeat(".", 79))
	require.NoError(t, err)
	ok, conflicts, err := New().Validate(context.Background(), b)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.NotEmpty(t, conflicts)
}

func TestValidateDiagonalConflict(t *testing.T) {
	// 5 at A1 and B2: consistent on rows, columns... they do share a box,
	// but the diagonal check must fire even for cells that share no box.
	grid := []byte(strings.Repeat(".", 81))
	grid[0] = '5'  // A1, main diagonal
	grid[40] = '5' // E5, main diagonal, different box
	b, err := parser.Parse(string(grid))
	require.NoError(t, err)
	ok, conflicts, err := New().Validate(context.Background(), b)
	require.NoError(t, err)
	assert.False(t, ok, "duplicate on the main diagonal must be a conflict")
	assert.NotEmpty(t, conflicts)
}

func TestCompleteRequiresSolvedBoard(t *testing.T) {
	b, err := parser.Parse(strings.Repeat(".", 81))
	require.NoError(t, err)
	ok, err := New().Complete(context.Background(), b)
	require.NoError(t, err)
	assert.False(t, ok)
}
