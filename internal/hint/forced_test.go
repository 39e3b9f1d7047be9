package hint

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"svw.info/diagsudoku/internal/domain"
	"svw.info/diagsudoku/internal/parser"
)

func TestNakedSingle(t *testing.T) {
	// row A holds 1-8, leaving only 9 for A9
	b, err := parser.Parse("12345678" + strings.Repeat(".", 73))
	require.NoError(t, err)

	h, found, err := NewForced().Hint(context.Background(), b)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, domain.Cell("A9"), h.Cell)
	assert.Equal(t, "9", h.Digit)
	assert.Contains(t, h.Message, "Single")
}

func TestHiddenSingle(t *testing.T) {
	// 1s at B5, C7, E2 and H3 share no unit with each other and leave A1
	// as the only home for 1 in row A and in the top-left box, while A1
	// itself keeps several candidates. The reporting unit depends on scan
	// order, so only cell and digit are pinned.
	grid := []byte(strings.Repeat(".", 81))
	grid[13] = '1' // B5
	grid[24] = '1' // C7
	grid[37] = '1' // E2
	grid[65] = '1' // H3
	b, err := parser.Parse(string(grid))
	require.NoError(t, err)

	h, found, err := NewForced().Hint(context.Background(), b)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, domain.Cell("A1"), h.Cell)
	assert.Equal(t, "1", h.Digit)
	assert.NotEmpty(t, h.Unit)
}

func TestNoForcedMove(t *testing.T) {
	b, err := parser.Parse(strings.Repeat(".", 81))
	require.NoError(t, err)
	_, found, err := NewForced().Hint(context.Background(), b)
	require.NoError(t, err)
	assert.False(t, found)
}
