package storage

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"svw.info/diagsudoku/internal/domain"
)

func TestSaveLoadRoundtrip(t *testing.T) {
	s := NewFS(t.TempDir())
	ctx := context.Background()

	p := &domain.Puzzle{
		ID:   "p1",
		Name: "diagonal example",
		Grid: "2...",
		Solution: domain.Board{
			"A1": "2",
			"A2": "6",
		},
		Trace: []domain.Board{
			{"A1": "2", "A2": "123456789"},
			{"A1": "2", "A2": "6"},
		},
		Nodes:     12,
		CreatedAt: 42,
	}
	require.NoError(t, s.Save(ctx, p))

	got, err := s.Load(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, p.Grid, got.Grid)
	assert.Equal(t, p.Solution, got.Solution)
	require.Len(t, got.Trace, 2)
	assert.Equal(t, domain.Candidates("123456789"), got.Trace[0]["A2"])
	assert.Equal(t, 12, got.Nodes)
}

func TestSaveRequiresID(t *testing.T) {
	s := NewFS(t.TempDir())
	assert.Error(t, s.Save(context.Background(), &domain.Puzzle{}))
	assert.Error(t, s.Save(context.Background(), nil))
}

func TestList(t *testing.T) {
	s := NewFS(t.TempDir())
	ctx := context.Background()

	require.NoError(t, s.Save(ctx, &domain.Puzzle{ID: "a", Name: "first", CreatedAt: 1}))
	require.NoError(t, s.Save(ctx, &domain.Puzzle{ID: "b", Name: "second", CreatedAt: 2}))

	metas, err := s.List(ctx)
	require.NoError(t, err)
	require.Len(t, metas, 2)
	ids := []string{metas[0].ID, metas[1].ID}
	assert.ElementsMatch(t, []string{"a", "b"}, ids)
}

func TestListMissingDirIsEmpty(t *testing.T) {
	s := NewFS(t.TempDir() + "/absent")
	metas, err := s.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, metas)
}

func TestLoadMissing(t *testing.T) {
	s := NewFS(t.TempDir())
	_, err := s.Load(context.Background(), "ghost")
	assert.Error(t, err)
}
