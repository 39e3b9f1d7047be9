package trace

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"svw.info/diagsudoku/internal/domain"
)

func TestAppendCopies(t *testing.T) {
	l := NewLog()
	b := domain.Board{"A1": "1", "A2": domain.AllDigits}
	l.Append(b)

	// mutating the source after the append must not change the snapshot
	b["A1"] = "9"
	snaps := l.Snapshots()
	require.Len(t, snaps, 1)
	assert.Equal(t, domain.Candidates("1"), snaps[0]["A1"])
}

func TestOrderPreserved(t *testing.T) {
	l := NewLog()
	for _, v := range []domain.Candidates{"1", "2", "3"} {
		l.Append(domain.Board{"A1": v})
	}
	snaps := l.Snapshots()
	require.Len(t, snaps, 3)
	assert.Equal(t, domain.Candidates("1"), snaps[0]["A1"])
	assert.Equal(t, domain.Candidates("2"), snaps[1]["A1"])
	assert.Equal(t, domain.Candidates("3"), snaps[2]["A1"])
	assert.Equal(t, 3, l.Len())
}

func TestNilLogIsDiscard(t *testing.T) {
	var l *Log
	l.Append(domain.Board{"A1": "1"})
	assert.Nil(t, l.Snapshots())
	assert.Equal(t, 0, l.Len())
}
