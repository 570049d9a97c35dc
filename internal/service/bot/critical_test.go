package bot

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/iamasit07/4-in-a-row-ai/backend/internal/domain"
)

func play(t *testing.T, cols ...int) domain.Board {
	t.Helper()
	g := domain.NewGame()
	for _, c := range cols {
		if _, err := g.MakeMove(c); err != nil {
			t.Fatalf("move %d: %v", c, err)
		}
	}
	return g.Board
}

func TestFindCriticalMoveNoneOnEmptyBoard(t *testing.T) {
	col, ok := FindCriticalMove(domain.NewBoard(), domain.Player2)
	assert.False(t, ok)
	assert.Equal(t, -1, col)
}

func TestFindCriticalMoveWinsFirst(t *testing.T) {
	// Player1 has three on the bottom row (0..2), Player2 three in column 6.
	b := play(t, 0, 6, 1, 6, 2, 6)

	col, ok := FindCriticalMove(b, domain.Player1)
	assert.True(t, ok)
	assert.Equal(t, 3, col)

	// Player2 prefers its own win over blocking.
	col, ok = FindCriticalMove(b, domain.Player2)
	assert.True(t, ok)
	assert.Equal(t, 6, col)
}

func TestFindCriticalMoveBlocks(t *testing.T) {
	// Player1 has 0,1,2 on the bottom row; Player2 is scattered.
	b := play(t, 0, 0, 1, 1, 2, 5)

	col, ok := FindCriticalMove(b, domain.Player2)
	assert.True(t, ok)
	assert.Equal(t, 3, col)
}

func TestFindCriticalMoveLowestColumnTieBreak(t *testing.T) {
	// Player1 has 1,2,3 on the bottom row: both 0 and 4 win.
	b := play(t, 1, 1, 2, 2, 3, 6)

	col, ok := FindCriticalMove(b, domain.Player1)
	assert.True(t, ok)
	assert.Equal(t, 0, col)
}

func TestFindCriticalMoveDoesNotMutateBoard(t *testing.T) {
	b := play(t, 0, 0, 1, 1, 2, 5)
	before := b
	FindCriticalMove(b, domain.Player2)
	assert.Equal(t, before, b)
}

func TestFindCriticalMoveIgnoresFullColumns(t *testing.T) {
	// Column 0 is full; a vertical "threat" there is not playable.
	b := play(t, 0, 0, 0, 0, 0, 0)
	_, ok := FindCriticalMove(b, domain.Player1)
	assert.False(t, ok)
}

func TestRandomValidMove(t *testing.T) {
	b := play(t, 0, 0, 0, 0, 0, 0)

	seen := map[int]bool{}
	for i := 0; i < 6; i++ {
		i := i
		col, ok := RandomValidMove(b, func(n int) int { return i % n })
		assert.True(t, ok)
		assert.NotEqual(t, 0, col)
		seen[col] = true
	}
	assert.Len(t, seen, 6)

	for i := 0; i < 50; i++ {
		col, ok := RandomValidMove(b, nil)
		assert.True(t, ok)
		assert.Contains(t, domain.GetValidMoves(b), col)
	}
}

func TestRandomValidMoveFullBoard(t *testing.T) {
	var b domain.Board
	for r := 0; r < domain.Rows; r++ {
		for c := 0; c < domain.Columns; c++ {
			b[r][c] = domain.Player1
		}
	}
	col, ok := RandomValidMove(b, nil)
	assert.False(t, ok)
	assert.Equal(t, -1, col)
}
