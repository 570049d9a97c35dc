package domain

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func randomBoard(rng *rand.Rand, moves int) Board {
	b := NewBoard()
	p := Player1
	for i := 0; i < moves; i++ {
		valid := GetValidMoves(b)
		if len(valid) == 0 {
			break
		}
		b, _, _ = DropDisk(b, valid[rng.Intn(len(valid))], p)
		p = p.Opponent()
	}
	return b
}

func TestNewBoardIsEmpty(t *testing.T) {
	b := NewBoard()
	for r := 0; r < Rows; r++ {
		for c := 0; c < Columns; c++ {
			assert.Equal(t, Empty, b[r][c])
		}
	}
	assert.Equal(t, []int{0, 1, 2, 3, 4, 5, 6}, GetValidMoves(b))
	assert.False(t, IsBoardFull(b))
}

func TestDropDiskStacksFromBottom(t *testing.T) {
	b := NewBoard()
	players := []PlayerID{Player1, Player2, Player1, Player2, Player1}
	wantRows := []int{5, 4, 3, 2, 1}

	for i, p := range players {
		var row int
		var err error
		b, row, err = DropDisk(b, 3, p)
		require.NoError(t, err)
		assert.Equal(t, wantRows[i], row)
	}

	assert.Equal(t, Player1, b[5][3])
	assert.Equal(t, Player2, b[4][3])
	assert.Equal(t, Player1, b[3][3])
	assert.Equal(t, Player2, b[2][3])
	assert.Equal(t, Player1, b[1][3])
	assert.Equal(t, Empty, b[0][3])
}

func TestDropDiskRejectsOutOfRange(t *testing.T) {
	b := NewBoard()
	b, _, _ = DropDisk(b, 2, Player1)

	for _, col := range []int{-1, Columns, 42} {
		next, row, err := DropDisk(b, col, Player2)
		assert.ErrorIs(t, err, ErrInvalidMove)
		assert.Equal(t, -1, row)
		assert.Equal(t, b, next)
	}
}

func TestDropDiskRejectsFullColumn(t *testing.T) {
	b := NewBoard()
	p := Player1
	for i := 0; i < Rows; i++ {
		b, _, _ = DropDisk(b, 0, p)
		p = p.Opponent()
	}
	require.False(t, IsValidMove(b, 0))

	next, row, err := DropDisk(b, 0, p)
	assert.ErrorIs(t, err, ErrColumnFull)
	assert.Equal(t, -1, row)
	assert.Equal(t, b, next)
	assert.NotContains(t, GetValidMoves(b), 0)
}

func TestDropDiskChangesExactlyOneCell(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	for i := 0; i < 200; i++ {
		b := randomBoard(rng, rng.Intn(Rows*Columns))
		col := rng.Intn(Columns+2) - 1

		next, row, err := DropDisk(b, col, Player2)
		if err != nil {
			assert.Equal(t, b, next)
			continue
		}

		changed := 0
		for r := 0; r < Rows; r++ {
			for c := 0; c < Columns; c++ {
				if b[r][c] != next[r][c] {
					changed++
					assert.Equal(t, Empty, b[r][c])
					assert.Equal(t, Player2, next[r][c])
					assert.Equal(t, row, r)
					assert.Equal(t, col, c)
				}
			}
		}
		assert.Equal(t, 1, changed)
		// lowest empty row: everything below is occupied
		for r := row + 1; r < Rows; r++ {
			assert.NotEqual(t, Empty, b[r][col])
		}
	}
}

func TestIsBoardFullMatchesValidMoves(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	for i := 0; i < 200; i++ {
		b := randomBoard(rng, rng.Intn(Rows*Columns+1))
		assert.Equal(t, IsBoardFull(b), len(GetValidMoves(b)) == 0)
	}
}

func TestBoardString(t *testing.T) {
	b := NewBoard()
	b, _, _ = DropDisk(b, 0, Player1)
	b, _, _ = DropDisk(b, 6, Player2)

	want := "0,0,0,0,0,0,0\n" +
		"0,0,0,0,0,0,0\n" +
		"0,0,0,0,0,0,0\n" +
		"0,0,0,0,0,0,0\n" +
		"0,0,0,0,0,0,0\n" +
		"1,0,0,0,0,0,2"
	assert.Equal(t, want, b.String())
	assert.Equal(t, 2, b.Cells()[5][6])
}
