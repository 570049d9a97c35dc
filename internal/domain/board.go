package domain

import (
	"strconv"
	"strings"
)

// Board is the 6x7 grid. Row 0 is the top row (0 -> top and 5 -> bottom).
// It is a value type, so assigning a Board copies it.
type Board [Rows][Columns]PlayerID

func NewBoard() Board {
	return Board{}
}

func IsValidMove(board Board, column int) bool {
	if column < 0 || column >= Columns {
		return false
	}

	return board[0][column] == Empty
}

// DropDisk drops a piece into column and returns the resulting board and the
// row it settled in. On error the returned board is the input, unchanged.
func DropDisk(board Board, column int, player PlayerID) (Board, int, error) {
	if column < 0 || column >= Columns {
		return board, -1, ErrInvalidMove
	}

	// shifting the disk from top to bottom till it
	// reaches the end or another disk
	for row := Rows - 1; row >= 0; row-- {
		if board[row][column] == Empty {
			next := board
			next[row][column] = player
			return next, row, nil
		}
	}

	return board, -1, ErrColumnFull
}

// gravity fills the top row of a column last, so a full top row means a full board
func IsBoardFull(board Board) bool {
	for c := 0; c < Columns; c++ {
		if board[0][c] == Empty {
			return false
		}
	}

	return true
}

// GetValidMoves returns the legal columns in ascending order.
func GetValidMoves(board Board) []int {
	validMoves := make([]int, 0, Columns)
	for col := 0; col < Columns; col++ {
		if board[0][col] == Empty {
			validMoves = append(validMoves, col)
		}
	}
	return validMoves
}

// this counts the number of disks in a specific direction
func CountDiskInDirection(board Board, row, column int, deltaRow, deltaCol int, player PlayerID) int {
	count := 0
	r, c := row+deltaRow, column+deltaCol
	for r >= 0 && r < Rows && c >= 0 && c < Columns && board[r][c] == player {
		count++
		r += deltaRow
		c += deltaCol
	}
	return count
}

// Cells converts the board to plain ints for JSON consumers.
func (b Board) Cells() [][]int {
	out := make([][]int, Rows)
	for r := 0; r < Rows; r++ {
		out[r] = make([]int, Columns)
		for c := 0; c < Columns; c++ {
			out[r][c] = int(b[r][c])
		}
	}
	return out
}

// String renders one row per line with comma separated cells, top row first.
func (b Board) String() string {
	var sb strings.Builder
	for r := 0; r < Rows; r++ {
		if r > 0 {
			sb.WriteByte('\n')
		}
		for c := 0; c < Columns; c++ {
			if c > 0 {
				sb.WriteByte(',')
			}
			sb.WriteString(strconv.Itoa(int(b[r][c])))
		}
	}
	return sb.String()
}
