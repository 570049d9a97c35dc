package domain

// CheckWin scans the whole board for four in a row for player.
func CheckWin(board Board, player PlayerID) bool {
	if player == Empty {
		return false
	}

	// horizontal
	for r := 0; r < Rows; r++ {
		for c := 0; c <= Columns-ToWin; c++ {
			if board[r][c] == player && board[r][c+1] == player && board[r][c+2] == player && board[r][c+3] == player {
				return true
			}
		}
	}

	// vertical
	for r := 0; r <= Rows-ToWin; r++ {
		for c := 0; c < Columns; c++ {
			if board[r][c] == player && board[r+1][c] == player && board[r+2][c] == player && board[r+3][c] == player {
				return true
			}
		}
	}

	// diagonal \
	for r := 0; r <= Rows-ToWin; r++ {
		for c := 0; c <= Columns-ToWin; c++ {
			if board[r][c] == player && board[r+1][c+1] == player && board[r+2][c+2] == player && board[r+3][c+3] == player {
				return true
			}
		}
	}

	// diagonal /
	for r := ToWin - 1; r < Rows; r++ {
		for c := 0; c <= Columns-ToWin; c++ {
			if board[r][c] == player && board[r-1][c+1] == player && board[r-2][c+2] == player && board[r-3][c+3] == player {
				return true
			}
		}
	}

	return false
}

// CheckWinAt only checks lines passing through (row, column). After a drop
// at that cell it agrees with CheckWin.
func CheckWinAt(board Board, row, column int, player PlayerID) bool {
	if player == Empty || row < 0 || row >= Rows || column < 0 || column >= Columns {
		return false
	}
	if board[row][column] != player {
		return false
	}

	directions := [][2]int{
		{0, 1},  // horizontal
		{1, 0},  // vertical
		{1, 1},  // diagonal \
		{1, -1}, // diagonal /
	}

	for _, dir := range directions {
		total := 1 +
			CountDiskInDirection(board, row, column, dir[0], dir[1], player) +
			CountDiskInDirection(board, row, column, -dir[0], -dir[1], player)
		if total >= ToWin {
			return true
		}
	}

	return false
}
