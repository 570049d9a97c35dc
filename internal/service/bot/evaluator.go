package bot

import (
	"github.com/iamasit07/4-in-a-row-ai/backend/internal/domain"
)

const (
	// Score priorities (from highest to lowest)
	SCORE_WIN_NOW           = 100000 // Bot can win immediately
	SCORE_BLOCK_WIN         = 10000  // Block opponent's immediate win
	SCORE_CREATE_WIN_THREAT = 8000   // Create a position where bot can win next move
	SCORE_BLOCK_WIN_THREAT  = 5000   // Block opponent's potential win setup
	SCORE_THREE_IN_ROW      = 400    // Bot has 3 in a row (good threat)
	SCORE_TWO_IN_ROW        = 100    // Bot has 2 in a row
	SCORE_SINGLE            = 25     // single connection
	SCORE_CENTER            = 30     // Center column bonus
	SCORE_NEAR_CENTER       = 20     // Near center bonus
	SCORE_EDGE              = 5      // two columns from center
	SCORE_GIFT_PENALTY      = 9000   // playing here lets the opponent win on top
)

var directions = [][2]int{
	{0, 1},  // horizontal
	{1, 0},  // vertical
	{1, 1},  // diagonal \
	{1, -1}, // diagonal /
}

// Evaluate threats (3-in-a-row, 2-in-a-row) for a given position
func evaluateThreats(board domain.Board, row, col int, player domain.PlayerID) int {
	score := 0

	for _, dir := range directions {
		dRow, dCol := dir[0], dir[1]

		posCount := domain.CountDiskInDirection(board, row, col, dRow, dCol, player)
		negCount := domain.CountDiskInDirection(board, row, col, -dRow, -dCol, player)
		total := posCount + negCount

		// No point in counting if we can't extend
		if !checkSpaceForExtension(board, row, col, dRow, dCol, posCount, negCount) {
			continue
		}

		switch {
		case total >= 2:
			score += SCORE_THREE_IN_ROW
		case total == 1:
			score += SCORE_TWO_IN_ROW
		default:
			score += SCORE_SINGLE
		}
	}

	return score
}

// evaluateWinningThreat scores how many immediate wins player would have on
// this board. Two or more cannot both be blocked.
func evaluateWinningThreat(board domain.Board, player domain.PlayerID) int {
	winningMoves := 0
	for _, col := range domain.GetValidMoves(board) {
		testBoard, row, _ := domain.DropDisk(board, col, player)
		if domain.CheckWinAt(testBoard, row, col, player) {
			winningMoves++
		}
	}

	switch {
	case winningMoves >= 2:
		return SCORE_CREATE_WIN_THREAT
	case winningMoves == 1:
		return SCORE_CREATE_WIN_THREAT / 4
	}
	return 0
}

// givesAwayWin reports whether playing col lets the opponent win by dropping
// directly on top of it.
func givesAwayWin(board domain.Board, col int, player domain.PlayerID) bool {
	afterMove, _, err := domain.DropDisk(board, col, player)
	if err != nil {
		return false
	}
	opponent := player.Opponent()
	afterReply, row, err := domain.DropDisk(afterMove, col, opponent)
	if err != nil {
		return false
	}
	return domain.CheckWinAt(afterReply, row, col, opponent)
}

// Helper: check if there's room to extend a line
func checkSpaceForExtension(board domain.Board, row, col, dRow, dCol, posCount, negCount int) bool {
	posRow := row + dRow*(posCount+1)
	posCol := col + dCol*(posCount+1)
	if isInBounds(posRow, posCol) && board[posRow][posCol] == domain.Empty && isPlayableSpace(board, posRow, posCol) {
		return true
	}

	negRow := row - dRow*(negCount+1)
	negCol := col - dCol*(negCount+1)
	if isInBounds(negRow, negCol) && board[negRow][negCol] == domain.Empty && isPlayableSpace(board, negRow, negCol) {
		return true
	}

	return false
}

// Check if a space is actually playable (respects gravity)
func isPlayableSpace(board domain.Board, row, col int) bool {
	if row == domain.Rows-1 {
		return true
	}
	return board[row+1][col] != domain.Empty
}

func isInBounds(row, col int) bool {
	return row >= 0 && row < domain.Rows && col >= 0 && col < domain.Columns
}
