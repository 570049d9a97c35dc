package bot

import (
	"github.com/iamasit07/4-in-a-row-ai/backend/internal/domain"
)

// FindCriticalMove looks for a column that wins immediately for aiPlayer, or
// failing that a column the opponent would win with on their next turn.
// Ties go to the lowest column. ok is false when neither exists.
func FindCriticalMove(board domain.Board, aiPlayer domain.PlayerID) (column int, ok bool) {
	if col, found := winningColumn(board, aiPlayer); found {
		return col, true
	}

	if col, found := winningColumn(board, aiPlayer.Opponent()); found {
		return col, true
	}

	return -1, false
}

// winningColumn simulates a drop for player in every legal column. board is
// a value, so the caller's board is never touched.
func winningColumn(board domain.Board, player domain.PlayerID) (int, bool) {
	for _, col := range domain.GetValidMoves(board) {
		testBoard, row, err := domain.DropDisk(board, col, player)
		if err != nil {
			continue
		}
		if domain.CheckWinAt(testBoard, row, col, player) {
			return col, true
		}
	}
	return -1, false
}
