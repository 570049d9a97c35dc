package bot

import (
	"github.com/iamasit07/4-in-a-row-ai/backend/internal/domain"
)

// scoreColumns rates every legal column for botPlayer. centerWeight scales
// the positional bonus; Hard plays with a heavier center preference.
func scoreColumns(board domain.Board, botPlayer domain.PlayerID, centerWeight int) map[int]int {
	validColumns := domain.GetValidMoves(board)
	scores := make(map[int]int, len(validColumns))
	opponent := botPlayer.Opponent()

	currentOpponentThreat := evaluateWinningThreat(board, opponent)

	for _, col := range validColumns {
		botBoard, botRow, _ := domain.DropDisk(board, col, botPlayer)
		oppBoard, oppRow, _ := domain.DropDisk(board, col, opponent)

		// === PHASE 1: immediate wins and blocks ===
		if domain.CheckWinAt(botBoard, botRow, col, botPlayer) {
			scores[col] += SCORE_WIN_NOW
		}
		if domain.CheckWinAt(oppBoard, oppRow, col, opponent) {
			scores[col] += SCORE_BLOCK_WIN
		}

		// === PHASE 2: create threats / reduce the opponent's threats ===
		scores[col] += evaluateWinningThreat(botBoard, botPlayer)
		if evaluateWinningThreat(botBoard, opponent) < currentOpponentThreat {
			scores[col] += SCORE_BLOCK_WIN_THREAT
		}
		if givesAwayWin(board, col, botPlayer) {
			scores[col] -= SCORE_GIFT_PENALTY
		}

		// === PHASE 3: current position strength ===
		scores[col] += evaluateThreats(botBoard, botRow, col, botPlayer)
		scores[col] += evaluateThreats(oppBoard, oppRow, col, opponent) / 2 // Half value for blocking vs creating

		// === PHASE 4: Positional bonuses (center preference) ===
		scores[col] += centerBonus(col) * centerWeight
	}

	return scores
}

func centerBonus(col int) int {
	distFromCenter := col - domain.Columns/2
	if distFromCenter < 0 {
		distFromCenter = -distFromCenter
	}

	switch distFromCenter {
	case 0:
		return SCORE_CENTER
	case 1:
		return SCORE_NEAR_CENTER
	case 2:
		return SCORE_EDGE
	}
	return 0
}

// Find the column with the highest score
func findBestColumn(scores map[int]int) int {
	center := domain.Columns / 2
	bestColumn := -1
	maxScore := 0

	for col := 0; col < domain.Columns; col++ {
		score, exists := scores[col]
		if !exists {
			continue
		}

		if bestColumn == -1 || score > maxScore {
			maxScore = score
			bestColumn = col
		} else if score == maxScore && abs(col-center) < abs(bestColumn-center) {
			// Tie-breaker: prefer columns closer to center
			bestColumn = col
		}
	}

	return bestColumn
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
