package provider

import (
	"fmt"

	"github.com/iamasit07/4-in-a-row-ai/backend/internal/domain"
)

const DefaultModel = "gemini-2.5-flash"

// settings is the per-difficulty request shape sent to the model.
type settings struct {
	Temperature    float32
	ThinkingBudget int32
}

func settingsFor(d domain.Difficulty) settings {
	switch d {
	case domain.DifficultyEasy:
		return settings{Temperature: 1.0, ThinkingBudget: 0}
	case domain.DifficultyHard:
		return settings{Temperature: 0.5, ThinkingBudget: 0}
	default:
		return settings{Temperature: 0.9, ThinkingBudget: 0}
	}
}

// boardForPrompt encodes the board from the AI's point of view:
// 0 empty, 1 the human, 2 the AI.
func boardForPrompt(req domain.MoveRequest) string {
	b := req.Board
	if req.AIPiece == domain.Player1 {
		for r := 0; r < domain.Rows; r++ {
			for c := 0; c < domain.Columns; c++ {
				if b[r][c] != domain.Empty {
					b[r][c] = b[r][c].Opponent()
				}
			}
		}
	}
	return b.String()
}

func buildPrompt(req domain.MoveRequest) string {
	board := boardForPrompt(req)

	switch req.Difficulty {
	case domain.DifficultyEasy:
		return fmt.Sprintf(`You are playing 4 in a Row against %s. You are playing just for fun.
The board is 6 rows and 7 columns. 0 is empty, 1 is the other player, and 2 is you.
Here is the board:
%s
It's your turn! Pick any column to drop your piece in (from 0 to 6) that is not full.
Respond with ONLY a JSON object with your choice, like this: {"column": <number>}.`, req.HumanPlayer.Name, board)

	case domain.DifficultyHard:
		return fmt.Sprintf(`You are an expert 4 in a Row AI playing against %s. Your goal is to win quickly and efficiently.
The board is 6 rows by 7 columns. 0 is empty, 1 is the human, and 2 is you (AI). Top row is 0.
Current board:
%s

You've already checked for immediate win/loss moves. They don't exist.
Now, make a strategic move to set up a future win. Center columns (2, 3, 4) are generally strong.
Choose the best column (0-6). The column must not be full.

Respond with ONLY a JSON object with your column choice: {"column": <number>}.`, req.HumanPlayer.Name, board)

	default:
		return fmt.Sprintf(`You are playing 4 in a Row against %s. Your goal is to win, but you should play quickly.
The board is 6x7. 0 is empty, 1 is the opponent, 2 is you.
You have already checked for any immediate win or lose moves.
Board state:
%s
It's your turn. Pick a valid, non-full column (0-6) that seems like a good move.
Respond with ONLY a JSON object: {"column": <number>}.`, req.HumanPlayer.Name, board)
	}
}
