package bot

import (
	"context"
	"log"

	"github.com/iamasit07/4-in-a-row-ai/backend/internal/domain"
)

// HeuristicProvider is the offline move-provider used when no LLM is
// configured. It answers with the same contract as the remote provider.
type HeuristicProvider struct {
	intn func(n int) int
}

func NewHeuristicProvider(intn func(n int) int) *HeuristicProvider {
	return &HeuristicProvider{intn: intn}
}

func (h *HeuristicProvider) Name() string { return "heuristic" }

func (h *HeuristicProvider) SuggestColumn(ctx context.Context, req domain.MoveRequest) (int, error) {
	if err := ctx.Err(); err != nil {
		return -1, err
	}

	if len(domain.GetValidMoves(req.Board)) == 0 {
		return -1, domain.ErrColumnFull
	}

	switch req.Difficulty {
	case domain.DifficultyEasy:
		col, _ := RandomValidMove(req.Board, h.intn)
		return col, nil
	case domain.DifficultyHard:
		return findBestColumn(scoreColumns(req.Board, req.AIPiece, 3)), nil
	case domain.DifficultyMedium:
		return findBestColumn(scoreColumns(req.Board, req.AIPiece, 1)), nil
	default:
		log.Printf("[BOT] Unknown difficulty %q, playing medium", req.Difficulty)
		return findBestColumn(scoreColumns(req.Board, req.AIPiece, 1)), nil
	}
}
