package bot

import (
	"math/rand"

	"github.com/iamasit07/4-in-a-row-ai/backend/internal/domain"
)

// RandomValidMove picks a uniformly random legal column. intn may be nil, in
// which case math/rand is used.
func RandomValidMove(board domain.Board, intn func(n int) int) (int, bool) {
	validColumns := domain.GetValidMoves(board)
	if len(validColumns) == 0 {
		return -1, false
	}
	if intn == nil {
		intn = rand.Intn
	}
	return validColumns[intn(len(validColumns))], true
}
