package advisor

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math/rand"
	"sync"
	"time"

	"github.com/iamasit07/4-in-a-row-ai/backend/internal/domain"
	"github.com/iamasit07/4-in-a-row-ai/backend/internal/service/bot"
)

const (
	DefaultTimeout      = 3000 * time.Millisecond
	DefaultMinThinkTime = 1000 * time.Millisecond
)

var ErrProviderTimeout = errors.New("advisor: move provider timed out")

// MoveProvider suggests a column for the AI player. Implementations may be
// slow, fail, or return garbage; the advisor trusts none of it.
type MoveProvider interface {
	SuggestColumn(ctx context.Context, req domain.MoveRequest) (int, error)
}

// Source tells where a decision came from.
type Source string

const (
	SourceCritical Source = "critical"
	SourceRandom   Source = "random"
	SourceProvider Source = "provider"
	SourceFallback Source = "fallback"
)

type Decision struct {
	Column  int
	Source  Source
	Elapsed time.Duration
}

type Options struct {
	Timeout      time.Duration
	MinThinkTime time.Duration
	// Intn replaces math/rand for the coin flip and random fallbacks.
	Intn func(n int) int
}

// Advisor resolves one AI turn.
type Advisor struct {
	provider     MoveProvider
	timeout      time.Duration
	minThinkTime time.Duration

	randMu sync.Mutex
	intn   func(n int) int
}

func New(provider MoveProvider, opts Options) *Advisor {
	if opts.Timeout <= 0 {
		opts.Timeout = DefaultTimeout
	}
	if opts.MinThinkTime < 0 {
		opts.MinThinkTime = 0
	}
	if opts.Intn == nil {
		opts.Intn = rand.Intn
	}
	return &Advisor{
		provider:     provider,
		timeout:      opts.Timeout,
		minThinkTime: opts.MinThinkTime,
		intn:         opts.Intn,
	}
}

// ChooseColumn picks a legal column for req.AIPiece. ok is false when no
// legal column exists or ctx was cancelled before the turn could commit.
func (a *Advisor) ChooseColumn(ctx context.Context, req domain.MoveRequest) (Decision, bool) {
	start := time.Now()
	board := req.Board

	decision, ok := a.resolve(ctx, req)
	if !ok {
		return Decision{}, false
	}

	if !domain.IsValidMove(board, decision.Column) {
		log.Printf("[ADVISOR] Warning: %s returned invalid column %d, making a random move instead", decision.Source, decision.Column)
		col, found := bot.RandomValidMove(board, a.randIntn)
		if !found {
			return Decision{}, false
		}
		decision = Decision{Column: col, Source: SourceFallback}
	}

	if remaining := a.minThinkTime - time.Since(start); remaining > 0 {
		timer := time.NewTimer(remaining)
		select {
		case <-timer.C:
		case <-ctx.Done():
			timer.Stop()
			return Decision{}, false
		}
	}

	decision.Elapsed = time.Since(start)
	return decision, true
}

func (a *Advisor) resolve(ctx context.Context, req domain.MoveRequest) (Decision, bool) {
	board := req.Board

	if len(domain.GetValidMoves(board)) == 0 {
		log.Printf("[ADVISOR] No legal columns left, skipping turn")
		return Decision{}, false
	}

	switch {
	case req.Difficulty.UsesCriticalMoves():
		if col, ok := bot.FindCriticalMove(board, req.AIPiece); ok {
			return Decision{Column: col, Source: SourceCritical}, true
		}
	case req.Difficulty == domain.DifficultyEasy:
		if a.randIntn(2) == 0 {
			col, _ := bot.RandomValidMove(board, a.randIntn)
			return Decision{Column: col, Source: SourceRandom}, true
		}
	}

	col, err := a.askProvider(ctx, req)
	if err != nil {
		if ctx.Err() != nil {
			return Decision{}, false
		}
		log.Printf("[ADVISOR] Move provider failed (%s): %v", req.Difficulty, err)
		fallback, found := bot.RandomValidMove(board, a.randIntn)
		if !found {
			return Decision{}, false
		}
		return Decision{Column: fallback, Source: SourceFallback}, true
	}

	return Decision{Column: col, Source: SourceProvider}, true
}

type suggestion struct {
	column int
	err    error
}

// askProvider races the provider against the timeout. The result channel is
// buffered so a late answer never blocks and is simply dropped.
func (a *Advisor) askProvider(ctx context.Context, req domain.MoveRequest) (int, error) {
	if a.provider == nil {
		return -1, errors.New("advisor: no move provider configured")
	}

	callCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	results := make(chan suggestion, 1)
	go func() {
		defer func() {
			if r := recover(); r != nil {
				results <- suggestion{column: -1, err: fmt.Errorf("advisor: move provider panicked: %v", r)}
			}
		}()
		col, err := a.provider.SuggestColumn(callCtx, req)
		results <- suggestion{column: col, err: err}
	}()

	timer := time.NewTimer(a.timeout)
	defer timer.Stop()

	select {
	case res := <-results:
		return res.column, res.err
	case <-timer.C:
		return -1, fmt.Errorf("%w after %v", ErrProviderTimeout, a.timeout)
	case <-ctx.Done():
		return -1, ctx.Err()
	}
}

func (a *Advisor) randIntn(n int) int {
	a.randMu.Lock()
	defer a.randMu.Unlock()
	return a.intn(n)
}
