package game

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iamasit07/4-in-a-row-ai/backend/internal/domain"
	"github.com/iamasit07/4-in-a-row-ai/backend/internal/service/advisor"
)

type advisorFunc func(ctx context.Context, req domain.MoveRequest) (advisor.Decision, bool)

func (f advisorFunc) ChooseColumn(ctx context.Context, req domain.MoveRequest) (advisor.Decision, bool) {
	return f(ctx, req)
}

func fixedAdvisor(col int) MoveAdvisor {
	return advisorFunc(func(ctx context.Context, req domain.MoveRequest) (advisor.Decision, bool) {
		return advisor.Decision{Column: col, Source: advisor.SourceProvider}, true
	})
}

type recordingNotifier struct {
	mu     sync.Mutex
	states []domain.GameState
}

func (n *recordingNotifier) Publish(state domain.GameState) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.states = append(n.states, state)
}

func (n *recordingNotifier) count() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return len(n.states)
}

func (n *recordingNotifier) last() domain.GameState {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.states[len(n.states)-1]
}

func pvpSettings() domain.GameSettings {
	return domain.GameSettings{
		Players: [2]domain.Player{{Name: "Ada", Counter: "🔴"}, {Name: "Bob", Counter: "🟡"}},
		Mode:    domain.ModePlayerVsPlayer,
	}
}

func pvaSettings(d domain.Difficulty) domain.GameSettings {
	s := pvpSettings()
	s.Players[1] = domain.Player{Name: "Gemini", Counter: "🤖"}
	s.Mode = domain.ModePlayerVsAdvisor
	s.Difficulty = d
	return s
}

func startedSession(t *testing.T, adv MoveAdvisor, settings domain.GameSettings) (*GameSession, *recordingNotifier) {
	t.Helper()
	n := &recordingNotifier{}
	s := NewGameSession("game-1", adv, n)
	require.NoError(t, s.StartGame(settings))
	return s, n
}

func TestStartGame(t *testing.T) {
	n := &recordingNotifier{}
	s := NewGameSession("game-1", nil, n)

	state := s.Snapshot()
	assert.Equal(t, domain.PhaseSetup, state.Phase)

	bad := pvpSettings()
	bad.Players[0].Name = "  "
	err := s.StartGame(bad)
	var setupErr *domain.SetupError
	require.ErrorAs(t, err, &setupErr)
	assert.Equal(t, "player 1 name", setupErr.Field)
	assert.Equal(t, domain.PhaseSetup, s.Snapshot().Phase)
	assert.Equal(t, 0, n.count())

	require.NoError(t, s.StartGame(pvpSettings()))
	state = n.last()
	assert.Equal(t, domain.PhasePlaying, state.Phase)
	assert.Equal(t, domain.Player1, state.CurrentPlayer)
	assert.Equal(t, domain.DifficultyMedium, state.Difficulty)
	assert.Equal(t, "Classic", state.Theme.Name)
	assert.Equal(t, "Turn: Ada 🔴", state.Status)

	assert.ErrorIs(t, s.StartGame(pvpSettings()), domain.ErrWrongPhase)
}

func TestPlayerVsPlayerWin(t *testing.T) {
	s, n := startedSession(t, nil, pvpSettings())

	for _, c := range []int{0, 0, 1, 1, 2, 2} {
		require.NoError(t, s.SubmitMove(c))
	}
	assert.Equal(t, "Turn: Ada 🔴", n.last().Status)

	require.NoError(t, s.SubmitMove(3))
	state := n.last()
	assert.Equal(t, domain.PhaseGameOver, state.Phase)
	assert.Equal(t, domain.Outcome{Winner: domain.Player1}, state.Outcome)
	assert.Equal(t, "Ada 🔴 wins!", state.Status)
	assert.Equal(t, 7, state.MoveCount)
	assert.Equal(t, 5, state.LastRow)
	assert.Equal(t, 3, state.LastColumn)

	published := n.count()
	assert.ErrorIs(t, s.SubmitMove(4), domain.ErrGameFinished)
	assert.Equal(t, published, n.count())
}

func TestRejectedMoveChangesNothing(t *testing.T) {
	s, n := startedSession(t, nil, pvpSettings())
	for i := 0; i < domain.Rows; i++ {
		require.NoError(t, s.SubmitMove(6))
	}

	before := s.Snapshot()
	published := n.count()

	assert.ErrorIs(t, s.SubmitMove(6), domain.ErrColumnFull)
	assert.ErrorIs(t, s.SubmitMove(-1), domain.ErrInvalidMove)
	assert.ErrorIs(t, s.SubmitMove(domain.Columns), domain.ErrInvalidMove)

	assert.Equal(t, before, s.Snapshot())
	assert.Equal(t, published, n.count())
}

func TestPlayerVsAdvisorTurn(t *testing.T) {
	s, n := startedSession(t, fixedAdvisor(6), pvaSettings(domain.DifficultyHard))

	require.NoError(t, s.SubmitMove(3))

	// the advisor's state is delivered from its own goroutine
	require.Eventually(t, func() bool {
		st := n.last()
		return !st.Thinking && st.MoveCount == 2
	}, time.Second, 5*time.Millisecond)

	state := n.last()
	assert.Equal(t, domain.Player1, state.CurrentPlayer)
	assert.Equal(t, int(domain.Player2), state.Board[domain.Rows-1][6])
	assert.Equal(t, int(domain.Player1), state.Board[domain.Rows-1][3])
}

func TestMovesRejectedWhileAdvisorThinks(t *testing.T) {
	release := make(chan struct{})
	blocking := advisorFunc(func(ctx context.Context, req domain.MoveRequest) (advisor.Decision, bool) {
		<-release
		return advisor.Decision{Column: 0}, true
	})
	s, n := startedSession(t, blocking, pvaSettings(domain.DifficultyMedium))

	require.NoError(t, s.SubmitMove(3))
	state := n.last()
	assert.True(t, state.Thinking)
	assert.Equal(t, "Gemini is thinking...", state.Status)

	assert.ErrorIs(t, s.SubmitMove(4), domain.ErrAIThinking)
	close(release)

	require.Eventually(t, func() bool { return !s.Snapshot().Thinking }, time.Second, 5*time.Millisecond)
	require.NoError(t, s.SubmitMove(4))
}

func TestRestartDiscardsPendingAdvisorMove(t *testing.T) {
	release := make(chan struct{})
	cancelled := make(chan struct{})
	slow := advisorFunc(func(ctx context.Context, req domain.MoveRequest) (advisor.Decision, bool) {
		<-ctx.Done()
		close(cancelled)
		<-release
		// answers anyway, as a misbehaving advisor would
		return advisor.Decision{Column: 0}, true
	})
	s, _ := startedSession(t, slow, pvaSettings(domain.DifficultyHard))
	done := make(chan struct{})
	s.aiDone = func() { close(done) }

	require.NoError(t, s.SubmitMove(3))
	require.NoError(t, s.Restart())

	select {
	case <-cancelled:
	case <-time.After(time.Second):
		t.Fatal("restart did not cancel the pending advisor turn")
	}
	close(release)
	<-done

	state := s.Snapshot()
	assert.Equal(t, domain.PhasePlaying, state.Phase)
	assert.Equal(t, 0, state.MoveCount)
	assert.False(t, state.Thinking)
	assert.Equal(t, domain.Player1, state.CurrentPlayer)
}

func TestNewGameDiscardsPendingAdvisorMove(t *testing.T) {
	release := make(chan struct{})
	slow := advisorFunc(func(ctx context.Context, req domain.MoveRequest) (advisor.Decision, bool) {
		<-release
		return advisor.Decision{Column: 0}, true
	})
	s, _ := startedSession(t, slow, pvaSettings(domain.DifficultyEasy))
	done := make(chan struct{})
	s.aiDone = func() { close(done) }

	require.NoError(t, s.SubmitMove(3))
	require.NoError(t, s.NewGame())
	close(release)
	<-done

	state := s.Snapshot()
	assert.Equal(t, domain.PhaseSetup, state.Phase)
	assert.Equal(t, 0, state.MoveCount)
	assert.ErrorIs(t, s.SubmitMove(0), domain.ErrWrongPhase)
	assert.ErrorIs(t, s.Restart(), domain.ErrWrongPhase)

	// settings survive as defaults for the next setup
	assert.Equal(t, "Gemini", state.Players[1].Name)
}

func TestRestartAfterGameOver(t *testing.T) {
	s, _ := startedSession(t, nil, pvpSettings())
	for _, c := range []int{0, 1, 0, 1, 0, 1, 0} {
		require.NoError(t, s.SubmitMove(c))
	}
	require.Equal(t, domain.PhaseGameOver, s.Snapshot().Phase)

	require.NoError(t, s.Restart())
	state := s.Snapshot()
	assert.Equal(t, domain.PhasePlaying, state.Phase)
	assert.Equal(t, domain.Outcome{}, state.Outcome)
	assert.Equal(t, "Ada", state.Players[0].Name)
	assert.Equal(t, -1, state.LastRow)
}

func TestAdvisorGivingUpCommitsNothing(t *testing.T) {
	giveUp := advisorFunc(func(ctx context.Context, req domain.MoveRequest) (advisor.Decision, bool) {
		return advisor.Decision{}, false
	})
	s, n := startedSession(t, giveUp, pvaSettings(domain.DifficultyMedium))
	done := make(chan struct{})
	s.aiDone = func() { close(done) }

	require.NoError(t, s.SubmitMove(0))
	<-done

	// the board keeps only the human move and the turn stays with the advisor
	state := s.Snapshot()
	assert.False(t, state.Thinking)
	assert.Equal(t, 1, state.MoveCount)
	assert.Equal(t, domain.Player2, state.CurrentPlayer)
	assert.Equal(t, state, n.last())
	assert.ErrorIs(t, s.SubmitMove(1), domain.ErrNotYourTurn)
}

// snapshotNotifier reads the session back from inside Publish.
type snapshotNotifier struct {
	session *GameSession
	seen    chan domain.GameState
}

func (n *snapshotNotifier) Publish(state domain.GameState) {
	n.seen <- n.session.Snapshot()
}

func TestNotifierMayReadSessionWhilePublishing(t *testing.T) {
	n := &snapshotNotifier{seen: make(chan domain.GameState, 4)}
	s := NewGameSession("game-1", nil, n)
	n.session = s

	finished := make(chan error, 1)
	go func() { finished <- s.StartGame(pvpSettings()) }()

	select {
	case err := <-finished:
		require.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("StartGame blocked on its own notifier")
	}
	assert.Equal(t, domain.PhasePlaying, (<-n.seen).Phase)
}

// gatedNotifier holds every delivery until released.
type gatedNotifier struct {
	entered chan struct{}
	release chan struct{}
}

func (n *gatedNotifier) Publish(state domain.GameState) {
	n.entered <- struct{}{}
	<-n.release
}

func TestSlowNotifierDoesNotBlockSession(t *testing.T) {
	n := &gatedNotifier{entered: make(chan struct{}, 4), release: make(chan struct{})}
	s := NewGameSession("game-1", nil, n)

	go s.StartGame(pvpSettings())
	<-n.entered

	// the session lock is free while the notifier is stuck
	assert.Equal(t, domain.PhasePlaying, s.Snapshot().Phase)
	assert.ErrorIs(t, s.StartGame(pvpSettings()), domain.ErrWrongPhase)
	close(n.release)
}

// A full game against an advisor whose provider never works still ends in a
// win or a draw, with every advisor move legal.
func TestFullGameWithFailingProvider(t *testing.T) {
	failing := providerFunc(func(ctx context.Context, req domain.MoveRequest) (int, error) {
		return -1, errors.New("unavailable")
	})
	adv := advisor.New(failing, advisor.Options{Timeout: 50 * time.Millisecond})
	s, _ := startedSession(t, adv, pvaSettings(domain.DifficultyMedium))

	for turns := 0; turns < domain.Rows*domain.Columns; turns++ {
		var state domain.GameState
		require.Eventually(t, func() bool {
			state = s.Snapshot()
			return !state.Thinking
		}, 2*time.Second, 5*time.Millisecond)

		if state.Phase == domain.PhaseGameOver {
			break
		}
		require.Equal(t, domain.Player1, state.CurrentPlayer)

		board := boardOf(state)
		moves := domain.GetValidMoves(board)
		require.NotEmpty(t, moves)
		require.NoError(t, s.SubmitMove(moves[len(moves)-1]))
	}

	require.Eventually(t, func() bool {
		return s.Snapshot().Phase == domain.PhaseGameOver
	}, 2*time.Second, 5*time.Millisecond)
	assert.True(t, s.Snapshot().Outcome.IsTerminal())
}

type providerFunc func(ctx context.Context, req domain.MoveRequest) (int, error)

func (f providerFunc) SuggestColumn(ctx context.Context, req domain.MoveRequest) (int, error) {
	return f(ctx, req)
}

func boardOf(state domain.GameState) domain.Board {
	var b domain.Board
	for r := range state.Board {
		for c := range state.Board[r] {
			b[r][c] = domain.PlayerID(state.Board[r][c])
		}
	}
	return b
}
