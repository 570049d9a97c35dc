package game

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/iamasit07/4-in-a-row-ai/backend/internal/domain"
	"github.com/iamasit07/4-in-a-row-ai/backend/internal/service/advisor"
)

// Notifier receives every state change of a session. Publish runs outside the
// session lock; states older than one already delivered are dropped.
type Notifier interface {
	Publish(state domain.GameState)
}

// MoveAdvisor resolves the AI's column for one turn.
type MoveAdvisor interface {
	ChooseColumn(ctx context.Context, req domain.MoveRequest) (advisor.Decision, bool)
}

// the AI always plays the second seat in PvA
const aiPiece = domain.Player2

type GameSession struct {
	GameID    string
	CreatedAt time.Time

	mu           sync.Mutex
	phase        domain.GamePhase
	settings     domain.GameSettings
	game         *domain.Game
	thinking     bool
	generation   uint64
	ctx          context.Context
	cancel       context.CancelFunc
	lastActivity time.Time
	closed       bool
	seq          uint64

	publishMu     sync.Mutex
	lastPublished uint64

	notifier Notifier
	advisor  MoveAdvisor

	// aiDone is signalled after an AI turn goroutine finishes, for tests
	aiDone func()
}

// update is a snapshot taken under the lock, delivered after unlocking.
type update struct {
	seq      uint64
	state    domain.GameState
	notifier Notifier
}

func NewGameSession(gameID string, adv MoveAdvisor, notifier Notifier) *GameSession {
	ctx, cancel := context.WithCancel(context.Background())
	now := time.Now()
	return &GameSession{
		GameID:       gameID,
		CreatedAt:    now,
		phase:        domain.PhaseSetup,
		settings:     domain.DefaultSettings(),
		game:         domain.NewGame(),
		ctx:          ctx,
		cancel:       cancel,
		lastActivity: now,
		notifier:     notifier,
		advisor:      adv,
	}
}

// StartGame leaves Setup with validated settings and a fresh board.
func (gs *GameSession) StartGame(settings domain.GameSettings) error {
	u, err := gs.startGame(settings)
	if err != nil {
		return err
	}
	gs.publish(u)
	return nil
}

func (gs *GameSession) startGame(settings domain.GameSettings) (update, error) {
	gs.mu.Lock()
	defer gs.mu.Unlock()

	if gs.closed {
		return update{}, domain.ErrSessionClosed
	}
	if gs.phase != domain.PhaseSetup {
		return update{}, domain.ErrWrongPhase
	}

	valid, err := settings.Validate()
	if err != nil {
		return update{}, err
	}

	gs.settings = valid
	gs.resetLocked()
	gs.phase = domain.PhasePlaying

	log.Printf("[GAME] %s started: %s vs %s (%s, %s)", gs.GameID,
		valid.Players[0].Name, valid.Players[1].Name, valid.Mode, valid.Difficulty)

	return gs.stageLocked(), nil
}

// SubmitMove plays a human column for the player whose turn it is.
func (gs *GameSession) SubmitMove(column int) error {
	u, err := gs.submitMove(column)
	if err != nil {
		return err
	}
	gs.publish(u)
	return nil
}

func (gs *GameSession) submitMove(column int) (update, error) {
	gs.mu.Lock()
	defer gs.mu.Unlock()

	if gs.closed {
		return update{}, domain.ErrSessionClosed
	}
	switch gs.phase {
	case domain.PhasePlaying:
	case domain.PhaseGameOver:
		return update{}, domain.ErrGameFinished
	default:
		return update{}, domain.ErrWrongPhase
	}

	if gs.thinking {
		return update{}, domain.ErrAIThinking
	}
	if gs.settings.Mode == domain.ModePlayerVsAdvisor && gs.game.CurrentPlayer == aiPiece {
		return update{}, domain.ErrNotYourTurn
	}

	if err := gs.applyLocked(column); err != nil {
		return update{}, err
	}

	if gs.phase == domain.PhasePlaying && gs.settings.Mode == domain.ModePlayerVsAdvisor && gs.game.CurrentPlayer == aiPiece {
		gs.startAITurnLocked()
	}

	return gs.stageLocked(), nil
}

// Restart keeps the players and settings and clears the board.
func (gs *GameSession) Restart() error {
	u, err := gs.restart()
	if err != nil {
		return err
	}
	gs.publish(u)
	return nil
}

func (gs *GameSession) restart() (update, error) {
	gs.mu.Lock()
	defer gs.mu.Unlock()

	if gs.closed {
		return update{}, domain.ErrSessionClosed
	}
	if gs.phase != domain.PhasePlaying && gs.phase != domain.PhaseGameOver {
		return update{}, domain.ErrWrongPhase
	}

	gs.resetLocked()
	gs.phase = domain.PhasePlaying
	log.Printf("[GAME] %s restarted", gs.GameID)

	return gs.stageLocked(), nil
}

// NewGame returns to Setup. Previous settings are kept as form defaults.
func (gs *GameSession) NewGame() error {
	u, err := gs.newGame()
	if err != nil {
		return err
	}
	gs.publish(u)
	return nil
}

func (gs *GameSession) newGame() (update, error) {
	gs.mu.Lock()
	defer gs.mu.Unlock()

	if gs.closed {
		return update{}, domain.ErrSessionClosed
	}
	gs.resetLocked()
	gs.phase = domain.PhaseSetup
	log.Printf("[GAME] %s back to setup", gs.GameID)

	return gs.stageLocked(), nil
}

// Close discards any pending AI turn. Every later command fails with
// domain.ErrSessionClosed.
func (gs *GameSession) Close() {
	gs.mu.Lock()
	defer gs.mu.Unlock()

	gs.closed = true
	gs.generation++
	gs.cancel()
	gs.thinking = false
}

func (gs *GameSession) Snapshot() domain.GameState {
	gs.mu.Lock()
	defer gs.mu.Unlock()
	return gs.snapshotLocked()
}

func (gs *GameSession) Closed() bool {
	gs.mu.Lock()
	defer gs.mu.Unlock()
	return gs.closed
}

func (gs *GameSession) LastActivity() time.Time {
	gs.mu.Lock()
	defer gs.mu.Unlock()
	return gs.lastActivity
}

// resetLocked starts a new game instance. Bumping the generation and
// cancelling the context orphans any AI turn still in flight.
func (gs *GameSession) resetLocked() {
	gs.generation++
	gs.cancel()
	gs.ctx, gs.cancel = context.WithCancel(context.Background())
	gs.thinking = false
	gs.game = domain.NewGame()
	gs.lastActivity = time.Now()
}

// applyLocked commits a column for the current player and moves to GameOver
// on a terminal outcome. On error nothing changes.
func (gs *GameSession) applyLocked(column int) error {
	player := gs.game.CurrentPlayer
	row, err := gs.game.MakeMove(column)
	if err != nil {
		return err
	}
	gs.lastActivity = time.Now()

	if gs.game.IsFinished() {
		gs.phase = domain.PhaseGameOver
		if gs.game.Status == domain.StatusWon {
			log.Printf("[GAME] %s won by %s at (%d,%d)", gs.GameID, gs.playerLocked(player).Name, row, column)
		} else {
			log.Printf("[GAME] %s ended in a draw", gs.GameID)
		}
	}
	return nil
}

func (gs *GameSession) startAITurnLocked() {
	gs.thinking = true
	gen := gs.generation
	ctx := gs.ctx
	req := domain.MoveRequest{
		Board:       gs.game.Board,
		AIPiece:     aiPiece,
		AIPlayer:    gs.playerLocked(aiPiece),
		HumanPlayer: gs.playerLocked(aiPiece.Opponent()),
		Difficulty:  gs.settings.Difficulty,
	}

	go gs.runAITurn(ctx, gen, req)
}

func (gs *GameSession) runAITurn(ctx context.Context, gen uint64, req domain.MoveRequest) {
	if gs.aiDone != nil {
		defer gs.aiDone()
	}

	var decision advisor.Decision
	ok := false
	if gs.advisor != nil {
		decision, ok = gs.advisor.ChooseColumn(ctx, req)
	}

	gs.mu.Lock()
	if gs.generation != gen {
		gs.mu.Unlock()
		log.Printf("[GAME] %s discarding AI move from a previous game", gs.GameID)
		return
	}
	gs.thinking = false

	if !ok {
		// no legal column or no advisor; nothing to commit
		log.Printf("[GAME] %s AI turn produced no move", gs.GameID)
		u := gs.stageLocked()
		gs.mu.Unlock()
		gs.publish(u)
		return
	}

	if err := gs.applyLocked(decision.Column); err != nil {
		log.Printf("[GAME] %s AI column %d rejected: %v", gs.GameID, decision.Column, err)
	} else {
		log.Printf("[GAME] %s AI played column %d (%s, %v)", gs.GameID, decision.Column, decision.Source, decision.Elapsed)
	}
	u := gs.stageLocked()
	gs.mu.Unlock()
	gs.publish(u)
}

func (gs *GameSession) playerLocked(id domain.PlayerID) domain.Player {
	if id == domain.Player2 {
		return gs.settings.Players[1]
	}
	return gs.settings.Players[0]
}

func (gs *GameSession) stageLocked() update {
	gs.seq++
	return update{seq: gs.seq, state: gs.snapshotLocked(), notifier: gs.notifier}
}

// publish delivers u unless a newer state already went out.
func (gs *GameSession) publish(u update) {
	if u.notifier == nil {
		return
	}
	gs.publishMu.Lock()
	defer gs.publishMu.Unlock()
	if u.seq <= gs.lastPublished {
		return
	}
	gs.lastPublished = u.seq
	u.notifier.Publish(u.state)
}

func (gs *GameSession) snapshotLocked() domain.GameState {
	return domain.GameState{
		GameID:        gs.GameID,
		Phase:         gs.phase,
		Board:         gs.game.Board.Cells(),
		CurrentPlayer: gs.game.CurrentPlayer,
		Players:       gs.settings.Players,
		Mode:          gs.settings.Mode,
		Difficulty:    gs.settings.Difficulty,
		Theme:         gs.settings.Theme,
		Thinking:      gs.thinking,
		Outcome:       gs.game.Outcome(),
		MoveCount:     gs.game.MoveCount,
		LastRow:       gs.game.LastRow,
		LastColumn:    gs.game.LastColumn,
		Status:        gs.statusLocked(),
	}
}

func (gs *GameSession) statusLocked() string {
	switch gs.phase {
	case domain.PhaseSetup:
		return "Setting up a new game"
	case domain.PhaseGameOver:
		if gs.game.Status == domain.StatusDraw {
			return "It's a draw!"
		}
		winner := gs.playerLocked(gs.game.Winner)
		return fmt.Sprintf("%s %s wins!", winner.Name, winner.Counter)
	}

	current := gs.playerLocked(gs.game.CurrentPlayer)
	if gs.thinking {
		return fmt.Sprintf("%s is thinking...", current.Name)
	}
	return fmt.Sprintf("Turn: %s %s", current.Name, current.Counter)
}
