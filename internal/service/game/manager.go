package game

import (
	"fmt"
	"log"
	"sort"
	"sync"
	"time"

	"github.com/iamasit07/4-in-a-row-ai/backend/internal/domain"
	"github.com/iamasit07/4-in-a-row-ai/backend/pkg/uid"
)

// GameSummary is the listing view of a live session.
type GameSummary struct {
	GameID       string            `json:"gameId"`
	Phase        domain.GamePhase  `json:"phase"`
	Mode         domain.GameMode   `json:"mode"`
	Difficulty   domain.Difficulty `json:"difficulty"`
	Players      [2]domain.Player  `json:"players"`
	MoveCount    int               `json:"moveCount"`
	Status       string            `json:"status"`
	CreatedAt    time.Time         `json:"createdAt"`
	LastActivity time.Time         `json:"lastActivity"`
}

// SessionManager manages active game sessions
type SessionManager struct {
	Session map[string]*GameSession // gameID → GameSession
	mu      sync.RWMutex
	advisor MoveAdvisor
}

func NewSessionManager(adv MoveAdvisor) *SessionManager {
	return &SessionManager{
		Session: make(map[string]*GameSession),
		advisor: adv,
	}
}

func (sm *SessionManager) CreateSession(notifier Notifier) *GameSession {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	session := NewGameSession(uid.GenerateGameID(), sm.advisor, notifier)
	sm.Session[session.GameID] = session

	log.Printf("[SESSION] Created session %s", session.GameID)
	return session
}

func (sm *SessionManager) GetSessionByGameID(gameID string) (*GameSession, bool) {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	session, exists := sm.Session[gameID]
	return session, exists
}

func (sm *SessionManager) RemoveSession(gameID string) error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	return sm.removeSessionLocked(gameID)
}

// removeSessionLocked removes session from the map without acquiring lock (caller must hold it)
func (sm *SessionManager) removeSessionLocked(gameID string) error {
	session, exists := sm.Session[gameID]
	if !exists {
		return fmt.Errorf("session not found")
	}

	log.Printf("[SESSION] Removing session %s", gameID)
	session.Close()
	delete(sm.Session, gameID)

	return nil
}

// ActiveGames lists sessions that are past setup, most recent first.
func (sm *SessionManager) ActiveGames() []GameSummary {
	sm.mu.RLock()
	sessions := make([]*GameSession, 0, len(sm.Session))
	for _, s := range sm.Session {
		sessions = append(sessions, s)
	}
	sm.mu.RUnlock()

	games := make([]GameSummary, 0, len(sessions))
	for _, s := range sessions {
		state := s.Snapshot()
		if state.Phase == domain.PhaseSetup {
			continue
		}
		games = append(games, GameSummary{
			GameID:       state.GameID,
			Phase:        state.Phase,
			Mode:         state.Mode,
			Difficulty:   state.Difficulty,
			Players:      state.Players,
			MoveCount:    state.MoveCount,
			Status:       state.Status,
			CreatedAt:    s.CreatedAt,
			LastActivity: s.LastActivity(),
		})
	}

	sort.Slice(games, func(i, j int) bool {
		return games[i].LastActivity.After(games[j].LastActivity)
	})
	return games
}

func (sm *SessionManager) Count() int {
	sm.mu.RLock()
	defer sm.mu.RUnlock()
	return len(sm.Session)
}

// Presence reports whether a game still has a live client.
type Presence interface {
	IsConnected(gameID string) bool
}

// CleanupIdleSessions drops sessions with no activity for longer than maxIdle.
// Games whose client is still connected are kept; presence may be nil.
func (sm *SessionManager) CleanupIdleSessions(maxIdle time.Duration, presence Presence) int {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	count := 0
	now := time.Now()

	for gameID, session := range sm.Session {
		if now.Sub(session.LastActivity()) <= maxIdle {
			continue
		}
		if presence != nil && presence.IsConnected(gameID) {
			continue
		}
		session.Close()
		delete(sm.Session, gameID)
		count++
	}

	if count > 0 {
		log.Printf("[SESSION] Memory cleanup: Removed %d idle game sessions", count)
	}
	return count
}
