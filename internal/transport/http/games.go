package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/iamasit07/4-in-a-row-ai/backend/internal/domain"
	"github.com/iamasit07/4-in-a-row-ai/backend/internal/service/game"
)

type GameHandler struct {
	SessionManager *game.SessionManager
}

func NewGameHandler(sm *game.SessionManager) *GameHandler {
	return &GameHandler{SessionManager: sm}
}

type optionsResponse struct {
	Counters     []string            `json:"counters"`
	Themes       []domain.Theme      `json:"themes"`
	Modes        []domain.GameMode   `json:"modes"`
	Difficulties []domain.Difficulty `json:"difficulties"`
	Defaults     domain.GameSettings `json:"defaults"`
}

// GetOptions returns everything the setup screen offers
func (h *GameHandler) GetOptions(c *gin.Context) {
	c.JSON(http.StatusOK, optionsResponse{
		Counters:     domain.CounterOptions,
		Themes:       domain.Themes,
		Modes:        []domain.GameMode{domain.ModePlayerVsPlayer, domain.ModePlayerVsAdvisor},
		Difficulties: []domain.Difficulty{domain.DifficultyEasy, domain.DifficultyMedium, domain.DifficultyHard},
		Defaults:     domain.DefaultSettings(),
	})
}

// GetLiveGames returns all sessions that have left setup
func (h *GameHandler) GetLiveGames(c *gin.Context) {
	c.JSON(http.StatusOK, h.SessionManager.ActiveGames())
}

// GetGame returns the current snapshot of one game
func (h *GameHandler) GetGame(c *gin.Context) {
	session, ok := h.SessionManager.GetSessionByGameID(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Game not found"})
		return
	}
	c.JSON(http.StatusOK, session.Snapshot())
}

// Health reports liveness and the number of sessions held in memory
func (h *GameHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok", "sessions": h.SessionManager.Count()})
}
