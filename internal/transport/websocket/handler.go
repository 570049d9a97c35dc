package websocket

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"github.com/iamasit07/4-in-a-row-ai/backend/internal/domain"
	"github.com/iamasit07/4-in-a-row-ai/backend/internal/service/game"
	"github.com/iamasit07/4-in-a-row-ai/backend/pkg/auth"
)

// the idle sweep asks the connection manager which games still have a client
var _ game.Presence = (*ConnectionManager)(nil)

// Handler manages WebSocket dependencies
type Handler struct {
	ConnManager    *ConnectionManager
	SessionManager *game.SessionManager
	Upgrader       websocket.Upgrader
}

// NewHandler creates a new WebSocket handler. An empty allowedOrigins list accepts any origin.
func NewHandler(cm *ConnectionManager, sm *game.SessionManager, allowedOrigins []string) *Handler {
	return &Handler{
		ConnManager:    cm,
		SessionManager: sm,
		Upgrader: websocket.Upgrader{
			CheckOrigin:     originChecker(allowedOrigins),
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
	}
}

func originChecker(allowed []string) func(r *http.Request) bool {
	return func(r *http.Request) bool {
		origin := r.Header.Get("Origin")
		if origin == "" || len(allowed) == 0 {
			return true
		}
		for _, o := range allowed {
			if o == origin {
				return true
			}
		}
		log.Printf("[WS] Rejected origin %s", origin)
		return false
	}
}

// HandleWebSocket is the HTTP handler that upgrades the connection
func (h *Handler) HandleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := h.Upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("[WS] Upgrade error: %v", err)
		return
	}

	h.handleConnection(conn)
}

// handleConnection manages the lifecycle of a single WebSocket connection
func (h *Handler) handleConnection(conn *websocket.Conn) {
	// Set read deadline to detect stale connections
	conn.SetReadDeadline(time.Now().Add(60 * time.Second))

	done := make(chan struct{})
	defer close(done)

	conn.SetPongHandler(func(string) error {
		conn.SetReadDeadline(time.Now().Add(60 * time.Second))
		return nil
	})

	// 1. Wait for Initialization
	_, data, err := conn.ReadMessage()
	if err != nil {
		log.Printf("[WS] Read error during init: %v", err)
		conn.Close()
		return
	}

	var message domain.ClientMessage
	if err := json.Unmarshal(data, &message); err != nil || message.Type != "init" {
		log.Printf("[WS] Missing initialization")
		conn.WriteJSON(domain.ErrorMessage{Type: "error", Message: "Expected init message"})
		conn.Close()
		return
	}

	session := h.resumeOrCreate(message.Token)
	gameID := session.GameID
	h.ConnManager.AddConnection(gameID, conn)

	// Keep-alive pinger, serialized with other writes through the manager lock
	go h.keepAlive(gameID, conn, done)

	token, err := auth.GenerateGameToken(gameID)
	if err != nil {
		log.Printf("[WS] Could not issue token for %s: %v", gameID, err)
	}
	h.ConnManager.SendMessage(gameID, domain.ServerMessage{Type: "session", GameID: gameID, Token: token})
	state := session.Snapshot()
	h.ConnManager.SendMessage(gameID, domain.ServerMessage{Type: "state", State: &state})

	log.Printf("[WS] Connection initialized for game %s", gameID)

	// 2. Cleanup on exit; the session stays resumable until the idle sweep
	defer func() {
		log.Printf("[WS] Connection closed for game %s", gameID)
		h.ConnManager.RemoveConnectionIfMatching(gameID, conn)
	}()

	// 3. Main Message Loop
	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				log.Printf("[WS] Client disconnected unexpectedly: %v", err)
			}
			break
		}

		var msg domain.ClientMessage
		if err := json.Unmarshal(data, &msg); err != nil {
			log.Printf("[WS] Invalid message format: %v", err)
			h.ConnManager.SendMessage(gameID, domain.ServerMessage{Type: "error", Message: "Invalid message format"})
			continue
		}

		if err := h.processMessage(session, msg); errors.Is(err, domain.ErrSessionClosed) {
			// swept while this socket held it; the client has to init again
			h.ConnManager.SendMessage(gameID, domain.ServerMessage{Type: "session_closed", GameID: gameID, Message: err.Error()})
			break
		}
	}
}

func (h *Handler) resumeOrCreate(token string) *game.GameSession {
	if token != "" {
		claims, err := auth.ValidateGameToken(token)
		if err != nil {
			log.Printf("[WS] Ignoring invalid game token: %v", err)
		} else if session, ok := h.SessionManager.GetSessionByGameID(claims.GameID); ok {
			log.Printf("[WS] Resuming game %s", claims.GameID)
			return session
		}
	}
	return h.SessionManager.CreateSession(h.ConnManager)
}

func (h *Handler) keepAlive(gameID string, conn *websocket.Conn, done <-chan struct{}) {
	ticker := time.NewTicker(30 * time.Second)
	defer ticker.Stop()
	for {
		select {
		case <-done:
			return
		case <-ticker.C:
			h.ConnManager.mu.RLock()
			mu, ok := h.ConnManager.writeMu[gameID]
			current := h.ConnManager.connections[gameID] == conn
			h.ConnManager.mu.RUnlock()
			if !ok || !current {
				return
			}
			mu.Lock()
			err := conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(10*time.Second))
			mu.Unlock()
			if err != nil {
				return
			}
		}
	}
}

// processMessage routes specific actions. Errors are reported to the client
// and returned so the read loop can react to a closed session.
func (h *Handler) processMessage(session *game.GameSession, msg domain.ClientMessage) error {
	var err error

	switch msg.Type {
	case "start_game":
		settings := domain.DefaultSettings()
		if msg.Settings != nil {
			settings = *msg.Settings
		}
		err = session.StartGame(settings)

	case "make_move":
		if msg.Column == nil {
			err = domain.ErrMissingColumn
			break
		}
		err = session.SubmitMove(*msg.Column)

	case "restart":
		err = session.Restart()

	case "new_game":
		err = session.NewGame()

	case "get_state":
		state := session.Snapshot()
		h.ConnManager.SendMessage(session.GameID, domain.ServerMessage{Type: "state", State: &state})

	default:
		err = errors.New("unknown message type: " + msg.Type)
	}

	if err != nil && !errors.Is(err, domain.ErrSessionClosed) {
		h.ConnManager.SendMessage(session.GameID, domain.ServerMessage{Type: "error", Message: err.Error()})
	}
	return err
}
