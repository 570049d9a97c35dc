package websocket

import (
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/iamasit07/4-in-a-row-ai/backend/internal/domain"
)

// ConnectionManager handles active WebSocket connections thread-safely.
// Each game has at most one connected client.
type ConnectionManager struct {
	connections map[string]*websocket.Conn // gameID → socket

	// writeMu ensures only one goroutine writes to a specific socket at a time,
	// since conn.WriteJSON is not safe for concurrent use.
	writeMu map[string]*sync.Mutex

	mu sync.RWMutex // Protects the maps themselves
}

func NewConnectionManager() *ConnectionManager {
	return &ConnectionManager{
		connections: make(map[string]*websocket.Conn),
		writeMu:     make(map[string]*sync.Mutex),
	}
}

// AddConnection registers a new connection for a game and initializes its write lock
func (cm *ConnectionManager) AddConnection(gameID string, conn *websocket.Conn) {
	cm.mu.Lock()
	defer cm.mu.Unlock()

	// A resumed game takes over from any older tab
	if oldConn, exists := cm.connections[gameID]; exists && oldConn != conn {
		oldConn.Close()
	}

	cm.connections[gameID] = conn
	cm.writeMu[gameID] = &sync.Mutex{}
}

// RemoveConnectionIfMatching avoids closing a NEW connection when cleaning up an OLD one.
func (cm *ConnectionManager) RemoveConnectionIfMatching(gameID string, conn *websocket.Conn) {
	cm.mu.Lock()
	defer cm.mu.Unlock()

	if currentConn, exists := cm.connections[gameID]; exists {
		if currentConn == conn {
			currentConn.Close()
			delete(cm.connections, gameID)
			delete(cm.writeMu, gameID)
		}
	}
}

func (cm *ConnectionManager) IsConnected(gameID string) bool {
	cm.mu.RLock()
	defer cm.mu.RUnlock()
	_, exists := cm.connections[gameID]
	return exists
}

// SendMessage sends a JSON message to the client of a game
func (cm *ConnectionManager) SendMessage(gameID string, message domain.ServerMessage) error {
	cm.mu.RLock()
	conn, exists := cm.connections[gameID]
	mu, muExists := cm.writeMu[gameID]
	cm.mu.RUnlock()

	if !exists || !muExists {
		return nil // Client disconnected, ignore
	}

	mu.Lock()
	defer mu.Unlock()

	conn.SetWriteDeadline(time.Now().Add(10 * time.Second))
	return conn.WriteJSON(message)
}

// Publish pushes a state snapshot to the game's client. It satisfies game.Notifier.
func (cm *ConnectionManager) Publish(state domain.GameState) {
	_ = cm.SendMessage(state.GameID, domain.ServerMessage{Type: "state", State: &state})
}
