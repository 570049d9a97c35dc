package cleanup

import (
	"log"
	"time"

	"github.com/iamasit07/4-in-a-row-ai/backend/internal/service/game"
)

type Worker struct {
	SessionManager *game.SessionManager
	Presence       game.Presence // games with a live client are never swept
	MaxIdle        time.Duration
	Interval       time.Duration

	stop chan struct{}
}

func NewWorker(sm *game.SessionManager, presence game.Presence, maxIdle, interval time.Duration) *Worker {
	if interval <= 0 {
		interval = 10 * time.Minute
	}
	return &Worker{SessionManager: sm, Presence: presence, MaxIdle: maxIdle, Interval: interval, stop: make(chan struct{})}
}

// Start initiates the background ticker
func (w *Worker) Start() {
	go w.runCleanup()

	ticker := time.NewTicker(w.Interval)
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				w.runCleanup()
			case <-w.stop:
				return
			}
		}
	}()
	log.Println("[CLEANUP] Background worker started")
}

func (w *Worker) Stop() {
	close(w.stop)
}

// runCleanup executes the actual cleanup logic
func (w *Worker) runCleanup() int {
	log.Println("[CLEANUP] Starting scheduled cleanup task...")

	removed := w.SessionManager.CleanupIdleSessions(w.MaxIdle, w.Presence)
	if removed > 0 {
		log.Printf("[CLEANUP] Removed %d idle sessions", removed)
	}
	return removed
}
