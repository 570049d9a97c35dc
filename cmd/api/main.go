package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/iamasit07/4-in-a-row-ai/backend/internal/config"
	"github.com/iamasit07/4-in-a-row-ai/backend/internal/repository/redis"
	"github.com/iamasit07/4-in-a-row-ai/backend/internal/service/advisor"
	"github.com/iamasit07/4-in-a-row-ai/backend/internal/service/bot"
	"github.com/iamasit07/4-in-a-row-ai/backend/internal/service/cleanup"
	"github.com/iamasit07/4-in-a-row-ai/backend/internal/service/game"
	"github.com/iamasit07/4-in-a-row-ai/backend/internal/service/provider"
	transportHttp "github.com/iamasit07/4-in-a-row-ai/backend/internal/transport/http"
	"github.com/iamasit07/4-in-a-row-ai/backend/internal/transport/http/middleware"
	"github.com/iamasit07/4-in-a-row-ai/backend/internal/transport/websocket"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		if err := godotenv.Load("../.env"); err != nil {
			log.Println("No .env file found")
		}
	}

	cfg := config.LoadConfig()

	// 1. Shared suggestion cache (optional)
	if err := redis.InitRedis(cfg); err != nil {
		log.Printf("Failed to initialize Redis: %v", err)
	}
	defer redis.CloseRedis()

	var shared provider.CacheRepository
	if redis.IsRedisEnabled() && redis.RedisClient != nil {
		shared = redis.NewRedisCache(redis.RedisClient)
	}

	// 2. Move provider: Gemini when a key is configured, local heuristic otherwise
	var suggester provider.Suggester
	if cfg.GeminiAPIKey != "" {
		gemini, err := provider.NewGeminiProvider(context.Background(), cfg.GeminiAPIKey, cfg.GeminiModel)
		if err != nil {
			log.Fatalf("Failed to create Gemini client: %v", err)
		}
		log.Printf("Using move provider %s", gemini.Name())
		suggester = gemini
	} else {
		log.Println("GEMINI_API_KEY not set, using the local heuristic move provider")
		suggester = bot.NewHeuristicProvider(nil)
	}

	cached, err := provider.NewCachedProvider(suggester, cfg.SuggestionCacheSize, cfg.SuggestionCacheTTL, shared)
	if err != nil {
		log.Fatalf("Failed to create suggestion cache: %v", err)
	}

	moveAdvisor := advisor.New(cached, advisor.Options{
		Timeout:      cfg.AdvisorTimeout,
		MinThinkTime: cfg.AdvisorMinThinkTime,
	})

	// 3. Sessions and background workers
	sessionManager := game.NewSessionManager(moveAdvisor)
	connManager := websocket.NewConnectionManager()
	cleanupWorker := cleanup.NewWorker(sessionManager, connManager, cfg.SessionIdleTimeout, cfg.CleanupInterval)
	cleanupWorker.Start()
	defer cleanupWorker.Stop()

	// 4. Handlers
	wsHandler := websocket.NewHandler(connManager, sessionManager, cfg.AllowedOrigins)
	gameHandler := transportHttp.NewGameHandler(sessionManager)

	// 5. Setup Gin Router
	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery())
	router.Use(middleware.SecurityHeadersMiddleware())
	router.Use(middleware.CORSMiddleware())

	router.GET("/health", gameHandler.Health)
	router.GET("/api/options", gameHandler.GetOptions)
	router.GET("/api/games", gameHandler.GetLiveGames)
	router.GET("/api/games/:id", gameHandler.GetGame)

	// WebSocket Route (session resume handled inside the WS handler itself)
	router.GET("/ws", gin.WrapF(wsHandler.HandleWebSocket))

	// Serve static frontend files (SPA fallback)
	if _, err := os.Stat("./static"); err == nil {
		router.Static("/assets", "./static/assets")
		router.NoRoute(func(c *gin.Context) {
			c.File("./static/index.html")
		})
	}

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		log.Printf("Server starting on :%s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	log.Println("Server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server exited gracefully")
}
