package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	Port           string
	AllowedOrigins []string
	FrontendURL    string

	JWTSecret    string
	GameTokenTTL time.Duration

	GeminiAPIKey string
	GeminiModel  string

	AdvisorTimeout      time.Duration
	AdvisorMinThinkTime time.Duration

	SuggestionCacheSize int
	SuggestionCacheTTL  time.Duration

	RedisURL      string
	RedisPassword string

	SessionIdleTimeout time.Duration
	CleanupInterval    time.Duration
}

var AppConfig *Config

func LoadConfig() *Config {
	port := GetEnv("PORT", "8080")

	// Frontend & CORS
	frontendURL := GetEnv("FRONTEND_URL", "http://localhost:5173")
	allowedOriginsStr := GetEnv("ALLOWED_ORIGINS", "")

	// Build allowed origins list (Frontend URL + Localhost + CSV values)
	allowedOrigins := []string{
		frontendURL,
		"http://localhost:5173", // Local development
	}
	if allowedOriginsStr != "" {
		extras := strings.Split(allowedOriginsStr, ",")
		for _, origin := range extras {
			trimmed := strings.TrimSpace(origin)
			if trimmed != "" {
				allowedOrigins = append(allowedOrigins, trimmed)
			}
		}
	}

	// Security
	jwtSecret := GetEnv("JWT_SECRET", "your-secret-key-change-this-in-production")
	gameTokenTTLHours := GetEnvAsInt("GAME_TOKEN_TTL_HOURS", 24)

	// Move provider
	geminiAPIKey := GetEnv("GEMINI_API_KEY", "")
	geminiModel := GetEnv("GEMINI_MODEL", "gemini-2.5-flash")
	advisorTimeoutMs := GetEnvAsInt("ADVISOR_TIMEOUT_MS", 3000)
	advisorMinThinkMs := GetEnvAsInt("ADVISOR_MIN_THINK_MS", 1000)

	// Suggestion cache
	cacheSize := GetEnvAsInt("SUGGESTION_CACHE_SIZE", 1024)
	cacheTTLMin := GetEnvAsInt("SUGGESTION_CACHE_TTL_MINUTES", 60)
	redisURL := GetEnv("REDIS_URL", "")
	redisPassword := GetEnv("REDIS_PASSWORD", "")

	// Sessions
	idleTimeoutMin := GetEnvAsInt("SESSION_IDLE_TIMEOUT_MINUTES", 60)
	cleanupIntervalMin := GetEnvAsInt("CLEANUP_INTERVAL_MINUTES", 10)

	AppConfig = &Config{
		Port:                port,
		AllowedOrigins:      allowedOrigins,
		FrontendURL:         frontendURL,
		JWTSecret:           jwtSecret,
		GameTokenTTL:        time.Duration(gameTokenTTLHours) * time.Hour,
		GeminiAPIKey:        geminiAPIKey,
		GeminiModel:         geminiModel,
		AdvisorTimeout:      time.Duration(advisorTimeoutMs) * time.Millisecond,
		AdvisorMinThinkTime: time.Duration(advisorMinThinkMs) * time.Millisecond,
		SuggestionCacheSize: cacheSize,
		SuggestionCacheTTL:  time.Duration(cacheTTLMin) * time.Minute,
		RedisURL:            redisURL,
		RedisPassword:       redisPassword,
		SessionIdleTimeout:  time.Duration(idleTimeoutMin) * time.Minute,
		CleanupInterval:     time.Duration(cleanupIntervalMin) * time.Minute,
	}

	return AppConfig
}

func GetEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func GetEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Printf("Invalid integer value for %s: %s, using default: %d", key, valueStr, defaultValue)
		return defaultValue
	}
	return value
}
