// Package config provides configuration for the chat service.
package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds the service configuration. Values are read once at startup
// and injected into component constructors; nothing reads the environment
// after Load returns.
type Config struct {
	// Server settings
	HTTPPort int

	// Database
	DatabaseURL string

	// Auth
	JWTSecret  string
	TokenTTL   time.Duration
	BcryptCost int

	// Completion gateway
	GatewayURL     string
	GatewayAPIKey  string
	GatewayModel   string
	GatewayTimeout time.Duration

	// When true, a user turn is removed again if the gateway call fails.
	// Default keeps the turn, leaving an unanswered message in the history.
	RollbackFailedTurns bool

	// Logging
	LogLevel string
}

// Load loads configuration from environment variables.
func Load() *Config {
	cfg := &Config{
		HTTPPort:            getEnvInt("HTTP_PORT", 8080),
		DatabaseURL:         getEnv("DATABASE_URL", "file:chat.db?cache=shared&mode=rwc"),
		JWTSecret:           getEnv("JWT_SECRET", ""),
		TokenTTL:            time.Duration(getEnvInt("TOKEN_TTL_HOURS", 72)) * time.Hour,
		BcryptCost:          getEnvInt("BCRYPT_COST", 10),
		GatewayURL:          getEnv("GATEWAY_URL", "https://api.openai.com"),
		GatewayAPIKey:       getEnv("GATEWAY_API_KEY", ""),
		GatewayModel:        getEnv("GATEWAY_MODEL", "gpt-4o-mini"),
		GatewayTimeout:      time.Duration(getEnvInt("GATEWAY_TIMEOUT_MS", 30000)) * time.Millisecond,
		RollbackFailedTurns: getEnvBool("ROLLBACK_FAILED_TURNS", false),
		LogLevel:            getEnv("LOG_LEVEL", "info"),
	}
	return cfg
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) int {
	if val := os.Getenv(key); val != "" {
		if intVal, err := strconv.Atoi(val); err == nil {
			return intVal
		}
	}
	return defaultVal
}

func getEnvBool(key string, defaultVal bool) bool {
	if val := os.Getenv(key); val != "" {
		if boolVal, err := strconv.ParseBool(val); err == nil {
			return boolVal
		}
	}
	return defaultVal
}
