// Package config provides configuration for the wallboard.
package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds the wallboard configuration.
type Config struct {
	// Server settings
	HTTPPort         int
	CORSAllowOrigins []string
	ShutdownTimeout  time.Duration

	// Store
	StoreDriver string
	DatabaseURL string
	SeedAgents  bool

	// Client settings
	ServerURL string

	// Logging
	LogLevel  string
	LogFormat string
}

// Load loads configuration from environment variables.
func Load() *Config {
	return &Config{
		HTTPPort:         getEnvInt("HTTP_PORT", 3001),
		CORSAllowOrigins: getEnvList("CORS_ALLOW_ORIGINS", []string{"*"}),
		ShutdownTimeout:  time.Duration(getEnvInt("SHUTDOWN_TIMEOUT_MS", 10000)) * time.Millisecond,
		StoreDriver:      getEnv("STORE_DRIVER", "memory"),
		DatabaseURL:      getEnv("DATABASE_URL", ":memory:"),
		SeedAgents:       getEnvBool("SEED_AGENTS", true),
		ServerURL:        getEnv("WALLBOARD_URL", "http://localhost:3001"),
		LogLevel:         getEnv("LOG_LEVEL", "info"),
		LogFormat:        getEnv("LOG_FORMAT", "text"),
	}
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

func getEnvList(key string, defaultVal []string) []string {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	var out []string
	for _, part := range strings.Split(val, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	if len(out) == 0 {
		return defaultVal
	}
	return out
}
