package config

import (
	"os"
	"strconv"
)

// ============================================================
// Configuration
// ============================================================

type Config struct {
	Port         string
	Environment  string
	ReadTimeout  int
	WriteTimeout int

	// Service discovery
	DiagramsURL string
	ChatURL     string

	// Chat service storage
	ChatDBPath string

	// Rendering defaults
	DefaultLanguage string
	CanvasWidth     float64
	CanvasHeight    float64
}

// Load reads configuration from environment variables with defaults.
func Load() *Config {
	return &Config{
		Port:            getEnv("PORT", "3000"),
		Environment:     getEnv("ENV", "development"),
		ReadTimeout:     getEnvAsInt("READ_TIMEOUT", 10),
		WriteTimeout:    getEnvAsInt("WRITE_TIMEOUT", 10),
		DiagramsURL:     getEnv("DIAGRAMS_URL", "http://localhost:3001"),
		ChatURL:         getEnv("CHAT_URL", "http://localhost:3002"),
		ChatDBPath:      getEnv("CHAT_DB_PATH", "data/db/chat.db"),
		DefaultLanguage: getEnv("DEFAULT_LANGUAGE", "en"),
		CanvasWidth:     getEnvAsFloat("CANVAS_WIDTH", 400),
		CanvasHeight:    getEnvAsFloat("CANVAS_HEIGHT", 300),
	}
}

func getEnv(key, defaultVal string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultVal
}

func getEnvAsInt(key string, defaultVal int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultVal
}

func getEnvAsFloat(key string, defaultVal float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatVal, err := strconv.ParseFloat(value, 64); err == nil {
			return floatVal
		}
	}
	return defaultVal
}
