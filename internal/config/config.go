// ABOUTME: Centralized configuration for the recipedex server and CLI
// ABOUTME: Loads from environment variables with validation and defaults
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/harper/recipedex/internal/storage/sqlite"
)

// Config holds all configuration for the recipe service
type Config struct {
	// Server settings
	Port         int
	DatabasePath string

	// OpenAI settings
	OpenAIKey string
	ChatModel string
	Timeout   time.Duration
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{
		// Defaults
		Port:         getEnvInt("PORT", 3001),
		DatabasePath: getEnv("DATABASE_PATH", sqlite.DefaultDBPath()),
		OpenAIKey:    os.Getenv("OPENAI_API_KEY"),
		ChatModel:    getEnv("RECIPEDEX_OPENAI_MODEL", "gpt-3.5-turbo"),
		Timeout:      getEnvDuration("OPENAI_TIMEOUT", 30*time.Second),
	}

	return cfg, cfg.Validate()
}

func (c *Config) Validate() error {
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("PORT must be 1-65535, got %d", c.Port)
	}
	if c.Timeout <= 0 {
		return fmt.Errorf("OPENAI_TIMEOUT must be positive, got %v", c.Timeout)
	}
	return nil
}

// Helper functions
func getEnv(key, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return defaultVal
}

func getEnvDuration(key string, defaultVal time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return defaultVal
}
