package config

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"backrooms/internal/generate"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the SSH viewer server
type Config struct {
	Generation GenerationConfig
	SSH        SSHConfig
}

// GenerationConfig holds the layout every new session starts with
type GenerationConfig struct {
	Width  int
	Height int
	Seed   int64 // 0 gives every session its own time-derived seed
	Mode   string
	Theme  int
}

// SSHConfig holds listener configuration
type SSHConfig struct {
	Port        int
	HostKeyPath string
	MaxSessions int
}

// Load reads configuration from environment variables and a .env file in the
// current working directory. It does not validate; call Validate.
func Load() (*Config, error) {
	// Environment variables can still be set directly without a .env file.
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found (this is OK if using environment variables): %v", err)
	}

	config := &Config{
		Generation: GenerationConfig{
			Width:  getIntEnv("BACKROOMS_WIDTH", 75),
			Height: getIntEnv("BACKROOMS_HEIGHT", 75),
			Seed:   getInt64Env("BACKROOMS_SEED", 0),
			Mode:   getEnv("BACKROOMS_MODE", "classic"),
			Theme:  getIntEnv("BACKROOMS_THEME", 0),
		},
		SSH: SSHConfig{
			Port:        getIntEnv("SSH_PORT", 2222),
			HostKeyPath: getEnv("SSH_HOST_KEY", "server_host_key"),
			MaxSessions: getIntEnv("SSH_MAX_SESSIONS", 16),
		},
	}
	return config, nil
}

// Validate checks that the configuration can start a server
func (c *Config) Validate() error {
	if c.Generation.Width <= 0 || c.Generation.Height <= 0 {
		return fmt.Errorf("BACKROOMS_WIDTH and BACKROOMS_HEIGHT must be positive, got %dx%d",
			c.Generation.Width, c.Generation.Height)
	}
	if _, err := generate.ParseMode(c.Generation.Mode); err != nil {
		return fmt.Errorf("BACKROOMS_MODE: %w", err)
	}
	if c.SSH.Port <= 0 || c.SSH.Port > 65535 {
		return fmt.Errorf("SSH_PORT out of range: %d", c.SSH.Port)
	}
	if c.SSH.HostKeyPath == "" {
		return fmt.Errorf("SSH_HOST_KEY is required")
	}
	if c.SSH.MaxSessions <= 0 {
		return fmt.Errorf("SSH_MAX_SESSIONS must be positive, got %d", c.SSH.MaxSessions)
	}
	return nil
}

// ParsedMode returns the generation mode, falling back to classic.
func (c *GenerationConfig) ParsedMode() generate.Mode {
	m, err := generate.ParseMode(c.Mode)
	if err != nil {
		return generate.ModeClassic
	}
	return m
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getIntEnv(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	intValue, err := strconv.Atoi(value)
	if err != nil {
		log.Printf("Warning: invalid integer value for %s: %s, using default: %d", key, value, defaultValue)
		return defaultValue
	}
	return intValue
}

func getInt64Env(key string, defaultValue int64) int64 {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	intValue, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		log.Printf("Warning: invalid integer value for %s: %s, using default: %d", key, value, defaultValue)
		return defaultValue
	}
	return intValue
}
