package config

import (
	"os"
	"strconv"
	"time"
)

// defaultJWTSecret is only for local development. Set JWT_SECRET in any real
// deployment.
const defaultJWTSecret = "dev-secret-do-not-use-in-production"

// Config holds the application configuration.
type Config struct {
	ServerPort int
	UsersFile  string // Path to the persisted username -> hash mapping
	JWTSecret  string
	TokenTTL   time.Duration
}

// Load loads configuration from environment variables or sets defaults.
func Load() (*Config, error) {
	portStr := getEnv("PORT", "8080")
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return nil, err
	}

	ttlStr := getEnv("TOKEN_TTL_HOURS", "24")
	ttlHours, err := strconv.Atoi(ttlStr)
	if err != nil {
		return nil, err
	}

	return &Config{
		ServerPort: port,
		UsersFile:  getEnv("USERS_FILE", "./users.json"),
		JWTSecret:  getEnv("JWT_SECRET", defaultJWTSecret),
		TokenTTL:   time.Duration(ttlHours) * time.Hour,
	}, nil
}

// UsingDefaultSecret reports whether the signing secret was left unset.
func (c *Config) UsingDefaultSecret() bool {
	return c.JWTSecret == defaultJWTSecret
}

// Helper to get an environment variable with a default value.
func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}
