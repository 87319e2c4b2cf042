package config

import (
	"os"
	"strconv"
)

// Config holds the application configuration.
type Config struct {
	ServerPort    int
	DatabasePath  string
	DataDir       string // Base path for the case bank and quiz bank files
	SessionSecret string
	SecureCookies bool
}

// Load loads configuration from environment variables or sets defaults.
func Load() (*Config, error) {
	portStr := getEnv("PORT", "8080")
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return nil, err
	}

	return &Config{
		ServerPort:    port,
		DatabasePath:  getEnv("DATABASE_PATH", "./data/app.db"),
		DataDir:       getEnv("DATA_DIR", "./data"),
		SessionSecret: getEnv("SESSION_SECRET", "dev-secret-change-me"),
		SecureCookies: os.Getenv("APP_HTTPS") == "1",
	}, nil
}

// Helper to get an environment variable with a default value.
func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}
