package config

import (
	"os"
	"strconv"
)

// Config holds all configuration for our application. Every key has a
// default, so the application runs with no .env file and no environment
// variables set.
type Config struct {
	Port                     string
	Addr                     string
	Origin                   string
	Environment              string
	SessionSecret            string
	SessionExpirationMinutes int
	Database                 DatabaseConfig
	ExportDir                string
}

// DatabaseConfig holds database connection details
type DatabaseConfig struct {
	Path string
}

// LoadConfig loads configuration from environment variables
func LoadConfig() (*Config, error) {
	dbConfig := DatabaseConfig{
		Path: getEnv("DB_PATH", "hospital.db"),
	}

	sessionExpMinutes, err := strconv.Atoi(getEnv("SESSION_EXPIRATION_MINUTES", "720"))
	if err != nil {
		return nil, err
	}

	return &Config{
		// Bound to loopback: one local operator, no remote exposure.
		Port:                     getEnv("PORT", "3001"),
		Addr:                     getEnv("ADDR", "127.0.0.1"),
		Origin:                   getEnv("ORIGIN", "http://localhost:4200"),
		Environment:              getEnv("APP_ENV", "development"),
		SessionSecret:            getEnv("SESSION_SECRET", "default_session_secret"),
		SessionExpirationMinutes: sessionExpMinutes,
		Database:                 dbConfig,
		ExportDir:                getEnv("EXPORT_DIR", os.TempDir()),
	}, nil
}

// Helper function to get environment variable with a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
