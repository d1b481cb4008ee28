package config

import (
	"os"
	"strconv"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
)

const (
	defaultPort            = "8080"
	defaultEventID         = "hpl"
	defaultOverviewWorkers = 4
)

// Load reads configuration from environment variables and .env file.
func Load() Config {
	err := godotenv.Load()
	if err != nil {
		log.Info("No .env file found, reading from environment variables")
	}

	// A helper function to get a required env var. It will fail if the env var is not set.
	getEnv := func(key string) string {
		if value, ok := os.LookupEnv(key); ok {
			return value
		}
		log.Fatalf("Error: Required environment variable %s is not set.", key)
		return "" // This line is never reached
	}

	cfg := Config{
		DBName:            getEnv("DB_NAME"),
		Port:              getEnvOrDefault("PORT", defaultPort),
		DefaultEventID:    getEnvOrDefault("DEFAULT_EVENT_ID", defaultEventID),
		SchemaAliasesFile: os.Getenv("SCHEMA_ALIASES_FILE"),
		OverviewWorkers:   getIntOrDefault("OVERVIEW_WORKERS", defaultOverviewWorkers),
		Slack: SlackConfig{
			SigningSecret: os.Getenv("SLACK_SIGNING_SECRET"),
		},
		Turso: TursoConfig{
			PrimaryURL: os.Getenv("TURSO_PRIMARY_URL"),
			AuthToken:  os.Getenv("TURSO_AUTH_TOKEN"),
		},
	}
	return cfg
}

func getEnvOrDefault(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}

func getIntOrDefault(key string, fallback int) int {
	raw, ok := os.LookupEnv(key)
	if !ok || raw == "" {
		return fallback
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 {
		log.Warn("Invalid integer environment variable, using default", "key", key, "value", raw, "default", fallback)
		return fallback
	}
	return n
}
