package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	DatabaseURI          string
	AIAPIKey             string
	AIBaseURL            string
	AIModel              string
	DefaultTimezone      string
	TriageIntervalMinute int
}

func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		// .env file is optional in production
	}

	return &Config{
		DatabaseURI:          os.Getenv("DATABASE_URI"),
		AIAPIKey:             os.Getenv("AI_API_KEY"),
		AIBaseURL:            getEnvOrDefault("AI_BASE_URL", "https://openrouter.ai/api/v1"),
		AIModel:              getEnvOrDefault("AI_MODEL", "openai/gpt-4o-mini"),
		DefaultTimezone:      getEnvOrDefault("DEFAULT_TIMEZONE", "UTC"),
		TriageIntervalMinute: getEnvIntOrDefault("TRIAGE_INTERVAL_MINUTES", 1),
	}, nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return defaultValue
}
