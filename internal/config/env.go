package config

import (
	"os"

	"github.com/joho/godotenv"
)

// Env holds process-level settings read from the environment.
type Env struct {
	DBPath      string // ARCADE_DB
	SSHAddr     string // ARCADE_SSH_ADDR
	MetricsAddr string // ARCADE_METRICS_ADDR, empty disables the endpoint
	LogLevel    string // ARCADE_LOG_LEVEL
}

// LoadEnv loads .env files (./.env when none are given) without overriding
// variables already set, then reads the arcade settings.
func LoadEnv(files ...string) Env {
	_ = godotenv.Load(files...)

	return Env{
		DBPath:      getenv("ARCADE_DB", "~/.arcade/scores.db"),
		SSHAddr:     getenv("ARCADE_SSH_ADDR", ":23234"),
		MetricsAddr: os.Getenv("ARCADE_METRICS_ADDR"),
		LogLevel:    getenv("ARCADE_LOG_LEVEL", "info"),
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
