package config

import (
	"errors"
	"io/fs"

	"github.com/joho/godotenv"
)

// Config holds runtime configuration for the dashboard.
type Config struct {
	Port          string
	Dataset       DatasetConfig
	ChatCorpus    string
	SessionCookie string
	Metrics       MetricsConfig
}

// Load reads configuration from environment variables with sensible defaults.
func Load() Config {
	return Config{
		Port:          envOrDefault(envPort, defaultPort),
		Dataset:       loadDataset(),
		ChatCorpus:    envOrDefault(envChatCorpus, ""),
		SessionCookie: envOrDefault(envSessionCookie, defaultSessionCookie),
		Metrics:       loadMetrics(),
	}
}

// LoadDotenv populates the environment from a dotenv file before Load is called.
// A missing file is not an error; variables already set in the environment win.
func LoadDotenv() error {
	path := envOrDefault(envDotenvFile, defaultDotenvFile)
	if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}
