package config

import (
	"log/slog"
	"os"
	"time"

	"github.com/joho/godotenv"
)

const (
	defaultPollInterval = 30 * time.Second
	defaultPollTimeout  = 10 * time.Second
)

// ClientConfig configures the caller-side alarm poller.
type ClientConfig struct {
	ServerURL    string
	Token        string
	PollInterval time.Duration
	PollTimeout  time.Duration
	LogLevel     string
}

func LoadClientConfig() *ClientConfig {
	_ = godotenv.Load()

	return &ClientConfig{
		ServerURL:    getEnvOrDefault("ALARM_SERVER_URL", "http://localhost:8080"),
		Token:        os.Getenv("ALARM_TOKEN"),
		PollInterval: parseDurationOrDefault(os.Getenv("POLL_INTERVAL"), defaultPollInterval),
		PollTimeout:  parseDurationOrDefault(os.Getenv("POLL_TIMEOUT"), defaultPollTimeout),
		LogLevel:     os.Getenv("LOG_LEVEL"),
	}
}

func (c *ClientConfig) Validate() error {
	if c.ServerURL == "" {
		return ErrServerURLMissing
	}
	if c.Token == "" {
		return ErrTokenMissing
	}
	return nil
}

func (c *ClientConfig) SlogLevel() slog.Level {
	return parseLogLevel(c.LogLevel)
}

func parseDurationOrDefault(raw string, def time.Duration) time.Duration {
	if raw == "" {
		return def
	}
	parsed, err := time.ParseDuration(raw)
	if err != nil || parsed <= 0 {
		return def
	}
	return parsed
}
