package config

import (
	"log/slog"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Port        string
	LogLevel    slog.Level
	JWTSecret   string
	Database    *DatabaseConfig
	Redis       *RedisConfig
	Reminder    *ReminderConfig
	AlarmEvents *AlarmEventsConfig
}

func Load() (*Config, error) {
	// .env is optional; real environment variables win.
	_ = godotenv.Load()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	redisConfig, err := LoadRedisConfig()
	if err != nil {
		return nil, err
	}

	reminderConfig, err := LoadReminderConfig()
	if err != nil {
		return nil, err
	}

	return &Config{
		Port:        port,
		LogLevel:    parseLogLevel(os.Getenv("LOG_LEVEL")),
		JWTSecret:   os.Getenv("JWT_SECRET"),
		Database:    LoadDatabaseConfig(),
		Redis:       redisConfig,
		Reminder:    reminderConfig,
		AlarmEvents: LoadAlarmEventsConfig(),
	}, nil
}

func parseLogLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func getEnvOrDefault(key, defaultValue string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultValue
}
