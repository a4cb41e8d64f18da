package config

import "os"

const (
	databaseURLEnv = "DATABASE_URL"
	sqlitePathEnv  = "SQLITE_PATH"

	defaultSQLitePath = "reminders.db"
)

type DatabaseConfig struct {
	// URL selects PostgreSQL when set; otherwise SQLitePath is used.
	URL        string
	SQLitePath string
}

func LoadDatabaseConfig() *DatabaseConfig {
	return &DatabaseConfig{
		URL:        os.Getenv(databaseURLEnv),
		SQLitePath: getEnvOrDefault(sqlitePathEnv, defaultSQLitePath),
	}
}

func (c *DatabaseConfig) UsePostgres() bool {
	return c.URL != ""
}
