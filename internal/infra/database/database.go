package database

import (
	"context"
	"log/slog"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/KasumiMercury/primind-visit-reminder/internal/config"
)

// Open connects to PostgreSQL when a database URL is configured, otherwise to a sqlite file,
// and migrates the reminder schema.
func Open(ctx context.Context, cfg *config.DatabaseConfig) (*gorm.DB, error) {
	gormConfig := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	}

	var dialector gorm.Dialector
	if cfg.UsePostgres() {
		dialector = postgres.Open(cfg.URL)
	} else {
		dialector = sqlite.Open(cfg.SQLitePath)
	}

	db, err := gorm.Open(dialector, gormConfig)
	if err != nil {
		return nil, err
	}

	if err := Migrate(db); err != nil {
		return nil, err
	}

	logBackend(ctx, db)
	return db, nil
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&recordModel{}, &reminderModel{})
}

func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func logBackend(ctx context.Context, db *gorm.DB) {
	slog.InfoContext(ctx, "database connected",
		slog.String("backend", db.Dialector.Name()),
	)
}
