package database

import (
	"context"
	"fmt"
	"strings"

	"github.com/glebarez/sqlite"
	"github.com/hackernews-graphql-api/internal/config"
	"github.com/hackernews-graphql-api/internal/models"
	"github.com/rs/zerolog"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// MemoryPath opens a private in-memory SQLite database
const MemoryPath = ":memory:"

// OpenSQLite opens the embedded SQLite store through GORM with foreign keys enforced
// and driver errors translated to gorm sentinels.
func OpenSQLite(cfg *config.DatabaseConfig, log zerolog.Logger) (*gorm.DB, error) {
	dsn := cfg.SQLitePath
	if strings.Contains(dsn, "?") {
		dsn += "&_pragma=foreign_keys(1)"
	} else {
		dsn += "?_pragma=foreign_keys(1)"
	}

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql database: %w", err)
	}
	// Every new connection to :memory: is a fresh, empty database
	if cfg.SQLitePath == MemoryPath {
		sqlDB.SetMaxOpenConns(1)
	}

	dbLog := log.With().Str("component", "database").Logger()
	dbLog.Info().
		Str("path", cfg.SQLitePath).
		Msg("SQLite database opened")

	return db, nil
}

// AutoMigrate creates or updates the SQLite tables from the models
func AutoMigrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&models.Link{}, &models.Comment{}); err != nil {
		return fmt.Errorf("failed to migrate sqlite database: %w", err)
	}
	return nil
}

// PingGorm verifies the GORM connection is healthy
func PingGorm(ctx context.Context, db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}
