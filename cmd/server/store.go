package main

import (
	"context"
	"fmt"

	"github.com/hackernews-graphql-api/internal/api"
	"github.com/hackernews-graphql-api/internal/config"
	"github.com/hackernews-graphql-api/internal/database"
	"github.com/hackernews-graphql-api/internal/models"
	"github.com/hackernews-graphql-api/internal/repository"
	"github.com/rs/zerolog"
)

// store is the storage backend selected by DB_DRIVER
type store struct {
	repos       *repository.Repositories
	health      api.HealthCheck
	migrateUp   func() error
	migrateDown func() error
	close       func() error
}

func openStore(cfg *config.Config, log zerolog.Logger) (*store, error) {
	switch cfg.Database.Driver {
	case config.DriverSQLite:
		db, err := database.OpenSQLite(&cfg.Database, log)
		if err != nil {
			return nil, err
		}
		sqlDB, err := db.DB()
		if err != nil {
			return nil, err
		}
		return &store{
			repos:     repository.NewGorm(db),
			health:    func(ctx context.Context) error { return database.PingGorm(ctx, db) },
			migrateUp: func() error { return database.AutoMigrate(db) },
			migrateDown: func() error {
				return db.Migrator().DropTable(&models.Comment{}, &models.Link{})
			},
			close: sqlDB.Close,
		}, nil

	case config.DriverPostgres:
		db, err := database.New(&cfg.Database, log)
		if err != nil {
			return nil, err
		}
		return &store{
			repos:       repository.New(db),
			health:      db.HealthCheck,
			migrateUp:   db.RunMigrations,
			migrateDown: db.MigrateDown,
			close:       db.Close,
		}, nil

	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Database.Driver)
	}
}
