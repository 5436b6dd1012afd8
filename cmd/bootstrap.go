package cmd

import (
	"fmt"

	"room-finder/core/config"
	"room-finder/core/database"
	"room-finder/core/logger"
	"room-finder/core/storage"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// environment is what every command needs before doing its own work.
type environment struct {
	cfg   *config.Config
	logg  *zap.Logger
	store storage.Client
	db    *gorm.DB
}

// loadEnvironment reads the configuration and builds the logger.
func loadEnvironment() (*environment, error) {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	logg, err := logger.New(&cfg.Log)
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}

	return &environment{cfg: cfg, logg: logg}, nil
}

// connectStorage creates the storage client.
func (e *environment) connectStorage() error {
	store, err := storage.NewClient(e.cfg.Storage)
	if err != nil {
		return fmt.Errorf("failed to create storage client: %w", err)
	}
	e.store = store
	return nil
}

// connectDatabase opens the database. When optional, a failure is only logged.
func (e *environment) connectDatabase(optional bool) error {
	db, err := database.Connect(e.cfg.Database)
	if err != nil {
		if optional {
			e.logg.Warn("Optional database connection failed", zap.Error(err))
			return nil
		}
		return fmt.Errorf("database connection required: %w", err)
	}
	e.db = db
	e.logg.Info("Connected to database",
		zap.String("driver", e.cfg.Database.Driver),
		zap.String("name", e.cfg.Database.Name))
	return nil
}
