package main

import (
	"context"
	"fmt"
	"os"

	"github.com/rs/zerolog"

	"representantes/internal/config"
	"representantes/internal/database"
	"representantes/internal/logger"
)

// env holds what every command needs: configuration, a logger and a migrated database.
type env struct {
	cfg *config.AppConfig
	log zerolog.Logger
	dbs *database.Service
}

// bootLogger is used before configuration is available.
func bootLogger() zerolog.Logger {
	return logger.NewWithWriter(os.Stderr, "info")
}

func setup(ctx context.Context) (*env, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	log := logger.New(cfg.Env, cfg.LogLevel)

	dbs, err := database.Open(cfg.Database, log)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	// table creation failure is fatal
	if err := dbs.Init(ctx); err != nil {
		dbs.Close()
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	log.Info().
		Str("driver", cfg.Database.Driver).
		Str("protocol", cfg.Database.Protocol).
		Str("database", cfg.Database.Name).
		Bool("init_data", dbs.InitData()).
		Msg("database_ready")

	return &env{cfg: cfg, log: log, dbs: dbs}, nil
}
