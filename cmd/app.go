package main

import (
	"context"
	"fmt"

	"github.com/Triaksa-Space/bootcamp-site/config"
	"github.com/Triaksa-Space/bootcamp-site/domain/content"
	"github.com/Triaksa-Space/bootcamp-site/pkg/kv"
	"github.com/Triaksa-Space/bootcamp-site/pkg/logger"
	"github.com/Triaksa-Space/bootcamp-site/pkg/secret"
	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"
)

// app holds the configuration and connections shared by every command.
type app struct {
	cfg     *config.Config
	log     logger.Logger
	redis   *redis.Client
	db      *sqlx.DB
	backend kv.Backend
}

func openApp(ctx context.Context) (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	log := logger.Init(logger.Config{
		Level:       logger.Level(cfg.LogLevel),
		Environment: cfg.Environment,
		Version:     Version,
	})

	a := &app{cfg: cfg, log: log}

	if cfg.RedisURL != "" {
		client, err := config.NewRedisClient(ctx, cfg.RedisURL)
		switch {
		case err == nil:
			a.redis = client
		case cfg.KVDriver == "redis":
			return nil, err
		default:
			log.Warn("Redis unavailable; webhook dedupe and shared rate limits are disabled", logger.Err(err))
		}
	}

	switch cfg.KVDriver {
	case "redis":
		a.backend = kv.NewRedisBackend(a.redis)
	case "mysql", "postgres":
		db, err := config.OpenDB(ctx, cfg.KVDriver, cfg.DatabaseURL)
		if err != nil {
			a.Close()
			return nil, err
		}
		a.db = db
		a.backend = kv.NewSQLBackend(db)
	case "":
		log.Warn("No content store configured; serving default content")
	default:
		a.Close()
		return nil, fmt.Errorf("unknown KV_DRIVER %q", cfg.KVDriver)
	}

	if a.backend != nil {
		log.Info("Content store ready", logger.Provider(a.backend.Name()), logger.ContentKey(cfg.ContentKey))
	}
	return a, nil
}

func (a *app) contentStore() *content.Store {
	return content.NewStore(a.backend, a.cfg.ContentKey, secret.NewGuard(a.cfg.EditPassword), a.log)
}

func (a *app) Close() {
	if a.redis != nil {
		_ = a.redis.Close()
	}
	if a.db != nil {
		_ = a.db.Close()
	}
}
