package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/wheelhouse/site-api/internal/api"
	dbmongo "github.com/wheelhouse/site-api/internal/infrastructure/db/mongo"
	dbredis "github.com/wheelhouse/site-api/internal/infrastructure/db/redis"
	"github.com/wheelhouse/site-api/internal/pkg/config"
	"github.com/wheelhouse/site-api/pkg/logger"
)

const shutdownGrace = 10 * time.Second

func main() {
	cfg := config.Load()

	log := logger.New(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.IsDev(),
	})

	if cfg.Mongo.URI == "" {
		// The process still serves health and static routes; every action
		// dispatch reports the missing credentials instead.
		log.Warn().Msg("MONGO_URI not set: all persistence-backed actions will fail")
	}
	conn := dbmongo.NewLazy(dbmongo.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var rdb *redis.Client
	if client, err := dbredis.Connect(ctx, dbredis.Config{Addr: cfg.Redis.Addr, DB: cfg.Redis.DB}); err != nil {
		log.Warn().Err(err).Msg("redis unavailable: login lockout disabled")
	} else {
		rdb = client
		defer rdb.Close()
	}

	e := api.NewRouter(cfg, conn, rdb, log)

	go func() {
		if err := e.Start(":" + cfg.Port); err != nil {
			log.Info().Err(err).Msg("http server stopped")
		}
	}()
	log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("server started")

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}
