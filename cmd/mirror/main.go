package main

import (
	"context"
	"database/sql"
	"errors"
	"io/fs"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/go-sql-driver/mysql"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"luxe_estate/internal/adapters/observability"
	redisad "luxe_estate/internal/adapters/redis"
	"luxe_estate/internal/adapters/sanity"
	"luxe_estate/internal/app"
	"luxe_estate/internal/domain"
	"luxe_estate/internal/shared"
	mysqlrepo "luxe_estate/internal/storage/mysql"
)

func main() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Fatal().Err(err).Msg(".env load failed")
	}
	cfg := shared.Load()
	log.Logger = observability.NewLogger(cfg.AppEnv, cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.Info().
		Str("project", cfg.ProjectID).
		Str("dataset", cfg.Dataset).
		Int("workers", cfg.MirrorWorkers).
		Int("rps", cfg.MirrorRPS).
		Msg("mirror starting")

	db, err := sql.Open("mysql", cfg.MySQLDSN)
	if err != nil {
		log.Fatal().Err(err).Msg("sql.Open failed")
	}
	defer db.Close()
	if err := db.PingContext(ctx); err != nil {
		log.Fatal().Err(err).Msg("db.Ping failed")
	}
	log.Info().Msg("db ping ok")

	client, err := sanity.New(sanity.Config{
		ProjectID:  cfg.ProjectID,
		Dataset:    cfg.Dataset,
		APIVersion: cfg.APIVersion,
		Token:      cfg.ReadToken,
	}, sanity.WithRateLimit(cfg.MirrorRPS))
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize content client")
	}

	// the mirror evicts site cache keys when redis is reachable
	var cache domain.Cache
	if cfg.RedisAddr != "" {
		rc := redisad.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
		if err := rc.Ping(ctx); err != nil {
			log.Warn().Err(err).Msg("redis unreachable, site cache will expire on its own")
			_ = rc.Close()
		} else {
			defer rc.Close()
			cache = rc
		}
	}

	svc := app.NewMirrorService(client, mysqlrepo.New(db), cache, cfg.MirrorWorkers)
	rep, err := svc.Run(ctx)
	total := rep.Total()
	log.Info().
		Int("kinds", len(rep)).
		Int("fetched", total.Fetched).
		Int("upserted", total.Upserted).
		Int("invalid", total.Invalid).
		Int("failed", total.Failed).
		Int("pruned", total.Pruned).
		Msg("mirror summary")
	if err != nil {
		log.Fatal().Err(err).Msg("mirror failed")
	}
	log.Info().Msg("mirror completed")
}
