package cli

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/go-sql-driver/mysql"
	"github.com/rs/zerolog/log"

	redisad "luxe_estate/internal/adapters/redis"
	"luxe_estate/internal/adapters/sanity"
	"luxe_estate/internal/app"
	"luxe_estate/internal/domain"
	"luxe_estate/internal/shared"
	mysqlrepo "luxe_estate/internal/storage/mysql"
)

// openContent wires the configured store and the optional shared cache into
// a content service. The returned func releases both.
func openContent(ctx context.Context, c shared.Config) (*app.ContentService, func(), error) {
	store, closeStore, err := openStore(ctx, c)
	if err != nil {
		return nil, func() {}, err
	}
	cache, closeCache := openCache(ctx, c)
	cleanup := func() {
		closeCache()
		closeStore()
	}
	return app.NewContentService(store, cache, c.Revalidate), cleanup, nil
}

func openStore(ctx context.Context, c shared.Config) (domain.ContentStore, func(), error) {
	switch c.Backend {
	case shared.BackendMySQL:
		db, err := sql.Open("mysql", c.MySQLDSN)
		if err != nil {
			return nil, nil, fmt.Errorf("sql.Open: %w", err)
		}
		if err := db.PingContext(ctx); err != nil {
			_ = db.Close()
			return nil, nil, fmt.Errorf("db.Ping: %w", err)
		}
		log.Info().Msg("reading content from the mysql read model")
		return mysqlrepo.New(db), func() { _ = db.Close() }, nil
	default:
		cl, err := sanity.New(sanity.Config{
			ProjectID:  c.ProjectID,
			Dataset:    c.Dataset,
			APIVersion: c.APIVersion,
			Token:      c.ReadToken,
			UseCDN:     c.UseCDN,
		})
		if err != nil {
			return nil, nil, err
		}
		log.Info().Str("project", c.ProjectID).Str("dataset", c.Dataset).Msg("reading content from the content api")
		return cl, func() {}, nil
	}
}

// openCache connects redis when configured. An unreachable redis is logged
// and the site runs without a shared cache.
func openCache(ctx context.Context, c shared.Config) (domain.Cache, func()) {
	if c.RedisAddr == "" {
		return nil, func() {}
	}
	rc := redisad.New(c.RedisAddr, c.RedisPass, c.RedisDB)
	if err := rc.Ping(ctx); err != nil {
		log.Warn().Err(err).Str("addr", c.RedisAddr).Msg("redis unreachable, running without shared cache")
		_ = rc.Close()
		return nil, func() {}
	}
	return rc, func() { _ = rc.Close() }
}
