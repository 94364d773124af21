package shared

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
)

const (
	BackendAPI   = "api"
	BackendMySQL = "mysql"
)

type Config struct {
	AppEnv      string
	LogLevel    string
	HTTPAddr    string
	MetricsAddr string
	StudioURL   string

	// content store
	ProjectID  string
	Dataset    string
	APIVersion string
	ReadToken  string
	UseCDN     bool
	Backend    string
	MySQLDSN   string

	RedisAddr  string
	RedisDB    int
	RedisPass  string
	Revalidate time.Duration

	MirrorWorkers int
	MirrorRPS     int
}

func Load() Config {
	atoi := func(k string, def int) int {
		if v := os.Getenv(k); v != "" {
			if n, err := strconv.Atoi(v); err == nil {
				return n
			}
		}
		return def
	}
	c := Config{
		AppEnv:        env("APP_ENV", "prod"),
		LogLevel:      env("LOG_LEVEL", "info"),
		HTTPAddr:      env("HTTP_ADDR", ":8080"),
		MetricsAddr:   env("METRICS_ADDR", ""),
		StudioURL:     env("STUDIO_URL", ""),
		ProjectID:     env("SANITY_PROJECT_ID", env("NEXT_PUBLIC_SANITY_PROJECT_ID", "38fw45r3")),
		Dataset:       env("SANITY_DATASET", env("NEXT_PUBLIC_SANITY_DATASET", "production")),
		APIVersion:    env("SANITY_API_VERSION", "2024-01-01"),
		ReadToken:     env("SANITY_API_READ_TOKEN", ""),
		UseCDN:        boolEnv("SANITY_USE_CDN", true),
		Backend:       strings.ToLower(env("CONTENT_BACKEND", BackendAPI)),
		MySQLDSN:      env("MYSQL_DSN", "root:root@tcp(localhost:3306)/luxe_estate?parseTime=true&charset=utf8mb4,utf8&loc=UTC"),
		RedisAddr:     env("REDIS_ADDR", ""),
		RedisPass:     env("REDIS_PASSWORD", ""),
		RedisDB:       atoi("REDIS_DB", 0),
		Revalidate:    time.Duration(atoi("REVALIDATE_SECONDS", 60)) * time.Second,
		MirrorWorkers: atoi("MIRROR_WORKERS", 4),
		MirrorRPS:     atoi("MIRROR_RPS", 5),
	}
	if c.Backend != BackendAPI && c.Backend != BackendMySQL {
		log.Warn().Str("backend", c.Backend).Msg("unknown CONTENT_BACKEND, using api")
		c.Backend = BackendAPI
	}
	if c.ReadToken == "" {
		log.Debug().Msg("SANITY_API_READ_TOKEN is empty, reading published content anonymously")
	}
	return c
}

func env(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func boolEnv(k string, def bool) bool {
	if v := os.Getenv(k); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return def
}
