package db

import (
	"context"
	"fmt"
	"log"

	"github.com/BruksfildServices01/quickcut/internal/config"
	"github.com/BruksfildServices01/quickcut/internal/infra/kvstore/memory"
	"github.com/BruksfildServices01/quickcut/internal/infra/kvstore/postgres"
	redisstore "github.com/BruksfildServices01/quickcut/internal/infra/kvstore/redis"
	s3store "github.com/BruksfildServices01/quickcut/internal/infra/kvstore/s3"
	"github.com/BruksfildServices01/quickcut/internal/infra/kvstore/sqlstore"
	"github.com/BruksfildServices01/quickcut/internal/kv"
	"github.com/BruksfildServices01/quickcut/internal/metrics"
)

// NewStore opens the backend selected by STORE_DRIVER and wraps it with
// Prometheus instrumentation.
func NewStore(ctx context.Context, cfg *config.Config) (kv.Store, error) {
	var (
		store kv.Store
		err   error
	)

	switch cfg.StoreDriver {
	case "", "memory":
		store = memory.New()
	case "postgres":
		store, err = postgres.Open(cfg.DBUrl)
	case "sqlite":
		store, err = sqlstore.OpenSQLite(cfg.SQLitePath)
	case "mysql":
		store, err = sqlstore.OpenMySQL(cfg.MySQLDSN)
	case "redis":
		store, err = redisstore.Open(ctx, redisstore.Config{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
	case "s3":
		store, err = s3store.Open(ctx, s3store.Config{
			Bucket:          cfg.S3Bucket,
			Region:          cfg.S3Region,
			Endpoint:        cfg.S3Endpoint,
			PathStyle:       cfg.S3PathStyle,
			AccessKeyID:     cfg.S3AccessKeyID,
			SecretAccessKey: cfg.S3SecretAccessKey,
		})
	default:
		return nil, fmt.Errorf("%w: %q", kv.ErrUnsupportedDriver, cfg.StoreDriver)
	}
	if err != nil {
		return nil, fmt.Errorf("open %s store: %w", cfg.StoreDriver, err)
	}

	log.Printf("kv store ready (driver=%s)", driverName(cfg.StoreDriver))
	return metrics.Instrument(store), nil
}

func driverName(d string) string {
	if d == "" {
		return "memory"
	}
	return d
}
