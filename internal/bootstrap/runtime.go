// Package bootstrap wires up runtime dependencies shared by the server
// and auxiliary commands.
package bootstrap

import (
	"context"
	"fmt"

	"retrospace/internal/cache"
	"retrospace/internal/config"
	"retrospace/internal/database"
	"retrospace/internal/observability"
	"retrospace/internal/seed"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// Options control runtime initialization behavior.
type Options struct {
	SeedDemoData bool
}

// InitRuntime connects to the database and Redis, starts tracing if
// configured, and optionally seeds demo data.
func InitRuntime(cfg *config.Config, opts Options) (*gorm.DB, *redis.Client, func(context.Context) error, error) {
	db, err := database.Connect(cfg)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("database connection failed: %w", err)
	}

	// May leave a nil client if Redis is unreachable; callers degrade
	cache.InitRedis(cfg.RedisURL)
	rdb := cache.GetClient()

	shutdownTracing, err := observability.InitTracing(observability.TracingConfig{
		ServiceName:  "retrospace-api",
		Environment:  cfg.Env,
		Enabled:      cfg.TracingEnabled,
		Exporter:     cfg.TracingExporter,
		OTLPEndpoint: cfg.OTLPEndpoint,
		SamplerRatio: cfg.TracingSampler,
	})
	if err != nil {
		return nil, nil, nil, fmt.Errorf("tracing init failed: %w", err)
	}

	if opts.SeedDemoData && !cfg.IsProduction() {
		if err := seed.Seed(db, seed.Options{NumUsers: 20}); err != nil {
			return nil, nil, nil, fmt.Errorf("demo seed failed: %w", err)
		}
	}

	return db, rdb, shutdownTracing, nil
}
