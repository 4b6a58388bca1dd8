package bootstrap

import (
	"context"
	"log/slog"

	"lms-api/internal/handler/middleware"
	"lms-api/internal/infra/cache"
	"lms-api/internal/pkg/clock"
	"lms-api/internal/pkg/config"

	"go.uber.org/fx"
)

var CacheModule = fx.Module("cache",
	fx.Provide(
		NewCacheStore,
		NewCacheCodec,
		NewIdempotencyGate,
	),
)

// pinger is satisfied by backends that hold a network connection.
type pinger interface {
	Ping(ctx context.Context) error
}

func NewCacheStore(lc fx.Lifecycle, cfg config.Config, clk clock.Clock, logger *slog.Logger) (cache.Store, error) {
	store, err := cache.NewStore(cfg.Cache, clk)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			p, ok := store.(pinger)
			if !ok {
				return nil
			}
			if err := p.Ping(ctx); err != nil {
				return err
			}
			logger.Info("Cache backend is reachable", "driver", cfg.Cache.Driver, "addr", cfg.Cache.RedisAddr)
			return nil
		},
		OnStop: func(_ context.Context) error {
			return store.Close()
		},
	})

	return store, nil
}

func NewCacheCodec(cfg config.Config) (cache.Codec, error) {
	return cache.NewCodec(cfg.Cache.Codec)
}

func NewIdempotencyGate(store cache.Store, codec cache.Codec, clk clock.Clock, logger *slog.Logger, cfg config.Config) *middleware.IdempotencyGate {
	return middleware.NewIdempotencyGate(store, codec, clk, logger, cfg.Idempotency)
}
