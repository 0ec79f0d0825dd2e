package cartstore

import (
	"context"
	"log/slog"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"

	"github.com/suoapvs/alexcoffee/internal/config"
	"github.com/suoapvs/alexcoffee/internal/domain/repository"
)

// Module wires the session cart store: Redis-backed when a Redis
// address is configured, in-memory otherwise.
var Module = fx.Provide(newStore)

type storeParams struct {
	fx.In

	Ctx      context.Context
	Config   *config.Config
	Logger   *slog.Logger
	Products repository.ProductRepository
}

func newStore(p storeParams) (Store, error) {
	if p.Config.RedisAddress == "" {
		p.Logger.Info("session carts kept in memory")
		return NewMemoryStore(p.Config.CartTTL), nil
	}

	rdb := redis.NewClient(&redis.Options{Addr: p.Config.RedisAddress})
	store, err := NewRedisStore(p.Ctx, rdb, p.Products, p.Config.CartTTL)
	if err != nil {
		return nil, err
	}
	p.Logger.Info("session carts kept in redis", slog.String("addr", p.Config.RedisAddress))
	return store, nil
}
