package cartstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	domainErrors "github.com/suoapvs/alexcoffee/internal/domain/errors"
	"github.com/suoapvs/alexcoffee/internal/domain/model"
	"github.com/suoapvs/alexcoffee/internal/domain/repository"
)

const redisKeyPrefix = "cart:"

// snapshotItem is the persisted shape of one cart entry. Only the
// product identity and the quantity are stored: prices are read live
// from the catalog when the cart is rehydrated, so a cached price can
// never leak into cart or order math.
type snapshotItem struct {
	ProductID int64 `json:"product_id"`
	Number    int   `json:"number"`
}

// RedisStore keeps cart snapshots in Redis with a native TTL, letting
// multiple service instances share session carts.
type RedisStore struct {
	rdb      *redis.Client
	products repository.ProductRepository
	ttl      time.Duration
}

// NewRedisStore verifies connectivity and returns the store.
func NewRedisStore(ctx context.Context, rdb *redis.Client, products repository.ProductRepository, ttl time.Duration) (*RedisStore, error) {
	if rdb == nil {
		return nil, errors.New("redis client must be non-nil")
	}
	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	return &RedisStore{rdb: rdb, products: products, ttl: ttl}, nil
}

// Get rehydrates the session's cart against live product rows,
// creating an empty cart on first access. Products deleted from the
// catalog since the snapshot silently drop out of the cart.
func (s *RedisStore) Get(ctx context.Context, sessionID string) (*model.ShoppingCart, error) {
	raw, err := s.rdb.Get(ctx, redisKeyPrefix+sessionID).Bytes()
	if errors.Is(err, redis.Nil) {
		return model.NewShoppingCart(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("get cart snapshot: %w", err)
	}

	var items []snapshotItem
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, fmt.Errorf("decode cart snapshot: %w", err)
	}
	return s.hydrate(ctx, items)
}

// Save snapshots the cart under the session key with the idle TTL.
func (s *RedisStore) Save(ctx context.Context, sessionID string, cart *model.ShoppingCart) error {
	payload, err := json.Marshal(snapshot(cart))
	if err != nil {
		return fmt.Errorf("encode cart snapshot: %w", err)
	}
	if err := s.rdb.Set(ctx, redisKeyPrefix+sessionID, payload, s.ttl).Err(); err != nil {
		return fmt.Errorf("save cart snapshot: %w", err)
	}
	return nil
}

// Delete destroys the session's cart.
func (s *RedisStore) Delete(ctx context.Context, sessionID string) error {
	if err := s.rdb.Del(ctx, redisKeyPrefix+sessionID).Err(); err != nil {
		return fmt.Errorf("delete cart snapshot: %w", err)
	}
	return nil
}

// PurgeExpired is a no-op: Redis expires cart keys natively.
func (s *RedisStore) PurgeExpired(ctx context.Context) (int, error) {
	return 0, nil
}

func snapshot(cart *model.ShoppingCart) []snapshotItem {
	positions := cart.SalePositions()
	items := make([]snapshotItem, 0, len(positions))
	for _, p := range positions {
		if p.Product() == nil {
			continue
		}
		items = append(items, snapshotItem{ProductID: p.Product().ID(), Number: p.Number()})
	}
	return items
}

func (s *RedisStore) hydrate(ctx context.Context, items []snapshotItem) (*model.ShoppingCart, error) {
	cart := model.NewShoppingCart()
	for _, item := range items {
		product, err := s.products.GetByID(ctx, item.ProductID)
		if errors.Is(err, domainErrors.ErrNotFound) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("hydrate cart product %d: %w", item.ProductID, err)
		}
		cart.AddSalePosition(model.NewSalePosition(product, item.Number))
	}
	return cart, nil
}
