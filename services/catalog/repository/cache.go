package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/piresc/urbanthreads/internal/pkg/constants"
	"github.com/piresc/urbanthreads/internal/pkg/database"
	"github.com/piresc/urbanthreads/internal/pkg/logger"
	"github.com/piresc/urbanthreads/internal/pkg/models"
	"github.com/piresc/urbanthreads/services/catalog"
)

// CachedProductRepo is a Redis read-through cache in front of another
// catalog repository. Cache failures fall back to the wrapped repository.
type CachedProductRepo struct {
	next  catalog.CatalogRepo
	redis *database.RedisClient
	ttl   time.Duration
}

// NewCachedProductRepository wraps next with a Redis cache
func NewCachedProductRepository(next catalog.CatalogRepo, redisClient *database.RedisClient, ttl time.Duration) *CachedProductRepo {
	return &CachedProductRepo{next: next, redis: redisClient, ttl: ttl}
}

// ListProducts returns all products, cached
func (c *CachedProductRepo) ListProducts(ctx context.Context) ([]models.Product, error) {
	return readThrough(ctx, c, constants.KeyCatalogAll, func() ([]models.Product, error) {
		return c.next.ListProducts(ctx)
	})
}

// ListProductsByCategory returns one category's products, cached per category
func (c *CachedProductRepo) ListProductsByCategory(ctx context.Context, category string) ([]models.Product, error) {
	key := fmt.Sprintf(constants.KeyCatalogCategory, category)
	return readThrough(ctx, c, key, func() ([]models.Product, error) {
		return c.next.ListProductsByCategory(ctx, category)
	})
}

// GetProduct returns one product, cached per id. Misses are not cached.
func (c *CachedProductRepo) GetProduct(ctx context.Context, id int) (*models.Product, error) {
	key := fmt.Sprintf(constants.KeyCatalogProduct, id)
	return readThrough(ctx, c, key, func() (*models.Product, error) {
		return c.next.GetProduct(ctx, id)
	})
}

// GetProductsByIDs always reads the wrapped repository; order pricing must
// not depend on cache freshness.
func (c *CachedProductRepo) GetProductsByIDs(ctx context.Context, ids []int) (map[int]models.Product, error) {
	return c.next.GetProductsByIDs(ctx, ids)
}

func readThrough[T any](ctx context.Context, c *CachedProductRepo, key string, load func() (T, error)) (T, error) {
	cached, err := c.redis.Get(ctx, key)
	switch {
	case err == nil:
		var value T
		if jsonErr := json.Unmarshal([]byte(cached), &value); jsonErr == nil {
			return value, nil
		}
		logger.WarnCtx(ctx, "Discarding corrupt catalog cache entry", logger.String("key", key))
	case !errors.Is(err, redis.Nil):
		logger.WarnCtx(ctx, "Catalog cache read failed", logger.String("key", key), logger.Err(err))
	}

	value, err := load()
	if err != nil {
		return value, err
	}

	payload, err := json.Marshal(value)
	if err != nil {
		return value, nil
	}
	if err := c.redis.Set(ctx, key, payload, c.ttl); err != nil {
		logger.WarnCtx(ctx, "Catalog cache write failed", logger.String("key", key), logger.Err(err))
	}
	return value, nil
}
