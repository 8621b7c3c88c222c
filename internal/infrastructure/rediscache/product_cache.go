package rediscache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/flashmart/checkout-service/internal/domain"
	"github.com/redis/go-redis/v9"
)

type RedisProductCache struct {
	client *redis.Client
}

func NewRedisProductCache(addr, password string, db int) *RedisProductCache {
	return &RedisProductCache{
		client: redis.NewClient(&redis.Options{
			Addr:     addr,
			Password: password,
			DB:       db,
		}),
	}
}

func productKey(productID int64) string {
	return fmt.Sprintf("checkout:product:%d", productID)
}

func (c *RedisProductCache) GetProduct(ctx context.Context, productID int64) (*domain.Product, error) {
	raw, err := c.client.Get(ctx, productKey(productID)).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var product domain.Product
	if err := json.Unmarshal([]byte(raw), &product); err != nil {
		// A corrupt entry is treated as a miss; the authority is the database.
		return nil, nil
	}
	return &product, nil
}

func (c *RedisProductCache) SetProduct(ctx context.Context, product *domain.Product, ttl time.Duration) error {
	raw, err := json.Marshal(product)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, productKey(product.ID), raw, ttl).Err()
}

func (c *RedisProductCache) ForgetProduct(ctx context.Context, productID int64) error {
	return c.client.Del(ctx, productKey(productID)).Err()
}

// Ping verifies connectivity at startup.
func (c *RedisProductCache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}
