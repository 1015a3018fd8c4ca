package dal

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/go-redis/redis/v8"

	catalogmodel "swim-shop-api/internal/model/catalog"
)

// ProductCache keeps the full product list under one key.
type ProductCache struct {
	Client *redis.Client
	Key    string
	TTL    time.Duration
}

func NewProductCache(client *redis.Client, key string, ttl time.Duration) *ProductCache {
	return &ProductCache{Client: client, Key: key, TTL: ttl}
}

// Get reports ok=false on a miss.
func (c *ProductCache) Get(ctx context.Context) ([]catalogmodel.Product, bool, error) {
	raw, err := c.Client.Get(ctx, c.Key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	var list []catalogmodel.Product
	if err := json.Unmarshal(raw, &list); err != nil {
		return nil, false, err
	}
	return list, true, nil
}

func (c *ProductCache) Set(ctx context.Context, list []catalogmodel.Product) error {
	raw, err := json.Marshal(list)
	if err != nil {
		return err
	}
	return c.Client.Set(ctx, c.Key, raw, c.TTL).Err()
}

func (c *ProductCache) Invalidate(ctx context.Context) error {
	return c.Client.Del(ctx, c.Key).Err()
}
