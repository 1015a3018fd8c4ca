package service

import (
	"context"
	"time"

	catalogmodel "swim-shop-api/internal/model/catalog"
)

// Locker serialises work on one key across replicas.
type Locker interface {
	Acquire(ctx context.Context, key string, ttl time.Duration) (token string, ok bool, err error)
	Release(ctx context.Context, key, token string) error
}

// ProductCache stores the product list between requests.
type ProductCache interface {
	Get(ctx context.Context) ([]catalogmodel.Product, bool, error)
	Set(ctx context.Context, list []catalogmodel.Product) error
	Invalidate(ctx context.Context) error
}
