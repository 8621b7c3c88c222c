package domain

import (
	"context"
	"time"
)

// ProductCache is a read-through cache for product lookups. It is never a
// source of truth: every committed stock mutation forgets the entry, and a
// miss is (nil, nil), not an error.
type ProductCache interface {
	GetProduct(ctx context.Context, productID int64) (*Product, error)
	SetProduct(ctx context.Context, product *Product, ttl time.Duration) error
	ForgetProduct(ctx context.Context, productID int64) error
}
