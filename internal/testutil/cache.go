package testutil

import (
	"context"
	"sync"
	"time"

	"github.com/flashmart/checkout-service/internal/domain"
)

// MemoryProductCache is a map-backed domain.ProductCache. It records every
// forgotten product id so tests can assert that commits invalidate the cache.
type MemoryProductCache struct {
	mu        sync.Mutex
	products  map[int64]domain.Product
	forgotten []int64
}

func NewMemoryProductCache() *MemoryProductCache {
	return &MemoryProductCache{products: make(map[int64]domain.Product)}
}

func (c *MemoryProductCache) GetProduct(_ context.Context, productID int64) (*domain.Product, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if p, ok := c.products[productID]; ok {
		out := p
		return &out, nil
	}
	return nil, nil
}

func (c *MemoryProductCache) SetProduct(_ context.Context, product *domain.Product, _ time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.products[product.ID] = *product
	return nil
}

func (c *MemoryProductCache) ForgetProduct(_ context.Context, productID int64) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.products, productID)
	c.forgotten = append(c.forgotten, productID)
	return nil
}

// ForgottenIDs returns the product ids passed to ForgetProduct, in order.
func (c *MemoryProductCache) ForgottenIDs() []int64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]int64(nil), c.forgotten...)
}
