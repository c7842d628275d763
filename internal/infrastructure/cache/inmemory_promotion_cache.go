package cache

import (
	"context"
	"sync"
	"time"

	"github.com/fuelstation/backend/internal/domain/membership"
)

// InMemoryPromotionCache is a process-local implementation of
// membership.PromotionCache, used in tests and deployments without Redis.
type InMemoryPromotionCache struct {
	mu         sync.Mutex
	promotions []membership.Promotion
	set        bool
	expiresAt  time.Time
}

func NewInMemoryPromotionCache() *InMemoryPromotionCache {
	return &InMemoryPromotionCache{}
}

func (c *InMemoryPromotionCache) GetActive(_ context.Context) ([]membership.Promotion, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.set || time.Now().After(c.expiresAt) {
		c.promotions = nil
		c.set = false
		return nil, nil
	}

	out := make([]membership.Promotion, len(c.promotions))
	copy(out, c.promotions)
	return out, nil
}

func (c *InMemoryPromotionCache) SetActive(_ context.Context, promotions []membership.Promotion, ttl time.Duration) error {
	if ttl == 0 {
		ttl = membership.DefaultActivePromotionTTL
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.promotions = make([]membership.Promotion, len(promotions))
	copy(c.promotions, promotions)
	c.set = true
	c.expiresAt = time.Now().Add(ttl)
	return nil
}

func (c *InMemoryPromotionCache) Invalidate(_ context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.promotions = nil
	c.set = false
	return nil
}

var _ membership.PromotionCache = (*InMemoryPromotionCache)(nil)
