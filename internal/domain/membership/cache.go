package membership

import (
	"context"
	"time"
)

// DefaultActivePromotionTTL bounds how stale a cached promotion list may be.
const DefaultActivePromotionTTL = 5 * time.Minute

// PromotionCache caches the list of currently active promotions. A miss is
// reported as (nil, nil); callers fall back to the repository. The commit
// engine never reads through the cache, it always queries inside its
// transactional scope.
type PromotionCache interface {
	// GetActive returns the cached active promotion list, or (nil, nil) on a miss
	GetActive(ctx context.Context) ([]Promotion, error)
	// SetActive stores the active promotion list with the given TTL
	SetActive(ctx context.Context, promotions []Promotion, ttl time.Duration) error
	// Invalidate drops the cached list
	Invalidate(ctx context.Context) error
}
