package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/fuelstation/backend/internal/domain/membership"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const activePromotionsKey = "promotions:active"

// RedisConfig holds Redis connection settings for the cache layer
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

// RedisPromotionCache implements membership.PromotionCache using Redis
type RedisPromotionCache struct {
	client     *redis.Client
	ownsClient bool // true if we created the client and should close it
	logger     *zap.Logger
}

// RedisPromotionCacheOption is a functional option for configuring the cache
type RedisPromotionCacheOption func(*RedisPromotionCache)

// WithCacheLogger sets the logger for the cache
func WithCacheLogger(logger *zap.Logger) RedisPromotionCacheOption {
	return func(c *RedisPromotionCache) {
		c.logger = logger
	}
}

// NewRedisPromotionCache creates a new Redis-based promotion cache
func NewRedisPromotionCache(cfg RedisConfig, opts ...RedisPromotionCacheOption) (*RedisPromotionCache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	cache := &RedisPromotionCache{
		client:     client,
		ownsClient: true,
		logger:     zap.NewNop(),
	}
	for _, opt := range opts {
		opt(cache)
	}
	return cache, nil
}

// NewRedisPromotionCacheWithClient creates a cache with an existing Redis client.
// The caller retains ownership of the client and is responsible for closing it.
func NewRedisPromotionCacheWithClient(client *redis.Client, opts ...RedisPromotionCacheOption) *RedisPromotionCache {
	cache := &RedisPromotionCache{
		client:     client,
		ownsClient: false,
		logger:     zap.NewNop(),
	}
	for _, opt := range opts {
		opt(cache)
	}
	return cache
}

// GetActive retrieves the cached active promotion list. A miss is (nil, nil).
func (c *RedisPromotionCache) GetActive(ctx context.Context) ([]membership.Promotion, error) {
	data, err := c.client.Get(ctx, activePromotionsKey).Bytes()
	if err == redis.Nil {
		c.logger.Debug("cache miss for active promotions")
		return nil, nil
	}
	if err != nil {
		c.logger.Error("failed to get active promotions from cache", zap.Error(err))
		return nil, fmt.Errorf("failed to get promotions from cache: %w", err)
	}

	var promotions []membership.Promotion
	if err := json.Unmarshal(data, &promotions); err != nil {
		c.logger.Error("failed to unmarshal cached promotions", zap.Error(err))
		// Delete corrupted cache entry
		_ = c.client.Del(ctx, activePromotionsKey)
		return nil, fmt.Errorf("failed to unmarshal promotions: %w", err)
	}

	c.logger.Debug("cache hit for active promotions", zap.Int("count", len(promotions)))
	return promotions, nil
}

// SetActive stores the active promotion list
func (c *RedisPromotionCache) SetActive(ctx context.Context, promotions []membership.Promotion, ttl time.Duration) error {
	if ttl == 0 {
		ttl = membership.DefaultActivePromotionTTL
	}

	data, err := json.Marshal(promotions)
	if err != nil {
		c.logger.Error("failed to marshal promotions", zap.Error(err))
		return fmt.Errorf("failed to marshal promotions: %w", err)
	}

	if err := c.client.Set(ctx, activePromotionsKey, data, ttl).Err(); err != nil {
		c.logger.Error("failed to set promotions in cache", zap.Error(err))
		return fmt.Errorf("failed to set promotions in cache: %w", err)
	}

	c.logger.Debug("cached active promotions",
		zap.Int("count", len(promotions)),
		zap.Duration("ttl", ttl))
	return nil
}

// Invalidate drops the cached promotion list
func (c *RedisPromotionCache) Invalidate(ctx context.Context) error {
	if err := c.client.Del(ctx, activePromotionsKey).Err(); err != nil {
		c.logger.Error("failed to invalidate promotion cache", zap.Error(err))
		return fmt.Errorf("failed to invalidate promotion cache: %w", err)
	}
	return nil
}

// Close releases the Redis client if this cache owns it
func (c *RedisPromotionCache) Close() error {
	if c.ownsClient {
		return c.client.Close()
	}
	return nil
}

var _ membership.PromotionCache = (*RedisPromotionCache)(nil)
