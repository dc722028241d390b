// README: Redis cache for the featured-testimonial page, with a no-op fallback.
package testimonial

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
)

const featuredCacheKey = "testimonials:featured"

type RedisCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisCache(client *redis.Client, ttl time.Duration) *RedisCache {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	return &RedisCache{client: client, ttl: ttl}
}

func (c *RedisCache) GetFeatured(ctx context.Context) (*FeaturedPage, bool) {
	data, err := c.client.Get(ctx, featuredCacheKey).Bytes()
	if err != nil {
		return nil, false
	}
	var page FeaturedPage
	if err := json.Unmarshal(data, &page); err != nil {
		return nil, false
	}
	return &page, true
}

func (c *RedisCache) SetFeatured(ctx context.Context, page *FeaturedPage) error {
	data, err := json.Marshal(page)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, featuredCacheKey, data, c.ttl).Err()
}

func (c *RedisCache) Invalidate(ctx context.Context) error {
	return c.client.Del(ctx, featuredCacheKey).Err()
}

type NoOpCache struct{}

func NewNoOpCache() *NoOpCache { return &NoOpCache{} }

func (c *NoOpCache) GetFeatured(ctx context.Context) (*FeaturedPage, bool) { return nil, false }

func (c *NoOpCache) SetFeatured(ctx context.Context, page *FeaturedPage) error { return nil }

func (c *NoOpCache) Invalidate(ctx context.Context) error { return nil }
