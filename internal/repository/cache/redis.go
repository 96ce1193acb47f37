package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/et891/ecommerce-api/internal/domain"
)

// RedisCache caches review listings per product. Aggregate ratings are
// deliberately not cached; they live only on the product row so reads always
// see the value maintained by the write path.
type RedisCache struct {
	client         *redis.Client
	reviewsListTTL time.Duration
}

// NewRedisCache creates a new Redis cache instance
func NewRedisCache(client *redis.Client, reviewsListTTL time.Duration) *RedisCache {
	return &RedisCache{
		client:         client,
		reviewsListTTL: reviewsListTTL,
	}
}

// reviewPage is the cached payload for one page of reviews
type reviewPage struct {
	Reviews []*domain.Review `json:"reviews"`
	Total   int              `json:"total"`
}

func (c *RedisCache) reviewsListKey(productID int64, limit, offset int) string {
	return fmt.Sprintf("product:%d:reviews:limit:%d:offset:%d", productID, limit, offset)
}

func (c *RedisCache) productCacheKeysSet(productID int64) string {
	return fmt.Sprintf("product:%d:cache_keys", productID)
}

// GetReviewsList retrieves a cached page of reviews for a product
func (c *RedisCache) GetReviewsList(ctx context.Context, productID int64, limit, offset int) ([]*domain.Review, int, error) {
	key := c.reviewsListKey(productID, limit, offset)
	val, err := c.client.Get(ctx, key).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, 0, domain.ErrNotFound
		}
		return nil, 0, err
	}

	var page reviewPage
	if err := json.Unmarshal([]byte(val), &page); err != nil {
		return nil, 0, err
	}

	return page.Reviews, page.Total, nil
}

// SetReviewsList stores a page of reviews in cache and tracks the key in a SET
func (c *RedisCache) SetReviewsList(ctx context.Context, productID int64, limit, offset int, reviews []*domain.Review, total int) error {
	key := c.reviewsListKey(productID, limit, offset)
	trackingKey := c.productCacheKeysSet(productID)

	data, err := json.Marshal(reviewPage{Reviews: reviews, Total: total})
	if err != nil {
		return err
	}

	pipe := c.client.Pipeline()
	pipe.Set(ctx, key, data, c.reviewsListTTL)
	pipe.SAdd(ctx, trackingKey, key)
	pipe.Expire(ctx, trackingKey, c.reviewsListTTL)
	_, err = pipe.Exec(ctx)
	return err
}

// InvalidateProduct removes all cached review pages for a product using the
// SET-based key tracking
func (c *RedisCache) InvalidateProduct(ctx context.Context, productID int64) error {
	trackingKey := c.productCacheKeysSet(productID)

	keys, err := c.client.SMembers(ctx, trackingKey).Result()
	if err != nil && err != redis.Nil {
		return err
	}

	if len(keys) > 0 {
		keys = append(keys, trackingKey)
		return c.client.Unlink(ctx, keys...).Err()
	}

	return nil
}
