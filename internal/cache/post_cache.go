// Package cache stores rendered pages of the public post listing in Redis.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"blog-api/internal/domain"
)

const (
	keyGeneration = "posts:list:gen"
	keyPagePrefix = "posts:list:"
)

// PostCache caches listing pages under a generation number. Invalidation bumps the
// generation, so a fill that started before a write lands under a key no reader uses.
type PostCache struct {
	rdb *redis.Client
	ttl time.Duration
}

// NewPostCache returns a new PostCache.
func NewPostCache(rdb *redis.Client, ttl time.Duration) *PostCache {
	return &PostCache{rdb: rdb, ttl: ttl}
}

// Generation returns the current cache generation, 0 before the first invalidation.
func (c *PostCache) Generation(ctx context.Context) (int64, error) {
	gen, err := c.rdb.Get(ctx, keyGeneration).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("read cache generation: %w", err)
	}
	return gen, nil
}

// GetPage returns the cached page or nil on a miss.
func (c *PostCache) GetPage(ctx context.Context, gen int64, page int) (*domain.PostPage, error) {
	b, err := c.rdb.Get(ctx, pageKey(gen, page)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read cached page: %w", err)
	}
	var p domain.PostPage
	if err := json.Unmarshal(b, &p); err != nil {
		return nil, fmt.Errorf("decode cached page: %w", err)
	}
	return &p, nil
}

// SetPage stores a page under gen. A positive ttl below the configured one replaces it.
func (c *PostCache) SetPage(ctx context.Context, gen int64, p *domain.PostPage, ttl time.Duration) error {
	b, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("encode page: %w", err)
	}
	exp := c.ttl
	if ttl > 0 && (exp <= 0 || ttl < exp) {
		exp = ttl
	}
	if err := c.rdb.Set(ctx, pageKey(gen, p.CurrentPage), b, exp).Err(); err != nil {
		return fmt.Errorf("write cached page: %w", err)
	}
	return nil
}

// InvalidateAll retires every cached page. Old generations expire on their own TTL.
func (c *PostCache) InvalidateAll(ctx context.Context) error {
	if err := c.rdb.Incr(ctx, keyGeneration).Err(); err != nil {
		return fmt.Errorf("bump cache generation: %w", err)
	}
	return nil
}

func pageKey(gen int64, page int) string {
	return keyPagePrefix + strconv.FormatInt(gen, 10) + ":page:" + strconv.Itoa(page)
}
