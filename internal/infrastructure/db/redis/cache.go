package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/cinetrack/movie-catalog/internal/api/metrics"
	"github.com/cinetrack/movie-catalog/internal/core/domain"
)

const cacheTTL = 30 * time.Second

// MovieCache is a short-TTL read cache for public catalog listings.
// Key format: movies:all for the full list, movies:page:<page>:<limit> for
// paginated reads. All keys share one invalidation prefix so a single write
// flushes every cached page.
type MovieCache struct {
	client *redis.Client
}

// NewMovieCache creates a MovieCache wrapping the given Redis client.
func NewMovieCache(client *redis.Client) *MovieCache {
	return &MovieCache{client: client}
}

// GetList returns the cached full listing, or (nil, false) on a miss.
// Cache errors degrade to a miss; the store remains the source of truth.
func (c *MovieCache) GetList(ctx context.Context) ([]domain.Movie, bool) {
	return c.get(ctx, c.listKey())
}

// SetList stores the full listing with the cache TTL.
func (c *MovieCache) SetList(ctx context.Context, movies []domain.Movie) error {
	return c.set(ctx, c.listKey(), movies)
}

// GetPage returns a cached page, or (nil, false) on a miss.
func (c *MovieCache) GetPage(ctx context.Context, page, limit int) ([]domain.Movie, bool) {
	return c.get(ctx, c.pageKey(page, limit))
}

// SetPage stores one page with the cache TTL.
func (c *MovieCache) SetPage(ctx context.Context, page, limit int, movies []domain.Movie) error {
	return c.set(ctx, c.pageKey(page, limit), movies)
}

// Invalidate drops every cached listing. Called after any catalog write.
func (c *MovieCache) Invalidate(ctx context.Context) error {
	iter := c.client.Scan(ctx, 0, "movies:*", 0).Iterator()
	var keys []string
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return fmt.Errorf("cache invalidate scan: %w", err)
	}
	if len(keys) == 0 {
		return nil
	}
	return c.client.Del(ctx, keys...).Err()
}

func (c *MovieCache) get(ctx context.Context, key string) ([]domain.Movie, bool) {
	raw, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		metrics.MovieCacheTotal.WithLabelValues("miss").Inc()
		return nil, false
	}
	var movies []domain.Movie
	if err := json.Unmarshal(raw, &movies); err != nil {
		metrics.MovieCacheTotal.WithLabelValues("miss").Inc()
		return nil, false
	}
	metrics.MovieCacheTotal.WithLabelValues("hit").Inc()
	return movies, true
}

func (c *MovieCache) set(ctx context.Context, key string, movies []domain.Movie) error {
	raw, err := json.Marshal(movies)
	if err != nil {
		return fmt.Errorf("cache encode: %w", err)
	}
	return c.client.Set(ctx, key, raw, cacheTTL).Err()
}

func (c *MovieCache) listKey() string {
	return "movies:all"
}

func (c *MovieCache) pageKey(page, limit int) string {
	return fmt.Sprintf("movies:page:%d:%d", page, limit)
}
