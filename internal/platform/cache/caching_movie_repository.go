// Package cache provides caching implementations for repository interfaces.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"movie_backend/internal/feature/movies/domain/entity"
	"movie_backend/internal/feature/movies/usecase"
)

// CachingMovieRepository decorates a MovieRepository with Redis caching.
// It implements the decorator pattern, transparently adding caching without
// modifying the underlying repository. Reads go through the cache; any write
// invalidates the affected entries.
type CachingMovieRepository struct {
	inner     usecase.MovieRepository
	rdb       *redis.Client
	ttl       time.Duration
	namespace string
}

// NewCachingMovieRepository decorates a MovieRepository with Redis caching.
// If ttl is 0, it defaults to 5 minutes. If namespace is empty, it uses "movies".
func NewCachingMovieRepository(rdb *redis.Client, ttl time.Duration, inner usecase.MovieRepository, namespace string) *CachingMovieRepository {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	if namespace == "" {
		namespace = "movies"
	}
	return &CachingMovieRepository{
		inner:     inner,
		rdb:       rdb,
		ttl:       ttl,
		namespace: namespace,
	}
}

// List retrieves movies, checking cache first then falling back to the database.
func (c *CachingMovieRepository) List(ctx context.Context, limit int) ([]entity.Movie, error) {
	// Bypass cache if Redis is not configured
	if c.rdb == nil {
		return c.inner.List(ctx, limit)
	}

	key := c.listKey(limit)

	// 1) Check cache
	if b, err := c.rdb.Get(ctx, key).Bytes(); err == nil && len(b) > 0 {
		var out []entity.Movie
		if err := json.Unmarshal(b, &out); err == nil {
			return out, nil
		}
		// Delete corrupted cache entry
		_ = c.rdb.Del(ctx, key).Err()
	}

	// 2) Fallback to database
	out, err := c.inner.List(ctx, limit)
	if err != nil {
		return nil, err
	}

	// 3) Store in cache (best effort)
	if b, err := json.Marshal(out); err == nil {
		_ = c.rdb.Set(ctx, key, b, c.ttl).Err()
	}

	return out, nil
}

// FindByID retrieves a movie, checking cache first then falling back to the database.
func (c *CachingMovieRepository) FindByID(ctx context.Context, id string) (*entity.Movie, error) {
	if c.rdb == nil {
		return c.inner.FindByID(ctx, id)
	}

	key := c.movieKey(id)

	if b, err := c.rdb.Get(ctx, key).Bytes(); err == nil && len(b) > 0 {
		var out entity.Movie
		if err := json.Unmarshal(b, &out); err == nil {
			return &out, nil
		}
		_ = c.rdb.Del(ctx, key).Err()
	}

	out, err := c.inner.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if b, err := json.Marshal(out); err == nil {
		_ = c.rdb.Set(ctx, key, b, c.ttl).Err()
	}

	return out, nil
}

// Create inserts a movie and invalidates the list cache.
func (c *CachingMovieRepository) Create(ctx context.Context, m *entity.Movie) error {
	if err := c.inner.Create(ctx, m); err != nil {
		return err
	}
	c.invalidate(ctx, m.ID)
	return nil
}

// Update saves a movie and invalidates the affected cache entries.
func (c *CachingMovieRepository) Update(ctx context.Context, m *entity.Movie) error {
	if err := c.inner.Update(ctx, m); err != nil {
		return err
	}
	c.invalidate(ctx, m.ID)
	return nil
}

// Delete removes a movie and invalidates the affected cache entries.
func (c *CachingMovieRepository) Delete(ctx context.Context, id string) error {
	if err := c.inner.Delete(ctx, id); err != nil {
		return err
	}
	c.invalidate(ctx, id)
	return nil
}

// invalidate drops the per-movie entry and every list entry. Best effort:
// a failed cache deletion never fails the write.
func (c *CachingMovieRepository) invalidate(ctx context.Context, id string) {
	if c.rdb == nil {
		return
	}
	_ = c.rdb.Del(ctx, c.movieKey(id)).Err()
	_ = c.deleteByPattern(ctx, fmt.Sprintf("%s:list:*", c.namespace))
}

// listKey generates a cache key for a list query.
func (c *CachingMovieRepository) listKey(limit int) string {
	return fmt.Sprintf("%s:list:%d", c.namespace, limit)
}

// movieKey generates a cache key for a single movie.
func (c *CachingMovieRepository) movieKey(id string) string {
	return fmt.Sprintf("%s:id:%s", c.namespace, id)
}

// deleteByPattern deletes all cache keys matching a given pattern using SCAN.
func (c *CachingMovieRepository) deleteByPattern(ctx context.Context, pattern string) error {
	var cursor uint64
	for {
		keys, cur, err := c.rdb.Scan(ctx, cursor, pattern, 200).Result()
		if err != nil {
			return err
		}
		if len(keys) > 0 {
			if err := c.rdb.Del(ctx, keys...).Err(); err != nil {
				return err
			}
		}
		cursor = cur
		if cursor == 0 {
			break
		}
	}
	return nil
}
