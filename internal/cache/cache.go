// Package cache provides a redis-backed read cache for user profile and
// stats responses.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/ParadigmParadoxicalPiercer/para-praxis/internal/domain"
)

const statsTTL = 5 * time.Minute

// ErrMiss is returned when a key is absent or unreadable.
var ErrMiss = errors.New("cache miss")

// Cmdable is the subset of the redis client the cache uses.
type Cmdable interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value any, expiration time.Duration) *redis.StatusCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
}

// StatsCache serves user and focus stats reads with a short TTL.
type StatsCache struct {
	client Cmdable
	logger *slog.Logger
}

// NewStatsCache creates a stats cache over the given redis client.
func NewStatsCache(client Cmdable, logger *slog.Logger) *StatsCache {
	return &StatsCache{client: client, logger: logger}
}

func userStatsKey(userID int64) string {
	return fmt.Sprintf("user:stats:%d", userID)
}

func focusStatsKey(userID int64) string {
	return fmt.Sprintf("focus:stats:%d", userID)
}

// GetUserStats returns cached stats or ErrMiss.
func (c *StatsCache) GetUserStats(ctx context.Context, userID int64) (*domain.UserStats, error) {
	var s domain.UserStats
	if err := c.get(ctx, userStatsKey(userID), &s); err != nil {
		return nil, err
	}
	return &s, nil
}

// SetUserStats stores stats with the standard TTL. Failures are logged, not
// returned; the cache is best effort.
func (c *StatsCache) SetUserStats(ctx context.Context, userID int64, s *domain.UserStats) {
	c.set(ctx, userStatsKey(userID), s)
}

// GetFocusStats returns cached focus aggregates or ErrMiss.
func (c *StatsCache) GetFocusStats(ctx context.Context, userID int64) (*domain.FocusStats, error) {
	var s domain.FocusStats
	if err := c.get(ctx, focusStatsKey(userID), &s); err != nil {
		return nil, err
	}
	return &s, nil
}

// SetFocusStats stores focus aggregates with the standard TTL.
func (c *StatsCache) SetFocusStats(ctx context.Context, userID int64, s *domain.FocusStats) {
	c.set(ctx, focusStatsKey(userID), s)
}

// Invalidate drops all cached aggregates for the user. Called after any
// write that changes the counts.
func (c *StatsCache) Invalidate(ctx context.Context, userID int64) {
	if c == nil {
		return
	}
	if err := c.client.Del(ctx, userStatsKey(userID), focusStatsKey(userID)).Err(); err != nil {
		c.logger.Warn("cache invalidation failed", "user_id", userID, "error", err)
	}
}

// A nil StatsCache is a valid no-op cache; every read is a miss and writes
// are dropped. This lets the app run without Redis.
func (c *StatsCache) get(ctx context.Context, key string, dest any) error {
	if c == nil {
		return ErrMiss
	}
	raw, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			c.logger.Warn("cache read failed", "key", key, "error", err)
		}
		return ErrMiss
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		c.logger.Warn("cache entry corrupt", "key", key, "error", err)
		return ErrMiss
	}
	return nil
}

func (c *StatsCache) set(ctx context.Context, key string, value any) {
	if c == nil {
		return
	}
	raw, err := json.Marshal(value)
	if err != nil {
		c.logger.Warn("cache marshal failed", "key", key, "error", err)
		return
	}
	if err := c.client.Set(ctx, key, raw, statsTTL).Err(); err != nil {
		c.logger.Warn("cache write failed", "key", key, "error", err)
	}
}
