package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/ParadigmParadoxicalPiercer/para-praxis/internal/cache"
)

// fakeCmdable is a map-backed stand-in for the redis client.
type fakeCmdable struct {
	data map[string]string
}

func newFakeCmdable() *fakeCmdable {
	return &fakeCmdable{data: make(map[string]string)}
}

func (f *fakeCmdable) Get(ctx context.Context, key string) *redis.StringCmd {
	if v, ok := f.data[key]; ok {
		return redis.NewStringResult(v, nil)
	}
	return redis.NewStringResult("", redis.Nil)
}

func (f *fakeCmdable) Set(ctx context.Context, key string, value any, expiration time.Duration) *redis.StatusCmd {
	f.data[key] = string(value.([]byte))
	return redis.NewStatusResult("OK", nil)
}

func (f *fakeCmdable) Del(ctx context.Context, keys ...string) *redis.IntCmd {
	var n int64
	for _, k := range keys {
		if _, ok := f.data[k]; ok {
			delete(f.data, k)
			n++
		}
	}
	return redis.NewIntResult(n, nil)
}

func testLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func testStatsCache() *cache.StatsCache {
	return cache.NewStatsCache(newFakeCmdable(), testLogger())
}
